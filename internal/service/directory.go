package service

import (
	"strings"
	"sync"
	"time"

	"github.com/yoonjun1204/chatbot-for-customer-support/internal/model"
)

// DemoUser is a seeded account. Passwords are plaintext; the demo
// deliberately has no real credential security.
type DemoUser struct {
	ID       int64
	Name     string
	Email    string
	Password string
	Role     model.UserRole
}

// DemoOrder is a seeded order backing the order-status intent.
type DemoOrder struct {
	OrderNumber       string
	Status            string
	EstimatedDelivery time.Time
	OwnerEmail        string
}

// Directory holds the seeded demo users and orders.
type Directory struct {
	mu     sync.RWMutex
	users  map[string]DemoUser
	orders map[string]DemoOrder
}

// NewDirectory seeds the fixed demo data set.
func NewDirectory() *Directory {
	d := &Directory{
		users:  make(map[string]DemoUser),
		orders: make(map[string]DemoOrder),
	}

	names := []struct {
		name  string
		email string
		role  model.UserRole
	}{
		{"Alice Tan", "alicetan@example.com", model.RoleCustomer},
		{"Bob Lim", "boblim@example.com", model.RoleCustomer},
		{"Charlie Lee", "charlielee@example.com", model.RoleCustomer},
		{"Daniel Ng", "danielng@example.com", model.RoleCustomer},
		{"Emily Wong", "emilywong@example.com", model.RoleCustomer},
		{"Fiona Chong", "fionachong@example.com", model.RoleCustomer},
		{"Grace Koh", "gracekoh@example.com", model.RoleCustomer},
		{"Hannah Goh", "hannahgoh@example.com", model.RoleCustomer},
		{"Ivan Chan", "ivanchan@example.com", model.RoleCustomer},
		{"Jacob Teo", "jacobteo@example.com", model.RoleCustomer},
		{"Admin", "admin@example.com", model.RoleAdmin},
		{"Support Agent", "agent@example.com", model.RoleAgent},
	}
	for i, u := range names {
		d.users[u.email] = DemoUser{
			ID:       int64(i + 1),
			Name:     u.name,
			Email:    u.email,
			Password: "password123",
			Role:     u.role,
		}
	}

	orders := []struct {
		number    string
		status    string
		daysDelta int
	}{
		{"ORD-1001", "Processing", 5},
		{"ORD-1002", "Shipped", 3},
		{"ORD-1003", "Delivered", -7},
		{"ORD-1004", "Out for delivery", 1},
		{"ORD-1005", "Processing", 10},
		{"ORD-1006", "Shipped", 4},
		{"ORD-1007", "Delivered", -2},
		{"ORD-1008", "Processing", 8},
		{"ORD-1009", "Shipped", 2},
		{"ORD-1010", "Delivered", -14},
	}
	now := time.Now()
	for i, o := range orders {
		d.orders[o.number] = DemoOrder{
			OrderNumber:       o.number,
			Status:            o.status,
			EstimatedDelivery: now.AddDate(0, 0, o.daysDelta),
			OwnerEmail:        names[i%len(names)].email,
		}
	}
	return d
}

// Authenticate checks demo credentials and returns the profile.
func (d *Directory) Authenticate(email, password string) (*model.AuthUser, bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	u, ok := d.users[strings.ToLower(email)]
	if !ok || u.Password != password {
		return nil, false
	}
	return &model.AuthUser{ID: u.ID, Email: u.Email, Name: u.Name, Role: u.Role}, true
}

// FindOrder looks up a seeded order by its number.
func (d *Directory) FindOrder(orderNumber string) (DemoOrder, bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	o, ok := d.orders[strings.ToUpper(orderNumber)]
	return o, ok
}
