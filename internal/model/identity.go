package model

// UserRole represents the role of an authenticated user.
type UserRole string

const (
	RoleCustomer UserRole = "customer"
	RoleAdmin    UserRole = "admin"
	RoleAgent    UserRole = "agent"
)

// Valid reports whether the role is one of the known roles.
func (r UserRole) Valid() bool {
	switch r {
	case RoleCustomer, RoleAdmin, RoleAgent:
		return true
	}
	return false
}

// AuthUser is the profile returned by the login endpoint and persisted
// across page loads by the auth store.
type AuthUser struct {
	ID    int64    `json:"id"`
	Email string   `json:"email"`
	Name  string   `json:"name,omitempty"`
	Role  UserRole `json:"role"`
}

// Identity is the lightweight identity cell carried into every outgoing
// turn. UserIdentifier is an opaque correlation token, not a credential;
// empty means guest.
type Identity struct {
	UserIdentifier string
}

// Present reports whether an identity is set.
func (i Identity) Present() bool {
	return i.UserIdentifier != ""
}
