// Package main is the terminal front end for the support chat.
package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/yoonjun1204/chatbot-for-customer-support/internal/authstore"
	"github.com/yoonjun1204/chatbot-for-customer-support/internal/backend"
	"github.com/yoonjun1204/chatbot-for-customer-support/internal/config"
	"github.com/yoonjun1204/chatbot-for-customer-support/internal/model"
	"github.com/yoonjun1204/chatbot-for-customer-support/internal/session"
	"github.com/yoonjun1204/chatbot-for-customer-support/pkg/logger"
)

func main() {
	cfg := config.Load()

	log, err := logger.New(cfg.LogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to create logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()
	logger.SetGlobal(log)

	store := authstore.NewFileStore(cfg.AuthStorePath)
	identity := model.Identity{}
	user, err := store.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: could not read stored identity: %v\n", err)
	}
	if user != nil {
		identity = model.Identity{UserIdentifier: user.Email}
		fmt.Printf("Welcome back, %s.\n", user.Email)
	}

	client := backend.NewHTTPClient(cfg.APIBaseURL, cfg.HTTPTimeout)
	sess := session.New(client, identity, log)

	// Render every transcript append as it happens.
	sess.Transcript().Subscribe(func(msg model.Message) {
		prefix := "support"
		if msg.Sender == model.SenderCustomer {
			prefix = "you"
		}
		fmt.Printf("[%s] %s\n", prefix, msg.Text)
	})

	sess.Open()
	printQuickReplies(sess.QuickReplies())
	fmt.Println(`Commands: /login <email> <password> <role>, /logout, /quit. Pick a suggestion by number.`)

	ctx := context.Background()
	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			break
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if line == "/quit" {
			break
		}
		if sess.Loading() {
			fmt.Println("Still waiting for the previous reply...")
			continue
		}

		switch {
		case strings.HasPrefix(line, "/login"):
			handleLogin(ctx, sess, store, line)
			continue
		case line == "/logout":
			sess.SignOut()
			if err := store.Clear(); err != nil {
				fmt.Fprintf(os.Stderr, "warning: could not clear stored identity: %v\n", err)
			}
			continue
		}

		text := line
		if n, err := strconv.Atoi(line); err == nil {
			replies := sess.QuickReplies()
			if n >= 1 && n <= len(replies) {
				text = replies[n-1]
			}
		}

		result, err := sess.Submit(ctx, text)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%v\n", err)
			continue
		}
		if result == nil {
			continue
		}
		if !result.Failed {
			printQuickReplies(sess.QuickReplies())
			if order := result.Payload.Order; order != nil {
				fmt.Printf("  (order %s: %s, ETA %s)\n", order.OrderNumber, order.Status, order.EstimatedDelivery)
			}
		}
		if sess.LoginRequested() {
			fmt.Println("Sign in with /login <email> <password> customer to continue with order lookups.")
		}
	}
}

func handleLogin(ctx context.Context, sess *session.Session, store authstore.Store, line string) {
	parts := strings.Fields(line)
	if len(parts) != 4 {
		fmt.Println("Usage: /login <email> <password> <customer|admin|agent>")
		return
	}
	role := model.UserRole(parts[3])
	if !role.Valid() {
		fmt.Println("Role must be one of: customer, admin, agent")
		return
	}

	user, err := sess.Login(ctx, parts[1], parts[2], role)
	if err != nil {
		fmt.Printf("Login failed: %v\n", err)
		return
	}
	if err := store.Save(user); err != nil {
		fmt.Fprintf(os.Stderr, "warning: could not persist identity: %v\n", err)
	}
}

func printQuickReplies(replies []string) {
	if len(replies) == 0 {
		return
	}
	fmt.Println("Suggestions:")
	for i, r := range replies {
		fmt.Printf("  %d. %s\n", i+1, r)
	}
}
