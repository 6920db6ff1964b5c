// Package backend provides the HTTP client for the external support backend.
package backend

import (
	"context"

	"github.com/yoonjun1204/chatbot-for-customer-support/internal/model"
)

// Client is the interface to the conversational backend. The backend
// owns intent classification, order lookup, and escalation; this client
// only carries turns across the wire.
type Client interface {
	// Chat sends one turn and returns the backend's reply.
	Chat(ctx context.Context, req *model.ChatRequest) (*model.ChatResponse, error)

	// Login authenticates demo credentials and returns the profile.
	Login(ctx context.Context, req *model.LoginRequest) (*model.AuthUser, error)
}
