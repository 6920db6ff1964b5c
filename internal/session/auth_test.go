package session

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yoonjun1204/chatbot-for-customer-support/internal/backend"
	"github.com/yoonjun1204/chatbot-for-customer-support/internal/model"
)

func TestSignInSignOutRoundTrip(t *testing.T) {
	fake := &fakeBackend{resp: chatResponse(1, "ok")}
	s := New(fake, model.Identity{}, nil)

	identity := s.SignIn("a@b.com")
	assert.True(t, identity.Present())
	assert.Equal(t, "a@b.com", s.Identity().UserIdentifier)

	identity = s.SignOut()
	assert.False(t, identity.Present())
	assert.False(t, s.Identity().Present())

	// Two local notices, no network calls, conversation handle untouched.
	msgs := s.Transcript().All()
	require.Len(t, msgs, 2)
	assert.Equal(t, model.SenderAssistant, msgs[0].Sender)
	assert.Equal(t, model.SenderAssistant, msgs[1].Sender)
	assert.Zero(t, fake.callCount())
	assert.Zero(t, s.ConversationID())
}

func TestSignInClearsLoginRequest(t *testing.T) {
	fake := &fakeBackend{resp: &model.ChatResponse{
		ConversationID: 3,
		Reply:          "please sign in",
		Payload:        map[string]any{"requires_login": true},
	}}
	s := New(fake, model.Identity{}, nil)

	_, err := s.Submit(context.Background(), "ORD-1001")
	require.NoError(t, err)
	require.True(t, s.LoginRequested())

	s.SignIn("alicetan@example.com")
	assert.False(t, s.LoginRequested())
}

func TestLoginMatchingRole(t *testing.T) {
	fake := &fakeBackend{
		resp: chatResponse(1, "ok"),
		loginUser: &model.AuthUser{
			ID:    1,
			Email: "alicetan@example.com",
			Name:  "Alice Tan",
			Role:  model.RoleCustomer,
		},
	}
	s := New(fake, model.Identity{}, nil)

	user, err := s.Login(context.Background(), "alicetan@example.com", "password123", model.RoleCustomer)
	require.NoError(t, err)
	assert.Equal(t, "alicetan@example.com", user.Email)
	assert.Equal(t, "alicetan@example.com", s.Identity().UserIdentifier)
	assert.Equal(t, 1, s.Transcript().Len(), "sign-in confirmation appended")
}

func TestLoginRoleMismatch(t *testing.T) {
	fake := &fakeBackend{
		resp:      chatResponse(1, "ok"),
		loginUser: &model.AuthUser{ID: 11, Email: "admin@example.com", Role: model.RoleAdmin},
	}
	s := New(fake, model.Identity{}, nil)

	_, err := s.Login(context.Background(), "admin@example.com", "password123", model.RoleCustomer)
	var mismatch *RoleMismatchError
	require.ErrorAs(t, err, &mismatch)
	assert.Equal(t, model.RoleAdmin, mismatch.Role)
	assert.Contains(t, err.Error(), "registered as 'admin'")

	// Access refused: no identity, nothing appended.
	assert.False(t, s.Identity().Present())
	assert.Zero(t, s.Transcript().Len())
}

func TestLoginBackendRejection(t *testing.T) {
	fake := &fakeBackend{
		resp:     chatResponse(1, "ok"),
		loginErr: &backend.APIError{StatusCode: 401, Detail: "Invalid email or password"},
	}
	s := New(fake, model.Identity{}, nil)

	_, err := s.Login(context.Background(), "a@b.com", "wrong", model.RoleCustomer)
	require.Error(t, err)
	assert.Equal(t, "Invalid email or password", err.Error())
	assert.False(t, s.Identity().Present())
}
