package session

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/yoonjun1204/chatbot-for-customer-support/internal/model"
	"github.com/yoonjun1204/chatbot-for-customer-support/pkg/metrics"
)

// RoleMismatchError is returned by Login when the account's role
// differs from the role the user selected on the login screen. The
// credentials were accepted by the backend; access is still refused
// client-side.
type RoleMismatchError struct {
	Role model.UserRole
}

func (e *RoleMismatchError) Error() string {
	return fmt.Sprintf("This account is registered as '%s'. Please select the correct role.", e.Role)
}

// SignIn sets the identity carried by future turns and appends a local
// confirmation message. The identifier is an unverified correlation
// token; no network call is made and the conversation handle and
// transcript are untouched.
func (s *Session) SignIn(identifier string) model.Identity {
	s.mu.Lock()
	s.identity = model.Identity{UserIdentifier: identifier}
	s.loginRequested = false
	identity := s.identity
	s.mu.Unlock()

	s.store.Append(model.SenderAssistant,
		fmt.Sprintf("You're signed in as %s. I can look up your orders now.", identifier))
	metrics.SignInsTotal.Inc()
	s.logger.Info("signed in", zap.String("user", identifier))
	return identity
}

// SignOut clears the identity and appends a local notice message.
// Future turns go out as guest; past messages are unaffected.
func (s *Session) SignOut() model.Identity {
	s.mu.Lock()
	s.identity = model.Identity{}
	s.mu.Unlock()

	s.store.Append(model.SenderAssistant,
		"You've been signed out. You can keep chatting as a guest.")
	metrics.SignOutsTotal.Inc()
	s.logger.Info("signed out")
	return model.Identity{}
}

// Login authenticates against the backend's login endpoint and, when
// the account's role matches selectedRole, signs the session in with
// the account email. Backend rejections and role mismatches come back
// as errors with user-facing messages; nothing is appended to the
// transcript on failure.
func (s *Session) Login(ctx context.Context, email, password string, selectedRole model.UserRole) (*model.AuthUser, error) {
	user, err := s.backend.Login(ctx, &model.LoginRequest{Email: email, Password: password})
	if err != nil {
		return nil, err
	}
	if user.Role != selectedRole {
		return nil, &RoleMismatchError{Role: user.Role}
	}
	s.SignIn(user.Email)
	return user, nil
}
