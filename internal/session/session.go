// Package session implements the chat session client: the turn
// controller that drives one request/response cycle against the support
// backend, and the auth gate that carries the lightweight identity.
package session

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/yoonjun1204/chatbot-for-customer-support/internal/backend"
	"github.com/yoonjun1204/chatbot-for-customer-support/internal/model"
	"github.com/yoonjun1204/chatbot-for-customer-support/internal/transcript"
	"github.com/yoonjun1204/chatbot-for-customer-support/pkg/logger"
	"github.com/yoonjun1204/chatbot-for-customer-support/pkg/metrics"
)

// ErrBusy is returned when Submit is called while another exchange is
// still in flight. Callers are expected to check Loading first; the
// call is rejected, not queued.
var ErrBusy = errors.New("a request is already in flight")

const (
	greetingText = "Hi! 👋 I'm your shirt support chatbot. I can help with product info, order status, and returns."
	apologyText  = "Sorry, something went wrong while talking to the server. Please try again."
)

var defaultQuickReplies = []string{
	"Ask about shirts",
	"Check order status",
	"Return / exchange policy",
}

// Session owns the state of one conversation surface: the transcript,
// the backend-assigned conversation identifier, the current quick-reply
// set, and the identity cell. Exactly one exchange may be in flight at
// a time.
type Session struct {
	backend backend.Client
	store   *transcript.Store
	logger  *logger.Logger

	mu             sync.Mutex
	loading        bool
	opened         bool
	conversationID int64
	quickReplies   []string
	identity       model.Identity
	loginRequested bool
}

// New creates a session talking to client. The initial identity is
// passed explicitly (restored from the auth store, or zero for a
// guest); it is not read from any ambient state.
func New(client backend.Client, identity model.Identity, log *logger.Logger) *Session {
	if log == nil {
		log = logger.Global()
	}
	return &Session{
		backend:  client,
		store:    transcript.NewStore(),
		logger:   log.With(zap.String("session_id", uuid.New().String())),
		identity: identity,
	}
}

// Transcript returns the session's transcript store.
func (s *Session) Transcript() *transcript.Store {
	return s.store
}

// Open marks the conversation surface visible. The first open of an
// empty transcript synthesizes the greeting and the default quick
// replies locally, without a network call; reopening a non-empty
// session does nothing.
func (s *Session) Open() {
	s.mu.Lock()
	if s.opened || s.store.Len() > 0 {
		s.mu.Unlock()
		return
	}
	s.opened = true
	s.quickReplies = append([]string(nil), defaultQuickReplies...)
	s.mu.Unlock()

	s.store.Append(model.SenderAssistant, greetingText)
}

// Submit runs one turn: append the customer message, send it to the
// backend with the current conversation identifier and identity, and
// apply the reply. Blank input is a no-op returning (nil, nil). On
// transport failure or a malformed response the apology message is
// appended, the conversation handle and quick replies are left alone,
// and the returned result carries Failed.
func (s *Session) Submit(ctx context.Context, rawText string) (*model.TurnResult, error) {
	text := strings.TrimSpace(rawText)
	if text == "" {
		return nil, nil
	}

	s.mu.Lock()
	if s.loading {
		s.mu.Unlock()
		return nil, ErrBusy
	}
	s.loading = true
	conversationID := s.conversationID
	identity := s.identity
	s.mu.Unlock()

	defer func() {
		s.mu.Lock()
		s.loading = false
		s.mu.Unlock()
	}()

	s.store.Append(model.SenderCustomer, text)
	metrics.MessagesTotal.WithLabelValues(string(model.SenderCustomer)).Inc()

	req := &model.ChatRequest{Message: text}
	if conversationID != 0 {
		req.ConversationID = &conversationID
	}
	if identity.Present() {
		req.UserID = &identity.UserIdentifier
	}

	start := time.Now()
	resp, err := s.backend.Chat(ctx, req)
	if err != nil {
		s.logger.Warn("turn failed",
			zap.Int64("conversation_id", conversationID),
			zap.Error(err),
		)
		s.store.Append(model.SenderAssistant, apologyText)
		metrics.MessagesTotal.WithLabelValues(string(model.SenderAssistant)).Inc()
		metrics.RecordTurn("failure", time.Since(start).Seconds())
		return &model.TurnResult{Failed: true, Reason: err.Error()}, nil
	}

	payload := model.ParsePayload(resp.Payload)

	s.mu.Lock()
	s.conversationID = resp.ConversationID
	s.quickReplies = append([]string(nil), resp.QuickReplies...)
	promptLogin := payload.RequiresLogin && !s.identity.Present()
	if promptLogin {
		s.loginRequested = true
	}
	s.mu.Unlock()

	s.store.Append(model.SenderAssistant, resp.Reply)
	metrics.MessagesTotal.WithLabelValues(string(model.SenderAssistant)).Inc()
	metrics.RecordTurn("success", time.Since(start).Seconds())

	s.logger.Debug("turn completed",
		zap.Int64("conversation_id", resp.ConversationID),
		zap.String("intent", resp.Intent),
		zap.Bool("login_requested", promptLogin),
	)

	return &model.TurnResult{
		ConversationID: resp.ConversationID,
		Reply:          resp.Reply,
		QuickReplies:   append([]string(nil), resp.QuickReplies...),
		Payload:        payload,
	}, nil
}

// ChooseQuickReply submits a suggested reply. Selecting a suggestion is
// the same turn as typing it.
func (s *Session) ChooseQuickReply(ctx context.Context, text string) (*model.TurnResult, error) {
	return s.Submit(ctx, text)
}

// Loading reports whether an exchange is in flight.
func (s *Session) Loading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loading
}

// ConversationID returns the backend-assigned conversation identifier,
// or 0 before the first successful exchange.
func (s *Session) ConversationID() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.conversationID
}

// QuickReplies returns the current suggestion set.
func (s *Session) QuickReplies() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.quickReplies...)
}

// Identity returns the identity carried by future turns.
func (s *Session) Identity() model.Identity {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.identity
}

// LoginRequested reports whether the backend has asked for an identity
// on a gated turn while the session was a guest. It is a hint for the
// presentation layer, not an enforcement: a guest can keep chatting.
func (s *Session) LoginRequested() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loginRequested
}
