// Package service provides the business logic of the support API.
package service

import (
	"fmt"
	"sync"
	"time"

	"github.com/yoonjun1204/chatbot-for-customer-support/internal/model"
	"github.com/yoonjun1204/chatbot-for-customer-support/pkg/metrics"
)

// Conversation is one dialogue correlated by the backend-assigned id.
type Conversation struct {
	ID        int64
	UserID    string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// StoredMessage is a message persisted in a conversation log.
type StoredMessage struct {
	ID             int64        `json:"id"`
	ConversationID int64        `json:"conversation_id"`
	Sender         model.Sender `json:"sender"`
	Text           string       `json:"text"`
	CreatedAt      time.Time    `json:"created_at"`
}

// ConversationService keeps the conversation and message log in memory.
// Nothing survives a restart; the demo posture of the original system.
type ConversationService struct {
	mu            sync.RWMutex
	nextConvID    int64
	nextMsgID     int64
	conversations map[int64]*Conversation
	messages      map[int64][]StoredMessage
}

// NewConversationService creates an empty in-memory conversation store.
func NewConversationService() *ConversationService {
	return &ConversationService{
		conversations: make(map[int64]*Conversation),
		messages:      make(map[int64][]StoredMessage),
	}
}

// FindOrCreate resolves the conversation for a turn. A zero or unknown
// id creates a new conversation owned by userID ("anonymous" when
// empty); an existing conversation adopts userID when the caller has
// signed in since the previous turn.
func (s *ConversationService) FindOrCreate(conversationID int64, userID string) *Conversation {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	if conversationID != 0 {
		if conv, ok := s.conversations[conversationID]; ok {
			if userID != "" && conv.UserID != userID {
				conv.UserID = userID
			}
			conv.UpdatedAt = now
			return conv
		}
	}

	if userID == "" {
		userID = "anonymous"
	}
	s.nextConvID++
	conv := &Conversation{
		ID:        s.nextConvID,
		UserID:    userID,
		CreatedAt: now,
		UpdatedAt: now,
	}
	s.conversations[conv.ID] = conv
	metrics.ConversationsTotal.Inc()
	return conv
}

// AppendMessage stores one message in a conversation log.
func (s *ConversationService) AppendMessage(conversationID int64, sender model.Sender, text string) StoredMessage {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextMsgID++
	msg := StoredMessage{
		ID:             s.nextMsgID,
		ConversationID: conversationID,
		Sender:         sender,
		Text:           text,
		CreatedAt:      time.Now(),
	}
	s.messages[conversationID] = append(s.messages[conversationID], msg)
	return msg
}

// Messages returns the log of a conversation in append order.
func (s *ConversationService) Messages(conversationID int64) ([]StoredMessage, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if _, ok := s.conversations[conversationID]; !ok {
		return nil, fmt.Errorf("conversation %d not found", conversationID)
	}
	msgs := s.messages[conversationID]
	out := make([]StoredMessage, len(msgs))
	copy(out, msgs)
	return out, nil
}
