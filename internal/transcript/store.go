// Package transcript provides the append-only message log for a chat session.
package transcript

import (
	"sync"
	"time"

	"github.com/yoonjun1204/chatbot-for-customer-support/internal/model"
)

// Listener is notified after each append. Listeners drive the
// presentation layer: re-render and scroll-to-latest.
type Listener func(model.Message)

// Store is an append-only, ordered log of the messages exchanged in one
// session. Sequence ids are strictly increasing and gapless, starting
// at 1. Messages are never removed or reordered.
type Store struct {
	mu        sync.Mutex
	messages  []model.Message
	listeners []Listener
}

// NewStore creates an empty transcript store.
func NewStore() *Store {
	return &Store{}
}

// Append assigns the next sequence id, stores the message, and returns
// the stored record. Listeners are invoked after the append, in
// registration order, outside the store lock.
func (s *Store) Append(sender model.Sender, text string) model.Message {
	s.mu.Lock()
	msg := model.Message{
		ID:        len(s.messages) + 1,
		Sender:    sender,
		Text:      text,
		CreatedAt: time.Now(),
	}
	s.messages = append(s.messages, msg)
	listeners := s.listeners
	s.mu.Unlock()

	for _, fn := range listeners {
		fn(msg)
	}
	return msg
}

// All returns a snapshot of the transcript in append order.
func (s *Store) All() []model.Message {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]model.Message, len(s.messages))
	copy(out, s.messages)
	return out
}

// Len returns the number of messages appended so far.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.messages)
}

// Subscribe registers a listener for append events.
func (s *Store) Subscribe(fn Listener) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listeners = append(s.listeners, fn)
}
