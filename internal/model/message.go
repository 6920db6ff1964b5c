// Package model defines data structures for the support chat client.
package model

import (
	"time"
)

// Sender identifies who produced a transcript message.
type Sender string

const (
	SenderCustomer  Sender = "customer"
	SenderAssistant Sender = "assistant"
)

// Message is one entry in a session transcript. Messages are immutable
// once appended; ID is a per-session sequence number assigned by the
// transcript store, starting at 1 with no gaps.
type Message struct {
	ID        int       `json:"id"`
	Sender    Sender    `json:"sender"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"created_at"`
}
