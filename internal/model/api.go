package model

// ChatRequest is the request body for POST /api/chat. ConversationID and
// UserID marshal as null when unset so the backend can distinguish "new
// conversation" and "guest" from empty values.
type ChatRequest struct {
	Message        string  `json:"message"`
	ConversationID *int64  `json:"conversation_id"`
	UserID         *string `json:"user_id"`
}

// ChatResponse is the response body for POST /api/chat. ConversationID
// and Reply are required; QuickReplies defaults to empty and Payload is
// an open map of backend-defined side signals.
type ChatResponse struct {
	ConversationID int64          `json:"conversation_id"`
	Reply          string         `json:"reply"`
	Intent         string         `json:"intent"`
	Entities       map[string]any `json:"entities"`
	QuickReplies   []string       `json:"quick_replies"`
	Payload        map[string]any `json:"payload"`
}

// LoginRequest is the request body for POST /api/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// ErrorResponse is the error body returned by the backend on non-2xx
// responses; Detail is a human-readable message surfaced verbatim.
type ErrorResponse struct {
	Detail string `json:"detail"`
}
