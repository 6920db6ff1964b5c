package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/yoonjun1204/chatbot-for-customer-support/internal/model"
)

// ErrMalformedResponse is returned when a 2xx chat response is missing
// a required field. Callers treat it the same as a transport failure.
var ErrMalformedResponse = errors.New("malformed backend response")

// APIError is a non-2xx response from the backend. Detail carries the
// backend's human-readable message when one was provided.
type APIError struct {
	StatusCode int
	Detail     string
}

func (e *APIError) Error() string {
	if e.Detail != "" {
		return e.Detail
	}
	return fmt.Sprintf("backend returned status %d", e.StatusCode)
}

// HTTPClient talks to the support backend over HTTP.
type HTTPClient struct {
	baseURL string
	client  *http.Client
}

// NewHTTPClient creates a client for the backend at baseURL.
func NewHTTPClient(baseURL string, timeout time.Duration) *HTTPClient {
	return &HTTPClient{
		baseURL: baseURL,
		client:  &http.Client{Timeout: timeout},
	}
}

// Chat sends POST /api/chat. A response missing the conversation
// identifier or the reply text is rejected as malformed.
func (c *HTTPClient) Chat(ctx context.Context, req *model.ChatRequest) (*model.ChatResponse, error) {
	var resp model.ChatResponse
	if err := c.post(ctx, "/api/chat", req, &resp); err != nil {
		return nil, err
	}
	if resp.ConversationID == 0 || resp.Reply == "" {
		return nil, ErrMalformedResponse
	}
	return &resp, nil
}

// Login sends POST /api/login. Non-2xx responses come back as *APIError
// with the backend's detail string.
func (c *HTTPClient) Login(ctx context.Context, req *model.LoginRequest) (*model.AuthUser, error) {
	var user model.AuthUser
	if err := c.post(ctx, "/api/login", req, &user); err != nil {
		return nil, err
	}
	if user.Email == "" || user.Role == "" {
		return nil, ErrMalformedResponse
	}
	return &user, nil
}

func (c *HTTPClient) post(ctx context.Context, path string, body, out any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("failed to encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := &APIError{StatusCode: resp.StatusCode}
		var detail model.ErrorResponse
		if err := json.NewDecoder(resp.Body).Decode(&detail); err == nil {
			apiErr.Detail = detail.Detail
		}
		return apiErr
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}
	return nil
}
