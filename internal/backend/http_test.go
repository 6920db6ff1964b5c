package backend

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yoonjun1204/chatbot-for-customer-support/internal/model"
)

func TestChatSendsWireFormat(t *testing.T) {
	var gotBody map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/chat", r.URL.Path)
		require.Equal(t, "application/json", r.Header.Get("Content-Type"))
		b, _ := io.ReadAll(r.Body)
		require.NoError(t, json.Unmarshal(b, &gotBody))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"conversation_id":42,"reply":"Can you share your order number?","intent":"order_status","entities":{},"quick_replies":[],"payload":{}}`))
	}))
	defer srv.Close()

	c := NewHTTPClient(srv.URL, 5*time.Second)
	resp, err := c.Chat(context.Background(), &model.ChatRequest{Message: "Where is my order?"})
	require.NoError(t, err)

	assert.Equal(t, int64(42), resp.ConversationID)
	assert.Equal(t, "Can you share your order number?", resp.Reply)

	// Unset fields must go out as explicit nulls.
	assert.Equal(t, "Where is my order?", gotBody["message"])
	assert.Nil(t, gotBody["conversation_id"])
	assert.Nil(t, gotBody["user_id"])
}

func TestChatEchoesIdentifiers(t *testing.T) {
	var gotBody map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		b, _ := io.ReadAll(r.Body)
		json.Unmarshal(b, &gotBody)
		w.Write([]byte(`{"conversation_id":42,"reply":"ok"}`))
	}))
	defer srv.Close()

	conversationID := int64(42)
	userID := "alicetan@example.com"
	c := NewHTTPClient(srv.URL, 5*time.Second)
	_, err := c.Chat(context.Background(), &model.ChatRequest{
		Message:        "ORD-1001",
		ConversationID: &conversationID,
		UserID:         &userID,
	})
	require.NoError(t, err)

	assert.Equal(t, float64(42), gotBody["conversation_id"])
	assert.Equal(t, "alicetan@example.com", gotBody["user_id"])
}

func TestChatMalformedResponse(t *testing.T) {
	cases := map[string]string{
		"missing reply":           `{"conversation_id":42}`,
		"missing conversation id": `{"reply":"hello"}`,
		"not json":                `<html>oops</html>`,
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(body))
			}))
			defer srv.Close()

			c := NewHTTPClient(srv.URL, 5*time.Second)
			_, err := c.Chat(context.Background(), &model.ChatRequest{Message: "hi"})
			assert.ErrorIs(t, err, ErrMalformedResponse)
		})
	}
}

func TestChatTransportFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // refuse connections

	c := NewHTTPClient(srv.URL, time.Second)
	_, err := c.Chat(context.Background(), &model.ChatRequest{Message: "hi"})
	assert.Error(t, err)
}

func TestChatNon2xx(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"detail":"boom"}`))
	}))
	defer srv.Close()

	c := NewHTTPClient(srv.URL, 5*time.Second)
	_, err := c.Chat(context.Background(), &model.ChatRequest{Message: "hi"})

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusInternalServerError, apiErr.StatusCode)
	assert.Equal(t, "boom", apiErr.Detail)
}

func TestLoginSuccess(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/login", r.URL.Path)
		w.Write([]byte(`{"id":1,"email":"alicetan@example.com","name":"Alice Tan","role":"customer"}`))
	}))
	defer srv.Close()

	c := NewHTTPClient(srv.URL, 5*time.Second)
	user, err := c.Login(context.Background(), &model.LoginRequest{Email: "alicetan@example.com", Password: "password123"})
	require.NoError(t, err)

	assert.Equal(t, int64(1), user.ID)
	assert.Equal(t, model.RoleCustomer, user.Role)
}

func TestLoginRejectionCarriesDetail(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"detail":"Invalid email or password"}`))
	}))
	defer srv.Close()

	c := NewHTTPClient(srv.URL, 5*time.Second)
	_, err := c.Login(context.Background(), &model.LoginRequest{Email: "a@b.com", Password: "nope"})

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "Invalid email or password", apiErr.Error())
}
