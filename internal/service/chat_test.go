package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yoonjun1204/chatbot-for-customer-support/internal/model"
	"github.com/yoonjun1204/chatbot-for-customer-support/pkg/logger"
)

func newChatService() *ChatService {
	return NewChatService(NewConversationService(), NewDirectory(), logger.Global())
}

func TestHandleMintsConversation(t *testing.T) {
	svc := newChatService()

	resp := svc.Handle(&model.ChatRequest{Message: "hello"})
	require.NotZero(t, resp.ConversationID)
	assert.Equal(t, IntentGreet, resp.Intent)
	assert.NotEmpty(t, resp.Reply)
	assert.NotEmpty(t, resp.QuickReplies)
}

func TestHandleCorrelatesTurns(t *testing.T) {
	svc := newChatService()

	first := svc.Handle(&model.ChatRequest{Message: "hello"})
	id := first.ConversationID

	second := svc.Handle(&model.ChatRequest{Message: "Where is my order?", ConversationID: &id})
	assert.Equal(t, id, second.ConversationID)

	msgs, err := svc.conversations.Messages(id)
	require.NoError(t, err)
	require.Len(t, msgs, 4)
	assert.Equal(t, model.SenderCustomer, msgs[0].Sender)
	assert.Equal(t, model.SenderAssistant, msgs[1].Sender)
}

func TestHandleAdoptsUserAfterSignIn(t *testing.T) {
	svc := newChatService()

	first := svc.Handle(&model.ChatRequest{Message: "ORD-1001"})
	assert.Equal(t, true, first.Payload["requires_login"])

	id := first.ConversationID
	userID := "alicetan@example.com"
	second := svc.Handle(&model.ChatRequest{
		Message:        "ORD-1001",
		ConversationID: &id,
		UserID:         &userID,
	})

	assert.NotContains(t, second.Payload, "requires_login")
	require.Contains(t, second.Payload, "order")
	assert.Equal(t, userID, second.Entities["user_identifier"])
}

func TestHandleUnknownConversationCreatesNew(t *testing.T) {
	svc := newChatService()

	stale := int64(999)
	resp := svc.Handle(&model.ChatRequest{Message: "hello", ConversationID: &stale})
	assert.NotEqual(t, stale, resp.ConversationID)
}
