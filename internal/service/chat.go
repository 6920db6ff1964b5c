package service

import (
	"go.uber.org/zap"

	"github.com/yoonjun1204/chatbot-for-customer-support/internal/model"
	"github.com/yoonjun1204/chatbot-for-customer-support/pkg/logger"
)

// ChatService runs one turn of the support dialogue: resolve the
// conversation, log the customer message, classify, answer, log the
// reply.
type ChatService struct {
	conversations *ConversationService
	directory     *Directory
	logger        *logger.Logger
}

// NewChatService creates a chat service.
func NewChatService(conversations *ConversationService, directory *Directory, log *logger.Logger) *ChatService {
	return &ChatService{
		conversations: conversations,
		directory:     directory,
		logger:        log,
	}
}

// Handle processes one chat request and builds the wire response.
func (s *ChatService) Handle(req *model.ChatRequest) *model.ChatResponse {
	var conversationID int64
	if req.ConversationID != nil {
		conversationID = *req.ConversationID
	}
	var userID string
	if req.UserID != nil {
		userID = *req.UserID
	}

	conv := s.conversations.FindOrCreate(conversationID, userID)
	s.conversations.AppendMessage(conv.ID, model.SenderCustomer, req.Message)

	intent, entities := Classify(req.Message)
	entities["user_identifier"] = conv.UserID

	reply, payload := s.directory.HandleIntent(intent, entities, conv.UserID)
	s.conversations.AppendMessage(conv.ID, model.SenderAssistant, reply)

	s.logger.Debug("turn handled",
		zap.Int64("conversation_id", conv.ID),
		zap.String("intent", intent),
		zap.String("user_id", conv.UserID),
	)

	return &model.ChatResponse{
		ConversationID: conv.ID,
		Reply:          reply,
		Intent:         intent,
		Entities:       entities,
		QuickReplies:   QuickReplies(intent),
		Payload:        payload,
	}
}
