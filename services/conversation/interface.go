package conversation

import (
	"context"
	"time"

	conversationRepo "mehfil/database/repository/conversation"
	"mehfil/models"
)

const (
	// ListLimit caps the sidebar listing.
	ListLimit    = 50
	titleRunes   = 50
	previewRunes = 100
)

// ConversationService stores and lists chat transcripts per user.
type ConversationService interface {
	AppendMessage(ctx context.Context, sessionID, userID string, msg models.Message) (*models.Conversation, error)
	SaveConversation(ctx context.Context, sessionID, userID string, msgs []models.Message, metadata map[string]any) (*models.Conversation, error)
	GetHistory(ctx context.Context, sessionID, userID string) (*models.Conversation, error)
	ListConversations(ctx context.Context, userID string) ([]models.ConversationSummary, error)
}

// DefaultConversationService implements ConversationService.
type DefaultConversationService struct {
	Repo conversationRepo.ConversationRepository
	Now  func() time.Time
}

func (s *DefaultConversationService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}
