package conversationRepo

import (
	"context"

	"mehfil/models"
)

// ConversationRepository stores one transcript per (sessionId, userId).
type ConversationRepository interface {
	// Get returns the conversation, or nil when none exists.
	Get(ctx context.Context, sessionID, userID string) (*models.Conversation, error)
	// Append pushes msg, creating the conversation if needed, and returns the updated record.
	Append(ctx context.Context, sessionID, userID string, msg models.Message) (*models.Conversation, error)
	// SetTitleIfDefault sets title only while the conversation still has the default title.
	SetTitleIfDefault(ctx context.Context, sessionID, userID, title string) error
	// Replace overwrites the transcript and title. A nil metadata leaves the stored one.
	Replace(ctx context.Context, sessionID, userID string, msgs []models.Message, title string, metadata map[string]any) (*models.Conversation, error)
	// ListByUser returns up to limit conversations, most recently updated first.
	ListByUser(ctx context.Context, userID string, limit int64) ([]models.Conversation, error)
}
