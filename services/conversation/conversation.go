package conversation

import (
	"context"
	"strings"

	"mehfil/models"
	"mehfil/utils"

	"github.com/google/uuid"
)

var (
	ErrMissingSession  = utils.NewValidationError("sessionId is required")
	ErrUnauthenticated = utils.NewUnauthorizedError("Unauthorized")
	ErrInvalidRole     = utils.NewValidationError("Message role must be user, assistant or system")
)

func truncateRunes(s string, n int) (string, bool) {
	r := []rune(s)
	if len(r) <= n {
		return s, false
	}
	return string(r[:n]), true
}

// TitleFrom builds a conversation title from the first user text.
func TitleFrom(text string) string {
	title, cut := truncateRunes(text, titleRunes)
	if cut {
		title += "..."
	}
	return title
}

func validKey(sessionID, userID string) error {
	if userID == "" {
		return ErrUnauthenticated
	}
	if strings.TrimSpace(sessionID) == "" {
		return ErrMissingSession
	}
	return nil
}

func (s *DefaultConversationService) normalize(msg *models.Message) error {
	switch msg.Role {
	case models.RoleUser, models.RoleAssistant, models.RoleSystem:
	default:
		return ErrInvalidRole
	}
	if msg.ID == "" {
		msg.ID = uuid.NewString()
	}
	if msg.CreatedAt.IsZero() {
		msg.CreatedAt = s.now()
	}
	if msg.Parts == nil {
		msg.Parts = []models.Part{}
	}
	return nil
}

// AppendMessage adds msg to the end of the transcript, creating it if needed.
// The first user message with text names the conversation.
func (s *DefaultConversationService) AppendMessage(ctx context.Context, sessionID, userID string, msg models.Message) (*models.Conversation, error) {
	if err := validKey(sessionID, userID); err != nil {
		return nil, err
	}
	if err := s.normalize(&msg); err != nil {
		return nil, err
	}

	conv, err := s.Repo.Append(ctx, sessionID, userID, msg)
	if err != nil {
		return nil, err
	}

	if conv.Title == models.DefaultConversationTitle && msg.Role == models.RoleUser {
		if text := msg.FirstText(); text != "" {
			title := TitleFrom(text)
			if err := s.Repo.SetTitleIfDefault(ctx, sessionID, userID, title); err != nil {
				return nil, err
			}
			conv.Title = title
		}
	}
	return conv, nil
}

// SaveConversation replaces the whole transcript. The title is re-derived from
// the first user text on every save, falling back to the default, so a stored
// title never outlives the transcript it was taken from.
func (s *DefaultConversationService) SaveConversation(ctx context.Context, sessionID, userID string, msgs []models.Message, metadata map[string]any) (*models.Conversation, error) {
	if err := validKey(sessionID, userID); err != nil {
		return nil, err
	}
	title := models.DefaultConversationTitle
	titled := false
	for i := range msgs {
		if err := s.normalize(&msgs[i]); err != nil {
			return nil, err
		}
		if !titled && msgs[i].Role == models.RoleUser {
			titled = true
			if text := msgs[i].FirstText(); text != "" {
				title = TitleFrom(text)
			}
		}
	}
	return s.Repo.Replace(ctx, sessionID, userID, msgs, title, metadata)
}

// GetHistory returns the transcript, or an empty default when none exists.
func (s *DefaultConversationService) GetHistory(ctx context.Context, sessionID, userID string) (*models.Conversation, error) {
	if err := validKey(sessionID, userID); err != nil {
		return nil, err
	}
	conv, err := s.Repo.Get(ctx, sessionID, userID)
	if err != nil {
		return nil, err
	}
	if conv == nil {
		now := s.now()
		return &models.Conversation{
			SessionID: sessionID,
			UserID:    userID,
			Title:     models.DefaultConversationTitle,
			Messages:  []models.Message{},
			Metadata:  map[string]any{},
			CreatedAt: now,
			UpdatedAt: now,
		}, nil
	}
	if conv.Messages == nil {
		conv.Messages = []models.Message{}
	}
	if conv.Metadata == nil {
		conv.Metadata = map[string]any{}
	}
	if conv.Title == "" {
		conv.Title = models.DefaultConversationTitle
	}
	return conv, nil
}

// Preview is the first text of the last message without product markers.
func Preview(conv models.Conversation) string {
	if len(conv.Messages) == 0 {
		return ""
	}
	text := conv.Messages[len(conv.Messages)-1].FirstText()
	preview, _ := truncateRunes(utils.StripProducts(text), previewRunes)
	return preview
}

// ListConversations returns up to fifty summaries, most recent first.
func (s *DefaultConversationService) ListConversations(ctx context.Context, userID string) ([]models.ConversationSummary, error) {
	if userID == "" {
		return nil, ErrUnauthenticated
	}
	convs, err := s.Repo.ListByUser(ctx, userID, ListLimit)
	if err != nil {
		return nil, err
	}
	out := make([]models.ConversationSummary, 0, len(convs))
	for _, c := range convs {
		out = append(out, models.ConversationSummary{
			SessionID:    c.SessionID,
			Title:        c.Title,
			Preview:      Preview(c),
			MessageCount: len(c.Messages),
			CreatedAt:    c.CreatedAt,
			UpdatedAt:    c.UpdatedAt,
		})
	}
	return out, nil
}
