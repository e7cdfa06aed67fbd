package conversation

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"testing"
	"time"

	"mehfil/models"
	"mehfil/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memRepo struct {
	mu    sync.Mutex
	convs map[string]*models.Conversation
	clock time.Time
}

func newMemRepo() *memRepo {
	return &memRepo{convs: map[string]*models.Conversation{}, clock: time.Date(2025, 10, 1, 0, 0, 0, 0, time.UTC)}
}

func (m *memRepo) tick() time.Time {
	m.clock = m.clock.Add(time.Minute)
	return m.clock
}

func (m *memRepo) Get(_ context.Context, sessionID, userID string) (*models.Conversation, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	c, ok := m.convs[sessionID+"|"+userID]
	if !ok {
		return nil, nil
	}
	cp := *c
	cp.Messages = append([]models.Message(nil), c.Messages...)
	return &cp, nil
}

func (m *memRepo) Append(_ context.Context, sessionID, userID string, msg models.Message) (*models.Conversation, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	key := sessionID + "|" + userID
	c, ok := m.convs[key]
	now := m.tick()
	if !ok {
		c = &models.Conversation{SessionID: sessionID, UserID: userID, Title: models.DefaultConversationTitle, CreatedAt: now}
		m.convs[key] = c
	}
	c.Messages = append(c.Messages, msg)
	c.UpdatedAt = now
	cp := *c
	return &cp, nil
}

func (m *memRepo) SetTitleIfDefault(_ context.Context, sessionID, userID, title string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if c, ok := m.convs[sessionID+"|"+userID]; ok && c.Title == models.DefaultConversationTitle {
		c.Title = title
	}
	return nil
}

func (m *memRepo) Replace(_ context.Context, sessionID, userID string, msgs []models.Message, title string, metadata map[string]any) (*models.Conversation, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	key := sessionID + "|" + userID
	now := m.tick()
	c, ok := m.convs[key]
	if !ok {
		c = &models.Conversation{SessionID: sessionID, UserID: userID, CreatedAt: now}
		m.convs[key] = c
	}
	c.Messages = msgs
	c.Title = title
	if metadata != nil {
		c.Metadata = metadata
	}
	c.UpdatedAt = now
	cp := *c
	return &cp, nil
}

func (m *memRepo) ListByUser(_ context.Context, userID string, limit int64) ([]models.Conversation, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []models.Conversation
	for _, c := range m.convs {
		if c.UserID == userID {
			out = append(out, *c)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].UpdatedAt.After(out[j].UpdatedAt) })
	if int64(len(out)) > limit {
		out = out[:limit]
	}
	return out, nil
}

func textMessage(role, text string) models.Message {
	return models.Message{Role: role, Parts: []models.Part{{Type: models.PartText, Text: text}}}
}

func TestAppendThenHistoryRoundTrip(t *testing.T) {
	svc := &DefaultConversationService{Repo: newMemRepo()}
	ctx := context.Background()

	var sent []string
	for i := 0; i < 10; i++ {
		role := models.RoleUser
		if i%2 == 1 {
			role = models.RoleAssistant
		}
		text := fmt.Sprintf("message %d", i)
		sent = append(sent, text)
		_, err := svc.AppendMessage(ctx, "s1", "u1", textMessage(role, text))
		require.NoError(t, err)

		hist, err := svc.GetHistory(ctx, "s1", "u1")
		require.NoError(t, err)
		require.Len(t, hist.Messages, i+1)
		assert.Equal(t, text, hist.Messages[i].FirstText(), "appended message must be last")
	}

	hist, err := svc.GetHistory(ctx, "s1", "u1")
	require.NoError(t, err)
	for i, m := range hist.Messages {
		assert.Equal(t, sent[i], m.FirstText())
		assert.NotEmpty(t, m.ID)
		assert.False(t, m.CreatedAt.IsZero())
	}
}

func TestAppendSetsTitleOnce(t *testing.T) {
	svc := &DefaultConversationService{Repo: newMemRepo()}
	ctx := context.Background()

	_, err := svc.AppendMessage(ctx, "s1", "u1", textMessage(models.RoleAssistant, "Assalam o Alaikum!"))
	require.NoError(t, err)
	hist, _ := svc.GetHistory(ctx, "s1", "u1")
	assert.Equal(t, models.DefaultConversationTitle, hist.Title)

	long := strings.Repeat("shaadi ", 20)
	conv, err := svc.AppendMessage(ctx, "s1", "u1", textMessage(models.RoleUser, long))
	require.NoError(t, err)
	assert.Equal(t, TitleFrom(long), conv.Title)
	assert.True(t, strings.HasSuffix(conv.Title, "..."))
	assert.Len(t, []rune(conv.Title), 53)

	_, err = svc.AppendMessage(ctx, "s1", "u1", textMessage(models.RoleUser, "second question"))
	require.NoError(t, err)
	hist, _ = svc.GetHistory(ctx, "s1", "u1")
	assert.Equal(t, TitleFrom(long), hist.Title)
}

func TestConversationsAreScopedByUser(t *testing.T) {
	svc := &DefaultConversationService{Repo: newMemRepo()}
	ctx := context.Background()

	_, err := svc.AppendMessage(ctx, "shared", "u1", textMessage(models.RoleUser, "mine"))
	require.NoError(t, err)

	hist, err := svc.GetHistory(ctx, "shared", "u2")
	require.NoError(t, err)
	assert.Empty(t, hist.Messages)
	assert.Equal(t, models.DefaultConversationTitle, hist.Title)
}

func TestSaveConversationReplacesTranscript(t *testing.T) {
	svc := &DefaultConversationService{Repo: newMemRepo()}
	ctx := context.Background()

	_, err := svc.AppendMessage(ctx, "s1", "u1", textMessage(models.RoleUser, "old"))
	require.NoError(t, err)

	msgs := []models.Message{
		textMessage(models.RoleUser, "Lahore mein 300 guests ke liye hall chahiye"),
		textMessage(models.RoleAssistant, "Zaroor! [PRODUCTS]:[hall_001]"),
	}
	conv, err := svc.SaveConversation(ctx, "s1", "u1", msgs, map[string]any{"city": "Lahore"})
	require.NoError(t, err)
	assert.Len(t, conv.Messages, 2)
	assert.Equal(t, "Lahore mein 300 guests ke liye hall chahiye", conv.Title)
	assert.Equal(t, "Lahore", conv.Metadata["city"])
}

func TestSaveConversationRederivesTitle(t *testing.T) {
	svc := &DefaultConversationService{Repo: newMemRepo()}
	ctx := context.Background()

	conv, err := svc.SaveConversation(ctx, "s1", "u1", []models.Message{textMessage(models.RoleUser, "Mehndi ka plan")}, nil)
	require.NoError(t, err)
	require.Equal(t, "Mehndi ka plan", conv.Title)

	conv, err = svc.SaveConversation(ctx, "s1", "u1", []models.Message{textMessage(models.RoleUser, "Baraat ka plan")}, nil)
	require.NoError(t, err)
	assert.Equal(t, "Baraat ka plan", conv.Title)

	conv, err = svc.SaveConversation(ctx, "s1", "u1", []models.Message{textMessage(models.RoleAssistant, "Assalam o Alaikum")}, nil)
	require.NoError(t, err)
	assert.Equal(t, models.DefaultConversationTitle, conv.Title)
}

func TestListConversations(t *testing.T) {
	svc := &DefaultConversationService{Repo: newMemRepo()}
	ctx := context.Background()

	_, err := svc.AppendMessage(ctx, "older", "u1", textMessage(models.RoleUser, "pehli baat"))
	require.NoError(t, err)
	_, err = svc.AppendMessage(ctx, "newer", "u1", textMessage(models.RoleUser, "hall dhoondo"))
	require.NoError(t, err)
	_, err = svc.AppendMessage(ctx, "newer", "u1", textMessage(models.RoleAssistant, "  Ye dekhiye options. [PRODUCTS]:[hall_001, hall_002]  "))
	require.NoError(t, err)

	list, err := svc.ListConversations(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "newer", list[0].SessionID)
	assert.Equal(t, "Ye dekhiye options.", list[0].Preview)
	assert.Equal(t, 2, list[0].MessageCount)
	assert.Equal(t, "hall dhoondo", list[0].Title)
}

func TestPreviewTruncates(t *testing.T) {
	conv := models.Conversation{Messages: []models.Message{textMessage(models.RoleAssistant, strings.Repeat("a", 150))}}
	assert.Len(t, Preview(conv), 100)
}

func TestValidation(t *testing.T) {
	svc := &DefaultConversationService{Repo: newMemRepo()}
	ctx := context.Background()

	_, err := svc.AppendMessage(ctx, "", "u1", textMessage(models.RoleUser, "x"))
	assert.Equal(t, utils.KindValidation, utils.KindOf(err))

	_, err = svc.AppendMessage(ctx, "s1", "", textMessage(models.RoleUser, "x"))
	assert.Equal(t, utils.KindUnauthorized, utils.KindOf(err))

	_, err = svc.AppendMessage(ctx, "s1", "u1", textMessage("robot", "x"))
	assert.ErrorIs(t, err, ErrInvalidRole)
}
