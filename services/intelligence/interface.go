package ai

import (
	"context"
	"time"

	"mehfil/models"
	"mehfil/services/booking"
	"mehfil/services/planner"

	"go.uber.org/zap"
)

const (
	defaultMaxSteps    = 10
	defaultMaxDuration = 60 * time.Second
)

// ToolCall is a function call requested by the model.
type ToolCall struct {
	ID   string
	Name string
	Args map[string]any
}

// ToolResult answers one ToolCall.
type ToolResult struct {
	CallID string
	Name   string
	Output map[string]any
}

// ModelTurn is one model response: text and any tool calls it asked for.
type ModelTurn struct {
	Text  string
	Calls []ToolCall
}

// ChatSession is a running exchange with the model.
type ChatSession interface {
	Send(ctx context.Context, text string) (*ModelTurn, error)
	SendToolResults(ctx context.Context, results []ToolResult) (*ModelTurn, error)
}

// ChatModel opens chat sessions. history holds earlier turns, oldest first.
type ChatModel interface {
	StartChat(ctx context.Context, system string, tools []ToolDecl, history []models.Message) (ChatSession, error)
}

// PlanningStore keeps what the assistant learned about an event between turns.
type PlanningStore interface {
	Load(ctx context.Context, key string) (models.PlanningState, error)
	Save(ctx context.Context, key string, state models.PlanningState) error
}

// Turn is one user request to the assistant.
type Turn struct {
	SessionID string
	Caller    booking.Caller
	Messages  []models.Message
}

// StreamEvent is one server-sent event of a chat turn.
type StreamEvent struct {
	Type       string   `json:"type"`
	MessageID  string   `json:"messageId,omitempty"`
	ID         string   `json:"id,omitempty"`
	Delta      string   `json:"delta,omitempty"`
	ToolCallID string   `json:"toolCallId,omitempty"`
	ToolName   string   `json:"toolName,omitempty"`
	Input      any      `json:"input,omitempty"`
	Output     any      `json:"output,omitempty"`
	ErrorText  string   `json:"errorText,omitempty"`
	Products   []string `json:"products,omitempty"`
}

// Emitter receives stream events in order. An error stops the turn.
type Emitter func(StreamEvent) error

type ChatService interface {
	// Chat runs one assistant turn, streaming events, and returns the assistant message.
	Chat(ctx context.Context, turn Turn, emit Emitter) (*models.Message, error)
}

// DefaultChatService runs the tool-calling loop against a ChatModel.
type DefaultChatService struct {
	Model       ChatModel
	Planner     planner.PlannerService
	Bookings    booking.BookingService
	Memory      PlanningStore
	MaxSteps    int
	MaxDuration time.Duration
	Logger      *zap.Logger
	Now         func() time.Time
}

func (s *DefaultChatService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

func (s *DefaultChatService) logger() *zap.Logger {
	if s.Logger != nil {
		return s.Logger
	}
	return zap.NewNop()
}
