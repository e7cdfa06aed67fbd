package models

import "time"

const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
	RoleSystem    = "system"

	PartText      = "text"
	PartReasoning = "reasoning"
	// PartToolPrefix prefixes tool invocation part types, e.g. "tool-createBooking".
	PartToolPrefix = "tool-"

	ToolStateInputAvailable  = "input-available"
	ToolStateOutputAvailable = "output-available"
	ToolStateOutputError     = "output-error"

	DefaultConversationTitle = "New conversation"
)

// Part is one piece of a chat message: text, reasoning or a tool invocation.
type Part struct {
	Type       string `bson:"type" json:"type"`
	Text       string `bson:"text,omitempty" json:"text,omitempty"`
	State      string `bson:"state,omitempty" json:"state,omitempty"`
	ToolCallID string `bson:"toolCallId,omitempty" json:"toolCallId,omitempty"`
	Input      any    `bson:"input,omitempty" json:"input,omitempty"`
	Output     any    `bson:"output,omitempty" json:"output,omitempty"`
	ErrorText  string `bson:"errorText,omitempty" json:"errorText,omitempty"`
}

// Message is one chat turn.
type Message struct {
	ID        string    `bson:"id" json:"id"`
	Role      string    `bson:"role" json:"role"`
	Parts     []Part    `bson:"parts" json:"parts"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
}

// FirstText returns the first text part of the message, or "".
func (m Message) FirstText() string {
	for _, p := range m.Parts {
		if p.Type == PartText && p.Text != "" {
			return p.Text
		}
	}
	return ""
}

// Conversation is the stored transcript for one chat session of one user.
type Conversation struct {
	SessionID string         `bson:"sessionId" json:"sessionId"`
	UserID    string         `bson:"userId" json:"userId"`
	Title     string         `bson:"title" json:"title"`
	Messages  []Message      `bson:"messages" json:"messages"`
	Metadata  map[string]any `bson:"metadata,omitempty" json:"metadata,omitempty"`
	CreatedAt time.Time      `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time      `bson:"updatedAt" json:"updatedAt"`
}

// ConversationSummary is a list entry for the conversation sidebar.
type ConversationSummary struct {
	SessionID    string    `json:"sessionId"`
	Title        string    `json:"title"`
	Preview      string    `json:"preview"`
	MessageCount int       `json:"messageCount"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}
