package ai

import (
	"context"
	"fmt"
	"strings"

	"mehfil/models"

	"github.com/google/generative-ai-go/genai"
	"github.com/google/uuid"
	"google.golang.org/api/option"
)

// GeminiModel adapts the Gemini SDK to ChatModel.
type GeminiModel struct {
	client *genai.Client
	name   string
}

func NewGeminiModel(ctx context.Context, apiKey, modelName string) (*GeminiModel, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("gemini API key is not configured")
	}
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}
	return &GeminiModel{client: client, name: modelName}, nil
}

func (g *GeminiModel) Close() error {
	return g.client.Close()
}

func (g *GeminiModel) StartChat(_ context.Context, system string, tools []ToolDecl, history []models.Message) (ChatSession, error) {
	model := g.client.GenerativeModel(g.name)
	model.SystemInstruction = genai.NewUserContent(genai.Text(system))
	if len(tools) > 0 {
		model.Tools = []*genai.Tool{{FunctionDeclarations: functionDeclarations(tools)}}
	}

	cs := model.StartChat()
	cs.History = toContents(history)
	return &geminiSession{cs: cs}, nil
}

type geminiSession struct {
	cs *genai.ChatSession
}

func (s *geminiSession) Send(ctx context.Context, text string) (*ModelTurn, error) {
	resp, err := s.cs.SendMessage(ctx, genai.Text(text))
	if err != nil {
		return nil, fmt.Errorf("gemini generate error: %w", err)
	}
	return turnFromResponse(resp)
}

func (s *geminiSession) SendToolResults(ctx context.Context, results []ToolResult) (*ModelTurn, error) {
	parts := make([]genai.Part, 0, len(results))
	for _, r := range results {
		parts = append(parts, genai.FunctionResponse{Name: r.Name, Response: r.Output})
	}
	resp, err := s.cs.SendMessage(ctx, parts...)
	if err != nil {
		return nil, fmt.Errorf("gemini generate error: %w", err)
	}
	return turnFromResponse(resp)
}

func turnFromResponse(resp *genai.GenerateContentResponse) (*ModelTurn, error) {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return nil, fmt.Errorf("gemini returned no candidates")
	}
	turn := &ModelTurn{}
	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		switch p := part.(type) {
		case genai.Text:
			sb.WriteString(string(p))
		case genai.FunctionCall:
			turn.Calls = append(turn.Calls, ToolCall{ID: uuid.New().String(), Name: p.Name, Args: p.Args})
		}
	}
	turn.Text = strings.TrimSpace(sb.String())
	return turn, nil
}

func schemaFor(p Param) *genai.Schema {
	s := &genai.Schema{Description: p.Description}
	switch p.Kind {
	case KindString:
		s.Type = genai.TypeString
	case KindNumber:
		s.Type = genai.TypeNumber
	case KindInteger:
		s.Type = genai.TypeInteger
	case KindStringArray:
		s.Type = genai.TypeArray
		s.Items = &genai.Schema{Type: genai.TypeString}
	}
	return s
}

func functionDeclarations(tools []ToolDecl) []*genai.FunctionDeclaration {
	decls := make([]*genai.FunctionDeclaration, 0, len(tools))
	for _, t := range tools {
		params := &genai.Schema{Type: genai.TypeObject, Properties: map[string]*genai.Schema{}}
		for _, p := range t.Params {
			params.Properties[p.Name] = schemaFor(p)
			if p.Required {
				params.Required = append(params.Required, p.Name)
			}
		}
		decls = append(decls, &genai.FunctionDeclaration{Name: t.Name, Description: t.Description, Parameters: params})
	}
	return decls
}

// toContents keeps the text of earlier turns. Consecutive turns of the same
// role are merged because the API expects roles to alternate.
func toContents(history []models.Message) []*genai.Content {
	var out []*genai.Content
	for _, m := range history {
		var role string
		switch m.Role {
		case models.RoleUser:
			role = "user"
		case models.RoleAssistant:
			role = "model"
		default:
			continue
		}
		var parts []genai.Part
		for _, p := range m.Parts {
			if p.Type == models.PartText && strings.TrimSpace(p.Text) != "" {
				parts = append(parts, genai.Text(p.Text))
			}
		}
		if len(parts) == 0 {
			continue
		}
		if n := len(out); n > 0 && out[n-1].Role == role {
			out[n-1].Parts = append(out[n-1].Parts, parts...)
			continue
		}
		out = append(out, &genai.Content{Role: role, Parts: parts})
	}
	return out
}
