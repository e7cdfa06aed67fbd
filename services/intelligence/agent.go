package ai

import (
	"context"
	"errors"
	"strings"
	"time"

	"mehfil/models"
	"mehfil/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	ErrNoUserMessage = utils.NewValidationError("The last message must be a user message with text")
	ErrTurnTimeout   = errors.New("assistant turn exceeded its time limit")
)

// splitTurn separates earlier transcript from the new user text.
func splitTurn(msgs []models.Message) ([]models.Message, string, error) {
	if len(msgs) == 0 {
		return nil, "", ErrNoUserMessage
	}
	last := msgs[len(msgs)-1]
	text := strings.TrimSpace(last.FirstText())
	if last.Role != models.RoleUser || text == "" {
		return nil, "", ErrNoUserMessage
	}
	return msgs[:len(msgs)-1], text, nil
}

// Chat runs one assistant turn: it sends the user text, executes the tools
// the model asks for and feeds their results back until the model answers
// without tool calls or the step cap is reached.
func (s *DefaultChatService) Chat(ctx context.Context, turn Turn, emit Emitter) (*models.Message, error) {
	history, text, err := splitTurn(turn.Messages)
	if err != nil {
		return nil, err
	}

	maxSteps := s.MaxSteps
	if maxSteps <= 0 {
		maxSteps = defaultMaxSteps
	}
	maxDuration := s.MaxDuration
	if maxDuration <= 0 {
		maxDuration = defaultMaxDuration
	}
	ctx, cancel := context.WithTimeout(ctx, maxDuration)
	defer cancel()

	logger := s.logger().With(zap.String("sessionID", turn.SessionID))
	key := planningKey(turn.SessionID, turn.Caller.UserID)

	var state models.PlanningState
	if s.Memory != nil && turn.SessionID != "" {
		if state, err = s.Memory.Load(ctx, key); err != nil {
			logger.Warn("Planning memory unavailable", zap.Error(err))
		}
	}

	chat, err := s.Model.StartChat(ctx, BuildSystemPrompt(s.now(), state), Declarations(), history)
	if err != nil {
		return nil, err
	}

	msg := &models.Message{ID: uuid.New().String(), Role: models.RoleAssistant, CreatedAt: s.now()}
	if err := emit(StreamEvent{Type: "start", MessageID: msg.ID}); err != nil {
		return nil, err
	}

	env := &toolEnv{planner: s.Planner, bookings: s.Bookings, caller: turn.Caller, state: &state}

	reply, err := chat.Send(ctx, text)
	for step := 1; err == nil; step++ {
		if err = emit(StreamEvent{Type: "start-step"}); err != nil {
			break
		}
		if reply.Text != "" {
			if err = s.emitText(msg, reply.Text, emit); err != nil {
				break
			}
		}

		var results []ToolResult
		for _, call := range reply.Calls {
			if call.ID == "" {
				call.ID = uuid.New().String()
			}
			part := models.Part{Type: models.PartToolPrefix + call.Name, ToolCallID: call.ID, Input: call.Args}
			if err = emit(StreamEvent{Type: "tool-input-available", ToolCallID: call.ID, ToolName: call.Name, Input: call.Args}); err != nil {
				break
			}

			out, toolErr := runTool(ctx, env, call)
			if toolErr != nil {
				logger.Info("Tool call failed", zap.String("tool", call.Name), zap.Error(toolErr))
			}
			part.State = models.ToolStateOutputAvailable
			part.Output = out
			msg.Parts = append(msg.Parts, part)
			results = append(results, ToolResult{CallID: call.ID, Name: call.Name, Output: out})

			if err = emit(StreamEvent{Type: "tool-output-available", ToolCallID: call.ID, Output: out}); err != nil {
				break
			}
		}
		if err != nil {
			break
		}
		if err = emit(StreamEvent{Type: "finish-step"}); err != nil {
			break
		}
		if len(results) == 0 {
			break
		}
		if step >= maxSteps {
			logger.Warn("Assistant step limit reached", zap.Int("steps", step))
			break
		}
		reply, err = chat.SendToolResults(ctx, results)
	}

	if s.Memory != nil && turn.SessionID != "" && !state.Empty() {
		saveCtx, saveCancel := context.WithTimeout(context.WithoutCancel(ctx), 2*time.Second)
		if saveErr := s.Memory.Save(saveCtx, key, state); saveErr != nil {
			logger.Warn("Failed to save planning memory", zap.Error(saveErr))
		}
		saveCancel()
	}

	if err != nil {
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return msg, ErrTurnTimeout
		}
		return msg, err
	}

	_, products := utils.ParseProducts(lastText(msg))
	if err := emit(StreamEvent{Type: "finish", Products: products}); err != nil {
		return msg, err
	}
	return msg, nil
}

func (s *DefaultChatService) emitText(msg *models.Message, text string, emit Emitter) error {
	id := uuid.New().String()
	msg.Parts = append(msg.Parts, models.Part{Type: models.PartText, Text: text})
	if err := emit(StreamEvent{Type: "text-start", ID: id}); err != nil {
		return err
	}
	if err := emit(StreamEvent{Type: "text-delta", ID: id, Delta: text}); err != nil {
		return err
	}
	return emit(StreamEvent{Type: "text-end", ID: id})
}

func lastText(msg *models.Message) string {
	for i := len(msg.Parts) - 1; i >= 0; i-- {
		if msg.Parts[i].Type == models.PartText {
			return msg.Parts[i].Text
		}
	}
	return ""
}
