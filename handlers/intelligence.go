package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"mehfil/models"
	"mehfil/services/booking"
	ai "mehfil/services/intelligence"
	"mehfil/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type ChatHandler struct {
	Service ai.ChatService
}

func NewChatHandler(svc ai.ChatService) *ChatHandler {
	return &ChatHandler{Service: svc}
}

// sseWriter writes stream events as server-sent events, sending headers on first use.
type sseWriter struct {
	c       *gin.Context
	started bool
}

func (w *sseWriter) write(event ai.StreamEvent) error {
	b, err := json.Marshal(event)
	if err != nil {
		return err
	}
	return w.raw(string(b))
}

func (w *sseWriter) raw(data string) error {
	if !w.started {
		h := w.c.Writer.Header()
		h.Set("Content-Type", "text/event-stream")
		h.Set("Cache-Control", "no-cache")
		h.Set("Connection", "keep-alive")
		h.Set("X-Accel-Buffering", "no")
		h.Set("X-Vercel-AI-UI-Message-Stream", "v1")
		w.c.Status(http.StatusOK)
		w.started = true
	}
	if _, err := fmt.Fprintf(w.c.Writer, "data: %s\n\n", data); err != nil {
		return err
	}
	w.c.Writer.Flush()
	return nil
}

// Chat streams one assistant turn. Signed-in users book as members, everyone else as guests.
func (h *ChatHandler) Chat(c *gin.Context) {
	var req models.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, utils.NewValidationError("Messages are required"))
		return
	}

	caller := booking.Caller{Level: booking.LevelGuest}
	if userID := currentUserID(c); userID != "" {
		caller = booking.Caller{UserID: userID, Level: booking.LevelMember}
	}

	logger := getLogger(c).With(zap.String("sessionID", req.ID), zap.String("level", string(caller.Level)))
	w := &sseWriter{c: c}
	turn := ai.Turn{SessionID: req.ID, Caller: caller, Messages: req.Messages}

	_, err := h.Service.Chat(c.Request.Context(), turn, w.write)
	if err == nil {
		_ = w.raw("[DONE]")
		return
	}
	if !w.started {
		utils.RespondError(c, err)
		return
	}

	logger.Error("Chat turn failed", zap.Error(err))
	msg := "Something went wrong, please try again"
	if errors.Is(err, ai.ErrTurnTimeout) {
		msg = "The assistant took too long to respond"
	}
	_ = w.write(ai.StreamEvent{Type: "error", ErrorText: msg})
	_ = w.raw("[DONE]")
}
