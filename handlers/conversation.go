package handlers

import (
	"net/http"

	"mehfil/models"
	"mehfil/services/conversation"
	"mehfil/utils"

	"github.com/gin-gonic/gin"
)

type ConversationHandler struct {
	Service conversation.ConversationService
}

func NewConversationHandler(svc conversation.ConversationService) *ConversationHandler {
	return &ConversationHandler{Service: svc}
}

type appendRequest struct {
	SessionID string         `json:"sessionId"`
	Message   models.Message `json:"message"`
}

func (h *ConversationHandler) AppendMessage(c *gin.Context) {
	var req appendRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, errInvalidBody)
		return
	}
	conv, err := h.Service.AppendMessage(c.Request.Context(), req.SessionID, currentUserID(c), req.Message)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": conv})
}

func (h *ConversationHandler) ListConversations(c *gin.Context) {
	list, err := h.Service.ListConversations(c.Request.Context(), currentUserID(c))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "conversations": list})
}

func (h *ConversationHandler) GetConversation(c *gin.Context) {
	conv, err := h.Service.GetHistory(c.Request.Context(), c.Param("sessionId"), currentUserID(c))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, conv)
}

type saveRequest struct {
	Messages []models.Message `json:"messages"`
	Metadata map[string]any   `json:"metadata"`
}

func (h *ConversationHandler) SaveConversation(c *gin.Context) {
	var req saveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, errInvalidBody)
		return
	}
	conv, err := h.Service.SaveConversation(c.Request.Context(), c.Param("sessionId"), currentUserID(c), req.Messages, req.Metadata)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": conv})
}
