package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/salhdl/AI-Agent/internal/dto"
	"github.com/salhdl/AI-Agent/internal/service"
	"github.com/salhdl/AI-Agent/pkg/response"
)

// ChatHandler forwards messages to the upstream assistant.
type ChatHandler struct {
	chatSvc service.ChatService
}

// NewChatHandler creates a ChatHandler.
func NewChatHandler(chatSvc service.ChatService) *ChatHandler {
	return &ChatHandler{chatSvc: chatSvc}
}

// Chat relays one message exchange.
// POST /api/v1/chat
func (h *ChatHandler) Chat(c *gin.Context) {
	var req dto.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "missing message")
		return
	}

	reply, err := h.chatSvc.Ask(c.Request.Context(), req.Message)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrAssistantUnconfigured):
			response.Error(c, http.StatusServiceUnavailable, 17001, "assistant is not configured")
		case errors.Is(err, service.ErrAssistantUnavailable):
			response.Error(c, http.StatusBadGateway, 17002, "assistant upstream unavailable")
		default:
			response.InternalError(c)
		}
		return
	}

	response.OK(c, dto.ChatResponse{Response: reply})
}
