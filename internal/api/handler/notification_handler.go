package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/salhdl/AI-Agent/internal/dto"
	"github.com/salhdl/AI-Agent/internal/service"
	"github.com/salhdl/AI-Agent/pkg/response"
)

// NotificationHandler exposes the outbound message audit log.
type NotificationHandler struct {
	notificationSvc service.NotificationService
}

// NewNotificationHandler creates a NotificationHandler.
func NewNotificationHandler(notificationSvc service.NotificationService) *NotificationHandler {
	return &NotificationHandler{notificationSvc: notificationSvc}
}

// ListNotifications lists audit log entries, optionally filtered.
// GET /api/v1/notifications?request_id=&kind=
func (h *NotificationHandler) ListNotifications(c *gin.Context) {
	var req dto.NotificationListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, 10001, "invalid query parameters")
		return
	}

	entries, err := h.notificationSvc.List(c.Request.Context(), &req)
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, gin.H{"list": entries})
}
