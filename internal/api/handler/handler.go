package handler

import "github.com/salhdl/AI-Agent/internal/service"

// Handler aggregates all HTTP handlers.
type Handler struct {
	Approval     *ApprovalHandler
	Holiday      *HolidayHandler
	Project      *ProjectHandler
	Notification *NotificationHandler
	Export       *ExportHandler
	Chat         *ChatHandler
}

// NewHandler creates the Handler aggregate.
func NewHandler(svc *service.Service) *Handler {
	return &Handler{
		Approval:     NewApprovalHandler(svc.Approval),
		Holiday:      NewHolidayHandler(svc.Holiday),
		Project:      NewProjectHandler(svc.Project),
		Notification: NewNotificationHandler(svc.Notification),
		Export:       NewExportHandler(svc.Export),
		Chat:         NewChatHandler(svc.Chat),
	}
}
