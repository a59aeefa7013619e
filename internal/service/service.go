package service

import (
	"go.uber.org/zap"

	"github.com/salhdl/AI-Agent/config"
	"github.com/salhdl/AI-Agent/internal/repository"
)

// Service aggregates all business interfaces.
type Service struct {
	Holiday      HolidayService
	Approval     ApprovalService
	Project      ProjectService
	Notification NotificationService
	Export       ExportService
	Chat         ChatService
}

// NewService creates the Service aggregate.
func NewService(
	cfg *config.Config,
	repo *repository.Repository,
	notifier Notifier,
	logger *zap.Logger,
) *Service {
	return &Service{
		Holiday:      NewHolidayService(cfg, repo, notifier, logger),
		Approval:     NewApprovalService(repo, notifier, logger),
		Project:      NewProjectService(repo, logger),
		Notification: NewNotificationService(repo, logger),
		Export:       NewExportService(repo, logger),
		Chat:         NewChatService(&cfg.Assistant, logger),
	}
}
