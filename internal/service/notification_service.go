package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/salhdl/AI-Agent/internal/dto"
	"github.com/salhdl/AI-Agent/internal/repository"
)

// NotificationService exposes the outbound message audit log.
type NotificationService interface {
	List(ctx context.Context, req *dto.NotificationListRequest) ([]dto.NotificationResponse, error)
}

type notificationService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewNotificationService creates a NotificationService instance.
func NewNotificationService(repo *repository.Repository, logger *zap.Logger) NotificationService {
	return &notificationService{repo: repo, logger: logger}
}

func (s *notificationService) List(ctx context.Context, req *dto.NotificationListRequest) ([]dto.NotificationResponse, error) {
	entries, err := s.repo.Notification.List(ctx, req.RequestID, req.Kind)
	if err != nil {
		s.logger.Error("list notifications failed", zap.Error(err))
		return nil, err
	}

	result := make([]dto.NotificationResponse, 0, len(entries))
	for i := range entries {
		e := &entries[i]
		resp := dto.NotificationResponse{
			NotificationID: e.NotificationID,
			Recipient:      e.Recipient,
			Subject:        e.Subject,
			Kind:           e.Kind,
			Delivered:      e.Delivered,
			Error:          e.Error,
			CreatedAt:      e.CreatedAt.Format(time.RFC3339),
		}
		if e.RequestID != nil {
			resp.RequestID = *e.RequestID
		}
		result = append(result, resp)
	}
	return result, nil
}
