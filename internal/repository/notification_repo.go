package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/salhdl/AI-Agent/internal/model"
)

// NotificationRepository is the data access interface for the outbound
// message audit log.
type NotificationRepository interface {
	Create(ctx context.Context, entry *model.NotificationLog) error
	List(ctx context.Context, requestID, kind string) ([]model.NotificationLog, error)
}

type notificationRepo struct {
	db *gorm.DB
}

// NewNotificationRepo creates a NotificationRepository backed by GORM.
func NewNotificationRepo(db *gorm.DB) NotificationRepository {
	return &notificationRepo{db: db}
}

func (r *notificationRepo) Create(ctx context.Context, entry *model.NotificationLog) error {
	return r.db.WithContext(ctx).Create(entry).Error
}

func (r *notificationRepo) List(ctx context.Context, requestID, kind string) ([]model.NotificationLog, error) {
	var entries []model.NotificationLog
	db := r.db.WithContext(ctx).Model(&model.NotificationLog{})
	if requestID != "" {
		db = db.Where("request_id = ?", requestID)
	}
	if kind != "" {
		db = db.Where("kind = ?", kind)
	}
	if err := db.Order("created_at DESC").Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}
