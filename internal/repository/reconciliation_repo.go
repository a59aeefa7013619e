package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/salhdl/AI-Agent/internal/model"
)

// ReconciliationRepository persists markers for decisions whose
// entitlement update failed after the status transition.
type ReconciliationRepository interface {
	Create(ctx context.Context, marker *model.ReconciliationMarker) error
	ListUnresolved(ctx context.Context) ([]model.ReconciliationMarker, error)
}

type reconciliationRepo struct {
	db *gorm.DB
}

// NewReconciliationRepo creates a ReconciliationRepository backed by GORM.
func NewReconciliationRepo(db *gorm.DB) ReconciliationRepository {
	return &reconciliationRepo{db: db}
}

func (r *reconciliationRepo) Create(ctx context.Context, marker *model.ReconciliationMarker) error {
	return r.db.WithContext(ctx).Create(marker).Error
}

func (r *reconciliationRepo) ListUnresolved(ctx context.Context) ([]model.ReconciliationMarker, error) {
	var markers []model.ReconciliationMarker
	err := r.db.WithContext(ctx).
		Where("resolved = ?", false).
		Order("created_at").
		Find(&markers).Error
	if err != nil {
		return nil, err
	}
	return markers, nil
}
