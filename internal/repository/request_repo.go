package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/salhdl/AI-Agent/internal/model"
	pkgerrors "github.com/salhdl/AI-Agent/pkg/errors"
)

// RequestRepository is the data access interface for holiday requests.
type RequestRepository interface {
	Create(ctx context.Context, request *model.HolidayRequest) error
	GetByRequestID(ctx context.Context, requestID string) (*model.HolidayRequest, error)
	// TransitionFromPending sets the terminal status only if the current
	// status is still pending. A lost race returns ErrStatusConflict and
	// leaves the row untouched.
	TransitionFromPending(ctx context.Context, requestID, status string) error
	List(ctx context.Context, status string) ([]model.HolidayRequest, error)
}

type requestRepo struct {
	db *gorm.DB
}

// NewRequestRepo creates a RequestRepository backed by GORM.
func NewRequestRepo(db *gorm.DB) RequestRepository {
	return &requestRepo{db: db}
}

func (r *requestRepo) Create(ctx context.Context, request *model.HolidayRequest) error {
	return r.db.WithContext(ctx).Create(request).Error
}

func (r *requestRepo) GetByRequestID(ctx context.Context, requestID string) (*model.HolidayRequest, error) {
	var request model.HolidayRequest
	err := r.db.WithContext(ctx).
		Where("request_id = ?", requestID).
		First(&request).Error
	if err != nil {
		return nil, err
	}
	return &request, nil
}

func (r *requestRepo) TransitionFromPending(ctx context.Context, requestID, status string) error {
	result := r.db.WithContext(ctx).
		Model(&model.HolidayRequest{}).
		Where("request_id = ? AND status = ?", requestID, model.StatusPending).
		Update("status", status)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return pkgerrors.ErrStatusConflict
	}
	return nil
}

func (r *requestRepo) List(ctx context.Context, status string) ([]model.HolidayRequest, error) {
	var requests []model.HolidayRequest
	db := r.db.WithContext(ctx).Model(&model.HolidayRequest{})
	if status != "" {
		db = db.Where("status = ?", status)
	}
	if err := db.Order("request_date DESC, request_id").Find(&requests).Error; err != nil {
		return nil, err
	}
	return requests, nil
}
