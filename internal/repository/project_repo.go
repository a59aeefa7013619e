package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/salhdl/AI-Agent/internal/model"
)

// ProjectRepository is the data access interface for project assignments.
type ProjectRepository interface {
	GetByEmployeeID(ctx context.Context, employeeID int) (*model.Project, error)
	UpdateNextProject(ctx context.Context, employeeID int, name string, startDate time.Time, role string) error
}

type projectRepo struct {
	db *gorm.DB
}

// NewProjectRepo creates a ProjectRepository backed by GORM.
func NewProjectRepo(db *gorm.DB) ProjectRepository {
	return &projectRepo{db: db}
}

func (r *projectRepo) GetByEmployeeID(ctx context.Context, employeeID int) (*model.Project, error) {
	var project model.Project
	err := r.db.WithContext(ctx).
		Where("employee_id = ?", employeeID).
		First(&project).Error
	if err != nil {
		return nil, err
	}
	return &project, nil
}

func (r *projectRepo) UpdateNextProject(ctx context.Context, employeeID int, name string, startDate time.Time, role string) error {
	result := r.db.WithContext(ctx).
		Model(&model.Project{}).
		Where("employee_id = ?", employeeID).
		Updates(map[string]interface{}{
			"next_project_name":       name,
			"next_project_start_date": startDate,
			"next_project_role":       role,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
