package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/salhdl/AI-Agent/internal/model"
)

// EmployeeRepository is the data access interface for holiday entitlements.
type EmployeeRepository interface {
	GetByEmployeeID(ctx context.Context, employeeID int) (*model.Employee, error)
	// IncrementHolidaysTaken adds days to holidays_taken and stamps
	// last_holiday_taken in a single atomic update.
	IncrementHolidaysTaken(ctx context.Context, employeeID, days int, takenOn time.Time) error
}

type employeeRepo struct {
	db *gorm.DB
}

// NewEmployeeRepo creates an EmployeeRepository backed by GORM.
func NewEmployeeRepo(db *gorm.DB) EmployeeRepository {
	return &employeeRepo{db: db}
}

func (r *employeeRepo) GetByEmployeeID(ctx context.Context, employeeID int) (*model.Employee, error) {
	var employee model.Employee
	err := r.db.WithContext(ctx).
		Where("employee_id = ?", employeeID).
		First(&employee).Error
	if err != nil {
		return nil, err
	}
	return &employee, nil
}

func (r *employeeRepo) IncrementHolidaysTaken(ctx context.Context, employeeID, days int, takenOn time.Time) error {
	result := r.db.WithContext(ctx).
		Model(&model.Employee{}).
		Where("employee_id = ?", employeeID).
		Updates(map[string]interface{}{
			"holidays_taken":     gorm.Expr("holidays_taken + ?", days),
			"last_holiday_taken": takenOn,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
