package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/salhdl/AI-Agent/internal/dto"
	"github.com/salhdl/AI-Agent/internal/model"
	"github.com/salhdl/AI-Agent/internal/repository"
)

// ── project module errors ──

var (
	ErrProjectNotFound = errors.New("no project record found for the provided employee ID")
)

// ProjectService reads and updates employee project assignments.
type ProjectService interface {
	GetByEmployeeID(ctx context.Context, employeeID int) (*dto.ProjectResponse, error)
	UpdateNextProject(ctx context.Context, employeeID int, req *dto.UpdateNextProjectRequest) error
}

type projectService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewProjectService creates a ProjectService instance.
func NewProjectService(repo *repository.Repository, logger *zap.Logger) ProjectService {
	return &projectService{repo: repo, logger: logger}
}

// ────────────────────── GetByEmployeeID ──────────────────────

func (s *projectService) GetByEmployeeID(ctx context.Context, employeeID int) (*dto.ProjectResponse, error) {
	project, err := s.repo.Project.GetByEmployeeID(ctx, employeeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProjectNotFound
		}
		s.logger.Error("fetch project failed", zap.Int("employee_id", employeeID), zap.Error(err))
		return nil, err
	}

	resp := &dto.ProjectResponse{
		EmployeeID:   project.EmployeeID,
		EmployeeName: project.EmployeeName,
		ProjectName:  project.ProjectName,
		Role:         project.Role,
	}
	if project.StartDate != nil {
		resp.StartDate = project.StartDate.Format(model.DateOnly)
	}
	if project.EndDate != nil {
		resp.EndDate = project.EndDate.Format(model.DateOnly)
	}
	if project.NextProjectName != "" {
		next := &dto.NextProject{
			ProjectName: project.NextProjectName,
			Role:        project.NextProjectRole,
		}
		if project.NextProjectStartDate != nil {
			next.StartDate = project.NextProjectStartDate.Format(model.DateOnly)
		}
		resp.NextProject = next
	}
	return resp, nil
}

// ────────────────────── UpdateNextProject ──────────────────────

func (s *projectService) UpdateNextProject(ctx context.Context, employeeID int, req *dto.UpdateNextProjectRequest) error {
	startDate, err := time.Parse(model.DateOnly, req.StartDate)
	if err != nil {
		return fmt.Errorf("parse start_date: %w", err)
	}

	if err := s.repo.Project.UpdateNextProject(ctx, employeeID, req.ProjectName, startDate, req.Role); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrProjectNotFound
		}
		s.logger.Error("update next project failed", zap.Int("employee_id", employeeID), zap.Error(err))
		return err
	}

	return nil
}
