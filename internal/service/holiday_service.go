package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/salhdl/AI-Agent/config"
	"github.com/salhdl/AI-Agent/internal/dto"
	"github.com/salhdl/AI-Agent/internal/model"
	"github.com/salhdl/AI-Agent/internal/repository"
)

// ── holiday module errors ──

var (
	ErrEmployeeNotFound = errors.New("no holiday data found for the provided employee ID")
)

// HolidayService answers balance queries and submits new holiday requests.
type HolidayService interface {
	GetBalance(ctx context.Context, employeeID int) (*dto.HolidayBalanceResponse, error)
	CreateRequest(ctx context.Context, req *dto.CreateHolidayRequestRequest) (*dto.CreateHolidayRequestResponse, error)
}

type holidayService struct {
	baseURL  string
	hrEmail  string
	repo     *repository.Repository
	notifier Notifier
	logger   *zap.Logger
}

// NewHolidayService creates a HolidayService instance.
func NewHolidayService(cfg *config.Config, repo *repository.Repository, notifier Notifier, logger *zap.Logger) HolidayService {
	return &holidayService{
		baseURL:  strings.TrimRight(cfg.Server.BaseURL, "/"),
		hrEmail:  cfg.Mail.HREmail,
		repo:     repo,
		notifier: notifier,
		logger:   logger,
	}
}

// ────────────────────── GetBalance ──────────────────────

func (s *holidayService) GetBalance(ctx context.Context, employeeID int) (*dto.HolidayBalanceResponse, error) {
	employee, err := s.repo.Employee.GetByEmployeeID(ctx, employeeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEmployeeNotFound
		}
		s.logger.Error("fetch employee failed", zap.Int("employee_id", employeeID), zap.Error(err))
		return nil, err
	}

	resp := &dto.HolidayBalanceResponse{
		EmployeeID:       employee.EmployeeID,
		FullName:         employee.FullName,
		Email:            employee.Email,
		TotalHolidayDays: employee.TotalHolidayDays,
		HolidaysTaken:    employee.HolidaysTaken,
		RemainingDays:    employee.RemainingDays(),
	}
	if employee.LastHolidayTaken != nil {
		resp.LastHolidayTaken = employee.LastHolidayTaken.Format(model.DateOnly)
	}
	return resp, nil
}

// ────────────────────── CreateRequest ──────────────────────

// CreateRequest persists a new pending request and mails HR the approval
// link. remaining_days is a snapshot of the entitlement at this moment;
// it is deliberately not recomputed when the request is decided.
func (s *holidayService) CreateRequest(ctx context.Context, req *dto.CreateHolidayRequestRequest) (*dto.CreateHolidayRequestResponse, error) {
	employee, err := s.repo.Employee.GetByEmployeeID(ctx, req.EmployeeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEmployeeNotFound
		}
		s.logger.Error("fetch employee failed", zap.Int("employee_id", req.EmployeeID), zap.Error(err))
		return nil, err
	}

	request := &model.HolidayRequest{
		RequestID:     uuid.NewString(),
		EmployeeID:    employee.EmployeeID,
		FullName:      employee.FullName,
		RequestedDays: req.RequestedDays,
		RemainingDays: employee.RemainingDays(),
		Status:        model.StatusPending,
		RequestDate:   time.Now().Truncate(24 * time.Hour),
	}
	if req.StartDate != nil {
		startDate, parseErr := time.Parse(model.DateOnly, *req.StartDate)
		if parseErr != nil {
			return nil, fmt.Errorf("parse start_date: %w", parseErr)
		}
		request.StartDate = &startDate
	}

	if err := s.repo.Request.Create(ctx, request); err != nil {
		s.logger.Error("create holiday request failed",
			zap.Int("employee_id", req.EmployeeID),
			zap.Error(err),
		)
		return nil, err
	}

	approvalURL := s.baseURL + "/request/" + request.RequestID

	// mail HR the approval link; the request stands even if delivery fails
	if s.hrEmail != "" {
		subject := fmt.Sprintf("Holiday Request Pending Approval — %s", employee.FullName)
		body := fmt.Sprintf(
			"%s has requested %d day(s) of holiday (remaining balance: %d day(s)).\n\n"+
				"Review and decide here: %s\n",
			employee.FullName, request.RequestedDays, request.RemainingDays, approvalURL,
		)
		if err := sendAndLog(ctx, s.repo.Notification, s.notifier, s.logger,
			model.NotificationKindApprovalLink, &request.RequestID,
			s.hrEmail, subject, body); err != nil {
			s.logger.Warn("approval link mail undelivered",
				zap.String("request_id", request.RequestID),
				zap.Error(err),
			)
		}
	}

	s.logger.Info("holiday request created",
		zap.String("request_id", request.RequestID),
		zap.Int("employee_id", employee.EmployeeID),
		zap.Int("requested_days", request.RequestedDays),
	)

	return &dto.CreateHolidayRequestResponse{
		RequestID:   request.RequestID,
		ApprovalURL: approvalURL,
	}, nil
}
