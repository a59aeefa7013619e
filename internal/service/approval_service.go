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
	pkgerrors "github.com/salhdl/AI-Agent/pkg/errors"
)

// ── approval module errors ──

var (
	ErrRequestNotFound      = errors.New("request not found")
	ErrInvalidAction        = errors.New("action must be approved or disapproved")
	ErrEntitlementNotSynced = errors.New("decision recorded but entitlement update failed, flagged for reconciliation")
)

// ApprovalService owns the holiday request decision lifecycle. Both
// operations are reachable from an unauthenticated browser via the link
// mailed to HR, so every failure mode must map to a clear outcome.
type ApprovalService interface {
	GetView(ctx context.Context, requestID string) (*dto.RequestView, error)
	// Decide applies a terminal decision at most once. Repeated or racing
	// calls observe the already-terminal state and get the original
	// acknowledgement with no side effects re-applied.
	Decide(ctx context.Context, requestID, action string) (*dto.DecisionResult, error)
}

type approvalService struct {
	repo     *repository.Repository
	notifier Notifier
	logger   *zap.Logger
}

// NewApprovalService creates an ApprovalService instance.
func NewApprovalService(repo *repository.Repository, notifier Notifier, logger *zap.Logger) ApprovalService {
	return &approvalService{repo: repo, notifier: notifier, logger: logger}
}

// ────────────────────── GetView ──────────────────────

func (s *approvalService) GetView(ctx context.Context, requestID string) (*dto.RequestView, error) {
	request, err := s.repo.Request.GetByRequestID(ctx, requestID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRequestNotFound
		}
		s.logger.Error("fetch request failed", zap.String("request_id", requestID), zap.Error(err))
		return nil, err
	}

	return &dto.RequestView{
		RequestID:     request.RequestID,
		EmployeeID:    request.EmployeeID,
		FullName:      request.FullName,
		RequestedDays: request.RequestedDays,
		RemainingDays: request.RemainingDays,
		RequestDate:   request.RequestDate.Format(model.DateOnly),
	}, nil
}

// ────────────────────── Decide ──────────────────────

func (s *approvalService) Decide(ctx context.Context, requestID, action string) (*dto.DecisionResult, error) {
	if !model.ValidDecision(action) {
		return nil, ErrInvalidAction
	}

	request, err := s.repo.Request.GetByRequestID(ctx, requestID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRequestNotFound
		}
		s.logger.Error("fetch request failed", zap.String("request_id", requestID), zap.Error(err))
		return nil, err
	}

	// already decided: idempotent short-circuit, no side effects
	if request.IsTerminal() {
		return decisionResult(request.RequestID, request.Status, ""), nil
	}

	// the transition only succeeds if the row is still pending; a lost
	// race re-reads and returns the winner's acknowledgement
	if err := s.repo.Request.TransitionFromPending(ctx, requestID, action); err != nil {
		if errors.Is(err, pkgerrors.ErrStatusConflict) {
			current, rereadErr := s.repo.Request.GetByRequestID(ctx, requestID)
			if rereadErr != nil {
				s.logger.Error("re-read after status conflict failed",
					zap.String("request_id", requestID), zap.Error(rereadErr))
				return nil, rereadErr
			}
			return decisionResult(current.RequestID, current.Status, ""), nil
		}
		s.logger.Error("status transition failed",
			zap.String("request_id", requestID),
			zap.String("action", action),
			zap.Error(err),
		)
		return nil, err
	}

	var warning string

	if action == model.StatusApproved {
		if err := s.applyEntitlement(ctx, request); err != nil {
			return nil, err
		}
	}

	if err := s.notifyEmployee(ctx, request, action); err != nil {
		warning = "the notification could not be delivered; the decision itself is recorded"
	}

	s.logger.Info("holiday request decided",
		zap.String("request_id", requestID),
		zap.String("action", action),
	)

	return decisionResult(requestID, action, warning), nil
}

// applyEntitlement increments holidays_taken after an approval. The store
// offers no transaction across the request and employee rows; a failure
// here leaves a durable reconciliation marker rather than silently losing
// the update.
func (s *approvalService) applyEntitlement(ctx context.Context, request *model.HolidayRequest) error {
	employee, err := s.repo.Employee.GetByEmployeeID(ctx, request.EmployeeID)
	if err == nil && employee.RemainingDays() < request.RequestedDays {
		// the balance snapshot dates from creation; approval is still
		// authoritative, but an overdraw is worth an operator's attention
		s.logger.Warn("approval overdraws current entitlement",
			zap.String("request_id", request.RequestID),
			zap.Int("employee_id", request.EmployeeID),
			zap.Int("requested_days", request.RequestedDays),
			zap.Int("current_remaining", employee.RemainingDays()),
		)
	}

	takenOn := time.Now().Truncate(24 * time.Hour)
	if err := s.repo.Employee.IncrementHolidaysTaken(ctx, request.EmployeeID, request.RequestedDays, takenOn); err != nil {
		s.logger.Error("entitlement update failed after status transition",
			zap.String("request_id", request.RequestID),
			zap.Int("employee_id", request.EmployeeID),
			zap.Error(err),
		)
		marker := &model.ReconciliationMarker{
			RequestID:     request.RequestID,
			EmployeeID:    request.EmployeeID,
			RequestedDays: request.RequestedDays,
			Reason:        fmt.Sprintf("increment holidays_taken failed: %v", err),
		}
		if markerErr := s.repo.Reconciliation.Create(ctx, marker); markerErr != nil {
			s.logger.Error("write reconciliation marker failed",
				zap.String("request_id", request.RequestID),
				zap.Error(markerErr),
			)
		}
		return ErrEntitlementNotSynced
	}
	return nil
}

// notifyEmployee mails the outcome to the employee. Best-effort: the
// decision stands whether or not the mail goes out.
func (s *approvalService) notifyEmployee(ctx context.Context, request *model.HolidayRequest, action string) error {
	employee, err := s.repo.Employee.GetByEmployeeID(ctx, request.EmployeeID)
	if err != nil {
		s.logger.Warn("employee lookup for notification failed",
			zap.String("request_id", request.RequestID),
			zap.Int("employee_id", request.EmployeeID),
			zap.Error(err),
		)
		return err
	}

	subject := fmt.Sprintf("Your Holiday Request Has Been %s", titleCase(action))
	body := fmt.Sprintf(
		"Hello %s,\n\nYour request for %d day(s) of holiday has been %s.\n",
		request.FullName, request.RequestedDays, action,
	)

	if err := sendAndLog(ctx, s.repo.Notification, s.notifier, s.logger,
		model.NotificationKindDecision, &request.RequestID,
		employee.Email, subject, body); err != nil {
		s.logger.Warn("decision mail undelivered",
			zap.String("request_id", request.RequestID),
			zap.String("action", action),
			zap.Error(err),
		)
		return err
	}
	return nil
}

// ── helpers ──

func decisionResult(requestID, status, warning string) *dto.DecisionResult {
	return &dto.DecisionResult{
		RequestID:       requestID,
		Status:          status,
		Acknowledgement: fmt.Sprintf("Request %s successfully. The employee will be notified.", status),
		Warning:         warning,
	}
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	return string(s[0]-'a'+'A') + s[1:]
}
