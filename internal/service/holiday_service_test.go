package service

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"

	"github.com/salhdl/AI-Agent/config"
	"github.com/salhdl/AI-Agent/internal/dto"
	"github.com/salhdl/AI-Agent/internal/model"
	"github.com/salhdl/AI-Agent/internal/repository"
)

// ── test helpers ──

type holidayFixture struct {
	svc          HolidayService
	employeeRepo *mockEmployeeRepo
	requestRepo  *mockRequestRepo
	notifRepo    *mockNotificationRepo
	notifier     *mockNotifier
}

func setupHolidayService() *holidayFixture {
	employeeRepo := newMockEmployeeRepo()
	requestRepo := newMockRequestRepo()
	notifRepo := newMockNotificationRepo()
	repo := &repository.Repository{
		Employee:       employeeRepo,
		Request:        requestRepo,
		Project:        newMockProjectRepo(),
		Notification:   notifRepo,
		Reconciliation: newMockReconciliationRepo(),
	}
	cfg := &config.Config{}
	cfg.Server.BaseURL = "https://hr.example.com/"
	cfg.Mail.HREmail = "hr@example.com"
	notifier := newMockNotifier()
	svc := NewHolidayService(cfg, repo, notifier, zap.NewNop())
	return &holidayFixture{
		svc:          svc,
		employeeRepo: employeeRepo,
		requestRepo:  requestRepo,
		notifRepo:    notifRepo,
		notifier:     notifier,
	}
}

// ── GetBalance ──

func TestHolidayService_GetBalance_Success(t *testing.T) {
	f := setupHolidayService()
	f.employeeRepo.employees[7] = &model.Employee{
		EmployeeID:       7,
		FullName:         "Maya Lindqvist",
		Email:            "maya.lindqvist@example.com",
		TotalHolidayDays: 20,
		HolidaysTaken:    5,
	}

	balance, err := f.svc.GetBalance(context.Background(), 7)
	if err != nil {
		t.Fatalf("GetBalance should succeed: %v", err)
	}
	if balance.RemainingDays != 15 {
		t.Errorf("expected remaining_days=15, got %d", balance.RemainingDays)
	}
	if balance.FullName != "Maya Lindqvist" {
		t.Errorf("expected full name, got %s", balance.FullName)
	}
}

func TestHolidayService_GetBalance_NotFound(t *testing.T) {
	f := setupHolidayService()

	_, err := f.svc.GetBalance(context.Background(), 999)
	if !errors.Is(err, ErrEmployeeNotFound) {
		t.Errorf("expected ErrEmployeeNotFound, got %v", err)
	}
}

// ── CreateRequest ──

func TestHolidayService_CreateRequest_SnapshotsRemainingDays(t *testing.T) {
	f := setupHolidayService()
	f.employeeRepo.employees[7] = &model.Employee{
		EmployeeID:       7,
		FullName:         "Maya Lindqvist",
		Email:            "maya.lindqvist@example.com",
		TotalHolidayDays: 20,
		HolidaysTaken:    5,
	}

	created, err := f.svc.CreateRequest(context.Background(), &dto.CreateHolidayRequestRequest{
		EmployeeID:    7,
		RequestedDays: 3,
	})
	if err != nil {
		t.Fatalf("CreateRequest should succeed: %v", err)
	}

	stored := f.requestRepo.requests[created.RequestID]
	if stored == nil {
		t.Fatal("request was not persisted")
	}
	if stored.RemainingDays != 15 {
		t.Errorf("expected remaining_days snapshot=15, got %d", stored.RemainingDays)
	}
	if stored.Status != model.StatusPending {
		t.Errorf("expected status=pending, got %s", stored.Status)
	}
	if stored.RequestedDays != 3 {
		t.Errorf("expected requested_days=3, got %d", stored.RequestedDays)
	}
	// submitting a request must not touch the entitlement
	if f.employeeRepo.employees[7].HolidaysTaken != 5 {
		t.Errorf("expected holidays_taken unchanged at 5, got %d", f.employeeRepo.employees[7].HolidaysTaken)
	}
}

func TestHolidayService_CreateRequest_MailsApprovalLinkToHR(t *testing.T) {
	f := setupHolidayService()
	f.employeeRepo.employees[7] = &model.Employee{
		EmployeeID:       7,
		FullName:         "Maya Lindqvist",
		Email:            "maya.lindqvist@example.com",
		TotalHolidayDays: 20,
		HolidaysTaken:    5,
	}

	created, err := f.svc.CreateRequest(context.Background(), &dto.CreateHolidayRequestRequest{
		EmployeeID:    7,
		RequestedDays: 3,
	})
	if err != nil {
		t.Fatalf("CreateRequest should succeed: %v", err)
	}
	if created.ApprovalURL != "https://hr.example.com/request/"+created.RequestID {
		t.Errorf("unexpected approval URL: %s", created.ApprovalURL)
	}

	if f.notifier.sendCount() != 1 {
		t.Fatalf("expected 1 mail to HR, got %d", f.notifier.sendCount())
	}
	if f.notifier.sends[0].to != "hr@example.com" {
		t.Errorf("expected mail to hr@example.com, got %s", f.notifier.sends[0].to)
	}
	logs := f.notifRepo.byKind(model.NotificationKindApprovalLink)
	if len(logs) != 1 || !logs[0].Delivered {
		t.Errorf("expected 1 delivered approval_link log entry, got %+v", logs)
	}
}

func TestHolidayService_CreateRequest_UniqueIDs(t *testing.T) {
	f := setupHolidayService()
	f.employeeRepo.employees[7] = &model.Employee{
		EmployeeID: 7, FullName: "Maya Lindqvist", Email: "m@example.com",
		TotalHolidayDays: 20, HolidaysTaken: 0,
	}

	seen := make(map[string]bool)
	for i := 0; i < 10; i++ {
		created, err := f.svc.CreateRequest(context.Background(), &dto.CreateHolidayRequestRequest{
			EmployeeID:    7,
			RequestedDays: 1,
		})
		if err != nil {
			t.Fatalf("CreateRequest should succeed: %v", err)
		}
		if seen[created.RequestID] {
			t.Fatalf("duplicate request id generated: %s", created.RequestID)
		}
		seen[created.RequestID] = true
	}
}

func TestHolidayService_CreateRequest_EmployeeNotFound(t *testing.T) {
	f := setupHolidayService()

	_, err := f.svc.CreateRequest(context.Background(), &dto.CreateHolidayRequestRequest{
		EmployeeID:    404,
		RequestedDays: 3,
	})
	if !errors.Is(err, ErrEmployeeNotFound) {
		t.Errorf("expected ErrEmployeeNotFound, got %v", err)
	}
	if len(f.requestRepo.requests) != 0 {
		t.Error("no request should be persisted for an unknown employee")
	}
}

func TestHolidayService_CreateRequest_WithStartDate(t *testing.T) {
	f := setupHolidayService()
	f.employeeRepo.employees[7] = &model.Employee{
		EmployeeID: 7, FullName: "Maya Lindqvist", Email: "m@example.com",
		TotalHolidayDays: 20, HolidaysTaken: 0,
	}

	start := "2025-07-14"
	created, err := f.svc.CreateRequest(context.Background(), &dto.CreateHolidayRequestRequest{
		EmployeeID:    7,
		RequestedDays: 5,
		StartDate:     &start,
	})
	if err != nil {
		t.Fatalf("CreateRequest should succeed: %v", err)
	}

	stored := f.requestRepo.requests[created.RequestID]
	if stored.StartDate == nil || stored.StartDate.Format(model.DateOnly) != "2025-07-14" {
		t.Errorf("expected start_date=2025-07-14, got %v", stored.StartDate)
	}
}
