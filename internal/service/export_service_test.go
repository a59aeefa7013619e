package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/salhdl/AI-Agent/internal/model"
	"github.com/salhdl/AI-Agent/internal/repository"
)

func setupExportService() (ExportService, *mockRequestRepo) {
	requestRepo := newMockRequestRepo()
	repo := &repository.Repository{
		Employee:       newMockEmployeeRepo(),
		Request:        requestRepo,
		Project:        newMockProjectRepo(),
		Notification:   newMockNotificationRepo(),
		Reconciliation: newMockReconciliationRepo(),
	}
	return NewExportService(repo, zap.NewNop()), requestRepo
}

func seedRequests(requestRepo *mockRequestRepo) {
	date := time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)
	requestRepo.requests["req-a"] = &model.HolidayRequest{
		RequestID: "req-a", EmployeeID: 1, FullName: "Maya Lindqvist",
		RequestedDays: 5, RemainingDays: 15, Status: model.StatusApproved, RequestDate: date,
	}
	requestRepo.requests["req-b"] = &model.HolidayRequest{
		RequestID: "req-b", EmployeeID: 2, FullName: "Jordan Reeves",
		RequestedDays: 2, RemainingDays: 8, Status: model.StatusPending, RequestDate: date,
	}
}

func TestExportService_ExportRequests(t *testing.T) {
	svc, requestRepo := setupExportService()
	seedRequests(requestRepo)

	buf, filename, err := svc.ExportRequests(context.Background(), "")
	if err != nil {
		t.Fatalf("ExportRequests should succeed: %v", err)
	}
	if buf.Len() == 0 {
		t.Error("expected non-empty xlsx buffer")
	}
	if !strings.HasSuffix(filename, ".xlsx") {
		t.Errorf("expected .xlsx filename, got %s", filename)
	}
}

func TestExportService_ExportRequests_Empty(t *testing.T) {
	svc, _ := setupExportService()

	_, _, err := svc.ExportRequests(context.Background(), "")
	if !errors.Is(err, ErrExportNoRequests) {
		t.Errorf("expected ErrExportNoRequests, got %v", err)
	}
}

func TestExportService_ExportLeaveCalendar(t *testing.T) {
	svc, requestRepo := setupExportService()
	seedRequests(requestRepo)

	buf, filename, err := svc.ExportLeaveCalendar(context.Background())
	if err != nil {
		t.Fatalf("ExportLeaveCalendar should succeed: %v", err)
	}
	ics := buf.String()
	if !strings.Contains(ics, "BEGIN:VCALENDAR") {
		t.Error("expected a VCALENDAR document")
	}
	// only the approved request becomes an event
	if !strings.Contains(ics, "req-a") {
		t.Error("expected approved request in the calendar")
	}
	if strings.Contains(ics, "req-b") {
		t.Error("pending request must not appear in the calendar")
	}
	if !strings.HasSuffix(filename, ".ics") {
		t.Errorf("expected .ics filename, got %s", filename)
	}
}

func TestExportService_ExportLeaveCalendar_Empty(t *testing.T) {
	svc, requestRepo := setupExportService()
	date := time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)
	requestRepo.requests["req-b"] = &model.HolidayRequest{
		RequestID: "req-b", EmployeeID: 2, FullName: "Jordan Reeves",
		RequestedDays: 2, RemainingDays: 8, Status: model.StatusPending, RequestDate: date,
	}

	_, _, err := svc.ExportLeaveCalendar(context.Background())
	if !errors.Is(err, ErrExportNoRequests) {
		t.Errorf("expected ErrExportNoRequests, got %v", err)
	}
}
