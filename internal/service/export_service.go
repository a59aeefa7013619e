package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"time"

	ics "github.com/arran4/golang-ical"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"github.com/salhdl/AI-Agent/internal/model"
	"github.com/salhdl/AI-Agent/internal/repository"
)

// ── export module errors ──

var (
	ErrExportNoRequests = errors.New("no holiday requests to export")
)

// ExportService renders holiday request data as downloadable artifacts:
// an Excel sheet for HR reporting and an iCalendar feed of approved
// leave. Buffers are returned for the handler to stream.
type ExportService interface {
	ExportRequests(ctx context.Context, status string) (*bytes.Buffer, string, error)
	ExportLeaveCalendar(ctx context.Context) (*bytes.Buffer, string, error)
}

type exportService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewExportService creates an ExportService instance.
func NewExportService(repo *repository.Repository, logger *zap.Logger) ExportService {
	return &exportService{repo: repo, logger: logger}
}

// ────────────────────── ExportRequests ──────────────────────

func (s *exportService) ExportRequests(ctx context.Context, status string) (*bytes.Buffer, string, error) {
	requests, err := s.repo.Request.List(ctx, status)
	if err != nil {
		s.logger.Error("list requests for export failed", zap.Error(err))
		return nil, "", err
	}
	if len(requests) == 0 {
		return nil, "", ErrExportNoRequests
	}

	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Holiday Requests"
	f.SetSheetName("Sheet1", sheet)

	headers := []string{"Request ID", "Employee ID", "Name", "Requested Days", "Remaining Days", "Status", "Request Date", "Start Date"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheet, cell, h)
	}

	for row, req := range requests {
		startDate := ""
		if req.StartDate != nil {
			startDate = req.StartDate.Format(model.DateOnly)
		}
		values := []interface{}{
			req.RequestID,
			req.EmployeeID,
			req.FullName,
			req.RequestedDays,
			req.RemainingDays,
			req.Status,
			req.RequestDate.Format(model.DateOnly),
			startDate,
		}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row+2)
			f.SetCellValue(sheet, cell, v)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		s.logger.Error("write xlsx failed", zap.Error(err))
		return nil, "", err
	}

	filename := fmt.Sprintf("holiday-requests-%s.xlsx", time.Now().Format(model.DateOnly))
	return buf, filename, nil
}

// ────────────────────── ExportLeaveCalendar ──────────────────────

// ExportLeaveCalendar emits approved leave as all-day events. Requests
// without an explicit start date fall back to the request date.
func (s *exportService) ExportLeaveCalendar(ctx context.Context) (*bytes.Buffer, string, error) {
	requests, err := s.repo.Request.List(ctx, model.StatusApproved)
	if err != nil {
		s.logger.Error("list approved requests for export failed", zap.Error(err))
		return nil, "", err
	}
	if len(requests) == 0 {
		return nil, "", ErrExportNoRequests
	}

	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId("-//HR Assistant//Leave Calendar//EN")

	for i := range requests {
		req := &requests[i]

		start := req.RequestDate
		if req.StartDate != nil {
			start = *req.StartDate
		}
		end := start.AddDate(0, 0, req.RequestedDays)

		event := cal.AddEvent(req.RequestID)
		event.SetDtStampTime(time.Now())
		event.SetAllDayStartAt(start)
		event.SetAllDayEndAt(end)
		event.SetSummary(fmt.Sprintf("%s — leave (%d day(s))", req.FullName, req.RequestedDays))
	}

	buf := bytes.NewBufferString(cal.Serialize())
	filename := fmt.Sprintf("leave-calendar-%s.ics", time.Now().Format(model.DateOnly))
	return buf, filename, nil
}
