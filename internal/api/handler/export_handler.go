package handler

import (
	"errors"
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"

	"github.com/salhdl/AI-Agent/internal/model"
	"github.com/salhdl/AI-Agent/internal/service"
	"github.com/salhdl/AI-Agent/pkg/response"
)

const (
	contentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	contentTypeICS  = "text/calendar"
)

// ExportHandler serves downloadable artifacts for HR reporting.
type ExportHandler struct {
	exportSvc service.ExportService
}

// NewExportHandler creates an ExportHandler.
func NewExportHandler(exportSvc service.ExportService) *ExportHandler {
	return &ExportHandler{exportSvc: exportSvc}
}

// ExportRequests downloads holiday requests as a spreadsheet.
// GET /api/v1/export/holiday-requests?status=
func (h *ExportHandler) ExportRequests(c *gin.Context) {
	status := c.Query("status")
	if status != "" && status != model.StatusPending && !model.ValidDecision(status) {
		response.BadRequest(c, 10001, "status must be pending, approved or disapproved")
		return
	}

	buf, filename, err := h.exportSvc.ExportRequests(c.Request.Context(), status)
	if err != nil {
		h.handleExportError(c, err)
		return
	}

	writeAttachment(c, filename, contentTypeXLSX, buf.Bytes())
}

// ExportLeaveCalendar downloads approved leave as an iCalendar feed.
// GET /api/v1/export/leave-calendar
func (h *ExportHandler) ExportLeaveCalendar(c *gin.Context) {
	buf, filename, err := h.exportSvc.ExportLeaveCalendar(c.Request.Context())
	if err != nil {
		h.handleExportError(c, err)
		return
	}

	writeAttachment(c, filename, contentTypeICS, buf.Bytes())
}

func (h *ExportHandler) handleExportError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrExportNoRequests):
		response.NotFound(c, 16001, "no holiday requests to export")
	default:
		response.InternalError(c)
	}
}

func writeAttachment(c *gin.Context, filename, contentType string, data []byte) {
	encodedFilename := url.QueryEscape(filename)
	c.Header("Content-Description", "File Transfer")
	c.Header("Content-Disposition", "attachment; filename*=UTF-8''"+encodedFilename)
	c.Data(http.StatusOK, contentType, data)
}
