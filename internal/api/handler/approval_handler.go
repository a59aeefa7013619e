package handler

import (
	"embed"
	"errors"
	"fmt"
	"html/template"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/salhdl/AI-Agent/internal/service"
)

//go:embed templates/*.html
var templatesFS embed.FS

// Templates holds the parsed HTML templates for the public approval
// surface; the router installs them on the gin engine.
func Templates() *template.Template {
	return template.Must(template.ParseFS(templatesFS, "templates/*.html"))
}

// ApprovalHandler serves the public approval surface. Both routes are
// reached from the link mailed to HR: an unauthenticated browser, often
// days after the request was created. Responses are plain HTML/text, not
// the JSON envelope.
type ApprovalHandler struct {
	approvalSvc service.ApprovalService
}

// NewApprovalHandler creates an ApprovalHandler.
func NewApprovalHandler(approvalSvc service.ApprovalService) *ApprovalHandler {
	return &ApprovalHandler{approvalSvc: approvalSvc}
}

// ShowRequest renders the approval page for one request.
// GET /request/:request_id
func (h *ApprovalHandler) ShowRequest(c *gin.Context) {
	requestID := c.Param("request_id")
	if requestID == "" {
		c.String(http.StatusNotFound, "Request not found")
		return
	}

	view, err := h.approvalSvc.GetView(c.Request.Context(), requestID)
	if err != nil {
		if errors.Is(err, service.ErrRequestNotFound) {
			c.String(http.StatusNotFound, "Request not found")
			return
		}
		c.String(http.StatusInternalServerError, "Error retrieving request")
		return
	}

	c.HTML(http.StatusOK, "approval.html", view)
}

// ProcessRequest applies the approver's decision.
// POST /process/:request_id  (form field: action=approved|disapproved)
func (h *ApprovalHandler) ProcessRequest(c *gin.Context) {
	requestID := c.Param("request_id")
	action := c.PostForm("action")

	result, err := h.approvalSvc.Decide(c.Request.Context(), requestID, action)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrRequestNotFound):
			c.String(http.StatusNotFound, "Request not found")
		case errors.Is(err, service.ErrInvalidAction):
			c.String(http.StatusBadRequest, "Invalid action: must be approved or disapproved")
		case errors.Is(err, service.ErrEntitlementNotSynced):
			c.String(http.StatusInternalServerError,
				"The decision was recorded but updating the employee's balance failed. The case has been flagged for review.")
		default:
			c.String(http.StatusInternalServerError, "Error processing request")
		}
		return
	}

	ack := result.Acknowledgement
	if result.Warning != "" {
		ack = fmt.Sprintf("%s (Note: %s.)", ack, result.Warning)
	}
	c.String(http.StatusOK, ack)
}
