package handler

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/salhdl/AI-Agent/internal/dto"
	"github.com/salhdl/AI-Agent/internal/service"
	"github.com/salhdl/AI-Agent/pkg/response"
)

// ProjectHandler serves the project module of the internal JSON API.
type ProjectHandler struct {
	projectSvc service.ProjectService
}

// NewProjectHandler creates a ProjectHandler.
func NewProjectHandler(projectSvc service.ProjectService) *ProjectHandler {
	return &ProjectHandler{projectSvc: projectSvc}
}

// GetProject reports an employee's current and planned assignment.
// GET /api/v1/employees/:id/project
func (h *ProjectHandler) GetProject(c *gin.Context) {
	employeeID, err := strconv.Atoi(c.Param("id"))
	if err != nil || employeeID <= 0 {
		response.BadRequest(c, 10001, "employee id must be a positive integer")
		return
	}

	project, err := h.projectSvc.GetByEmployeeID(c.Request.Context(), employeeID)
	if err != nil {
		h.handleProjectError(c, err)
		return
	}

	response.OK(c, project)
}

// UpdateNextProject sets an employee's planned assignment.
// PUT /api/v1/employees/:id/project/next
func (h *ProjectHandler) UpdateNextProject(c *gin.Context) {
	employeeID, err := strconv.Atoi(c.Param("id"))
	if err != nil || employeeID <= 0 {
		response.BadRequest(c, 10001, "employee id must be a positive integer")
		return
	}

	var req dto.UpdateNextProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "invalid request payload")
		return
	}

	if err := h.projectSvc.UpdateNextProject(c.Request.Context(), employeeID, &req); err != nil {
		h.handleProjectError(c, err)
		return
	}

	response.OK(c, gin.H{"updated": true})
}

func (h *ProjectHandler) handleProjectError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrProjectNotFound):
		response.NotFound(c, 13001, "no project record found for the provided employee ID")
	default:
		response.InternalError(c)
	}
}
