package handler

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/salhdl/AI-Agent/internal/dto"
	"github.com/salhdl/AI-Agent/internal/service"
	"github.com/salhdl/AI-Agent/pkg/response"
)

// HolidayHandler serves the holiday module of the internal JSON API.
type HolidayHandler struct {
	holidaySvc service.HolidayService
}

// NewHolidayHandler creates a HolidayHandler.
func NewHolidayHandler(holidaySvc service.HolidayService) *HolidayHandler {
	return &HolidayHandler{holidaySvc: holidaySvc}
}

// GetBalance reports an employee's holiday entitlement.
// GET /api/v1/employees/:id/holidays
func (h *HolidayHandler) GetBalance(c *gin.Context) {
	employeeID, err := strconv.Atoi(c.Param("id"))
	if err != nil || employeeID <= 0 {
		response.BadRequest(c, 10001, "employee id must be a positive integer")
		return
	}

	balance, err := h.holidaySvc.GetBalance(c.Request.Context(), employeeID)
	if err != nil {
		h.handleHolidayError(c, err)
		return
	}

	response.OK(c, balance)
}

// CreateRequest submits a new holiday request.
// POST /api/v1/holiday-requests
func (h *HolidayHandler) CreateRequest(c *gin.Context) {
	var req dto.CreateHolidayRequestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "invalid request payload")
		return
	}

	created, err := h.holidaySvc.CreateRequest(c.Request.Context(), &req)
	if err != nil {
		h.handleHolidayError(c, err)
		return
	}

	response.Created(c, created)
}

func (h *HolidayHandler) handleHolidayError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrEmployeeNotFound):
		response.NotFound(c, 12001, "no holiday data found for the provided employee ID")
	default:
		response.InternalError(c)
	}
}
