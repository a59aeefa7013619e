package dto

// ── holiday module DTOs ──

// CreateHolidayRequestRequest submits a new leave request. The upstream
// conversational assistant is the usual caller.
type CreateHolidayRequestRequest struct {
	EmployeeID    int     `json:"employee_id"    binding:"required,gt=0"`
	RequestedDays int     `json:"requested_days" binding:"required,gt=0"`
	StartDate     *string `json:"start_date"     binding:"omitempty,datetime=2006-01-02"` // first day of leave, optional
}

// CreateHolidayRequestResponse returns the fresh request id and the
// shareable approval link mailed to HR.
type CreateHolidayRequestResponse struct {
	RequestID   string `json:"request_id"`
	ApprovalURL string `json:"approval_url"`
}

// HolidayBalanceResponse reports an employee's entitlement.
type HolidayBalanceResponse struct {
	EmployeeID       int    `json:"employee_id"`
	FullName         string `json:"full_name"`
	Email            string `json:"email"`
	TotalHolidayDays int    `json:"total_holiday_days"`
	HolidaysTaken    int    `json:"holidays_taken"`
	RemainingDays    int    `json:"remaining_days"`
	LastHolidayTaken string `json:"last_holiday_taken,omitempty"`
}
