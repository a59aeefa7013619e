package model

import "time"

// Holiday request status values. A request starts pending and moves to
// exactly one terminal state; there is no transition out of a terminal
// state.
const (
	StatusPending     = "pending"
	StatusApproved    = "approved"
	StatusDisapproved = "disapproved"
)

// HolidayRequest is a leave request awaiting an HR decision — table
// holiday_requests. The request id is the only key in the public approval
// link, so it must be random, never sequential.
type HolidayRequest struct {
	RequestID     string     `gorm:"type:varchar(36);primaryKey"                 json:"request_id"`
	EmployeeID    int        `gorm:"not null"                                    json:"employee_id"`
	FullName      string     `gorm:"type:varchar(200);not null"                  json:"full_name"`
	RequestedDays int        `gorm:"not null"                                    json:"requested_days"`
	RemainingDays int        `gorm:"not null"                                    json:"remaining_days"` // snapshot at creation, never recomputed
	Status        string     `gorm:"type:varchar(20);not null;default:'pending'" json:"status"`
	RequestDate   time.Time  `gorm:"type:date;not null"                          json:"request_date"`
	StartDate     *time.Time `gorm:"type:date"                                   json:"start_date,omitempty"`
	BaseModel
}

// TableName specifies the table name.
func (HolidayRequest) TableName() string { return "holiday_requests" }

// IsTerminal reports whether the request already carries a decision.
func (r *HolidayRequest) IsTerminal() bool {
	return r.Status == StatusApproved || r.Status == StatusDisapproved
}

// ValidDecision reports whether action is an allowed decision value.
func ValidDecision(action string) bool {
	return action == StatusApproved || action == StatusDisapproved
}
