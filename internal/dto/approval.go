package dto

// ── approval module DTOs ──

// RequestView is the display projection rendered on the approval page.
type RequestView struct {
	RequestID     string `json:"request_id"`
	EmployeeID    int    `json:"employee_id"`
	FullName      string `json:"full_name"`
	RequestedDays int    `json:"requested_days"`
	RemainingDays int    `json:"remaining_days"`
	RequestDate   string `json:"request_date"`
}

// DecisionResult is the outcome of a decide call. Repeating an
// already-applied decision returns the original acknowledgement with no
// side effects re-applied.
type DecisionResult struct {
	RequestID       string `json:"request_id"`
	Status          string `json:"status"`
	Acknowledgement string `json:"acknowledgement"`
	Warning         string `json:"warning,omitempty"` // soft failure, e.g. notification undeliverable
}
