package dto

// ── notification module DTOs ──

// NotificationResponse is one entry from the outbound message audit log.
type NotificationResponse struct {
	NotificationID string `json:"notification_id"`
	Recipient      string `json:"recipient"`
	Subject        string `json:"subject"`
	Kind           string `json:"kind"`
	RequestID      string `json:"request_id,omitempty"`
	Delivered      bool   `json:"delivered"`
	Error          string `json:"error,omitempty"`
	CreatedAt      string `json:"created_at"`
}

// NotificationListRequest filters the audit log.
type NotificationListRequest struct {
	RequestID string `form:"request_id"`
	Kind      string `form:"kind"`
}
