package model

import "time"

// Notification kinds.
const (
	NotificationKindApprovalLink = "approval_link" // link mailed to HR at creation
	NotificationKindDecision     = "decision"      // outcome mailed to the employee
)

// NotificationLog records every outbound message — table notification_log.
// Delivery is best-effort; the log is the audit trail that exactly one
// decision notification went out per request.
type NotificationLog struct {
	NotificationID string    `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"notification_id"`
	Recipient      string    `gorm:"type:varchar(200);not null"                     json:"recipient"`
	Subject        string    `gorm:"type:varchar(300);not null"                     json:"subject"`
	Kind           string    `gorm:"type:varchar(40);not null"                      json:"kind"`
	RequestID      *string   `gorm:"type:varchar(36)"                               json:"request_id,omitempty"`
	Delivered      bool      `gorm:"not null;default:false"                         json:"delivered"`
	Error          string    `gorm:"type:text"                                      json:"error,omitempty"`
	CreatedAt      time.Time `gorm:"not null;default:CURRENT_TIMESTAMP"             json:"created_at"`
}

// TableName specifies the table name.
func (NotificationLog) TableName() string { return "notification_log" }
