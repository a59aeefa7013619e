package model

import "time"

// ReconciliationMarker records a decision whose entitlement update failed
// after the status transition was already persisted — table
// reconciliation_markers. The store gives no transaction across the two
// records, so the gap is made durable instead of being lost.
type ReconciliationMarker struct {
	MarkerID      string    `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"marker_id"`
	RequestID     string    `gorm:"type:varchar(36);not null"                      json:"request_id"`
	EmployeeID    int       `gorm:"not null"                                       json:"employee_id"`
	RequestedDays int       `gorm:"not null"                                       json:"requested_days"`
	Reason        string    `gorm:"type:text;not null"                             json:"reason"`
	Resolved      bool      `gorm:"not null;default:false"                         json:"resolved"`
	CreatedAt     time.Time `gorm:"not null;default:CURRENT_TIMESTAMP"             json:"created_at"`
}

// TableName specifies the table name.
func (ReconciliationMarker) TableName() string { return "reconciliation_markers" }
