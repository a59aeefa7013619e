package model

import "time"

// DateOnly is the wire and display format for date fields.
const DateOnly = "2006-01-02"

// BaseModel carries the audit timestamps embedded by every table.
type BaseModel struct {
	CreatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"updated_at"`
}
