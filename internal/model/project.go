package model

import "time"

// Project holds an employee's current and planned assignment — table
// employee_projects (1:1 with employees).
type Project struct {
	EmployeeID           int        `gorm:"primaryKey"         json:"employee_id"`
	EmployeeName         string     `gorm:"type:varchar(200);not null" json:"employee_name"`
	ProjectName          string     `gorm:"type:varchar(200)"  json:"project_name,omitempty"`
	Role                 string     `gorm:"type:varchar(100)"  json:"role,omitempty"`
	StartDate            *time.Time `gorm:"type:date"          json:"start_date,omitempty"`
	EndDate              *time.Time `gorm:"type:date"          json:"end_date,omitempty"`
	NextProjectName      string     `gorm:"type:varchar(200)"  json:"next_project_name,omitempty"`
	NextProjectStartDate *time.Time `gorm:"type:date"          json:"next_project_start_date,omitempty"`
	NextProjectRole      string     `gorm:"type:varchar(100)"  json:"next_project_role,omitempty"`
	BaseModel
}

// TableName specifies the table name.
func (Project) TableName() string { return "employee_projects" }
