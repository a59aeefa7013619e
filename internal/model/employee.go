package model

import "time"

// Employee holds an employee's holiday entitlement — table employee_holidays.
type Employee struct {
	EmployeeID       int        `gorm:"primaryKey"                  json:"employee_id"`
	FullName         string     `gorm:"type:varchar(200);not null"  json:"full_name"`
	Email            string     `gorm:"type:varchar(200);not null"  json:"email"`
	TotalHolidayDays int        `gorm:"not null;default:0"          json:"total_holiday_days"`
	HolidaysTaken    int        `gorm:"not null;default:0"          json:"holidays_taken"`
	LastHolidayTaken *time.Time `gorm:"type:date"                   json:"last_holiday_taken,omitempty"`
	BaseModel
}

// TableName specifies the table name.
func (Employee) TableName() string { return "employee_holidays" }

// RemainingDays is the entitlement still available to the employee.
func (e *Employee) RemainingDays() int {
	return e.TotalHolidayDays - e.HolidaysTaken
}
