package dto

// ── project module DTOs ──

// ProjectResponse reports an employee's current and planned assignment.
type ProjectResponse struct {
	EmployeeID   int          `json:"employee_id"`
	EmployeeName string       `json:"employee_name"`
	ProjectName  string       `json:"project_name,omitempty"`
	Role         string       `json:"role,omitempty"`
	StartDate    string       `json:"start_date,omitempty"`
	EndDate      string       `json:"end_date,omitempty"`
	NextProject  *NextProject `json:"next_project,omitempty"`
}

// NextProject is the planned future assignment.
type NextProject struct {
	ProjectName string `json:"project_name"`
	StartDate   string `json:"start_date,omitempty"`
	Role        string `json:"role,omitempty"`
}

// UpdateNextProjectRequest sets an employee's planned assignment.
type UpdateNextProjectRequest struct {
	ProjectName string `json:"project_name" binding:"required,max=200"`
	StartDate   string `json:"start_date"   binding:"required,datetime=2006-01-02"`
	Role        string `json:"role"         binding:"required,max=100"`
}
