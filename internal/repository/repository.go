package repository

import "gorm.io/gorm"

// Repository aggregates all data access interfaces. It is the only
// durable state the controllers touch; handlers and services hold no
// in-memory state between requests.
type Repository struct {
	Employee       EmployeeRepository
	Request        RequestRepository
	Project        ProjectRepository
	Notification   NotificationRepository
	Reconciliation ReconciliationRepository
}

// NewRepository creates the Repository aggregate.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{
		Employee:       NewEmployeeRepo(db),
		Request:        NewRequestRepo(db),
		Project:        NewProjectRepo(db),
		Notification:   NewNotificationRepo(db),
		Reconciliation: NewReconciliationRepo(db),
	}
}
