package service

import (
	"context"
	"sync"
	"time"

	"gorm.io/gorm"

	"github.com/salhdl/AI-Agent/internal/model"
	pkgerrors "github.com/salhdl/AI-Agent/pkg/errors"
)

// ── Mock EmployeeRepository ──

type mockEmployeeRepo struct {
	mu             sync.Mutex
	employees      map[int]*model.Employee
	incrementErr   error
	incrementCalls int
}

func newMockEmployeeRepo() *mockEmployeeRepo {
	return &mockEmployeeRepo{employees: make(map[int]*model.Employee)}
}

func (m *mockEmployeeRepo) GetByEmployeeID(_ context.Context, employeeID int) (*model.Employee, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if e, ok := m.employees[employeeID]; ok {
		copied := *e
		return &copied, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockEmployeeRepo) IncrementHolidaysTaken(_ context.Context, employeeID, days int, takenOn time.Time) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.incrementErr != nil {
		return m.incrementErr
	}
	e, ok := m.employees[employeeID]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	e.HolidaysTaken += days
	e.LastHolidayTaken = &takenOn
	m.incrementCalls++
	return nil
}

// ── Mock RequestRepository ──

type mockRequestRepo struct {
	mu        sync.Mutex
	requests  map[string]*model.HolidayRequest
	createErr error
}

func newMockRequestRepo() *mockRequestRepo {
	return &mockRequestRepo{requests: make(map[string]*model.HolidayRequest)}
}

func (m *mockRequestRepo) Create(_ context.Context, request *model.HolidayRequest) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.createErr != nil {
		return m.createErr
	}
	copied := *request
	m.requests[request.RequestID] = &copied
	return nil
}

func (m *mockRequestRepo) GetByRequestID(_ context.Context, requestID string) (*model.HolidayRequest, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if r, ok := m.requests[requestID]; ok {
		copied := *r
		return &copied, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockRequestRepo) TransitionFromPending(_ context.Context, requestID, status string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	r, ok := m.requests[requestID]
	if !ok || r.Status != model.StatusPending {
		return pkgerrors.ErrStatusConflict
	}
	r.Status = status
	return nil
}

func (m *mockRequestRepo) List(_ context.Context, status string) ([]model.HolidayRequest, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var result []model.HolidayRequest
	for _, r := range m.requests {
		if status == "" || r.Status == status {
			result = append(result, *r)
		}
	}
	return result, nil
}

// ── Mock ProjectRepository ──

type mockProjectRepo struct {
	projects map[int]*model.Project
}

func newMockProjectRepo() *mockProjectRepo {
	return &mockProjectRepo{projects: make(map[int]*model.Project)}
}

func (m *mockProjectRepo) GetByEmployeeID(_ context.Context, employeeID int) (*model.Project, error) {
	if p, ok := m.projects[employeeID]; ok {
		copied := *p
		return &copied, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockProjectRepo) UpdateNextProject(_ context.Context, employeeID int, name string, startDate time.Time, role string) error {
	p, ok := m.projects[employeeID]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	p.NextProjectName = name
	p.NextProjectStartDate = &startDate
	p.NextProjectRole = role
	return nil
}

// ── Mock NotificationRepository ──

type mockNotificationRepo struct {
	mu      sync.Mutex
	entries []model.NotificationLog
}

func newMockNotificationRepo() *mockNotificationRepo {
	return &mockNotificationRepo{}
}

func (m *mockNotificationRepo) Create(_ context.Context, entry *model.NotificationLog) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries = append(m.entries, *entry)
	return nil
}

func (m *mockNotificationRepo) List(_ context.Context, requestID, kind string) ([]model.NotificationLog, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var result []model.NotificationLog
	for _, e := range m.entries {
		if requestID != "" && (e.RequestID == nil || *e.RequestID != requestID) {
			continue
		}
		if kind != "" && e.Kind != kind {
			continue
		}
		result = append(result, e)
	}
	return result, nil
}

func (m *mockNotificationRepo) byKind(kind string) []model.NotificationLog {
	m.mu.Lock()
	defer m.mu.Unlock()
	var result []model.NotificationLog
	for _, e := range m.entries {
		if e.Kind == kind {
			result = append(result, e)
		}
	}
	return result
}

// ── Mock ReconciliationRepository ──

type mockReconciliationRepo struct {
	mu      sync.Mutex
	markers []model.ReconciliationMarker
}

func newMockReconciliationRepo() *mockReconciliationRepo {
	return &mockReconciliationRepo{}
}

func (m *mockReconciliationRepo) Create(_ context.Context, marker *model.ReconciliationMarker) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.markers = append(m.markers, *marker)
	return nil
}

func (m *mockReconciliationRepo) ListUnresolved(_ context.Context) ([]model.ReconciliationMarker, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var result []model.ReconciliationMarker
	for _, marker := range m.markers {
		if !marker.Resolved {
			result = append(result, marker)
		}
	}
	return result, nil
}

// ── Mock Notifier ──

type sentMail struct {
	to      string
	subject string
	body    string
}

type mockNotifier struct {
	mu    sync.Mutex
	sends []sentMail
	err   error
}

func newMockNotifier() *mockNotifier {
	return &mockNotifier{}
}

func (m *mockNotifier) Send(_ context.Context, to, subject, body string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	m.sends = append(m.sends, sentMail{to: to, subject: subject, body: body})
	return nil
}

func (m *mockNotifier) sendCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.sends)
}
