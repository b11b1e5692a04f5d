package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/stafflow/hr-backend-go/internal/domain/leave"
)

type leaveRequestRepository struct {
	mu      sync.RWMutex
	records map[string]leave.LeaveRequest
}

func NewLeaveRequestRepository() leave.LeaveRequestRepository {
	return &leaveRequestRepository{records: make(map[string]leave.LeaveRequest)}
}

// Create implements leave.LeaveRequestRepository.
func (l *leaveRequestRepository) Create(ctx context.Context, req leave.LeaveRequest) (leave.LeaveRequest, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := time.Now()
	req.ID = uuid.NewString()
	req.CreatedAt = now
	req.UpdatedAt = now
	l.records[req.ID] = req

	return req, nil
}

// GetByID implements leave.LeaveRequestRepository.
func (l *leaveRequestRepository) GetByID(ctx context.Context, id string) (leave.LeaveRequest, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	req, ok := l.records[id]
	if !ok {
		return leave.LeaveRequest{}, leave.ErrLeaveNotFound
	}
	return req, nil
}

// ListByEmployee implements leave.LeaveRequestRepository.
func (l *leaveRequestRepository) ListByEmployee(ctx context.Context, employeeID string) ([]leave.LeaveRequest, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	var requests []leave.LeaveRequest
	for _, req := range l.records {
		if req.EmployeeID == employeeID {
			requests = append(requests, req)
		}
	}

	sort.SliceStable(requests, func(i, j int) bool {
		return requests[i].StartDate.Before(requests[j].StartDate)
	})

	return requests, nil
}

// Update implements leave.LeaveRequestRepository.
func (l *leaveRequestRepository) Update(ctx context.Context, req leave.LeaveRequest) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	existing, ok := l.records[req.ID]
	if !ok {
		return leave.ErrLeaveNotFound
	}

	req.CreatedAt = existing.CreatedAt
	req.UpdatedAt = time.Now()
	l.records[req.ID] = req
	return nil
}

// List implements leave.LeaveRequestRepository.
func (l *leaveRequestRepository) List(ctx context.Context, filter leave.LeaveFilter) ([]leave.LeaveRequest, int64, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	var matched []leave.LeaveRequest
	for _, req := range l.records {
		if filter.EmployeeID != "" && req.EmployeeID != filter.EmployeeID {
			continue
		}
		if filter.Status != "" && string(req.Status) != filter.Status {
			continue
		}
		if filter.Type != "" && string(req.Type) != filter.Type {
			continue
		}
		matched = append(matched, req)
	}

	sortByDateDesc(matched, func(req leave.LeaveRequest) time.Time { return req.CreatedAt })
	total := int64(len(matched))

	return paginate(matched, filter.Page, filter.Limit), total, nil
}

// Delete implements leave.LeaveRequestRepository.
func (l *leaveRequestRepository) Delete(ctx context.Context, id string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if _, ok := l.records[id]; !ok {
		return leave.ErrLeaveNotFound
	}
	delete(l.records, id)
	return nil
}
