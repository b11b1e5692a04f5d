package memory

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/stafflow/hr-backend-go/internal/domain/attendance"
)

type attendanceRepository struct {
	mu      sync.RWMutex
	records map[string]attendance.Attendance
}

func NewAttendanceRepository() attendance.AttendanceRepository {
	return &attendanceRepository{records: make(map[string]attendance.Attendance)}
}

// Create implements attendance.AttendanceRepository.
func (a *attendanceRepository) Create(ctx context.Context, att attendance.Attendance) (attendance.Attendance, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	for _, existing := range a.records {
		if existing.EmployeeID == att.EmployeeID && sameDay(existing.Date, att.Date) {
			return attendance.Attendance{}, attendance.ErrDuplicateAttendance
		}
	}

	now := time.Now()
	att.ID = uuid.NewString()
	att.CreatedAt = now
	att.UpdatedAt = now
	a.records[att.ID] = att

	return att, nil
}

// GetByID implements attendance.AttendanceRepository.
func (a *attendanceRepository) GetByID(ctx context.Context, id string) (attendance.Attendance, error) {
	a.mu.RLock()
	defer a.mu.RUnlock()

	att, ok := a.records[id]
	if !ok {
		return attendance.Attendance{}, attendance.ErrAttendanceNotFound
	}
	return att, nil
}

// GetByEmployeeAndDate implements attendance.AttendanceRepository.
func (a *attendanceRepository) GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (*attendance.Attendance, error) {
	a.mu.RLock()
	defer a.mu.RUnlock()

	for _, att := range a.records {
		if att.EmployeeID == employeeID && sameDay(att.Date, date) {
			found := att
			return &found, nil
		}
	}
	return nil, nil
}

// Update implements attendance.AttendanceRepository.
func (a *attendanceRepository) Update(ctx context.Context, att attendance.Attendance) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	existing, ok := a.records[att.ID]
	if !ok {
		return attendance.ErrAttendanceNotFound
	}

	att.CreatedAt = existing.CreatedAt
	att.UpdatedAt = time.Now()
	a.records[att.ID] = att
	return nil
}

// List implements attendance.AttendanceRepository.
func (a *attendanceRepository) List(ctx context.Context, filter attendance.AttendanceFilter) ([]attendance.Attendance, int64, error) {
	a.mu.RLock()
	defer a.mu.RUnlock()

	var matched []attendance.Attendance
	for _, att := range a.records {
		if filter.EmployeeID != "" && att.EmployeeID != filter.EmployeeID {
			continue
		}
		if filter.Status != "" && string(att.Status) != filter.Status {
			continue
		}
		if !inDateRange(att.Date, filter.StartDate, filter.EndDate) {
			continue
		}
		matched = append(matched, att)
	}

	sortByDateDesc(matched, func(att attendance.Attendance) time.Time { return att.Date })
	total := int64(len(matched))

	return paginate(matched, filter.Page, filter.Limit), total, nil
}

// Delete implements attendance.AttendanceRepository.
func (a *attendanceRepository) Delete(ctx context.Context, id string) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if _, ok := a.records[id]; !ok {
		return attendance.ErrAttendanceNotFound
	}
	delete(a.records, id)
	return nil
}
