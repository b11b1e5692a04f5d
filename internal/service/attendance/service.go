package attendance

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/stafflow/hr-backend-go/internal/domain/attendance"
	"github.com/stafflow/hr-backend-go/internal/domain/auth"
	"github.com/stafflow/hr-backend-go/internal/domain/employee"
	"github.com/stafflow/hr-backend-go/internal/pkg/clock"
)

type AttendanceServiceImpl struct {
	attendance.AttendanceRepository
	employee.EmployeeRepository
	clk clock.Clock
}

func NewAttendanceService(
	attendanceRepo attendance.AttendanceRepository,
	employeeRepo employee.EmployeeRepository,
	clk clock.Clock,
) attendance.AttendanceService {
	return &AttendanceServiceImpl{
		AttendanceRepository: attendanceRepo,
		EmployeeRepository:   employeeRepo,
		clk:                  clk,
	}
}

// timePtrToString safely converts a *time.Time to a string.
func timePtrToString(t *time.Time) *string {
	if t == nil {
		return nil
	}
	format := t.Format("2006-01-02 15:04:05")
	return &format
}

// ClockIn implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) ClockIn(ctx context.Context, req attendance.ClockInRequest) (attendance.AttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	actor, err := auth.ActorFromContext(ctx)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	now := a.clk.Now()
	today := a.clk.Today()

	existing, err := a.AttendanceRepository.GetByEmployeeAndDate(ctx, actor.EmployeeID, today)
	if err != nil {
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to check today's attendance: %w", err)
	}
	if existing != nil {
		return attendance.AttendanceResponse{}, &attendance.ClockConflictError{Existing: *existing}
	}

	data := attendance.Attendance{
		EmployeeID: actor.EmployeeID,
		Date:       today,
		ClockIn:    &now,
		Status:     attendance.StatusPresent,
		Notes:      req.Notes,
	}

	created, err := a.AttendanceRepository.Create(ctx, data)
	if err != nil {
		// Two racing clock-ins resolve at the unique (employee, date) key;
		// report the surviving record instead of a bare failure.
		if errors.Is(err, attendance.ErrDuplicateAttendance) {
			if winner, getErr := a.AttendanceRepository.GetByEmployeeAndDate(ctx, actor.EmployeeID, today); getErr == nil && winner != nil {
				return attendance.AttendanceResponse{}, &attendance.ClockConflictError{Existing: *winner}
			}
			return attendance.AttendanceResponse{}, attendance.ErrAlreadyClockedIn
		}
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to create attendance record: %w", err)
	}

	return mapAttendanceToResponse(created), nil
}

// ClockOut implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) ClockOut(ctx context.Context) (attendance.AttendanceResponse, error) {
	actor, err := auth.ActorFromContext(ctx)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	att, err := a.openRecordForToday(ctx, actor.EmployeeID)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	now := a.clk.Now()
	att.ClockOut = &now
	attendance.Derive(att.ClockIn, att.ClockOut, att.BreakStart, att.BreakEnd).Apply(att)

	if err := a.AttendanceRepository.Update(ctx, *att); err != nil {
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to update attendance record: %w", err)
	}

	return mapAttendanceToResponse(*att), nil
}

// StartBreak implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) StartBreak(ctx context.Context) (attendance.AttendanceResponse, error) {
	actor, err := auth.ActorFromContext(ctx)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	att, err := a.openRecordForToday(ctx, actor.EmployeeID)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	if att.BreakStart != nil {
		return attendance.AttendanceResponse{}, attendance.ErrBreakAlreadyStarted
	}

	now := a.clk.Now()
	att.BreakStart = &now

	if err := a.AttendanceRepository.Update(ctx, *att); err != nil {
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to update attendance record: %w", err)
	}

	return mapAttendanceToResponse(*att), nil
}

// EndBreak implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) EndBreak(ctx context.Context) (attendance.AttendanceResponse, error) {
	actor, err := auth.ActorFromContext(ctx)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	att, err := a.openRecordForToday(ctx, actor.EmployeeID)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	if att.BreakStart == nil {
		return attendance.AttendanceResponse{}, attendance.ErrBreakNotStarted
	}
	if att.BreakEnd != nil {
		return attendance.AttendanceResponse{}, attendance.ErrBreakAlreadyEnded
	}

	now := a.clk.Now()
	att.BreakEnd = &now

	if err := a.AttendanceRepository.Update(ctx, *att); err != nil {
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to update attendance record: %w", err)
	}

	return mapAttendanceToResponse(*att), nil
}

// openRecordForToday fetches today's record that has not been clocked out.
func (a *AttendanceServiceImpl) openRecordForToday(ctx context.Context, employeeID string) (*attendance.Attendance, error) {
	att, err := a.AttendanceRepository.GetByEmployeeAndDate(ctx, employeeID, a.clk.Today())
	if err != nil {
		return nil, fmt.Errorf("failed to get today's attendance: %w", err)
	}
	if att == nil || att.ClockIn == nil {
		return nil, attendance.ErrNotClockedIn
	}
	if att.ClockOut != nil {
		return nil, attendance.ErrAlreadyClockedOut
	}
	return att, nil
}

// Create implements attendance.AttendanceService. Admin manual entry; the
// unique (employee, date) key still applies.
func (a *AttendanceServiceImpl) Create(ctx context.Context, req attendance.CreateAttendanceRequest) (attendance.AttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	if _, err := a.EmployeeRepository.GetByID(ctx, req.EmployeeID); err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			return attendance.AttendanceResponse{}, employee.ErrEmployeeNotFound
		}
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to get employee: %w", err)
	}

	date, _ := time.Parse("2006-01-02", req.Date)

	att := attendance.Attendance{
		EmployeeID: req.EmployeeID,
		Date:       date,
		ClockIn:    parseTimePtr(req.ClockIn),
		ClockOut:   parseTimePtr(req.ClockOut),
		BreakStart: parseTimePtr(req.BreakStart),
		BreakEnd:   parseTimePtr(req.BreakEnd),
		Status:     attendance.StatusAbsent,
		Notes:      req.Notes,
	}
	if req.Status != nil {
		att.Status = attendance.Status(*req.Status)
	}

	attendance.Derive(att.ClockIn, att.ClockOut, att.BreakStart, att.BreakEnd).Apply(&att)

	created, err := a.AttendanceRepository.Create(ctx, att)
	if err != nil {
		if errors.Is(err, attendance.ErrDuplicateAttendance) {
			return attendance.AttendanceResponse{}, attendance.ErrDuplicateAttendance
		}
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to create attendance record: %w", err)
	}

	return mapAttendanceToResponse(created), nil
}

// Update implements attendance.AttendanceService. Derived fields are always
// recomputed after the edit.
func (a *AttendanceServiceImpl) Update(ctx context.Context, req attendance.UpdateAttendanceRequest) (attendance.AttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	att, err := a.AttendanceRepository.GetByID(ctx, req.ID)
	if err != nil {
		if errors.Is(err, attendance.ErrAttendanceNotFound) {
			return attendance.AttendanceResponse{}, attendance.ErrAttendanceNotFound
		}
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to get attendance: %w", err)
	}

	if req.ClockIn != nil {
		att.ClockIn = parseTimePtr(req.ClockIn)
	}
	if req.ClockOut != nil {
		att.ClockOut = parseTimePtr(req.ClockOut)
	}
	if req.BreakStart != nil {
		att.BreakStart = parseTimePtr(req.BreakStart)
	}
	if req.BreakEnd != nil {
		att.BreakEnd = parseTimePtr(req.BreakEnd)
	}
	if req.Status != nil {
		att.Status = attendance.Status(*req.Status)
	}
	if req.Notes != nil {
		att.Notes = req.Notes
	}

	attendance.Derive(att.ClockIn, att.ClockOut, att.BreakStart, att.BreakEnd).Apply(&att)

	if err := a.AttendanceRepository.Update(ctx, att); err != nil {
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to update attendance: %w", err)
	}

	return mapAttendanceToResponse(att), nil
}

// Get implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) Get(ctx context.Context, id string) (attendance.AttendanceResponse, error) {
	actor, err := auth.ActorFromContext(ctx)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	att, err := a.AttendanceRepository.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, attendance.ErrAttendanceNotFound) {
			return attendance.AttendanceResponse{}, attendance.ErrAttendanceNotFound
		}
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to get attendance: %w", err)
	}

	if !actor.IsAdmin() && att.EmployeeID != actor.EmployeeID {
		return attendance.AttendanceResponse{}, attendance.ErrUnauthorized
	}

	return mapAttendanceToResponse(att), nil
}

// GetMyAttendance implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) GetMyAttendance(ctx context.Context, filter attendance.MyAttendanceFilter) (attendance.ListAttendanceResponse, error) {
	actor, err := auth.ActorFromContext(ctx)
	if err != nil {
		return attendance.ListAttendanceResponse{}, err
	}

	return a.List(ctx, attendance.AttendanceFilter{
		EmployeeID: actor.EmployeeID,
		StartDate:  filter.StartDate,
		EndDate:    filter.EndDate,
		Page:       filter.Page,
		Limit:      filter.Limit,
	})
}

// List implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) List(ctx context.Context, filter attendance.AttendanceFilter) (attendance.ListAttendanceResponse, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 {
		filter.Limit = 20
	}

	attendances, total, err := a.AttendanceRepository.List(ctx, filter)
	if err != nil {
		return attendance.ListAttendanceResponse{}, fmt.Errorf("failed to list attendances: %w", err)
	}

	responses := make([]attendance.AttendanceResponse, 0, len(attendances))
	for _, att := range attendances {
		responses = append(responses, mapAttendanceToResponse(att))
	}

	return attendance.ListAttendanceResponse{
		TotalCount:  total,
		Page:        filter.Page,
		Limit:       filter.Limit,
		TotalPages:  int(math.Ceil(float64(total) / float64(filter.Limit))),
		Attendances: responses,
	}, nil
}

// Delete implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) Delete(ctx context.Context, id string) error {
	if err := a.AttendanceRepository.Delete(ctx, id); err != nil {
		if errors.Is(err, attendance.ErrAttendanceNotFound) {
			return attendance.ErrAttendanceNotFound
		}
		return fmt.Errorf("failed to delete attendance: %w", err)
	}
	return nil
}

func parseTimePtr(s *string) *time.Time {
	if s == nil || *s == "" {
		return nil
	}
	t, err := time.Parse(time.RFC3339, *s)
	if err != nil {
		return nil
	}
	return &t
}

// mapAttendanceToResponse converts an Attendance entity to AttendanceResponse.
// Hours are rounded here for display only.
func mapAttendanceToResponse(att attendance.Attendance) attendance.AttendanceResponse {
	var employeeName string
	if att.EmployeeName != nil {
		employeeName = *att.EmployeeName
	}

	return attendance.AttendanceResponse{
		ID:            att.ID,
		EmployeeID:    att.EmployeeID,
		EmployeeName:  employeeName,
		Date:          att.Date.Format("2006-01-02"),
		ClockIn:       timePtrToString(att.ClockIn),
		ClockOut:      timePtrToString(att.ClockOut),
		BreakStart:    timePtrToString(att.BreakStart),
		BreakEnd:      timePtrToString(att.BreakEnd),
		TotalHours:    attendance.RoundHours(att.TotalHours),
		OvertimeHours: attendance.RoundHours(att.OvertimeHours),
		Status:        string(att.Status),
		Notes:         att.Notes,
		CreatedAt:     att.CreatedAt.Format("2006-01-02 15:04:05"),
		UpdatedAt:     att.UpdatedAt.Format("2006-01-02 15:04:05"),
	}
}
