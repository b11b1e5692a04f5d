package calldata

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/stafflow/hr-backend-go/internal/domain/attendance"
	"github.com/stafflow/hr-backend-go/internal/domain/auth"
	"github.com/stafflow/hr-backend-go/internal/domain/calldata"
	"github.com/stafflow/hr-backend-go/internal/domain/employee"
	"github.com/stafflow/hr-backend-go/internal/pkg/clock"
)

type CallDataServiceImpl struct {
	calldata.CallDataRepository
	attendance.AttendanceRepository
	employee.EmployeeRepository
	clk clock.Clock
}

func NewCallDataService(
	callDataRepo calldata.CallDataRepository,
	attendanceRepo attendance.AttendanceRepository,
	employeeRepo employee.EmployeeRepository,
	clk clock.Clock,
) calldata.CallDataService {
	return &CallDataServiceImpl{
		CallDataRepository:   callDataRepo,
		AttendanceRepository: attendanceRepo,
		EmployeeRepository:   employeeRepo,
		clk:                  clk,
	}
}

// Submit implements calldata.CallDataService. Find-or-create by
// (employee, date); the performance score is recomputed on every save and
// never read from the request.
func (c *CallDataServiceImpl) Submit(ctx context.Context, req calldata.SubmitCallDataRequest) (calldata.CallDataResponse, error) {
	if err := req.Validate(); err != nil {
		return calldata.CallDataResponse{}, err
	}

	actor, err := auth.ActorFromContext(ctx)
	if err != nil {
		return calldata.CallDataResponse{}, err
	}

	employeeID := actor.EmployeeID
	if req.EmployeeID != nil && *req.EmployeeID != "" {
		if !actor.IsAdmin() && *req.EmployeeID != actor.EmployeeID {
			return calldata.CallDataResponse{}, calldata.ErrUnauthorized
		}
		employeeID = *req.EmployeeID
	}

	if _, err := c.EmployeeRepository.GetByID(ctx, employeeID); err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			return calldata.CallDataResponse{}, employee.ErrEmployeeNotFound
		}
		return calldata.CallDataResponse{}, fmt.Errorf("failed to get employee: %w", err)
	}

	date := c.clk.Today()
	if req.Date != nil && *req.Date != "" {
		parsed, _ := time.Parse("2006-01-02", *req.Date)
		date = parsed
	}

	existing, err := c.CallDataRepository.GetByEmployeeAndDate(ctx, employeeID, date)
	if err != nil {
		return calldata.CallDataResponse{}, fmt.Errorf("failed to get call data: %w", err)
	}

	score := calldata.ComputeScore(req.VisitedToday, req.InterestedStudents, req.TotalCallTime, req.TotalCalls)

	if existing == nil {
		record := calldata.CallData{
			EmployeeID:         employeeID,
			Date:               date,
			TotalCalls:         req.TotalCalls,
			TotalCallTime:      req.TotalCallTime,
			InterestedStudents: req.InterestedStudents,
			VisitedToday:       req.VisitedToday,
			PerformanceScore:   score,
			Notes:              req.Notes,
		}

		created, err := c.CallDataRepository.Create(ctx, record)
		if err != nil {
			if errors.Is(err, calldata.ErrDuplicateCallData) {
				return calldata.CallDataResponse{}, calldata.ErrDuplicateCallData
			}
			return calldata.CallDataResponse{}, fmt.Errorf("failed to create call data: %w", err)
		}
		return mapCallDataToResponse(created), nil
	}

	// Edits to today's record are locked once the employee has clocked out;
	// admins bypass, including on another employee's record. The stored date
	// may carry a different zone than the clock (a date column scans back as
	// UTC midnight), so compare calendar components, not instants.
	if !actor.IsAdmin() && sameCalendarDay(existing.Date, c.clk.Today()) {
		att, err := c.AttendanceRepository.GetByEmployeeAndDate(ctx, actor.EmployeeID, c.clk.Today())
		if err != nil {
			return calldata.CallDataResponse{}, fmt.Errorf("failed to check attendance: %w", err)
		}
		if att != nil && att.ClockOut != nil {
			return calldata.CallDataResponse{}, calldata.ErrCheckedOut
		}
	}

	existing.TotalCalls = req.TotalCalls
	existing.TotalCallTime = req.TotalCallTime
	existing.InterestedStudents = req.InterestedStudents
	existing.VisitedToday = req.VisitedToday
	existing.PerformanceScore = score
	if req.Notes != nil {
		existing.Notes = req.Notes
	}

	if err := c.CallDataRepository.Update(ctx, *existing); err != nil {
		return calldata.CallDataResponse{}, fmt.Errorf("failed to update call data: %w", err)
	}

	return mapCallDataToResponse(*existing), nil
}

// Get implements calldata.CallDataService.
func (c *CallDataServiceImpl) Get(ctx context.Context, id string) (calldata.CallDataResponse, error) {
	actor, err := auth.ActorFromContext(ctx)
	if err != nil {
		return calldata.CallDataResponse{}, err
	}

	record, err := c.CallDataRepository.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, calldata.ErrCallDataNotFound) {
			return calldata.CallDataResponse{}, calldata.ErrCallDataNotFound
		}
		return calldata.CallDataResponse{}, fmt.Errorf("failed to get call data: %w", err)
	}

	if !actor.IsAdmin() && record.EmployeeID != actor.EmployeeID {
		return calldata.CallDataResponse{}, calldata.ErrUnauthorized
	}

	return mapCallDataToResponse(record), nil
}

// GetMyCallData implements calldata.CallDataService.
func (c *CallDataServiceImpl) GetMyCallData(ctx context.Context, filter calldata.MyCallDataFilter) (calldata.ListCallDataResponse, error) {
	actor, err := auth.ActorFromContext(ctx)
	if err != nil {
		return calldata.ListCallDataResponse{}, err
	}

	return c.List(ctx, calldata.CallDataFilter{
		EmployeeID: actor.EmployeeID,
		StartDate:  filter.StartDate,
		EndDate:    filter.EndDate,
		Page:       filter.Page,
		Limit:      filter.Limit,
	})
}

// List implements calldata.CallDataService.
func (c *CallDataServiceImpl) List(ctx context.Context, filter calldata.CallDataFilter) (calldata.ListCallDataResponse, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 {
		filter.Limit = 20
	}

	records, total, err := c.CallDataRepository.List(ctx, filter)
	if err != nil {
		return calldata.ListCallDataResponse{}, fmt.Errorf("failed to list call data: %w", err)
	}

	responses := make([]calldata.CallDataResponse, 0, len(records))
	for _, record := range records {
		responses = append(responses, mapCallDataToResponse(record))
	}

	return calldata.ListCallDataResponse{
		TotalCount: total,
		Page:       filter.Page,
		Limit:      filter.Limit,
		TotalPages: int(math.Ceil(float64(total) / float64(filter.Limit))),
		Records:    responses,
	}, nil
}

// Delete implements calldata.CallDataService.
func (c *CallDataServiceImpl) Delete(ctx context.Context, id string) error {
	if err := c.CallDataRepository.Delete(ctx, id); err != nil {
		if errors.Is(err, calldata.ErrCallDataNotFound) {
			return calldata.ErrCallDataNotFound
		}
		return fmt.Errorf("failed to delete call data: %w", err)
	}
	return nil
}

func sameCalendarDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

func mapCallDataToResponse(record calldata.CallData) calldata.CallDataResponse {
	var employeeName string
	if record.EmployeeName != nil {
		employeeName = *record.EmployeeName
	}

	return calldata.CallDataResponse{
		ID:                 record.ID,
		EmployeeID:         record.EmployeeID,
		EmployeeName:       employeeName,
		Date:               record.Date.Format("2006-01-02"),
		TotalCalls:         record.TotalCalls,
		TotalCallTime:      record.TotalCallTime,
		InterestedStudents: record.InterestedStudents,
		VisitedToday:       record.VisitedToday,
		PerformanceScore:   record.PerformanceScore,
		Notes:              record.Notes,
		CreatedAt:          record.CreatedAt.Format("2006-01-02 15:04:05"),
		UpdatedAt:          record.UpdatedAt.Format("2006-01-02 15:04:05"),
	}
}
