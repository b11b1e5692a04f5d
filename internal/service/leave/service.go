package leave

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/stafflow/hr-backend-go/internal/domain/auth"
	"github.com/stafflow/hr-backend-go/internal/domain/employee"
	"github.com/stafflow/hr-backend-go/internal/domain/leave"
	"github.com/stafflow/hr-backend-go/internal/domain/user"
	"github.com/stafflow/hr-backend-go/internal/pkg/clock"
)

type LeaveServiceImpl struct {
	leave.LeaveRequestRepository
	employee.EmployeeRepository
	clk clock.Clock
}

func NewLeaveService(
	leaveRepo leave.LeaveRequestRepository,
	employeeRepo employee.EmployeeRepository,
	clk clock.Clock,
) leave.LeaveService {
	return &LeaveServiceImpl{
		LeaveRequestRepository: leaveRepo,
		EmployeeRepository:     employeeRepo,
		clk:                    clk,
	}
}

// Create implements leave.LeaveService.
func (l *LeaveServiceImpl) Create(ctx context.Context, req leave.CreateLeaveRequestRequest) (leave.LeaveResponse, error) {
	if err := req.Validate(); err != nil {
		return leave.LeaveResponse{}, err
	}

	actor, err := auth.ActorFromContext(ctx)
	if err != nil {
		return leave.LeaveResponse{}, err
	}

	employeeID := actor.EmployeeID
	if req.EmployeeID != nil && *req.EmployeeID != "" {
		if !actor.IsAdmin() && *req.EmployeeID != actor.EmployeeID {
			return leave.LeaveResponse{}, leave.ErrUnauthorized
		}
		employeeID = *req.EmployeeID
	}

	if _, err := l.EmployeeRepository.GetByID(ctx, employeeID); err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			return leave.LeaveResponse{}, employee.ErrEmployeeNotFound
		}
		return leave.LeaveResponse{}, fmt.Errorf("failed to get employee: %w", err)
	}

	startDate, _ := time.Parse("2006-01-02", req.StartDate)
	endDate, _ := time.Parse("2006-01-02", req.EndDate)
	startDate = leave.NormalizeDate(startDate)
	endDate = leave.NormalizeDate(endDate)

	// Past-dated requests are rejected at creation; the date math itself
	// stays clock-free. Compare calendar dates, not instants: the parsed
	// start is UTC midnight while today() is midnight in the app location.
	if startDate.Format("2006-01-02") < l.today().Format("2006-01-02") {
		return leave.LeaveResponse{}, leave.ErrPastDate
	}

	totalDays, err := leave.ComputeDuration(startDate, endDate, req.IsHalfDay)
	if err != nil {
		return leave.LeaveResponse{}, err
	}

	existing, err := l.LeaveRequestRepository.ListByEmployee(ctx, employeeID)
	if err != nil {
		return leave.LeaveResponse{}, fmt.Errorf("failed to list leave requests: %w", err)
	}
	if leave.HasOverlap(existing, startDate, endDate, "") {
		return leave.LeaveResponse{}, leave.ErrOverlappingLeave
	}

	request := leave.LeaveRequest{
		EmployeeID: employeeID,
		Type:       leave.LeaveType(req.Type),
		StartDate:  startDate,
		EndDate:    endDate,
		IsHalfDay:  req.IsHalfDay,
		TotalDays:  totalDays,
		Reason:     req.Reason,
		Status:     leave.StatusPending,
	}

	created, err := l.LeaveRequestRepository.Create(ctx, request)
	if err != nil {
		return leave.LeaveResponse{}, fmt.Errorf("failed to create leave request: %w", err)
	}

	return mapLeaveToResponse(created), nil
}

// Update implements leave.LeaveService. Only pending requests may be edited;
// duration and overlap are re-derived from the edited range.
func (l *LeaveServiceImpl) Update(ctx context.Context, req leave.UpdateLeaveRequestRequest) (leave.LeaveResponse, error) {
	if err := req.Validate(); err != nil {
		return leave.LeaveResponse{}, err
	}

	actor, err := auth.ActorFromContext(ctx)
	if err != nil {
		return leave.LeaveResponse{}, err
	}

	request, err := l.getOwned(ctx, req.ID, actor)
	if err != nil {
		return leave.LeaveResponse{}, err
	}

	if request.Status != leave.StatusPending {
		return leave.LeaveResponse{}, leave.ErrEditNotAllowed
	}

	if req.StartDate != nil {
		start, _ := time.Parse("2006-01-02", *req.StartDate)
		request.StartDate = leave.NormalizeDate(start)
	}
	if req.EndDate != nil {
		end, _ := time.Parse("2006-01-02", *req.EndDate)
		request.EndDate = leave.NormalizeDate(end)
	}
	if req.IsHalfDay != nil {
		request.IsHalfDay = *req.IsHalfDay
	}
	if req.Reason != nil {
		request.Reason = *req.Reason
	}

	totalDays, err := leave.ComputeDuration(request.StartDate, request.EndDate, request.IsHalfDay)
	if err != nil {
		return leave.LeaveResponse{}, err
	}
	request.TotalDays = totalDays

	existing, err := l.LeaveRequestRepository.ListByEmployee(ctx, request.EmployeeID)
	if err != nil {
		return leave.LeaveResponse{}, fmt.Errorf("failed to list leave requests: %w", err)
	}
	if leave.HasOverlap(existing, request.StartDate, request.EndDate, request.ID) {
		return leave.LeaveResponse{}, leave.ErrOverlappingLeave
	}

	if err := l.LeaveRequestRepository.Update(ctx, request); err != nil {
		return leave.LeaveResponse{}, fmt.Errorf("failed to update leave request: %w", err)
	}

	return mapLeaveToResponse(request), nil
}

// Approve implements leave.LeaveService.
func (l *LeaveServiceImpl) Approve(ctx context.Context, id string) (leave.LeaveResponse, error) {
	return l.transition(ctx, id, leave.StatusApproved, nil)
}

// Reject implements leave.LeaveService.
func (l *LeaveServiceImpl) Reject(ctx context.Context, req leave.RejectLeaveRequestRequest) (leave.LeaveResponse, error) {
	if err := req.Validate(); err != nil {
		return leave.LeaveResponse{}, err
	}
	return l.transition(ctx, req.ID, leave.StatusRejected, &req.Reason)
}

// transition performs the pending -> approved/rejected state change,
// stamping the actor and timestamp exactly once.
func (l *LeaveServiceImpl) transition(ctx context.Context, id string, next leave.LeaveStatus, rejectionReason *string) (leave.LeaveResponse, error) {
	actor, err := auth.ActorFromContext(ctx)
	if err != nil {
		return leave.LeaveResponse{}, err
	}

	if !actor.IsAdmin() {
		return leave.LeaveResponse{}, user.ErrAdminPrivilegeRequired
	}

	request, err := l.LeaveRequestRepository.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, leave.ErrLeaveNotFound) {
			return leave.LeaveResponse{}, leave.ErrLeaveNotFound
		}
		return leave.LeaveResponse{}, fmt.Errorf("failed to get leave request: %w", err)
	}

	if !request.Status.CanTransitionTo(next) {
		return leave.LeaveResponse{}, leave.ErrAlreadyProcessed
	}

	now := l.clk.Now()
	request.Status = next
	request.ApprovedBy = &actor.UserID
	request.ApprovedAt = &now
	request.RejectionReason = rejectionReason

	if err := l.LeaveRequestRepository.Update(ctx, request); err != nil {
		return leave.LeaveResponse{}, fmt.Errorf("failed to update leave request: %w", err)
	}

	return mapLeaveToResponse(request), nil
}

// Cancel implements leave.LeaveService.
func (l *LeaveServiceImpl) Cancel(ctx context.Context, id string) (leave.LeaveResponse, error) {
	actor, err := auth.ActorFromContext(ctx)
	if err != nil {
		return leave.LeaveResponse{}, err
	}

	request, err := l.getOwned(ctx, id, actor)
	if err != nil {
		return leave.LeaveResponse{}, err
	}

	if !actor.IsAdmin() && request.Status != leave.StatusPending {
		return leave.LeaveResponse{}, leave.ErrCancelNotAllowed
	}

	request.Status = leave.StatusCancelled

	if err := l.LeaveRequestRepository.Update(ctx, request); err != nil {
		return leave.LeaveResponse{}, fmt.Errorf("failed to update leave request: %w", err)
	}

	return mapLeaveToResponse(request), nil
}

// Delete implements leave.LeaveService.
func (l *LeaveServiceImpl) Delete(ctx context.Context, id string) error {
	actor, err := auth.ActorFromContext(ctx)
	if err != nil {
		return err
	}

	request, err := l.getOwned(ctx, id, actor)
	if err != nil {
		return err
	}

	if !actor.IsAdmin() && request.Status != leave.StatusPending {
		return leave.ErrCancelNotAllowed
	}

	if err := l.LeaveRequestRepository.Delete(ctx, request.ID); err != nil {
		return fmt.Errorf("failed to delete leave request: %w", err)
	}
	return nil
}

// Get implements leave.LeaveService.
func (l *LeaveServiceImpl) Get(ctx context.Context, id string) (leave.LeaveResponse, error) {
	actor, err := auth.ActorFromContext(ctx)
	if err != nil {
		return leave.LeaveResponse{}, err
	}

	request, err := l.getOwned(ctx, id, actor)
	if err != nil {
		return leave.LeaveResponse{}, err
	}

	return mapLeaveToResponse(request), nil
}

// GetMyLeave implements leave.LeaveService.
func (l *LeaveServiceImpl) GetMyLeave(ctx context.Context, filter leave.MyLeaveFilter) (leave.ListLeaveResponse, error) {
	actor, err := auth.ActorFromContext(ctx)
	if err != nil {
		return leave.ListLeaveResponse{}, err
	}

	return l.List(ctx, leave.LeaveFilter{
		EmployeeID: actor.EmployeeID,
		Status:     filter.Status,
		Page:       filter.Page,
		Limit:      filter.Limit,
	})
}

// List implements leave.LeaveService.
func (l *LeaveServiceImpl) List(ctx context.Context, filter leave.LeaveFilter) (leave.ListLeaveResponse, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 {
		filter.Limit = 20
	}

	requests, total, err := l.LeaveRequestRepository.List(ctx, filter)
	if err != nil {
		return leave.ListLeaveResponse{}, fmt.Errorf("failed to list leave requests: %w", err)
	}

	responses := make([]leave.LeaveResponse, 0, len(requests))
	for _, request := range requests {
		responses = append(responses, mapLeaveToResponse(request))
	}

	return leave.ListLeaveResponse{
		TotalCount: total,
		Page:       filter.Page,
		Limit:      filter.Limit,
		TotalPages: int(math.Ceil(float64(total) / float64(filter.Limit))),
		Requests:   responses,
	}, nil
}

// getOwned fetches a request and enforces that non-admins only touch their own.
func (l *LeaveServiceImpl) getOwned(ctx context.Context, id string, actor auth.Actor) (leave.LeaveRequest, error) {
	request, err := l.LeaveRequestRepository.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, leave.ErrLeaveNotFound) {
			return leave.LeaveRequest{}, leave.ErrLeaveNotFound
		}
		return leave.LeaveRequest{}, fmt.Errorf("failed to get leave request: %w", err)
	}

	if !actor.IsAdmin() && request.EmployeeID != actor.EmployeeID {
		return leave.LeaveRequest{}, leave.ErrUnauthorized
	}

	return request, nil
}

func (l *LeaveServiceImpl) today() time.Time {
	return l.clk.Today()
}

func mapLeaveToResponse(request leave.LeaveRequest) leave.LeaveResponse {
	var employeeName string
	if request.EmployeeName != nil {
		employeeName = *request.EmployeeName
	}

	var approvedAt *string
	if request.ApprovedAt != nil {
		formatted := request.ApprovedAt.Format("2006-01-02 15:04:05")
		approvedAt = &formatted
	}

	return leave.LeaveResponse{
		ID:              request.ID,
		EmployeeID:      request.EmployeeID,
		EmployeeName:    employeeName,
		Type:            string(request.Type),
		StartDate:       request.StartDate.Format("2006-01-02"),
		EndDate:         request.EndDate.Format("2006-01-02"),
		IsHalfDay:       request.IsHalfDay,
		TotalDays:       request.TotalDays,
		Reason:          request.Reason,
		Status:          string(request.Status),
		ApprovedBy:      request.ApprovedBy,
		ApprovedAt:      approvedAt,
		RejectionReason: request.RejectionReason,
		CreatedAt:       request.CreatedAt.Format("2006-01-02 15:04:05"),
		UpdatedAt:       request.UpdatedAt.Format("2006-01-02 15:04:05"),
	}
}
