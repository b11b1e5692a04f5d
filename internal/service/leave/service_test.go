package leave

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stafflow/hr-backend-go/internal/domain/auth"
	"github.com/stafflow/hr-backend-go/internal/domain/employee"
	"github.com/stafflow/hr-backend-go/internal/domain/leave"
	"github.com/stafflow/hr-backend-go/internal/domain/user"
	"github.com/stafflow/hr-backend-go/internal/pkg/clock"
	"github.com/stafflow/hr-backend-go/internal/repository/memory"
)

type leaveTestEnv struct {
	service leave.LeaveService
	clk     *clock.Fixed
	emp     employee.Employee
}

func newLeaveTestEnv(t *testing.T) *leaveTestEnv {
	t.Helper()

	leaveRepo := memory.NewLeaveRequestRepository()
	employeeRepo := memory.NewEmployeeRepository()

	emp, err := employeeRepo.Create(context.Background(), employee.Employee{
		FullName: "Budi Santoso",
		Email:    "budi@example.com",
		IsActive: true,
	})
	require.NoError(t, err)

	clk := clock.NewFixed(time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC))

	return &leaveTestEnv{
		service: NewLeaveService(leaveRepo, employeeRepo, clk),
		clk:     clk,
		emp:     emp,
	}
}

func (e *leaveTestEnv) employeeCtx() context.Context {
	return auth.WithActor(context.Background(), auth.Actor{
		UserID:     "user-1",
		EmployeeID: e.emp.ID,
		Role:       user.RoleEmployee,
	})
}

func (e *leaveTestEnv) adminCtx() context.Context {
	return auth.WithActor(context.Background(), auth.Actor{
		UserID: "user-admin",
		Role:   user.RoleAdmin,
	})
}

func (e *leaveTestEnv) createRequest(t *testing.T, start, end string) leave.LeaveResponse {
	t.Helper()
	resp, err := e.service.Create(e.employeeCtx(), leave.CreateLeaveRequestRequest{
		Type:      string(leave.TypeAnnual),
		StartDate: start,
		EndDate:   end,
		Reason:    "family trip",
	})
	require.NoError(t, err)
	return resp
}

func TestLeaveService_Create_Success(t *testing.T) {
	t.Parallel()
	env := newLeaveTestEnv(t)

	resp := env.createRequest(t, "2025-06-20", "2025-06-25")

	assert.NotEmpty(t, resp.ID)
	assert.Equal(t, env.emp.ID, resp.EmployeeID)
	assert.Equal(t, string(leave.StatusPending), resp.Status)
	assert.InDelta(t, 6.0, resp.TotalDays, 0.001)
	assert.Nil(t, resp.ApprovedBy)
}

func TestLeaveService_Create_HalfDay(t *testing.T) {
	t.Parallel()
	env := newLeaveTestEnv(t)

	resp, err := env.service.Create(env.employeeCtx(), leave.CreateLeaveRequestRequest{
		Type:      string(leave.TypeSick),
		StartDate: "2025-06-20",
		EndDate:   "2025-06-20",
		IsHalfDay: true,
		Reason:    "doctor appointment",
	})

	require.NoError(t, err)
	assert.InDelta(t, 0.5, resp.TotalDays, 0.001)
}

func TestLeaveService_Create_PastDate(t *testing.T) {
	t.Parallel()
	env := newLeaveTestEnv(t)

	_, err := env.service.Create(env.employeeCtx(), leave.CreateLeaveRequestRequest{
		Type:      string(leave.TypeAnnual),
		StartDate: "2025-05-30",
		EndDate:   "2025-06-02",
		Reason:    "late filing",
	})

	assert.ErrorIs(t, err, leave.ErrPastDate)
}

func TestLeaveService_Create_SameDayInNegativeOffsetZone(t *testing.T) {
	t.Parallel()

	leaveRepo := memory.NewLeaveRequestRepository()
	employeeRepo := memory.NewEmployeeRepository()

	emp, err := employeeRepo.Create(context.Background(), employee.Employee{
		FullName: "Maya Sari",
		Email:    "maya@example.com",
		IsActive: true,
	})
	require.NoError(t, err)

	// Request dates parse as UTC midnight while today() is midnight in the
	// app location; behind UTC the same calendar day must still be accepted.
	loc := time.FixedZone("UTC-4", -4*60*60)
	clk := clock.NewFixed(time.Date(2025, 4, 7, 9, 0, 0, 0, loc))
	service := NewLeaveService(leaveRepo, employeeRepo, clk)

	ctx := auth.WithActor(context.Background(), auth.Actor{
		UserID:     "user-1",
		EmployeeID: emp.ID,
		Role:       user.RoleEmployee,
	})

	resp, err := service.Create(ctx, leave.CreateLeaveRequestRequest{
		Type:      string(leave.TypeSick),
		StartDate: "2025-04-07",
		EndDate:   "2025-04-07",
		Reason:    "same-day sick leave",
	})
	require.NoError(t, err)
	assert.Equal(t, string(leave.StatusPending), resp.Status)

	// Yesterday is still rejected.
	_, err = service.Create(ctx, leave.CreateLeaveRequestRequest{
		Type:      string(leave.TypeSick),
		StartDate: "2025-04-06",
		EndDate:   "2025-04-06",
		Reason:    "late filing",
	})
	assert.ErrorIs(t, err, leave.ErrPastDate)
}

func TestLeaveService_Create_InvalidRange(t *testing.T) {
	t.Parallel()
	env := newLeaveTestEnv(t)

	_, err := env.service.Create(env.employeeCtx(), leave.CreateLeaveRequestRequest{
		Type:      string(leave.TypeAnnual),
		StartDate: "2025-06-25",
		EndDate:   "2025-06-20",
		Reason:    "inverted range",
	})

	assert.ErrorIs(t, err, leave.ErrInvalidDateRange)
}

func TestLeaveService_Create_Overlap(t *testing.T) {
	t.Parallel()
	env := newLeaveTestEnv(t)

	env.createRequest(t, "2025-06-20", "2025-06-25")

	_, err := env.service.Create(env.employeeCtx(), leave.CreateLeaveRequestRequest{
		Type:      string(leave.TypeCasual),
		StartDate: "2025-06-25",
		EndDate:   "2025-06-27",
		Reason:    "touching boundary",
	})
	assert.ErrorIs(t, err, leave.ErrOverlappingLeave)

	// Adjacent but not overlapping is fine.
	_, err = env.service.Create(env.employeeCtx(), leave.CreateLeaveRequestRequest{
		Type:      string(leave.TypeCasual),
		StartDate: "2025-06-26",
		EndDate:   "2025-06-27",
		Reason:    "next day",
	})
	assert.NoError(t, err)
}

func TestLeaveService_Create_RejectedDoesNotBlock(t *testing.T) {
	t.Parallel()
	env := newLeaveTestEnv(t)

	created := env.createRequest(t, "2025-06-20", "2025-06-25")

	_, err := env.service.Reject(env.adminCtx(), leave.RejectLeaveRequestRequest{
		ID:     created.ID,
		Reason: "coverage gap",
	})
	require.NoError(t, err)

	_, err = env.service.Create(env.employeeCtx(), leave.CreateLeaveRequestRequest{
		Type:      string(leave.TypeAnnual),
		StartDate: "2025-06-22",
		EndDate:   "2025-06-24",
		Reason:    "retry after rejection",
	})
	assert.NoError(t, err)
}

func TestLeaveService_Approve_Success(t *testing.T) {
	t.Parallel()
	env := newLeaveTestEnv(t)

	created := env.createRequest(t, "2025-06-20", "2025-06-25")

	resp, err := env.service.Approve(env.adminCtx(), created.ID)

	require.NoError(t, err)
	assert.Equal(t, string(leave.StatusApproved), resp.Status)
	require.NotNil(t, resp.ApprovedBy)
	assert.Equal(t, "user-admin", *resp.ApprovedBy)
	assert.NotNil(t, resp.ApprovedAt)
}

func TestLeaveService_Approve_Twice(t *testing.T) {
	t.Parallel()
	env := newLeaveTestEnv(t)

	created := env.createRequest(t, "2025-06-20", "2025-06-25")

	_, err := env.service.Approve(env.adminCtx(), created.ID)
	require.NoError(t, err)

	_, err = env.service.Approve(env.adminCtx(), created.ID)
	assert.ErrorIs(t, err, leave.ErrAlreadyProcessed)
}

func TestLeaveService_Reject_AfterApprove(t *testing.T) {
	t.Parallel()
	env := newLeaveTestEnv(t)

	created := env.createRequest(t, "2025-06-20", "2025-06-25")

	_, err := env.service.Approve(env.adminCtx(), created.ID)
	require.NoError(t, err)

	_, err = env.service.Reject(env.adminCtx(), leave.RejectLeaveRequestRequest{
		ID:     created.ID,
		Reason: "changed my mind",
	})
	assert.ErrorIs(t, err, leave.ErrAlreadyProcessed)
}

func TestLeaveService_Approve_RequiresAdmin(t *testing.T) {
	t.Parallel()
	env := newLeaveTestEnv(t)

	created := env.createRequest(t, "2025-06-20", "2025-06-25")

	_, err := env.service.Approve(env.employeeCtx(), created.ID)
	assert.ErrorIs(t, err, user.ErrAdminPrivilegeRequired)
}

func TestLeaveService_Reject_StoresReason(t *testing.T) {
	t.Parallel()
	env := newLeaveTestEnv(t)

	created := env.createRequest(t, "2025-06-20", "2025-06-25")

	resp, err := env.service.Reject(env.adminCtx(), leave.RejectLeaveRequestRequest{
		ID:     created.ID,
		Reason: "peak season",
	})

	require.NoError(t, err)
	assert.Equal(t, string(leave.StatusRejected), resp.Status)
	require.NotNil(t, resp.RejectionReason)
	assert.Equal(t, "peak season", *resp.RejectionReason)
}

func TestLeaveService_Cancel_PendingByOwner(t *testing.T) {
	t.Parallel()
	env := newLeaveTestEnv(t)

	created := env.createRequest(t, "2025-06-20", "2025-06-25")

	resp, err := env.service.Cancel(env.employeeCtx(), created.ID)

	require.NoError(t, err)
	assert.Equal(t, string(leave.StatusCancelled), resp.Status)
}

func TestLeaveService_Cancel_ApprovedByEmployee(t *testing.T) {
	t.Parallel()
	env := newLeaveTestEnv(t)

	created := env.createRequest(t, "2025-06-20", "2025-06-25")

	_, err := env.service.Approve(env.adminCtx(), created.ID)
	require.NoError(t, err)

	_, err = env.service.Cancel(env.employeeCtx(), created.ID)
	assert.ErrorIs(t, err, leave.ErrCancelNotAllowed)

	// Admins may cancel processed requests.
	resp, err := env.service.Cancel(env.adminCtx(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, string(leave.StatusCancelled), resp.Status)
}

func TestLeaveService_Update_OnlyPending(t *testing.T) {
	t.Parallel()
	env := newLeaveTestEnv(t)

	created := env.createRequest(t, "2025-06-20", "2025-06-25")

	newEnd := "2025-06-22"
	resp, err := env.service.Update(env.employeeCtx(), leave.UpdateLeaveRequestRequest{
		ID:      created.ID,
		EndDate: &newEnd,
	})
	require.NoError(t, err)
	assert.InDelta(t, 3.0, resp.TotalDays, 0.001)

	_, err = env.service.Approve(env.adminCtx(), created.ID)
	require.NoError(t, err)

	_, err = env.service.Update(env.employeeCtx(), leave.UpdateLeaveRequestRequest{
		ID:      created.ID,
		EndDate: &newEnd,
	})
	assert.ErrorIs(t, err, leave.ErrEditNotAllowed)
}

func TestLeaveService_Get_OwnershipEnforced(t *testing.T) {
	t.Parallel()
	env := newLeaveTestEnv(t)

	created := env.createRequest(t, "2025-06-20", "2025-06-25")

	otherCtx := auth.WithActor(context.Background(), auth.Actor{
		UserID:     "user-2",
		EmployeeID: "someone-else",
		Role:       user.RoleEmployee,
	})

	_, err := env.service.Get(otherCtx, created.ID)
	assert.ErrorIs(t, err, leave.ErrUnauthorized)

	got, err := env.service.Get(env.adminCtx(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)
}

func TestLeaveService_GetMyLeave_FiltersByStatus(t *testing.T) {
	t.Parallel()
	env := newLeaveTestEnv(t)

	first := env.createRequest(t, "2025-06-10", "2025-06-12")
	env.createRequest(t, "2025-07-01", "2025-07-03")

	_, err := env.service.Approve(env.adminCtx(), first.ID)
	require.NoError(t, err)

	list, err := env.service.GetMyLeave(env.employeeCtx(), leave.MyLeaveFilter{
		Status: string(leave.StatusPending),
	})

	require.NoError(t, err)
	assert.Equal(t, int64(1), list.TotalCount)
	require.Len(t, list.Requests, 1)
	assert.Equal(t, "2025-07-01", list.Requests[0].StartDate)
}
