package attendance

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stafflow/hr-backend-go/internal/domain/attendance"
	"github.com/stafflow/hr-backend-go/internal/domain/auth"
	"github.com/stafflow/hr-backend-go/internal/domain/employee"
	"github.com/stafflow/hr-backend-go/internal/domain/user"
	"github.com/stafflow/hr-backend-go/internal/pkg/clock"
	"github.com/stafflow/hr-backend-go/internal/repository/memory"
)

type attendanceTestEnv struct {
	service attendance.AttendanceService
	clk     *clock.Fixed
	emp     employee.Employee
}

func newAttendanceTestEnv(t *testing.T) *attendanceTestEnv {
	t.Helper()

	attendanceRepo := memory.NewAttendanceRepository()
	employeeRepo := memory.NewEmployeeRepository()

	emp, err := employeeRepo.Create(context.Background(), employee.Employee{
		FullName: "Dina Pratiwi",
		Email:    "dina@example.com",
		IsActive: true,
	})
	require.NoError(t, err)

	clk := clock.NewFixed(time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC))

	return &attendanceTestEnv{
		service: NewAttendanceService(attendanceRepo, employeeRepo, clk),
		clk:     clk,
		emp:     emp,
	}
}

func (e *attendanceTestEnv) employeeCtx() context.Context {
	return auth.WithActor(context.Background(), auth.Actor{
		UserID:     "user-1",
		EmployeeID: e.emp.ID,
		Role:       user.RoleEmployee,
	})
}

func (e *attendanceTestEnv) adminCtx() context.Context {
	return auth.WithActor(context.Background(), auth.Actor{
		UserID: "user-admin",
		Role:   user.RoleAdmin,
	})
}

// advance moves the fixed clock forward without crossing midnight.
func (e *attendanceTestEnv) advance(d time.Duration) {
	e.clk.Time = e.clk.Time.Add(d)
}

func TestAttendanceService_ClockIn_Success(t *testing.T) {
	t.Parallel()
	env := newAttendanceTestEnv(t)

	resp, err := env.service.ClockIn(env.employeeCtx(), attendance.ClockInRequest{})

	require.NoError(t, err)
	assert.NotEmpty(t, resp.ID)
	assert.Equal(t, env.emp.ID, resp.EmployeeID)
	assert.Equal(t, "2025-03-10", resp.Date)
	require.NotNil(t, resp.ClockIn)
	assert.Equal(t, "2025-03-10 09:00:00", *resp.ClockIn)
	assert.Nil(t, resp.ClockOut)
	assert.Equal(t, string(attendance.StatusPresent), resp.Status)
	assert.Zero(t, resp.TotalHours)
}

func TestAttendanceService_ClockIn_Twice(t *testing.T) {
	t.Parallel()
	env := newAttendanceTestEnv(t)
	ctx := env.employeeCtx()

	first, err := env.service.ClockIn(ctx, attendance.ClockInRequest{})
	require.NoError(t, err)

	env.advance(2 * time.Hour)
	_, err = env.service.ClockIn(ctx, attendance.ClockInRequest{})

	require.Error(t, err)
	assert.ErrorIs(t, err, attendance.ErrAlreadyClockedIn)

	var conflict *attendance.ClockConflictError
	require.ErrorAs(t, err, &conflict)
	assert.Equal(t, first.ID, conflict.Existing.ID)
	assert.Nil(t, conflict.Existing.ClockOut)

	// The original record must be untouched by the rejected attempt.
	got, err := env.service.Get(ctx, first.ID)
	require.NoError(t, err)
	assert.Equal(t, first.ClockIn, got.ClockIn)
}

func TestAttendanceService_ClockOut_DerivesHours(t *testing.T) {
	t.Parallel()
	env := newAttendanceTestEnv(t)
	ctx := env.employeeCtx()

	_, err := env.service.ClockIn(ctx, attendance.ClockInRequest{})
	require.NoError(t, err)

	env.advance(8*time.Hour + 30*time.Minute)
	resp, err := env.service.ClockOut(ctx)

	require.NoError(t, err)
	require.NotNil(t, resp.ClockOut)
	assert.Equal(t, "2025-03-10 17:30:00", *resp.ClockOut)
	assert.InDelta(t, 8.5, resp.TotalHours, 0.001)
	assert.InDelta(t, 0.5, resp.OvertimeHours, 0.001)
	assert.Equal(t, string(attendance.StatusPresent), resp.Status)
}

func TestAttendanceService_ClockOut_SubtractsBreak(t *testing.T) {
	t.Parallel()
	env := newAttendanceTestEnv(t)
	ctx := env.employeeCtx()

	_, err := env.service.ClockIn(ctx, attendance.ClockInRequest{})
	require.NoError(t, err)

	env.advance(3 * time.Hour) // 12:00
	_, err = env.service.StartBreak(ctx)
	require.NoError(t, err)

	env.advance(time.Hour) // 13:00
	_, err = env.service.EndBreak(ctx)
	require.NoError(t, err)

	env.advance(5 * time.Hour) // 18:00
	resp, err := env.service.ClockOut(ctx)

	require.NoError(t, err)
	assert.InDelta(t, 8.0, resp.TotalHours, 0.001)
	assert.Zero(t, resp.OvertimeHours)
	assert.Equal(t, string(attendance.StatusPresent), resp.Status)
}

func TestAttendanceService_ClockOut_ShortDayIsHalfDay(t *testing.T) {
	t.Parallel()
	env := newAttendanceTestEnv(t)
	ctx := env.employeeCtx()

	_, err := env.service.ClockIn(ctx, attendance.ClockInRequest{})
	require.NoError(t, err)

	env.advance(5 * time.Hour)
	resp, err := env.service.ClockOut(ctx)

	require.NoError(t, err)
	assert.InDelta(t, 5.0, resp.TotalHours, 0.001)
	assert.Equal(t, string(attendance.StatusHalfDay), resp.Status)
}

func TestAttendanceService_ClockOut_WithoutClockIn(t *testing.T) {
	t.Parallel()
	env := newAttendanceTestEnv(t)

	_, err := env.service.ClockOut(env.employeeCtx())

	assert.ErrorIs(t, err, attendance.ErrNotClockedIn)
}

func TestAttendanceService_ClockOut_Twice(t *testing.T) {
	t.Parallel()
	env := newAttendanceTestEnv(t)
	ctx := env.employeeCtx()

	_, err := env.service.ClockIn(ctx, attendance.ClockInRequest{})
	require.NoError(t, err)

	env.advance(8 * time.Hour)
	_, err = env.service.ClockOut(ctx)
	require.NoError(t, err)

	_, err = env.service.ClockOut(ctx)
	assert.ErrorIs(t, err, attendance.ErrAlreadyClockedOut)
}

func TestAttendanceService_Break_Sequencing(t *testing.T) {
	t.Parallel()
	env := newAttendanceTestEnv(t)
	ctx := env.employeeCtx()

	_, err := env.service.StartBreak(ctx)
	assert.ErrorIs(t, err, attendance.ErrNotClockedIn)

	_, err = env.service.ClockIn(ctx, attendance.ClockInRequest{})
	require.NoError(t, err)

	_, err = env.service.EndBreak(ctx)
	assert.ErrorIs(t, err, attendance.ErrBreakNotStarted)

	env.advance(3 * time.Hour)
	_, err = env.service.StartBreak(ctx)
	require.NoError(t, err)

	_, err = env.service.StartBreak(ctx)
	assert.ErrorIs(t, err, attendance.ErrBreakAlreadyStarted)

	env.advance(30 * time.Minute)
	_, err = env.service.EndBreak(ctx)
	require.NoError(t, err)

	_, err = env.service.EndBreak(ctx)
	assert.ErrorIs(t, err, attendance.ErrBreakAlreadyEnded)
}

func TestAttendanceService_Create_Duplicate(t *testing.T) {
	t.Parallel()
	env := newAttendanceTestEnv(t)
	ctx := env.adminCtx()

	clockIn := "2025-03-01T09:00:00Z"
	clockOut := "2025-03-01T17:00:00Z"
	req := attendance.CreateAttendanceRequest{
		EmployeeID: env.emp.ID,
		Date:       "2025-03-01",
		ClockIn:    &clockIn,
		ClockOut:   &clockOut,
	}

	resp, err := env.service.Create(ctx, req)
	require.NoError(t, err)
	assert.InDelta(t, 8.0, resp.TotalHours, 0.001)
	assert.Equal(t, string(attendance.StatusPresent), resp.Status)

	_, err = env.service.Create(ctx, req)
	assert.ErrorIs(t, err, attendance.ErrDuplicateAttendance)
}

func TestAttendanceService_Create_UnknownEmployee(t *testing.T) {
	t.Parallel()
	env := newAttendanceTestEnv(t)

	_, err := env.service.Create(env.adminCtx(), attendance.CreateAttendanceRequest{
		EmployeeID: "missing",
		Date:       "2025-03-01",
	})

	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}

func TestAttendanceService_Update_RecomputesDerivedFields(t *testing.T) {
	t.Parallel()
	env := newAttendanceTestEnv(t)
	ctx := env.employeeCtx()

	created, err := env.service.ClockIn(ctx, attendance.ClockInRequest{})
	require.NoError(t, err)

	clockOut := "2025-03-10T19:15:00Z"
	resp, err := env.service.Update(env.adminCtx(), attendance.UpdateAttendanceRequest{
		ID:       created.ID,
		ClockOut: &clockOut,
	})

	require.NoError(t, err)
	assert.InDelta(t, 10.25, resp.TotalHours, 0.001)
	assert.InDelta(t, 2.25, resp.OvertimeHours, 0.001)
	assert.Equal(t, string(attendance.StatusPresent), resp.Status)
}

func TestAttendanceService_Get_OwnershipEnforced(t *testing.T) {
	t.Parallel()
	env := newAttendanceTestEnv(t)

	created, err := env.service.ClockIn(env.employeeCtx(), attendance.ClockInRequest{})
	require.NoError(t, err)

	otherCtx := auth.WithActor(context.Background(), auth.Actor{
		UserID:     "user-2",
		EmployeeID: "someone-else",
		Role:       user.RoleEmployee,
	})

	_, err = env.service.Get(otherCtx, created.ID)
	assert.ErrorIs(t, err, attendance.ErrUnauthorized)

	// Admins can read any record.
	got, err := env.service.Get(env.adminCtx(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)
}

func TestAttendanceService_GetMyAttendance_ScopedToActor(t *testing.T) {
	t.Parallel()
	env := newAttendanceTestEnv(t)

	_, err := env.service.ClockIn(env.employeeCtx(), attendance.ClockInRequest{})
	require.NoError(t, err)

	clockIn := "2025-03-09T09:00:00Z"
	_, err = env.service.Create(env.adminCtx(), attendance.CreateAttendanceRequest{
		EmployeeID: env.emp.ID,
		Date:       "2025-03-09",
		ClockIn:    &clockIn,
	})
	require.NoError(t, err)

	list, err := env.service.GetMyAttendance(env.employeeCtx(), attendance.MyAttendanceFilter{})
	require.NoError(t, err)
	assert.Equal(t, int64(2), list.TotalCount)
	assert.Len(t, list.Attendances, 2)
	// Newest first.
	assert.Equal(t, "2025-03-10", list.Attendances[0].Date)

	filtered, err := env.service.GetMyAttendance(env.employeeCtx(), attendance.MyAttendanceFilter{
		StartDate: "2025-03-10",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), filtered.TotalCount)
}

func TestAttendanceService_NoActor(t *testing.T) {
	t.Parallel()
	env := newAttendanceTestEnv(t)

	_, err := env.service.ClockIn(context.Background(), attendance.ClockInRequest{})
	assert.ErrorIs(t, err, auth.ErrInvalidToken)
}
