package calldata

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stafflow/hr-backend-go/internal/domain/attendance"
	"github.com/stafflow/hr-backend-go/internal/domain/auth"
	"github.com/stafflow/hr-backend-go/internal/domain/calldata"
	"github.com/stafflow/hr-backend-go/internal/domain/employee"
	"github.com/stafflow/hr-backend-go/internal/domain/user"
	"github.com/stafflow/hr-backend-go/internal/pkg/clock"
	"github.com/stafflow/hr-backend-go/internal/repository/memory"
)

type callDataTestEnv struct {
	service        calldata.CallDataService
	attendanceRepo attendance.AttendanceRepository
	clk            *clock.Fixed
	emp            employee.Employee
}

func newCallDataTestEnv(t *testing.T) *callDataTestEnv {
	t.Helper()

	callDataRepo := memory.NewCallDataRepository()
	attendanceRepo := memory.NewAttendanceRepository()
	employeeRepo := memory.NewEmployeeRepository()

	emp, err := employeeRepo.Create(context.Background(), employee.Employee{
		FullName: "Citra Lestari",
		Email:    "citra@example.com",
		IsActive: true,
	})
	require.NoError(t, err)

	clk := clock.NewFixed(time.Date(2025, 4, 7, 15, 0, 0, 0, time.UTC))

	return &callDataTestEnv{
		service:        NewCallDataService(callDataRepo, attendanceRepo, employeeRepo, clk),
		attendanceRepo: attendanceRepo,
		clk:            clk,
		emp:            emp,
	}
}

func (e *callDataTestEnv) employeeCtx() context.Context {
	return auth.WithActor(context.Background(), auth.Actor{
		UserID:     "user-1",
		EmployeeID: e.emp.ID,
		Role:       user.RoleEmployee,
	})
}

func (e *callDataTestEnv) adminCtx() context.Context {
	return auth.WithActor(context.Background(), auth.Actor{
		UserID: "user-admin",
		Role:   user.RoleAdmin,
	})
}

// clockOutToday plants a completed attendance record for the fixture employee.
func (e *callDataTestEnv) clockOutToday(t *testing.T) {
	t.Helper()
	clockIn := e.clk.Today().Add(9 * time.Hour)
	clockOut := e.clk.Now()
	_, err := e.attendanceRepo.Create(context.Background(), attendance.Attendance{
		EmployeeID: e.emp.ID,
		Date:       e.clk.Today(),
		ClockIn:    &clockIn,
		ClockOut:   &clockOut,
		Status:     attendance.StatusPresent,
	})
	require.NoError(t, err)
}

func TestCallDataService_Submit_CreatesRecord(t *testing.T) {
	t.Parallel()
	env := newCallDataTestEnv(t)

	resp, err := env.service.Submit(env.employeeCtx(), calldata.SubmitCallDataRequest{
		TotalCalls:         50,
		TotalCallTime:      120,
		InterestedStudents: 3,
		VisitedToday:       2,
	})

	require.NoError(t, err)
	assert.NotEmpty(t, resp.ID)
	assert.Equal(t, env.emp.ID, resp.EmployeeID)
	assert.Equal(t, "2025-04-07", resp.Date)
	// 2*40 + 3*30 + 120*0.2 + 50*0.1
	assert.InDelta(t, 199.0, resp.PerformanceScore, 0.001)
}

func TestCallDataService_Submit_UpsertsAndRecomputesScore(t *testing.T) {
	t.Parallel()
	env := newCallDataTestEnv(t)
	ctx := env.employeeCtx()

	first, err := env.service.Submit(ctx, calldata.SubmitCallDataRequest{
		TotalCalls:         10,
		TotalCallTime:      30,
		InterestedStudents: 1,
	})
	require.NoError(t, err)

	second, err := env.service.Submit(ctx, calldata.SubmitCallDataRequest{
		TotalCalls:         60,
		TotalCallTime:      150,
		InterestedStudents: 4,
		VisitedToday:       1,
	})
	require.NoError(t, err)

	// Same daily record, updated counters, recomputed score.
	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, 60, second.TotalCalls)
	// 1*40 + 4*30 + 150*0.2 + 60*0.1
	assert.InDelta(t, 196.0, second.PerformanceScore, 0.001)

	list, err := env.service.GetMyCallData(ctx, calldata.MyCallDataFilter{})
	require.NoError(t, err)
	assert.Equal(t, int64(1), list.TotalCount)
}

func TestCallDataService_Submit_LockedAfterClockOut(t *testing.T) {
	t.Parallel()
	env := newCallDataTestEnv(t)
	ctx := env.employeeCtx()

	_, err := env.service.Submit(ctx, calldata.SubmitCallDataRequest{
		TotalCalls: 20,
	})
	require.NoError(t, err)

	env.clockOutToday(t)

	_, err = env.service.Submit(ctx, calldata.SubmitCallDataRequest{
		TotalCalls: 25,
	})
	assert.ErrorIs(t, err, calldata.ErrCheckedOut)
}

func TestCallDataService_Submit_AdminBypassesLock(t *testing.T) {
	t.Parallel()
	env := newCallDataTestEnv(t)

	created, err := env.service.Submit(env.employeeCtx(), calldata.SubmitCallDataRequest{
		TotalCalls: 20,
	})
	require.NoError(t, err)

	env.clockOutToday(t)

	resp, err := env.service.Submit(env.adminCtx(), calldata.SubmitCallDataRequest{
		EmployeeID: &env.emp.ID,
		TotalCalls: 35,
	})

	require.NoError(t, err)
	assert.Equal(t, created.ID, resp.ID)
	assert.Equal(t, 35, resp.TotalCalls)
}

func TestCallDataService_Submit_LockAppliesAcrossZones(t *testing.T) {
	t.Parallel()

	callDataRepo := memory.NewCallDataRepository()
	attendanceRepo := memory.NewAttendanceRepository()
	employeeRepo := memory.NewEmployeeRepository()

	emp, err := employeeRepo.Create(context.Background(), employee.Employee{
		FullName: "Rani Wulandari",
		Email:    "rani@example.com",
		IsActive: true,
	})
	require.NoError(t, err)

	loc := time.FixedZone("UTC+7", 7*60*60)
	clk := clock.NewFixed(time.Date(2025, 4, 7, 18, 0, 0, 0, loc))
	service := NewCallDataService(callDataRepo, attendanceRepo, employeeRepo, clk)

	// A date column round-trips as UTC midnight regardless of the app zone;
	// the lock must still recognize it as today's record.
	_, err = callDataRepo.Create(context.Background(), calldata.CallData{
		EmployeeID: emp.ID,
		Date:       time.Date(2025, 4, 7, 0, 0, 0, 0, time.UTC),
		TotalCalls: 20,
	})
	require.NoError(t, err)

	clockIn := clk.Today().Add(9 * time.Hour)
	clockOut := clk.Now()
	_, err = attendanceRepo.Create(context.Background(), attendance.Attendance{
		EmployeeID: emp.ID,
		Date:       clk.Today(),
		ClockIn:    &clockIn,
		ClockOut:   &clockOut,
		Status:     attendance.StatusPresent,
	})
	require.NoError(t, err)

	ctx := auth.WithActor(context.Background(), auth.Actor{
		UserID:     "user-1",
		EmployeeID: emp.ID,
		Role:       user.RoleEmployee,
	})

	_, err = service.Submit(ctx, calldata.SubmitCallDataRequest{TotalCalls: 25})
	assert.ErrorIs(t, err, calldata.ErrCheckedOut)
}

func TestCallDataService_Submit_ForAnotherEmployee(t *testing.T) {
	t.Parallel()
	env := newCallDataTestEnv(t)

	other := "someone-else"
	_, err := env.service.Submit(env.employeeCtx(), calldata.SubmitCallDataRequest{
		EmployeeID: &other,
		TotalCalls: 5,
	})

	assert.ErrorIs(t, err, calldata.ErrUnauthorized)
}

func TestCallDataService_Submit_BackdatedRecordNotLocked(t *testing.T) {
	t.Parallel()
	env := newCallDataTestEnv(t)
	ctx := env.employeeCtx()

	date := "2025-04-04"
	_, err := env.service.Submit(ctx, calldata.SubmitCallDataRequest{
		Date:       &date,
		TotalCalls: 10,
	})
	require.NoError(t, err)

	env.clockOutToday(t)

	// The checkout lock only guards today's record.
	resp, err := env.service.Submit(ctx, calldata.SubmitCallDataRequest{
		Date:       &date,
		TotalCalls: 15,
	})
	require.NoError(t, err)
	assert.Equal(t, 15, resp.TotalCalls)
}

func TestCallDataService_Get_OwnershipEnforced(t *testing.T) {
	t.Parallel()
	env := newCallDataTestEnv(t)

	created, err := env.service.Submit(env.employeeCtx(), calldata.SubmitCallDataRequest{
		TotalCalls: 12,
	})
	require.NoError(t, err)

	otherCtx := auth.WithActor(context.Background(), auth.Actor{
		UserID:     "user-2",
		EmployeeID: "someone-else",
		Role:       user.RoleEmployee,
	})

	_, err = env.service.Get(otherCtx, created.ID)
	assert.ErrorIs(t, err, calldata.ErrUnauthorized)

	got, err := env.service.Get(env.adminCtx(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)
}

func TestCallDataService_Delete_NotFound(t *testing.T) {
	t.Parallel()
	env := newCallDataTestEnv(t)

	err := env.service.Delete(env.adminCtx(), "missing")
	assert.ErrorIs(t, err, calldata.ErrCallDataNotFound)
}
