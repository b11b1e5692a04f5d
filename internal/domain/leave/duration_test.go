package leave

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestComputeDuration_InclusiveDayCount(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name  string
		start time.Time
		end   time.Time
		want  float64
	}{
		{"six inclusive days", date(2024, 1, 20), date(2024, 1, 25), 6},
		{"single day", date(2024, 1, 20), date(2024, 1, 20), 1},
		{"across month boundary", date(2024, 1, 30), date(2024, 2, 2), 4},
		{"across leap day", date(2024, 2, 28), date(2024, 3, 1), 3},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, err := ComputeDuration(c.start, c.end, false)
			require.NoError(t, err)
			assert.Equal(t, c.want, got)
		})
	}
}

func TestComputeDuration_HalfDay(t *testing.T) {
	t.Parallel()

	got, err := ComputeDuration(date(2024, 1, 20), date(2024, 1, 20), true)
	require.NoError(t, err)
	assert.Equal(t, 0.5, got)

	// Half-day overrides the range
	got, err = ComputeDuration(date(2024, 1, 20), date(2024, 1, 25), true)
	require.NoError(t, err)
	assert.Equal(t, 0.5, got)
}

func TestComputeDuration_IgnoresTimeOfDay(t *testing.T) {
	t.Parallel()

	// 23:30 on the 20th to 00:15 on the 22nd is still three calendar days
	start := time.Date(2024, 1, 20, 23, 30, 0, 0, time.UTC)
	end := time.Date(2024, 1, 22, 0, 15, 0, 0, time.UTC)

	got, err := ComputeDuration(start, end, false)
	require.NoError(t, err)
	assert.Equal(t, 3.0, got)
}

func TestComputeDuration_InvalidRange(t *testing.T) {
	t.Parallel()

	_, err := ComputeDuration(date(2024, 1, 25), date(2024, 1, 20), false)
	assert.ErrorIs(t, err, ErrInvalidDateRange)

	// Same calendar day with end time-of-day earlier than start is valid
	start := time.Date(2024, 1, 20, 18, 0, 0, 0, time.UTC)
	end := time.Date(2024, 1, 20, 9, 0, 0, 0, time.UTC)
	got, err := ComputeDuration(start, end, false)
	require.NoError(t, err)
	assert.Equal(t, 1.0, got)
}

func TestHasOverlap(t *testing.T) {
	t.Parallel()

	existing := []LeaveRequest{
		{
			ID:        "req-1",
			StartDate: date(2024, 1, 20),
			EndDate:   date(2024, 1, 25),
			Status:    StatusApproved,
		},
	}

	cases := []struct {
		name  string
		start time.Time
		end   time.Time
		want  bool
	}{
		{"contained range", date(2024, 1, 22), date(2024, 1, 23), true},
		{"adjacent after", date(2024, 1, 26), date(2024, 1, 27), false},
		{"shared boundary day", date(2024, 1, 25), date(2024, 1, 26), true},
		{"shared boundary at start", date(2024, 1, 18), date(2024, 1, 20), true},
		{"fully before", date(2024, 1, 10), date(2024, 1, 19), false},
		{"surrounding range", date(2024, 1, 15), date(2024, 1, 30), true},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, HasOverlap(existing, c.start, c.end, ""))
		})
	}
}

func TestHasOverlap_IgnoresNonBlockingStatuses(t *testing.T) {
	t.Parallel()

	existing := []LeaveRequest{
		{ID: "r1", StartDate: date(2024, 1, 20), EndDate: date(2024, 1, 25), Status: StatusRejected},
		{ID: "r2", StartDate: date(2024, 1, 20), EndDate: date(2024, 1, 25), Status: StatusCancelled},
	}
	assert.False(t, HasOverlap(existing, date(2024, 1, 22), date(2024, 1, 23), ""))

	existing[0].Status = StatusPending
	assert.True(t, HasOverlap(existing, date(2024, 1, 22), date(2024, 1, 23), ""))
}

func TestHasOverlap_SelfExclusion(t *testing.T) {
	t.Parallel()

	existing := []LeaveRequest{
		{ID: "req-1", StartDate: date(2024, 1, 20), EndDate: date(2024, 1, 25), Status: StatusPending},
	}

	// Updating req-1 over its own range is not an overlap
	assert.False(t, HasOverlap(existing, date(2024, 1, 21), date(2024, 1, 24), "req-1"))
	assert.True(t, HasOverlap(existing, date(2024, 1, 21), date(2024, 1, 24), "req-2"))
}

func TestLeaveStatus_CanTransitionTo(t *testing.T) {
	t.Parallel()

	assert.True(t, StatusPending.CanTransitionTo(StatusApproved))
	assert.True(t, StatusPending.CanTransitionTo(StatusRejected))
	assert.False(t, StatusPending.CanTransitionTo(StatusCancelled))

	for _, from := range []LeaveStatus{StatusApproved, StatusRejected, StatusCancelled} {
		for _, to := range []LeaveStatus{StatusPending, StatusApproved, StatusRejected, StatusCancelled} {
			assert.False(t, from.CanTransitionTo(to), "%s -> %s must be illegal", from, to)
		}
	}
}
