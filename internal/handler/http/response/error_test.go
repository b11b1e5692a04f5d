package response

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stafflow/hr-backend-go/internal/domain/attendance"
	"github.com/stafflow/hr-backend-go/internal/domain/calldata"
	"github.com/stafflow/hr-backend-go/internal/domain/leave"
	"github.com/stafflow/hr-backend-go/internal/domain/user"
)

func TestHandleError_StatusMapping(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		err  error
		want int
	}{
		{"not found", attendance.ErrAttendanceNotFound, http.StatusNotFound},
		{"duplicate attendance", attendance.ErrDuplicateAttendance, http.StatusConflict},
		{"past date", leave.ErrPastDate, http.StatusBadRequest},
		{"invalid range", leave.ErrInvalidDateRange, http.StatusBadRequest},
		{"overlap", leave.ErrOverlappingLeave, http.StatusConflict},
		{"already processed", leave.ErrAlreadyProcessed, http.StatusConflict},
		{"admin required", user.ErrAdminPrivilegeRequired, http.StatusForbidden},
		{"duplicate call data", calldata.ErrDuplicateCallData, http.StatusConflict},
		// Editing after checkout is refused as an authorization failure.
		{"checked out", calldata.ErrCheckedOut, http.StatusForbidden},
		{"call data ownership", calldata.ErrUnauthorized, http.StatusForbidden},
	}

	for _, c := range cases {
		c := c
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()
			w := httptest.NewRecorder()
			HandleError(w, c.err)
			assert.Equal(t, c.want, w.Code)
		})
	}
}

func TestHandleError_ClockConflictDetails(t *testing.T) {
	t.Parallel()

	clockIn := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	w := httptest.NewRecorder()
	HandleError(w, &attendance.ClockConflictError{Existing: attendance.Attendance{
		Date:    time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC),
		ClockIn: &clockIn,
	}})

	assert.Equal(t, http.StatusConflict, w.Code)

	var resp Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotNil(t, resp.Error)
	assert.Equal(t, "2025-03-10", resp.Error.Details["date"])
	assert.Equal(t, "2025-03-10 09:00:00", resp.Error.Details["clock_in"])
	assert.NotContains(t, resp.Error.Details, "clock_out")
}
