package leave

import (
	"math"
	"time"
)

// NormalizeDate truncates a timestamp to midnight in its own location, so
// day arithmetic is immune to time-of-day and DST skew.
func NormalizeDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// ComputeDuration derives the total leave days for a date range. Both
// boundary dates count, so start == end is one day. A half-day request is
// always 0.5 regardless of the range.
func ComputeDuration(startDate, endDate time.Time, isHalfDay bool) (float64, error) {
	start := NormalizeDate(startDate)
	end := NormalizeDate(endDate)

	if end.Before(start) {
		return 0, ErrInvalidDateRange
	}

	if isHalfDay {
		return 0.5, nil
	}

	return math.Ceil(end.Sub(start).Hours()/24) + 1, nil
}

// HasOverlap tests a candidate [startDate, endDate] range against an
// employee's existing requests. Only pending and approved requests block;
// intervals are closed, so a shared boundary day counts as overlap.
// excludeID skips the request being updated.
func HasOverlap(existing []LeaveRequest, startDate, endDate time.Time, excludeID string) bool {
	start := NormalizeDate(startDate)
	end := NormalizeDate(endDate)

	for _, req := range existing {
		if excludeID != "" && req.ID == excludeID {
			continue
		}
		if !req.Status.Blocking() {
			continue
		}
		if !NormalizeDate(req.StartDate).After(end) && !NormalizeDate(req.EndDate).Before(start) {
			return true
		}
	}

	return false
}
