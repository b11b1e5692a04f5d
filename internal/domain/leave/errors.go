package leave

import "errors"

// Leave domain errors
var (
	ErrLeaveNotFound    = errors.New("leave request not found")
	ErrInvalidDateRange = errors.New("end date must not be before start date")
	ErrPastDate         = errors.New("leave request must not start in the past")
	ErrOverlappingLeave = errors.New("leave request overlaps an existing pending or approved request")
	ErrAlreadyProcessed = errors.New("leave request has already been approved or rejected")
	ErrCancelNotAllowed = errors.New("only pending leave requests can be cancelled")
	ErrEditNotAllowed   = errors.New("only pending leave requests can be edited")
	ErrUnauthorized     = errors.New("unauthorized to access this leave request")
)
