package calldata

import "errors"

// Call data domain errors
var (
	ErrCallDataNotFound  = errors.New("call data record not found")
	ErrDuplicateCallData = errors.New("call data record already exists for this employee and date")
	ErrCheckedOut        = errors.New("call data can no longer be edited after clocking out")
	ErrUnauthorized      = errors.New("unauthorized to access this call data record")
)
