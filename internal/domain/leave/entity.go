package leave

import "time"

type LeaveType string

const (
	TypeAnnual    LeaveType = "annual"
	TypeSick      LeaveType = "sick"
	TypeCasual    LeaveType = "casual"
	TypeMaternity LeaveType = "maternity"
	TypeUnpaid    LeaveType = "unpaid"
)

func (t LeaveType) Valid() bool {
	switch t {
	case TypeAnnual, TypeSick, TypeCasual, TypeMaternity, TypeUnpaid:
		return true
	}
	return false
}

type LeaveStatus string

const (
	StatusPending   LeaveStatus = "pending"
	StatusApproved  LeaveStatus = "approved"
	StatusRejected  LeaveStatus = "rejected"
	StatusCancelled LeaveStatus = "cancelled"
)

// CanTransitionTo is the approve/reject transition table. Pending is the only
// state with outgoing transitions; each is irreversible.
func (s LeaveStatus) CanTransitionTo(next LeaveStatus) bool {
	if s != StatusPending {
		return false
	}
	return next == StatusApproved || next == StatusRejected
}

// Blocking reports whether a request in this status occupies its date range
// for overlap purposes.
func (s LeaveStatus) Blocking() bool {
	return s == StatusPending || s == StatusApproved
}

// LeaveRequest entity. StartDate and EndDate are calendar dates normalized to
// midnight; TotalDays is derived on every write.
type LeaveRequest struct {
	ID         string
	EmployeeID string
	Type       LeaveType

	StartDate time.Time
	EndDate   time.Time
	IsHalfDay bool
	TotalDays float64

	Reason string

	Status          LeaveStatus
	ApprovedBy      *string
	ApprovedAt      *time.Time
	RejectionReason *string

	CreatedAt time.Time
	UpdatedAt time.Time

	// Joined for responses
	EmployeeName *string
}
