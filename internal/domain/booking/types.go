package booking

type Status string

const (
	StatusPending   Status = "pending"
	StatusApproved  Status = "approved"
	StatusRejected  Status = "rejected"
	StatusCancelled Status = "cancelled"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusApproved, StatusRejected, StatusCancelled:
		return true
	default:
		return false
	}
}

// IsTerminal reports whether the status has no outgoing transition.
func (s Status) IsTerminal() bool {
	return s == StatusRejected || s == StatusCancelled
}

// CanTransitionTo encodes the lifecycle: Pending -> Approved|Rejected,
// Approved -> Cancelled. There is no Pending -> Cancelled edge; a request
// that never gets approved is rejected instead.
func (s Status) CanTransitionTo(next Status) bool {
	switch s {
	case StatusPending:
		return next == StatusApproved || next == StatusRejected
	case StatusApproved:
		return next == StatusCancelled
	default:
		return false
	}
}

// PaymentStatus is orthogonal to Status and never drives lifecycle
// transitions.
type PaymentStatus string

const (
	PaymentPending PaymentStatus = "pending"
	PaymentPartial PaymentStatus = "partial"
	PaymentFull    PaymentStatus = "full"
)

func (p PaymentStatus) String() string {
	return string(p)
}

func (p PaymentStatus) IsValid() bool {
	switch p {
	case PaymentPending, PaymentPartial, PaymentFull:
		return true
	default:
		return false
	}
}
