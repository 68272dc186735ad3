package booking

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidRange      = errors.New("invalid date range")
	ErrInvalidGuestCount = errors.New("guest count must be at least 1")
	ErrNegativePrice     = errors.New("price cannot be negative")
	ErrNegativeDeposit   = errors.New("deposit cannot be negative")
	ErrInvalidStatus     = errors.New("invalid booking status")
	ErrInvalidPayment    = errors.New("invalid payment status")
	ErrStaleTransition   = errors.New("booking is not in the expected state")
	ErrValidationFailed  = errors.New("guest info validation failed")
)

// Booking is one reservation request from creation to terminal state.
// TotalPrice is frozen at creation and never recalculated, even when the
// pricing rules change afterwards.
type Booking struct {
	id            uuid.UUID
	guest         GuestInfo
	guestCount    int
	dateRange     DateRange
	totalPrice    Money
	depositAmount Money
	status        Status
	paymentStatus PaymentStatus
	message       string
	createdAt     time.Time
	isManual      bool
}

// NewBooking creates a guest-submitted request in Pending state.
func NewBooking(guest GuestInfo, guestCount int, r DateRange, totalPrice Money, message string, now time.Time) (*Booking, error) {
	if guestCount < 1 {
		return nil, ErrInvalidGuestCount
	}
	return &Booking{
		id:            uuid.New(),
		guest:         guest,
		guestCount:    guestCount,
		dateRange:     r,
		totalPrice:    totalPrice,
		depositAmount: Money{},
		status:        StatusPending,
		paymentStatus: PaymentPending,
		message:       message,
		createdAt:     now,
	}, nil
}

// NewManualBooking creates an administrator entry. It bypasses Pending and
// starts Approved with an owner-entered price, but still has to pass the
// same overlap gate as an approval when persisted.
func NewManualBooking(guest GuestInfo, guestCount int, r DateRange, totalPrice Money, message string, now time.Time) (*Booking, error) {
	b, err := NewBooking(guest, guestCount, r, totalPrice, message, now)
	if err != nil {
		return nil, err
	}
	b.status = StatusApproved
	b.isManual = true
	return b, nil
}

func ReconstructBooking(
	id uuid.UUID,
	guest GuestInfo,
	guestCount int,
	r DateRange,
	totalPrice, depositAmount Money,
	status Status,
	paymentStatus PaymentStatus,
	message string,
	createdAt time.Time,
	isManual bool,
) *Booking {
	return &Booking{
		id:            id,
		guest:         guest,
		guestCount:    guestCount,
		dateRange:     r,
		totalPrice:    totalPrice,
		depositAmount: depositAmount,
		status:        status,
		paymentStatus: paymentStatus,
		message:       message,
		createdAt:     createdAt,
		isManual:      isManual,
	}
}

func (b *Booking) Approve() error {
	if !b.status.CanTransitionTo(StatusApproved) {
		return ErrStaleTransition
	}
	b.status = StatusApproved
	return nil
}

func (b *Booking) Reject() error {
	if !b.status.CanTransitionTo(StatusRejected) {
		return ErrStaleTransition
	}
	b.status = StatusRejected
	return nil
}

func (b *Booking) Cancel() error {
	if !b.status.CanTransitionTo(StatusCancelled) {
		return ErrStaleTransition
	}
	b.status = StatusCancelled
	return nil
}

func (b *Booking) SetPaymentStatus(p PaymentStatus) error {
	if !p.IsValid() {
		return ErrInvalidPayment
	}
	b.paymentStatus = p
	return nil
}

// SetDeposit records a manually entered deposit. The amount is not clamped
// to TotalPrice; the two fields are deliberately independent.
func (b *Booking) SetDeposit(amount Money) {
	b.depositAmount = amount
}

// OccupiesCalendar reports whether the booking contributes to the
// availability index. Only Approved bookings do.
func (b *Booking) OccupiesCalendar() bool {
	return b.status == StatusApproved
}

func (b *Booking) ID() uuid.UUID                { return b.id }
func (b *Booking) Guest() GuestInfo             { return b.guest }
func (b *Booking) GuestCount() int              { return b.guestCount }
func (b *Booking) Range() DateRange             { return b.dateRange }
func (b *Booking) TotalPrice() Money            { return b.totalPrice }
func (b *Booking) DepositAmount() Money         { return b.depositAmount }
func (b *Booking) Status() Status               { return b.status }
func (b *Booking) PaymentStatus() PaymentStatus { return b.paymentStatus }
func (b *Booking) Message() string              { return b.message }
func (b *Booking) CreatedAt() time.Time         { return b.createdAt }
func (b *Booking) IsManual() bool               { return b.isManual }
