package commands

import (
	"context"

	"quinta-booking/internal/domain/booking"
	"quinta-booking/internal/domain/pricing"
	"quinta-booking/internal/infra"
	"quinta-booking/internal/infra/db"
	"quinta-booking/internal/pkg/clock"
	"quinta-booking/internal/pkg/errs"
	"quinta-booking/internal/usecase/queries"
	"quinta-booking/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

var (
	ErrInvalidRange      = errs.New("invalid date range")
	ErrInvalidGuestCount = errs.New("invalid guest count")
	ErrDateUnavailable   = errs.New("requested dates are unavailable")
	ErrStaleTransition   = errs.New("booking is not in the expected state")
	ErrBookingNotFound   = errs.New("booking not found")
	ErrValidationFailed  = errs.New("validation failed")
	ErrStoreFailure      = errs.New("store operation failed")
)

type SubmitBookingRequest struct {
	GuestName  string
	GuestEmail string
	GuestPhone string
	GuestCount int
	StartDate  string
	EndDate    string
	Message    string
}

type CreateManualBookingRequest struct {
	GuestName  string
	GuestEmail string
	GuestPhone string
	GuestCount int
	StartDate  string
	EndDate    string
	TotalPrice int64
	Message    string
}

type BookingCommands interface {
	Submit(ctx context.Context, req SubmitBookingRequest) (*queries.BookingView, error)
	Approve(ctx context.Context, id uuid.UUID) error
	Reject(ctx context.Context, id uuid.UUID) error
	Cancel(ctx context.Context, id uuid.UUID) error
	RecordPayment(ctx context.Context, id uuid.UUID, paymentStatus string) error
	RecordDeposit(ctx context.Context, id uuid.UUID, amount int64) error
	CreateManual(ctx context.Context, req CreateManualBookingRequest) (*queries.BookingView, error)
}

type bookingUseCaseImpl struct {
	bookingRepo    BookingRepository
	bookingReads   BookingCommandReads
	calendarReads  queries.CalendarViewRepo
	pricingReads   PricingCommandReads
	bookingQueries queries.BookingQueries
	holidays       pricing.HolidayCalendar
	db             *pgxpool.Pool
	clock          clock.Clock
}

func NewBookingUseCase(
	bookingRepo BookingRepository,
	bookingReads BookingCommandReads,
	calendarReads queries.CalendarViewRepo,
	pricingReads PricingCommandReads,
	bookingQueries queries.BookingQueries,
	pool *pgxpool.Pool,
	clk clock.Clock,
) BookingCommands {
	return &bookingUseCaseImpl{
		bookingRepo:    bookingRepo,
		bookingReads:   bookingReads,
		calendarReads:  calendarReads,
		pricingReads:   pricingReads,
		bookingQueries: bookingQueries,
		holidays:       pricing.ArgentinaHolidays(),
		db:             pool,
		clock:          clk,
	}
}

// Submit records a guest request in Pending state with the price frozen
// from the rules in effect right now. The availability check here is
// advisory only; competing Pending requests for the same range are all
// accepted and the approval gate decides the winner.
func (uc *bookingUseCaseImpl) Submit(ctx context.Context, req SubmitBookingRequest) (*queries.BookingView, error) {
	guest, r, err := uc.validateGuestAndRange(req.GuestName, req.GuestEmail, req.GuestPhone, req.GuestCount, req.StartDate, req.EndDate)
	if err != nil {
		return nil, err
	}

	index, err := queries.BuildIndex(ctx, uc.calendarReads)
	if err != nil {
		return nil, errs.Mark(err, ErrStoreFailure)
	}
	if index.HasBlockedBetween(r.Start(), r.End()) {
		return nil, ErrDateUnavailable
	}

	rules, err := uc.pricingReads.Rules(ctx)
	if err != nil {
		return nil, errs.Mark(err, ErrStoreFailure)
	}
	total, err := pricing.Quote(r, req.GuestCount, rules, uc.holidays)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidGuestCount)
	}

	entity, err := booking.NewBooking(guest, req.GuestCount, r, total, req.Message, uc.clock.Now())
	if err != nil {
		return nil, errs.Mark(err, ErrValidationFailed)
	}

	id, err := shared.RunInTx(ctx, uc.db, func(tx db.DBTX) (uuid.UUID, error) {
		return uc.bookingRepo.Create(ctx, tx, entity)
	})
	if err != nil {
		return nil, errs.Mark(err, ErrStoreFailure)
	}

	return uc.bookingQueries.GetByID(ctx, id)
}

// Approve is the sole arbiter of contested ranges. The conditional write
// checks for overlapping Approved bookings, and the exclusion constraint
// on the table settles concurrent approvals the statement snapshot could
// not see; the loser surfaces as a conflict, never as a double booking.
func (uc *bookingUseCaseImpl) Approve(ctx context.Context, id uuid.UUID) error {
	rows, err := shared.RunInTxWithRetry(ctx, uc.db, 1, func(tx db.DBTX) (int64, error) {
		return uc.bookingRepo.ApproveIfFree(ctx, tx, id)
	})
	if err != nil {
		if infra.IsKind(err, infra.KindConflict) {
			return ErrDateUnavailable
		}
		return errs.Mark(err, ErrStoreFailure)
	}
	if rows > 0 {
		return nil
	}

	// The conditional write matched nothing; read back to say why.
	snap, err := uc.bookingReads.SnapshotByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrBookingNotFound
		}
		return errs.Mark(err, ErrStoreFailure)
	}
	if snap.Status != booking.StatusPending.String() {
		return ErrStaleTransition
	}
	return ErrDateUnavailable
}

func (uc *bookingUseCaseImpl) Reject(ctx context.Context, id uuid.UUID) error {
	return uc.transition(ctx, id, booking.StatusPending, booking.StatusRejected)
}

func (uc *bookingUseCaseImpl) Cancel(ctx context.Context, id uuid.UUID) error {
	return uc.transition(ctx, id, booking.StatusApproved, booking.StatusCancelled)
}

func (uc *bookingUseCaseImpl) transition(ctx context.Context, id uuid.UUID, from, to booking.Status) error {
	rows, err := shared.RunInTx(ctx, uc.db, func(tx db.DBTX) (int64, error) {
		return uc.bookingRepo.Transition(ctx, tx, id, from, to)
	})
	if err != nil {
		return errs.Mark(err, ErrStoreFailure)
	}
	if rows > 0 {
		return nil
	}

	if _, err = uc.bookingReads.SnapshotByID(ctx, id); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrBookingNotFound
		}
		return errs.Mark(err, ErrStoreFailure)
	}
	return ErrStaleTransition
}

func (uc *bookingUseCaseImpl) RecordPayment(ctx context.Context, id uuid.UUID, paymentStatus string) error {
	status := booking.PaymentStatus(paymentStatus)
	if !status.IsValid() {
		return errs.Mark(booking.ErrInvalidPayment, ErrValidationFailed)
	}

	rows, err := shared.RunInTx(ctx, uc.db, func(tx db.DBTX) (int64, error) {
		return uc.bookingRepo.UpdatePayment(ctx, tx, id, status)
	})
	if err != nil {
		return errs.Mark(err, ErrStoreFailure)
	}
	if rows == 0 {
		return ErrBookingNotFound
	}
	return nil
}

// RecordDeposit stores an owner-entered amount as-is. It is not clamped
// to the booking total; partial and over-payments are both real cases.
func (uc *bookingUseCaseImpl) RecordDeposit(ctx context.Context, id uuid.UUID, amount int64) error {
	if amount < 0 {
		return errs.Mark(booking.ErrNegativeDeposit, ErrValidationFailed)
	}

	rows, err := shared.RunInTx(ctx, uc.db, func(tx db.DBTX) (int64, error) {
		return uc.bookingRepo.UpdateDeposit(ctx, tx, id, amount)
	})
	if err != nil {
		return errs.Mark(err, ErrStoreFailure)
	}
	if rows == 0 {
		return ErrBookingNotFound
	}
	return nil
}

// CreateManual records an owner-entered booking that starts Approved,
// with a price typed by the owner rather than quoted. It passes the same
// overlap gate as an approval.
func (uc *bookingUseCaseImpl) CreateManual(ctx context.Context, req CreateManualBookingRequest) (*queries.BookingView, error) {
	guest, r, err := uc.validateGuestAndRange(req.GuestName, req.GuestEmail, req.GuestPhone, req.GuestCount, req.StartDate, req.EndDate)
	if err != nil {
		return nil, err
	}

	total, err := booking.NewMoney(req.TotalPrice)
	if err != nil {
		return nil, errs.Mark(err, ErrValidationFailed)
	}

	index, err := queries.BuildIndex(ctx, uc.calendarReads)
	if err != nil {
		return nil, errs.Mark(err, ErrStoreFailure)
	}
	if index.HasBlockedBetween(r.Start(), r.End()) {
		return nil, ErrDateUnavailable
	}

	entity, err := booking.NewManualBooking(guest, req.GuestCount, r, total, req.Message, uc.clock.Now())
	if err != nil {
		return nil, errs.Mark(err, ErrValidationFailed)
	}

	id, err := shared.RunInTxWithRetry(ctx, uc.db, 1, func(tx db.DBTX) (uuid.UUID, error) {
		return uc.bookingRepo.CreateApproved(ctx, tx, entity)
	})
	if err != nil {
		if infra.IsKind(err, infra.KindConflict) {
			return nil, ErrDateUnavailable
		}
		return nil, errs.Mark(err, ErrStoreFailure)
	}
	if id == uuid.Nil {
		return nil, ErrDateUnavailable
	}

	return uc.bookingQueries.GetByID(ctx, id)
}

func (uc *bookingUseCaseImpl) validateGuestAndRange(name, email, phone string, guestCount int, startDate, endDate string) (booking.GuestInfo, booking.DateRange, error) {
	guest, err := booking.NewGuestInfo(name, email, phone)
	if err != nil {
		return booking.GuestInfo{}, booking.DateRange{}, errs.Mark(err, ErrValidationFailed)
	}
	if guestCount < 1 {
		return booking.GuestInfo{}, booking.DateRange{}, ErrInvalidGuestCount
	}

	start, err := booking.ParseDate(startDate)
	if err != nil {
		return booking.GuestInfo{}, booking.DateRange{}, ErrInvalidRange
	}
	end, err := booking.ParseDate(endDate)
	if err != nil {
		return booking.GuestInfo{}, booking.DateRange{}, ErrInvalidRange
	}
	r, err := booking.NewDateRange(start, end)
	if err != nil {
		return booking.GuestInfo{}, booking.DateRange{}, ErrInvalidRange
	}
	return guest, r, nil
}
