package repository

import (
	"context"

	"quinta-booking/internal/domain/booking"
	"quinta-booking/internal/infra"
	"quinta-booking/internal/infra/db"
	"quinta-booking/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type BookingRepository struct{}

func NewBookingRepository() *BookingRepository {
	return &BookingRepository{}
}

const createBookingSQL = `
INSERT INTO bookings (
	id, guest_name, guest_email, guest_phone, guest_count,
	start_date, end_date, total_price, deposit_amount,
	status, payment_status, message, is_manual, created_at, updated_at
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $14)
RETURNING id
`

func (r *BookingRepository) Create(ctx context.Context, tx db.DBTX, b *booking.Booking) (uuid.UUID, error) {
	var id uuid.UUID
	err := tx.QueryRow(ctx, createBookingSQL,
		b.ID(),
		b.Guest().Name,
		b.Guest().Email,
		b.Guest().Phone,
		b.GuestCount(),
		b.Range().Start().Time(),
		b.Range().End().Time(),
		b.TotalPrice().Amount(),
		b.DepositAmount().Amount(),
		b.Status().String(),
		b.PaymentStatus().String(),
		b.Message(),
		b.IsManual(),
		b.CreatedAt(),
	).Scan(&id)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create booking", err)
	}
	return id, nil
}

// The WHERE NOT EXISTS guard rejects ranges already covered by an
// Approved booking. Concurrent writers whose snapshots miss each other
// are caught by the bookings_approved_no_overlap exclusion constraint,
// which surfaces as a CONFLICT repository error.
const createApprovedBookingSQL = `
INSERT INTO bookings (
	id, guest_name, guest_email, guest_phone, guest_count,
	start_date, end_date, total_price, deposit_amount,
	status, payment_status, message, is_manual, created_at, updated_at
)
SELECT $1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $14
WHERE NOT EXISTS (
	SELECT 1 FROM bookings b
	WHERE b.status = 'approved'
	  AND b.start_date <= $7
	  AND b.end_date >= $6
)
RETURNING id
`

func (r *BookingRepository) CreateApproved(ctx context.Context, tx db.DBTX, b *booking.Booking) (uuid.UUID, error) {
	var id uuid.UUID
	err := tx.QueryRow(ctx, createApprovedBookingSQL,
		b.ID(),
		b.Guest().Name,
		b.Guest().Email,
		b.Guest().Phone,
		b.GuestCount(),
		b.Range().Start().Time(),
		b.Range().End().Time(),
		b.TotalPrice().Amount(),
		b.DepositAmount().Amount(),
		b.Status().String(),
		b.PaymentStatus().String(),
		b.Message(),
		b.IsManual(),
		b.CreatedAt(),
	).Scan(&id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			// Overlap gate rejected the insert
			return uuid.Nil, nil
		}
		return uuid.Nil, infra.WrapRepoErr("failed to create approved booking", err)
	}
	return id, nil
}

// Same two-layer guard as CreateApproved: the NOT EXISTS check handles
// the visible case, the exclusion constraint the concurrent one.
const approveIfFreeSQL = `
UPDATE bookings SET status = 'approved', updated_at = now()
WHERE id = $1
  AND status = 'pending'
  AND NOT EXISTS (
	SELECT 1 FROM bookings b
	WHERE b.id <> bookings.id
	  AND b.status = 'approved'
	  AND b.start_date <= bookings.end_date
	  AND b.end_date >= bookings.start_date
  )
`

func (r *BookingRepository) ApproveIfFree(ctx context.Context, tx db.DBTX, id uuid.UUID) (int64, error) {
	tag, err := tx.Exec(ctx, approveIfFreeSQL, id)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to approve booking", err)
	}
	return tag.RowsAffected(), nil
}

const transitionSQL = `
UPDATE bookings SET status = $3, updated_at = now()
WHERE id = $1 AND status = $2
`

func (r *BookingRepository) Transition(ctx context.Context, tx db.DBTX, id uuid.UUID, from, to booking.Status) (int64, error) {
	tag, err := tx.Exec(ctx, transitionSQL, id, from.String(), to.String())
	if err != nil {
		return 0, infra.WrapRepoErr("failed to transition booking", err)
	}
	return tag.RowsAffected(), nil
}

const updatePaymentSQL = `
UPDATE bookings SET payment_status = $2, updated_at = now()
WHERE id = $1
`

func (r *BookingRepository) UpdatePayment(ctx context.Context, tx db.DBTX, id uuid.UUID, status booking.PaymentStatus) (int64, error) {
	tag, err := tx.Exec(ctx, updatePaymentSQL, id, status.String())
	if err != nil {
		return 0, infra.WrapRepoErr("failed to update payment status", err)
	}
	return tag.RowsAffected(), nil
}

const updateDepositSQL = `
UPDATE bookings SET deposit_amount = $2, updated_at = now()
WHERE id = $1
`

func (r *BookingRepository) UpdateDeposit(ctx context.Context, tx db.DBTX, id uuid.UUID, amount int64) (int64, error) {
	tag, err := tx.Exec(ctx, updateDepositSQL, id, amount)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to update deposit", err)
	}
	return tag.RowsAffected(), nil
}
