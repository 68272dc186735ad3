package readstore

import (
	"context"

	"quinta-booking/internal/domain/booking"
	"quinta-booking/internal/infra"
	"quinta-booking/internal/infra/db"
	"quinta-booking/internal/pkg/pgconv"
	"quinta-booking/internal/usecase/commands"
	"quinta-booking/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type BookingReadStore struct {
	db db.DBTX
}

func NewBookingReadStore(pool db.DBTX) *BookingReadStore {
	return &BookingReadStore{db: pool}
}

const findBookingByIDSQL = `
SELECT id, guest_name, guest_email, guest_phone, guest_count,
	start_date, end_date, total_price, deposit_amount,
	status, payment_status, nullif(message, ''), is_manual, created_at, updated_at
FROM bookings
WHERE id = $1
`

func (r *BookingReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.BookingView, error) {
	var (
		view                 queries.BookingView
		startDate, endDate   pgtype.Date
		message              pgtype.Text
		createdAt, updatedAt pgtype.Timestamptz
	)
	err := r.db.QueryRow(ctx, findBookingByIDSQL, id).Scan(
		&view.ID,
		&view.GuestName,
		&view.GuestEmail,
		&view.GuestPhone,
		&view.GuestCount,
		&startDate,
		&endDate,
		&view.TotalPrice,
		&view.DepositAmount,
		&view.Status,
		&view.PaymentStatus,
		&message,
		&view.IsManual,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find booking by ID", err)
	}

	view.StartDate = booking.NewDate(pgconv.DateFromPgtype(startDate)).Key()
	view.EndDate = booking.NewDate(pgconv.DateFromPgtype(endDate)).Key()
	view.Message = pgconv.StringPtrFromPgtype(message)
	view.CreatedAt = pgconv.TimeFromPgtype(createdAt)
	view.UpdatedAt = pgconv.TimeFromPgtype(updatedAt)
	return &view, nil
}

const listBookingsSQL = `
SELECT id, guest_name, guest_count, start_date, end_date,
	total_price, status, payment_status, created_at
FROM bookings
WHERE ($1::text IS NULL OR status = $1)
ORDER BY created_at DESC, id DESC
`

func (r *BookingReadStore) List(ctx context.Context, statusFilter *string) ([]*queries.BookingListItem, error) {
	rows, err := r.db.Query(ctx, listBookingsSQL, statusFilter)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list bookings", err)
	}
	defer rows.Close()

	result := make([]*queries.BookingListItem, 0)
	for rows.Next() {
		var (
			item               queries.BookingListItem
			startDate, endDate pgtype.Date
		)
		if err := rows.Scan(
			&item.ID,
			&item.GuestName,
			&item.GuestCount,
			&startDate,
			&endDate,
			&item.TotalPrice,
			&item.Status,
			&item.PaymentStatus,
			&item.CreatedAt,
		); err != nil {
			return nil, infra.WrapRepoErr("failed to scan booking row", err)
		}
		item.StartDate = booking.NewDate(pgconv.DateFromPgtype(startDate)).Key()
		item.EndDate = booking.NewDate(pgconv.DateFromPgtype(endDate)).Key()
		result = append(result, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate booking rows", err)
	}
	return result, nil
}

const bookingSnapshotSQL = `
SELECT id, status, payment_status, start_date, end_date, total_price, deposit_amount
FROM bookings
WHERE id = $1
`

func (r *BookingReadStore) SnapshotByID(ctx context.Context, id uuid.UUID) (*commands.BookingSnapshot, error) {
	var (
		snap               commands.BookingSnapshot
		startDate, endDate pgtype.Date
	)
	err := r.db.QueryRow(ctx, bookingSnapshotSQL, id).Scan(
		&snap.ID,
		&snap.Status,
		&snap.PaymentStatus,
		&startDate,
		&endDate,
		&snap.TotalPrice,
		&snap.DepositAmount,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to read booking snapshot", err)
	}
	snap.StartDate = booking.NewDate(pgconv.DateFromPgtype(startDate))
	snap.EndDate = booking.NewDate(pgconv.DateFromPgtype(endDate))
	return &snap, nil
}
