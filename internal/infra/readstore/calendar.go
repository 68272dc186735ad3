package readstore

import (
	"context"

	"quinta-booking/internal/domain/availability"
	"quinta-booking/internal/domain/booking"
	"quinta-booking/internal/infra"
	"quinta-booking/internal/infra/db"
	"quinta-booking/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

// CalendarReadStore supplies the raw inputs of the availability index:
// the blocked set and the spans of Approved bookings.
type CalendarReadStore struct {
	db db.DBTX
}

func NewCalendarReadStore(pool db.DBTX) *CalendarReadStore {
	return &CalendarReadStore{db: pool}
}

func (r *CalendarReadStore) BlockedDates(ctx context.Context) ([]booking.Date, error) {
	rows, err := r.db.Query(ctx, `SELECT day FROM blocked_dates ORDER BY day`)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to load blocked dates", err)
	}
	defer rows.Close()

	result := make([]booking.Date, 0)
	for rows.Next() {
		var day pgtype.Date
		if err := rows.Scan(&day); err != nil {
			return nil, infra.WrapRepoErr("failed to scan blocked date", err)
		}
		result = append(result, booking.NewDate(pgconv.DateFromPgtype(day)))
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate blocked dates", err)
	}
	return result, nil
}

const approvedSpansSQL = `
SELECT id, start_date, end_date
FROM bookings
WHERE status = 'approved'
ORDER BY start_date
`

func (r *CalendarReadStore) ApprovedSpans(ctx context.Context) ([]availability.ApprovedSpan, error) {
	rows, err := r.db.Query(ctx, approvedSpansSQL)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to load approved spans", err)
	}
	defer rows.Close()

	result := make([]availability.ApprovedSpan, 0)
	for rows.Next() {
		var (
			id                 uuid.UUID
			startDate, endDate pgtype.Date
		)
		if err := rows.Scan(&id, &startDate, &endDate); err != nil {
			return nil, infra.WrapRepoErr("failed to scan approved span", err)
		}
		span, err := booking.NewDateRange(booking.NewDate(pgconv.DateFromPgtype(startDate)), booking.NewDate(pgconv.DateFromPgtype(endDate)))
		if err != nil {
			return nil, infra.WrapRepoErr("invalid span in store", err)
		}
		result = append(result, availability.ApprovedSpan{BookingID: id.String(), Range: span})
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate approved spans", err)
	}
	return result, nil
}
