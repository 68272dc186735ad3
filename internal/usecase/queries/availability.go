package queries

import (
	"context"

	"quinta-booking/internal/domain/availability"
	"quinta-booking/internal/domain/booking"
	"quinta-booking/internal/domain/pricing"
	"quinta-booking/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrInvalidPeriod = errs.New("invalid calendar period")
	ErrPeriodTooLong = errs.New("calendar period too long")
)

// One calendar request never spans more than about two years.
const maxCalendarDays = 740

type AvailabilityQueries interface {
	Calendar(ctx context.Context, from, to booking.Date) ([]DayStatusView, error)
}

// CalendarViewRepo supplies the raw state the availability index is
// derived from.
type CalendarViewRepo interface {
	BlockedDates(ctx context.Context) ([]booking.Date, error)
	ApprovedSpans(ctx context.Context) ([]availability.ApprovedSpan, error)
}

type availabilityQueriesImpl struct {
	repo     CalendarViewRepo
	holidays pricing.HolidayCalendar
}

func NewAvailabilityQueries(repo CalendarViewRepo) AvailabilityQueries {
	return &availabilityQueriesImpl{
		repo:     repo,
		holidays: pricing.ArgentinaHolidays(),
	}
}

func (q *availabilityQueriesImpl) Calendar(ctx context.Context, from, to booking.Date) ([]DayStatusView, error) {
	r, err := booking.NewDateRange(from, to)
	if err != nil {
		return nil, ErrInvalidPeriod
	}
	if r.Days() > maxCalendarDays {
		return nil, ErrPeriodTooLong
	}

	index, err := BuildIndex(ctx, q.repo)
	if err != nil {
		return nil, errs.Mark(err, ErrQueryFailed)
	}

	out := make([]DayStatusView, 0, r.Days())
	r.Each(func(d booking.Date) {
		view := DayStatusView{Date: d.Key(), Blocked: index.InBlockedSet(d)}
		if idStr, ok := index.BookingIDFor(d); ok {
			if id, perr := uuid.Parse(idStr); perr == nil {
				view.BookingID = &id
			}
		}
		view.Available = !view.Blocked && view.BookingID == nil
		if name, ok := q.holidays.NameOf(d); ok {
			view.Holiday = &name
		}
		out = append(out, view)
	})
	return out, nil
}

// BuildIndex assembles a fresh availability snapshot from store state.
// Shared by the read side and the advisory checks on the write side.
func BuildIndex(ctx context.Context, repo CalendarViewRepo) (availability.Index, error) {
	blocked, err := repo.BlockedDates(ctx)
	if err != nil {
		return availability.Index{}, err
	}
	spans, err := repo.ApprovedSpans(ctx)
	if err != nil {
		return availability.Index{}, err
	}
	return availability.NewIndex(blocked, spans), nil
}
