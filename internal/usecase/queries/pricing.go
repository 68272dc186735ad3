package queries

import (
	"context"
	"fmt"
	"sort"

	"quinta-booking/internal/domain/booking"
	"quinta-booking/internal/domain/pricing"
	"quinta-booking/internal/pkg/errs"
)

var (
	ErrInvalidQuoteRange = errs.New("invalid quote range")
	ErrInvalidGuestCount = errs.New("invalid guest count")
	ErrRangeUnavailable  = errs.New("range contains unavailable days")
)

type QuoteRequest struct {
	StartDate  string
	EndDate    string
	GuestCount int
}

type PricingQueries interface {
	Rules(ctx context.Context) (*RulesView, error)
	Quote(ctx context.Context, req QuoteRequest) (*QuoteView, error)
}

type PricingViewRepo interface {
	Rules(ctx context.Context) (pricing.Rules, error)
	RulesView(ctx context.Context) (*RulesView, error)
}

type pricingQueriesImpl struct {
	repo         PricingViewRepo
	calendarRepo CalendarViewRepo
	propertyRepo PropertyViewRepo
	holidays     pricing.HolidayCalendar
}

func NewPricingQueries(repo PricingViewRepo, calendarRepo CalendarViewRepo, propertyRepo PropertyViewRepo) PricingQueries {
	return &pricingQueriesImpl{
		repo:         repo,
		calendarRepo: calendarRepo,
		propertyRepo: propertyRepo,
		holidays:     pricing.ArgentinaHolidays(),
	}
}

func (q *pricingQueriesImpl) Rules(ctx context.Context) (*RulesView, error) {
	view, err := q.repo.RulesView(ctx)
	if err != nil {
		return nil, errs.Mark(err, ErrQueryFailed)
	}
	sort.Strings(view.SpecialDates)
	return view, nil
}

// Quote prices a candidate range without creating anything. Blocked or
// occupied days inside the range fail the quote; an over-capacity guest
// count only attaches a warning, the owner decides on approval.
func (q *pricingQueriesImpl) Quote(ctx context.Context, req QuoteRequest) (*QuoteView, error) {
	start, err := booking.ParseDate(req.StartDate)
	if err != nil {
		return nil, ErrInvalidQuoteRange
	}
	end, err := booking.ParseDate(req.EndDate)
	if err != nil {
		return nil, ErrInvalidQuoteRange
	}
	r, err := booking.NewDateRange(start, end)
	if err != nil {
		return nil, ErrInvalidQuoteRange
	}
	if req.GuestCount < 1 {
		return nil, ErrInvalidGuestCount
	}

	index, err := BuildIndex(ctx, q.calendarRepo)
	if err != nil {
		return nil, errs.Mark(err, ErrQueryFailed)
	}
	if index.HasBlockedBetween(start, end) {
		return nil, ErrRangeUnavailable
	}

	rules, err := q.repo.Rules(ctx)
	if err != nil {
		return nil, errs.Mark(err, ErrQueryFailed)
	}

	total, err := pricing.Quote(r, req.GuestCount, rules, q.holidays)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidGuestCount)
	}

	view := &QuoteView{TotalPrice: total.Amount(), Days: r.Days()}
	property, err := q.propertyRepo.Get(ctx)
	if err != nil {
		return nil, errs.Mark(err, ErrQueryFailed)
	}
	if req.GuestCount > property.MaxCapacity {
		warning := fmt.Sprintf("guest count %d exceeds the property capacity of %d", req.GuestCount, property.MaxCapacity)
		view.Warning = &warning
	}
	return view, nil
}
