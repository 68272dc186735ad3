package availability

import (
	"sort"

	"quinta-booking/internal/domain/booking"
)

// Index is the derived answer to "is day D takeable". A day is
// unavailable iff it is in the administrator's blocked set or covered by
// an Approved booking span. Pending requests never reserve the calendar;
// approval is the sole arbiter of contested ranges.
//
// The index is a snapshot: it is rebuilt from store state on read and
// never mutated in place.
type Index struct {
	blocked     map[string]struct{}
	blockedDays []booking.Date // sorted, for range scans
	spans       []span
}

type span struct {
	r         booking.DateRange
	bookingID string
}

func NewIndex(blockedDates []booking.Date, approved []ApprovedSpan) Index {
	blocked := make(map[string]struct{}, len(blockedDates))
	days := make([]booking.Date, 0, len(blockedDates))
	for _, d := range blockedDates {
		if _, dup := blocked[d.Key()]; dup {
			continue
		}
		blocked[d.Key()] = struct{}{}
		days = append(days, d)
	}
	sort.Slice(days, func(i, j int) bool { return days[i].Before(days[j]) })

	spans := make([]span, len(approved))
	for i, a := range approved {
		spans[i] = span{r: a.Range, bookingID: a.BookingID}
	}
	sort.Slice(spans, func(i, j int) bool {
		return spans[i].r.Start().Before(spans[j].r.Start())
	})

	return Index{blocked: blocked, blockedDays: days, spans: spans}
}

// ApprovedSpan is the occupied range of one Approved booking.
type ApprovedSpan struct {
	BookingID string
	Range     booking.DateRange
}

// InBlockedSet reports membership in the administrator's blocked set
// only, ignoring booking coverage.
func (ix Index) InBlockedSet(d booking.Date) bool {
	_, ok := ix.blocked[d.Key()]
	return ok
}

func (ix Index) IsBlocked(d booking.Date) bool {
	if _, ok := ix.blocked[d.Key()]; ok {
		return true
	}
	_, covered := ix.coveringSpan(d)
	return covered
}

// BookingIDFor returns the Approved booking occupying the day, if any.
func (ix Index) BookingIDFor(d booking.Date) (string, bool) {
	return ix.coveringSpan(d)
}

// HasBlockedBetween reports whether any day in [start, end] inclusive is
// blocked. Used to validate a proposed range before it is quoted.
func (ix Index) HasBlockedBetween(start, end booking.Date) bool {
	// First blocked day at or after start.
	i := sort.Search(len(ix.blockedDays), func(i int) bool {
		return !ix.blockedDays[i].Before(start)
	})
	if i < len(ix.blockedDays) && !ix.blockedDays[i].After(end) {
		return true
	}

	r, err := booking.NewDateRange(start, end)
	if err != nil {
		return false
	}
	for _, s := range ix.spans {
		if s.r.Start().After(end) {
			break
		}
		if s.r.Overlaps(r) {
			return true
		}
	}
	return false
}

func (ix Index) coveringSpan(d booking.Date) (string, bool) {
	// Spans are sorted by start and never overlap each other, so the only
	// candidate is the last span starting at or before d.
	i := sort.Search(len(ix.spans), func(i int) bool {
		return ix.spans[i].r.Start().After(d)
	})
	if i == 0 {
		return "", false
	}
	s := ix.spans[i-1]
	if s.r.Contains(d) {
		return s.bookingID, true
	}
	return "", false
}
