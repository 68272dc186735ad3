package availability

import "quinta-booking/internal/domain/booking"

// Selector is the two-click range selection protocol over the calendar
// grid. It never yields a range that crosses a blocked day, but it does
// not re-validate against concurrent calendar changes: time passes
// between selection and submission, so submit re-checks independently.
type Selector struct {
	index Index
	today booking.Date
	start *booking.Date
	end   *booking.Date
}

func NewSelector(index Index, today booking.Date) *Selector {
	return &Selector{index: index, today: today}
}

// Click advances the selection with one day click:
//
//   - no start chosen: a non-blocked, non-past day becomes the start
//   - start chosen: a day before it replaces the start; a day at or after
//     it closes the range, unless a blocked day lies within
//     [start, clicked], in which case the clicked day becomes the new start
//   - range complete: the next click restarts with the clicked day
//
// Clicks on past or blocked days are ignored.
func (s *Selector) Click(d booking.Date) {
	if d.Before(s.today) || s.index.IsBlocked(d) {
		return
	}

	if s.start == nil || s.end != nil {
		s.start = &d
		s.end = nil
		return
	}

	if d.Before(*s.start) {
		s.start = &d
		return
	}

	if s.index.HasBlockedBetween(*s.start, d) {
		s.start = &d
		return
	}
	s.end = &d
}

// Reset clears the selection back to the initial state.
func (s *Selector) Reset() {
	s.start = nil
	s.end = nil
}

func (s *Selector) Start() (booking.Date, bool) {
	if s.start == nil {
		return booking.Date{}, false
	}
	return *s.start, true
}

// Range returns the completed selection, if both ends are set.
func (s *Selector) Range() (booking.DateRange, bool) {
	if s.start == nil || s.end == nil {
		return booking.DateRange{}, false
	}
	r, err := booking.NewDateRange(*s.start, *s.end)
	if err != nil {
		return booking.DateRange{}, false
	}
	return r, true
}
