package booking

import (
	"errors"
	"strings"
	"time"
)

const dateLayout = "2006-01-02"

// Date is a calendar day with no time-of-day component. The zero value is
// not a valid date; construct through NewDate or ParseDate.
type Date struct {
	t time.Time
}

func NewDate(t time.Time) Date {
	y, m, d := t.Date()
	return Date{t: time.Date(y, m, d, 0, 0, 0, 0, time.UTC)}
}

func NewDateYMD(year int, month time.Month, day int) Date {
	return Date{t: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

func ParseDate(s string) (Date, error) {
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return Date{}, errors.New("invalid date format, want YYYY-MM-DD")
	}
	return NewDate(t), nil
}

// Key is the canonical ISO form used for storage and set membership.
func (d Date) Key() string {
	return d.t.Format(dateLayout)
}

func (d Date) String() string {
	return d.Key()
}

func (d Date) Time() time.Time {
	return d.t
}

func (d Date) Weekday() time.Weekday {
	return d.t.Weekday()
}

// IsWeekendRate reports whether the day carries the weekend rate:
// Friday, Saturday or Sunday.
func (d Date) IsWeekendRate() bool {
	switch d.t.Weekday() {
	case time.Friday, time.Saturday, time.Sunday:
		return true
	default:
		return false
	}
}

func (d Date) AddDays(n int) Date {
	return Date{t: d.t.AddDate(0, 0, n)}
}

func (d Date) Before(other Date) bool {
	return d.t.Before(other.t)
}

func (d Date) After(other Date) bool {
	return d.t.After(other.t)
}

func (d Date) Equal(other Date) bool {
	return d.t.Equal(other.t)
}

func (d Date) IsZero() bool {
	return d.t.IsZero()
}

// DateRange is an inclusive span of days. A single-day stay has
// Start == End.
type DateRange struct {
	start Date
	end   Date
}

func NewDateRange(start, end Date) (DateRange, error) {
	if start.IsZero() || end.IsZero() {
		return DateRange{}, ErrInvalidRange
	}
	if start.After(end) {
		return DateRange{}, ErrInvalidRange
	}
	return DateRange{start: start, end: end}, nil
}

func (r DateRange) Start() Date {
	return r.start
}

func (r DateRange) End() Date {
	return r.end
}

// Days is the inclusive day count; the minimum is 1.
func (r DateRange) Days() int {
	return int(r.end.t.Sub(r.start.t).Hours()/24) + 1
}

func (r DateRange) Contains(d Date) bool {
	return !d.Before(r.start) && !d.After(r.end)
}

func (r DateRange) Overlaps(other DateRange) bool {
	return !r.start.After(other.end) && !other.start.After(r.end)
}

// Each calls fn for every day in the range, in order.
func (r DateRange) Each(fn func(Date)) {
	for d := r.start; !d.After(r.end); d = d.AddDays(1) {
		fn(d)
	}
}

// Money is an amount in whole currency units. The calendar never deals
// in fractions; quotes are rounded before they become Money.
type Money struct {
	amount int64
}

func NewMoney(amount int64) (Money, error) {
	if amount < 0 {
		return Money{}, ErrNegativePrice
	}
	return Money{amount: amount}, nil
}

func (m Money) Amount() int64 {
	return m.amount
}

func (m Money) Add(other Money) Money {
	return Money{amount: m.amount + other.amount}
}

// GuestInfo holds the contact fields of the requester. Deeper field
// validation (email shape etc.) belongs to the form layer.
type GuestInfo struct {
	Name  string
	Email string
	Phone string
}

func NewGuestInfo(name, email, phone string) (GuestInfo, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return GuestInfo{}, ErrValidationFailed
	}
	return GuestInfo{
		Name:  name,
		Email: strings.TrimSpace(email),
		Phone: strings.TrimSpace(phone),
	}, nil
}
