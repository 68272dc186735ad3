package pricing

import (
	"errors"

	"quinta-booking/internal/domain/booking"
)

var (
	ErrInvalidDailyPrice = errors.New("daily price cannot be negative")
	ErrInvalidMultiplier = errors.New("weekend multiplier must be at least 1")
	ErrInvalidThreshold  = errors.New("guest threshold must be at least 1")
	ErrInvalidExtraPrice = errors.New("extra guest price cannot be negative")
)

// Rules is the owner-maintained pricing configuration. It is passed
// explicitly into Quote; changing it re-prices future quotes but never
// rewrites the frozen TotalPrice of existing bookings.
type Rules struct {
	dailyPrice        int64
	weekendMultiplier float64
	guestThreshold    int
	extraGuestPrice   int64
	specialDates      map[string]struct{}
}

func NewRules(dailyPrice int64, weekendMultiplier float64, guestThreshold int, extraGuestPrice int64, specialDates []booking.Date) (Rules, error) {
	if dailyPrice < 0 {
		return Rules{}, ErrInvalidDailyPrice
	}
	if weekendMultiplier < 1 {
		return Rules{}, ErrInvalidMultiplier
	}
	if guestThreshold < 1 {
		return Rules{}, ErrInvalidThreshold
	}
	if extraGuestPrice < 0 {
		return Rules{}, ErrInvalidExtraPrice
	}

	special := make(map[string]struct{}, len(specialDates))
	for _, d := range specialDates {
		special[d.Key()] = struct{}{}
	}

	return Rules{
		dailyPrice:        dailyPrice,
		weekendMultiplier: weekendMultiplier,
		guestThreshold:    guestThreshold,
		extraGuestPrice:   extraGuestPrice,
		specialDates:      special,
	}, nil
}

func (r Rules) DailyPrice() int64         { return r.dailyPrice }
func (r Rules) WeekendMultiplier() float64 { return r.weekendMultiplier }
func (r Rules) GuestThreshold() int       { return r.guestThreshold }
func (r Rules) ExtraGuestPrice() int64    { return r.extraGuestPrice }

// IsSpecial reports whether the day is explicitly priced at the weekend
// rate regardless of its weekday.
func (r Rules) IsSpecial(d booking.Date) bool {
	_, ok := r.specialDates[d.Key()]
	return ok
}

// SpecialDates returns the special-priced days in no particular order.
func (r Rules) SpecialDates() []booking.Date {
	out := make([]booking.Date, 0, len(r.specialDates))
	for key := range r.specialDates {
		d, err := booking.ParseDate(key)
		if err != nil {
			continue
		}
		out = append(out, d)
	}
	return out
}
