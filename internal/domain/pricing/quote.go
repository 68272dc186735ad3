package pricing

import (
	"math"

	"quinta-booking/internal/domain/booking"
)

// Quote prices an inclusive date range for a guest count. Pure function:
// safe to call speculatively while the user is still adjusting inputs.
//
// Each day costs the daily price, multiplied once by the weekend
// multiplier when the day is a Friday, Saturday or Sunday, a special
// priced date, or a holiday; a day matching more than one condition is
// still multiplied only once. Guests above the threshold add a per-guest,
// per-night surcharge over the whole stay. The sum is rounded to the
// nearest whole currency unit.
func Quote(r booking.DateRange, guestCount int, rules Rules, holidays HolidayCalendar) (booking.Money, error) {
	if guestCount < 1 {
		return booking.Money{}, booking.ErrInvalidGuestCount
	}

	var total float64
	r.Each(func(d booking.Date) {
		rate := float64(rules.DailyPrice())
		if d.IsWeekendRate() || rules.IsSpecial(d) || holidays.IsHoliday(d) {
			rate *= rules.WeekendMultiplier()
		}
		total += rate
	})

	if guestCount > rules.GuestThreshold() {
		extra := int64(guestCount-rules.GuestThreshold()) * rules.ExtraGuestPrice()
		total += float64(extra * int64(r.Days()))
	}

	return booking.NewMoney(int64(math.Round(total)))
}
