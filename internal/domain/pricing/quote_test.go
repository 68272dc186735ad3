//go:build unit

package pricing_test

import (
	"testing"

	"quinta-booking/internal/domain/booking"
	"quinta-booking/internal/domain/pricing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustRange(t *testing.T, start, end string) booking.DateRange {
	t.Helper()
	s, err := booking.ParseDate(start)
	require.NoError(t, err)
	e, err := booking.ParseDate(end)
	require.NoError(t, err)
	r, err := booking.NewDateRange(s, e)
	require.NoError(t, err)
	return r
}

func defaultRules(t *testing.T, specialDates ...string) pricing.Rules {
	t.Helper()
	special := make([]booking.Date, 0, len(specialDates))
	for _, s := range specialDates {
		d, err := booking.ParseDate(s)
		require.NoError(t, err)
		special = append(special, d)
	}
	rules, err := pricing.NewRules(60000, 1.3, 10, 5000, special)
	require.NoError(t, err)
	return rules
}

func TestQuote(t *testing.T) {
	holidays := pricing.ArgentinaHolidays()

	t.Run("single Saturday at the weekend rate", func(t *testing.T) {
		// 60000 * 1.3 = 78000, no surcharge at exactly the threshold
		total, err := pricing.Quote(mustRange(t, "2026-03-07", "2026-03-07"), 10, defaultRules(t), holidays)
		require.NoError(t, err)
		assert.Equal(t, int64(78000), total.Amount())
	})

	t.Run("three weekdays with extra guests", func(t *testing.T) {
		// 3 * 60000 + (12-10) * 5000 * 3 = 210000
		total, err := pricing.Quote(mustRange(t, "2026-03-02", "2026-03-04"), 12, defaultRules(t), holidays)
		require.NoError(t, err)
		assert.Equal(t, int64(210000), total.Amount())
	})

	t.Run("weekday holiday takes the weekend rate", func(t *testing.T) {
		// 2026-03-24 is a Tuesday
		total, err := pricing.Quote(mustRange(t, "2026-03-24", "2026-03-24"), 1, defaultRules(t), holidays)
		require.NoError(t, err)
		assert.Equal(t, int64(78000), total.Amount())
	})

	t.Run("weekday special date takes the weekend rate", func(t *testing.T) {
		total, err := pricing.Quote(mustRange(t, "2026-03-03", "2026-03-03"), 1, defaultRules(t, "2026-03-03"), holidays)
		require.NoError(t, err)
		assert.Equal(t, int64(78000), total.Amount())
	})

	t.Run("multiplier applies once per day", func(t *testing.T) {
		// A Saturday that is also a special date must not be multiplied twice.
		total, err := pricing.Quote(mustRange(t, "2026-03-07", "2026-03-07"), 1, defaultRules(t, "2026-03-07"), holidays)
		require.NoError(t, err)
		assert.Equal(t, int64(78000), total.Amount())

		// Same for a holiday that is also a special date.
		total, err = pricing.Quote(mustRange(t, "2026-03-24", "2026-03-24"), 1, defaultRules(t, "2026-03-24"), holidays)
		require.NoError(t, err)
		assert.Equal(t, int64(78000), total.Amount())
	})

	t.Run("surcharge starts above the threshold", func(t *testing.T) {
		r := mustRange(t, "2026-03-02", "2026-03-04")
		rules := defaultRules(t)

		atThreshold, err := pricing.Quote(r, 10, rules, holidays)
		require.NoError(t, err)
		assert.Equal(t, int64(180000), atThreshold.Amount())

		oneOver, err := pricing.Quote(r, 11, rules, holidays)
		require.NoError(t, err)
		assert.Equal(t, int64(180000+5000*3), oneOver.Amount())
	})

	t.Run("monotone in guest count", func(t *testing.T) {
		r := mustRange(t, "2026-03-05", "2026-03-09")
		rules := defaultRules(t)

		prev := int64(0)
		for guests := 1; guests <= 20; guests++ {
			total, err := pricing.Quote(r, guests, rules, holidays)
			require.NoError(t, err)
			assert.GreaterOrEqual(t, total.Amount(), prev, "guests=%d", guests)
			prev = total.Amount()
		}
	})

	t.Run("monotone in stay length", func(t *testing.T) {
		rules := defaultRules(t)
		start, err := booking.ParseDate("2026-03-02")
		require.NoError(t, err)

		prev := int64(0)
		for days := 1; days <= 14; days++ {
			end := booking.NewDate(start.Time().AddDate(0, 0, days-1))
			r, err := booking.NewDateRange(start, end)
			require.NoError(t, err)

			total, err := pricing.Quote(r, 12, rules, holidays)
			require.NoError(t, err)
			assert.Greater(t, total.Amount(), prev, "days=%d", days)
			prev = total.Amount()
		}
	})

	t.Run("deterministic", func(t *testing.T) {
		r := mustRange(t, "2026-02-14", "2026-02-20")
		rules := defaultRules(t, "2026-02-18")

		first, err := pricing.Quote(r, 14, rules, holidays)
		require.NoError(t, err)
		for i := 0; i < 5; i++ {
			again, err := pricing.Quote(r, 14, rules, holidays)
			require.NoError(t, err)
			if diff := cmp.Diff(first.Amount(), again.Amount()); diff != "" {
				t.Fatalf("quote changed between calls (-first +again):\n%s", diff)
			}
		}
	})

	t.Run("rejects guest count below one", func(t *testing.T) {
		_, err := pricing.Quote(mustRange(t, "2026-03-07", "2026-03-07"), 0, defaultRules(t), holidays)
		require.ErrorIs(t, err, booking.ErrInvalidGuestCount)
	})
}

func TestNewRules(t *testing.T) {
	cases := []struct {
		name       string
		dailyPrice int64
		multiplier float64
		threshold  int
		extraPrice int64
		errIs      error
	}{
		{"valid", 60000, 1.3, 10, 5000, nil},
		{"multiplier of one is valid", 60000, 1.0, 10, 5000, nil},
		{"negative daily price", -1, 1.3, 10, 5000, pricing.ErrInvalidDailyPrice},
		{"multiplier below one", 60000, 0.9, 10, 5000, pricing.ErrInvalidMultiplier},
		{"zero threshold", 60000, 1.3, 0, 5000, pricing.ErrInvalidThreshold},
		{"negative extra guest price", 60000, 1.3, 10, -1, pricing.ErrInvalidExtraPrice},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := pricing.NewRules(c.dailyPrice, c.multiplier, c.threshold, c.extraPrice, nil)
			if c.errIs == nil {
				require.NoError(t, err)
			} else {
				require.ErrorIs(t, err, c.errIs)
			}
		})
	}
}

func TestArgentinaHolidays(t *testing.T) {
	holidays := pricing.ArgentinaHolidays()

	d, err := booking.ParseDate("2026-07-09")
	require.NoError(t, err)
	name, ok := holidays.NameOf(d)
	require.True(t, ok)
	assert.Equal(t, "Día de la Independencia", name)

	plain, err := booking.ParseDate("2026-03-03")
	require.NoError(t, err)
	assert.False(t, holidays.IsHoliday(plain))
}
