//go:build unit

package availability_test

import (
	"testing"

	"quinta-booking/internal/domain/availability"
	"quinta-booking/internal/domain/booking"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(t *testing.T, s string) booking.Date {
	t.Helper()
	d, err := booking.ParseDate(s)
	require.NoError(t, err)
	return d
}

func dateRange(t *testing.T, start, end string) booking.DateRange {
	t.Helper()
	r, err := booking.NewDateRange(date(t, start), date(t, end))
	require.NoError(t, err)
	return r
}

func TestIndex(t *testing.T) {
	blocked := []booking.Date{date(t, "2026-03-10"), date(t, "2026-03-11")}
	spans := []availability.ApprovedSpan{
		{BookingID: "b-1", Range: dateRange(t, "2026-03-02", "2026-03-04")},
		{BookingID: "b-2", Range: dateRange(t, "2026-03-20", "2026-03-20")},
	}
	index := availability.NewIndex(blocked, spans)

	t.Run("blocked set days are blocked", func(t *testing.T) {
		assert.True(t, index.IsBlocked(date(t, "2026-03-10")))
		assert.True(t, index.IsBlocked(date(t, "2026-03-11")))
		assert.True(t, index.InBlockedSet(date(t, "2026-03-10")))
	})

	t.Run("approved span days are blocked but not in the blocked set", func(t *testing.T) {
		for _, s := range []string{"2026-03-02", "2026-03-03", "2026-03-04"} {
			assert.True(t, index.IsBlocked(date(t, s)), s)
			assert.False(t, index.InBlockedSet(date(t, s)), s)
		}
	})

	t.Run("free days are neither", func(t *testing.T) {
		assert.False(t, index.IsBlocked(date(t, "2026-03-05")))
		assert.False(t, index.IsBlocked(date(t, "2026-03-01")))
		assert.False(t, index.IsBlocked(date(t, "2026-03-19")))
	})

	t.Run("booking id lookup", func(t *testing.T) {
		id, ok := index.BookingIDFor(date(t, "2026-03-03"))
		require.True(t, ok)
		assert.Equal(t, "b-1", id)

		id, ok = index.BookingIDFor(date(t, "2026-03-20"))
		require.True(t, ok)
		assert.Equal(t, "b-2", id)

		_, ok = index.BookingIDFor(date(t, "2026-03-10"))
		assert.False(t, ok, "blocked set days carry no booking")

		_, ok = index.BookingIDFor(date(t, "2026-03-05"))
		assert.False(t, ok)
	})

	t.Run("has blocked between", func(t *testing.T) {
		cases := []struct {
			name       string
			start, end string
			want       bool
		}{
			{"clean range", "2026-03-05", "2026-03-09", false},
			{"contains a blocked day", "2026-03-09", "2026-03-12", true},
			{"starts on a blocked day", "2026-03-11", "2026-03-15", true},
			{"overlaps a span tail", "2026-03-04", "2026-03-06", true},
			{"overlaps a span head", "2026-03-01", "2026-03-02", true},
			{"single free day", "2026-03-15", "2026-03-15", false},
			{"single day span hit", "2026-03-20", "2026-03-20", true},
			{"ends just before the blocked set", "2026-03-05", "2026-03-09", false},
		}
		for _, c := range cases {
			t.Run(c.name, func(t *testing.T) {
				assert.Equal(t, c.want, index.HasBlockedBetween(date(t, c.start), date(t, c.end)))
			})
		}
	})

	t.Run("duplicate blocked days are collapsed", func(t *testing.T) {
		ix := availability.NewIndex([]booking.Date{
			date(t, "2026-03-10"),
			date(t, "2026-03-10"),
		}, nil)
		assert.True(t, ix.IsBlocked(date(t, "2026-03-10")))
		assert.False(t, ix.HasBlockedBetween(date(t, "2026-03-11"), date(t, "2026-03-12")))
	})

	t.Run("empty index blocks nothing", func(t *testing.T) {
		ix := availability.NewIndex(nil, nil)
		assert.False(t, ix.IsBlocked(date(t, "2026-03-10")))
		assert.False(t, ix.HasBlockedBetween(date(t, "2026-01-01"), date(t, "2026-12-31")))
	})
}
