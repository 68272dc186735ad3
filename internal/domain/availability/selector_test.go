//go:build unit

package availability_test

import (
	"testing"

	"quinta-booking/internal/domain/availability"
	"quinta-booking/internal/domain/booking"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSelector(t *testing.T, blocked ...string) *availability.Selector {
	t.Helper()
	days := make([]booking.Date, 0, len(blocked))
	for _, s := range blocked {
		days = append(days, date(t, s))
	}
	index := availability.NewIndex(days, nil)
	return availability.NewSelector(index, date(t, "2026-03-01"))
}

func TestSelector(t *testing.T) {
	t.Run("first click sets the start", func(t *testing.T) {
		sel := newSelector(t)
		sel.Click(date(t, "2026-03-05"))

		start, ok := sel.Start()
		require.True(t, ok)
		assert.Equal(t, "2026-03-05", start.Key())
		_, complete := sel.Range()
		assert.False(t, complete)
	})

	t.Run("second click at a later day closes the range", func(t *testing.T) {
		sel := newSelector(t)
		sel.Click(date(t, "2026-03-05"))
		sel.Click(date(t, "2026-03-08"))

		r, ok := sel.Range()
		require.True(t, ok)
		assert.Equal(t, "2026-03-05", r.Start().Key())
		assert.Equal(t, "2026-03-08", r.End().Key())
	})

	t.Run("clicking the start again makes a single day range", func(t *testing.T) {
		sel := newSelector(t)
		sel.Click(date(t, "2026-03-05"))
		sel.Click(date(t, "2026-03-05"))

		r, ok := sel.Range()
		require.True(t, ok)
		assert.Equal(t, 1, r.Days())
	})

	t.Run("click before the start replaces it", func(t *testing.T) {
		sel := newSelector(t)
		sel.Click(date(t, "2026-03-10"))
		sel.Click(date(t, "2026-03-05"))

		start, ok := sel.Start()
		require.True(t, ok)
		assert.Equal(t, "2026-03-05", start.Key())
		_, complete := sel.Range()
		assert.False(t, complete)
	})

	t.Run("blocked day between start and click resets the start", func(t *testing.T) {
		sel := newSelector(t, "2026-03-07")
		sel.Click(date(t, "2026-03-05"))
		sel.Click(date(t, "2026-03-10"))

		start, ok := sel.Start()
		require.True(t, ok)
		assert.Equal(t, "2026-03-10", start.Key())
		_, complete := sel.Range()
		assert.False(t, complete)
	})

	t.Run("clicks on blocked days are ignored", func(t *testing.T) {
		sel := newSelector(t, "2026-03-07")
		sel.Click(date(t, "2026-03-07"))

		_, ok := sel.Start()
		assert.False(t, ok)
	})

	t.Run("clicks on past days are ignored", func(t *testing.T) {
		sel := newSelector(t)
		sel.Click(date(t, "2026-02-27"))

		_, ok := sel.Start()
		assert.False(t, ok)

		// today itself is clickable
		sel.Click(date(t, "2026-03-01"))
		start, ok := sel.Start()
		require.True(t, ok)
		assert.Equal(t, "2026-03-01", start.Key())
	})

	t.Run("click after a completed range restarts", func(t *testing.T) {
		sel := newSelector(t)
		sel.Click(date(t, "2026-03-05"))
		sel.Click(date(t, "2026-03-08"))
		sel.Click(date(t, "2026-03-15"))

		start, ok := sel.Start()
		require.True(t, ok)
		assert.Equal(t, "2026-03-15", start.Key())
		_, complete := sel.Range()
		assert.False(t, complete)
	})

	t.Run("reset clears everything", func(t *testing.T) {
		sel := newSelector(t)
		sel.Click(date(t, "2026-03-05"))
		sel.Click(date(t, "2026-03-08"))
		sel.Reset()

		_, ok := sel.Start()
		assert.False(t, ok)
		_, complete := sel.Range()
		assert.False(t, complete)
	})
}
