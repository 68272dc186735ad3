//go:build unit

package response_test

import (
	"testing"

	"quinta-booking/internal/handler/dto/response"
	"quinta-booking/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Guards against view and response structs drifting apart: the copier
// mapping is by field name, so a rename would silently zero the field.
func TestFromBookingView(t *testing.T) {
	view := builder.NewBookingBuilder().
		WithGuestName("Lucia Perez").
		WithDates("2026-03-06", "2026-03-08").
		WithTotalPrice(294000).
		WithDepositAmount(100000).
		WithMessage("Aniversario").
		BuildView()

	resp := response.FromBookingView(view)

	assert.Equal(t, view.ID, resp.ID)
	assert.Equal(t, "Lucia Perez", resp.GuestName)
	assert.Equal(t, view.GuestEmail, resp.GuestEmail)
	assert.Equal(t, view.GuestPhone, resp.GuestPhone)
	assert.Equal(t, view.GuestCount, resp.GuestCount)
	assert.Equal(t, "2026-03-06", resp.StartDate)
	assert.Equal(t, "2026-03-08", resp.EndDate)
	assert.Equal(t, int64(294000), resp.TotalPrice)
	assert.Equal(t, int64(100000), resp.DepositAmount)
	assert.Equal(t, view.Status, resp.Status)
	assert.Equal(t, view.PaymentStatus, resp.PaymentStatus)
	require.NotNil(t, resp.Message)
	assert.Equal(t, "Aniversario", *resp.Message)
	assert.Equal(t, view.CreatedAt, resp.CreatedAt)
	assert.Equal(t, view.UpdatedAt, resp.UpdatedAt)
}

func TestFromBookingListItem(t *testing.T) {
	item := builder.NewBookingBuilder().
		WithStatus("approved").
		BuildListItem()

	resp := response.FromBookingListItem(item)

	assert.Equal(t, item.ID, resp.ID)
	assert.Equal(t, item.GuestName, resp.GuestName)
	assert.Equal(t, item.StartDate, resp.StartDate)
	assert.Equal(t, item.EndDate, resp.EndDate)
	assert.Equal(t, item.TotalPrice, resp.TotalPrice)
	assert.Equal(t, "approved", resp.Status)
	assert.Equal(t, item.CreatedAt, resp.CreatedAt)
}
