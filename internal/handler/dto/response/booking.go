package response

import (
	"log/slog"
	"time"

	"quinta-booking/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type BookingResponse struct {
	ID            uuid.UUID `json:"id"`
	GuestName     string    `json:"guestName"`
	GuestEmail    string    `json:"guestEmail"`
	GuestPhone    string    `json:"guestPhone"`
	GuestCount    int       `json:"guestCount"`
	StartDate     string    `json:"startDate"`
	EndDate       string    `json:"endDate"`
	TotalPrice    int64     `json:"totalPrice"`
	DepositAmount int64     `json:"depositAmount"`
	Status        string    `json:"status"`
	PaymentStatus string    `json:"paymentStatus"`
	Message       *string   `json:"message,omitempty"`
	IsManual      bool      `json:"isManual"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

type BookingListResponse struct {
	ID            uuid.UUID `json:"id"`
	GuestName     string    `json:"guestName"`
	GuestCount    int       `json:"guestCount"`
	StartDate     string    `json:"startDate"`
	EndDate       string    `json:"endDate"`
	TotalPrice    int64     `json:"totalPrice"`
	Status        string    `json:"status"`
	PaymentStatus string    `json:"paymentStatus"`
	CreatedAt     time.Time `json:"createdAt"`
}

func FromBookingView(view *queries.BookingView) *BookingResponse {
	var resp BookingResponse
	if err := copier.Copy(&resp, view); err != nil {
		slog.Error("failed to map booking view", "error", err)
	}
	return &resp
}

func FromBookingListItem(item *queries.BookingListItem) *BookingListResponse {
	var resp BookingListResponse
	if err := copier.Copy(&resp, item); err != nil {
		slog.Error("failed to map booking list item", "error", err)
	}
	return &resp
}
