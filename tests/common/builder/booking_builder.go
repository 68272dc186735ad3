//go:build unit || e2e

package builder

import (
	"time"

	dombooking "quinta-booking/internal/domain/booking"
	reqdto "quinta-booking/internal/handler/dto/request"
	"quinta-booking/internal/usecase/commands"
	"quinta-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

type BookingBuilder struct {
	GuestName     string
	GuestEmail    string
	GuestPhone    string
	GuestCount    int
	StartDate     string
	EndDate       string
	TotalPrice    int64
	DepositAmount int64
	Status        string
	PaymentStatus string
	Message       string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func NewBookingBuilder() *BookingBuilder {
	now := time.Now()
	return &BookingBuilder{
		GuestName:     "Maria Gonzalez",
		GuestEmail:    "maria@example.com",
		GuestPhone:    "+54 341 555 0101",
		GuestCount:    8,
		StartDate:     "2026-03-02",
		EndDate:       "2026-03-04",
		TotalPrice:    180000,
		DepositAmount: 0,
		Status:        "pending",
		PaymentStatus: "pending",
		Message:       "Cumple de 40",
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

func (b *BookingBuilder) With(mutate func(*BookingBuilder)) *BookingBuilder {
	mutate(b)
	return b
}

// Build methods
func (b *BookingBuilder) BuildDomain() (*dombooking.Booking, error) {
	guest, err := dombooking.NewGuestInfo(b.GuestName, b.GuestEmail, b.GuestPhone)
	if err != nil {
		return nil, err
	}
	r, err := b.buildRange()
	if err != nil {
		return nil, err
	}
	price, err := dombooking.NewMoney(b.TotalPrice)
	if err != nil {
		return nil, err
	}
	return dombooking.NewBooking(guest, b.GuestCount, r, price, b.Message, b.CreatedAt)
}

func (b *BookingBuilder) BuildManualDomain() (*dombooking.Booking, error) {
	guest, err := dombooking.NewGuestInfo(b.GuestName, b.GuestEmail, b.GuestPhone)
	if err != nil {
		return nil, err
	}
	r, err := b.buildRange()
	if err != nil {
		return nil, err
	}
	price, err := dombooking.NewMoney(b.TotalPrice)
	if err != nil {
		return nil, err
	}
	return dombooking.NewManualBooking(guest, b.GuestCount, r, price, b.Message, b.CreatedAt)
}

func (b *BookingBuilder) buildRange() (dombooking.DateRange, error) {
	start, err := dombooking.ParseDate(b.StartDate)
	if err != nil {
		return dombooking.DateRange{}, err
	}
	end, err := dombooking.ParseDate(b.EndDate)
	if err != nil {
		return dombooking.DateRange{}, err
	}
	return dombooking.NewDateRange(start, end)
}

func (b *BookingBuilder) BuildSubmitRequestDTO() reqdto.SubmitBookingRequest {
	return reqdto.SubmitBookingRequest{
		GuestName:  b.GuestName,
		GuestEmail: b.GuestEmail,
		GuestPhone: b.GuestPhone,
		GuestCount: b.GuestCount,
		StartDate:  b.StartDate,
		EndDate:    b.EndDate,
		Message:    b.Message,
	}
}

func (b *BookingBuilder) BuildManualRequestDTO() reqdto.ManualBookingRequest {
	return reqdto.ManualBookingRequest{
		GuestName:  b.GuestName,
		GuestEmail: b.GuestEmail,
		GuestPhone: b.GuestPhone,
		GuestCount: b.GuestCount,
		StartDate:  b.StartDate,
		EndDate:    b.EndDate,
		TotalPrice: b.TotalPrice,
		Message:    b.Message,
	}
}

func (b *BookingBuilder) BuildView() *queries.BookingView {
	id := uuid.New()
	var message *string
	if b.Message != "" {
		msg := b.Message
		message = &msg
	}
	return &queries.BookingView{
		ID:            id,
		GuestName:     b.GuestName,
		GuestEmail:    b.GuestEmail,
		GuestPhone:    b.GuestPhone,
		GuestCount:    b.GuestCount,
		StartDate:     b.StartDate,
		EndDate:       b.EndDate,
		TotalPrice:    b.TotalPrice,
		DepositAmount: b.DepositAmount,
		Status:        b.Status,
		PaymentStatus: b.PaymentStatus,
		Message:       message,
		CreatedAt:     b.CreatedAt,
		UpdatedAt:     b.UpdatedAt,
	}
}

func (b *BookingBuilder) BuildListItem() *queries.BookingListItem {
	id := uuid.New()
	return &queries.BookingListItem{
		ID:            id,
		GuestName:     b.GuestName,
		GuestCount:    b.GuestCount,
		StartDate:     b.StartDate,
		EndDate:       b.EndDate,
		TotalPrice:    b.TotalPrice,
		Status:        b.Status,
		PaymentStatus: b.PaymentStatus,
		CreatedAt:     b.CreatedAt,
	}
}

func (b *BookingBuilder) BuildSnapshot() *commands.BookingSnapshot {
	id := uuid.New()
	start, _ := dombooking.ParseDate(b.StartDate)
	end, _ := dombooking.ParseDate(b.EndDate)
	return &commands.BookingSnapshot{
		ID:            id,
		Status:        b.Status,
		PaymentStatus: b.PaymentStatus,
		StartDate:     start,
		EndDate:       end,
		TotalPrice:    b.TotalPrice,
		DepositAmount: b.DepositAmount,
	}
}

// Fluent builder methods
func (b *BookingBuilder) WithGuestName(name string) *BookingBuilder {
	b.GuestName = name
	return b
}

func (b *BookingBuilder) WithGuestEmail(email string) *BookingBuilder {
	b.GuestEmail = email
	return b
}

func (b *BookingBuilder) WithGuestPhone(phone string) *BookingBuilder {
	b.GuestPhone = phone
	return b
}

func (b *BookingBuilder) WithGuestCount(count int) *BookingBuilder {
	b.GuestCount = count
	return b
}

func (b *BookingBuilder) WithDates(start, end string) *BookingBuilder {
	b.StartDate = start
	b.EndDate = end
	return b
}

func (b *BookingBuilder) WithTotalPrice(price int64) *BookingBuilder {
	b.TotalPrice = price
	return b
}

func (b *BookingBuilder) WithDepositAmount(amount int64) *BookingBuilder {
	b.DepositAmount = amount
	return b
}

func (b *BookingBuilder) WithStatus(status string) *BookingBuilder {
	b.Status = status
	return b
}

func (b *BookingBuilder) WithPaymentStatus(status string) *BookingBuilder {
	b.PaymentStatus = status
	return b
}

func (b *BookingBuilder) WithMessage(message string) *BookingBuilder {
	b.Message = message
	return b
}

func (b *BookingBuilder) WithCreatedAt(createdAt time.Time) *BookingBuilder {
	b.CreatedAt = createdAt
	return b
}

func (b *BookingBuilder) AsApproved() *BookingBuilder {
	b.Status = "approved"
	return b
}

func (b *BookingBuilder) AsWeekendStay() *BookingBuilder {
	b.StartDate = "2026-03-06"
	b.EndDate = "2026-03-08"
	return b
}
