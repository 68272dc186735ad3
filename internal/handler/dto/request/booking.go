package request

import (
	"quinta-booking/internal/usecase/commands"
)

type SubmitBookingRequest struct {
	GuestName  string `json:"guest_name" binding:"required"`
	GuestEmail string `json:"guest_email" binding:"omitempty,email"`
	GuestPhone string `json:"guest_phone"`
	GuestCount int    `json:"guest_count" binding:"required,min=1"`
	StartDate  string `json:"start_date" binding:"required"`
	EndDate    string `json:"end_date" binding:"required"`
	Message    string `json:"message"`
}

func (r SubmitBookingRequest) ToCommand() commands.SubmitBookingRequest {
	return commands.SubmitBookingRequest{
		GuestName:  r.GuestName,
		GuestEmail: r.GuestEmail,
		GuestPhone: r.GuestPhone,
		GuestCount: r.GuestCount,
		StartDate:  r.StartDate,
		EndDate:    r.EndDate,
		Message:    r.Message,
	}
}

type ManualBookingRequest struct {
	GuestName  string `json:"guest_name" binding:"required"`
	GuestEmail string `json:"guest_email" binding:"omitempty,email"`
	GuestPhone string `json:"guest_phone"`
	GuestCount int    `json:"guest_count" binding:"required,min=1"`
	StartDate  string `json:"start_date" binding:"required"`
	EndDate    string `json:"end_date" binding:"required"`
	TotalPrice int64  `json:"total_price" binding:"min=0"`
	Message    string `json:"message"`
}

func (r ManualBookingRequest) ToCommand() commands.CreateManualBookingRequest {
	return commands.CreateManualBookingRequest{
		GuestName:  r.GuestName,
		GuestEmail: r.GuestEmail,
		GuestPhone: r.GuestPhone,
		GuestCount: r.GuestCount,
		StartDate:  r.StartDate,
		EndDate:    r.EndDate,
		TotalPrice: r.TotalPrice,
		Message:    r.Message,
	}
}

type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=approved rejected cancelled"`
}

type UpdatePaymentRequest struct {
	PaymentStatus string `json:"payment_status" binding:"required,oneof=pending partial full"`
}

type UpdateDepositRequest struct {
	DepositAmount *int64 `json:"deposit_amount" binding:"required,min=0"`
}
