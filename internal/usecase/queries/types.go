package queries

import (
	"time"

	"github.com/google/uuid"
)

// Read models (DTO for read side). Calendar days travel as ISO
// YYYY-MM-DD keys, matching the storage form.
type BookingView struct {
	ID            uuid.UUID `json:"id"`
	GuestName     string    `json:"guest_name"`
	GuestEmail    string    `json:"guest_email"`
	GuestPhone    string    `json:"guest_phone"`
	GuestCount    int       `json:"guest_count"`
	StartDate     string    `json:"start_date"`
	EndDate       string    `json:"end_date"`
	TotalPrice    int64     `json:"total_price"`
	DepositAmount int64     `json:"deposit_amount"`
	Status        string    `json:"status"`
	PaymentStatus string    `json:"payment_status"`
	Message       *string   `json:"message,omitempty"`
	IsManual      bool      `json:"is_manual"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

type BookingListItem struct {
	ID            uuid.UUID `json:"id"`
	GuestName     string    `json:"guest_name"`
	GuestCount    int       `json:"guest_count"`
	StartDate     string    `json:"start_date"`
	EndDate       string    `json:"end_date"`
	TotalPrice    int64     `json:"total_price"`
	Status        string    `json:"status"`
	PaymentStatus string    `json:"payment_status"`
	CreatedAt     time.Time `json:"created_at"`
}

// DayStatusView is one calendar cell. BookingID is set only when the
// day is covered by an Approved booking; Holiday carries the holiday
// name when the day is a national holiday.
type DayStatusView struct {
	Date      string     `json:"date"`
	Available bool       `json:"available"`
	Blocked   bool       `json:"blocked"`
	BookingID *uuid.UUID `json:"booking_id,omitempty"`
	Holiday   *string    `json:"holiday,omitempty"`
}

type RulesView struct {
	DailyPrice        int64     `json:"daily_price"`
	WeekendMultiplier float64   `json:"weekend_multiplier"`
	GuestThreshold    int       `json:"guest_threshold"`
	ExtraGuestPrice   int64     `json:"extra_guest_price"`
	SpecialDates      []string  `json:"special_dates"`
	UpdatedAt         time.Time `json:"updated_at"`
}

type QuoteView struct {
	TotalPrice int64   `json:"total_price"`
	Days       int     `json:"days"`
	Warning    *string `json:"warning,omitempty"`
}

type PropertyView struct {
	Name                 string   `json:"name"`
	Address              string   `json:"address"`
	MaxCapacity          int      `json:"max_capacity"`
	Description          string   `json:"description"`
	RulesAndPolicies     string   `json:"rules_and_policies"`
	AssistantInstruction string   `json:"-"`
	Images               []string `json:"images"`
}

type AuthorizedUserView struct {
	ID       uuid.UUID `json:"id"`
	Username string    `json:"username"`
	Role     string    `json:"role"`
	IsActive bool      `json:"is_active"`
}
