package response

import (
	"log/slog"
	"time"

	"quinta-booking/internal/usecase/queries"

	"github.com/jinzhu/copier"
)

type RulesResponse struct {
	DailyPrice        int64     `json:"dailyPrice"`
	WeekendMultiplier float64   `json:"weekendMultiplier"`
	GuestThreshold    int       `json:"guestThreshold"`
	ExtraGuestPrice   int64     `json:"extraGuestPrice"`
	SpecialDates      []string  `json:"specialDates"`
	UpdatedAt         time.Time `json:"updatedAt"`
}

type QuoteResponse struct {
	TotalPrice int64   `json:"totalPrice"`
	Days       int     `json:"days"`
	Warning    *string `json:"warning,omitempty"`
}

func FromRulesView(view *queries.RulesView) *RulesResponse {
	var resp RulesResponse
	if err := copier.Copy(&resp, view); err != nil {
		slog.Error("failed to map pricing rules view", "error", err)
	}
	return &resp
}

func FromQuoteView(view *queries.QuoteView) *QuoteResponse {
	var resp QuoteResponse
	if err := copier.Copy(&resp, view); err != nil {
		slog.Error("failed to map quote view", "error", err)
	}
	return &resp
}
