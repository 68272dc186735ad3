package request

import (
	"quinta-booking/internal/usecase/commands"
	"quinta-booking/internal/usecase/queries"
)

type QuoteRequest struct {
	StartDate  string `json:"start_date" binding:"required"`
	EndDate    string `json:"end_date" binding:"required"`
	GuestCount int    `json:"guest_count" binding:"required,min=1"`
}

func (r QuoteRequest) ToQuery() queries.QuoteRequest {
	return queries.QuoteRequest{
		StartDate:  r.StartDate,
		EndDate:    r.EndDate,
		GuestCount: r.GuestCount,
	}
}

type UpdateRulesRequest struct {
	DailyPrice        int64    `json:"daily_price" binding:"min=0"`
	WeekendMultiplier float64  `json:"weekend_multiplier" binding:"required,min=1"`
	GuestThreshold    int      `json:"guest_threshold" binding:"required,min=1"`
	ExtraGuestPrice   int64    `json:"extra_guest_price" binding:"min=0"`
	SpecialDates      []string `json:"special_dates"`
}

func (r UpdateRulesRequest) ToCommand() commands.UpdateRulesRequest {
	return commands.UpdateRulesRequest{
		DailyPrice:        r.DailyPrice,
		WeekendMultiplier: r.WeekendMultiplier,
		GuestThreshold:    r.GuestThreshold,
		ExtraGuestPrice:   r.ExtraGuestPrice,
		SpecialDates:      r.SpecialDates,
	}
}
