package response

import (
	"log/slog"

	"quinta-booking/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type DayStatusResponse struct {
	Date      string     `json:"date"`
	Available bool       `json:"available"`
	Blocked   bool       `json:"blocked"`
	BookingID *uuid.UUID `json:"bookingId,omitempty"`
	Holiday   *string    `json:"holiday,omitempty"`
}

type CalendarResponse struct {
	Days []DayStatusResponse `json:"days"`
}

func FromCalendar(days []queries.DayStatusView) CalendarResponse {
	out := make([]DayStatusResponse, len(days))
	if err := copier.Copy(&out, &days); err != nil {
		slog.Error("failed to map calendar days", "error", err)
	}
	return CalendarResponse{Days: out}
}

type ToggleBlockedResponse struct {
	Date    string `json:"date"`
	Blocked bool   `json:"blocked"`
}
