package api

import (
	"errors"
	"net/http"

	"quinta-booking/internal/domain/booking"
	"quinta-booking/internal/handler/dto/response"
	"quinta-booking/internal/handler/httperr"
	"quinta-booking/internal/usecase/commands"
	"quinta-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type AvailabilityHandler struct {
	availabilityQueries queries.AvailabilityQueries
	calendarCommands    commands.CalendarCommands
}

func NewAvailabilityHandler(availabilityQueries queries.AvailabilityQueries, calendarCommands commands.CalendarCommands) *AvailabilityHandler {
	return &AvailabilityHandler{
		availabilityQueries: availabilityQueries,
		calendarCommands:    calendarCommands,
	}
}

// @Summary Availability calendar
// @Description Day-by-day availability for a period, with holiday names
// @Tags availability
// @Produce json
// @Param from query string true "First day (YYYY-MM-DD)"
// @Param to query string true "Last day (YYYY-MM-DD)"
// @Success 200 {object} response.CalendarResponse
// @Failure 400 {object} httperr.Response
// @Router /availability [get]
func (h *AvailabilityHandler) Calendar(c *gin.Context) {
	from, err := booking.ParseDate(c.Query("from"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid from date", nil)
		return
	}
	to, err := booking.ParseDate(c.Query("to"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid to date", nil)
		return
	}

	days, err := h.availabilityQueries.Calendar(c.Request.Context(), from, to)
	if err != nil {
		switch {
		case errors.Is(err, queries.ErrInvalidPeriod):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid period", nil)
		case errors.Is(err, queries.ErrPeriodTooLong):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Period too long", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal error", nil)
		}
		return
	}

	c.JSON(http.StatusOK, response.FromCalendar(days))
}

// @Summary Toggle blocked date
// @Description Flip a day in or out of the blocked set
// @Tags availability
// @Produce json
// @Security BearerAuth
// @Param date path string true "Day (YYYY-MM-DD)"
// @Success 200 {object} response.ToggleBlockedResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Router /calendar/blocked/{date}/toggle [post]
func (h *AvailabilityHandler) ToggleBlocked(c *gin.Context) {
	date := c.Param("date")

	blocked, err := h.calendarCommands.ToggleBlockedDate(c.Request.Context(), date)
	if err != nil {
		if errors.Is(err, commands.ErrInvalidDate) {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid date", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal error", nil)
		return
	}

	c.JSON(http.StatusOK, response.ToggleBlockedResponse{Date: date, Blocked: blocked})
}
