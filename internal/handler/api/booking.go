package api

import (
	"errors"
	"net/http"

	"quinta-booking/internal/handler/dto/request"
	"quinta-booking/internal/handler/dto/response"
	"quinta-booking/internal/handler/httperr"
	"quinta-booking/internal/usecase/commands"
	"quinta-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type BookingHandler struct {
	bookingCommands commands.BookingCommands
	bookingQueries  queries.BookingQueries
}

func NewBookingHandler(bookingCommands commands.BookingCommands, bookingQueries queries.BookingQueries) *BookingHandler {
	return &BookingHandler{
		bookingCommands: bookingCommands,
		bookingQueries:  bookingQueries,
	}
}

// @Summary Submit booking request
// @Description Submit a public booking request; it starts Pending and waits for approval
// @Tags bookings
// @Accept json
// @Produce json
// @Param request body request.SubmitBookingRequest true "Booking request"
// @Success 201 {object} response.BookingResponse
// @Failure 400 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /bookings [post]
func (h *BookingHandler) Submit(c *gin.Context) {
	var req request.SubmitBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	view, err := h.bookingCommands.Submit(c.Request.Context(), req.ToCommand())
	if err != nil {
		h.writeCommandError(c, err)
		return
	}

	c.JSON(http.StatusCreated, response.FromBookingView(view))
}

// @Summary List bookings
// @Description List all booking requests, optionally filtered by status
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param status query string false "Status filter" Enums(pending, approved, rejected, cancelled)
// @Success 200 {array} response.BookingListResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Router /bookings [get]
func (h *BookingHandler) List(c *gin.Context) {
	var statusFilter *string
	if status := c.Query("status"); status != "" {
		statusFilter = &status
	}

	items, err := h.bookingQueries.List(c.Request.Context(), statusFilter)
	if err != nil {
		if errors.Is(err, queries.ErrInvalidFilter) {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid status filter", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal error", nil)
		return
	}

	resp := make([]*response.BookingListResponse, len(items))
	for i, item := range items {
		resp[i] = response.FromBookingListItem(item)
	}
	c.JSON(http.StatusOK, resp)
}

// @Summary Get booking
// @Description Get one booking by ID
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 200 {object} response.BookingResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /bookings/{id} [get]
func (h *BookingHandler) Get(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}

	view, err := h.bookingQueries.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, queries.ErrBookingNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Not found", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal error", nil)
		return
	}

	c.JSON(http.StatusOK, response.FromBookingView(view))
}

// @Summary Update booking status
// @Description Approve, reject or cancel a booking
// @Tags bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Param request body request.UpdateStatusRequest true "Target status"
// @Success 200 {object} response.BookingResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /bookings/{id}/status [patch]
func (h *BookingHandler) UpdateStatus(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}

	var req request.UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	var err error
	switch req.Status {
	case "approved":
		err = h.bookingCommands.Approve(c.Request.Context(), id)
	case "rejected":
		err = h.bookingCommands.Reject(c.Request.Context(), id)
	case "cancelled":
		err = h.bookingCommands.Cancel(c.Request.Context(), id)
	}
	if err != nil {
		h.writeCommandError(c, err)
		return
	}

	h.respondWithBooking(c, id)
}

// @Summary Update payment status
// @Description Record the payment state of a booking
// @Tags bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Param request body request.UpdatePaymentRequest true "Payment status"
// @Success 200 {object} response.BookingResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /bookings/{id}/payment [patch]
func (h *BookingHandler) UpdatePayment(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}

	var req request.UpdatePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	if err := h.bookingCommands.RecordPayment(c.Request.Context(), id, req.PaymentStatus); err != nil {
		h.writeCommandError(c, err)
		return
	}

	h.respondWithBooking(c, id)
}

// @Summary Update deposit
// @Description Record a manually entered deposit amount
// @Tags bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Param request body request.UpdateDepositRequest true "Deposit amount"
// @Success 200 {object} response.BookingResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /bookings/{id}/deposit [patch]
func (h *BookingHandler) UpdateDeposit(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}

	var req request.UpdateDepositRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	if err := h.bookingCommands.RecordDeposit(c.Request.Context(), id, *req.DepositAmount); err != nil {
		h.writeCommandError(c, err)
		return
	}

	h.respondWithBooking(c, id)
}

// @Summary Create manual booking
// @Description Create an owner-entered booking that starts Approved
// @Tags bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body request.ManualBookingRequest true "Manual booking"
// @Success 201 {object} response.BookingResponse
// @Failure 400 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /bookings/manual [post]
func (h *BookingHandler) CreateManual(c *gin.Context) {
	var req request.ManualBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	view, err := h.bookingCommands.CreateManual(c.Request.Context(), req.ToCommand())
	if err != nil {
		h.writeCommandError(c, err)
		return
	}

	c.JSON(http.StatusCreated, response.FromBookingView(view))
}

func (h *BookingHandler) parseID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return uuid.Nil, false
	}
	return id, true
}

func (h *BookingHandler) respondWithBooking(c *gin.Context, id uuid.UUID) {
	view, err := h.bookingQueries.GetByID(c.Request.Context(), id)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load booking", nil)
		return
	}
	c.JSON(http.StatusOK, response.FromBookingView(view))
}

func (h *BookingHandler) writeCommandError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, commands.ErrBookingNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Not found", nil)
	case errors.Is(err, commands.ErrDateUnavailable):
		httperr.AbortWithError(c, http.StatusConflict, err, "Dates unavailable", nil)
	case errors.Is(err, commands.ErrStaleTransition):
		httperr.AbortWithError(c, http.StatusConflict, err, "Invalid state transition", nil)
	case errors.Is(err, commands.ErrInvalidRange):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid date range", nil)
	case errors.Is(err, commands.ErrInvalidGuestCount):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid guest count", nil)
	case errors.Is(err, commands.ErrValidationFailed):
		httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Validation failed", nil)
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal error", nil)
	}
}
