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
)

type PricingHandler struct {
	pricingCommands commands.PricingCommands
	pricingQueries  queries.PricingQueries
}

func NewPricingHandler(pricingCommands commands.PricingCommands, pricingQueries queries.PricingQueries) *PricingHandler {
	return &PricingHandler{
		pricingCommands: pricingCommands,
		pricingQueries:  pricingQueries,
	}
}

// @Summary Quote a stay
// @Description Price a candidate range and guest count without creating anything
// @Tags pricing
// @Accept json
// @Produce json
// @Param request body request.QuoteRequest true "Quote request"
// @Success 200 {object} response.QuoteResponse
// @Failure 400 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /pricing/quote [post]
func (h *PricingHandler) Quote(c *gin.Context) {
	var req request.QuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	view, err := h.pricingQueries.Quote(c.Request.Context(), req.ToQuery())
	if err != nil {
		switch {
		case errors.Is(err, queries.ErrInvalidQuoteRange):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid date range", nil)
		case errors.Is(err, queries.ErrInvalidGuestCount):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid guest count", nil)
		case errors.Is(err, queries.ErrRangeUnavailable):
			httperr.AbortWithError(c, http.StatusConflict, err, "Dates unavailable", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal error", nil)
		}
		return
	}

	c.JSON(http.StatusOK, response.FromQuoteView(view))
}

// @Summary Get pricing rules
// @Description Current pricing configuration
// @Tags pricing
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.RulesResponse
// @Failure 401 {object} httperr.Response
// @Router /pricing/rules [get]
func (h *PricingHandler) GetRules(c *gin.Context) {
	view, err := h.pricingQueries.Rules(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal error", nil)
		return
	}
	c.JSON(http.StatusOK, response.FromRulesView(view))
}

// @Summary Update pricing rules
// @Description Replace the pricing configuration; existing bookings keep their frozen totals
// @Tags pricing
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body request.UpdateRulesRequest true "New rules"
// @Success 200 {object} response.RulesResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Router /pricing/rules [put]
func (h *PricingHandler) UpdateRules(c *gin.Context) {
	var req request.UpdateRulesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	if err := h.pricingCommands.UpdateRules(c.Request.Context(), req.ToCommand()); err != nil {
		if errors.Is(err, commands.ErrInvalidRules) {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid pricing rules", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal error", nil)
		return
	}

	h.GetRules(c)
}
