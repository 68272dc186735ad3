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

type PropertyHandler struct {
	propertyCommands commands.PropertyCommands
	propertyQueries  queries.PropertyQueries
}

func NewPropertyHandler(propertyCommands commands.PropertyCommands, propertyQueries queries.PropertyQueries) *PropertyHandler {
	return &PropertyHandler{
		propertyCommands: propertyCommands,
		propertyQueries:  propertyQueries,
	}
}

// @Summary Get property information
// @Description Public property details shown on the landing page
// @Tags property
// @Produce json
// @Success 200 {object} response.PropertyResponse
// @Router /property [get]
func (h *PropertyHandler) Get(c *gin.Context) {
	view, err := h.propertyQueries.Get(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal error", nil)
		return
	}
	c.JSON(http.StatusOK, response.FromPropertyView(view))
}

// @Summary Update property information
// @Description Update the property configuration; omitted fields keep their value
// @Tags property
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body request.UpdatePropertyRequest true "Property update"
// @Success 200 {object} response.PropertyResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Router /property [put]
func (h *PropertyHandler) Update(c *gin.Context) {
	var req request.UpdatePropertyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	current, err := h.propertyQueries.Get(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal error", nil)
		return
	}

	if err := h.propertyCommands.UpdateProperty(c.Request.Context(), req.MergeOnto(current)); err != nil {
		if errors.Is(err, commands.ErrInvalidProperty) {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid property configuration", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal error", nil)
		return
	}

	h.Get(c)
}
