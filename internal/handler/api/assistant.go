package api

import (
	"net/http"

	"quinta-booking/internal/handler/dto/request"
	"quinta-booking/internal/handler/dto/response"
	"quinta-booking/internal/handler/httperr"
	"quinta-booking/internal/usecase"

	"github.com/gin-gonic/gin"
)

type AssistantHandler struct {
	assistantUseCase usecase.AssistantUseCase
}

func NewAssistantHandler(assistantUseCase usecase.AssistantUseCase) *AssistantHandler {
	return &AssistantHandler{
		assistantUseCase: assistantUseCase,
	}
}

// @Summary Ask the assistant
// @Description Ask a question about the property; the assistant answers from the house rules and never creates bookings
// @Tags assistant
// @Accept json
// @Produce json
// @Param request body request.ChatRequest true "Visitor message"
// @Success 200 {object} response.ChatResponse
// @Failure 400 {object} httperr.Response
// @Failure 503 {object} httperr.Response
// @Router /assistant/chat [post]
func (h *AssistantHandler) Chat(c *gin.Context) {
	var req request.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	reply, err := h.assistantUseCase.Chat(c.Request.Context(), req.Message)
	if err != nil {
		httperr.AbortWithError(c, http.StatusServiceUnavailable, err, "Assistant unavailable", nil)
		return
	}

	c.JSON(http.StatusOK, response.ChatResponse{Reply: reply})
}
