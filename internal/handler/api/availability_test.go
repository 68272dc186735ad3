//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"quinta-booking/internal/domain/booking"
	"quinta-booking/internal/handler/api"
	resdto "quinta-booking/internal/handler/dto/response"
	"quinta-booking/internal/usecase/commands"
	"quinta-booking/internal/usecase/queries"
	"quinta-booking/tests/common/httptest"
	commandsmock "quinta-booking/tests/mock/commands"
	queriesmock "quinta-booking/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type AvailabilityHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockQueries  *queriesmock.MockAvailabilityQueries
	mockCommands *commandsmock.MockCalendarCommands
	handler      *api.AvailabilityHandler
}

func (s *AvailabilityHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockQueries = queriesmock.NewMockAvailabilityQueries(s.mockCtrl)
	s.mockCommands = commandsmock.NewMockCalendarCommands(s.mockCtrl)
	s.handler = api.NewAvailabilityHandler(s.mockQueries, s.mockCommands)

	authMiddleware := func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": gin.H{"message": "Unauthorized"}})
			return
		}
		c.Next()
	}

	s.router.GET("/availability", s.handler.Calendar)
	s.router.POST("/calendar/blocked/:date/toggle", authMiddleware, s.handler.ToggleBlocked)
}

func (s *AvailabilityHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestAvailabilityHandlerSuite(t *testing.T) {
	suite.Run(t, new(AvailabilityHandlerTestSuite))
}

// ================================================================================
// TestCalendar
// ================================================================================

func (s *AvailabilityHandlerTestSuite) TestCalendar() {
	url := "/availability?from=2026-03-01&to=2026-03-03"

	from, _ := booking.ParseDate("2026-03-01")
	to, _ := booking.ParseDate("2026-03-03")
	occupant := uuid.New()
	days := []queries.DayStatusView{
		{Date: "2026-03-01", Available: true},
		{Date: "2026-03-02", Available: false, BookingID: &occupant},
		{Date: "2026-03-03", Available: false, Blocked: true},
	}

	s.Run("success: returns 200 OK with the day grid", func() {
		s.mockQueries.EXPECT().Calendar(gomock.Any(), from, to).
			Return(days, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")

		var response resdto.CalendarResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Require().Len(response.Days, 3)
		s.True(response.Days[0].Available)
		s.Require().NotNil(response.Days[1].BookingID)
		s.Equal(occupant, *response.Days[1].BookingID)
		s.True(response.Days[2].Blocked)
	})

	s.Run("error: 400 Bad Request for malformed dates", func() {
		for _, u := range []string{
			"/availability?from=bogus&to=2026-03-03",
			"/availability?from=2026-03-01&to=bogus",
			"/availability?to=2026-03-03",
		} {
			rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, u, nil, "")
			httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
		}
	})

	s.Run("error: maps query errors to proper statuses", func() {
		s.mockQueries.EXPECT().Calendar(gomock.Any(), from, to).
			Return(nil, queries.ErrPeriodTooLong).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Period too long")
	})
}

// ================================================================================
// TestToggleBlocked
// ================================================================================

func (s *AvailabilityHandlerTestSuite) TestToggleBlocked() {
	url := "/calendar/blocked/2026-03-10/toggle"

	s.Run("success: reports the resulting state", func() {
		s.mockCommands.EXPECT().ToggleBlockedDate(gomock.Any(), "2026-03-10").
			Return(true, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "bearer-token")

		var response resdto.ToggleBlockedResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("2026-03-10", response.Date)
		s.True(response.Blocked)
	})

	s.Run("success: toggling again unblocks", func() {
		s.mockCommands.EXPECT().ToggleBlockedDate(gomock.Any(), "2026-03-10").
			Return(false, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "bearer-token")

		var response resdto.ToggleBlockedResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.False(response.Blocked)
	})

	s.Run("error: 400 Bad Request for malformed date", func() {
		s.mockCommands.EXPECT().ToggleBlockedDate(gomock.Any(), "bogus").
			Return(false, commands.ErrInvalidDate).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/calendar/blocked/bogus/toggle", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid date")
	})

	s.Run("error: 401 Unauthorized when unauthenticated", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Unauthorized")
	})
}
