//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"

	"quinta-booking/internal/handler/api"
	resdto "quinta-booking/internal/handler/dto/response"
	"quinta-booking/internal/usecase/commands"
	"quinta-booking/internal/usecase/queries"
	"quinta-booking/tests/common/builder"
	"quinta-booking/tests/common/httptest"
	"quinta-booking/tests/common/testutil"
	commandsmock "quinta-booking/tests/mock/commands"
	queriesmock "quinta-booking/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type BookingHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockBookingCommands
	mockQueries  *queriesmock.MockBookingQueries
	handler      *api.BookingHandler
}

func (s *BookingHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockBookingCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockBookingQueries(s.mockCtrl)
	s.handler = api.NewBookingHandler(s.mockCommands, s.mockQueries)

	// Mock authentication middleware for testing
	authMiddleware := func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": gin.H{"message": "Unauthorized"}})
			return
		}
		c.Set("user_id", uuid.New())
		c.Set("user_role", "admin")
		c.Next()
	}

	s.router.POST("/bookings", s.handler.Submit)
	s.router.GET("/bookings", authMiddleware, s.handler.List)
	s.router.GET("/bookings/:id", authMiddleware, s.handler.Get)
	s.router.PATCH("/bookings/:id/status", authMiddleware, s.handler.UpdateStatus)
	s.router.PATCH("/bookings/:id/payment", authMiddleware, s.handler.UpdatePayment)
	s.router.PATCH("/bookings/:id/deposit", authMiddleware, s.handler.UpdateDeposit)
	s.router.POST("/bookings/manual", authMiddleware, s.handler.CreateManual)
}

func (s *BookingHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestBookingHandlerSuite(t *testing.T) {
	suite.Run(t, new(BookingHandlerTestSuite))
}

type testCaseBooking struct {
	name       string
	mutate     func(m map[string]any)
	expectCode int
}

// ================================================================================
// TestSubmit
// ================================================================================

func (s *BookingHandlerTestSuite) TestSubmit() {
	url := "/bookings"

	reqBody := builder.NewBookingBuilder().BuildSubmitRequestDTO()
	returnView := builder.NewBookingBuilder().BuildView()

	s.Run("success: returns 201 Created for valid request", func() {
		s.mockCommands.EXPECT().Submit(gomock.Any(), gomock.Any()).
			Return(returnView, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		var response resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal(returnView.ID, response.ID)
		s.Equal("pending", response.Status)
	})

	s.Run("error: 400 Bad Request on validation errors", func() {
		cases := []testCaseBooking{
			{name: "missing field: guest_name (required)", mutate: testutil.Field("guest_name", nil), expectCode: http.StatusBadRequest},
			{name: "missing field: start_date (required)", mutate: testutil.Field("start_date", nil), expectCode: http.StatusBadRequest},
			{name: "missing field: end_date (required)", mutate: testutil.Field("end_date", nil), expectCode: http.StatusBadRequest},
			{name: "guest_count below minimum", mutate: testutil.Field("guest_count", 0), expectCode: http.StatusBadRequest},
			{name: "malformed email", mutate: testutil.Field("guest_email", "not-an-email"), expectCode: http.StatusBadRequest},
			{name: "email is optional", mutate: testutil.Field("guest_email", nil), expectCode: http.StatusCreated},
			{name: "message is optional", mutate: testutil.Field("message", nil), expectCode: http.StatusCreated},
		}

		for _, tc := range cases {
			s.Run(tc.name, func() {
				requestMap := testutil.DtoMap(s.T(), reqBody, tc.mutate)

				if tc.expectCode == http.StatusCreated {
					s.mockCommands.EXPECT().Submit(gomock.Any(), gomock.Any()).
						Return(returnView, nil).Times(1)
				}
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, "")
				if tc.expectCode == http.StatusCreated {
					httptest.AssertSuccessResponse(s.T(), rec, tc.expectCode, nil)
				} else {
					httptest.AssertErrorResponse(s.T(), rec, tc.expectCode, "")
				}
			})
		}
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedMsg    string
		}{
			{
				name:           "dates unavailable",
				commandsError:  commands.ErrDateUnavailable,
				expectedStatus: http.StatusConflict,
				expectedMsg:    "Dates unavailable",
			},
			{
				name:           "invalid range",
				commandsError:  commands.ErrInvalidRange,
				expectedStatus: http.StatusBadRequest,
				expectedMsg:    "Invalid date range",
			},
			{
				name:           "guest validation failed",
				commandsError:  commands.ErrValidationFailed,
				expectedStatus: http.StatusUnprocessableEntity,
				expectedMsg:    "Validation failed",
			},
			{
				name:           "internal server error",
				commandsError:  errors.New("database error"),
				expectedStatus: http.StatusInternalServerError,
				expectedMsg:    "Internal error",
			},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().Submit(gomock.Any(), gomock.Any()).
					Return(nil, tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}

// ================================================================================
// TestList
// ================================================================================

func (s *BookingHandlerTestSuite) TestList() {
	url := "/bookings"

	items := []*queries.BookingListItem{
		builder.NewBookingBuilder().BuildListItem(),
		builder.NewBookingBuilder().AsApproved().BuildListItem(),
	}

	s.Run("success: returns 200 OK with all bookings", func() {
		s.mockQueries.EXPECT().List(gomock.Any(), gomock.Nil()).
			Return(items, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")

		var response []resdto.BookingListResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Len(response, 2)
	})

	s.Run("success: passes the status filter through", func() {
		pending := "pending"
		s.mockQueries.EXPECT().List(gomock.Any(), &pending).
			Return(items[:1], nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url+"?status=pending", nil, "bearer-token")

		var response []resdto.BookingListResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Len(response, 1)
	})

	s.Run("error: 400 Bad Request for unknown status", func() {
		bogus := "bogus"
		s.mockQueries.EXPECT().List(gomock.Any(), &bogus).
			Return(nil, queries.ErrInvalidFilter).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url+"?status=bogus", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid status filter")
	})

	s.Run("error: 401 Unauthorized when unauthenticated", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Unauthorized")
	})
}

// ================================================================================
// TestGet
// ================================================================================

func (s *BookingHandlerTestSuite) TestGet() {
	bookingID := uuid.New()
	url := "/bookings/" + bookingID.String()

	returnView := builder.NewBookingBuilder().BuildView()
	returnView.ID = bookingID

	s.Run("success: returns 200 OK with BookingResponse", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), bookingID).
			Return(returnView, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")

		var response resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(bookingID, response.ID)
		s.Equal(returnView.TotalPrice, response.TotalPrice)
	})

	s.Run("error: 400 Bad Request for invalid UUID", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings/invalid-uuid", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid id")
	})

	s.Run("error: 404 Not Found for missing booking", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), bookingID).
			Return(nil, queries.ErrBookingNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Not found")
	})
}

// ================================================================================
// TestUpdateStatus
// ================================================================================

func (s *BookingHandlerTestSuite) TestUpdateStatus() {
	bookingID := uuid.New()
	url := "/bookings/" + bookingID.String() + "/status"

	returnView := builder.NewBookingBuilder().AsApproved().BuildView()
	returnView.ID = bookingID

	s.Run("success: approve returns the refreshed booking", func() {
		s.mockCommands.EXPECT().Approve(gomock.Any(), bookingID).
			Return(nil).Times(1)
		s.mockQueries.EXPECT().GetByID(gomock.Any(), bookingID).
			Return(returnView, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, gin.H{"status": "approved"}, "bearer-token")

		var response resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("approved", response.Status)
	})

	s.Run("success: reject and cancel dispatch to their commands", func() {
		s.mockCommands.EXPECT().Reject(gomock.Any(), bookingID).Return(nil).Times(1)
		s.mockQueries.EXPECT().GetByID(gomock.Any(), bookingID).Return(returnView, nil).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, gin.H{"status": "rejected"}, "bearer-token")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)

		s.mockCommands.EXPECT().Cancel(gomock.Any(), bookingID).Return(nil).Times(1)
		s.mockQueries.EXPECT().GetByID(gomock.Any(), bookingID).Return(returnView, nil).Times(1)
		rec = httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, gin.H{"status": "cancelled"}, "bearer-token")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("error: 400 Bad Request for unknown status value", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, gin.H{"status": "archived"}, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedMsg    string
		}{
			{
				name:           "booking not found",
				commandsError:  commands.ErrBookingNotFound,
				expectedStatus: http.StatusNotFound,
				expectedMsg:    "Not found",
			},
			{
				name:           "stale transition",
				commandsError:  commands.ErrStaleTransition,
				expectedStatus: http.StatusConflict,
				expectedMsg:    "Invalid state transition",
			},
			{
				name:           "dates became unavailable",
				commandsError:  commands.ErrDateUnavailable,
				expectedStatus: http.StatusConflict,
				expectedMsg:    "Dates unavailable",
			},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().Approve(gomock.Any(), bookingID).
					Return(tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, gin.H{"status": "approved"}, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}

// ================================================================================
// TestUpdatePayment
// ================================================================================

func (s *BookingHandlerTestSuite) TestUpdatePayment() {
	bookingID := uuid.New()
	url := "/bookings/" + bookingID.String() + "/payment"

	returnView := builder.NewBookingBuilder().WithPaymentStatus("partial").BuildView()
	returnView.ID = bookingID

	s.Run("success: records the payment state", func() {
		s.mockCommands.EXPECT().RecordPayment(gomock.Any(), bookingID, "partial").
			Return(nil).Times(1)
		s.mockQueries.EXPECT().GetByID(gomock.Any(), bookingID).
			Return(returnView, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, gin.H{"payment_status": "partial"}, "bearer-token")

		var response resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("partial", response.PaymentStatus)
	})

	s.Run("error: 400 Bad Request for unknown payment state", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, gin.H{"payment_status": "refunded"}, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
	})
}

// ================================================================================
// TestUpdateDeposit
// ================================================================================

func (s *BookingHandlerTestSuite) TestUpdateDeposit() {
	bookingID := uuid.New()
	url := "/bookings/" + bookingID.String() + "/deposit"

	returnView := builder.NewBookingBuilder().WithDepositAmount(50000).BuildView()
	returnView.ID = bookingID

	s.Run("success: records the deposit", func() {
		s.mockCommands.EXPECT().RecordDeposit(gomock.Any(), bookingID, int64(50000)).
			Return(nil).Times(1)
		s.mockQueries.EXPECT().GetByID(gomock.Any(), bookingID).
			Return(returnView, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, gin.H{"deposit_amount": 50000}, "bearer-token")

		var response resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(int64(50000), response.DepositAmount)
	})

	s.Run("success: zero deposit is accepted", func() {
		s.mockCommands.EXPECT().RecordDeposit(gomock.Any(), bookingID, int64(0)).
			Return(nil).Times(1)
		s.mockQueries.EXPECT().GetByID(gomock.Any(), bookingID).
			Return(returnView, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, gin.H{"deposit_amount": 0}, "bearer-token")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("error: 400 Bad Request for missing amount", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, gin.H{}, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
	})

	s.Run("error: 400 Bad Request for negative amount", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, gin.H{"deposit_amount": -1}, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
	})
}

// ================================================================================
// TestCreateManual
// ================================================================================

func (s *BookingHandlerTestSuite) TestCreateManual() {
	url := "/bookings/manual"

	reqBody := builder.NewBookingBuilder().BuildManualRequestDTO()
	returnView := builder.NewBookingBuilder().AsApproved().BuildView()

	s.Run("success: returns 201 Created with an approved booking", func() {
		s.mockCommands.EXPECT().CreateManual(gomock.Any(), gomock.Any()).
			Return(returnView, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")

		var response resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal("approved", response.Status)
	})

	s.Run("error: 409 Conflict when the range is occupied", func() {
		s.mockCommands.EXPECT().CreateManual(gomock.Any(), gomock.Any()).
			Return(nil, commands.ErrDateUnavailable).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "Dates unavailable")
	})

	s.Run("error: 401 Unauthorized when unauthenticated", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Unauthorized")
	})
}
