//go:build e2e

package auth_test

import (
	"net/http"
	"testing"

	"quinta-booking/internal/handler/dto/request"
	"quinta-booking/internal/handler/dto/response"
	"quinta-booking/internal/pkg/cookie"
	"quinta-booking/tests/common/authtest"
	"quinta-booking/tests/common/dbtest"
	"quinta-booking/tests/common/httptest"
	"quinta-booking/tests/e2e"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	loginURL  = "/api/auth/login"
	logoutURL = "/api/auth/logout"
	meURL     = "/api/auth/me"
)

type authSuite struct {
	e2e.SharedSuite
}

func TestAuthSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(authSuite))
}

func (s *authSuite) TestLogin() {
	tests := []struct {
		name           string
		username       string
		password       string
		expectedStatus int
	}{
		{
			name:           "Normal case: valid credentials",
			username:       dbtest.AdminUsername,
			password:       dbtest.AdminPassword,
			expectedStatus: http.StatusOK,
		},
		{
			name:           "Error case: unknown username",
			username:       "nobody",
			password:       dbtest.AdminPassword,
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "Error case: wrong password",
			username:       dbtest.AdminUsername,
			password:       "wrong-password",
			expectedStatus: http.StatusUnauthorized,
		},
	}

	for _, tc := range tests {
		s.Run(tc.name, func() {
			t := s.T()

			w := httptest.PerformRequest(t, s.Router, http.MethodPost, loginURL,
				request.LoginRequest{Username: tc.username, Password: tc.password}, "")
			require.Equal(t, tc.expectedStatus, w.Code, w.Body.String())

			if tc.expectedStatus == http.StatusOK {
				var body response.LoginResponse
				require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &body))
				require.NotEmpty(t, body.AccessToken)
				require.NotNil(t, body.User)
				require.Equal(t, tc.username, body.User.Username)

				accessCookie := httptest.ExtractCookie(w, cookie.AccessTokenCookieName)
				require.NotNil(t, accessCookie, "login must set the session cookie")
				require.NotEmpty(t, accessCookie.Value)
			}
		})
	}

	s.Run("Error case: inactive account is rejected", func() {
		t := s.T()

		_, err := s.DB.Exec(t.Context(), "UPDATE users SET is_active = false WHERE username = $1", dbtest.AdminUsername)
		require.NoError(t, err)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, loginURL,
			request.LoginRequest{Username: dbtest.AdminUsername, Password: dbtest.AdminPassword}, "")
		require.Equal(t, http.StatusForbidden, w.Code, w.Body.String())
	})
}

func (s *authSuite) TestMe() {
	s.Run("Normal case: returns the authenticated admin", func() {
		t := s.T()

		token := authtest.LoginUser(t, s.Router, dbtest.AdminUsername, dbtest.AdminPassword)

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, meURL, nil, token)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var me struct {
			Username string `json:"username"`
			Role     string `json:"role"`
		}
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &me))
		require.Equal(t, dbtest.AdminUsername, me.Username)
		require.Equal(t, "admin", me.Role)
	})

	s.Run("Error case: missing token", func() {
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, meURL, nil, "")
		s.Require().Equal(http.StatusUnauthorized, w.Code)
	})

	s.Run("Error case: garbage token", func() {
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, meURL, nil, "not-a-jwt")
		s.Require().Equal(http.StatusUnauthorized, w.Code)
	})
}

func (s *authSuite) TestLogout() {
	s.Run("Normal case: logout clears the session cookie", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, loginURL,
			request.LoginRequest{Username: dbtest.AdminUsername, Password: dbtest.AdminPassword}, "")
		require.Equal(t, http.StatusOK, w.Code)

		cookies := w.Result().Cookies()
		authtest.LogoutUser(t, s.Router, cookies)
	})
}
