package middleware_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/2beens/warmachine/internal/middleware"
	"github.com/2beens/warmachine/internal/session"
)

func TestAuthMiddlewareHandler_AuthCheck(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockAuthenticator := NewMocksessionAuthenticator(ctrl)
	cookies := session.NewCookieManager("middleware-test-secret", time.Hour, false)
	authMiddleware := middleware.NewAuthMiddlewareHandler(mockAuthenticator, cookies)

	// a signed cookie for a token
	cookieFor := func(token string) *http.Cookie {
		rec := httptest.NewRecorder()
		require.NoError(t, cookies.Set(rec, token))
		return rec.Result().Cookies()[0]
	}

	testCases := []struct {
		name               string
		path               string
		method             string
		token              string
		rawCookie          string
		expectedStatusCode int
		mockSession        *session.Session
		mockErr            error
		expectUserID       int64
	}{
		{
			name:               "AllowedAuthPathWithoutSession",
			path:               "/api/auth/login",
			method:             http.MethodPost,
			expectedStatusCode: http.StatusOK,
		},
		{
			name:               "StaticPathWithoutSession",
			path:               "/index.html",
			method:             http.MethodGet,
			expectedStatusCode: http.StatusOK,
		},
		{
			name:               "UploadsPathWithoutSession",
			path:               "/uploads/profile_1_1.png",
			method:             http.MethodGet,
			expectedStatusCode: http.StatusOK,
		},
		{
			name:               "ApiPathWithoutSession",
			path:               "/api/gym",
			method:             http.MethodGet,
			expectedStatusCode: http.StatusUnauthorized,
		},
		{
			name:               "ApiPathWithTamperedCookie",
			path:               "/api/gym",
			method:             http.MethodGet,
			rawCookie:          "forged-value",
			expectedStatusCode: http.StatusUnauthorized,
		},
		{
			name:               "ValidSession",
			path:               "/api/gym",
			method:             http.MethodGet,
			token:              "valid-token",
			expectedStatusCode: http.StatusOK,
			mockSession:        &session.Session{Token: "valid-token", UserID: 7},
			expectUserID:       7,
		},
		{
			name:               "ExpiredSession",
			path:               "/api/gym",
			method:             http.MethodGet,
			token:              "expired-token",
			expectedStatusCode: http.StatusUnauthorized,
			mockErr:            errors.New("unauthenticated"),
		},
		{
			name:               "Options",
			path:               "/api/gym",
			method:             http.MethodOptions,
			expectedStatusCode: http.StatusOK,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(tc.method, tc.path, nil)
			if tc.token != "" {
				req.AddCookie(cookieFor(tc.token))
				mockAuthenticator.EXPECT().
					Authenticate(gomock.Any(), tc.token).
					Return(tc.mockSession, tc.mockErr).
					Times(1)
			}
			if tc.rawCookie != "" {
				req.AddCookie(&http.Cookie{Name: session.CookieName, Value: tc.rawCookie})
			}

			var gotUserID int64
			handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				gotUserID, _ = session.UserIDFromContext(r.Context())
			})

			rr := httptest.NewRecorder()
			authMiddleware.AuthCheck()(handler).ServeHTTP(rr, req)

			assert.Equal(t, tc.expectedStatusCode, rr.Code)
			assert.Equal(t, tc.expectUserID, gotUserID)
			if tc.expectedStatusCode == http.StatusUnauthorized {
				assert.JSONEq(t, `{"error":"Unauthenticated"}`, rr.Body.String())
			}
			if tc.mockSession != nil {
				// cookie re-issued on every authenticated request
				assert.NotEmpty(t, rr.Result().Cookies())
			}
		})
	}
}
