package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"auction-spot/internal/auctionerrors"
	"auction-spot/internal/auth"
	model "auction-spot/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

type loginStub struct {
	result auth.LoginResult
	err    error
}

func (s loginStub) Login(string) (auth.LoginResult, error) { return s.result, s.err }

func TestLoginHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)
	expires := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name           string
		body           string
		stub           loginStub
		expectedStatus int
	}{
		{
			name: "success",
			body: `{"email":"admin@auctionspot.in"}`,
			stub: loginStub{result: auth.LoginResult{
				Token:     "signed.jwt.token",
				ExpiresAt: expires,
				User:      model.User{UserID: "user-admin", Role: model.RoleAdmin},
			}},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "unknown_user",
			body:           `{"email":"ghost@auctionspot.in"}`,
			stub:           loginStub{err: fmt.Errorf("service: %w", auctionerrors.ErrUnauthorized)},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "invalid_email",
			body:           `{"email":"ghost"}`,
			expectedStatus: http.StatusUnprocessableEntity,
		},
		{
			name:           "service_failure",
			body:           `{"email":"admin@auctionspot.in"}`,
			stub:           loginStub{err: errors.New("signing failed")},
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			router := gin.New()
			router.POST("/login", NewAuthHandler(tc.stub).LoginHandler)

			req := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(tc.body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			require.Equal(t, tc.expectedStatus, w.Code)
			if w.Code != http.StatusOK {
				return
			}

			var resp map[string]any
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			data := resp["data"].(map[string]any)
			require.Equal(t, "signed.jwt.token", data["token"])
			require.Equal(t, "2025-03-01T12:00:00Z", data["expires_at"])
			require.Equal(t, "admin", data["user"].(map[string]any)["role"])
		})
	}
}
