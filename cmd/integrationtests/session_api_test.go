package integrationtests

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"auction-spot/internal/seed"
	"auction-spot/services/helpers"

	"github.com/stretchr/testify/require"
)

func TestLogin(t *testing.T) {
	env := SetupTestEnv(t)

	tests := []struct {
		name       string
		request    any
		wantStatus int
		wantRole   string
	}{
		{name: "Admin", request: helpers.LoginRequest{Email: "admin@auctionspot.in"}, wantStatus: http.StatusOK, wantRole: "admin"},
		{name: "Bidder", request: helpers.LoginRequest{Email: "priya@auctionspot.in"}, wantStatus: http.StatusOK, wantRole: "bidder"},
		{name: "Unknown_Email", request: helpers.LoginRequest{Email: "nobody@auctionspot.in"}, wantStatus: http.StatusUnauthorized},
		{name: "Malformed_Email", request: helpers.LoginRequest{Email: "not-an-email"}, wantStatus: http.StatusUnprocessableEntity},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, w := ExecuteRequestAndParse(t, env.Router, http.MethodPost, "/api/auth/login", tt.request, nil)
			require.Equal(t, tt.wantStatus, w.Code, w.Body.String())
			if tt.wantStatus != http.StatusOK {
				return
			}
			data := resp["data"].(map[string]any)
			require.NotEmpty(t, data["token"])
			require.Equal(t, tt.wantRole, data["user"].(map[string]any)["role"])
			_, err := time.Parse(time.RFC3339, data["expires_at"].(string))
			require.NoError(t, err)
		})
	}
}

func TestBearerTokenGrantsRole(t *testing.T) {
	env := SetupTestEnv(t)

	resp, w := ExecuteRequestAndParse(t, env.Router, http.MethodPost, "/api/auth/login",
		helpers.LoginRequest{Email: "admin@auctionspot.in"}, nil)
	require.Equal(t, http.StatusOK, w.Code)
	token := resp["data"].(map[string]any)["token"].(string)

	bearer := map[string]string{"Authorization": "Bearer " + token}
	_, w = ExecuteRequestAndParse(t, env.Router, http.MethodPost, "/api/notifications", map[string]any{"title": "Hello"}, bearer)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	// a bearer token wins over spoofed headers
	spoofed := map[string]string{"Authorization": "Bearer garbage", "X-User-Role": "admin"}
	_, w = ExecuteRequestAndParse(t, env.Router, http.MethodPost, "/api/notifications", map[string]any{"title": "Hello"}, spoofed)
	require.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestNotifications(t *testing.T) {
	env := SetupTestEnv(t)

	_, w := ExecuteRequestAndParse(t, env.Router, http.MethodPost, "/api/notifications", map[string]any{}, priyaHeaders)
	require.Equal(t, http.StatusForbidden, w.Code)

	_, w = ExecuteRequestAndParse(t, env.Router, http.MethodPost, "/api/notifications", map[string]any{"type": "party"}, adminHeaders)
	require.Equal(t, http.StatusUnprocessableEntity, w.Code)

	resp, w := ExecuteRequestAndParse(t, env.Router, http.MethodPost, "/api/notifications",
		helpers.CreateNotificationRequest{UserID: seed.RohanUserID, Type: "info", Title: "Only Rohan"}, adminHeaders)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	private := resp["data"].(map[string]any)["notification_id"].(string)

	resp, w = ExecuteRequestAndParse(t, env.Router, http.MethodPost, "/api/notifications", map[string]any{}, adminHeaders)
	require.Equal(t, http.StatusCreated, w.Code)
	broadcast := resp["data"].(map[string]any)
	require.Equal(t, "all", broadcast["user_id"])
	require.Equal(t, "Update", broadcast["title"])

	resp, w = ExecuteRequestAndParse(t, env.Router, http.MethodGet, "/api/notifications", nil, priyaHeaders)
	require.Equal(t, http.StatusOK, w.Code)
	require.Len(t, resp["data"], 1, "priya sees the broadcast only")

	_, w = ExecuteRequestAndParse(t, env.Router, http.MethodPatch, "/api/notifications/"+private+"/read", nil, priyaHeaders)
	require.Equal(t, http.StatusForbidden, w.Code)

	rohan := map[string]string{"X-User-Role": "bidder", "X-User-Id": seed.RohanUserID}
	resp, w = ExecuteRequestAndParse(t, env.Router, http.MethodPatch, "/api/notifications/"+private+"/read", nil, rohan)
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, true, resp["data"].(map[string]any)["read"])

	_, w = ExecuteRequestAndParse(t, env.Router, http.MethodPatch, "/api/notifications/notif-missing/read", nil, adminHeaders)
	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestHealthAndCORS(t *testing.T) {
	env := SetupTestEnv(t)

	resp, w := ExecuteRequestAndParse(t, env.Router, http.MethodGet, "/healthz", nil, nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "healthy", resp["message"])

	req := httptest.NewRequest(http.MethodOptions, "/api/players", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	req.Header.Set("Access-Control-Request-Method", "POST")
	rec := httptest.NewRecorder()
	env.Router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusNoContent, rec.Code)
	require.Equal(t, "http://localhost:3000", rec.Header().Get("Access-Control-Allow-Origin"))
	require.Contains(t, rec.Header().Get("Access-Control-Allow-Headers"), "X-User-Role")
}
