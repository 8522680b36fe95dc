package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"auction-spot/internal/auctionerrors"
	model "auction-spot/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
)

var testJWT = JWT{Secret: []byte("test-secret"), TokenTTL: time.Hour}

func TestJWT_SignAndVerify(t *testing.T) {
	token, expiresAt, err := testJWT.Sign(Principal{UserID: "user-admin", Role: model.RoleAdmin})
	require.NoError(t, err)
	require.NotEmpty(t, token)
	require.WithinDuration(t, time.Now().Add(time.Hour), expiresAt, time.Minute)

	p, err := testJWT.Verify(token)
	require.NoError(t, err)
	require.Equal(t, "user-admin", p.UserID)
	require.True(t, p.IsAdmin())
}

func TestJWT_VerifyRejects(t *testing.T) {
	valid, _, err := testJWT.Sign(Principal{UserID: "u1", Role: model.RoleBidder})
	require.NoError(t, err)

	expired, _, err := JWT{Secret: testJWT.Secret, TokenTTL: -time.Hour}.Sign(Principal{UserID: "u1", Role: model.RoleBidder})
	require.NoError(t, err)

	foreign := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		UserID:           "u1",
		Role:             "admin",
		RegisteredClaims: jwt.RegisteredClaims{Issuer: "someone-else", ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour))},
	})
	foreignToken, err := foreign.SignedString(testJWT.Secret)
	require.NoError(t, err)

	tests := []struct {
		name  string
		token string
		j     JWT
	}{
		{name: "wrong_secret", token: valid, j: JWT{Secret: []byte("other"), TokenTTL: time.Hour}},
		{name: "expired", token: expired, j: testJWT},
		{name: "wrong_issuer", token: foreignToken, j: testJWT},
		{name: "garbage", token: "not.a.token", j: testJWT},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := tc.j.Verify(tc.token)
			require.Error(t, err)
		})
	}
}

func TestPrincipal_RequireAdmin(t *testing.T) {
	require.NoError(t, Principal{UserID: "a", Role: model.RoleAdmin}.RequireAdmin())
	require.ErrorIs(t, Principal{UserID: "b", Role: model.RoleBidder}.RequireAdmin(), auctionerrors.ErrForbidden)
	require.ErrorIs(t, Guest().RequireAdmin(), auctionerrors.ErrForbidden)
}

func TestMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.Use(Middleware(testJWT))
	router.GET("/whoami", func(c *gin.Context) {
		p := PrincipalFrom(c)
		c.JSON(http.StatusOK, gin.H{"user_id": p.UserID, "role": p.Role})
	})

	token, _, err := testJWT.Sign(Principal{UserID: "user-priya", Role: model.RoleBidder})
	require.NoError(t, err)

	tests := []struct {
		name       string
		headers    map[string]string
		wantStatus int
		wantBody   string
	}{
		{
			name:       "guest",
			wantStatus: http.StatusOK,
			wantBody:   `{"role":"viewer","user_id":"guest"}`,
		},
		{
			name:       "headers",
			headers:    map[string]string{HeaderUserRole: "admin", HeaderUserID: "user-admin"},
			wantStatus: http.StatusOK,
			wantBody:   `{"role":"admin","user_id":"user-admin"}`,
		},
		{
			name:       "unknown_role_header_is_viewer",
			headers:    map[string]string{HeaderUserRole: "superuser"},
			wantStatus: http.StatusOK,
			wantBody:   `{"role":"viewer","user_id":"guest"}`,
		},
		{
			name:       "bearer_token",
			headers:    map[string]string{"Authorization": "Bearer " + token, HeaderUserRole: "admin"},
			wantStatus: http.StatusOK,
			wantBody:   `{"role":"bidder","user_id":"user-priya"}`,
		},
		{
			name:       "invalid_bearer_token",
			headers:    map[string]string{"Authorization": "Bearer nope"},
			wantStatus: http.StatusUnauthorized,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
			for k, v := range tc.headers {
				req.Header.Set(k, v)
			}
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			require.Equal(t, tc.wantStatus, w.Code)
			if tc.wantBody != "" {
				require.JSONEq(t, tc.wantBody, w.Body.String())
			}
		})
	}
}

type usersStub map[string]model.User

func (u usersStub) GetUserByEmail(email string) (model.User, error) {
	if user, ok := u[email]; ok {
		return user, nil
	}
	return model.User{}, auctionerrors.ErrUserNotFound
}

func TestService_Login(t *testing.T) {
	svc := NewService(usersStub{
		"admin@auctionspot.in": {UserID: "user-admin", Email: "admin@auctionspot.in", Role: model.RoleAdmin},
	}, testJWT)

	res, err := svc.Login("  admin@auctionspot.in ")
	require.NoError(t, err)
	require.Equal(t, "user-admin", res.User.UserID)

	p, err := testJWT.Verify(res.Token)
	require.NoError(t, err)
	require.Equal(t, model.RoleAdmin, p.Role)

	_, err = svc.Login("nobody@auctionspot.in")
	require.ErrorIs(t, err, auctionerrors.ErrUnauthorized)
	require.NotErrorIs(t, err, auctionerrors.ErrUserNotFound)

	_, err = svc.Login("")
	require.ErrorIs(t, err, auctionerrors.ErrInvalidInput)
}
