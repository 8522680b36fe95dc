package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"auction-spot/internal/auth"
	catalog "auction-spot/internal/catalogService"
	model "auction-spot/internal/models"
	"auction-spot/internal/repository"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func setupRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	repo := repository.NewMemoryRepo()
	for _, p := range []model.Player{
		{PlayerID: "p1", Name: "Kabir Menon", Location: "Delhi", BasePrice: 10000, Games: []model.GameRating{{Game: "Hockey", Rating: 7}}},
		{PlayerID: "p2", Name: "Ishita Desai", Location: "Pune", BasePrice: 20000, Games: []model.GameRating{{Game: "Tennis", Rating: 9}}},
	} {
		require.NoError(t, repo.AddPlayer(p))
	}

	h := NewCatalogHandler(catalog.NewCatalogService(repo))
	router := gin.New()
	router.Use(func(c *gin.Context) {
		if c.GetHeader("X-Admin") == "1" {
			auth.SetPrincipal(c, auth.Principal{UserID: "admin", Role: model.RoleAdmin})
		}
		c.Next()
	})
	router.GET("/players", h.ListPlayersHandler)
	router.GET("/players/:player_id", h.GetPlayerHandler)
	router.POST("/players", h.CreatePlayerHandler)
	router.GET("/summary", h.SummaryHandler)
	return router
}

func TestListPlayersHandler(t *testing.T) {
	router := setupRouter(t)

	tests := []struct {
		name           string
		query          string
		expectedStatus int
		expectedNames  []string
	}{
		{name: "default", query: "", expectedStatus: http.StatusOK, expectedNames: []string{"Ishita Desai", "Kabir Menon"}},
		{name: "game_filter", query: "?game=Hockey", expectedStatus: http.StatusOK, expectedNames: []string{"Kabir Menon"}},
		{name: "search", query: "?search=pune", expectedStatus: http.StatusOK, expectedNames: []string{"Ishita Desai"}},
		{name: "limit", query: "?limit=1", expectedStatus: http.StatusOK, expectedNames: []string{"Ishita Desai"}},
		{name: "negative_limit", query: "?limit=-1", expectedStatus: http.StatusUnprocessableEntity},
		{name: "non_numeric_limit", query: "?limit=ten", expectedStatus: http.StatusUnprocessableEntity},
		{name: "unknown_sort", query: "?sort=age", expectedStatus: http.StatusUnprocessableEntity},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/players"+tc.query, nil)
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			require.Equal(t, tc.expectedStatus, w.Code)
			if tc.expectedStatus != http.StatusOK {
				return
			}

			var resp struct {
				Data struct {
					Players []model.Player `json:"players"`
					Count   int            `json:"count"`
				} `json:"data"`
			}
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			require.Equal(t, len(tc.expectedNames), resp.Data.Count)
			names := []string{}
			for _, p := range resp.Data.Players {
				names = append(names, p.Name)
			}
			require.Equal(t, tc.expectedNames, names)
		})
	}
}

func TestCreatePlayerHandler(t *testing.T) {
	router := setupRouter(t)

	tests := []struct {
		name           string
		body           string
		admin          bool
		expectedStatus int
	}{
		{name: "success", body: `{"name":"Trisha Nair","base_price":12000}`, admin: true, expectedStatus: http.StatusCreated},
		{name: "not_admin", body: `{"name":"Trisha Nair","base_price":12000}`, expectedStatus: http.StatusForbidden},
		{name: "missing_price", body: `{"name":"Trisha Nair"}`, admin: true, expectedStatus: http.StatusUnprocessableEntity},
		{name: "rating_out_of_range", body: `{"name":"T","base_price":1,"games":[{"game":"Chess","rating":11}]}`, admin: true, expectedStatus: http.StatusUnprocessableEntity},
		{name: "bad_avatar", body: `{"name":"T","base_price":1,"avatar":"not a url"}`, admin: true, expectedStatus: http.StatusUnprocessableEntity},
		{name: "malformed", body: `{"name":`, admin: true, expectedStatus: http.StatusBadRequest},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/players", strings.NewReader(tc.body))
			req.Header.Set("Content-Type", "application/json")
			if tc.admin {
				req.Header.Set("X-Admin", "1")
			}
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			require.Equal(t, tc.expectedStatus, w.Code, w.Body.String())
		})
	}
}

func TestGetPlayerHandler_NotFound(t *testing.T) {
	router := setupRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/players/ghost", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusNotFound, w.Code)
	var resp map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Equal(t, "player not found", resp["message"])
}
