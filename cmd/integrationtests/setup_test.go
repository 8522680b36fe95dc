package integrationtests

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	auction "auction-spot/internal/auctionService"
	"auction-spot/internal/auth"
	bidding "auction-spot/internal/biddingService"
	catalog "auction-spot/internal/catalogService"
	"auction-spot/internal/livefeed"
	model "auction-spot/internal/models"
	notification "auction-spot/internal/notificationService"
	"auction-spot/internal/repository"
	"auction-spot/internal/seed"
	"auction-spot/internal/server"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

const seededPlayers = 6

var (
	adminHeaders = map[string]string{auth.HeaderUserRole: "admin", auth.HeaderUserID: seed.AdminUserID}
	priyaHeaders = map[string]string{auth.HeaderUserRole: "bidder", auth.HeaderUserID: seed.PriyaUserID}
)

// TestEnv is a fully wired application over a seeded in-memory repository
type TestEnv struct {
	Router *gin.Engine
	Repo   *repository.MemoryRepo
	Hub    *livefeed.Hub
	JWT    auth.JWT
}

func testRules() model.AuctionRules {
	return model.AuctionRules{
		MinBidIncrement:      5000,
		MaxPlayersPerTeam:    11,
		InitialBudget:        500000,
		BidTimeout:           30,
		AllowAutoBid:         true,
		MaxAutoBidPercentage: 40,
		LeagueName:           "Integration League",
	}
}

// SetupTestEnv initializes the router with the demo dataset for integration testing.
func SetupTestEnv(t *testing.T) *TestEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	repo := repository.NewMemoryRepo()
	require.NoError(t, seed.Populate(repo, seededPlayers, 1, testRules()))

	ctx, cancel := context.WithCancel(context.Background())
	hub := livefeed.NewHub(ctx)
	t.Cleanup(func() {
		cancel()
		hub.Shutdown()
	})

	jwt := auth.JWT{Secret: []byte("integration-secret"), TokenTTL: time.Hour}
	router := server.SetupRouter(server.Services{
		Auth:          auth.NewService(repo, jwt),
		Catalog:       catalog.NewCatalogService(repo),
		Auctions:      auction.NewAuctionService(repo, hub, testRules()),
		Bidding:       bidding.NewBiddingService(repo, hub),
		Notifications: notification.NewNotificationService(repo),
		Live:          hub,
	}, server.Options{JWT: jwt, AllowedOrigins: []string{"*"}})

	return &TestEnv{Router: router, Repo: repo, Hub: hub, JWT: jwt}
}

// ExecuteRequest executes an HTTP request and returns the response recorder.
func ExecuteRequest(t *testing.T, router *gin.Engine, method, url string, body []byte, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, url, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

// ExecuteRequestAndParse executes an HTTP request and decodes the response envelope
func ExecuteRequestAndParse(t *testing.T, router *gin.Engine, method, url string, body any, headers map[string]string) (map[string]any, *httptest.ResponseRecorder) {
	t.Helper()

	var reqBody []byte
	switch v := body.(type) {
	case nil:
	case string:
		reqBody = []byte(v)
	case []byte:
		reqBody = v
	default:
		var err error
		reqBody, err = json.Marshal(v)
		require.NoError(t, err, "failed to marshal body")
	}

	w := ExecuteRequest(t, router, method, url, reqBody, headers)

	var resp map[string]any
	if w.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp), "failed to unmarshal response")
	}
	return resp, w
}

// basePrice reads a seeded player's base price through the API
func basePrice(t *testing.T, env *TestEnv, playerID string) int64 {
	t.Helper()
	resp, w := ExecuteRequestAndParse(t, env.Router, "GET", "/api/players/"+playerID, nil, nil)
	require.Equal(t, 200, w.Code)
	return int64(resp["data"].(map[string]any)["base_price"].(float64))
}
