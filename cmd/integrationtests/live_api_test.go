package integrationtests

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"auction-spot/internal/livefeed"
	"auction-spot/internal/seed"
	"auction-spot/services/helpers"

	"github.com/stretchr/testify/require"
	"nhooyr.io/websocket"
	"nhooyr.io/websocket/wsjson"
)

type liveEvent struct {
	Type      livefeed.EventType `json:"type"`
	AuctionID string             `json:"auction_id"`
	Payload   map[string]any     `json:"payload"`
}

func TestLiveFeed(t *testing.T) {
	env := SetupTestEnv(t)
	srv := httptest.NewServer(env.Router)
	defer srv.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	wsURL := "ws" + strings.TrimPrefix(srv.URL, "http") + "/api/auctions/" + seed.AuctionID + "/live"
	conn, _, err := websocket.Dial(ctx, wsURL, nil)
	require.NoError(t, err)
	defer conn.Close(websocket.StatusNormalClosure, "")

	var ev liveEvent
	require.NoError(t, wsjson.Read(ctx, conn, &ev))
	require.Equal(t, livefeed.EventSnapshot, ev.Type)
	require.Equal(t, seed.AuctionID, ev.Payload["auction_id"])
	require.Equal(t, "live", ev.Payload["status"])

	base := basePrice(t, env, "player-5")
	_, w := ExecuteRequestAndParse(t, env.Router, http.MethodPost, bidsURL,
		helpers.PlaceBidRequest{PlayerID: "player-5", BidderID: seed.PriyaUserID, Amount: base}, nil)
	require.Equal(t, http.StatusCreated, w.Code)

	require.NoError(t, wsjson.Read(ctx, conn, &ev))
	require.Equal(t, livefeed.EventBidPlaced, ev.Type)
	require.Equal(t, "player-5", ev.Payload["player_id"])
	require.Equal(t, float64(base), ev.Payload["amount"])

	_, w = ExecuteRequestAndParse(t, env.Router, http.MethodPost, closeURL("player-5"), nil, adminHeaders)
	require.Equal(t, http.StatusOK, w.Code)

	require.NoError(t, wsjson.Read(ctx, conn, &ev))
	require.Equal(t, livefeed.EventPlayerSold, ev.Type)
	require.Equal(t, seed.BlitzTeamID, ev.Payload["team"].(map[string]any)["team_id"])
}

func TestLiveFeed_UnknownAuction(t *testing.T) {
	env := SetupTestEnv(t)
	srv := httptest.NewServer(env.Router)
	defer srv.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	wsURL := "ws" + strings.TrimPrefix(srv.URL, "http") + "/api/auctions/missing/live"
	_, resp, err := websocket.Dial(ctx, wsURL, nil)
	require.Error(t, err)
	require.NotNil(t, resp)
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestLiveFeed_ClosedOnShutdown(t *testing.T) {
	env := SetupTestEnv(t)
	srv := httptest.NewServer(env.Router)
	defer srv.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	wsURL := "ws" + strings.TrimPrefix(srv.URL, "http") + "/api/auctions/" + seed.AuctionID + "/live"
	conn, _, err := websocket.Dial(ctx, wsURL, nil)
	require.NoError(t, err)
	defer conn.Close(websocket.StatusNormalClosure, "")

	var ev liveEvent
	require.NoError(t, wsjson.Read(ctx, conn, &ev))

	env.Hub.Shutdown()

	err = wsjson.Read(ctx, conn, &ev)
	require.Equal(t, websocket.StatusGoingAway, websocket.CloseStatus(err))
}
