package handler

import (
	"context"
	"time"

	"auction-spot/internal/livefeed"
	model "auction-spot/internal/models"
	"auction-spot/services/helpers"
	"auction-spot/utils"

	"github.com/gin-gonic/gin"
	"nhooyr.io/websocket"
	"nhooyr.io/websocket/wsjson"
)

const writeTimeout = 5 * time.Second

type AuctionGetter interface {
	GetAuction(auctionID string) (model.Auction, error)
}

type Subscriber interface {
	Subscribe(auctionID string) (<-chan livefeed.Event, func())
}

type LiveHandler struct {
	auctions       AuctionGetter
	feed           Subscriber
	originPatterns []string
}

// NewLiveHandler creates a LiveHandler. originPatterns are host patterns
// accepted for cross-origin websocket upgrades, e.g. "localhost:*".
func NewLiveHandler(auctions AuctionGetter, feed Subscriber, originPatterns []string) *LiveHandler {
	return &LiveHandler{auctions: auctions, feed: feed, originPatterns: originPatterns}
}

// LiveHandler handles GET /api/auctions/:auction_id/live (websocket)
func (h *LiveHandler) LiveHandler(c *gin.Context) {
	auctionID := c.Param("auction_id")
	a, err := h.auctions.GetAuction(auctionID)
	if err != nil {
		helpers.RespondError(c, "LiveHandler", "error retrieving auction", err, map[string]any{"auction_id": auctionID})
		return
	}

	conn, err := websocket.Accept(c.Writer, c.Request, &websocket.AcceptOptions{
		OriginPatterns: h.originPatterns,
	})
	if err != nil {
		utils.Warn("LiveHandler: websocket upgrade failed", map[string]any{"auction_id": auctionID, "error": err.Error()})
		return
	}
	defer conn.Close(websocket.StatusInternalError, "unexpected close")

	events, unsubscribe := h.feed.Subscribe(auctionID)
	defer unsubscribe()

	// clients only listen; CloseRead handles control frames and cancels ctx when the peer goes away
	ctx := conn.CloseRead(c.Request.Context())

	helpers.LogSuccess("LiveHandler", "subscriber connected", map[string]any{"auction_id": auctionID})

	snapshot := livefeed.Event{Type: livefeed.EventSnapshot, AuctionID: auctionID, Payload: a, Timestamp: time.Now().UTC()}
	if err := writeEvent(ctx, conn, snapshot); err != nil {
		return
	}

	for {
		select {
		case <-ctx.Done():
			conn.Close(websocket.StatusNormalClosure, "")
			return
		case ev, ok := <-events:
			if !ok {
				conn.Close(websocket.StatusGoingAway, "server shutting down")
				return
			}
			if err := writeEvent(ctx, conn, ev); err != nil {
				utils.Debug("LiveHandler: write failed", map[string]any{"auction_id": auctionID, "error": err.Error()})
				return
			}
		}
	}
}

func writeEvent(ctx context.Context, conn *websocket.Conn, ev livefeed.Event) error {
	ctx, cancel := context.WithTimeout(ctx, writeTimeout)
	defer cancel()
	return wsjson.Write(ctx, conn, ev)
}
