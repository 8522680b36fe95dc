package handler

import (
	"net/http"

	"auction-spot/internal/auth"
	bidding "auction-spot/internal/biddingService"
	model "auction-spot/internal/models"
	"auction-spot/services/helpers"
	"auction-spot/utils"

	"github.com/gin-gonic/gin"
)

//go:generate mockgen -destination=mock_bidding_handler.go -package=handler auction-spot/services/bidding/handler BiddingServiceInterface

type BiddingServiceInterface interface {
	PlaceBid(auctionID, playerID, bidderID string, amount int64) (bidding.PlaceBidResult, error)
	GetBidsForAuction(auctionID string) ([]model.Bid, error)
	ClosePlayer(principal auth.Principal, auctionID, playerID string) (model.Player, model.Team, error)
	GetAutoBids(auctionID string) ([]model.AutoBidConfig, error)
	CreateAutoBid(auctionID, playerID, teamID string, maxAmount int64) (model.AutoBidConfig, error)
}

type BiddingHandler struct {
	service BiddingServiceInterface
}

func NewBiddingHandler(service BiddingServiceInterface) *BiddingHandler {
	return &BiddingHandler{service: service}
}

// PlaceBidHandler handles POST /api/auctions/:auction_id/bids
func (h *BiddingHandler) PlaceBidHandler(c *gin.Context) {
	auctionID := c.Param("auction_id")

	var req helpers.PlaceBidRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "PlaceBidHandler", err)
		return
	}

	result, err := h.service.PlaceBid(auctionID, req.PlayerID, req.BidderID, req.Amount)
	if err != nil {
		helpers.RespondError(c, "PlaceBidHandler", "failed to place bid", err, map[string]any{
			"auction_id": auctionID,
			"player_id":  req.PlayerID,
			"bidder_id":  req.BidderID,
			"amount":     req.Amount,
		})
		return
	}

	resp := helpers.PlaceBidResponse{Bid: result.Bid, AutoBid: result.AutoBid}
	utils.JSONResponse(c, http.StatusCreated, resp, "bid placed successfully")
	helpers.LogSuccess("PlaceBidHandler", "bid placed successfully", map[string]any{
		"bid_id":     result.Bid.BidID,
		"auction_id": auctionID,
		"player_id":  req.PlayerID,
		"bidder_id":  req.BidderID,
		"amount":     req.Amount,
		"auto_bid":   result.AutoBid != nil,
	})
}

// GetBidsHandler handles GET /api/auctions/:auction_id/bids
func (h *BiddingHandler) GetBidsHandler(c *gin.Context) {
	auctionID := c.Param("auction_id")
	bids, err := h.service.GetBidsForAuction(auctionID)
	if err != nil {
		helpers.RespondError(c, "GetBidsHandler", "error retrieving bids", err, map[string]any{"auction_id": auctionID})
		return
	}

	if bids == nil {
		bids = []model.Bid{}
	}

	utils.JSONResponse(c, http.StatusOK, bids, "bids retrieved successfully")
	helpers.LogSuccess("GetBidsHandler", "bids retrieved successfully", map[string]any{
		"auction_id": auctionID,
		"count":      len(bids),
	})
}

// ClosePlayerHandler handles POST /api/auctions/:auction_id/players/:player_id/close
func (h *BiddingHandler) ClosePlayerHandler(c *gin.Context) {
	auctionID := c.Param("auction_id")
	playerID := c.Param("player_id")

	player, team, err := h.service.ClosePlayer(auth.PrincipalFrom(c), auctionID, playerID)
	if err != nil {
		helpers.RespondError(c, "ClosePlayerHandler", "failed to close player", err, map[string]any{
			"auction_id": auctionID,
			"player_id":  playerID,
		})
		return
	}

	resp := helpers.ClosePlayerResponse{Player: player, Team: team}
	utils.JSONResponse(c, http.StatusOK, resp, "player allocated successfully")
	helpers.LogSuccess("ClosePlayerHandler", "player allocated successfully", map[string]any{
		"auction_id": auctionID,
		"player_id":  playerID,
		"team_id":    team.TeamID,
		"sold_to":    player.SoldTo,
	})
}

// GetAutoBidsHandler handles GET /api/auctions/:auction_id/autobids
func (h *BiddingHandler) GetAutoBidsHandler(c *gin.Context) {
	auctionID := c.Param("auction_id")
	configs, err := h.service.GetAutoBids(auctionID)
	if err != nil {
		helpers.RespondError(c, "GetAutoBidsHandler", "error retrieving auto-bids", err, map[string]any{"auction_id": auctionID})
		return
	}

	if configs == nil {
		configs = []model.AutoBidConfig{}
	}

	utils.JSONResponse(c, http.StatusOK, configs, "auto-bids retrieved successfully")
	helpers.LogSuccess("GetAutoBidsHandler", "auto-bids retrieved successfully", map[string]any{
		"auction_id": auctionID,
		"count":      len(configs),
	})
}

// CreateAutoBidHandler handles POST /api/auctions/:auction_id/autobids
func (h *BiddingHandler) CreateAutoBidHandler(c *gin.Context) {
	auctionID := c.Param("auction_id")

	var req helpers.CreateAutoBidRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "CreateAutoBidHandler", err)
		return
	}

	cfg, err := h.service.CreateAutoBid(auctionID, req.PlayerID, req.TeamID, req.MaxAmount)
	if err != nil {
		helpers.RespondError(c, "CreateAutoBidHandler", "failed to create auto-bid", err, map[string]any{
			"auction_id": auctionID,
			"player_id":  req.PlayerID,
			"team_id":    req.TeamID,
		})
		return
	}

	utils.JSONResponse(c, http.StatusCreated, cfg, "auto-bid created successfully")
	helpers.LogSuccess("CreateAutoBidHandler", "auto-bid created successfully", map[string]any{
		"auto_bid_id": cfg.AutoBidID,
		"auction_id":  auctionID,
		"team_id":     cfg.TeamID,
		"max_amount":  cfg.MaxAmount,
	})
}
