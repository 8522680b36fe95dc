package handler

import (
	"net/http"

	auction "auction-spot/internal/auctionService"
	"auction-spot/internal/auth"
	model "auction-spot/internal/models"
	"auction-spot/services/helpers"
	"auction-spot/utils"

	"github.com/gin-gonic/gin"
)

type AuctionServiceInterface interface {
	ListAuctions() ([]model.Auction, error)
	GetAuction(auctionID string) (model.Auction, error)
	CreateAuction(principal auth.Principal, in auction.CreateInput) (model.Auction, error)
	UpdateStatus(principal auth.Principal, auctionID, status string) (model.Auction, error)
	UpdateRules(principal auth.Principal, auctionID string, patch auction.RulesPatch) (model.AuctionRules, error)
	Timeline(auctionID string) ([]model.TimelineStage, error)
}

type AuctionHandler struct {
	service AuctionServiceInterface
}

func NewAuctionHandler(service AuctionServiceInterface) *AuctionHandler {
	return &AuctionHandler{service: service}
}

// ListAuctionsHandler handles GET /api/auctions
func (h *AuctionHandler) ListAuctionsHandler(c *gin.Context) {
	auctions, err := h.service.ListAuctions()
	if err != nil {
		helpers.RespondError(c, "ListAuctionsHandler", "error listing auctions", err, nil)
		return
	}
	if auctions == nil {
		auctions = []model.Auction{}
	}
	utils.JSONResponse(c, http.StatusOK, auctions, "auctions retrieved successfully")
}

// GetAuctionHandler handles GET /api/auctions/:auction_id
func (h *AuctionHandler) GetAuctionHandler(c *gin.Context) {
	auctionID := c.Param("auction_id")
	a, err := h.service.GetAuction(auctionID)
	if err != nil {
		helpers.RespondError(c, "GetAuctionHandler", "error retrieving auction", err, map[string]any{"auction_id": auctionID})
		return
	}
	utils.JSONResponse(c, http.StatusOK, a, "auction retrieved successfully")
}

// CreateAuctionHandler handles POST /api/auctions
func (h *AuctionHandler) CreateAuctionHandler(c *gin.Context) {
	var req helpers.CreateAuctionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "CreateAuctionHandler", err)
		return
	}

	a, err := h.service.CreateAuction(auth.PrincipalFrom(c), req.ToInput())
	if err != nil {
		helpers.RespondError(c, "CreateAuctionHandler", "failed to create auction", err, map[string]any{"name": req.Name})
		return
	}

	utils.JSONResponse(c, http.StatusCreated, a, "auction created successfully")
	helpers.LogSuccess("CreateAuctionHandler", "auction created successfully", map[string]any{
		"auction_id": a.AuctionID,
		"players":    len(a.PlayerIDs),
	})
}

// UpdateStatusHandler handles PATCH /api/auctions/:auction_id/status
func (h *AuctionHandler) UpdateStatusHandler(c *gin.Context) {
	auctionID := c.Param("auction_id")

	var req helpers.UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "UpdateStatusHandler", err)
		return
	}

	a, err := h.service.UpdateStatus(auth.PrincipalFrom(c), auctionID, req.Status)
	if err != nil {
		helpers.RespondError(c, "UpdateStatusHandler", "failed to update status", err, map[string]any{
			"auction_id": auctionID,
			"status":     req.Status,
		})
		return
	}

	utils.JSONResponse(c, http.StatusOK, a, "auction status updated successfully")
	helpers.LogSuccess("UpdateStatusHandler", "auction status updated successfully", map[string]any{
		"auction_id": auctionID,
		"status":     a.Status,
	})
}

// UpdateRulesHandler handles PATCH /api/auctions/:auction_id/rules
func (h *AuctionHandler) UpdateRulesHandler(c *gin.Context) {
	auctionID := c.Param("auction_id")

	var req helpers.RulesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "UpdateRulesHandler", err)
		return
	}

	rules, err := h.service.UpdateRules(auth.PrincipalFrom(c), auctionID, req.ToPatch())
	if err != nil {
		helpers.RespondError(c, "UpdateRulesHandler", "failed to update rules", err, map[string]any{"auction_id": auctionID})
		return
	}

	utils.JSONResponse(c, http.StatusOK, rules, "auction rules updated successfully")
	helpers.LogSuccess("UpdateRulesHandler", "auction rules updated successfully", map[string]any{"auction_id": auctionID})
}

// TimelineHandler handles GET /api/auctions/:auction_id/timeline
func (h *AuctionHandler) TimelineHandler(c *gin.Context) {
	auctionID := c.Param("auction_id")
	stages, err := h.service.Timeline(auctionID)
	if err != nil {
		helpers.RespondError(c, "TimelineHandler", "error retrieving timeline", err, map[string]any{"auction_id": auctionID})
		return
	}
	utils.JSONResponse(c, http.StatusOK, stages, "timeline retrieved successfully")
}
