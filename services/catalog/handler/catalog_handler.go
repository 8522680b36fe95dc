package handler

import (
	"fmt"
	"net/http"
	"strconv"

	"auction-spot/internal/auctionerrors"
	"auction-spot/internal/auth"
	catalog "auction-spot/internal/catalogService"
	model "auction-spot/internal/models"
	"auction-spot/services/helpers"
	"auction-spot/utils"

	"github.com/gin-gonic/gin"
)

type CatalogServiceInterface interface {
	ListPlayers(params catalog.ListPlayersParams) ([]model.Player, error)
	GetPlayer(playerID string) (model.Player, error)
	CreatePlayer(principal auth.Principal, in catalog.PlayerInput) (model.Player, error)
	UpdatePlayer(principal auth.Principal, playerID string, patch catalog.PlayerPatch) (model.Player, error)
	ListTeams() ([]catalog.TeamView, error)
	GetTeam(teamID string) (catalog.TeamView, error)
	Summary() (model.Summary, error)
	HowItWorks() []catalog.Stage
}

type CatalogHandler struct {
	service CatalogServiceInterface
}

func NewCatalogHandler(service CatalogServiceInterface) *CatalogHandler {
	return &CatalogHandler{service: service}
}

// ListPlayersHandler handles GET /api/players?search=&game=&limit=&sort=
func (h *CatalogHandler) ListPlayersHandler(c *gin.Context) {
	params := catalog.ListPlayersParams{
		Search: c.Query("search"),
		Game:   c.Query("game"),
		Sort:   c.Query("sort"),
	}
	if raw := c.Query("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil || limit < 0 {
			helpers.RespondError(c, "ListPlayersHandler", "invalid limit",
				fmt.Errorf("%w - limit %q", auctionerrors.ErrInvalidInput, raw), nil)
			return
		}
		params.Limit = limit
	}

	players, err := h.service.ListPlayers(params)
	if err != nil {
		helpers.RespondError(c, "ListPlayersHandler", "error listing players", err, map[string]any{"search": params.Search})
		return
	}

	utils.JSONResponse(c, http.StatusOK, helpers.PlayersResponse{Players: players, Count: len(players)}, "players retrieved successfully")
	helpers.LogSuccess("ListPlayersHandler", "players retrieved successfully", map[string]any{"count": len(players)})
}

// GetPlayerHandler handles GET /api/players/:player_id
func (h *CatalogHandler) GetPlayerHandler(c *gin.Context) {
	playerID := c.Param("player_id")
	player, err := h.service.GetPlayer(playerID)
	if err != nil {
		helpers.RespondError(c, "GetPlayerHandler", "error retrieving player", err, map[string]any{"player_id": playerID})
		return
	}
	utils.JSONResponse(c, http.StatusOK, player, "player retrieved successfully")
}

// CreatePlayerHandler handles POST /api/players
func (h *CatalogHandler) CreatePlayerHandler(c *gin.Context) {
	var req helpers.CreatePlayerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "CreatePlayerHandler", err)
		return
	}

	player, err := h.service.CreatePlayer(auth.PrincipalFrom(c), req.ToInput())
	if err != nil {
		helpers.RespondError(c, "CreatePlayerHandler", "failed to create player", err, map[string]any{"name": req.Name})
		return
	}

	utils.JSONResponse(c, http.StatusCreated, player, "player created successfully")
	helpers.LogSuccess("CreatePlayerHandler", "player created successfully", map[string]any{
		"player_id":  player.PlayerID,
		"base_price": player.BasePrice,
	})
}

// UpdatePlayerHandler handles PUT /api/players/:player_id
func (h *CatalogHandler) UpdatePlayerHandler(c *gin.Context) {
	playerID := c.Param("player_id")

	var req helpers.UpdatePlayerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "UpdatePlayerHandler", err)
		return
	}

	player, err := h.service.UpdatePlayer(auth.PrincipalFrom(c), playerID, req.ToPatch())
	if err != nil {
		helpers.RespondError(c, "UpdatePlayerHandler", "failed to update player", err, map[string]any{"player_id": playerID})
		return
	}

	utils.JSONResponse(c, http.StatusOK, player, "player updated successfully")
	helpers.LogSuccess("UpdatePlayerHandler", "player updated successfully", map[string]any{"player_id": playerID})
}

// ListTeamsHandler handles GET /api/teams
func (h *CatalogHandler) ListTeamsHandler(c *gin.Context) {
	teams, err := h.service.ListTeams()
	if err != nil {
		helpers.RespondError(c, "ListTeamsHandler", "error listing teams", err, nil)
		return
	}
	utils.JSONResponse(c, http.StatusOK, teams, "teams retrieved successfully")
}

// GetTeamHandler handles GET /api/teams/:team_id
func (h *CatalogHandler) GetTeamHandler(c *gin.Context) {
	teamID := c.Param("team_id")
	team, err := h.service.GetTeam(teamID)
	if err != nil {
		helpers.RespondError(c, "GetTeamHandler", "error retrieving team", err, map[string]any{"team_id": teamID})
		return
	}
	utils.JSONResponse(c, http.StatusOK, team, "team retrieved successfully")
}

// SummaryHandler handles GET /api/analytics/summary
func (h *CatalogHandler) SummaryHandler(c *gin.Context) {
	summary, err := h.service.Summary()
	if err != nil {
		helpers.RespondError(c, "SummaryHandler", "error computing summary", err, nil)
		return
	}
	utils.JSONResponse(c, http.StatusOK, summary, "summary retrieved successfully")
}

// HowItWorksHandler handles GET /api/how-it-works
func (h *CatalogHandler) HowItWorksHandler(c *gin.Context) {
	utils.JSONResponse(c, http.StatusOK, h.service.HowItWorks(), "stages retrieved successfully")
}
