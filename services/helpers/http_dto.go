package helpers

import (
	"time"

	auction "auction-spot/internal/auctionService"
	catalog "auction-spot/internal/catalogService"
	"auction-spot/internal/models"
	notification "auction-spot/internal/notificationService"
)

// Request/Response DTOs

type LoginRequest struct {
	Email string `json:"email" binding:"required,email"`
}

type LoginResponse struct {
	Token     string      `json:"token"`
	ExpiresAt string      `json:"expires_at"`
	User      models.User `json:"user"`
}

type GameRatingRequest struct {
	Game   string `json:"game" binding:"required"`
	Rating int    `json:"rating" binding:"min=0,max=10"`
}

type CreatePlayerRequest struct {
	Name           string              `json:"name" binding:"required"`
	Entity         string              `json:"entity"`
	Department     string              `json:"department"`
	Location       string              `json:"location"`
	Criteria       string              `json:"criteria"`
	Gender         string              `json:"gender"`
	EmploymentType string              `json:"employment_type"`
	Games          []GameRatingRequest `json:"games" binding:"omitempty,dive"`
	IsCaptain      bool                `json:"is_captain"`
	Avatar         string              `json:"avatar" binding:"omitempty,url"`
	Brief          string              `json:"brief"`
	SportCategory  string              `json:"sport_category"`
	BasePrice      int64               `json:"base_price" binding:"required,gt=0"`
}

func (r CreatePlayerRequest) ToInput() catalog.PlayerInput {
	return catalog.PlayerInput{
		Name:           r.Name,
		Entity:         r.Entity,
		Department:     r.Department,
		Location:       r.Location,
		Criteria:       r.Criteria,
		Gender:         r.Gender,
		EmploymentType: r.EmploymentType,
		Games:          toGameRatings(r.Games),
		IsCaptain:      r.IsCaptain,
		Avatar:         r.Avatar,
		Brief:          r.Brief,
		SportCategory:  r.SportCategory,
		BasePrice:      r.BasePrice,
	}
}

type UpdatePlayerRequest struct {
	Name           *string             `json:"name" binding:"omitempty,min=1"`
	Entity         *string             `json:"entity"`
	Department     *string             `json:"department"`
	Location       *string             `json:"location"`
	Criteria       *string             `json:"criteria"`
	Gender         *string             `json:"gender"`
	EmploymentType *string             `json:"employment_type"`
	Games          []GameRatingRequest `json:"games" binding:"omitempty,dive"`
	IsCaptain      *bool               `json:"is_captain"`
	Avatar         *string             `json:"avatar"`
	Brief          *string             `json:"brief"`
	SportCategory  *string             `json:"sport_category"`
	BasePrice      *int64              `json:"base_price" binding:"omitempty,gt=0"`
}

func (r UpdatePlayerRequest) ToPatch() catalog.PlayerPatch {
	return catalog.PlayerPatch{
		Name:           r.Name,
		Entity:         r.Entity,
		Department:     r.Department,
		Location:       r.Location,
		Criteria:       r.Criteria,
		Gender:         r.Gender,
		EmploymentType: r.EmploymentType,
		Games:          toGameRatings(r.Games),
		IsCaptain:      r.IsCaptain,
		Avatar:         r.Avatar,
		Brief:          r.Brief,
		SportCategory:  r.SportCategory,
		BasePrice:      r.BasePrice,
	}
}

func toGameRatings(in []GameRatingRequest) []models.GameRating {
	if in == nil {
		return nil
	}
	out := make([]models.GameRating, 0, len(in))
	for _, g := range in {
		out = append(out, models.GameRating{Game: g.Game, Rating: g.Rating})
	}
	return out
}

type PlayersResponse struct {
	Players []models.Player `json:"players"`
	Count   int             `json:"count"`
}

type RulesRequest struct {
	MinBidIncrement      *int64   `json:"min_bid_increment" binding:"omitempty,min=0"`
	MaxPlayersPerTeam    *int     `json:"max_players_per_team" binding:"omitempty,min=0"`
	InitialBudget        *int64   `json:"initial_budget" binding:"omitempty,min=0"`
	BidTimeout           *int     `json:"bid_timeout" binding:"omitempty,min=0"`
	AllowAutoBid         *bool    `json:"allow_auto_bid"`
	MaxAutoBidPercentage *float64 `json:"max_auto_bid_percentage" binding:"omitempty,min=0,max=100"`
	LeagueName           *string  `json:"league_name"`
}

func (r RulesRequest) ToPatch() auction.RulesPatch {
	return auction.RulesPatch{
		MinBidIncrement:      r.MinBidIncrement,
		MaxPlayersPerTeam:    r.MaxPlayersPerTeam,
		InitialBudget:        r.InitialBudget,
		BidTimeout:           r.BidTimeout,
		AllowAutoBid:         r.AllowAutoBid,
		MaxAutoBidPercentage: r.MaxAutoBidPercentage,
		LeagueName:           r.LeagueName,
	}
}

// CreateAuctionRequest carries full rules; omitted rules fall back to the configured defaults
type CreateAuctionRequest struct {
	Name          string               `json:"name"`
	Description   string               `json:"description"`
	PlayerIDs     []string             `json:"player_ids"`
	Rules         *models.AuctionRules `json:"rules"`
	ScheduledTime *time.Time           `json:"scheduled_time"`
}

func (r CreateAuctionRequest) ToInput() auction.CreateInput {
	return auction.CreateInput{
		Name:          r.Name,
		Description:   r.Description,
		PlayerIDs:     r.PlayerIDs,
		Rules:         r.Rules,
		ScheduledTime: r.ScheduledTime,
	}
}

type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

type PlaceBidRequest struct {
	PlayerID string `json:"player_id" binding:"required"`
	BidderID string `json:"bidder_id" binding:"required"`
	Amount   int64  `json:"amount" binding:"required,gt=0"`
}

type PlaceBidResponse struct {
	Bid     models.Bid  `json:"bid"`
	AutoBid *models.Bid `json:"auto_bid"`
}

type ClosePlayerResponse struct {
	Player models.Player `json:"player"`
	Team   models.Team   `json:"team"`
}

type CreateAutoBidRequest struct {
	PlayerID  string `json:"player_id" binding:"required"`
	TeamID    string `json:"team_id" binding:"required"`
	MaxAmount int64  `json:"max_amount" binding:"required,gt=0"`
}

type CreateNotificationRequest struct {
	UserID  string `json:"user_id"`
	Type    string `json:"type" binding:"omitempty,oneof=bid outbid won auction_start auction_end info"`
	Title   string `json:"title"`
	Message string `json:"message"`
}

func (r CreateNotificationRequest) ToInput() notification.CreateInput {
	return notification.CreateInput{
		UserID:  r.UserID,
		Type:    models.NotificationType(r.Type),
		Title:   r.Title,
		Message: r.Message,
	}
}
