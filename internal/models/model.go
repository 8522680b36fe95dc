package models

import "time"

// Role is the access level of a user
type Role string

const (
	RoleAdmin  Role = "admin"
	RoleBidder Role = "bidder"
	RoleViewer Role = "viewer"
)

// ParseRole returns the matching Role, or RoleViewer for unknown values
func ParseRole(s string) Role {
	switch Role(s) {
	case RoleAdmin, RoleBidder, RoleViewer:
		return Role(s)
	default:
		return RoleViewer
	}
}

// User represents a participant of the auction platform
type User struct {
	UserID string `json:"user_id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Role   Role   `json:"role"`
	TeamID string `json:"team_id,omitempty"`
	Avatar string `json:"avatar"`
}

// GameRating is a player's rating (1-10) in one game
type GameRating struct {
	Game   string `json:"game"`
	Rating int    `json:"rating"`
}

// Player represents a player that can be auctioned
type Player struct {
	PlayerID       string       `json:"player_id"`
	Name           string       `json:"name"`
	Entity         string       `json:"entity"`
	Department     string       `json:"department"`
	Location       string       `json:"location"`
	Criteria       string       `json:"criteria"`
	Gender         string       `json:"gender"`
	EmploymentType string       `json:"employment_type"`
	Games          []GameRating `json:"games"`
	IsCaptain      bool         `json:"is_captain"`
	Avatar         string       `json:"avatar"`
	Brief          string       `json:"brief"`
	SportCategory  string       `json:"sport_category"`
	BasePrice      int64        `json:"base_price"`
	CurrentBid     *int64       `json:"current_bid,omitempty"`
	SoldTo         string       `json:"sold_to,omitempty"`
	SoldPrice      *int64       `json:"sold_price,omitempty"`
}

// IsSold reports whether the player has been allocated to a team
func (p Player) IsSold() bool {
	return p.SoldPrice != nil
}

// AverageRating returns the mean rating over the player's games
func (p Player) AverageRating() float64 {
	if len(p.Games) == 0 {
		return 0
	}
	sum := 0
	for _, g := range p.Games {
		sum += g.Rating
	}
	return float64(sum) / float64(len(p.Games))
}

// HasGame reports whether the player is rated in the given game
func (p Player) HasGame(game string) bool {
	for _, g := range p.Games {
		if g.Game == game {
			return true
		}
	}
	return false
}

// Team represents a bidding team and its budget
type Team struct {
	TeamID          string   `json:"team_id"`
	Name            string   `json:"name"`
	OwnerID         string   `json:"owner_id"`
	OwnerName       string   `json:"owner_name"`
	Location        string   `json:"location"`
	Budget          int64    `json:"budget"`
	RemainingBudget int64    `json:"remaining_budget"`
	Players         []string `json:"players"`
	CaptainID       string   `json:"captain_id,omitempty"`
	SportFocus      []string `json:"sport_focus"`
}

// AuctionStatus is the lifecycle state of an auction
type AuctionStatus string

const (
	StatusDraft     AuctionStatus = "draft"
	StatusScheduled AuctionStatus = "scheduled"
	StatusLive      AuctionStatus = "live"
	StatusPaused    AuctionStatus = "paused"
	StatusCompleted AuctionStatus = "completed"
	StatusArchived  AuctionStatus = "archived"
)

var statusTransitions = map[AuctionStatus][]AuctionStatus{
	StatusDraft:     {StatusScheduled, StatusLive, StatusArchived},
	StatusScheduled: {StatusDraft, StatusLive, StatusArchived},
	StatusLive:      {StatusPaused, StatusCompleted},
	StatusPaused:    {StatusLive, StatusCompleted},
	StatusCompleted: {StatusArchived},
	StatusArchived:  nil,
}

// Valid reports whether s is a known auction status
func (s AuctionStatus) Valid() bool {
	_, ok := statusTransitions[s]
	return ok
}

// CanTransitionTo reports whether an auction in status s may move to next.
// Staying in the same status is always allowed.
func (s AuctionStatus) CanTransitionTo(next AuctionStatus) bool {
	if s == next {
		return true
	}
	for _, allowed := range statusTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// AuctionRules configures bidding for an auction
type AuctionRules struct {
	MinBidIncrement      int64   `json:"min_bid_increment" mapstructure:"min_bid_increment"`
	MaxPlayersPerTeam    int     `json:"max_players_per_team" mapstructure:"max_players_per_team"`
	InitialBudget        int64   `json:"initial_budget" mapstructure:"initial_budget"`
	BidTimeout           int     `json:"bid_timeout" mapstructure:"bid_timeout"` // seconds
	AllowAutoBid         bool    `json:"allow_auto_bid" mapstructure:"allow_auto_bid"`
	MaxAutoBidPercentage float64 `json:"max_auto_bid_percentage" mapstructure:"max_auto_bid_percentage"`
	LeagueName           string  `json:"league_name" mapstructure:"league_name"`
}

// StageStatus is the progress of a timeline stage
type StageStatus string

const (
	StagePending  StageStatus = "pending"
	StageActive   StageStatus = "active"
	StageComplete StageStatus = "complete"
)

// TimelineStage is one named step of the auction flow
type TimelineStage struct {
	Key         string      `json:"key"`
	Title       string      `json:"title"`
	Description string      `json:"description"`
	Status      StageStatus `json:"status"`
}

// Auction represents an auction event over a pool of players
type Auction struct {
	AuctionID       string          `json:"auction_id"`
	Name            string          `json:"name"`
	Description     string          `json:"description"`
	Status          AuctionStatus   `json:"status"`
	ScheduledTime   *time.Time      `json:"scheduled_time,omitempty"`
	StartTime       *time.Time      `json:"start_time,omitempty"`
	EndTime         *time.Time      `json:"end_time,omitempty"`
	PlayerIDs       []string        `json:"player_ids"`
	CurrentPlayerID string          `json:"current_player_id,omitempty"`
	Rules           AuctionRules    `json:"rules"`
	Timeline        []TimelineStage `json:"timeline"`
}

// Bid represents a bid on a player within an auction
type Bid struct {
	BidID      string    `json:"bid_id"`
	AuctionID  string    `json:"auction_id"`
	PlayerID   string    `json:"player_id"`
	BidderID   string    `json:"bidder_id"`
	BidderName string    `json:"bidder_name"`
	Amount     int64     `json:"amount"`
	CreatedAt  time.Time `json:"created_at"`
	IsAutoBid  bool      `json:"is_auto_bid"`
}

// AutoBidConfig is a team's standing instruction to rebid on a player
type AutoBidConfig struct {
	AutoBidID string `json:"auto_bid_id"`
	AuctionID string `json:"auction_id"`
	PlayerID  string `json:"player_id"`
	TeamID    string `json:"team_id"`
	MaxAmount int64  `json:"max_amount"`
	Active    bool   `json:"active"`
}

// NotificationType classifies a notification
type NotificationType string

const (
	NotificationBid          NotificationType = "bid"
	NotificationOutbid       NotificationType = "outbid"
	NotificationWon          NotificationType = "won"
	NotificationAuctionStart NotificationType = "auction_start"
	NotificationAuctionEnd   NotificationType = "auction_end"
	NotificationInfo         NotificationType = "info"
)

// BroadcastUserID targets a notification at every user
const BroadcastUserID = "all"

// Notification is a message addressed to one user or broadcast to all
type Notification struct {
	NotificationID string           `json:"notification_id"`
	UserID         string           `json:"user_id"`
	Type           NotificationType `json:"type"`
	Title          string           `json:"title"`
	Message        string           `json:"message"`
	CreatedAt      time.Time        `json:"created_at"`
	Read           bool             `json:"read"`
	Payload        map[string]any   `json:"payload,omitempty"`
}

// VisibleTo reports whether the notification is addressed to userID
func (n Notification) VisibleTo(userID string) bool {
	return n.UserID == BroadcastUserID || n.UserID == userID
}

// Summary aggregates auction results
type Summary struct {
	TotalPlayers     int    `json:"total_players"`
	SoldPlayers      int    `json:"sold_players"`
	GrossSpend       int64  `json:"gross_spend"`
	AverageSellPrice int64  `json:"average_sell_price"`
	LiveAuctionID    string `json:"live_auction_id,omitempty"`
}
