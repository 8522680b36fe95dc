package auction

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"auction-spot/internal/auctionerrors"
	"auction-spot/internal/auth"
	"auction-spot/internal/livefeed"
	"auction-spot/internal/models"
	notification "auction-spot/internal/notificationService"
	"auction-spot/internal/repository"
	"auction-spot/utils"
)

const defaultAuctionName = "Untitled Auction"

// CreateInput describes a new auction. Empty fields get defaults.
type CreateInput struct {
	Name          string
	Description   string
	PlayerIDs     []string
	Rules         *models.AuctionRules
	ScheduledTime *time.Time
}

// RulesPatch holds the rule fields to change; nil fields are left untouched
type RulesPatch struct {
	MinBidIncrement      *int64
	MaxPlayersPerTeam    *int
	InitialBudget        *int64
	BidTimeout           *int
	AllowAutoBid         *bool
	MaxAutoBidPercentage *float64
	LeagueName           *string
}

// AuctionService manages auction lifecycle and rules
type AuctionService struct {
	repo         repository.AuctionStore
	publisher    livefeed.Publisher
	defaultRules models.AuctionRules

	// serialises read-modify-write of auction records between handlers and the scheduler
	writeMu sync.Mutex
}

// NewAuctionService creates a new AuctionService instance. A nil publisher discards live events.
func NewAuctionService(repo repository.AuctionStore, publisher livefeed.Publisher, defaultRules models.AuctionRules) *AuctionService {
	if publisher == nil {
		publisher = livefeed.NopPublisher{}
	}
	return &AuctionService{
		repo:         repo,
		publisher:    publisher,
		defaultRules: defaultRules,
	}
}

// ListAuctions returns every auction
func (s *AuctionService) ListAuctions() ([]models.Auction, error) {
	auctions, err := s.repo.ListAuctions()
	if err != nil {
		return nil, fmt.Errorf("service: failed to list auctions: %w", err)
	}
	return auctions, nil
}

// GetAuction returns an auction by ID
func (s *AuctionService) GetAuction(auctionID string) (models.Auction, error) {
	if auctionID == "" {
		return models.Auction{}, fmt.Errorf("service: %w - empty auction ID", auctionerrors.ErrInvalidInput)
	}
	a, err := s.repo.GetAuction(auctionID)
	if err != nil {
		return models.Auction{}, fmt.Errorf("service: failed to get auction %s: %w", auctionID, err)
	}
	return a, nil
}

// CreateAuction creates a draft auction
func (s *AuctionService) CreateAuction(principal auth.Principal, in CreateInput) (models.Auction, error) {
	if err := principal.RequireAdmin(); err != nil {
		return models.Auction{}, fmt.Errorf("service: create auction: %w", err)
	}

	a := models.Auction{
		AuctionID:     utils.NewID(utils.PrefixAuction),
		Name:          in.Name,
		Description:   in.Description,
		Status:        models.StatusDraft,
		ScheduledTime: in.ScheduledTime,
		PlayerIDs:     in.PlayerIDs,
		Rules:         s.defaultRules,
		Timeline:      models.BaseTimeline(),
	}
	if strings.TrimSpace(a.Name) == "" {
		a.Name = defaultAuctionName
	}
	if in.Rules != nil {
		if err := validateRules(*in.Rules); err != nil {
			return models.Auction{}, err
		}
		a.Rules = *in.Rules
	}
	if a.PlayerIDs == nil {
		players, err := s.repo.ListPlayers()
		if err != nil {
			return models.Auction{}, fmt.Errorf("service: failed to list players: %w", err)
		}
		a.PlayerIDs = make([]string, 0, len(players))
		for _, p := range players {
			a.PlayerIDs = append(a.PlayerIDs, p.PlayerID)
		}
	}

	if err := s.repo.AddAuction(a); err != nil {
		return models.Auction{}, fmt.Errorf("service: failed to add auction: %w", err)
	}
	return a, nil
}

// UpdateStatus moves an auction to a new status if the transition is legal
func (s *AuctionService) UpdateStatus(principal auth.Principal, auctionID, status string) (models.Auction, error) {
	if err := principal.RequireAdmin(); err != nil {
		return models.Auction{}, fmt.Errorf("service: update auction %s status: %w", auctionID, err)
	}

	next := models.AuctionStatus(status)
	if !next.Valid() {
		return models.Auction{}, fmt.Errorf("service: %w - %q", auctionerrors.ErrInvalidStatus, status)
	}

	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	a, err := s.repo.GetAuction(auctionID)
	if err != nil {
		return models.Auction{}, fmt.Errorf("service: failed to get auction %s: %w", auctionID, err)
	}
	if !a.Status.CanTransitionTo(next) {
		return models.Auction{}, fmt.Errorf("service: %w - %s to %s", auctionerrors.ErrInvalidTransition, a.Status, next)
	}

	return s.transition(a, next, time.Now().UTC())
}

// PromoteDue opens every scheduled auction whose scheduled time is not after now
func (s *AuctionService) PromoteDue(now time.Time) (int, error) {
	auctions, err := s.repo.ListAuctions()
	if err != nil {
		return 0, fmt.Errorf("service: failed to list auctions: %w", err)
	}

	promoted := 0
	for _, a := range auctions {
		if !isDue(a, now) {
			continue
		}
		ok, err := s.promote(a.AuctionID, now)
		if err != nil {
			return promoted, err
		}
		if ok {
			promoted++
		}
	}
	return promoted, nil
}

// promote re-reads the auction under the write lock so a status change made
// since the listing wins over the scheduler.
func (s *AuctionService) promote(auctionID string, now time.Time) (bool, error) {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	a, err := s.repo.GetAuction(auctionID)
	if err != nil {
		return false, fmt.Errorf("service: failed to get auction %s: %w", auctionID, err)
	}
	if !isDue(a, now) || !a.Status.CanTransitionTo(models.StatusLive) {
		return false, nil
	}
	if _, err := s.transition(a, models.StatusLive, now); err != nil {
		return false, err
	}
	return true, nil
}

func isDue(a models.Auction, now time.Time) bool {
	return a.Status == models.StatusScheduled && a.ScheduledTime != nil && !a.ScheduledTime.After(now)
}

// transition applies a legal status change, stamps start/end times and announces it.
// Callers hold writeMu.
func (s *AuctionService) transition(a models.Auction, next models.AuctionStatus, now time.Time) (models.Auction, error) {
	if a.Status == next {
		return a, nil
	}

	previous := a.Status
	a.Status = next
	switch next {
	case models.StatusLive:
		a.StartTime = &now
	case models.StatusCompleted:
		a.EndTime = &now
	}

	if err := s.repo.SaveAuction(a); err != nil {
		return models.Auction{}, fmt.Errorf("service: failed to save auction %s: %w", a.AuctionID, err)
	}

	switch next {
	case models.StatusLive:
		s.broadcast(notification.New(models.BroadcastUserID, models.NotificationAuctionStart,
			"Auction is live", fmt.Sprintf("%s is now open for bidding", a.Name),
			map[string]any{"auction_id": a.AuctionID}))
	case models.StatusCompleted:
		s.broadcast(notification.New(models.BroadcastUserID, models.NotificationAuctionEnd,
			"Auction completed", fmt.Sprintf("%s has closed", a.Name),
			map[string]any{"auction_id": a.AuctionID}))
	}

	s.publisher.Publish(livefeed.Event{
		Type:      livefeed.EventAuctionStatus,
		AuctionID: a.AuctionID,
		Payload:   map[string]any{"from": previous, "to": next},
	})
	utils.Info("service: auction status changed", map[string]any{
		"auction_id": a.AuctionID,
		"from":       previous,
		"to":         next,
	})

	return a, nil
}

// UpdateRules merges the patch into an auction's rules
func (s *AuctionService) UpdateRules(principal auth.Principal, auctionID string, patch RulesPatch) (models.AuctionRules, error) {
	if err := principal.RequireAdmin(); err != nil {
		return models.AuctionRules{}, fmt.Errorf("service: update auction %s rules: %w", auctionID, err)
	}

	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	a, err := s.repo.GetAuction(auctionID)
	if err != nil {
		return models.AuctionRules{}, fmt.Errorf("service: failed to get auction %s: %w", auctionID, err)
	}

	r := a.Rules
	if patch.MinBidIncrement != nil {
		r.MinBidIncrement = *patch.MinBidIncrement
	}
	if patch.MaxPlayersPerTeam != nil {
		r.MaxPlayersPerTeam = *patch.MaxPlayersPerTeam
	}
	if patch.InitialBudget != nil {
		r.InitialBudget = *patch.InitialBudget
	}
	if patch.BidTimeout != nil {
		r.BidTimeout = *patch.BidTimeout
	}
	if patch.AllowAutoBid != nil {
		r.AllowAutoBid = *patch.AllowAutoBid
	}
	if patch.MaxAutoBidPercentage != nil {
		r.MaxAutoBidPercentage = *patch.MaxAutoBidPercentage
	}
	if patch.LeagueName != nil {
		r.LeagueName = *patch.LeagueName
	}
	if err := validateRules(r); err != nil {
		return models.AuctionRules{}, err
	}

	a.Rules = r
	if err := s.repo.SaveAuction(a); err != nil {
		return models.AuctionRules{}, fmt.Errorf("service: failed to save auction %s: %w", auctionID, err)
	}
	return r, nil
}

// Timeline returns the stages of an auction
func (s *AuctionService) Timeline(auctionID string) ([]models.TimelineStage, error) {
	a, err := s.GetAuction(auctionID)
	if err != nil {
		return nil, err
	}
	return a.Timeline, nil
}

func (s *AuctionService) broadcast(n models.Notification) {
	if err := s.repo.AddNotification(n); err != nil {
		utils.Warn("service: failed to store notification", map[string]any{
			"type":  n.Type,
			"error": err.Error(),
		})
	}
}

func validateRules(r models.AuctionRules) error {
	switch {
	case r.MinBidIncrement < 0:
		return fmt.Errorf("service: %w - negative min bid increment", auctionerrors.ErrInvalidInput)
	case r.MaxPlayersPerTeam < 0:
		return fmt.Errorf("service: %w - negative max players per team", auctionerrors.ErrInvalidInput)
	case r.InitialBudget < 0:
		return fmt.Errorf("service: %w - negative initial budget", auctionerrors.ErrInvalidInput)
	case r.BidTimeout < 0:
		return fmt.Errorf("service: %w - negative bid timeout", auctionerrors.ErrInvalidInput)
	case r.MaxAutoBidPercentage < 0 || r.MaxAutoBidPercentage > 100:
		return fmt.Errorf("service: %w - auto-bid percentage must be within 0-100", auctionerrors.ErrInvalidInput)
	}
	return nil
}
