package bidding

import (
	"auction-spot/internal/auctionerrors"
	"auction-spot/internal/auth"
	"auction-spot/internal/livefeed"
	"auction-spot/internal/models"
	notification "auction-spot/internal/notificationService"
	"auction-spot/internal/repository"
	"auction-spot/utils"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/shopspring/decimal"
)

// PlaceBidResult carries the accepted bid and the auto-bid it triggered, if any
type PlaceBidResult struct {
	Bid     models.Bid
	AutoBid *models.Bid
}

// BiddingService evaluates bids, runs auto-bids and allocates sold players
type BiddingService struct {
	repo      repository.AuctionDB
	publisher livefeed.Publisher

	// serialises bid evaluation and allocation per player
	playerLocks sync.Map // key: playerID -> *sync.Mutex
}

// NewBiddingService creates a new BiddingService instance. A nil publisher discards live events.
func NewBiddingService(repo repository.AuctionDB, publisher livefeed.Publisher) *BiddingService {
	if publisher == nil {
		publisher = livefeed.NopPublisher{}
	}
	return &BiddingService{
		repo:      repo,
		publisher: publisher,
	}
}

func (s *BiddingService) lockPlayer(playerID string) func() {
	v, _ := s.playerLocks.LoadOrStore(playerID, &sync.Mutex{})
	mu := v.(*sync.Mutex)
	mu.Lock()
	return mu.Unlock
}

// PlaceBid validates and records a bid on a player, then runs the auto-bid step
func (s *BiddingService) PlaceBid(auctionID, playerID, bidderID string, amount int64) (PlaceBidResult, error) {
	auction, err := s.repo.GetAuction(auctionID)
	if err != nil {
		return PlaceBidResult{}, fmt.Errorf("service: failed to get auction %s: %w", auctionID, err)
	}
	if auction.Status != models.StatusLive {
		return PlaceBidResult{}, fmt.Errorf("service: %w - auction %s is %s", auctionerrors.ErrAuctionNotLive, auctionID, auction.Status)
	}

	if playerID == "" || bidderID == "" {
		return PlaceBidResult{}, fmt.Errorf("service: %w - missing playerID or bidderID", auctionerrors.ErrInvalidInput)
	}
	if amount <= 0 {
		return PlaceBidResult{}, fmt.Errorf("service: %w - non-positive bid amount", auctionerrors.ErrInvalidInput)
	}

	unlock := s.lockPlayer(playerID)
	defer unlock()

	player, err := s.repo.GetPlayer(playerID)
	if err != nil {
		return PlaceBidResult{}, fmt.Errorf("service: failed to get player %s: %w", playerID, err)
	}
	team, err := s.repo.GetTeamByBidder(bidderID)
	if err != nil {
		return PlaceBidResult{}, fmt.Errorf("service: failed to resolve team of bidder %s: %w", bidderID, err)
	}

	previous, err := s.validateBid(auction, player, team, amount)
	if err != nil {
		return PlaceBidResult{}, err
	}

	bidderName := team.OwnerName
	if user, err := s.repo.GetUser(bidderID); err == nil {
		bidderName = user.Name
	}

	bid := models.Bid{
		BidID:      utils.NewID(utils.PrefixBid),
		AuctionID:  auction.AuctionID,
		PlayerID:   player.PlayerID,
		BidderID:   bidderID,
		BidderName: bidderName,
		Amount:     amount,
		CreatedAt:  time.Now().UTC(),
	}

	if err := s.repo.RecordBid(bid); err != nil {
		return PlaceBidResult{}, fmt.Errorf("service: failed to record bid for player %s by bidder %s: %w", playerID, bidderID, err)
	}

	if previous != nil && previous.BidderID != bidderID {
		s.notify(notification.New(
			previous.BidderID,
			models.NotificationOutbid,
			"You were outbid",
			fmt.Sprintf("%s bid %s for %s", bidderName, utils.FormatRupees(amount), player.Name),
			map[string]any{"player_id": player.PlayerID},
		))
	}

	s.publisher.Publish(livefeed.Event{
		Type:      livefeed.EventBidPlaced,
		AuctionID: auction.AuctionID,
		Payload:   bid,
	})

	autoBid, err := s.applyAutoBid(auction, player, bid)
	if err != nil {
		// the human bid is already committed
		utils.Warn("service: auto-bid step failed", map[string]any{
			"auction_id": auction.AuctionID,
			"player_id":  player.PlayerID,
			"error":      err.Error(),
		})
	}

	return PlaceBidResult{Bid: bid, AutoBid: autoBid}, nil
}

// validateBid checks the business rules for a bid and returns the current highest bid, if any
func (s *BiddingService) validateBid(auction models.Auction, player models.Player, team models.Team, amount int64) (*models.Bid, error) {
	if player.IsSold() {
		return nil, fmt.Errorf("service: %w - player %s sold to %s", auctionerrors.ErrPlayerSold, player.PlayerID, player.SoldTo)
	}
	if limit := auction.Rules.MaxPlayersPerTeam; limit > 0 && len(team.Players) >= limit {
		return nil, fmt.Errorf("service: %w - team %s already has %d players", auctionerrors.ErrRosterFull, team.TeamID, len(team.Players))
	}
	if amount > team.RemainingBudget {
		return nil, fmt.Errorf("service: %w - remaining budget is %s", auctionerrors.ErrBudgetExceeded, utils.FormatRupees(team.RemainingBudget))
	}

	minimum, previous, err := s.minimumBid(auction, player)
	if err != nil {
		return nil, err
	}
	if amount < minimum {
		return nil, fmt.Errorf("service: %w - minimum acceptable bid is %s", auctionerrors.ErrBidTooLow, utils.FormatRupees(minimum))
	}
	return previous, nil
}

// minimumBid returns the smallest acceptable amount for the next bid on a player
func (s *BiddingService) minimumBid(auction models.Auction, player models.Player) (int64, *models.Bid, error) {
	previous, err := s.repo.GetWinningBid(player.PlayerID)
	if err == nil {
		return previous.Amount + auction.Rules.MinBidIncrement, &previous, nil
	}
	if errors.Is(err, auctionerrors.ErrNoBids) {
		return player.BasePrice, nil, nil
	}
	return 0, nil, fmt.Errorf("service: failed to check winning bid: %w", err)
}

// AutoBidCap is the most an auto-bid may offer:
// min(maxAmount, remainingBudget, floor(remainingBudget * percentage / 100)).
func AutoBidCap(maxAmount, remainingBudget int64, percentage float64) int64 {
	pctCap := decimal.NewFromInt(remainingBudget).
		Mul(decimal.NewFromFloat(percentage)).
		Div(decimal.NewFromInt(100)).
		Floor().
		IntPart()
	return min(maxAmount, remainingBudget, pctCap)
}

// applyAutoBid answers a freshly placed bid with at most one auto-bid from the
// highest active configuration on the player. Lower configurations never fire.
func (s *BiddingService) applyAutoBid(auction models.Auction, player models.Player, trigger models.Bid) (*models.Bid, error) {
	if !auction.Rules.AllowAutoBid {
		return nil, nil
	}

	configs, err := s.repo.GetActiveAutoBids(auction.AuctionID, player.PlayerID)
	if err != nil {
		return nil, fmt.Errorf("service: failed to get auto-bids for player %s: %w", player.PlayerID, err)
	}

	var best *models.AutoBidConfig
	for i := range configs {
		if best == nil || configs[i].MaxAmount > best.MaxAmount {
			best = &configs[i]
		}
	}
	if best == nil {
		return nil, nil
	}

	team, err := s.repo.GetTeam(best.TeamID)
	if errors.Is(err, auctionerrors.ErrTeamNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("service: failed to get auto-bid team %s: %w", best.TeamID, err)
	}

	minimum := trigger.Amount + auction.Rules.MinBidIncrement
	candidate := AutoBidCap(best.MaxAmount, team.RemainingBudget, auction.Rules.MaxAutoBidPercentage)
	if candidate < minimum {
		return nil, nil
	}

	bid := models.Bid{
		BidID:      utils.NewID(utils.PrefixBid),
		AuctionID:  auction.AuctionID,
		PlayerID:   player.PlayerID,
		BidderID:   team.OwnerID,
		BidderName: team.OwnerName,
		Amount:     min(candidate, minimum),
		CreatedAt:  time.Now().UTC(),
		IsAutoBid:  true,
	}
	if err := s.repo.RecordBid(bid); err != nil {
		return nil, fmt.Errorf("service: failed to record auto-bid for team %s: %w", team.TeamID, err)
	}

	s.notify(notification.New(
		team.OwnerID,
		models.NotificationBid,
		"Auto-Bid Triggered",
		fmt.Sprintf("Auto-bid placed %s on %s", utils.FormatRupees(bid.Amount), player.Name),
		map[string]any{"player_id": player.PlayerID},
	))
	s.publisher.Publish(livefeed.Event{
		Type:      livefeed.EventAutoBidPlaced,
		AuctionID: auction.AuctionID,
		Payload:   bid,
	})

	return &bid, nil
}

// ClosePlayer allocates a player to the team holding the highest bid and debits its budget
func (s *BiddingService) ClosePlayer(principal auth.Principal, auctionID, playerID string) (models.Player, models.Team, error) {
	if err := principal.RequireAdmin(); err != nil {
		return models.Player{}, models.Team{}, fmt.Errorf("service: close player %s: %w", playerID, err)
	}

	if _, err := s.repo.GetAuction(auctionID); err != nil {
		return models.Player{}, models.Team{}, fmt.Errorf("service: failed to get auction %s: %w", auctionID, err)
	}

	unlock := s.lockPlayer(playerID)
	defer unlock()

	player, err := s.repo.GetPlayer(playerID)
	if err != nil {
		return models.Player{}, models.Team{}, fmt.Errorf("service: failed to get player %s: %w", playerID, err)
	}

	winning, err := s.repo.GetWinningBid(player.PlayerID)
	if err != nil {
		return models.Player{}, models.Team{}, fmt.Errorf("service: failed to get winning bid for player %s: %w", playerID, err)
	}

	team, err := s.repo.GetTeamByBidder(winning.BidderID)
	if errors.Is(err, auctionerrors.ErrTeamNotFound) {
		return models.Player{}, models.Team{}, fmt.Errorf("service: %w - bidder %s", auctionerrors.ErrWinningTeamMissing, winning.BidderID)
	}
	if err != nil {
		return models.Player{}, models.Team{}, fmt.Errorf("service: failed to resolve winning team: %w", err)
	}

	teamID := team.TeamID
	player, team, err = s.repo.AllocatePlayer(player.PlayerID, teamID, winning.Amount)
	if err != nil {
		return models.Player{}, models.Team{}, fmt.Errorf("service: failed to allocate player %s to team %s: %w", playerID, teamID, err)
	}

	s.notify(notification.New(
		team.OwnerID,
		models.NotificationWon,
		"Player allocated",
		fmt.Sprintf("%s joined %s for %s", player.Name, team.Name, utils.FormatRupees(winning.Amount)),
		map[string]any{"player_id": player.PlayerID},
	))
	s.publisher.Publish(livefeed.Event{
		Type:      livefeed.EventPlayerSold,
		AuctionID: auctionID,
		Payload:   map[string]any{"player": player, "team": team, "bid": winning},
	})

	return player, team, nil
}

// GetBidsForAuction returns all bids of an auction, oldest first
func (s *BiddingService) GetBidsForAuction(auctionID string) ([]models.Bid, error) {
	if _, err := s.repo.GetAuction(auctionID); err != nil {
		return nil, fmt.Errorf("service: failed to get auction %s: %w", auctionID, err)
	}

	bids, err := s.repo.GetBidsByAuction(auctionID)
	if err != nil {
		return nil, fmt.Errorf("service: failed to get bids for auction %s: %w", auctionID, err)
	}
	return bids, nil
}

// GetAutoBids returns the auto-bid configurations of an auction
func (s *BiddingService) GetAutoBids(auctionID string) ([]models.AutoBidConfig, error) {
	configs, err := s.repo.GetAutoBidsByAuction(auctionID)
	if err != nil {
		return nil, fmt.Errorf("service: failed to get auto-bids for auction %s: %w", auctionID, err)
	}
	return configs, nil
}

// CreateAutoBid registers an active auto-bid configuration for a team on a player
func (s *BiddingService) CreateAutoBid(auctionID, playerID, teamID string, maxAmount int64) (models.AutoBidConfig, error) {
	if playerID == "" || teamID == "" {
		return models.AutoBidConfig{}, fmt.Errorf("service: %w - missing playerID or teamID", auctionerrors.ErrInvalidInput)
	}
	if maxAmount <= 0 {
		return models.AutoBidConfig{}, fmt.Errorf("service: %w - non-positive max amount", auctionerrors.ErrInvalidInput)
	}

	if _, err := s.repo.GetAuction(auctionID); err != nil {
		return models.AutoBidConfig{}, fmt.Errorf("service: failed to get auction %s: %w", auctionID, err)
	}
	if _, err := s.repo.GetPlayer(playerID); err != nil {
		return models.AutoBidConfig{}, fmt.Errorf("service: failed to get player %s: %w", playerID, err)
	}
	if _, err := s.repo.GetTeam(teamID); err != nil {
		return models.AutoBidConfig{}, fmt.Errorf("service: failed to get team %s: %w", teamID, err)
	}

	cfg := models.AutoBidConfig{
		AutoBidID: utils.NewID(utils.PrefixAutoBid),
		AuctionID: auctionID,
		PlayerID:  playerID,
		TeamID:    teamID,
		MaxAmount: maxAmount,
		Active:    true,
	}
	if err := s.repo.AddAutoBid(cfg); err != nil {
		return models.AutoBidConfig{}, fmt.Errorf("service: failed to store auto-bid: %w", err)
	}
	return cfg, nil
}

// notify stores a notification; failures are logged because the bid itself has been committed
func (s *BiddingService) notify(n models.Notification) {
	if err := s.repo.AddNotification(n); err != nil {
		utils.Warn("service: failed to store notification", map[string]any{
			"user_id": n.UserID,
			"type":    n.Type,
			"error":   err.Error(),
		})
	}
}
