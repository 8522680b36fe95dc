package repository

import (
	"auction-spot/internal/auctionerrors"
	model "auction-spot/internal/models"
	"fmt"
	"sync"
)

//go:generate mockgen -destination=mock_repository.go -package=repository auction-spot/internal/repository AuctionDB

// AuctionDB defines the storage used by the bid evaluator and allocation closer
type AuctionDB interface {
	GetAuction(auctionID string) (model.Auction, error)
	GetPlayer(playerID string) (model.Player, error)
	GetTeam(teamID string) (model.Team, error)
	GetTeamByBidder(bidderID string) (model.Team, error)
	GetUser(userID string) (model.User, error)
	RecordBid(bid model.Bid) error
	GetBidsByAuction(auctionID string) ([]model.Bid, error)
	GetWinningBid(playerID string) (model.Bid, error)
	AddAutoBid(cfg model.AutoBidConfig) error
	GetAutoBidsByAuction(auctionID string) ([]model.AutoBidConfig, error)
	GetActiveAutoBids(auctionID, playerID string) ([]model.AutoBidConfig, error)
	AllocatePlayer(playerID, teamID string, amount int64) (model.Player, model.Team, error)
	AddNotification(n model.Notification) error
}

// CatalogDB defines the storage for players, teams and users
type CatalogDB interface {
	ListPlayers() ([]model.Player, error)
	GetPlayer(playerID string) (model.Player, error)
	AddPlayer(player model.Player) error
	UpdatePlayer(player model.Player) error
	ListTeams() ([]model.Team, error)
	GetTeam(teamID string) (model.Team, error)
	ListAuctions() ([]model.Auction, error)
	GetUserByEmail(email string) (model.User, error)
}

// AuctionStore defines the storage for auctions
type AuctionStore interface {
	ListPlayers() ([]model.Player, error)
	ListAuctions() ([]model.Auction, error)
	GetAuction(auctionID string) (model.Auction, error)
	AddAuction(auction model.Auction) error
	SaveAuction(auction model.Auction) error
	AddNotification(n model.Notification) error
}

// NotificationDB defines the storage for notifications
type NotificationDB interface {
	AddNotification(n model.Notification) error
	ListNotifications() ([]model.Notification, error)
	GetNotification(notificationID string) (model.Notification, error)
	MarkNotificationRead(notificationID string) (model.Notification, error)
}

// MemoryRepo is a concurrency-safe in-memory store for every auction collection.
// Each method is atomic; callers needing multi-step atomicity serialise above it.
type MemoryRepo struct {
	mu sync.RWMutex

	players      map[string]model.Player // key: playerID
	playerOrder  []string
	teams        map[string]model.Team // key: teamID
	teamOrder    []string
	auctions     map[string]model.Auction // key: auctionID
	auctionOrder []string
	users        map[string]model.User // key: userID
	userOrder    []string

	bids          []model.Bid // append-only
	autoBids      []model.AutoBidConfig
	notifications []model.Notification // newest first
}

// NewMemoryRepo creates a new in-memory repository instance
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{
		players:  make(map[string]model.Player),
		teams:    make(map[string]model.Team),
		auctions: make(map[string]model.Auction),
		users:    make(map[string]model.User),
	}
}

// ListPlayers returns every player in insertion order
func (r *MemoryRepo) ListPlayers() ([]model.Player, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	players := make([]model.Player, 0, len(r.playerOrder))
	for _, id := range r.playerOrder {
		players = append(players, clonePlayer(r.players[id]))
	}
	return players, nil
}

// GetPlayer returns a player by ID
func (r *MemoryRepo) GetPlayer(playerID string) (model.Player, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.players[playerID]
	if !ok {
		return model.Player{}, fmt.Errorf("get player %s: %w", playerID, auctionerrors.ErrPlayerNotFound)
	}
	return clonePlayer(p), nil
}

// AddPlayer stores a new player
func (r *MemoryRepo) AddPlayer(player model.Player) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if player.PlayerID == "" {
		return fmt.Errorf("add player: %w - empty player ID", auctionerrors.ErrInvalidInput)
	}
	if _, exists := r.players[player.PlayerID]; !exists {
		r.playerOrder = append(r.playerOrder, player.PlayerID)
	}
	r.players[player.PlayerID] = clonePlayer(player)
	return nil
}

// UpdatePlayer replaces an existing player
func (r *MemoryRepo) UpdatePlayer(player model.Player) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.players[player.PlayerID]; !ok {
		return fmt.Errorf("update player %s: %w", player.PlayerID, auctionerrors.ErrPlayerNotFound)
	}
	r.players[player.PlayerID] = clonePlayer(player)
	return nil
}

// ListTeams returns every team in insertion order
func (r *MemoryRepo) ListTeams() ([]model.Team, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	teams := make([]model.Team, 0, len(r.teamOrder))
	for _, id := range r.teamOrder {
		teams = append(teams, cloneTeam(r.teams[id]))
	}
	return teams, nil
}

// GetTeam returns a team by ID
func (r *MemoryRepo) GetTeam(teamID string) (model.Team, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	t, ok := r.teams[teamID]
	if !ok {
		return model.Team{}, fmt.Errorf("get team %s: %w", teamID, auctionerrors.ErrTeamNotFound)
	}
	return cloneTeam(t), nil
}

// GetTeamByBidder returns the team owned by bidderID, or the team whose ID is bidderID
func (r *MemoryRepo) GetTeamByBidder(bidderID string) (model.Team, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, id := range r.teamOrder {
		t := r.teams[id]
		if t.OwnerID == bidderID || t.TeamID == bidderID {
			return cloneTeam(t), nil
		}
	}
	return model.Team{}, fmt.Errorf("get team for bidder %s: %w", bidderID, auctionerrors.ErrTeamNotFound)
}

// AddTeam stores a team. This method is intended for seeding and tests.
func (r *MemoryRepo) AddTeam(team model.Team) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.teams[team.TeamID]; !exists {
		r.teamOrder = append(r.teamOrder, team.TeamID)
	}
	r.teams[team.TeamID] = cloneTeam(team)
}

// GetUser returns a user by ID
func (r *MemoryRepo) GetUser(userID string) (model.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	u, ok := r.users[userID]
	if !ok {
		return model.User{}, fmt.Errorf("get user %s: %w", userID, auctionerrors.ErrUserNotFound)
	}
	return u, nil
}

// GetUserByEmail returns the user registered with email
func (r *MemoryRepo) GetUserByEmail(email string) (model.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, id := range r.userOrder {
		if u := r.users[id]; u.Email == email {
			return u, nil
		}
	}
	return model.User{}, fmt.Errorf("get user by email: %w", auctionerrors.ErrUserNotFound)
}

// AddUser stores a user. This method is intended for seeding and tests.
func (r *MemoryRepo) AddUser(user model.User) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.users[user.UserID]; !exists {
		r.userOrder = append(r.userOrder, user.UserID)
	}
	r.users[user.UserID] = user
}

// ListAuctions returns every auction in insertion order
func (r *MemoryRepo) ListAuctions() ([]model.Auction, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	auctions := make([]model.Auction, 0, len(r.auctionOrder))
	for _, id := range r.auctionOrder {
		auctions = append(auctions, cloneAuction(r.auctions[id]))
	}
	return auctions, nil
}

// GetAuction returns an auction by ID
func (r *MemoryRepo) GetAuction(auctionID string) (model.Auction, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	a, ok := r.auctions[auctionID]
	if !ok {
		return model.Auction{}, fmt.Errorf("get auction %s: %w", auctionID, auctionerrors.ErrAuctionNotFound)
	}
	return cloneAuction(a), nil
}

// AddAuction stores a new auction
func (r *MemoryRepo) AddAuction(auction model.Auction) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if auction.AuctionID == "" {
		return fmt.Errorf("add auction: %w - empty auction ID", auctionerrors.ErrInvalidInput)
	}
	if _, exists := r.auctions[auction.AuctionID]; !exists {
		r.auctionOrder = append(r.auctionOrder, auction.AuctionID)
	}
	r.auctions[auction.AuctionID] = cloneAuction(auction)
	return nil
}

// SaveAuction replaces an existing auction
func (r *MemoryRepo) SaveAuction(auction model.Auction) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.auctions[auction.AuctionID]; !ok {
		return fmt.Errorf("save auction %s: %w", auction.AuctionID, auctionerrors.ErrAuctionNotFound)
	}
	r.auctions[auction.AuctionID] = cloneAuction(auction)
	return nil
}

// RecordBid appends a bid and updates the player's current bid
func (r *MemoryRepo) RecordBid(bid model.Bid) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	p, ok := r.players[bid.PlayerID]
	if !ok {
		return fmt.Errorf("record bid for player %s: %w", bid.PlayerID, auctionerrors.ErrPlayerNotFound)
	}

	r.bids = append(r.bids, bid)

	amount := bid.Amount
	p.CurrentBid = &amount
	r.players[p.PlayerID] = p
	return nil
}

// GetBidsByAuction returns all bids placed in an auction, oldest first
func (r *MemoryRepo) GetBidsByAuction(auctionID string) ([]model.Bid, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	bids := make([]model.Bid, 0)
	for _, b := range r.bids {
		if b.AuctionID == auctionID {
			bids = append(bids, b)
		}
	}
	return bids, nil
}

// GetWinningBid returns the highest bid for a player; ties go to the earliest bid
func (r *MemoryRepo) GetWinningBid(playerID string) (model.Bid, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var (
		winning model.Bid
		found   bool
	)
	for _, b := range r.bids {
		if b.PlayerID != playerID {
			continue
		}
		if !found || b.Amount > winning.Amount || (b.Amount == winning.Amount && b.CreatedAt.Before(winning.CreatedAt)) {
			winning = b
			found = true
		}
	}
	if !found {
		return model.Bid{}, fmt.Errorf("get winning bid for player %s: %w", playerID, auctionerrors.ErrNoBids)
	}
	return winning, nil
}

// AddAutoBid stores an auto-bid configuration
func (r *MemoryRepo) AddAutoBid(cfg model.AutoBidConfig) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if cfg.AutoBidID == "" {
		return fmt.Errorf("add auto-bid: %w - empty auto-bid ID", auctionerrors.ErrInvalidInput)
	}
	r.autoBids = append(r.autoBids, cfg)
	return nil
}

// GetAutoBidsByAuction returns every auto-bid configuration of an auction
func (r *MemoryRepo) GetAutoBidsByAuction(auctionID string) ([]model.AutoBidConfig, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	configs := make([]model.AutoBidConfig, 0)
	for _, c := range r.autoBids {
		if c.AuctionID == auctionID {
			configs = append(configs, c)
		}
	}
	return configs, nil
}

// GetActiveAutoBids returns the active auto-bid configurations for a player in an auction
func (r *MemoryRepo) GetActiveAutoBids(auctionID, playerID string) ([]model.AutoBidConfig, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	configs := make([]model.AutoBidConfig, 0)
	for _, c := range r.autoBids {
		if c.AuctionID == auctionID && c.PlayerID == playerID && c.Active {
			configs = append(configs, c)
		}
	}
	return configs, nil
}

// AllocatePlayer marks a player sold to a team and debits the team's budget.
// A player can be allocated only once.
func (r *MemoryRepo) AllocatePlayer(playerID, teamID string, amount int64) (model.Player, model.Team, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	p, ok := r.players[playerID]
	if !ok {
		return model.Player{}, model.Team{}, fmt.Errorf("allocate player %s: %w", playerID, auctionerrors.ErrPlayerNotFound)
	}
	t, ok := r.teams[teamID]
	if !ok {
		return model.Player{}, model.Team{}, fmt.Errorf("allocate player %s to team %s: %w", playerID, teamID, auctionerrors.ErrTeamNotFound)
	}
	if p.IsSold() {
		return model.Player{}, model.Team{}, fmt.Errorf("allocate player %s: %w", playerID, auctionerrors.ErrPlayerSold)
	}

	price := amount
	p.SoldTo = t.Name
	p.SoldPrice = &price
	t.Players = append(append([]string(nil), t.Players...), p.PlayerID)
	t.RemainingBudget -= amount

	r.players[playerID] = p
	r.teams[teamID] = t
	return clonePlayer(p), cloneTeam(t), nil
}

// AddNotification prepends a notification
func (r *MemoryRepo) AddNotification(n model.Notification) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if n.NotificationID == "" {
		return fmt.Errorf("add notification: %w - empty notification ID", auctionerrors.ErrInvalidInput)
	}
	r.notifications = append([]model.Notification{n}, r.notifications...)
	return nil
}

// ListNotifications returns every notification, newest first
func (r *MemoryRepo) ListNotifications() ([]model.Notification, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]model.Notification(nil), r.notifications...), nil
}

// GetNotification returns a notification by ID
func (r *MemoryRepo) GetNotification(notificationID string) (model.Notification, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, n := range r.notifications {
		if n.NotificationID == notificationID {
			return n, nil
		}
	}
	return model.Notification{}, fmt.Errorf("get notification %s: %w", notificationID, auctionerrors.ErrNotificationNotFound)
}

// MarkNotificationRead sets the read flag of a notification
func (r *MemoryRepo) MarkNotificationRead(notificationID string) (model.Notification, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.notifications {
		if r.notifications[i].NotificationID == notificationID {
			r.notifications[i].Read = true
			return r.notifications[i], nil
		}
	}
	return model.Notification{}, fmt.Errorf("mark notification %s read: %w", notificationID, auctionerrors.ErrNotificationNotFound)
}

func clonePlayer(p model.Player) model.Player {
	p.Games = append([]model.GameRating(nil), p.Games...)
	if p.CurrentBid != nil {
		v := *p.CurrentBid
		p.CurrentBid = &v
	}
	if p.SoldPrice != nil {
		v := *p.SoldPrice
		p.SoldPrice = &v
	}
	return p
}

func cloneTeam(t model.Team) model.Team {
	t.Players = append([]string{}, t.Players...)
	t.SportFocus = append([]string(nil), t.SportFocus...)
	return t
}

func cloneAuction(a model.Auction) model.Auction {
	a.PlayerIDs = append([]string(nil), a.PlayerIDs...)
	a.Timeline = append([]model.TimelineStage(nil), a.Timeline...)
	return a
}
