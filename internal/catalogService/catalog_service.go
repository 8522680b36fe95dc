package catalog

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"auction-spot/internal/auctionerrors"
	"auction-spot/internal/auth"
	"auction-spot/internal/models"
	"auction-spot/internal/repository"
	"auction-spot/utils"

	"github.com/shopspring/decimal"
)

const (
	DefaultPlayerLimit = 50

	SortByName   = "name"
	SortByRating = "rating"

	defaultBrief  = "Enterprise athlete bringing clutch performances in inter-corporate leagues."
	defaultAvatar = "https://res.cloudinary.com/dv1eyqkzf/image/upload/v1738456202/auctionspot/captain-01.png"
)

// ListPlayersParams filters and orders a player listing
type ListPlayersParams struct {
	Search string
	Game   string
	Sort   string
	Limit  int
}

// PlayerInput describes a new player. Empty optional fields get defaults.
type PlayerInput struct {
	Name           string
	Entity         string
	Department     string
	Location       string
	Criteria       string
	Gender         string
	EmploymentType string
	Games          []models.GameRating
	IsCaptain      bool
	Avatar         string
	Brief          string
	SportCategory  string
	BasePrice      int64
}

// PlayerPatch holds the player fields an admin may change; nil fields are left untouched.
// Sale fields are owned by allocation and cannot be patched.
type PlayerPatch struct {
	Name           *string
	Entity         *string
	Department     *string
	Location       *string
	Criteria       *string
	Gender         *string
	EmploymentType *string
	Games          []models.GameRating
	IsCaptain      *bool
	Avatar         *string
	Brief          *string
	SportCategory  *string
	BasePrice      *int64
}

// TeamView is a team with its roster expanded to player records
type TeamView struct {
	models.Team
	Players []models.Player `json:"players"`
}

// Stage is a timeline stage stamped with the time it was reported
type Stage struct {
	models.TimelineStage
	Timestamp time.Time `json:"timestamp"`
}

// CatalogService serves players, teams and auction analytics
type CatalogService struct {
	repo repository.CatalogDB
}

// NewCatalogService creates a new CatalogService instance
func NewCatalogService(repo repository.CatalogDB) *CatalogService {
	return &CatalogService{repo: repo}
}

// ListPlayers returns players matching the search text and game, sorted and limited
func (s *CatalogService) ListPlayers(params ListPlayersParams) ([]models.Player, error) {
	all, err := s.repo.ListPlayers()
	if err != nil {
		return nil, fmt.Errorf("service: failed to list players: %w", err)
	}

	search := strings.ToLower(strings.TrimSpace(params.Search))
	filtered := make([]models.Player, 0, len(all))
	for _, p := range all {
		haystack := strings.ToLower(strings.Join([]string{p.Name, p.Entity, p.Department, p.Location}, " "))
		if search != "" && !strings.Contains(haystack, search) {
			continue
		}
		if params.Game != "" && !p.HasGame(params.Game) {
			continue
		}
		filtered = append(filtered, p)
	}

	switch params.Sort {
	case "", SortByName:
		sort.SliceStable(filtered, func(i, j int) bool { return filtered[i].Name < filtered[j].Name })
	case SortByRating:
		sort.SliceStable(filtered, func(i, j int) bool { return filtered[i].AverageRating() > filtered[j].AverageRating() })
	default:
		return nil, fmt.Errorf("service: %w - unknown sort %q", auctionerrors.ErrInvalidInput, params.Sort)
	}

	limit := params.Limit
	if limit <= 0 {
		limit = DefaultPlayerLimit
	}
	if len(filtered) > limit {
		filtered = filtered[:limit]
	}
	return filtered, nil
}

// GetPlayer returns a player by ID
func (s *CatalogService) GetPlayer(playerID string) (models.Player, error) {
	if playerID == "" {
		return models.Player{}, fmt.Errorf("service: %w - empty player ID", auctionerrors.ErrInvalidInput)
	}
	p, err := s.repo.GetPlayer(playerID)
	if err != nil {
		return models.Player{}, fmt.Errorf("service: failed to get player %s: %w", playerID, err)
	}
	return p, nil
}

// CreatePlayer adds a player to the pool
func (s *CatalogService) CreatePlayer(principal auth.Principal, in PlayerInput) (models.Player, error) {
	if err := principal.RequireAdmin(); err != nil {
		return models.Player{}, fmt.Errorf("service: create player: %w", err)
	}
	if strings.TrimSpace(in.Name) == "" {
		return models.Player{}, fmt.Errorf("service: %w - empty player name", auctionerrors.ErrInvalidInput)
	}
	if in.BasePrice <= 0 {
		return models.Player{}, fmt.Errorf("service: %w - non-positive base price", auctionerrors.ErrInvalidInput)
	}

	p := models.Player{
		PlayerID:       utils.NewID(utils.PrefixPlayer),
		Name:           in.Name,
		Entity:         in.Entity,
		Department:     in.Department,
		Location:       in.Location,
		Criteria:       orDefault(in.Criteria, "Beginner"),
		Gender:         orDefault(in.Gender, "Other"),
		EmploymentType: orDefault(in.EmploymentType, "Full-time"),
		Games:          in.Games,
		IsCaptain:      in.IsCaptain,
		Avatar:         orDefault(in.Avatar, defaultAvatar),
		Brief:          orDefault(in.Brief, defaultBrief),
		SportCategory:  in.SportCategory,
		BasePrice:      in.BasePrice,
	}
	if p.Games == nil {
		p.Games = []models.GameRating{}
	}
	if p.SportCategory == "" && len(p.Games) > 0 {
		p.SportCategory = p.Games[0].Game
	}

	if err := s.repo.AddPlayer(p); err != nil {
		return models.Player{}, fmt.Errorf("service: failed to add player: %w", err)
	}
	return p, nil
}

// UpdatePlayer merges the patch into an existing player
func (s *CatalogService) UpdatePlayer(principal auth.Principal, playerID string, patch PlayerPatch) (models.Player, error) {
	if err := principal.RequireAdmin(); err != nil {
		return models.Player{}, fmt.Errorf("service: update player %s: %w", playerID, err)
	}

	p, err := s.repo.GetPlayer(playerID)
	if err != nil {
		return models.Player{}, fmt.Errorf("service: failed to get player %s: %w", playerID, err)
	}

	if patch.BasePrice != nil && *patch.BasePrice <= 0 {
		return models.Player{}, fmt.Errorf("service: %w - non-positive base price", auctionerrors.ErrInvalidInput)
	}
	if patch.Name != nil && strings.TrimSpace(*patch.Name) == "" {
		return models.Player{}, fmt.Errorf("service: %w - empty player name", auctionerrors.ErrInvalidInput)
	}

	setString(&p.Name, patch.Name)
	setString(&p.Entity, patch.Entity)
	setString(&p.Department, patch.Department)
	setString(&p.Location, patch.Location)
	setString(&p.Criteria, patch.Criteria)
	setString(&p.Gender, patch.Gender)
	setString(&p.EmploymentType, patch.EmploymentType)
	setString(&p.Avatar, patch.Avatar)
	setString(&p.Brief, patch.Brief)
	setString(&p.SportCategory, patch.SportCategory)
	if patch.Games != nil {
		p.Games = patch.Games
	}
	if patch.IsCaptain != nil {
		p.IsCaptain = *patch.IsCaptain
	}
	if patch.BasePrice != nil {
		p.BasePrice = *patch.BasePrice
	}

	if err := s.repo.UpdatePlayer(p); err != nil {
		return models.Player{}, fmt.Errorf("service: failed to update player %s: %w", playerID, err)
	}
	return p, nil
}

// ListTeams returns every team with its roster expanded
func (s *CatalogService) ListTeams() ([]TeamView, error) {
	teams, err := s.repo.ListTeams()
	if err != nil {
		return nil, fmt.Errorf("service: failed to list teams: %w", err)
	}

	views := make([]TeamView, 0, len(teams))
	for _, t := range teams {
		views = append(views, s.expand(t))
	}
	return views, nil
}

// GetTeam returns a team with its roster expanded
func (s *CatalogService) GetTeam(teamID string) (TeamView, error) {
	t, err := s.repo.GetTeam(teamID)
	if err != nil {
		return TeamView{}, fmt.Errorf("service: failed to get team %s: %w", teamID, err)
	}
	return s.expand(t), nil
}

// expand resolves roster IDs, skipping players that no longer exist
func (s *CatalogService) expand(t models.Team) TeamView {
	players := make([]models.Player, 0, len(t.Players))
	for _, id := range t.Players {
		if p, err := s.repo.GetPlayer(id); err == nil {
			players = append(players, p)
		}
	}
	return TeamView{Team: t, Players: players}
}

// Summary aggregates sales across players and teams
func (s *CatalogService) Summary() (models.Summary, error) {
	players, err := s.repo.ListPlayers()
	if err != nil {
		return models.Summary{}, fmt.Errorf("service: failed to list players: %w", err)
	}
	teams, err := s.repo.ListTeams()
	if err != nil {
		return models.Summary{}, fmt.Errorf("service: failed to list teams: %w", err)
	}
	auctions, err := s.repo.ListAuctions()
	if err != nil {
		return models.Summary{}, fmt.Errorf("service: failed to list auctions: %w", err)
	}

	summary := models.Summary{TotalPlayers: len(players)}

	var soldTotal int64
	for _, p := range players {
		if p.IsSold() {
			summary.SoldPlayers++
			soldTotal += *p.SoldPrice
		}
	}
	if summary.SoldPlayers > 0 {
		summary.AverageSellPrice = decimal.NewFromInt(soldTotal).
			Div(decimal.NewFromInt(int64(summary.SoldPlayers))).
			Round(0).
			IntPart()
	}

	for _, t := range teams {
		summary.GrossSpend += t.Budget - t.RemainingBudget
	}

	for _, a := range auctions {
		if a.Status == models.StatusLive {
			summary.LiveAuctionID = a.AuctionID
			break
		}
	}

	return summary, nil
}

// HowItWorks returns the auction flow stages
func (s *CatalogService) HowItWorks() []Stage {
	now := time.Now().UTC()
	base := models.BaseTimeline()
	stages := make([]Stage, 0, len(base))
	for _, st := range base {
		stages = append(stages, Stage{TimelineStage: st, Timestamp: now})
	}
	return stages
}

func orDefault(v, def string) string {
	if strings.TrimSpace(v) == "" {
		return def
	}
	return v
}

func setString(dst *string, v *string) {
	if v != nil {
		*dst = *v
	}
}
