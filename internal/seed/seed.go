package seed

import (
	"fmt"
	"math/rand"
	"time"

	model "auction-spot/internal/models"
	"auction-spot/internal/repository"
)

// Fixed identifiers of the demo dataset
const (
	AuctionID = "auction-spot-2025"

	AdminUserID = "user-admin"
	PriyaUserID = "user-priya"
	RohanUserID = "user-rohan"

	TitansTeamID = "team-umumba"
	BlitzTeamID  = "team-indiabulls"
)

var (
	cities      = []string{"Mumbai", "Bengaluru", "Delhi", "Hyderabad", "Chennai", "Pune", "Gurgaon"}
	entities    = []string{"Infosys", "TCS", "HCL", "Accenture", "Wipro", "Tech Mahindra", "Reliance"}
	departments = []string{"Engineering", "Product", "Marketing", "Sales", "Finance", "HR", "Operations"}
	sports      = []string{"Cricket", "Football", "Basketball", "Tennis", "Badminton", "Hockey"}
	criteria    = []string{"Elite", "Professional", "Intermediate", "Beginner"}
	genders     = []string{"Male", "Female"}
	employment  = []string{"Full-time", "Part-time", "Contract"}
	firstNames  = []string{"Raj", "Priya", "Arjun", "Sneha", "Vikram", "Ishita", "Kabir", "Meera", "Dev", "Trisha"}
	lastNames   = []string{"Sharma", "Verma", "Singh", "Patel", "Iyer", "Reddy", "Menon", "Desai", "Chowdhury", "Nair"}
	avatars     = []string{
		"https://res.cloudinary.com/dv1eyqkzf/image/upload/v1738456202/auctionspot/captain-01.png",
		"https://res.cloudinary.com/dv1eyqkzf/image/upload/v1738456202/auctionspot/captain-02.png",
		"https://res.cloudinary.com/dv1eyqkzf/image/upload/v1738456202/auctionspot/captain-03.png",
		"https://res.cloudinary.com/dv1eyqkzf/image/upload/v1738456202/auctionspot/captain-04.png",
	}
)

const adminAvatar = "https://res.cloudinary.com/dv1eyqkzf/image/upload/v1738456202/auctionspot/admin.png"

// Store is what Populate writes to
type Store interface {
	AddPlayer(player model.Player) error
	AddTeam(team model.Team)
	AddUser(user model.User)
	AddAuction(auction model.Auction) error
}

var _ Store = (*repository.MemoryRepo)(nil)

// Populate loads the demo dataset: generated players, two teams, three users
// and one live auction over every player. The same randomSeed always yields
// the same players.
func Populate(store Store, players int, randomSeed int64, rules model.AuctionRules) error {
	if players < 1 {
		return fmt.Errorf("seed: need at least one player, got %d", players)
	}

	rng := rand.New(rand.NewSource(randomSeed))
	pick := func(list []string) string { return list[rng.Intn(len(list))] }

	ids := make([]string, 0, players)
	for i := 1; i <= players; i++ {
		sport := pick(sports)
		games := []model.GameRating{}
		seen := map[string]bool{}
		for _, g := range []string{sport, pick(sports), pick(sports)} {
			if seen[g] {
				continue
			}
			seen[g] = true
			games = append(games, model.GameRating{Game: g, Rating: 5 + rng.Intn(6)})
		}

		p := model.Player{
			PlayerID:       fmt.Sprintf("player-%d", i),
			Name:           pick(firstNames) + " " + pick(lastNames),
			Entity:         pick(entities),
			Department:     pick(departments),
			Location:       pick(cities),
			Criteria:       pick(criteria),
			Gender:         pick(genders),
			EmploymentType: pick(employment),
			Games:          games,
			IsCaptain:      i == 1,
			Avatar:         avatars[i%len(avatars)],
			Brief:          "Indian enterprise athlete bringing clutch performances in inter-corporate leagues with proven leadership impact.",
			SportCategory:  sport,
			BasePrice:      10000 + rng.Int63n(40000),
		}
		if err := store.AddPlayer(p); err != nil {
			return fmt.Errorf("seed: %w", err)
		}
		ids = append(ids, p.PlayerID)
	}

	store.AddTeam(model.Team{
		TeamID:          TitansTeamID,
		Name:            "U Mumba Titans",
		OwnerID:         AdminUserID,
		OwnerName:       "AuctionSpot Control",
		Location:        "Mumbai",
		Budget:          rules.InitialBudget,
		RemainingBudget: rules.InitialBudget,
		CaptainID:       ids[0],
		SportFocus:      []string{"Cricket", "Badminton"},
	})
	store.AddTeam(model.Team{
		TeamID:          BlitzTeamID,
		Name:            "Bengaluru Blitz",
		OwnerID:         PriyaUserID,
		OwnerName:       "Priya Verma",
		Location:        "Bengaluru",
		Budget:          rules.InitialBudget,
		RemainingBudget: rules.InitialBudget,
		SportFocus:      []string{"Football", "Basketball"},
	})

	store.AddUser(model.User{UserID: AdminUserID, Name: "Control Admin", Email: "admin@auctionspot.in", Role: model.RoleAdmin, Avatar: adminAvatar})
	store.AddUser(model.User{UserID: PriyaUserID, Name: "Priya Verma", Email: "priya@auctionspot.in", Role: model.RoleBidder, TeamID: BlitzTeamID, Avatar: avatars[1]})
	store.AddUser(model.User{UserID: RohanUserID, Name: "Rohan Gupta", Email: "rohan@auctionspot.in", Role: model.RoleBidder, TeamID: TitansTeamID, Avatar: avatars[2]})

	now := time.Now().UTC()
	scheduled := now.Add(time.Hour)
	started := now.Add(-time.Minute)
	err := store.AddAuction(model.Auction{
		AuctionID:       AuctionID,
		Name:            "AuctionSpot Premier League 2025",
		Description:     "Enterprise sports auction for Indian corporates with multi-sport squads.",
		Status:          model.StatusLive,
		ScheduledTime:   &scheduled,
		StartTime:       &started,
		PlayerIDs:       ids,
		CurrentPlayerID: ids[0],
		Rules:           rules,
		Timeline:        model.BaseTimeline(),
	})
	if err != nil {
		return fmt.Errorf("seed: %w", err)
	}
	return nil
}
