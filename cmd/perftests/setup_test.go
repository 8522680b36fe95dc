package perftests

import (
	"fmt"
	"testing"

	"auction-spot/internal/auth"
	bidding "auction-spot/internal/biddingService"
	model "auction-spot/internal/models"
	"auction-spot/internal/repository"
)

const (
	benchAuctionID = "auction-bench"
	benchIncrement = 5000
	benchBasePrice = 10000
)

var benchAdmin = auth.Principal{UserID: "bench-admin", Role: model.RoleAdmin}

// setupAuction creates a live auction over numPlayers players and numTeams
// teams with budgets large enough that only the increment rule rejects bids.
func setupAuction(tb testing.TB, numPlayers, numTeams int) (*repository.MemoryRepo, *bidding.BiddingService) {
	tb.Helper()
	repo := repository.NewMemoryRepo()

	playerIDs := make([]string, 0, numPlayers)
	for i := 0; i < numPlayers; i++ {
		id := playerID(i)
		if err := repo.AddPlayer(model.Player{
			PlayerID:  id,
			Name:      fmt.Sprintf("Load Player %d", i),
			BasePrice: benchBasePrice,
		}); err != nil {
			tb.Fatalf("failed to add player: %v", err)
		}
		playerIDs = append(playerIDs, id)
	}

	for i := 0; i < numTeams; i++ {
		repo.AddTeam(model.Team{
			TeamID:          teamID(i),
			Name:            fmt.Sprintf("Load Team %d", i),
			Budget:          1 << 50,
			RemainingBudget: 1 << 50,
		})
	}

	err := repo.AddAuction(model.Auction{
		AuctionID: benchAuctionID,
		Name:      "Load Auction",
		Status:    model.StatusLive,
		PlayerIDs: playerIDs,
		Rules:     model.AuctionRules{MinBidIncrement: benchIncrement},
	})
	if err != nil {
		tb.Fatalf("failed to add auction: %v", err)
	}

	return repo, bidding.NewBiddingService(repo, nil)
}

func playerID(i int) string { return fmt.Sprintf("player_%d", i) }
func teamID(i int) string   { return fmt.Sprintf("team_%d", i) }
