package models

// BaseTimeline returns the default stages of an auction, from setup to tournament sync
func BaseTimeline() []TimelineStage {
	return []TimelineStage{
		{Key: "auction_setup", Title: "Auction Setup", Description: "Configure rules, budgets, and player pool", Status: StageComplete},
		{Key: "team_registration", Title: "Team Registration", Description: "Captains register budgets and squad needs", Status: StageComplete},
		{Key: "auction_start", Title: "Auction Start", Description: "Auctioneer opens live room", Status: StageActive},
		{Key: "bidding_process", Title: "Bidding Process", Description: "Live bidding with countdown timers", Status: StagePending},
		{Key: "player_allocation", Title: "Player Allocation", Description: "Winners assigned to team budgets", Status: StagePending},
		{Key: "auction_continuation", Title: "Auction Continuation", Description: "Repeat until squads are filled", Status: StagePending},
		{Key: "post_auction_results", Title: "Post-Auction Results", Description: "Insights and analytics published", Status: StagePending},
		{Key: "tournament_integration", Title: "Tournament Integration", Description: "Teams synced with league fixtures", Status: StagePending},
	}
}
