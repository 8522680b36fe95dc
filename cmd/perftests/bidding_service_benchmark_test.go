package perftests

import (
	"math/rand"
	"sync/atomic"
	"testing"
	"time"
)

// Benchmark 1: PlaceBid - Isolated Players (Low Contention - Micro Benchmark)
func Benchmark_PlaceBid_Isolated(b *testing.B) {
	_, svc := setupAuction(b, b.N, 1)

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		if _, err := svc.PlaceBid(benchAuctionID, playerID(i), teamID(0), benchBasePrice); err != nil {
			b.Fatalf("failed to place bid: %v", err)
		}
	}
}

// Benchmark 2: PlaceBid - Shared Player (High Contention - Concurrency Benchmark)
func Benchmark_PlaceBid_ConcurrentSharedPlayer(b *testing.B) {
	_, svc := setupAuction(b, 1, 8)

	b.ReportAllocs()
	b.ResetTimer()

	var lastBid int64 = benchBasePrice

	b.RunParallel(func(pb *testing.PB) {
		rnd := rand.New(rand.NewSource(time.Now().UnixNano()))
		for pb.Next() {
			nextBid := atomic.AddInt64(&lastBid, benchIncrement)
			_, _ = svc.PlaceBid(benchAuctionID, playerID(0), teamID(rnd.Intn(8)), nextBid)
		}
	})
}

// Benchmark 3: GetWinningBid - Single - Threaded (Low Contention)
func Benchmark_GetWinningBid_SingleThreaded(b *testing.B) {
	repo, svc := setupAuction(b, b.N, 2)

	for i := 0; i < b.N; i++ {
		for j := int64(0); j < 10; j++ {
			_, _ = svc.PlaceBid(benchAuctionID, playerID(i), teamID(int(j%2)), benchBasePrice+j*benchIncrement)
		}
	}

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		if _, err := repo.GetWinningBid(playerID(i)); err != nil {
			b.Fatalf("failed to get winning bid: %v", err)
		}
	}
}

// Benchmark 4: GetWinningBid - Concurrent (High Contention)
func Benchmark_GetWinningBid_ConcurrentSharedPlayer(b *testing.B) {
	repo, svc := setupAuction(b, 1, 2)

	for j := int64(0); j < 100; j++ {
		_, _ = svc.PlaceBid(benchAuctionID, playerID(0), teamID(int(j%2)), benchBasePrice+j*benchIncrement)
	}

	b.ReportAllocs()
	b.ResetTimer()

	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			if _, err := repo.GetWinningBid(playerID(0)); err != nil {
				b.Errorf("failed to get winning bid: %v", err)
				return
			}
		}
	})
}

// Benchmark 5: Mixed Workload (Readers + Writers concurrently)
func Benchmark_MixedWorkload_SharedPlayer(b *testing.B) {
	repo, svc := setupAuction(b, 1, 4)

	b.ReportAllocs()
	b.ResetTimer()

	var lastBid int64 = benchBasePrice

	// Ratio: 70% readers, 30% writers
	b.RunParallel(func(pb *testing.PB) {
		rnd := rand.New(rand.NewSource(time.Now().UnixNano()))
		for pb.Next() {
			if rnd.Intn(10) < 3 {
				nextBid := atomic.AddInt64(&lastBid, benchIncrement)
				_, _ = svc.PlaceBid(benchAuctionID, playerID(0), teamID(rnd.Intn(4)), nextBid)
				continue
			}
			_, _ = repo.GetWinningBid(playerID(0))
		}
	})
}

// Benchmark 6: ClosePlayer after a short bidding war per player
func Benchmark_ClosePlayer(b *testing.B) {
	_, svc := setupAuction(b, b.N, 2)

	for i := 0; i < b.N; i++ {
		for j := int64(0); j < 3; j++ {
			_, _ = svc.PlaceBid(benchAuctionID, playerID(i), teamID(int(j%2)), benchBasePrice+j*benchIncrement)
		}
	}

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		if _, _, err := svc.ClosePlayer(benchAdmin, benchAuctionID, playerID(i)); err != nil {
			b.Fatalf("failed to close player: %v", err)
		}
	}
}
