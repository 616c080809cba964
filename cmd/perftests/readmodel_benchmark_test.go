package perftests

import (
	"fmt"
	"math/rand"
	"testing"
	"time"

	"nextloop-web/internal/ledger"
	model "nextloop-web/internal/models"
	"nextloop-web/internal/readmodel"
)

func makeBids(n int) []model.Bid {
	base := time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)
	bids := make([]model.Bid, 0, n)
	for i := 0; i < n; i++ {
		bids = append(bids, model.Bid{
			BidID:     fmt.Sprintf("bid_%d", i),
			Bidder:    model.UserRef{ID: fmt.Sprintf("user_%d", i%50)},
			Amount:    float64(500 + rand.Intn(10000)),
			Timestamp: base.Add(time.Duration(i) * time.Second),
		})
	}
	return bids
}

func makeListing(listingID string, bids []model.Bid) model.Listing {
	return model.Listing{
		ListingID:     listingID,
		Title:         "Benchmark listing",
		Type:          model.TypeAuction,
		Seller:        model.UserRef{ID: "seller1"},
		Category:      model.CategoryRef{ID: "watches"},
		StartingPrice: 500,
		BidIncrement:  50,
		EndTime:       time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC),
		Bids:          bids,
		TotalBids:     len(bids),
		Status:        model.StatusActive,
	}
}

// Benchmark 1: Reduce - ledger fold across typical bid history sizes
func Benchmark_Reduce(b *testing.B) {
	for _, size := range []int{1, 10, 100, 1000} {
		bids := makeBids(size)

		b.Run(fmt.Sprintf("bids_%d", size), func(b *testing.B) {
			b.ReportAllocs()
			b.ResetTimer()

			for i := 0; i < b.N; i++ {
				summary := ledger.Reduce(bids)
				if summary.TotalBids != size {
					b.Fatalf("unexpected total bids: %d", summary.TotalBids)
				}
			}
		})
	}
}

// Benchmark 2: MergeBidDelta - single-threaded replace-and-reduce path
func Benchmark_MergeBidDelta(b *testing.B) {
	bids := makeBids(100)
	endTime := time.Date(2026, 9, 1, 12, 5, 0, 0, time.UTC)

	store := readmodel.NewStore(makeListing("item_bench", nil))
	delta := model.BidDelta{Bids: bids, EndTime: &endTime}

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		store.MergeBidDelta(delta)
	}
}

// Benchmark 3: Concurrent readers against a store taking periodic merges
func Benchmark_Store_ConcurrentReads(b *testing.B) {
	store := readmodel.NewStore(makeListing("item_bench", makeBids(100)))
	delta := model.BidDelta{Bids: makeBids(100)}

	stop := make(chan struct{})
	go func() {
		for {
			select {
			case <-stop:
				return
			default:
				store.MergeBidDelta(delta)
			}
		}
	}()
	defer close(stop)

	b.ReportAllocs()
	b.ResetTimer()

	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			listing := store.Current()
			if listing.ListingID != "item_bench" {
				b.Fatalf("unexpected listing: %s", listing.ListingID)
			}
			_ = store.MinimumBid()
		}
	})
}

// Benchmark 4: Replace - full refetch cutover cost by history size
func Benchmark_Replace(b *testing.B) {
	for _, size := range []int{10, 1000} {
		listing := makeListing("item_bench", makeBids(size))
		store := readmodel.NewStore(listing)

		b.Run(fmt.Sprintf("bids_%d", size), func(b *testing.B) {
			b.ReportAllocs()
			b.ResetTimer()

			for i := 0; i < b.N; i++ {
				if err := store.Replace(listing); err != nil {
					b.Fatalf("replace failed: %v", err)
				}
			}
		})
	}
}
