package poller

import (
	"context"
	"time"

	"github.com/jonboulle/clockwork"

	"nextloop-web/internal/countdown"
	model "nextloop-web/internal/models"
	"nextloop-web/internal/readmodel"
	"nextloop-web/utils"
)

// BidSource is the slice of the backend API the poller needs. The incremental
// endpoint is best-effort; GetListing is the reliable fallback.
type BidSource interface {
	GetBidUpdates(ctx context.Context, listingID string) (model.BidDelta, error)
	GetListing(ctx context.Context, listingID string) (model.Listing, error)
}

// Poller keeps a read-model store approximately fresh while an auction is
// live. Idle → Polling → Stopped: it never starts once the auction has ended,
// re-checks the live end time on every tick, and runs ticks sequentially on a
// single goroutine so no two ticks for the same listing overlap.
type Poller struct {
	source   BidSource
	store    *readmodel.Store
	clock    clockwork.Clock
	interval time.Duration
}

// New creates a poller for the store's listing.
func New(source BidSource, store *readmodel.Store, clock clockwork.Clock, interval time.Duration) *Poller {
	return &Poller{
		source:   source,
		store:    store,
		clock:    clock,
		interval: interval,
	}
}

// Run polls until the auction ends or ctx is cancelled. Transient failures
// are logged, never fatal: staleness is tolerated, interruption is not.
func (p *Poller) Run(ctx context.Context) {
	if countdown.IsEnded(p.store.EndTime(), p.clock.Now()) {
		return
	}

	ticker := p.clock.NewTicker(p.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.Chan():
			// Re-read the live end time: a delta-delivered extension keeps
			// polling alive, and crossing the deadline stops it for good.
			if countdown.IsEnded(p.store.EndTime(), p.clock.Now()) {
				return
			}
			p.tick(ctx)
		}
	}
}

// tick fetches incremental bid updates and merges them; on failure it falls
// back to a full-listing refetch and replace.
func (p *Poller) tick(ctx context.Context) {
	listingID := p.store.ListingID()

	delta, err := p.source.GetBidUpdates(ctx, listingID)
	if err == nil {
		p.store.MergeBidDelta(delta)
		return
	}

	utils.Warn("bid update poll failed, falling back to full refetch", map[string]any{
		"listing_id": listingID,
		"error":      err.Error(),
	})

	listing, err := p.source.GetListing(ctx, listingID)
	if err != nil {
		utils.Error("fallback listing refetch failed", map[string]any{
			"listing_id": listingID,
			"error":      err.Error(),
		})
		return
	}

	if err := p.store.Replace(listing); err != nil {
		utils.Error("fallback replace rejected", map[string]any{
			"listing_id": listingID,
			"error":      err.Error(),
		})
	}
}
