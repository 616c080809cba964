package readmodel

import (
	"fmt"
	"sync"
	"time"

	"nextloop-web/internal/auctionerrors"
	"nextloop-web/internal/ledger"
	model "nextloop-web/internal/models"
)

// Store holds the client's authoritative view of one listing. It is mutated
// only via Replace (full overwrite from a server snapshot) and MergeBidDelta
// (cheap per-poll update of the bid-related fields). Timer goroutines and
// request handlers read it concurrently, so access is RWMutex-guarded.
type Store struct {
	mu      sync.RWMutex
	listing model.Listing
}

// NewStore creates a store tracking the given listing snapshot.
func NewStore(listing model.Listing) *Store {
	return &Store{listing: listing}
}

// ListingID returns the id of the tracked listing. Immutable for the store's lifetime.
func (s *Store) ListingID() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.listing.ListingID
}

// EndTime returns the live end time. Timers re-read this every tick so a
// server-granted extension delivered through a delta is picked up transparently.
func (s *Store) EndTime() time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.listing.EndTime
}

// Current returns a snapshot for rendering. The bid slice is copied so
// callers can't observe later mutations.
func (s *Store) Current() model.Listing {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snapshot := s.listing
	snapshot.Bids = append([]model.Bid(nil), s.listing.Bids...)
	return snapshot
}

// Replace unconditionally overwrites the cached listing with an authoritative
// server snapshot. Used after bid submission and as the polling fallback.
// A mismatched listing id is a programming error and fails loudly.
func (s *Store) Replace(listing model.Listing) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if listing.ListingID != s.listing.ListingID {
		return fmt.Errorf("replace with listing %s while tracking %s: %w",
			listing.ListingID, s.listing.ListingID, auctionerrors.ErrListingMismatch)
	}

	s.listing = listing
	return nil
}

// MergeBidDelta applies an incremental bid payload: the bid list is replaced,
// derived fields are recomputed through the reducer, and the end time is
// updated when the delta carries one. All other listing fields are untouched.
// Idempotent, so out-of-order application of deltas for a monotonically
// growing bid set is safe.
func (s *Store) MergeBidDelta(delta model.BidDelta) {
	summary := ledger.Reduce(delta.Bids)

	s.mu.Lock()
	defer s.mu.Unlock()

	s.listing.Bids = append([]model.Bid(nil), delta.Bids...)
	s.listing.CurrentPrice = summary.CurrentPrice
	s.listing.HighestBidder = summary.HighestBidder
	s.listing.TotalBids = summary.TotalBids
	if delta.EndTime != nil {
		s.listing.EndTime = *delta.EndTime
	}
}

// MinimumBid returns the minimum acceptable next bid for the tracked listing.
func (s *Store) MinimumBid() float64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.listing.MinimumBid()
}
