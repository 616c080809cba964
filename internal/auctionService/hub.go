package auction

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"

	"nextloop-web/internal/auctionerrors"
	"nextloop-web/internal/backend"
	"nextloop-web/utils"
)

// Hub owns every open auction session. It is the explicit handle the rest of
// the application goes through instead of ambient global state: created once
// at startup, passed into the handlers that need it.
type Hub struct {
	api          backend.API
	clock        clockwork.Clock
	pollInterval time.Duration

	mu       sync.Mutex
	sessions map[string]*Session
}

// NewHub creates an empty session hub.
func NewHub(api backend.API, clock clockwork.Clock, pollInterval time.Duration) *Hub {
	return &Hub{
		api:          api,
		clock:        clock,
		pollInterval: pollInterval,
		sessions:     make(map[string]*Session),
	}
}

// Open returns the session for a listing, creating it on first view.
func (h *Hub) Open(ctx context.Context, listingID string) (*Session, error) {
	h.mu.Lock()
	if s, ok := h.sessions[listingID]; ok {
		h.mu.Unlock()
		return s, nil
	}
	h.mu.Unlock()

	// Opened outside the lock: the initial fetch is a network call. A racing
	// open for the same listing keeps the first registered session.
	s, err := OpenSession(ctx, h.api, h.clock, listingID, h.pollInterval)
	if err != nil {
		return nil, err
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	if existing, ok := h.sessions[listingID]; ok {
		go s.Close()
		return existing, nil
	}
	h.sessions[listingID] = s

	utils.Info("auction session opened", map[string]any{"listing_id": listingID})
	return s, nil
}

// ViewAuction opens (or reuses) the session and returns its snapshot.
func (h *Hub) ViewAuction(ctx context.Context, listingID string) (Snapshot, error) {
	s, err := h.Open(ctx, listingID)
	if err != nil {
		return Snapshot{}, err
	}
	return s.Snapshot(), nil
}

// PlaceBid submits a bid through the listing's session. The session must
// already be open: bidding starts from a viewed auction.
func (h *Hub) PlaceBid(ctx context.Context, listingID, bidderID string, amount float64) (BidOutcome, error) {
	h.mu.Lock()
	s, ok := h.sessions[listingID]
	h.mu.Unlock()
	if !ok {
		return BidOutcome{}, fmt.Errorf("hub: listing %s: %w", listingID, auctionerrors.ErrSessionNotFound)
	}
	return s.SubmitBid(ctx, bidderID, amount)
}

// CloseAuction tears down the session for a listing, cancelling its timers.
// Reports whether a session existed.
func (h *Hub) CloseAuction(listingID string) bool {
	h.mu.Lock()
	s, ok := h.sessions[listingID]
	delete(h.sessions, listingID)
	h.mu.Unlock()

	if !ok {
		return false
	}
	s.Close()
	utils.Info("auction session closed", map[string]any{"listing_id": listingID})
	return true
}

// CloseAll tears down every open session. Called on shutdown.
func (h *Hub) CloseAll() {
	h.mu.Lock()
	sessions := h.sessions
	h.sessions = make(map[string]*Session)
	h.mu.Unlock()

	for _, s := range sessions {
		s.Close()
	}
}
