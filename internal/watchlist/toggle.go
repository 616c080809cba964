package watchlist

import (
	"context"
	"fmt"
	"sync"

	"nextloop-web/internal/backend"
)

// Toggle is the member/not-member state machine for one (user, listing)
// pair. The flip is optimistic; on failure it is rolled back, and on success
// the state reconciles to the server's answer.
type Toggle struct {
	api       backend.API
	userID    string
	listingID string

	mu     sync.Mutex
	member bool
}

// NewToggle creates a toggle with a known initial membership.
func NewToggle(api backend.API, userID, listingID string, member bool) *Toggle {
	return &Toggle{
		api:       api,
		userID:    userID,
		listingID: listingID,
		member:    member,
	}
}

// Member returns the current client-side membership state.
func (t *Toggle) Member() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.member
}

// Flip optimistically inverts membership, then confirms with the backend.
// On failure the optimistic flip is undone and the previous state returned
// alongside the error.
func (t *Toggle) Flip(ctx context.Context) (bool, error) {
	t.mu.Lock()
	previous := t.member
	t.member = !t.member
	t.mu.Unlock()

	result, err := t.api.ToggleWatchlist(ctx, t.listingID, t.userID)
	if err != nil {
		t.mu.Lock()
		t.member = previous
		t.mu.Unlock()
		return previous, fmt.Errorf("watchlist: toggle failed for listing %s: %w", t.listingID, err)
	}

	t.mu.Lock()
	t.member = result.IsInWatchlist
	t.mu.Unlock()
	return result.IsInWatchlist, nil
}

// Registry hands out toggles per (user, listing) so repeated flips share
// state. Membership for a pair seen for the first time is assumed false and
// corrected by the first server response.
type Registry struct {
	api backend.API

	mu      sync.Mutex
	toggles map[string]*Toggle
}

// NewRegistry creates an empty toggle registry.
func NewRegistry(api backend.API) *Registry {
	return &Registry{
		api:     api,
		toggles: make(map[string]*Toggle),
	}
}

// Flip toggles membership for the pair, creating the toggle on first use.
func (r *Registry) Flip(ctx context.Context, listingID, userID string) (bool, error) {
	key := userID + "/" + listingID

	r.mu.Lock()
	t, ok := r.toggles[key]
	if !ok {
		t = NewToggle(r.api, userID, listingID, false)
		r.toggles[key] = t
	}
	r.mu.Unlock()

	return t.Flip(ctx)
}
