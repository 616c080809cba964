package auction

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"

	"nextloop-web/internal/auctionerrors"
	"nextloop-web/internal/backend"
	"nextloop-web/internal/countdown"
	model "nextloop-web/internal/models"
	"nextloop-web/internal/poller"
	"nextloop-web/internal/readmodel"
	"nextloop-web/utils"
)

// Session is one viewer-facing auction view: the read-model store plus the
// two timers that keep it fresh. The store is owned exclusively by the
// session; the poller and countdown hold only the session context and are
// cancelled before the session is discarded.
type Session struct {
	listingID string
	api       backend.API
	store     *readmodel.Store
	clock     clockwork.Clock

	cancel context.CancelFunc
	wg     sync.WaitGroup

	mu      sync.Mutex
	display string
	ended   bool
	notice  string
}

// Snapshot is the render-ready view of a session.
type Snapshot struct {
	Listing    model.Listing `json:"listing"`
	MinimumBid float64       `json:"minimum_bid"`
	Countdown  string        `json:"countdown"`
	Ended      bool          `json:"ended"`
	Notice     string        `json:"notice,omitempty"`
}

// BidOutcome is the result of a successful bid submission.
type BidOutcome struct {
	Message             string  `json:"message"`
	Extended            bool    `json:"extended"`
	ExtensionsRemaining int     `json:"extensions_remaining"`
	NextMinimum         float64 `json:"next_minimum"`
}

// OpenSession fetches the listing and, for active auctions, starts the bid
// poller and the 1 Hz countdown. A failed initial fetch is fatal: no partial
// session is created.
func OpenSession(ctx context.Context, api backend.API, clock clockwork.Clock, listingID string, pollInterval time.Duration) (*Session, error) {
	listing, err := api.GetListing(ctx, listingID)
	if err != nil {
		return nil, fmt.Errorf("session: failed to load listing %s: %w", listingID, err)
	}

	// Best effort; the view counter is not worth failing a page for.
	if err := api.IncrementViewCount(ctx, listingID); err != nil {
		utils.Warn("view count increment failed", map[string]any{
			"listing_id": listingID,
			"error":      err.Error(),
		})
	}

	store := readmodel.NewStore(listing)
	sessionCtx, cancel := context.WithCancel(context.Background())

	s := &Session{
		listingID: listingID,
		api:       api,
		store:     store,
		clock:     clock,
		cancel:    cancel,
	}
	s.display, s.ended = countdown.Format(listing.EndTime, clock.Now())

	if listing.Status == model.StatusActive {
		p := poller.New(api, store, clock, pollInterval)
		s.wg.Add(1)
		go func() {
			defer s.wg.Done()
			p.Run(sessionCtx)
		}()

		c := countdown.NewController(store, clock, s.setDisplay)
		s.wg.Add(1)
		go func() {
			defer s.wg.Done()
			c.Run(sessionCtx)
		}()
	}

	return s, nil
}

// SubmitBid validates the bid locally, submits it, and on success replaces
// the whole read model with the server's snapshot. A local validation
// failure never reaches the network; a server rejection leaves the store
// untouched.
func (s *Session) SubmitBid(ctx context.Context, bidderID string, amount float64) (BidOutcome, error) {
	current := s.store.Current()

	if bidderID == "" {
		return BidOutcome{}, fmt.Errorf("session: %w - missing bidder id", auctionerrors.ErrInvalidBid)
	}
	if amount <= 0 {
		return BidOutcome{}, fmt.Errorf("session: %w - non-positive bid amount", auctionerrors.ErrInvalidBid)
	}
	if current.Status != model.StatusActive {
		return BidOutcome{}, fmt.Errorf("session: %w - status is %s", auctionerrors.ErrAuctionNotActive, current.Status)
	}
	if countdown.IsEnded(current.EndTime, s.clock.Now()) {
		return BidOutcome{}, fmt.Errorf("session: %w", auctionerrors.ErrAuctionEnded)
	}
	if minimum := current.MinimumBid(); amount < minimum {
		return BidOutcome{}, fmt.Errorf("session: %w - minimum bid is %.2f", auctionerrors.ErrBidTooLow, minimum)
	}

	result, err := s.api.PlaceBid(ctx, s.listingID, bidderID, amount)
	if err != nil {
		return BidOutcome{}, fmt.Errorf("session: failed to place bid on %s: %w", s.listingID, err)
	}

	// Full replace, never a merge: the bid may have triggered server-side
	// effects (auto-extension, outbid handling) a partial merge would miss.
	if err := s.store.Replace(result.Listing); err != nil {
		return BidOutcome{}, fmt.Errorf("session: %w", err)
	}

	if result.Extended {
		s.setNotice("auction extended")
	}

	return BidOutcome{
		Message:             result.Message,
		Extended:            result.Extended,
		ExtensionsRemaining: result.ExtensionsRemaining,
		NextMinimum:         result.Listing.MinimumBid(),
	}, nil
}

// Snapshot returns the current render state. The extension notice is
// transient and cleared once read.
func (s *Session) Snapshot() Snapshot {
	listing := s.store.Current()

	s.mu.Lock()
	display, ended, notice := s.display, s.ended, s.notice
	s.notice = ""
	s.mu.Unlock()

	return Snapshot{
		Listing:    listing,
		MinimumBid: listing.MinimumBid(),
		Countdown:  display,
		Ended:      ended,
		Notice:     notice,
	}
}

// Close cancels both timers and waits for them to exit. Safe to call more
// than once.
func (s *Session) Close() {
	s.cancel()
	s.wg.Wait()
}

func (s *Session) setDisplay(display string, ended bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.display = display
	s.ended = ended
}

func (s *Session) setNotice(notice string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.notice = notice
}
