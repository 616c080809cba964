package integrationtests

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	auction "nextloop-web/internal/auctionService"
	"nextloop-web/internal/backend"
	model "nextloop-web/internal/models"
	"nextloop-web/internal/server"
	"nextloop-web/internal/watchlist"

	"github.com/gin-gonic/gin"
	"github.com/jonboulle/clockwork"
)

// fakeBackend is an in-memory stand-in for the external NextLoop API,
// implementing the endpoints the web tier consumes.
type fakeBackend struct {
	mu        sync.Mutex
	listings  map[string]model.Listing
	bids      map[string][]model.Bid
	watchlist map[string]map[string]bool
	views     map[string]int
	now       func() time.Time
}

func newFakeBackend(now func() time.Time, listings ...model.Listing) *fakeBackend {
	fb := &fakeBackend{
		listings:  make(map[string]model.Listing),
		bids:      make(map[string][]model.Bid),
		watchlist: make(map[string]map[string]bool),
		views:     make(map[string]int),
		now:       now,
	}
	for _, l := range listings {
		fb.listings[l.ListingID] = l
	}
	return fb
}

// snapshotLocked derives the authoritative listing view. Caller holds mu.
func (fb *fakeBackend) snapshotLocked(listingID string) (model.Listing, bool) {
	listing, ok := fb.listings[listingID]
	if !ok {
		return model.Listing{}, false
	}

	bids := fb.bids[listingID]
	listing.Bids = append([]model.Bid(nil), bids...)
	listing.TotalBids = len(bids)
	listing.Views = fb.views[listingID]
	if len(bids) > 0 {
		winning := bids[0]
		for _, b := range bids[1:] {
			if b.Amount > winning.Amount || (b.Amount == winning.Amount && b.Timestamp.Before(winning.Timestamp)) {
				winning = b
			}
		}
		price := winning.Amount
		bidder := winning.Bidder
		listing.CurrentPrice = &price
		listing.HighestBidder = &bidder
	}
	return listing, true
}

func (fb *fakeBackend) handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /listing/{id}", func(w http.ResponseWriter, r *http.Request) {
		fb.mu.Lock()
		listing, ok := fb.snapshotLocked(r.PathValue("id"))
		fb.mu.Unlock()
		if !ok {
			writeJSON(w, http.StatusNotFound, map[string]string{"message": "listing not found"})
			return
		}
		writeJSON(w, http.StatusOK, listing)
	})

	mux.HandleFunc("GET /listing/{id}/bids", func(w http.ResponseWriter, r *http.Request) {
		fb.mu.Lock()
		listing, ok := fb.snapshotLocked(r.PathValue("id"))
		fb.mu.Unlock()
		if !ok {
			writeJSON(w, http.StatusNotFound, map[string]string{"message": "listing not found"})
			return
		}
		writeJSON(w, http.StatusOK, model.BidDelta{Bids: listing.Bids, EndTime: &listing.EndTime})
	})

	mux.HandleFunc("POST /listing/{id}/bid", func(w http.ResponseWriter, r *http.Request) {
		var payload struct {
			BidderID string  `json:"bidderId"`
			Amount   float64 `json:"amount"`
		}
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"message": "invalid payload"})
			return
		}

		fb.mu.Lock()
		defer fb.mu.Unlock()

		listingID := r.PathValue("id")
		listing, ok := fb.snapshotLocked(listingID)
		if !ok {
			writeJSON(w, http.StatusNotFound, map[string]string{"message": "listing not found"})
			return
		}
		if payload.Amount < listing.MinimumBid() {
			writeJSON(w, http.StatusConflict, map[string]string{"message": "bid below minimum"})
			return
		}

		fb.bids[listingID] = append(fb.bids[listingID], model.Bid{
			BidID:     "bid" + time.Now().Format("150405.000000"),
			Bidder:    model.UserRef{ID: payload.BidderID},
			Amount:    payload.Amount,
			Timestamp: fb.now(),
		})

		updated, _ := fb.snapshotLocked(listingID)
		writeJSON(w, http.StatusOK, map[string]any{
			"message":              "bid accepted",
			"listing":              updated,
			"extended":             false,
			"extensions_remaining": 0,
		})
	})

	mux.HandleFunc("POST /listing/{id}/view", func(w http.ResponseWriter, r *http.Request) {
		fb.mu.Lock()
		fb.views[r.PathValue("id")]++
		fb.mu.Unlock()
		writeJSON(w, http.StatusOK, map[string]string{"message": "ok"})
	})

	mux.HandleFunc("PUT /watchlist/toggle/{id}", func(w http.ResponseWriter, r *http.Request) {
		var payload struct {
			UserID string `json:"userId"`
		}
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"message": "invalid payload"})
			return
		}

		fb.mu.Lock()
		if fb.watchlist[payload.UserID] == nil {
			fb.watchlist[payload.UserID] = make(map[string]bool)
		}
		listingID := r.PathValue("id")
		member := !fb.watchlist[payload.UserID][listingID]
		fb.watchlist[payload.UserID][listingID] = member
		fb.mu.Unlock()

		writeJSON(w, http.StatusOK, map[string]any{"message": "ok", "isInWatchlist": member})
	})

	mux.HandleFunc("GET /watchlist/{user}", func(w http.ResponseWriter, r *http.Request) {
		fb.mu.Lock()
		var listings []model.Listing
		for listingID, member := range fb.watchlist[r.PathValue("user")] {
			if !member {
				continue
			}
			if listing, ok := fb.snapshotLocked(listingID); ok {
				listings = append(listings, listing)
			}
		}
		fb.mu.Unlock()

		if listings == nil {
			listings = []model.Listing{}
		}
		writeJSON(w, http.StatusOK, map[string]any{"watchlist": listings})
	})

	mux.HandleFunc("POST /payment/create-checkout-session", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{
			"data": map[string]string{"url": "https://checkout.example/cs_test"},
		})
	})

	mux.HandleFunc("POST /payment/verify-session", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{
			"order_id":   "order1",
			"listing_id": "listing1",
			"status":     "paid",
			"amount":     1050.0,
			"currency":   "CHF",
		})
	})

	mux.HandleFunc("GET /search", func(w http.ResponseWriter, r *http.Request) {
		fb.mu.Lock()
		var matches []model.Listing
		for id := range fb.listings {
			if listing, ok := fb.snapshotLocked(id); ok {
				matches = append(matches, listing)
			}
		}
		fb.mu.Unlock()

		if matches == nil {
			matches = []model.Listing{}
		}
		writeJSON(w, http.StatusOK, map[string]any{
			"data": matches,
			"pagination": model.Pagination{
				Page: 1, Limit: 20, TotalPages: 1, TotalItems: len(matches),
			},
		})
	})

	return mux
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

// SetupTestStack wires the full web tier against an in-memory backend.
// The fake clock keeps the pollers quiet so tests stay deterministic.
func SetupTestStack(t *testing.T, listings ...model.Listing) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	clock := clockwork.NewFakeClockAt(time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC))
	fb := newFakeBackend(clock.Now, listings...)

	backendServer := httptest.NewServer(fb.handler())
	t.Cleanup(backendServer.Close)

	api := backend.NewClient(backendServer.URL, 5*time.Second)
	hub := auction.NewHub(api, clock, 5*time.Second)
	t.Cleanup(hub.CloseAll)

	registry := watchlist.NewRegistry(api)
	return server.SetupRouter(hub, registry, api)
}

// ExecuteRequestAndParse executes an HTTP request on the given router and parses the response
func ExecuteRequestAndParse(t *testing.T, router *gin.Engine, method, url string, body any) (map[string]any, *httptest.ResponseRecorder) {
	t.Helper()

	var reqBody []byte
	var err error

	switch v := body.(type) {
	case nil:
	case []byte:
		reqBody = v
	default:
		reqBody, err = json.Marshal(v)
		if err != nil {
			t.Fatalf("failed to marshal body: %v", err)
		}
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, url, bytes.NewReader(reqBody))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	var resp map[string]any
	if len(w.Body.Bytes()) > 0 {
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("failed to unmarshal response: %v", err)
		}
	}

	return resp, w
}

// testClock mirrors the fake clock base used by SetupTestStack
var testClockBase = time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)

// activeAuction builds a live auction listing ending relative to the test clock
func activeAuction(listingID string, startingPrice float64, ttl time.Duration) model.Listing {
	return model.Listing{
		ListingID:     listingID,
		Title:         "Vintage chronograph",
		Description:   "Swiss manual wind, 1968",
		Type:          model.TypeAuction,
		Seller:        model.UserRef{ID: "seller1"},
		Category:      model.CategoryRef{ID: "watches"},
		StartingPrice: startingPrice,
		BidIncrement:  50,
		StartTime:     testClockBase.Add(-time.Hour),
		EndTime:       testClockBase.Add(ttl),
		Status:        model.StatusActive,
	}
}
