package backend

import (
	"context"

	model "nextloop-web/internal/models"
)

//go:generate mockgen -source=api.go -destination=mock_api.go -package=backend

// API is the surface of the external NextLoop backend this tier consumes.
// All business logic (bid ordering, auction extension, payment settlement,
// watchlist persistence) lives behind these calls.
type API interface {
	GetListing(ctx context.Context, listingID string) (model.Listing, error)
	GetBidUpdates(ctx context.Context, listingID string) (model.BidDelta, error)
	PlaceBid(ctx context.Context, listingID, bidderID string, amount float64) (PlaceBidResult, error)
	IncrementViewCount(ctx context.Context, listingID string) error
	ToggleWatchlist(ctx context.Context, listingID, userID string) (WatchlistToggleResult, error)
	GetWatchlist(ctx context.Context, userID string) ([]model.Listing, error)
	CreateCheckoutSession(ctx context.Context, listingID, userID string) (CheckoutSession, error)
	VerifyCheckoutSession(ctx context.Context, sessionID string) (OrderSummary, error)
	SearchListings(ctx context.Context, query SearchQuery) (SearchResult, error)
}

// PlaceBidResult is the authoritative outcome of a bid submission. Listing is
// the full post-bid snapshot and always replaces the local read model.
type PlaceBidResult struct {
	Message             string        `json:"message"`
	Listing             model.Listing `json:"listing"`
	Extended            bool          `json:"extended"`
	ExtensionsRemaining int           `json:"extensions_remaining"`
}

// WatchlistToggleResult carries the server truth after a toggle.
type WatchlistToggleResult struct {
	Message       string `json:"message"`
	IsInWatchlist bool   `json:"isInWatchlist"`
}

// CheckoutSession points the buyer at the hosted payment page.
type CheckoutSession struct {
	URL string `json:"url"`
}

// OrderSummary is the verification result for a completed checkout session.
type OrderSummary struct {
	OrderID   string  `json:"order_id"`
	ListingID string  `json:"listing_id"`
	BuyerID   string  `json:"buyer_id"`
	Amount    float64 `json:"amount"`
	Currency  string  `json:"currency"`
	Status    string  `json:"status"`
}

// SearchQuery is the filter set forwarded to the search endpoint.
type SearchQuery struct {
	Query    string
	Category string
	MinPrice string
	MaxPrice string
	Sort     string
	Page     int
	Limit    int
}

// SearchResult is a page of listings plus pagination metadata.
type SearchResult struct {
	Data       []model.Listing  `json:"data"`
	Pagination model.Pagination `json:"pagination"`
}
