package helpers

// Request/Response DTOs
type PlaceBidRequest struct {
	BidderID string  `json:"bidder_id" binding:"required"`
	Amount   float64 `json:"amount" binding:"required,gt=0"`
}

type ToggleWatchlistRequest struct {
	UserID string `json:"user_id" binding:"required"`
}

type CreateCheckoutRequest struct {
	ListingID string `json:"listing_id" binding:"required"`
	UserID    string `json:"user_id" binding:"required"`
}

type VerifySessionRequest struct {
	SessionID string `json:"session_id" binding:"required"`
}

type WatchlistToggleResponse struct {
	ListingID     string `json:"listing_id"`
	IsInWatchlist bool   `json:"is_in_watchlist"`
}
