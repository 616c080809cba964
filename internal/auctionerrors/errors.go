package auctionerrors

import "errors"

// Backend/API-level errors
var (
	ErrListingNotFound    = errors.New("listing not found")
	ErrBackendUnavailable = errors.New("backend unavailable")
	ErrBidRejected        = errors.New("bid rejected by server")
)

// Client-side validation and state errors
var (
	ErrInvalidBid       = errors.New("invalid bid")
	ErrBidTooLow        = errors.New("bid amount below minimum")
	ErrAuctionEnded     = errors.New("auction has ended")
	ErrAuctionNotActive = errors.New("listing is not an active auction")
	ErrListingMismatch  = errors.New("listing id does not match tracked listing")
	ErrSessionNotFound  = errors.New("no open session for listing")
)
