package models

import (
	"encoding/json"
	"time"
)

// ListingStatus is the server-assigned lifecycle state of a listing.
// The client only acts on ACTIVE listings.
type ListingStatus string

const (
	StatusDraft     ListingStatus = "DRAFT"
	StatusActive    ListingStatus = "ACTIVE"
	StatusSold      ListingStatus = "SOLD"
	StatusCancelled ListingStatus = "CANCELLED"
	StatusPending   ListingStatus = "PENDING"
)

// ListingType distinguishes auction listings from direct-buy listings.
type ListingType string

const (
	TypeAuction   ListingType = "AUCTION"
	TypeDirectBuy ListingType = "DIRECT_BUY"
)

// User represents a marketplace participant as embedded in listings and bids
type User struct {
	UserID   string `json:"user_id"`
	Username string `json:"username"`
	Verified bool   `json:"verified,omitempty"`
}

// Category is an embedded category record
type Category struct {
	CategoryID string `json:"category_id"`
	Name       string `json:"name"`
}

// Listing is the client-side cached view of one listing.
// CurrentPrice and HighestBidder are nil until the first bid arrives.
type Listing struct {
	ListingID     string        `json:"listing_id"`
	Title         string        `json:"title"`
	Description   string        `json:"description"`
	Type          ListingType   `json:"type"`
	Seller        UserRef       `json:"seller"`
	Category      CategoryRef   `json:"category"`
	StartingPrice float64       `json:"starting_price"`
	CurrentPrice  *float64      `json:"current_price"`
	BidIncrement  float64       `json:"bid_increment"`
	StartTime     time.Time     `json:"start_time"`
	EndTime       time.Time     `json:"end_time"`
	Bids          []Bid         `json:"bids"`
	TotalBids     int           `json:"total_bids"`
	HighestBidder *UserRef      `json:"highest_bidder"`
	Status        ListingStatus `json:"status"`
	Views         int           `json:"views"`
}

// MinimumBid returns the smallest amount the next bid must reach:
// current price plus increment once bidding has started, starting price before.
func (l Listing) MinimumBid() float64 {
	if l.CurrentPrice != nil {
		return *l.CurrentPrice + l.BidIncrement
	}
	return l.StartingPrice
}

// Bid is an immutable (bidder, amount, timestamp) tuple. Timestamps are
// server-assigned and used only for tie-break and display ordering.
type Bid struct {
	BidID     string    `json:"bid_id"`
	Bidder    UserRef   `json:"bidder"`
	Amount    float64   `json:"amount"`
	Timestamp time.Time `json:"timestamp"`
}

// BidDelta is the incremental payload returned by the bid-updates endpoint.
// EndTime is present when the server has extended the auction.
type BidDelta struct {
	Bids    []Bid      `json:"bids"`
	EndTime *time.Time `json:"end_time,omitempty"`
}

// Pagination accompanies search results
type Pagination struct {
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	TotalPages int `json:"total_pages"`
	TotalItems int `json:"total_items"`
}

// UserRef is either a bare user id or an embedded profile. The backend sends
// both shapes for seller and bidder fields; the union is resolved here, once,
// so the rest of the code never re-checks shape.
type UserRef struct {
	ID      string
	Profile *User
}

// Embedded reports whether the full profile is present.
func (r UserRef) Embedded() bool { return r.Profile != nil }

func (r *UserRef) UnmarshalJSON(data []byte) error {
	var id string
	if err := json.Unmarshal(data, &id); err == nil {
		r.ID = id
		r.Profile = nil
		return nil
	}
	var u User
	if err := json.Unmarshal(data, &u); err != nil {
		return err
	}
	r.ID = u.UserID
	r.Profile = &u
	return nil
}

func (r UserRef) MarshalJSON() ([]byte, error) {
	if r.Profile != nil {
		return json.Marshal(r.Profile)
	}
	return json.Marshal(r.ID)
}

// CategoryRef is the same string-or-object union for category fields.
type CategoryRef struct {
	ID       string
	Category *Category
}

func (r *CategoryRef) UnmarshalJSON(data []byte) error {
	var id string
	if err := json.Unmarshal(data, &id); err == nil {
		r.ID = id
		r.Category = nil
		return nil
	}
	var c Category
	if err := json.Unmarshal(data, &c); err != nil {
		return err
	}
	r.ID = c.CategoryID
	r.Category = &c
	return nil
}

func (r CategoryRef) MarshalJSON() ([]byte, error) {
	if r.Category != nil {
		return json.Marshal(r.Category)
	}
	return json.Marshal(r.ID)
}
