package ledger

import (
	model "nextloop-web/internal/models"
)

// Summary holds the fields derived from a listing's bid history.
// CurrentPrice and HighestBidder are nil when no bids exist.
type Summary struct {
	CurrentPrice  *float64
	HighestBidder *model.UserRef
	TotalBids     int
}

// Reduce derives the current price, highest bidder and total bid count from
// the full bid list. The highest bid wins; amount ties are resolved to the
// earliest server timestamp, matching the server's own rule. Input order is
// irrelevant and the function is pure.
func Reduce(bids []model.Bid) Summary {
	if len(bids) == 0 {
		return Summary{}
	}

	winning := bids[0]
	for _, b := range bids[1:] {
		if b.Amount > winning.Amount || (b.Amount == winning.Amount && b.Timestamp.Before(winning.Timestamp)) {
			winning = b
		}
	}

	price := winning.Amount
	bidder := winning.Bidder
	return Summary{
		CurrentPrice:  &price,
		HighestBidder: &bidder,
		TotalBids:     len(bids),
	}
}
