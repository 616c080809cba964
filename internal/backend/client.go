package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"nextloop-web/internal/auctionerrors"
	model "nextloop-web/internal/models"
)

// Client is the HTTP implementation of API. A single base URL selects the
// backend origin; everything else is plain JSON over HTTP.
type Client struct {
	baseURL string
	client  *http.Client
}

// NewClient creates a backend client. timeout bounds every request; zero
// falls back to 30 seconds.
func NewClient(baseURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Client{
		baseURL: baseURL,
		client: &http.Client{
			Timeout: timeout,
		},
	}
}

// apiError is the backend's JSON error envelope.
type apiError struct {
	Message string `json:"message"`
	Error   string `json:"error"`
}

func (c *Client) makeRequest(ctx context.Context, method, endpoint string, body any) ([]byte, error) {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to encode request body: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+endpoint, reader)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s %s: %w: %v", method, endpoint, auctionerrors.ErrBackendUnavailable, err)
	}
	defer resp.Body.Close()

	responseBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, c.statusError(method, endpoint, resp.StatusCode, responseBody)
	}

	return responseBody, nil
}

// statusError maps backend failure responses onto the domain sentinels,
// preserving the server's human-readable message where one exists.
func (c *Client) statusError(method, endpoint string, status int, body []byte) error {
	var envelope apiError
	_ = json.Unmarshal(body, &envelope)
	message := envelope.Message
	if message == "" {
		message = envelope.Error
	}
	if message == "" {
		message = fmt.Sprintf("status %d", status)
	}

	switch {
	case status == http.StatusNotFound:
		return fmt.Errorf("%s %s: %s: %w", method, endpoint, message, auctionerrors.ErrListingNotFound)
	case status >= 400 && status < 500:
		return fmt.Errorf("%s %s: %s: %w", method, endpoint, message, auctionerrors.ErrBidRejected)
	default:
		return fmt.Errorf("%s %s: %s: %w", method, endpoint, message, auctionerrors.ErrBackendUnavailable)
	}
}

// GetListing fetches the full listing snapshot.
func (c *Client) GetListing(ctx context.Context, listingID string) (model.Listing, error) {
	body, err := c.makeRequest(ctx, http.MethodGet, "/listing/"+url.PathEscape(listingID), nil)
	if err != nil {
		return model.Listing{}, err
	}

	var listing model.Listing
	if err := json.Unmarshal(body, &listing); err != nil {
		return model.Listing{}, fmt.Errorf("failed to decode listing: %w", err)
	}
	return listing, nil
}

// GetBidUpdates fetches the incremental bid payload for a listing.
func (c *Client) GetBidUpdates(ctx context.Context, listingID string) (model.BidDelta, error) {
	body, err := c.makeRequest(ctx, http.MethodGet, "/listing/"+url.PathEscape(listingID)+"/bids", nil)
	if err != nil {
		return model.BidDelta{}, err
	}

	var delta model.BidDelta
	if err := json.Unmarshal(body, &delta); err != nil {
		return model.BidDelta{}, fmt.Errorf("failed to decode bid delta: %w", err)
	}
	return delta, nil
}

// PlaceBid submits a bid and returns the server's authoritative outcome.
func (c *Client) PlaceBid(ctx context.Context, listingID, bidderID string, amount float64) (PlaceBidResult, error) {
	payload := map[string]any{
		"bidderId": bidderID,
		"amount":   amount,
	}
	body, err := c.makeRequest(ctx, http.MethodPost, "/listing/"+url.PathEscape(listingID)+"/bid", payload)
	if err != nil {
		return PlaceBidResult{}, err
	}

	var result PlaceBidResult
	if err := json.Unmarshal(body, &result); err != nil {
		return PlaceBidResult{}, fmt.Errorf("failed to decode bid result: %w", err)
	}
	return result, nil
}

// IncrementViewCount bumps the listing's view counter. Best effort; callers
// ignore failures.
func (c *Client) IncrementViewCount(ctx context.Context, listingID string) error {
	_, err := c.makeRequest(ctx, http.MethodPost, "/listing/"+url.PathEscape(listingID)+"/view", nil)
	return err
}

// ToggleWatchlist flips the (user, listing) watchlist relation.
func (c *Client) ToggleWatchlist(ctx context.Context, listingID, userID string) (WatchlistToggleResult, error) {
	payload := map[string]string{"userId": userID}
	body, err := c.makeRequest(ctx, http.MethodPut, "/watchlist/toggle/"+url.PathEscape(listingID), payload)
	if err != nil {
		return WatchlistToggleResult{}, err
	}

	var result WatchlistToggleResult
	if err := json.Unmarshal(body, &result); err != nil {
		return WatchlistToggleResult{}, fmt.Errorf("failed to decode watchlist result: %w", err)
	}
	return result, nil
}

// GetWatchlist returns the user's saved listings.
func (c *Client) GetWatchlist(ctx context.Context, userID string) ([]model.Listing, error) {
	body, err := c.makeRequest(ctx, http.MethodGet, "/watchlist/"+url.PathEscape(userID), nil)
	if err != nil {
		return nil, err
	}

	var result struct {
		Watchlist []model.Listing `json:"watchlist"`
	}
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, fmt.Errorf("failed to decode watchlist: %w", err)
	}
	return result.Watchlist, nil
}

// CreateCheckoutSession asks the backend for a hosted checkout URL.
func (c *Client) CreateCheckoutSession(ctx context.Context, listingID, userID string) (CheckoutSession, error) {
	payload := map[string]string{
		"listingId": listingID,
		"userId":    userID,
	}
	body, err := c.makeRequest(ctx, http.MethodPost, "/payment/create-checkout-session", payload)
	if err != nil {
		return CheckoutSession{}, err
	}

	var result struct {
		Data CheckoutSession `json:"data"`
	}
	if err := json.Unmarshal(body, &result); err != nil {
		return CheckoutSession{}, fmt.Errorf("failed to decode checkout session: %w", err)
	}
	return result.Data, nil
}

// VerifyCheckoutSession confirms a completed checkout session.
func (c *Client) VerifyCheckoutSession(ctx context.Context, sessionID string) (OrderSummary, error) {
	payload := map[string]string{"sessionId": sessionID}
	body, err := c.makeRequest(ctx, http.MethodPost, "/payment/verify-session", payload)
	if err != nil {
		return OrderSummary{}, err
	}

	var summary OrderSummary
	if err := json.Unmarshal(body, &summary); err != nil {
		return OrderSummary{}, fmt.Errorf("failed to decode order summary: %w", err)
	}
	return summary, nil
}

// SearchListings forwards a search query and returns the matching page.
func (c *Client) SearchListings(ctx context.Context, query SearchQuery) (SearchResult, error) {
	values := url.Values{}
	if query.Query != "" {
		values.Set("q", query.Query)
	}
	if query.Category != "" {
		values.Set("category", query.Category)
	}
	if query.MinPrice != "" {
		values.Set("min_price", query.MinPrice)
	}
	if query.MaxPrice != "" {
		values.Set("max_price", query.MaxPrice)
	}
	if query.Sort != "" {
		values.Set("sort", query.Sort)
	}
	if query.Page > 0 {
		values.Set("page", strconv.Itoa(query.Page))
	}
	if query.Limit > 0 {
		values.Set("limit", strconv.Itoa(query.Limit))
	}

	body, err := c.makeRequest(ctx, http.MethodGet, "/search?"+values.Encode(), nil)
	if err != nil {
		return SearchResult{}, err
	}

	var result SearchResult
	if err := json.Unmarshal(body, &result); err != nil {
		return SearchResult{}, fmt.Errorf("failed to decode search result: %w", err)
	}
	return result, nil
}
