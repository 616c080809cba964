package handler

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	auction "nextloop-web/internal/auctionService"
	"nextloop-web/internal/backend"
	model "nextloop-web/internal/models"
	"nextloop-web/services/auction/helpers"
	"nextloop-web/utils"

	"github.com/gin-gonic/gin"
)

type AuctionHubInterface interface {
	ViewAuction(ctx context.Context, listingID string) (auction.Snapshot, error)
	PlaceBid(ctx context.Context, listingID, bidderID string, amount float64) (auction.BidOutcome, error)
	CloseAuction(listingID string) bool
}

type WatchlistInterface interface {
	Flip(ctx context.Context, listingID, userID string) (bool, error)
}

type AuctionHandler struct {
	hub       AuctionHubInterface
	watchlist WatchlistInterface
	api       backend.API
}

func NewAuctionHandler(hub AuctionHubInterface, watchlist WatchlistInterface, api backend.API) *AuctionHandler {
	return &AuctionHandler{hub: hub, watchlist: watchlist, api: api}
}

// ViewAuctionHandler handles GET /auctions/:listing_id
func (h *AuctionHandler) ViewAuctionHandler(c *gin.Context) {
	listingID := c.Param("listing_id")
	snapshot, err := h.hub.ViewAuction(c.Request.Context(), listingID)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Error("ViewAuctionHandler: failed to load auction", map[string]any{
			"listing_id": listingID,
			"error":      err.Error(),
		})
		return
	}

	utils.JSONResponse(c, http.StatusOK, snapshot, "auction retrieved successfully")
	helpers.LogSuccess("ViewAuctionHandler", "auction retrieved successfully", map[string]any{
		"listing_id": listingID,
		"total_bids": snapshot.Listing.TotalBids,
		"ended":      snapshot.Ended,
	})
}

// PlaceBidHandler handles POST /auctions/:listing_id/bids
func (h *AuctionHandler) PlaceBidHandler(c *gin.Context) {
	listingID := c.Param("listing_id")

	var req helpers.PlaceBidRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "PlaceBidHandler", err)
		return
	}

	outcome, err := h.hub.PlaceBid(c.Request.Context(), listingID, req.BidderID, req.Amount)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("PlaceBidHandler: bid not accepted", map[string]any{
			"listing_id": listingID,
			"bidder_id":  req.BidderID,
			"amount":     req.Amount,
			"error":      err.Error(),
		})
		return
	}

	utils.JSONResponse(c, http.StatusCreated, outcome, "bid placed successfully")
	helpers.LogSuccess("PlaceBidHandler", "bid placed successfully", map[string]any{
		"listing_id": listingID,
		"bidder_id":  req.BidderID,
		"amount":     req.Amount,
		"extended":   outcome.Extended,
	})
}

// CloseAuctionHandler handles DELETE /auctions/:listing_id
func (h *AuctionHandler) CloseAuctionHandler(c *gin.Context) {
	listingID := c.Param("listing_id")
	if !h.hub.CloseAuction(listingID) {
		utils.JSONError(c, http.StatusNotFound, fmt.Errorf("no open session for listing %s", listingID), "no open auction session for listing")
		return
	}

	utils.JSONResponse(c, http.StatusOK, nil, "auction session closed")
	helpers.LogSuccess("CloseAuctionHandler", "auction session closed", map[string]any{
		"listing_id": listingID,
	})
}

// ToggleWatchlistHandler handles PUT /watchlist/toggle/:listing_id
func (h *AuctionHandler) ToggleWatchlistHandler(c *gin.Context) {
	listingID := c.Param("listing_id")

	var req helpers.ToggleWatchlistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "ToggleWatchlistHandler", err)
		return
	}

	member, err := h.watchlist.Flip(c.Request.Context(), listingID, req.UserID)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("ToggleWatchlistHandler: toggle failed", map[string]any{
			"listing_id": listingID,
			"user_id":    req.UserID,
			"error":      err.Error(),
		})
		return
	}

	resp := helpers.WatchlistToggleResponse{
		ListingID:     listingID,
		IsInWatchlist: member,
	}
	utils.JSONResponse(c, http.StatusOK, resp, "watchlist updated successfully")
	helpers.LogSuccess("ToggleWatchlistHandler", "watchlist updated successfully", map[string]any{
		"listing_id":      listingID,
		"user_id":         req.UserID,
		"is_in_watchlist": member,
	})
}

// GetWatchlistHandler handles GET /watchlist/:user_id
func (h *AuctionHandler) GetWatchlistHandler(c *gin.Context) {
	userID := c.Param("user_id")
	listings, err := h.api.GetWatchlist(c.Request.Context(), userID)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("GetWatchlistHandler: error retrieving watchlist", map[string]any{"user_id": userID, "error": err.Error()})
		return
	}

	if listings == nil {
		listings = []model.Listing{}
	}

	utils.JSONResponse(c, http.StatusOK, listings, "watchlist retrieved successfully")
	helpers.LogSuccess("GetWatchlistHandler", "watchlist retrieved successfully", map[string]any{
		"user_id": userID,
		"count":   len(listings),
	})
}

// CreateCheckoutSessionHandler handles POST /checkout/session
func (h *AuctionHandler) CreateCheckoutSessionHandler(c *gin.Context) {
	var req helpers.CreateCheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "CreateCheckoutSessionHandler", err)
		return
	}

	session, err := h.api.CreateCheckoutSession(c.Request.Context(), req.ListingID, req.UserID)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Error("CreateCheckoutSessionHandler: failed to create session", map[string]any{
			"listing_id": req.ListingID,
			"user_id":    req.UserID,
			"error":      err.Error(),
		})
		return
	}

	utils.JSONResponse(c, http.StatusCreated, session, "checkout session created")
	helpers.LogSuccess("CreateCheckoutSessionHandler", "checkout session created", map[string]any{
		"listing_id": req.ListingID,
		"user_id":    req.UserID,
	})
}

// VerifyCheckoutSessionHandler handles POST /checkout/verify
func (h *AuctionHandler) VerifyCheckoutSessionHandler(c *gin.Context) {
	var req helpers.VerifySessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "VerifyCheckoutSessionHandler", err)
		return
	}

	summary, err := h.api.VerifyCheckoutSession(c.Request.Context(), req.SessionID)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("VerifyCheckoutSessionHandler: verification failed", map[string]any{
			"session_id": req.SessionID,
			"error":      err.Error(),
		})
		return
	}

	utils.JSONResponse(c, http.StatusOK, summary, "checkout session verified")
	helpers.LogSuccess("VerifyCheckoutSessionHandler", "checkout session verified", map[string]any{
		"session_id": req.SessionID,
		"order_id":   summary.OrderID,
	})
}

// SearchHandler handles GET /search
func (h *AuctionHandler) SearchHandler(c *gin.Context) {
	query := backend.SearchQuery{
		Query:    c.Query("q"),
		Category: c.Query("category"),
		MinPrice: c.Query("min_price"),
		MaxPrice: c.Query("max_price"),
		Sort:     c.Query("sort"),
	}
	if page, err := strconv.Atoi(c.Query("page")); err == nil {
		query.Page = page
	}
	if limit, err := strconv.Atoi(c.Query("limit")); err == nil {
		query.Limit = limit
	}

	result, err := h.api.SearchListings(c.Request.Context(), query)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("SearchHandler: search failed", map[string]any{"query": query.Query, "error": err.Error()})
		return
	}

	utils.JSONResponse(c, http.StatusOK, result, "search completed successfully")
	helpers.LogSuccess("SearchHandler", "search completed successfully", map[string]any{
		"query": query.Query,
		"count": len(result.Data),
	})
}
