package server

import (
	auction "nextloop-web/internal/auctionService"
	"nextloop-web/internal/backend"
	"nextloop-web/internal/watchlist"
	handler "nextloop-web/services/auction/handler"

	"github.com/gin-gonic/gin"
)

// SetupRouter configures all Gin routes for the application
func SetupRouter(hub *auction.Hub, registry *watchlist.Registry, api backend.API) *gin.Engine {
	router := gin.New() // New router without default middleware for full control over middleware and logging

	router.Use(gin.Recovery())          // recover from panics
	router.Use(RequestLoggerMiddleware) // custom request logging

	auctionHandler := handler.NewAuctionHandler(hub, registry, api)

	auctions := router.Group("/auctions")
	{
		auctions.GET("/:listing_id", auctionHandler.ViewAuctionHandler)
		auctions.POST("/:listing_id/bids", auctionHandler.PlaceBidHandler)
		auctions.DELETE("/:listing_id", auctionHandler.CloseAuctionHandler)
	}

	watch := router.Group("/watchlist")
	{
		watch.PUT("/toggle/:listing_id", auctionHandler.ToggleWatchlistHandler)
		watch.GET("/:user_id", auctionHandler.GetWatchlistHandler)
	}

	checkout := router.Group("/checkout")
	{
		checkout.POST("/session", auctionHandler.CreateCheckoutSessionHandler)
		checkout.POST("/verify", auctionHandler.VerifyCheckoutSessionHandler)
	}

	router.GET("/search", auctionHandler.SearchHandler)

	return router
}
