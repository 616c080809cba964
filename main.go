package main

import (
	"fmt"
	"os"

	auction "nextloop-web/internal/auctionService"
	"nextloop-web/internal/backend"
	"nextloop-web/internal/config"
	"nextloop-web/internal/server"
	"nextloop-web/internal/watchlist"

	"github.com/joho/godotenv"
	"github.com/jonboulle/clockwork"
)

func main() {
	// .env is optional; real environments set variables directly
	_ = godotenv.Load()

	cfg := config.Load()

	api := backend.NewClient(cfg.APIBaseURL, cfg.RequestTimeout)
	hub := auction.NewHub(api, clockwork.NewRealClock(), cfg.PollInterval)
	defer hub.CloseAll()

	registry := watchlist.NewRegistry(api)

	router := server.SetupRouter(hub, registry, api)

	fmt.Printf("Starting NextLoop web tier on %s (backend %s)...\n", cfg.Port, cfg.APIBaseURL)
	if err := router.Run(cfg.Port); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to start server: %v\n", err)
		os.Exit(1)
	}
}
