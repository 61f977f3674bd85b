package main

import (
	"fmt"
	"os"
	"time"

	bidding "mini-praisells/internal/biddingEngine"
	"mini-praisells/internal/config"
	model "mini-praisells/internal/models"
	"mini-praisells/internal/repository"
	"mini-praisells/internal/server"
	"mini-praisells/utils"
)

func main() {

	cfg, err := config.Load()
	if err != nil {
		utils.Fatal("failed to load configuration", map[string]any{"error": err.Error()})
	}

	store, err := openStore(cfg)
	if err != nil {
		utils.Fatal("failed to open store", map[string]any{"error": err.Error()})
	}

	if err := seedAuctions(store); err != nil {
		utils.Fatal("failed to seed auctions", map[string]any{"error": err.Error()})
	}

	engine := bidding.NewEngine(store, store, store, cfg)

	router := server.SetupRouter(engine, cfg)

	addr := fmt.Sprintf(":%s", cfg.Port)
	utils.Info("starting auction server", map[string]any{
		"app":              config.AppName,
		"addr":             addr,
		"currency":         config.CurrencyName,
		"starting_balance": cfg.StartingBalance,
	})
	if err := router.Run(addr); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to start server: %v\n", err)
		os.Exit(1)
	}
}

// openStore selects the SQLite store when DB_PATH is configured, otherwise
// falls back to the in-memory store.
func openStore(cfg *config.Config) (repository.Store, error) {
	if cfg.DBPath != "" {
		return repository.NewSQLiteStore(cfg.DBPath)
	}
	return repository.NewMemoryStore(), nil
}

// seedAuctions bootstraps the sample art auctions into an empty auction store
func seedAuctions(store repository.AuctionStore) error {
	existing, err := store.ListActive()
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		return nil
	}

	now := time.Now().UTC()
	endsAt := now.Add(7 * 24 * time.Hour)
	auctions := []model.Auction{
		{
			AuctionID:   "auction1",
			SellerLabel: "Digital Dreams Studio",
			Title:       "Neon Cityscape",
			Description: "A vibrant digital painting of a futuristic city at night",
			ReserveBid:  50,
		},
		{
			AuctionID:   "auction2",
			SellerLabel: "Pixel Perfect Arts",
			Title:       "Abstract Waves",
			Description: "Beautiful flowing abstract waves in digital medium",
			ReserveBid:  75,
		},
		{
			AuctionID:   "auction3",
			SellerLabel: "Virtual Canvas Co.",
			Title:       "Mountain Sunrise",
			Description: "Serene digital landscape of mountains at sunrise",
			ReserveBid:  30,
		},
		{
			AuctionID:   "auction4",
			SellerLabel: "AI Art Collective",
			Title:       "Geometric Dreams",
			Description: "Intricate geometric patterns created with AI assistance",
			ReserveBid:  100,
		},
	}

	for _, auction := range auctions {
		auction.Active = true
		auction.EndsAt = endsAt
		auction.CreatedAt = now
		if err := store.CreateAuction(auction); err != nil {
			return err
		}
	}

	utils.Info("seeded sample auctions", map[string]any{"count": len(auctions)})
	return nil
}
