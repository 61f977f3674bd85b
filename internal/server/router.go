package server

import (
	"time"

	bidding "mini-praisells/internal/biddingEngine"
	"mini-praisells/internal/config"
	handler "mini-praisells/services/auction/handler"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// SetupRouter configures all Gin routes for the application
func SetupRouter(engine *bidding.Engine, cfg *config.Config) *gin.Engine {
	router := gin.New() // New router without default middleware for full control over middleware and logging

	router.Use(gin.Recovery())          // recover from panics
	router.Use(RequestLoggerMiddleware) // custom request logging
	router.Use(cors.New(cors.Config{
		AllowOriginFunc:  OriginAllowed(cfg.AllowedOrigins),
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Content-Type", "Authorization", "X-Requested-With", "ngrok-skip-browser-warning"},
		AllowCredentials: true,
		MaxAge:           24 * time.Hour,
	}))

	auctionHandler := handler.NewAuctionHandler(engine)

	api := router.Group("/api")
	{
		api.GET("/health", auctionHandler.HealthHandler)
		api.GET("/auctions", auctionHandler.ListAuctionsHandler)
		api.POST("/bid", auctionHandler.PlaceBidHandler)
		api.POST("/bid/remove", auctionHandler.RemoveBidHandler)

		user := api.Group("/user")
		{
			user.POST("/balance", auctionHandler.GetBalanceHandler)
			user.POST("/bids", auctionHandler.GetUserBidsHandler)
		}
	}

	if cfg.StaticDir != "" {
		router.Static("/app", cfg.StaticDir)
	}

	return router
}
