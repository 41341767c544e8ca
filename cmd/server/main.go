package main

import (
	"log"
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"art-auction-backend/internal/baserow"
	"art-auction-backend/internal/config"
	"art-auction-backend/internal/handlers"
	"art-auction-backend/internal/logger"
	"art-auction-backend/internal/middleware"
	"art-auction-backend/internal/services"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Set Gin mode
	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	zapLogger, err := logger.New(cfg.Environment)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer zapLogger.Sync()

	// Single table client shared by every adapter
	client := baserow.NewClient(cfg, zapLogger)

	// Domain adapters
	lotService := services.NewLotService(client, zapLogger, cfg.ArtistFetchConcurrency)
	artistService := services.NewArtistService(client, zapLogger)
	auctionService := services.NewAuctionService(client, zapLogger)
	betService := services.NewBetService(client, zapLogger)
	userService := services.NewUserService(client, zapLogger)
	searchService := services.NewSearchService(lotService, artistService)

	// Handlers
	lotsHandler := handlers.NewLotsHandler(lotService, zapLogger)
	artistsHandler := handlers.NewArtistsHandler(artistService, zapLogger)
	auctionsHandler := handlers.NewAuctionsHandler(auctionService, zapLogger)
	betsHandler := handlers.NewBetsHandler(betService, zapLogger)
	usersHandler := handlers.NewUsersHandler(userService, zapLogger)
	searchHandler := handlers.NewSearchHandler(searchService, zapLogger)

	// Setup router
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.AccessLog(zapLogger))
	router.Use(cors.New(cors.Config{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{"GET", "POST", "PATCH", "OPTIONS"},
		AllowHeaders: []string{"Content-Type", middleware.RequestIDHeader},
	}))

	// Health check
	router.GET("/health", handlers.HealthHandler)

	// API routes
	api := router.Group("/api")
	api.GET("/lots", lotsHandler.GetLots)
	api.GET("/artists", artistsHandler.GetArtists)
	api.GET("/auctions", auctionsHandler.GetAuctions)
	api.GET("/auctions/active", auctionsHandler.GetActiveAuction)
	api.GET("/auctions/:id", auctionsHandler.GetAuctionByID)
	api.GET("/bets", betsHandler.GetBets)
	api.POST("/bets", betsHandler.CreateBet)
	api.GET("/search", searchHandler.Search)
	api.GET("/users", usersHandler.GetUsers)
	api.POST("/users", usersHandler.CreateUser)
	api.PATCH("/users", usersHandler.UpdateUser)

	// Start server
	zapLogger.Info("Server starting", zap.String("port", cfg.Port))
	if err := http.ListenAndServe(":"+cfg.Port, router); err != nil {
		zapLogger.Fatal("Failed to start server", zap.Error(err))
	}
}
