package handlers_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"art-auction-backend/internal/baserow"
	"art-auction-backend/internal/config"
	"art-auction-backend/internal/handlers"
	"art-auction-backend/internal/services"
)

// setupRouter wires the full handler stack against a fake remote table
// store, mirroring the route table in cmd/server.
func setupRouter(t *testing.T, remote http.HandlerFunc) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	srv := httptest.NewServer(remote)
	t.Cleanup(srv.Close)

	cfg := &config.Config{
		BaserowAPIURL:          srv.URL,
		Tables:                 config.TableIDs{Lots: 1, Artists: 2, Auctions: 3, Bets: 4, Users: 5},
		ArtistFetchConcurrency: 4,
	}

	log := zap.NewNop()
	client := baserow.NewClient(cfg, log)

	lotService := services.NewLotService(client, log, cfg.ArtistFetchConcurrency)
	artistService := services.NewArtistService(client, log)
	auctionService := services.NewAuctionService(client, log)
	betService := services.NewBetService(client, log)
	userService := services.NewUserService(client, log)
	searchService := services.NewSearchService(lotService, artistService)

	router := gin.New()
	router.GET("/health", handlers.HealthHandler)

	api := router.Group("/api")
	api.GET("/lots", handlers.NewLotsHandler(lotService, log).GetLots)
	api.GET("/artists", handlers.NewArtistsHandler(artistService, log).GetArtists)

	auctionsHandler := handlers.NewAuctionsHandler(auctionService, log)
	api.GET("/auctions", auctionsHandler.GetAuctions)
	api.GET("/auctions/active", auctionsHandler.GetActiveAuction)
	api.GET("/auctions/:id", auctionsHandler.GetAuctionByID)

	betsHandler := handlers.NewBetsHandler(betService, log)
	api.GET("/bets", betsHandler.GetBets)
	api.POST("/bets", betsHandler.CreateBet)

	api.GET("/search", handlers.NewSearchHandler(searchService, log).Search)

	usersHandler := handlers.NewUsersHandler(userService, log)
	api.GET("/users", usersHandler.GetUsers)
	api.POST("/users", usersHandler.CreateUser)
	api.PATCH("/users", usersHandler.UpdateUser)

	return router
}

// emptyListRemote answers every list call with an empty envelope and every
// row call with 404.
func emptyListRemote(w http.ResponseWriter, r *http.Request) {
	if r.Method == http.MethodGet && isListPath(r.URL.Path) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"count":0,"next":null,"previous":null,"results":[]}`))
		return
	}
	http.Error(w, `{"error": "row does not exist"}`, http.StatusNotFound)
}

func isListPath(path string) bool {
	// /api/database/rows/table/{table}/ has exactly six slash-separated
	// segments; a row path has one more.
	n := 0
	for _, c := range path {
		if c == '/' {
			n++
		}
	}
	return n == 6
}
