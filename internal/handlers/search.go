package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"art-auction-backend/internal/models"
	"art-auction-backend/internal/services"
)

type SearchHandler struct {
	search *services.SearchService
	logger *zap.Logger
}

func NewSearchHandler(search *services.SearchService, logger *zap.Logger) *SearchHandler {
	return &SearchHandler{search: search, logger: logger}
}

// Search serves /api/search?q=. An empty query is a 200 with empty results.
func (h *SearchHandler) Search(c *gin.Context) {
	results, err := h.search.Search(c.Query("q"))
	if err != nil {
		h.logger.Error("search request failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "Ошибка при выполнении поиска"})
		return
	}

	c.JSON(http.StatusOK, results)
}
