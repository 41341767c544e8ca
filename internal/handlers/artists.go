package handlers

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"art-auction-backend/internal/baserow"
	"art-auction-backend/internal/models"
	"art-auction-backend/internal/services"
)

type ArtistsHandler struct {
	artists *services.ArtistService
	logger  *zap.Logger
}

func NewArtistsHandler(artists *services.ArtistService, logger *zap.Logger) *ArtistsHandler {
	return &ArtistsHandler{artists: artists, logger: logger}
}

// GetArtists serves /api/artists, optionally narrowed to one artist by the
// id query parameter.
func (h *ArtistsHandler) GetArtists(c *gin.Context) {
	if idStr := c.Query("id"); idStr != "" {
		id, err := strconv.Atoi(idStr)
		if err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "Некорректный ID художника"})
			return
		}

		artist, err := h.artists.GetByID(id)
		if err != nil {
			if baserow.IsNotFound(err) {
				c.JSON(http.StatusNotFound, models.ErrorResponse{Error: fmt.Sprintf("Художник с ID %d не найден", id)})
				return
			}
			h.fail(c, err)
			return
		}

		c.JSON(http.StatusOK, artist)
		return
	}

	artists, err := h.artists.List()
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, artists)
}

func (h *ArtistsHandler) fail(c *gin.Context, err error) {
	h.logger.Error("artists request failed", zap.Error(err))
	c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "Ошибка при получении данных"})
}
