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

type LotsHandler struct {
	lots   *services.LotService
	logger *zap.Logger
}

func NewLotsHandler(lots *services.LotService, logger *zap.Logger) *LotsHandler {
	return &LotsHandler{lots: lots, logger: logger}
}

// GetLots serves /api/lots. Query filters apply in priority order:
// id > artistId > auctionId > active > sold > favorite > all.
func (h *LotsHandler) GetLots(c *gin.Context) {
	if idStr := c.Query("id"); idStr != "" {
		id, err := strconv.Atoi(idStr)
		if err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "Некорректный ID лота"})
			return
		}

		lot, err := h.lots.GetByID(id)
		if err != nil {
			if baserow.IsNotFound(err) {
				c.JSON(http.StatusNotFound, models.ErrorResponse{Error: fmt.Sprintf("Лот с ID %d не найден", id)})
				return
			}
			h.fail(c, err)
			return
		}

		c.JSON(http.StatusOK, lot)
		return
	}

	if artistIDStr := c.Query("artistId"); artistIDStr != "" {
		artistID, err := strconv.Atoi(artistIDStr)
		if err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "Некорректный ID художника"})
			return
		}
		h.respondList(c, func() ([]models.LotModel, error) { return h.lots.ListByArtistID(artistID) })
		return
	}

	if auctionIDStr := c.Query("auctionId"); auctionIDStr != "" {
		auctionID, err := strconv.Atoi(auctionIDStr)
		if err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "Некорректный ID аукциона"})
			return
		}
		h.respondList(c, func() ([]models.LotModel, error) { return h.lots.ListByAuctionID(auctionID) })
		return
	}

	switch {
	case c.Query("active") == "true":
		h.respondList(c, h.lots.ListActive)
	case c.Query("sold") == "true":
		h.respondList(c, h.lots.ListSold)
	case c.Query("favorite") == "true":
		h.respondList(c, h.lots.ListFavorites)
	default:
		h.respondList(c, h.lots.List)
	}
}

func (h *LotsHandler) respondList(c *gin.Context, fetch func() ([]models.LotModel, error)) {
	lots, err := fetch()
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, lots)
}

func (h *LotsHandler) fail(c *gin.Context, err error) {
	h.logger.Error("lots request failed", zap.Error(err))
	c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "Ошибка при получении данных"})
}
