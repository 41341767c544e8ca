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

type AuctionsHandler struct {
	auctions *services.AuctionService
	logger   *zap.Logger
}

func NewAuctionsHandler(auctions *services.AuctionService, logger *zap.Logger) *AuctionsHandler {
	return &AuctionsHandler{auctions: auctions, logger: logger}
}

// GetAuctions serves /api/auctions.
func (h *AuctionsHandler) GetAuctions(c *gin.Context) {
	auctions, err := h.auctions.List()
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, auctions)
}

// GetActiveAuction serves /api/auctions/active.
func (h *AuctionsHandler) GetActiveAuction(c *gin.Context) {
	auction, err := h.auctions.GetActive()
	if err != nil {
		h.fail(c, err)
		return
	}
	if auction == nil {
		c.JSON(http.StatusNotFound, models.ErrorResponse{Error: "Активный аукцион не найден"})
		return
	}
	c.JSON(http.StatusOK, auction)
}

// GetAuctionByID serves /api/auctions/:id.
func (h *AuctionsHandler) GetAuctionByID(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "Некорректный ID аукциона"})
		return
	}

	auction, err := h.auctions.GetByID(id)
	if err != nil {
		if baserow.IsNotFound(err) {
			c.JSON(http.StatusNotFound, models.ErrorResponse{Error: fmt.Sprintf("Аукцион с ID %d не найден", id)})
			return
		}
		h.fail(c, err)
		return
	}

	c.JSON(http.StatusOK, auction)
}

func (h *AuctionsHandler) fail(c *gin.Context, err error) {
	h.logger.Error("auctions request failed", zap.Error(err))
	c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "Ошибка при получении данных"})
}
