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

type CreateBetRequest struct {
	LotID  int     `json:"lotId"`
	UserID int     `json:"userId"`
	Value  float64 `json:"value"`
}

type BetsHandler struct {
	bets   *services.BetService
	logger *zap.Logger
}

func NewBetsHandler(bets *services.BetService, logger *zap.Logger) *BetsHandler {
	return &BetsHandler{bets: bets, logger: logger}
}

// GetBets serves /api/bets with optional id, lotId or userId filters.
func (h *BetsHandler) GetBets(c *gin.Context) {
	if idStr := c.Query("id"); idStr != "" {
		id, err := strconv.Atoi(idStr)
		if err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "Некорректный ID ставки"})
			return
		}

		bet, err := h.bets.GetByID(id)
		if err != nil {
			if baserow.IsNotFound(err) {
				c.JSON(http.StatusNotFound, models.ErrorResponse{Error: fmt.Sprintf("Ставка с ID %d не найдена", id)})
				return
			}
			h.fail(c, err)
			return
		}

		c.JSON(http.StatusOK, bet)
		return
	}

	if lotIDStr := c.Query("lotId"); lotIDStr != "" {
		lotID, err := strconv.Atoi(lotIDStr)
		if err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "Некорректный ID лота"})
			return
		}

		bets, err := h.bets.ListByLotID(lotID)
		if err != nil {
			h.fail(c, err)
			return
		}
		c.JSON(http.StatusOK, bets)
		return
	}

	if userIDStr := c.Query("userId"); userIDStr != "" {
		userID, err := strconv.Atoi(userIDStr)
		if err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "Некорректный ID пользователя"})
			return
		}

		bets, err := h.bets.ListByUserID(userID)
		if err != nil {
			h.fail(c, err)
			return
		}
		c.JSON(http.StatusOK, bets)
		return
	}

	bets, err := h.bets.List()
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, bets)
}

// CreateBet serves POST /api/bets.
func (h *BetsHandler) CreateBet(c *gin.Context) {
	var req CreateBetRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.LotID == 0 || req.UserID == 0 || req.Value == 0 {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "Необходимо указать lotId, userId и value"})
		return
	}

	bet, err := h.bets.Create(req.LotID, req.UserID, req.Value)
	if err != nil {
		h.logger.Error("bet creation failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "Не удалось создать ставку"})
		return
	}

	c.JSON(http.StatusCreated, bet)
}

func (h *BetsHandler) fail(c *gin.Context, err error) {
	h.logger.Error("bets request failed", zap.Error(err))
	c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "Ошибка при получении данных"})
}
