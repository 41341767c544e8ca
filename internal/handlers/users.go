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

type CreateUserRequest struct {
	TelegramID   string `json:"telegramId"`
	Username     string `json:"username"`
	PhoneNumber  string `json:"phoneNumber"`
	ProfileImage string `json:"profileImage"`
}

type UpdateUserRequest struct {
	ID           int     `json:"id"`
	Username     *string `json:"username"`
	TelegramID   *string `json:"telegramId"`
	PhoneNumber  *string `json:"phoneNumber"`
	ProfileImage *string `json:"profileImage"`
}

type UsersHandler struct {
	users  *services.UserService
	logger *zap.Logger
}

func NewUsersHandler(users *services.UserService, logger *zap.Logger) *UsersHandler {
	return &UsersHandler{users: users, logger: logger}
}

// GetUsers serves /api/users with optional id or telegramId lookup.
func (h *UsersHandler) GetUsers(c *gin.Context) {
	if idStr := c.Query("id"); idStr != "" {
		id, err := strconv.Atoi(idStr)
		if err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "Некорректный ID пользователя"})
			return
		}

		user, err := h.users.GetByID(id)
		if err != nil {
			if baserow.IsNotFound(err) {
				c.JSON(http.StatusNotFound, models.ErrorResponse{Error: fmt.Sprintf("Пользователь с ID %d не найден", id)})
				return
			}
			h.fail(c, err)
			return
		}

		c.JSON(http.StatusOK, user)
		return
	}

	if telegramID := c.Query("telegramId"); telegramID != "" {
		user, err := h.users.GetByTelegramID(telegramID)
		if err != nil {
			h.fail(c, err)
			return
		}
		if user == nil {
			c.JSON(http.StatusNotFound, models.ErrorResponse{Error: fmt.Sprintf("Пользователь с Telegram ID %s не найден", telegramID)})
			return
		}

		c.JSON(http.StatusOK, user)
		return
	}

	users, err := h.users.List()
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, users)
}

// CreateUser serves POST /api/users. The duplicate check against the store
// is not transactional; two concurrent creates for the same Telegram id can
// still race.
func (h *UsersHandler) CreateUser(c *gin.Context) {
	var req CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.TelegramID == "" || req.Username == "" {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "Необходимо указать telegramId и username"})
		return
	}

	existing, err := h.users.GetByTelegramID(req.TelegramID)
	if err != nil {
		h.fail(c, err)
		return
	}
	if existing != nil {
		c.JSON(http.StatusConflict, models.ConflictResponse{
			Error: "Пользователь с таким Telegram ID уже существует",
			User:  *existing,
		})
		return
	}

	user, err := h.users.Create(req.TelegramID, req.Username, req.PhoneNumber, req.ProfileImage)
	if err != nil {
		h.logger.Error("user creation failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "Не удалось создать пользователя"})
		return
	}

	c.JSON(http.StatusCreated, user)
}

// UpdateUser serves PATCH /api/users.
func (h *UsersHandler) UpdateUser(c *gin.Context) {
	var req UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.ID == 0 {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "Необходимо указать id пользователя"})
		return
	}

	if _, err := h.users.GetByID(req.ID); err != nil {
		if baserow.IsNotFound(err) {
			c.JSON(http.StatusNotFound, models.ErrorResponse{Error: fmt.Sprintf("Пользователь с ID %d не найден", req.ID)})
			return
		}
		h.fail(c, err)
		return
	}

	user, err := h.users.Update(req.ID, services.UpdateUserInput{
		Username:     req.Username,
		TelegramID:   req.TelegramID,
		PhoneNumber:  req.PhoneNumber,
		ProfileImage: req.ProfileImage,
	})
	if err != nil {
		h.logger.Error("user update failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "Не удалось обновить пользователя"})
		return
	}

	c.JSON(http.StatusOK, user)
}

func (h *UsersHandler) fail(c *gin.Context, err error) {
	h.logger.Error("users request failed", zap.Error(err))
	c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "Ошибка при получении данных"})
}
