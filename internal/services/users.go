package services

import (
	"go.uber.org/zap"

	"art-auction-backend/internal/baserow"
	"art-auction-backend/internal/models"
)

// UpdateUserInput carries the model-side fields an update may change. Nil
// fields are left untouched in the store.
type UpdateUserInput struct {
	Username     *string
	TelegramID   *string
	PhoneNumber  *string
	ProfileImage *string
}

// UserService adapts raw user rows and maps model field names back to raw
// ones on writes.
type UserService struct {
	client *baserow.Client
	logger *zap.Logger
}

func NewUserService(client *baserow.Client, logger *zap.Logger) *UserService {
	return &UserService{client: client, logger: logger}
}

func (s *UserService) List() ([]models.UserModel, error) {
	resp, err := s.client.ListUsers(baserow.ListParams{})
	if err != nil {
		return nil, err
	}

	out := make([]models.UserModel, 0, len(resp.Results))
	for _, user := range resp.Results {
		out = append(out, transformUser(user))
	}
	return out, nil
}

func (s *UserService) GetByID(id int) (*models.UserModel, error) {
	user, err := s.client.GetUserByID(id)
	if err != nil {
		return nil, err
	}
	model := transformUser(*user)
	return &model, nil
}

// GetByTelegramID returns nil without error when no user's Telegram id
// exactly matches.
func (s *UserService) GetByTelegramID(telegramID string) (*models.UserModel, error) {
	user, err := s.client.GetUserByTelegramID(telegramID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, nil
	}
	model := transformUser(*user)
	return &model, nil
}

func (s *UserService) Create(telegramID, username, phoneNumber, profileImage string) (*models.UserModel, error) {
	data := map[string]any{
		"TelegramID":   telegramID,
		"Username":     username,
		"ProfileImage": profileImage,
	}
	if phoneNumber != "" {
		data["PhoneNumber"] = phoneNumber
	}

	user, err := s.client.CreateUser(data)
	if err != nil {
		return nil, err
	}

	model := transformUser(*user)
	return &model, nil
}

func (s *UserService) Update(id int, input UpdateUserInput) (*models.UserModel, error) {
	data := map[string]any{}
	if input.Username != nil {
		data["Username"] = *input.Username
	}
	if input.TelegramID != nil {
		data["TelegramID"] = *input.TelegramID
	}
	if input.PhoneNumber != nil {
		data["PhoneNumber"] = *input.PhoneNumber
	}
	if input.ProfileImage != nil {
		data["ProfileImage"] = *input.ProfileImage
	}

	user, err := s.client.UpdateUser(id, data)
	if err != nil {
		return nil, err
	}

	model := transformUser(*user)
	return &model, nil
}

func transformUser(user baserow.User) models.UserModel {
	bets := make([]models.UserBet, 0, len(user.Bets))
	for _, ref := range user.Bets {
		bets = append(bets, models.UserBet{ID: ref.ID, Value: ref.Value})
	}

	var profileImage *string
	if user.ProfileImage != "" {
		img := user.ProfileImage
		profileImage = &img
	}

	return models.UserModel{
		ID:           user.ID,
		Username:     user.Username,
		TelegramID:   user.TelegramID,
		ProfileImage: profileImage,
		PhoneNumber:  user.PhoneNumber,
		Bets:         bets,
	}
}
