package services

import (
	"time"

	"go.uber.org/zap"

	"art-auction-backend/internal/baserow"
	"art-auction-backend/internal/models"
)

// betDateLayout matches the ISO-8601 millisecond timestamps the catalog
// writes into the Date field.
const betDateLayout = "2006-01-02T15:04:05.000Z"

// BetService adapts raw bet rows. Bets reference exactly one user and one
// lot; only the first element of each reference list is consulted.
type BetService struct {
	client *baserow.Client
	logger *zap.Logger
}

func NewBetService(client *baserow.Client, logger *zap.Logger) *BetService {
	return &BetService{client: client, logger: logger}
}

func (s *BetService) List() ([]models.BetModel, error) {
	resp, err := s.client.ListBets(baserow.ListParams{})
	if err != nil {
		return nil, err
	}
	return transformBets(resp.Results), nil
}

func (s *BetService) GetByID(id int) (*models.BetModel, error) {
	bet, err := s.client.GetBetByID(id)
	if err != nil {
		return nil, err
	}
	model := transformBet(*bet)
	return &model, nil
}

func (s *BetService) ListByLotID(lotID int) ([]models.BetModel, error) {
	return s.listFiltered(func(bet baserow.Bet) bool { return containsRef(bet.Lot, lotID) })
}

func (s *BetService) ListByUserID(userID int) ([]models.BetModel, error) {
	return s.listFiltered(func(bet baserow.Bet) bool { return containsRef(bet.User, userID) })
}

// Create places a bid: single-element reference lists, the value stringified
// and the timestamp set server-side to the current UTC time.
func (s *BetService) Create(lotID, userID int, value float64) (*models.BetModel, error) {
	data := map[string]any{
		"Lot":      []map[string]int{{"id": lotID}},
		"User":     []map[string]int{{"id": userID}},
		"BetValue": formatAmount(value),
		"Date":     time.Now().UTC().Format(betDateLayout),
	}

	bet, err := s.client.CreateBet(data)
	if err != nil {
		return nil, err
	}

	model := transformBet(*bet)
	return &model, nil
}

func (s *BetService) listFiltered(keep func(baserow.Bet) bool) ([]models.BetModel, error) {
	resp, err := s.client.ListBets(baserow.ListParams{})
	if err != nil {
		return nil, err
	}

	filtered := make([]baserow.Bet, 0, len(resp.Results))
	for _, bet := range resp.Results {
		if keep(bet) {
			filtered = append(filtered, bet)
		}
	}
	return transformBets(filtered), nil
}

func transformBets(bets []baserow.Bet) []models.BetModel {
	out := make([]models.BetModel, 0, len(bets))
	for _, bet := range bets {
		out = append(out, transformBet(bet))
	}
	return out
}

func transformBet(bet baserow.Bet) models.BetModel {
	var user *models.EntityRef
	if len(bet.User) > 0 {
		user = &models.EntityRef{ID: bet.User[0].ID, Name: bet.User[0].Value}
	}

	var lot *models.EntityRef
	if len(bet.Lot) > 0 {
		lot = &models.EntityRef{ID: bet.Lot[0].ID, Name: bet.Lot[0].Value}
	}

	date, _ := parseDate(bet.Date)

	return models.BetModel{
		ID:    bet.ID,
		Value: parseAmount(bet.BetValue),
		Date:  date,
		User:  user,
		Lot:   lot,
	}
}
