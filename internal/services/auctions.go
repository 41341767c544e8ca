package services

import (
	"time"

	"go.uber.org/zap"

	"art-auction-backend/internal/baserow"
	"art-auction-backend/internal/models"
)

// AuctionService adapts raw auction rows and derives their lifecycle status.
type AuctionService struct {
	client *baserow.Client
	logger *zap.Logger
}

func NewAuctionService(client *baserow.Client, logger *zap.Logger) *AuctionService {
	return &AuctionService{client: client, logger: logger}
}

func (s *AuctionService) List() ([]models.AuctionModel, error) {
	resp, err := s.client.ListAuctions(baserow.ListParams{})
	if err != nil {
		return nil, err
	}

	now := time.Now()
	out := make([]models.AuctionModel, 0, len(resp.Results))
	for _, auction := range resp.Results {
		out = append(out, transformAuction(auction, now))
	}
	return out, nil
}

// GetActive returns the first auction whose derived status is active, or nil
// when there is none.
func (s *AuctionService) GetActive() (*models.AuctionModel, error) {
	auctions, err := s.List()
	if err != nil {
		return nil, err
	}
	for i := range auctions {
		if auctions[i].Status == models.AuctionActive {
			return &auctions[i], nil
		}
	}
	return nil, nil
}

func (s *AuctionService) GetByID(id int) (*models.AuctionModel, error) {
	auction, err := s.client.GetAuctionByID(id)
	if err != nil {
		return nil, err
	}
	model := transformAuction(*auction, time.Now())
	return &model, nil
}

// deriveStatus classifies an auction. The explicit is_active flag takes
// priority over the date window: a flagged-off auction inside its window is
// past, not active. A start date that fails to parse behaves as past.
func deriveStatus(isActive bool, startDate string, now time.Time) models.AuctionStatus {
	if isActive {
		return models.AuctionActive
	}
	if start, ok := parseDate(startDate); ok && now.Before(start) {
		return models.AuctionUpcoming
	}
	return models.AuctionPast
}

func transformAuction(auction baserow.Auction, now time.Time) models.AuctionModel {
	return models.AuctionModel{
		ID:            auction.ID,
		Name:          auction.Name,
		StartDate:     auction.StartDate,
		EndDate:       auction.EndDate,
		Venue:         auction.Venue,
		City:          auction.City,
		LotCount:      parseCount(auction.LotCount),
		LotsSold:      parseCount(auction.LotsSold),
		TotalSalesRub: parseCount(auction.TotalSalesRub),
		Description:   auction.DescriptionShort,
		Image:         firstImageURL(auction.Photo),
		IsActive:      auction.IsActive,
		Status:        deriveStatus(auction.IsActive, auction.StartDate, now),
	}
}
