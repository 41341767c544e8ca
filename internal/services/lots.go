package services

import (
	"sync"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"art-auction-backend/internal/baserow"
	"art-auction-backend/internal/models"
)

// LotService adapts raw lot rows into UI-facing models: it resolves artist
// references to display names, derives the current bid and keeps the
// absent-vs-empty final price distinction intact.
type LotService struct {
	client     *baserow.Client
	logger     *zap.Logger
	fetchLimit int
}

// NewLotService builds a lot adapter. fetchLimit caps the concurrent artist
// lookups issued during enrichment.
func NewLotService(client *baserow.Client, logger *zap.Logger, fetchLimit int) *LotService {
	return &LotService{client: client, logger: logger, fetchLimit: fetchLimit}
}

// List returns every lot, enriched with artist display names.
func (s *LotService) List() ([]models.LotModel, error) {
	resp, err := s.client.ListLots(baserow.ListParams{})
	if err != nil {
		return nil, err
	}
	return s.buildModels(resp.Results), nil
}

// ListActive returns lots whose status flag is still open.
func (s *LotService) ListActive() ([]models.LotModel, error) {
	return s.listFiltered(func(lot baserow.Lot) bool { return lot.Status })
}

// ListSold returns lots whose status flag marks them closed.
func (s *LotService) ListSold() ([]models.LotModel, error) {
	return s.listFiltered(func(lot baserow.Lot) bool { return !lot.Status })
}

// ListFavorites returns lots flagged for the curated selection.
func (s *LotService) ListFavorites() ([]models.LotModel, error) {
	return s.listFiltered(func(lot baserow.Lot) bool { return lot.Favorite })
}

// ListByArtistID returns the lots of one artist. The enrichment map is built
// from the union of co-occurring artist ids so co-billed artists also get
// display names.
func (s *LotService) ListByArtistID(artistID int) ([]models.LotModel, error) {
	return s.listFiltered(func(lot baserow.Lot) bool { return containsRef(lot.Artists, artistID) })
}

// ListByAuctionID returns the lots assigned to one auction.
func (s *LotService) ListByAuctionID(auctionID int) ([]models.LotModel, error) {
	return s.listFiltered(func(lot baserow.Lot) bool { return containsRef(lot.Auctions, auctionID) })
}

// GetByID fetches a single lot and resolves only that lot's artists.
func (s *LotService) GetByID(id int) (*models.LotModel, error) {
	lot, err := s.client.GetLotByID(id)
	if err != nil {
		return nil, err
	}

	ids := make([]int, 0, len(lot.Artists))
	for _, ref := range lot.Artists {
		ids = append(ids, ref.ID)
	}

	model := transformLot(*lot, s.artistDisplayNames(ids))
	return &model, nil
}

func (s *LotService) listFiltered(keep func(baserow.Lot) bool) ([]models.LotModel, error) {
	resp, err := s.client.ListLots(baserow.ListParams{})
	if err != nil {
		return nil, err
	}

	filtered := make([]baserow.Lot, 0, len(resp.Results))
	for _, lot := range resp.Results {
		if keep(lot) {
			filtered = append(filtered, lot)
		}
	}
	return s.buildModels(filtered), nil
}

// buildModels enriches the batch with display names resolved over the union
// of its artist references, then transforms every row.
func (s *LotService) buildModels(lots []baserow.Lot) []models.LotModel {
	names := s.artistDisplayNames(collectArtistIDs(lots))

	out := make([]models.LotModel, 0, len(lots))
	for _, lot := range lots {
		out = append(out, transformLot(lot, names))
	}
	return out
}

func collectArtistIDs(lots []baserow.Lot) []int {
	seen := make(map[int]struct{})
	var ids []int
	for _, lot := range lots {
		for _, ref := range lot.Artists {
			if _, ok := seen[ref.ID]; !ok {
				seen[ref.ID] = struct{}{}
				ids = append(ids, ref.ID)
			}
		}
	}
	return ids
}

// artistDisplayNames resolves display names for the given artist ids with
// bounded concurrent fetches. Enrichment is best-effort: a failed lookup
// drops that artist from the map but never fails the batch. Failures are
// collected so they stay countable in the logs.
func (s *LotService) artistDisplayNames(ids []int) map[int]string {
	names := make(map[int]string, len(ids))
	if len(ids) == 0 {
		return names
	}

	var mu sync.Mutex
	var failed []int

	g := new(errgroup.Group)
	g.SetLimit(s.fetchLimit)
	for _, id := range ids {
		id := id
		g.Go(func() error {
			artist, err := s.client.GetArtistByID(id)
			if err != nil {
				mu.Lock()
				failed = append(failed, id)
				mu.Unlock()
				return nil
			}

			name := artist.DisplayName
			if name == "" {
				name = artist.Name
			}
			mu.Lock()
			names[id] = name
			mu.Unlock()
			return nil
		})
	}
	_ = g.Wait()

	if len(failed) > 0 {
		s.logger.Warn("artist enrichment lookups failed",
			zap.Ints("artist_ids", failed),
			zap.Int("failed", len(failed)),
			zap.Int("total", len(ids)))
	}

	return names
}

// transformLot reshapes a raw lot row into its model. A nil FinalPrice field
// (absent in old rows) maps to nil; an empty string maps to 0. The current
// bid is the maximum of the referenced bet values, or nil without bets.
func transformLot(lot baserow.Lot, artistNames map[int]string) models.LotModel {
	artists := make([]models.LotArtist, 0, len(lot.Artists))
	for _, ref := range lot.Artists {
		artists = append(artists, models.LotArtist{
			ID:          ref.ID,
			Name:        ref.Value,
			DisplayName: artistNames[ref.ID],
		})
	}

	bets := make([]models.LotBet, 0, len(lot.Bets))
	for _, ref := range lot.Bets {
		bets = append(bets, models.LotBet{ID: ref.ID, Value: ref.Value})
	}

	var currentBid *float64
	for i, bet := range bets {
		v := parseAmount(bet.Value)
		if i == 0 || v > *currentBid {
			currentBid = &v
		}
	}

	var finalPrice *float64
	if lot.FinalPrice != nil {
		v := parseAmount(*lot.FinalPrice)
		finalPrice = &v
	}

	return models.LotModel{
		ID:           lot.ID,
		Name:         lot.Name,
		LotNumber:    lot.LotNumber,
		Description:  lot.Description,
		Image:        firstImageURL(lot.Image),
		Images:       imageURLs(lot.Image),
		InitialPrice: parseAmount(lot.InitialPrice),
		FinalPrice:   finalPrice,
		CurrentBid:   currentBid,
		Artists:      artists,
		Specs:        lot.Specs,
		Year:         lot.Year,
		Technique:    lot.Technique,
		IsActive:     lot.Status,
		Bets:         bets,
	}
}
