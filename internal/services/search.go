package services

import (
	"strings"

	"golang.org/x/sync/errgroup"

	"art-auction-backend/internal/models"
)

// SearchService runs naive substring search over lot and artist names. It
// walks the full catalog per query, which is acceptable only because the
// catalog is small.
type SearchService struct {
	lots    *LotService
	artists *ArtistService
}

func NewSearchService(lots *LotService, artists *ArtistService) *SearchService {
	return &SearchService{lots: lots, artists: artists}
}

// Search matches case-insensitively against lot names and artist
// name/displayName. An empty or whitespace-only query returns empty results
// without touching any table.
func (s *SearchService) Search(query string) (models.SearchResults, error) {
	results := models.SearchResults{
		Artworks: []models.LotModel{},
		Artists:  []models.ArtistModel{},
	}

	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return results, nil
	}

	var (
		lots    []models.LotModel
		artists []models.ArtistModel
	)

	var g errgroup.Group
	g.Go(func() error {
		var err error
		lots, err = s.lots.List()
		return err
	})
	g.Go(func() error {
		var err error
		artists, err = s.artists.List()
		return err
	})
	if err := g.Wait(); err != nil {
		return results, err
	}

	for _, lot := range lots {
		if strings.Contains(strings.ToLower(lot.Name), q) {
			results.Artworks = append(results.Artworks, lot)
		}
	}
	for _, artist := range artists {
		if strings.Contains(strings.ToLower(artist.Name), q) ||
			strings.Contains(strings.ToLower(artist.DisplayName), q) {
			results.Artists = append(results.Artists, artist)
		}
	}

	return results, nil
}
