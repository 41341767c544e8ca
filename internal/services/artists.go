package services

import (
	"strings"

	"go.uber.org/zap"

	"art-auction-backend/internal/baserow"
	"art-auction-backend/internal/models"
)

const (
	defaultArtistTag = "Современное искусство"
	maxArtistTags    = 5
)

// tagKeywords maps bio keywords to fallback tags. Ordered so derived tags
// are deterministic.
var tagKeywords = []struct {
	keyword string
	tag     string
}{
	{"монументалист", "Монументальное искусство"},
	{"мозаик", "Мозаика"},
	{"живопис", "Живопись"},
	{"муралист", "Стрит-арт"},
	{"владивосток", "Владивосток"},
	{"графи", "Графика"},
}

// ArtistService adapts raw artist rows into UI-facing profiles.
type ArtistService struct {
	client *baserow.Client
	logger *zap.Logger
}

func NewArtistService(client *baserow.Client, logger *zap.Logger) *ArtistService {
	return &ArtistService{client: client, logger: logger}
}

func (s *ArtistService) List() ([]models.ArtistModel, error) {
	resp, err := s.client.ListArtists(baserow.ListParams{})
	if err != nil {
		return nil, err
	}

	out := make([]models.ArtistModel, 0, len(resp.Results))
	for _, artist := range resp.Results {
		out = append(out, transformArtist(artist))
	}
	return out, nil
}

func (s *ArtistService) GetByID(id int) (*models.ArtistModel, error) {
	artist, err := s.client.GetArtistByID(id)
	if err != nil {
		return nil, err
	}
	model := transformArtist(*artist)
	return &model, nil
}

// transformArtist reshapes a raw artist row. The card image prefers mainArt
// over the first profile photo; displayName falls back to the plain name;
// tags fall back to a bio-keyword heuristic when the store has none.
func transformArtist(artist baserow.Artist) models.ArtistModel {
	image := firstImageURL(artist.MainArt)
	if image == nil {
		image = firstImageURL(artist.Photos)
	}

	displayName := artist.DisplayName
	if displayName == "" {
		displayName = artist.Name
	}

	lots := make([]models.ArtistLot, 0, len(artist.Lots))
	for _, ref := range artist.Lots {
		lots = append(lots, models.ArtistLot{ID: ref.ID, Name: ref.Value})
	}

	tags := make([]string, 0, len(artist.Tags))
	for _, tag := range artist.Tags {
		tags = append(tags, tag.Value)
	}
	if len(tags) == 0 {
		tags = tagsFromBio(artist.Bio)
	}

	return models.ArtistModel{
		ID:            artist.ID,
		Name:          artist.Name,
		DisplayName:   displayName,
		Bio:           artist.Bio,
		Image:         image,
		ProfileImage:  firstImageURL(artist.Photos),
		Photos:        imageURLs(artist.Photos),
		ArtworksCount: len(lots),
		Lots:          lots,
		Tags:          tags,
	}
}

// tagsFromBio derives tags from bio keywords. Used only when the store has
// no explicit tags; always includes the default tag, deduplicated and capped.
func tagsFromBio(bio string) []string {
	lower := strings.ToLower(bio)

	tags := []string{defaultArtistTag}
	for _, kw := range tagKeywords {
		if strings.Contains(lower, kw.keyword) {
			tags = append(tags, kw.tag)
		}
	}

	seen := make(map[string]struct{}, len(tags))
	unique := make([]string, 0, len(tags))
	for _, tag := range tags {
		if _, ok := seen[tag]; ok {
			continue
		}
		seen[tag] = struct{}{}
		unique = append(unique, tag)
		if len(unique) == maxArtistTags {
			break
		}
	}
	return unique
}
