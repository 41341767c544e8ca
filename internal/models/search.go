package models

// SearchResults groups matches across lots and artists. Both slices are
// always non-nil so empty results serialize as [] rather than null.
type SearchResults struct {
	Artworks []LotModel    `json:"artworks"`
	Artists  []ArtistModel `json:"artists"`
}
