package models

// ArtistLot is a lot reference on an artist profile.
type ArtistLot struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// ArtistModel is the UI-facing shape of an artist profile. Image is the card
// thumbnail, ProfileImage the photo used on the profile page.
type ArtistModel struct {
	ID            int         `json:"id"`
	Name          string      `json:"name"`
	DisplayName   string      `json:"displayName"`
	Bio           string      `json:"bio"`
	Image         *string     `json:"image"`
	ProfileImage  *string     `json:"profileImage"`
	Photos        []string    `json:"photos"`
	ArtworksCount int         `json:"artworksCount"`
	Lots          []ArtistLot `json:"lots"`
	Tags          []string    `json:"tags"`
}
