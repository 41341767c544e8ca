package models

// LotArtist is an artist reference on a lot card. DisplayName is only set
// when the enrichment fetch for that artist succeeded.
type LotArtist struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	DisplayName string `json:"displayName,omitempty"`
}

// LotBet is a bet reference on a lot; the value is the raw string from the
// link-row cell.
type LotBet struct {
	ID    int    `json:"id"`
	Value string `json:"value"`
}

// LotModel is the UI-facing shape of an artwork lot, decoupled from the
// remote schema.
type LotModel struct {
	ID           int         `json:"id"`
	Name         string      `json:"name"`
	LotNumber    string      `json:"lotNumber"`
	Description  string      `json:"description"`
	Image        *string     `json:"image"`
	Images       []string    `json:"images"`
	InitialPrice float64     `json:"initialPrice"`
	FinalPrice   *float64    `json:"finalPrice"`
	CurrentBid   *float64    `json:"currentBid"`
	Artists      []LotArtist `json:"artists"`
	Specs        string      `json:"specs"`
	Year         string      `json:"year"`
	Technique    string      `json:"technique"`
	IsActive     bool        `json:"isActive"`
	Bets         []LotBet    `json:"bets"`
}
