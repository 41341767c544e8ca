package baserow

// Reference is a link-row cell: a pointer into another table together with
// that row's primary field value.
type Reference struct {
	ID    int    `json:"id"`
	Value string `json:"value"`
	Order string `json:"order,omitempty"`
}

// Image is a file-field attachment as Baserow returns it.
type Image struct {
	URL         string `json:"url"`
	VisibleName string `json:"visible_name"`
	Name        string `json:"name"`
	Size        int64  `json:"size"`
	MimeType    string `json:"mime_type"`
	IsImage     bool   `json:"is_image"`
	UploadedAt  string `json:"uploaded_at"`
}

// SelectOption is a multi-select cell value (artist tags).
type SelectOption struct {
	ID    int    `json:"id"`
	Value string `json:"value"`
	Color string `json:"color"`
}

// ListResponse is the paginated envelope every list call returns.
type ListResponse[T any] struct {
	Count    int     `json:"count"`
	Next     *string `json:"next"`
	Previous *string `json:"previous"`
	Results  []T     `json:"results"`
}

// ListParams are the query parameters for list calls. Zero values fall back
// to page 1, size 100 and no search term.
type ListParams struct {
	Page   int
	Size   int
	Search string
}

// Lot is a row of the Lots table. FinalPrice is a pointer because old rows
// predate the field entirely: an absent field and an empty string mean
// different things to the adapter layer.
type Lot struct {
	ID           int         `json:"id"`
	RowOrder     string      `json:"order"`
	Name         string      `json:"Name"`
	Artists      []Reference `json:"Artists"`
	Image        []Image     `json:"Image"`
	LotNumber    string      `json:"LotNumber"`
	Bets         []Reference `json:"Bets"`
	InitialPrice string      `json:"InitialPrice"`
	FinalPrice   *string     `json:"FinalPrice"`
	FinalText    string      `json:"FinalText"`
	Specs        string      `json:"specs"`
	Description  string      `json:"description"`
	Year         string      `json:"year"`
	Technique    string      `json:"technique"`
	Status       bool        `json:"status"`
	Favorite     bool        `json:"favorite"`
	Auctions     []Reference `json:"Auctions"`
}

// Artist is a row of the Artists table.
type Artist struct {
	ID          int            `json:"id"`
	RowOrder    string         `json:"order"`
	Name        string         `json:"Name"`
	Bio         string         `json:"bio"`
	Lots        []Reference    `json:"Lots"`
	Photos      []Image        `json:"photos"`
	DisplayName string         `json:"displayName"`
	MainArt     []Image        `json:"mainArt"`
	Tags        []SelectOption `json:"tags"`
}

// Auction is a row of the Auctions table.
type Auction struct {
	ID               int         `json:"id"`
	RowOrder         string      `json:"order"`
	Name             string      `json:"name"`
	StartDate        string      `json:"start_date"`
	EndDate          string      `json:"end_date"`
	Venue            string      `json:"venue"`
	City             string      `json:"city"`
	LotCount         string      `json:"lot_count"`
	LotsSold         string      `json:"lots_sold"`
	TotalSalesRub    string      `json:"total_sales_rub"`
	DescriptionShort string      `json:"description_short"`
	Photo            []Image     `json:"photo"`
	IsActive         bool        `json:"is_active"`
	Lots             []Reference `json:"lots"`
}

// Bet is a row of the Bets table. User and Lot are link-row lists but the
// schema only ever populates a single element.
type Bet struct {
	ID       int         `json:"id"`
	RowOrder string      `json:"order"`
	BetValue string      `json:"BetValue"`
	Date     string      `json:"Date"`
	User     []Reference `json:"User"`
	Lot      []Reference `json:"Lot"`
}

// User is a row of the Users table.
type User struct {
	ID           int         `json:"id"`
	RowOrder     string      `json:"order"`
	Username     string      `json:"Username"`
	TelegramID   string      `json:"TelegramID"`
	ProfileImage string      `json:"ProfileImage"`
	Bets         []Reference `json:"Bets"`
	PhoneNumber  *string     `json:"PhoneNumber"`
}
