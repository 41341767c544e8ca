package models

// AuctionStatus is the derived lifecycle state of an auction.
type AuctionStatus string

const (
	AuctionActive   AuctionStatus = "active"
	AuctionUpcoming AuctionStatus = "upcoming"
	AuctionPast     AuctionStatus = "past"
)

// AuctionModel is the UI-facing shape of an auction event.
type AuctionModel struct {
	ID            int           `json:"id"`
	Name          string        `json:"name"`
	StartDate     string        `json:"startDate"`
	EndDate       string        `json:"endDate"`
	Venue         string        `json:"venue"`
	City          string        `json:"city"`
	LotCount      int           `json:"lotCount"`
	LotsSold      int           `json:"lotsSold"`
	TotalSalesRub int           `json:"totalSalesRub"`
	Description   string        `json:"description"`
	Image         *string       `json:"image"`
	IsActive      bool          `json:"isActive"`
	Status        AuctionStatus `json:"status"`
}
