package models

import "time"

// EntityRef points at a related row together with its display name.
type EntityRef struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// BetModel is the UI-facing shape of a bid. User and Lot are nil when the
// raw record carries no reference.
type BetModel struct {
	ID    int        `json:"id"`
	Value float64    `json:"value"`
	Date  time.Time  `json:"date"`
	User  *EntityRef `json:"user"`
	Lot   *EntityRef `json:"lot"`
}
