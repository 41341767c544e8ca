package models

// UserBet is a bet reference on a user profile.
type UserBet struct {
	ID    int    `json:"id"`
	Value string `json:"value"`
}

// UserModel is the UI-facing shape of a catalog user.
type UserModel struct {
	ID           int       `json:"id"`
	Username     string    `json:"username"`
	TelegramID   string    `json:"telegramId"`
	ProfileImage *string   `json:"profileImage"`
	PhoneNumber  *string   `json:"phoneNumber"`
	Bets         []UserBet `json:"bets"`
}
