package models

type ChangeBalanceInput struct {
	TgID *int64 `json:"tg_id" binding:"required"`
	// Delta is signed: positive for winnings and deposits, negative for bets.
	// A pointer so that an explicit 0 is accepted while a missing field is not.
	Delta *float64 `json:"delta" binding:"required"`
}

type BalanceResponse struct {
	Balance float64 `json:"balance"`
}
