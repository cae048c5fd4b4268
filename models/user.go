package models

// TelegramIDInput is the body of every lookup endpoint. Users are registered
// elsewhere and identified here only by tg_id.
// TgID is a pointer: 0 is a valid lookup key, only a missing field is rejected.
type TelegramIDInput struct {
	TgID *int64 `json:"tg_id" binding:"required"`
}
