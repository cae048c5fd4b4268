package handler

import (
	"net/http"

	"wallet_api_back/models"

	"github.com/gin-gonic/gin"
)

// Баланс пользователя по Telegram ID. Тело запроса {tg_id:int}
func (h *Handler) GetBalance(c *gin.Context) {
	var input models.TelegramIDInput
	if err := c.ShouldBindJSON(&input); err != nil {
		newBindErrorResponse(c, err)
		return
	}

	balance, err := h.service.Balance.GetBalance(c.Request.Context(), *input.TgID)
	if err != nil {
		newServiceErrorResponse(c, err)
		return
	}

	c.JSON(http.StatusOK, models.BalanceResponse{Balance: balance})
}

// Изменение баланса на delta (+выигрыш, -ставка). Тело запроса {tg_id:int, delta:float}
func (h *Handler) ChangeBalance(c *gin.Context) {
	var input models.ChangeBalanceInput
	if err := c.ShouldBindJSON(&input); err != nil {
		newBindErrorResponse(c, err)
		return
	}

	balance, err := h.service.Balance.ChangeBalance(c.Request.Context(), *input.TgID, *input.Delta)
	if err != nil {
		newServiceErrorResponse(c, err)
		return
	}

	c.JSON(http.StatusOK, models.BalanceResponse{Balance: balance})
}
