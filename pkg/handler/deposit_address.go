package handler

import (
	"net/http"

	"wallet_api_back/models"

	"github.com/gin-gonic/gin"
)

// Последний выданный депозит-адрес пользователя. Тело запроса {tg_id:int}
func (h *Handler) GetDepositAddress(c *gin.Context) {
	var input models.TelegramIDInput
	if err := c.ShouldBindJSON(&input); err != nil {
		newBindErrorResponse(c, err)
		return
	}

	address, err := h.service.DepositAddress.GetDepositAddress(c.Request.Context(), *input.TgID)
	if err != nil {
		newServiceErrorResponse(c, err)
		return
	}

	c.JSON(http.StatusOK, models.DepositAddressResponse{Address: address})
}
