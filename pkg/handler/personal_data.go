package handler

import (
	"net/http"

	"wallet_api_back/models"

	"github.com/gin-gonic/gin"
)

// Сохранение персональных данных. Все поля кроме tg_id необязательны,
// но отсутствующие поля затираются (NULL). birth_date в формате YYYY-MM-DD.
func (h *Handler) SavePersonalData(c *gin.Context) {
	var input models.PersonalDataInput
	if err := c.ShouldBindJSON(&input); err != nil {
		newBindErrorResponse(c, err)
		return
	}

	data, err := h.service.PersonalData.SavePersonalData(c.Request.Context(), input)
	if err != nil {
		newServiceErrorResponse(c, err)
		return
	}

	c.JSON(http.StatusOK, data)
}

func (h *Handler) GetPersonalData(c *gin.Context) {
	var input models.TelegramIDInput
	if err := c.ShouldBindJSON(&input); err != nil {
		newBindErrorResponse(c, err)
		return
	}

	data, err := h.service.PersonalData.GetPersonalData(c.Request.Context(), *input.TgID)
	if err != nil {
		newServiceErrorResponse(c, err)
		return
	}

	c.JSON(http.StatusOK, data)
}
