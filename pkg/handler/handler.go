package handler

import (
	"net/http"

	"wallet_api_back/pkg/middleware"
	"wallet_api_back/pkg/service"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *service.Service
}

func NewHandler(service *service.Service) *Handler {
	return &Handler{
		service: service,
	}
}

// InitRoute builds the router. Only allowOrigins may call the API from a browser.
func (h *Handler) InitRoute(allowOrigins []string) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), middleware.RequestLogger())

	router.Use(cors.New(cors.Config{
		AllowOrigins: allowOrigins,
		AllowMethods: []string{
			http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch,
			http.MethodDelete, http.MethodHead, http.MethodOptions,
		},
		AllowHeaders: []string{
			"Origin", "Accept", "Content-Length", "Content-Type", "Authorization",
			"X-Requested-With", "X-Telegram-ID", "X-Telegram-Init-Data",
		},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}))

	router.GET("/health", h.Health)

	api := router.Group("/api")
	{
		api.POST("/balance", h.GetBalance)
		api.POST("/change-balance", h.ChangeBalance)
		api.POST("/deposit-address", h.GetDepositAddress)

		personal := api.Group("/personal-data")
		{
			personal.POST("/save", h.SavePersonalData)
			personal.POST("/get", h.GetPersonalData)
		}
	}
	return router
}
