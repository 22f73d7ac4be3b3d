package v1

import (
	"github.com/vibe-gaming/cadastro/internal/config"
	"github.com/vibe-gaming/cadastro/internal/service"

	"github.com/gin-gonic/gin"
)

// @title Cadastro API
// @version 1.0
// @description Registration form state, postal lookup and submission

// @BasePath /api/v1

// @securityDefinitions.apikey FormSession
// @in header
// @name X-Form-Session

type Handler struct {
	services *service.Services
	config   *config.Config
}

func NewHandler(services *service.Services, config *config.Config) *Handler {
	return &Handler{
		services: services,
		config:   config,
	}
}

func (h *Handler) Init(api *gin.RouterGroup) {
	v1 := api.Group("v1")

	h.initFormRoutes(v1)
	h.initPostalRoutes(v1)
}
