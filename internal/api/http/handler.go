package apiHttp

import (
	"time"

	ginzap "github.com/gin-contrib/zap"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	_ "github.com/vibe-gaming/cadastro/docs"
	"github.com/vibe-gaming/cadastro/pkg/limiter"
	"github.com/vibe-gaming/cadastro/pkg/logger"
	"github.com/vibe-gaming/cadastro/pkg/validator"

	internalV1 "github.com/vibe-gaming/cadastro/internal/api/http/internal/v1"
	"github.com/vibe-gaming/cadastro/internal/api/http/web"
	"github.com/vibe-gaming/cadastro/internal/config"
	"github.com/vibe-gaming/cadastro/internal/service"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	services *service.Services
	config   *config.Config
}

func NewHandlers(services *service.Services, cfg *config.Config) *Handler {
	return &Handler{
		services: services,
		config:   cfg,
	}
}

func (h *Handler) Init(cfg *config.Config) (*gin.Engine, error) {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()

	if err := validator.RegisterGinValidator(); err != nil {
		logger.Error("register gin validator failed", zap.Error(err))
	}

	router.Use(
		ginzap.Ginzap(logger.Logger(), time.RFC3339, true),
		limiter.Limit(cfg.Limiter.RPS, cfg.Limiter.Burst, cfg.Limiter.TTL),
		corsMiddleware(cfg.CORS.AllowedOrigins),
	)
	router.Use(ginzap.RecoveryWithZap(logger.Logger(), true))

	if cfg.HttpServer.SwaggerEnabled {
		router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.NewHandler(), ginSwagger.InstanceName("internal")))
	}

	webHandler, err := web.NewHandler(h.services.Forms, h.config)
	if err != nil {
		return nil, err
	}
	webHandler.Init(router)

	h.initAPI(router)

	return router, nil
}

func (h *Handler) initAPI(router *gin.Engine) {
	internalHandlersV1 := internalV1.NewHandler(h.services, h.config)
	api := router.Group("/api")
	internalHandlersV1.Init(api)
}
