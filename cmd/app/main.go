package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	apiHttp "github.com/vibe-gaming/cadastro/internal/api/http"
	"github.com/vibe-gaming/cadastro/internal/cache"
	"github.com/vibe-gaming/cadastro/internal/config"
	"github.com/vibe-gaming/cadastro/internal/domain"
	"github.com/vibe-gaming/cadastro/internal/repository"
	"github.com/vibe-gaming/cadastro/internal/server"
	"github.com/vibe-gaming/cadastro/internal/service"
	"github.com/vibe-gaming/cadastro/internal/service/registration"
	"github.com/vibe-gaming/cadastro/internal/service/viacep"
	"github.com/vibe-gaming/cadastro/pkg/logger"
	"github.com/vibe-gaming/cadastro/pkg/validator"
)

func main() {
	// Init cfg from environment variables
	cfg := config.MustLoad()

	// Dependencies
	appLogger := logger.SetupLogger(cfg.Env, cfg.LogLevel)
	defer logger.Sync()

	appLogger.Info("starting cadastro api", zap.String("env", cfg.Env))
	appLogger.Debug("debug messages are enabled")

	// Init session and lookup storage
	var repos *repository.Repositories
	if cfg.Cache.Type == cache.TypeMemory {
		repos = repository.NewMemoryRepositories(cfg.Session.TTL, cfg.PostalLookup.CacheTTL)
		appLogger.Info("using in-memory form sessions")
	} else {
		redisClient, err := cache.NewRedis(cfg.Cache)
		if err != nil {
			logger.Fatal("redis connect problem", zap.String("type", cfg.Cache.Type), zap.Error(err))
		}
		defer closeRedis(appLogger, redisClient)
		appLogger.Info("redis connection done", zap.String("type", cfg.Cache.Type))

		repos = repository.NewRepositories(redisClient, cfg.Session.TTL, cfg.PostalLookup.CacheTTL)
	}

	v, err := validator.New(domain.RegistrationMessages)
	if err != nil {
		logger.Fatal("validator creation failed", zap.Error(err))
	}

	// Services & API Handlers
	services := service.NewServices(service.Deps{
		Repos:              repos,
		Validator:          v,
		PostalClient:       viacep.NewClient(cfg.PostalLookup.BaseURL, cfg.PostalLookup.Timeout),
		RegistrationClient: registration.NewClient(cfg.Registration.URL, cfg.Registration.Timeout),
	})
	handlers := apiHttp.NewHandlers(services, cfg)

	router, err := handlers.Init(cfg)
	if err != nil {
		logger.Fatal("http handlers init failed", zap.Error(err))
	}

	// HTTP Server
	srv := server.NewServer(cfg, router)
	go func() {
		if err := srv.Run(); err != nil {
			appLogger.Error("error occurred while running http server", zap.Error(err))
		}
	}()
	appLogger.Info("server started", zap.String("port", cfg.HttpServer.Port))

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGTERM, syscall.SIGINT)

	<-quit

	const timeout = 5 * time.Second

	ctx, shutdown := context.WithTimeout(context.Background(), timeout)
	defer shutdown()

	if err := srv.Stop(ctx); err != nil {
		appLogger.Error("failed to stop server", zap.Error(err))
	}

	appLogger.Info("app stopped")
}

func closeRedis(l *zap.Logger, client redis.UniversalClient) {
	if err := client.Close(); err != nil {
		l.Error("error when closing redis", zap.Error(err))
	}
}
