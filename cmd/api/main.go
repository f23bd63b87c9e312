package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	httptransport "github.com/MoniqueRon/esim-dashboard/internal/api/http"
	"github.com/MoniqueRon/esim-dashboard/internal/api/http/handlers"
	"github.com/MoniqueRon/esim-dashboard/internal/auth"
	"github.com/MoniqueRon/esim-dashboard/internal/config"
	"github.com/MoniqueRon/esim-dashboard/internal/events"
	"github.com/MoniqueRon/esim-dashboard/internal/nexuce"
	"github.com/MoniqueRon/esim-dashboard/internal/observability"
	"github.com/MoniqueRon/esim-dashboard/internal/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logger)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	metrics := observability.NewMetrics()

	dispatcher := events.NewInMemoryDispatcher()
	events.RegisterAuditLogger(dispatcher, logger)

	client := nexuce.NewClient(cfg.Nexuce, logger)
	session := nexuce.NewSession()

	authService := service.NewAuthService(*cfg, client, session, dispatcher, logger)
	esimService := service.NewESIMService(client, session, dispatcher, metrics, logger)
	authMiddleware := auth.NewAuthMiddleware(authService.TokenManager())

	app := fiber.New()
	httptransport.RegisterMiddlewares(app, logger, metrics, cfg.App.RequestTimeout())

	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health:         handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, session),
		Auth:           handlers.NewAuthHandler(authService),
		ESIMs:          handlers.NewESIMsHandler(esimService),
		Account:        handlers.NewAccountHandler(esimService),
		AuthMiddleware: authMiddleware,
	})

	go func() {
		if err := app.Listen(cfg.App.Addr()); err != nil {
			logger.Fatal("fiber listen", zap.Error(err))
		}
	}()

	waitForShutdown(logger)

	_ = app.Shutdown()
}

func waitForShutdown(logger *zap.Logger) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigCh
	logger.Info("shutting down", zap.String("signal", sig.String()))
}
