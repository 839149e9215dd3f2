package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	httptransport "github.com/spitlabs/lostfound-service/internal/api/http"
	"github.com/spitlabs/lostfound-service/internal/api/http/handlers"
	"github.com/spitlabs/lostfound-service/internal/auth"
	"github.com/spitlabs/lostfound-service/internal/config"
	"github.com/spitlabs/lostfound-service/internal/events"
	"github.com/spitlabs/lostfound-service/internal/observability"
	"github.com/spitlabs/lostfound-service/internal/persistence"
	"github.com/spitlabs/lostfound-service/internal/repository"
	"github.com/spitlabs/lostfound-service/internal/service"
	"github.com/spitlabs/lostfound-service/internal/worker"
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

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pg, err := persistence.NewPostgres(ctx, cfg.Postgres, logger)
	if err != nil {
		logger.Fatal("failed to connect postgres", zap.Error(err))
	}
	defer pg.Close()

	if cfg.Postgres.RunMigrations {
		if err := persistence.RunMigrations(ctx, pg.PoolHandle(), logger); err != nil {
			logger.Fatal("failed to run migrations", zap.Error(err))
		}
	}

	redis := persistence.NewRedis(cfg.Redis, logger)
	defer redis.Close()

	pool := pg.PoolHandle()
	userRepo := repository.NewUserRepository(pool)
	itemRepo := repository.NewItemRepository(pool)
	locationRepo := repository.NewLocationRepository(pool)
	claimRepo := repository.NewClaimRepository(pool)
	notificationRepo := repository.NewNotificationRepository(pool)
	statsRepo := repository.NewStatsRepository(pool)

	sessionStore := auth.NewRedisSessionStore(redis.Client)
	dispatcher := events.NewInMemoryDispatcher()
	metrics := observability.NewMetrics()

	authService := service.NewAuthService(*cfg, service.AuthDependencies{
		UserRepo:     userRepo,
		SessionStore: sessionStore,
	})
	itemService := service.NewItemService(service.ItemDependencies{
		ItemRepo:     itemRepo,
		LocationRepo: locationRepo,
		Dispatcher:   dispatcher,
	})
	claimService := service.NewClaimService(service.ClaimDependencies{
		ClaimRepo:  claimRepo,
		ItemRepo:   itemRepo,
		Dispatcher: dispatcher,
	})
	notificationService := service.NewNotificationService(notificationRepo, dispatcher, logger)
	adminService := service.NewAdminService(service.AdminDependencies{
		StatsRepo: statsRepo,
		ItemRepo:  itemRepo,
		ClaimRepo: claimRepo,
		UserRepo:  userRepo,
	})

	worker.StartNotificationWorker(notificationService)

	authMiddleware := auth.NewAuthMiddleware(authService.TokenManager(), sessionStore, userRepo)

	app := fiber.New(fiber.Config{BodyLimit: 10 * 1024 * 1024})
	httptransport.RegisterMiddlewares(app, logger, metrics, cfg.App.RequestTimeout())

	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health:         handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, pg, redis),
		Users:          handlers.NewUsersHandler(authService),
		Items:          handlers.NewItemsHandler(itemService),
		Claims:         handlers.NewClaimsHandler(claimService),
		Notifications:  handlers.NewNotificationsHandler(notificationService),
		Admin:          handlers.NewAdminHandler(adminService, metrics),
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
