package main

import (
	"context"
	"database/sql"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/newrelic/go-agent/v3/newrelic"
	"github.com/redis/go-redis/v9"

	"cab/internal/app"
	"cab/internal/config"
	"cab/internal/handler"
	"cab/internal/logger"
	internalRedis "cab/internal/redis"
	"cab/internal/repository/postgres"
	"cab/internal/service"
)

func main() {
	// Load configuration.
	cfg := config.Load()

	log := logger.New("cab-booking")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Initialize New Relic first so the database driver can be instrumented.
	var nrApp *newrelic.Application
	var err error
	if cfg.NewRelic.Enabled && cfg.NewRelic.LicenseKey != "" {
		nrApp, err = newrelic.NewApplication(
			newrelic.ConfigAppName(cfg.NewRelic.AppName),
			newrelic.ConfigLicense(cfg.NewRelic.LicenseKey),
			newrelic.ConfigDistributedTracerEnabled(true),
			newrelic.ConfigAppLogForwardingEnabled(true),
		)
		if err != nil {
			log.Warning("failed to initialize New Relic", logger.Error(err))
		} else {
			log.Info("New Relic enabled", logger.String("app", cfg.NewRelic.AppName))
		}
	}

	// Initialize database with New Relic instrumentation.
	db, err := app.NewDatabase(ctx, cfg.Database, nrApp)
	if err != nil {
		log.Error("failed to connect to database", logger.Error(err))
		os.Exit(1)
	}
	defer db.Close()
	log.Info("connected to PostgreSQL")

	// Apply schema migrations.
	if err := app.RunMigrations(db, cfg.Database); err != nil {
		log.Error("failed to run migrations", logger.Error(err))
		os.Exit(1)
	}
	log.Info("migrations applied")

	// Initialize Redis with New Relic instrumentation.
	redisClient, err := app.NewRedisClient(ctx, cfg.Redis, nrApp)
	if err != nil {
		log.Error("failed to connect to redis", logger.Error(err))
		os.Exit(1)
	}
	defer redisClient.Close()
	log.Info("connected to Redis")

	// Wire dependencies.
	server := wireServer(db, redisClient, nrApp, cfg, log)

	// Start server in goroutine.
	go func() {
		log.Info("starting server", logger.String("port", cfg.Server.Port))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("server error", logger.Error(err))
			os.Exit(1)
		}
	}()

	// Graceful shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("shutting down server")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("server forced to shutdown", logger.Error(err))
		os.Exit(1)
	}

	log.Info("server exited")
}

// wireServer wires all dependencies and returns the HTTP server.
func wireServer(db *sql.DB, redisClient *redis.Client, nrApp *newrelic.Application, cfg *config.Config, log logger.ILogger) *http.Server {
	// Redis lock store guards the booking claim.
	lockStore := internalRedis.NewLockStore(redisClient)

	// Repositories.
	sessionRepo := postgres.NewSessionRepository(db)
	adminRepo := postgres.NewAdminRepository(db)
	customerRepo := postgres.NewCustomerRepository(db)
	driverRepo := postgres.NewDriverRepository(db)
	cabRepo := postgres.NewCabRepository(db)
	tripRepo := postgres.NewTripRepository(db)

	// Services.
	authService := service.NewAuthService(adminRepo, customerRepo, sessionRepo)
	customerService := service.NewCustomerService(customerRepo, sessionRepo)
	driverService := service.NewDriverService(driverRepo, sessionRepo)
	cabService := service.NewCabService(cabRepo, sessionRepo)
	bookingService := service.NewBookingService(db, sessionRepo, cabRepo, driverRepo, customerRepo, tripRepo, lockStore)
	adminService := service.NewAdminService(adminRepo, customerRepo, cabRepo, tripRepo, sessionRepo)

	// Handlers.
	authHandler := handler.NewAuthHandler(authService)
	customerHandler := handler.NewCustomerHandler(customerService)
	driverHandler := handler.NewDriverHandler(driverService)
	cabHandler := handler.NewCabHandler(cabService)
	bookingHandler := handler.NewBookingHandler(bookingService)
	adminHandler := handler.NewAdminHandler(adminService)

	// Router.
	router := app.NewRouter(app.RouterDeps{
		AuthHandler:     authHandler,
		CustomerHandler: customerHandler,
		DriverHandler:   driverHandler,
		CabHandler:      cabHandler,
		BookingHandler:  bookingHandler,
		AdminHandler:    adminHandler,
		RedisClient:     redisClient,
		NewRelicApp:     nrApp,
		Logger:          log,
	})

	return &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}
}
