package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"sparkle/config"
	"sparkle/cron"
	"sparkle/database"
	"sparkle/database/repository"
	"sparkle/handlers"
	"sparkle/middleware"
	"sparkle/routes"
	"sparkle/services/availability"
	"sparkle/services/booking"
	"sparkle/services/pricing"
	"sparkle/services/tasks"
	"sparkle/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()
	defer logger.Sync()

	if config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	database.InitDB()
	utils.InitRedis()

	rootCtx, stop := context.WithCancel(context.Background())
	defer stop()

	if err := repository.EnsureIndexes(rootCtx, database.Database()); err != nil {
		logger.Fatal("main: failed to ensure indexes", zap.Error(err))
	}

	// repositories.
	ruleRepo := repository.NewMongoPricingRuleRepo()
	bookingRepo := repository.NewMongoBookingRepo()
	warningRepo := repository.NewMongoWarningRepo()

	// background work.
	queue := asynq.NewClient(cron.RedisOpt())
	defer queue.Close()
	worker := cron.InitWarningWorker(warningRepo, logger.Named("worker"))

	// services.
	pricingService := &pricing.DefaultPricingService{
		Repo:     ruleRepo,
		Cache:    pricing.NewRedisRuleCache(utils.GetCacheClient(), utils.RuleSnapshotKey, config.AppConfig.RuleCacheTTL),
		Warnings: &tasks.AsynqWarningReporter{Client: queue, Logger: logger},
		Logger:   logger.Named("pricing"),
	}
	draftStore := booking.NewRedisDraftStore(utils.GetDraftClient(), config.AppConfig.DraftTTL)
	draftService := &booking.DefaultDraftService{
		Store:   draftStore,
		Pricing: pricingService,
		Logger:  logger.Named("drafts"),
	}
	bookingService := &booking.DefaultBookingService{
		Drafts:   draftStore,
		Bookings: bookingRepo,
		Pricing:  pricingService,
		Logger:   logger.Named("bookings"),
	}
	availabilityService := &availability.DefaultAvailabilityService{
		Bookings: bookingRepo,
		Logger:   logger.Named("availability"),
	}

	utils.StartHealthMonitor(rootCtx, []*redis.Client{utils.GetCacheClient(), utils.GetDraftClient()}, database.MongoClient)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		Pricing:      &handlers.PricingHandler{Service: pricingService, Logger: logger},
		Warnings:     &handlers.WarningHandler{Repo: warningRepo, Logger: logger},
		Availability: &handlers.AvailabilityHandler{Service: availabilityService, Logger: logger},
		Drafts:       &handlers.DraftHandler{Drafts: draftService, Bookings: bookingService, Logger: logger},
		Health:       handlers.Health,

		AdminToken:        config.AppConfig.AdminToken,
		MaxRequestsPerMin: config.AppConfig.MaxRequestsPerMin,
	}

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware(handlerBundle.MaxRequestsPerMin))

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Info("Starting server", zap.String("addr", srv.Addr))
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("main: server failed to start", zap.Error(err))
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("main: server is shutting down...")
	stop()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("main: server forced to shutdown", zap.Error(err))
	}
	worker.Shutdown()
	if err := database.Disconnect(ctx); err != nil {
		logger.Warn("main: mongo disconnect failed", zap.Error(err))
	}

	logger.Info("main: server stopped gracefully")
}
