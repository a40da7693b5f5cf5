// File: devseva/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"devseva/config"
	"devseva/cron"
	"devseva/database"
	providerRepoPkg "devseva/database/repository/provider"
	reservationRepoPkg "devseva/database/repository/reservation"
	"devseva/handlers"
	"devseva/middleware"
	"devseva/routes"
	"devseva/services/booking"
	"devseva/services/notification"
	"devseva/services/provider"
	"devseva/services/scheduling"
	"devseva/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/hibiken/asynq"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitCache()
	utils.InitLockClient()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(cors.Default())
	router.Use(middleware.RateLimitMiddleware())

	// Repositories.
	provRepo := providerRepoPkg.NewMongoProviderRepo()
	resRepo := reservationRepoPkg.NewMongoReservationRepo()

	indexCtx, indexCancel := context.WithTimeout(context.Background(), 30*time.Second)
	if err := providerRepoPkg.EnsureProviderIndexes(indexCtx, provRepo); err != nil {
		logger.Sugar().Fatalf("main: failed to create provider indexes: %v", err)
	}
	if err := reservationRepoPkg.EnsureReservationIndexes(indexCtx, resRepo); err != nil {
		logger.Sugar().Fatalf("main: failed to create reservation indexes: %v", err)
	}
	indexCancel()

	// Services.
	slotEngine := &scheduling.DefaultSlotEngine{
		ProviderRepo:    provRepo,
		ReservationRepo: resRepo,
	}

	asynqClient := asynq.NewClient(asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisReminderQueueDB,
	})
	defer asynqClient.Close()

	bookingService := &booking.DefaultBookingService{
		Engine:          slotEngine,
		ReservationRepo: resRepo,
		Locker:          &booking.RedisProviderLocker{Client: utils.GetLockClient(), TTL: 10 * time.Second},
		Reminders: &booking.ReminderScheduler{
			Client: asynqClient,
			Lead:   time.Duration(config.AppConfig.ReminderLeadMinutes) * time.Minute,
		},
	}

	providerService := &provider.DefaultProviderService{Repo: provRepo}

	notificationService := &notification.LogNotificationService{Logger: logger}
	cron.InitReminderWorker(notificationService)

	utils.StartHealthMonitor(
		[]*redis.Client{utils.GetCacheClient(), utils.GetLockClient()},
		database.MongoClient,
	)

	// Handlers.
	handlerBundle := &routes.HandlerBundle{
		Availability: handlers.NewAvailabilityHandler(slotEngine),
		Booking:      handlers.NewBookingHandler(bookingService, slotEngine, logger),
		Provider:     handlers.NewProviderHandler(providerService),
	}
	routes.SetupRoutes(router, handlerBundle)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
