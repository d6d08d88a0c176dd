package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
	_ "time/tzdata"

	"github.com/gin-gonic/gin"

	"github.com/sagarikadotcom/canaan-pet-resort/config"
	"github.com/sagarikadotcom/canaan-pet-resort/config/db"
	"github.com/sagarikadotcom/canaan-pet-resort/config/redis"
	"github.com/sagarikadotcom/canaan-pet-resort/controllers/boarding_controller"
	"github.com/sagarikadotcom/canaan-pet-resort/controllers/booking_controller"
	"github.com/sagarikadotcom/canaan-pet-resort/controllers/dog_controller"
	"github.com/sagarikadotcom/canaan-pet-resort/controllers/kennel_controller"
	"github.com/sagarikadotcom/canaan-pet-resort/controllers/owner_controller"
	"github.com/sagarikadotcom/canaan-pet-resort/logger"
	"github.com/sagarikadotcom/canaan-pet-resort/middlewares/cors"
	logger_middleware "github.com/sagarikadotcom/canaan-pet-resort/middlewares/logger"
	"github.com/sagarikadotcom/canaan-pet-resort/models/booking_models"
	"github.com/sagarikadotcom/canaan-pet-resort/models/dog_models"
	"github.com/sagarikadotcom/canaan-pet-resort/models/kennel_models"
	"github.com/sagarikadotcom/canaan-pet-resort/models/owner_models"
	"github.com/sagarikadotcom/canaan-pet-resort/routes"
	"github.com/sagarikadotcom/canaan-pet-resort/services/boarding_service"
	"github.com/sagarikadotcom/canaan-pet-resort/services/booking_service"
	"github.com/sagarikadotcom/canaan-pet-resort/services/kennel_service"
)

func main() {
	config.LoadEnv()

	cfg, err := config.Load()
	if err != nil {
		logger.ErrorLogger.Fatalf("Failed to load configuration: %v", err)
	}
	logger.InitLoggers(cfg.LogDir, cfg.Debug)

	loc, err := cfg.Location()
	if err != nil {
		logger.ErrorLogger.Fatalf("Invalid timezone: %v", err)
	}

	ctx := context.Background()

	pool, err := db.Connect(ctx, cfg)
	if err != nil {
		logger.ErrorLogger.Fatalf("Database connection failed: %v", err)
	}
	defer db.Close(pool)

	if err := db.RunMigrations(ctx, pool); err != nil {
		logger.ErrorLogger.Fatalf("Migrations failed: %v", err)
	}

	rdb, err := redis.Connect(ctx, cfg.RedisURL)
	switch {
	case errors.Is(err, redis.ErrNotConfigured):
		logger.WarnLogger.Warn("REDIS_URL not set, running without redis")
	case err != nil:
		logger.WarnLogger.Warnf("Redis unavailable, continuing without cache: %v", err)
	}
	defer redis.Close(rdb)

	bookingRepo := booking_models.NewRepository(pool)
	ownerRepo := owner_models.NewRepository(pool)
	dogRepo := dog_models.NewRepository(pool)
	kennelRepo := kennel_models.NewRepository(pool)

	var kennelCache kennel_service.KennelCache
	if rdb != nil {
		kennelCache = kennel_service.NewRedisKennelCache(rdb, cfg.KennelCacheTTL)
	}

	bookingService := booking_service.NewBookingService(bookingRepo, ownerRepo, dogRepo)
	boardingService := boarding_service.NewBoardingService(bookingRepo, loc)
	kennelService := kennel_service.NewKennelService(kennelRepo, kennelCache, bookingService)

	gin.SetMode(cfg.GinMode)
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(cors.CorsMiddleware(cfg.AllowedOrigins()))
	r.Use(logger_middleware.GinLogger())

	routes.RegisterRoutes(r, routes.Controllers{
		Bookings:  booking_controller.NewBookingController(bookingService),
		Boardings: boarding_controller.NewBoardingController(boardingService, kennelService),
		Kennels:   kennel_controller.NewKennelController(kennelService),
		Owners:    owner_controller.NewOwnerController(ownerRepo),
		Dogs:      dog_controller.NewDogController(dogRepo),
	}, routes.Options{
		JWTSecret:      cfg.JWTSecret,
		WriteRateLimit: cfg.WriteRateLimit,
		Redis:          rdb,
	})

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: r,
	}

	go func() {
		logger.InfoLogger.Infof("Server listening on :%s (timezone %s)", cfg.Port, loc)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.ErrorLogger.Fatalf("Server failed to listen: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.InfoLogger.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.ErrorLogger.Errorf("Server forced to shutdown: %v", err)
	}

	logger.InfoLogger.Info("Server exited gracefully")
}
