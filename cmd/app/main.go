package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/Ira5334/backend/api"
	"github.com/Ira5334/backend/config"
	"github.com/Ira5334/backend/internal/bootstrap"
	"github.com/Ira5334/backend/internal/cache"
	"github.com/Ira5334/backend/internal/kafka"
	"github.com/Ira5334/backend/internal/logger"
	"github.com/Ira5334/backend/internal/repository"
	"github.com/Ira5334/backend/internal/service/booking"
	"github.com/Ira5334/backend/internal/service/customers"
	"github.com/Ira5334/backend/internal/service/rooms"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	cfgPath := os.Getenv("CONFIG_PATH")
	if cfgPath == "" {
		cfgPath = "config.yaml"
	}

	cfg, err := config.LoadConfig(cfgPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	zl, err := logger.New(cfg.Log)
	if err != nil {
		log.Fatalf("init logger: %v", err)
	}
	defer zl.Sync()

	if !cfg.Log.Development {
		gin.SetMode(gin.ReleaseMode)
	}

	if err := run(cfg, zl); err != nil {
		zl.Error("server stopped with error", zap.Error(err))
		zl.Sync()
		os.Exit(1)
	}
}

func run(cfg *config.Config, zl *zap.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	pool, err := repository.NewPool(ctx, cfg.Database)
	if err != nil {
		return err
	}
	defer pool.Close()

	if cfg.Database.EnsureSchema {
		if err := repository.EnsureSchema(ctx, pool); err != nil {
			return err
		}
	}

	redisCache := cache.NewRedisCache(cfg.Redis, cfg.Booking.RoomsCacheTTLDuration())
	defer redisCache.Close()
	if err := redisCache.Ping(ctx); err != nil {
		zl.Warn("redis unavailable, rooms will be read from the store", zap.Error(err))
	}

	producer := kafka.NewProducer(cfg.Kafka.Brokers, zl.Named("kafka"))
	defer producer.Close()

	roomRepo := repository.NewRoomRepository(pool)
	reservationRepo := repository.NewReservationRepository(pool)
	customerRepo := repository.NewCustomerRepository(pool)

	roomService := rooms.NewRoomService(roomRepo, redisCache, zl.Named("rooms"))
	bookingService := booking.NewBookingService(
		reservationRepo,
		roomRepo,
		producer,
		cfg.Kafka.ReservationTopic,
		booking.WithNotificationsTopic(cfg.Kafka.NotificationsTopic),
		booking.WithPublishRetries(cfg.Kafka.PublishRetries),
		booking.WithLocation(cfg.Booking.Location()),
		booking.WithLogger(zl.Named("booking")),
	)
	customerService := customers.NewCustomerService(customerRepo)

	router := api.NewRouter(api.RouterDeps{
		Rooms:          roomService,
		Bookings:       bookingService,
		Customers:      customerService,
		Health:         pool.Ping,
		Log:            zl.Named("http"),
		AllowedOrigins: cfg.HTTP.AllowedOrigins,
		SwaggerDir:     cfg.HTTP.SwaggerDir,
	})

	return bootstrap.Run(ctx, cfg.HTTP.Address, router, cfg.HTTP.ShutdownTimeout(), zl)
}
