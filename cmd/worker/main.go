package main

import (
	"context"
	"errors"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Ira5334/backend/config"
	"github.com/Ira5334/backend/internal/email"
	"github.com/Ira5334/backend/internal/kafka"
	"github.com/Ira5334/backend/internal/logger"
	"github.com/Ira5334/backend/internal/repository"
	"github.com/Ira5334/backend/internal/service/booking"
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

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	pool, err := repository.NewPool(ctx, cfg.Database)
	if err != nil {
		zl.Fatal("connect postgres", zap.Error(err))
	}
	defer pool.Close()

	producer := kafka.NewProducer(cfg.Kafka.Brokers, zl.Named("kafka"))
	defer producer.Close()

	bookingService := booking.NewBookingService(
		repository.NewReservationRepository(pool),
		repository.NewRoomRepository(pool),
		producer,
		cfg.Kafka.ReservationTopic,
		booking.WithNotificationsTopic(cfg.Kafka.NotificationsTopic),
		booking.WithPublishRetries(cfg.Kafka.PublishRetries),
		booking.WithLocation(cfg.Booking.Location()),
		booking.WithLogger(zl.Named("booking")),
	)

	consumer := kafka.NewConsumer(cfg.Kafka.Brokers, cfg.Kafka.GroupID, cfg.Kafka.NotificationsTopic, zl.Named("consumer"))
	defer consumer.Close()

	emailSender := email.NewSender(zl.Named("email"))

	go func() {
		err := consumer.ConsumeReservationEvents(ctx, emailSender.Send)
		if err != nil && !errors.Is(err, context.Canceled) {
			zl.Error("consumer stopped", zap.Error(err))
		}
	}()

	sweep := time.Duration(cfg.Worker.CompletionSweepMinutes) * time.Minute
	if sweep <= 0 {
		sweep = time.Hour
	}
	ticker := time.NewTicker(sweep)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			completed, err := bookingService.CompletePastReservations(ctx)
			if err != nil {
				zl.Error("complete reservations", zap.Error(err))
				continue
			}
			if len(completed) > 0 {
				zl.Info("completed reservations", zap.Int("count", len(completed)))
			}
		case <-ctx.Done():
			zl.Info("shutting down worker")
			return
		}
	}
}
