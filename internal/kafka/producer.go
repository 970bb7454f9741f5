package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/Ira5334/backend/internal/domain"
	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

const (
	EventReservationCreated   = "reservation_created"
	EventReservationCompleted = "reservation_completed"
)

type ReservationEvent struct {
	ID            string    `json:"id"`
	Type          string    `json:"type"`
	ReservationID int64     `json:"reservation_id"`
	RoomType      string    `json:"room_type"`
	Name          string    `json:"name"`
	Email         string    `json:"email"`
	CheckIn       string    `json:"check_in_date"`
	CheckOut      string    `json:"check_out_date"`
	TotalPrice    float64   `json:"total_price"`
	Status        string    `json:"status"`
	OccurredAt    time.Time `json:"occurred_at"`
}

func NewReservationEvent(eventType string, r *domain.Reservation, now time.Time) ReservationEvent {
	return ReservationEvent{
		ID:            uuid.NewString(),
		Type:          eventType,
		ReservationID: r.ID,
		RoomType:      r.RoomType,
		Name:          r.Name,
		Email:         r.Email,
		CheckIn:       r.CheckIn.String(),
		CheckOut:      r.CheckOut.String(),
		TotalPrice:    r.TotalPrice,
		Status:        string(r.Status),
		OccurredAt:    now,
	}
}

// Key partitions events of one reservation together.
func (e ReservationEvent) Key() string {
	return fmt.Sprintf("reservation:%d", e.ReservationID)
}

type Producer struct {
	writer *kafka.Writer
	log    *zap.Logger
}

func NewProducer(brokers []string, log *zap.Logger) *Producer {
	writer := &kafka.Writer{
		Addr:                   kafka.TCP(brokers...),
		Balancer:               &kafka.LeastBytes{},
		BatchTimeout:           50 * time.Millisecond,
		RequiredAcks:           kafka.RequireOne,
		AllowAutoTopicCreation: true,
	}

	return &Producer{writer: writer, log: log}
}

func (p *Producer) Publish(ctx context.Context, topic, key string, payload interface{}) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal payload: %w", err)
	}

	err = p.writer.WriteMessages(ctx, kafka.Message{
		Topic: topic,
		Key:   []byte(key),
		Value: data,
		Time:  time.Now(),
	})
	if err != nil {
		return fmt.Errorf("failed to write message to Kafka: %w", err)
	}

	p.log.Debug("published to kafka", zap.String("topic", topic), zap.String("key", key))
	return nil
}

func (p *Producer) PublishWithRetry(ctx context.Context, topic, key string, payload interface{}, maxRetries int) error {
	if maxRetries < 1 {
		maxRetries = 1
	}

	var lastErr error
	for i := 0; i < maxRetries; i++ {
		err := p.Publish(ctx, topic, key, payload)
		if err == nil {
			return nil
		}

		lastErr = err
		p.log.Warn("kafka publish attempt failed", zap.Int("attempt", i+1), zap.String("topic", topic), zap.Error(err))

		if i < maxRetries-1 {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(time.Duration(i+1) * 500 * time.Millisecond):
			}
		}
	}

	return fmt.Errorf("failed after %d retries: %w", maxRetries, lastErr)
}

func (p *Producer) Close() error {
	if p.writer != nil {
		return p.writer.Close()
	}
	return nil
}
