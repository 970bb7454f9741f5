package kafka

import (
	"context"
	"encoding/json"
	"time"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

type Consumer struct {
	reader *kafka.Reader
	log    *zap.Logger
}

func NewConsumer(brokers []string, groupID, topic string, log *zap.Logger) *Consumer {
	return &Consumer{
		reader: kafka.NewReader(kafka.ReaderConfig{
			Brokers:           brokers,
			GroupID:           groupID,
			Topic:             topic,
			HeartbeatInterval: 3 * time.Second,
			SessionTimeout:    30 * time.Second,
		}),
		log: log,
	}
}

func (c *Consumer) Close() error {
	if c == nil || c.reader == nil {
		return nil
	}
	return c.reader.Close()
}

// ConsumeReservationEvents decodes each message and hands it to handler.
// Undecodable messages are logged and skipped.
func (c *Consumer) ConsumeReservationEvents(ctx context.Context, handler func(context.Context, ReservationEvent) error) error {
	for {
		msg, err := c.reader.ReadMessage(ctx)
		if err != nil {
			return err
		}

		event, ok := DecodeReservationEvent(msg.Value, c.log)
		if !ok {
			continue
		}
		if err := handler(ctx, event); err != nil {
			return err
		}
	}
}

func DecodeReservationEvent(data []byte, log *zap.Logger) (ReservationEvent, bool) {
	var event ReservationEvent
	if err := json.Unmarshal(data, &event); err != nil {
		log.Warn("skip undecodable reservation event", zap.Error(err))
		return ReservationEvent{}, false
	}
	return event, true
}
