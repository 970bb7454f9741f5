package email

import (
	"context"
	"testing"

	"github.com/Ira5334/backend/internal/kafka"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestCompose(t *testing.T) {
	created := kafka.ReservationEvent{
		Type:          kafka.EventReservationCreated,
		ReservationID: 3,
		RoomType:      "Suite",
		Name:          "Taras",
		Email:         "taras@example.com",
		CheckIn:       "2024-01-10",
		CheckOut:      "2024-01-15",
		TotalPrice:    750,
	}

	msg, ok := Compose(created)
	assert.True(t, ok)
	assert.Equal(t, "taras@example.com", msg.To)
	assert.Equal(t, "Reservation #3 confirmed", msg.Subject)
	assert.Contains(t, msg.Body, "from 2024-01-10 to 2024-01-15")
	assert.Contains(t, msg.Body, "750.00")

	_, ok = Compose(kafka.ReservationEvent{Type: "unknown", Email: "x@y.z"})
	assert.False(t, ok)

	_, ok = Compose(kafka.ReservationEvent{Type: kafka.EventReservationCreated})
	assert.False(t, ok)
}

func TestSender_Send(t *testing.T) {
	s := NewSender(zap.NewNop())
	assert.NoError(t, s.Send(context.Background(), kafka.ReservationEvent{Type: kafka.EventReservationCompleted, Email: "a@b.c"}))
	assert.NoError(t, s.Send(context.Background(), kafka.ReservationEvent{Type: "other"}))
}
