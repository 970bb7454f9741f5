package email

import (
	"context"
	"fmt"

	"github.com/Ira5334/backend/internal/kafka"
	"go.uber.org/zap"
)

type Message struct {
	To      string
	Subject string
	Body    string
}

// Sender writes guest notifications to the log. It stands in for a mail
// gateway.
type Sender struct {
	log *zap.Logger
}

func NewSender(log *zap.Logger) *Sender {
	return &Sender{log: log}
}

func (s *Sender) Send(ctx context.Context, event kafka.ReservationEvent) error {
	msg, ok := Compose(event)
	if !ok {
		s.log.Debug("no email for event", zap.String("type", event.Type))
		return nil
	}
	s.log.Info("send email",
		zap.String("to", msg.To),
		zap.String("subject", msg.Subject),
		zap.Int64("reservation_id", event.ReservationID),
	)
	return nil
}

func Compose(event kafka.ReservationEvent) (Message, bool) {
	if event.Email == "" {
		return Message{}, false
	}
	switch event.Type {
	case kafka.EventReservationCreated:
		return Message{
			To:      event.Email,
			Subject: fmt.Sprintf("Reservation #%d confirmed", event.ReservationID),
			Body: fmt.Sprintf("Dear %s,\n\nyour %s room is booked from %s to %s. Total: %.2f.\n",
				event.Name, event.RoomType, event.CheckIn, event.CheckOut, event.TotalPrice),
		}, true
	case kafka.EventReservationCompleted:
		return Message{
			To:      event.Email,
			Subject: "Thank you for staying with us",
			Body: fmt.Sprintf("Dear %s,\n\nwe hope you enjoyed your stay. You can leave a review in your profile.\n",
				event.Name),
		}, true
	default:
		return Message{}, false
	}
}
