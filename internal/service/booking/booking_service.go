package booking

import (
	"context"
	"strings"
	"time"

	"github.com/Ira5334/backend/internal/domain"
	"github.com/Ira5334/backend/internal/kafka"
	"github.com/Ira5334/backend/internal/repository"
	"go.uber.org/zap"
)

type BookingUseCase interface {
	CheckAvailability(ctx context.Context, checkIn, checkOut string) ([]domain.Room, error)
	CreateReservation(ctx context.Context, input CreateReservationInput) (*domain.Reservation, error)
	History(ctx context.Context, email string) ([]domain.ReservationView, error)
	CompletePastReservations(ctx context.Context) ([]domain.Reservation, error)
}

type Producer interface {
	PublishWithRetry(ctx context.Context, topic, key string, payload interface{}, maxRetries int) error
}

type CreateReservationInput struct {
	RoomType   string
	Price      float64
	Name       string
	Email      string
	CheckIn    string
	CheckOut   string
	TotalPrice float64
}

type BookingService struct {
	reservations       repository.ReservationRepository
	rooms              repository.RoomRepository
	producer           Producer
	reservationTopic   string
	notificationsTopic string
	publishRetries     int
	now                func() time.Time
	loc                *time.Location
	log                *zap.Logger
}

type BookingServiceOption func(*BookingService)

func WithNotificationsTopic(topic string) BookingServiceOption {
	return func(s *BookingService) {
		s.notificationsTopic = topic
	}
}

func WithPublishRetries(n int) BookingServiceOption {
	return func(s *BookingService) {
		s.publishRetries = n
	}
}

// WithLocation sets the time zone in which "today" is evaluated.
func WithLocation(loc *time.Location) BookingServiceOption {
	return func(s *BookingService) {
		s.loc = loc
	}
}

func WithClock(now func() time.Time) BookingServiceOption {
	return func(s *BookingService) {
		s.now = now
	}
}

func WithLogger(log *zap.Logger) BookingServiceOption {
	return func(s *BookingService) {
		s.log = log
	}
}

func NewBookingService(
	reservations repository.ReservationRepository,
	rooms repository.RoomRepository,
	producer Producer,
	reservationTopic string,
	opts ...BookingServiceOption,
) *BookingService {
	s := &BookingService{
		reservations:     reservations,
		rooms:            rooms,
		producer:         producer,
		reservationTopic: reservationTopic,
		publishRetries:   1,
		now:              time.Now,
		loc:              time.UTC,
		log:              zap.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *BookingService) CheckAvailability(ctx context.Context, checkIn, checkOut string) ([]domain.Room, error) {
	stay, err := domain.ParseStay(checkIn, checkOut)
	if err != nil {
		return nil, err
	}
	return s.rooms.ListAvailable(ctx, stay)
}

// CreateReservation validates and stores a booking. It does not check
// availability, so overlapping bookings of one room type are accepted.
func (s *BookingService) CreateReservation(ctx context.Context, input CreateReservationInput) (*domain.Reservation, error) {
	input.RoomType = strings.TrimSpace(input.RoomType)
	input.Name = strings.TrimSpace(input.Name)
	input.Email = normalizeEmail(input.Email)

	if missing := missingFields(input); len(missing) > 0 {
		return nil, domain.NewValidationError("missing required fields: %s", strings.Join(missing, ", "))
	}
	stay, err := domain.ParseStay(input.CheckIn, input.CheckOut)
	if err != nil {
		return nil, err
	}
	if stay.CheckIn.Before(s.today()) {
		return nil, domain.NewValidationError("check-in date cannot be in the past")
	}
	if input.Price < 0 || input.TotalPrice < 0 {
		return nil, domain.NewValidationError("price must not be negative")
	}

	total := input.TotalPrice
	if total == 0 {
		total = input.Price * float64(stay.Nights())
	}

	reservation := &domain.Reservation{
		RoomType:   input.RoomType,
		Price:      input.Price,
		Name:       input.Name,
		Email:      input.Email,
		CheckIn:    stay.CheckIn,
		CheckOut:   stay.CheckOut,
		TotalPrice: total,
		Status:     domain.ReservationStatusConfirmed,
	}
	if err := s.reservations.Create(ctx, reservation); err != nil {
		return nil, err
	}

	if err := s.publish(ctx, kafka.EventReservationCreated, reservation); err != nil {
		s.log.Warn("failed to publish reservation event",
			zap.Int64("reservation_id", reservation.ID), zap.Error(err))
	}
	return reservation, nil
}

func (s *BookingService) History(ctx context.Context, email string) ([]domain.ReservationView, error) {
	email = normalizeEmail(email)
	if email == "" {
		return nil, domain.NewValidationError("email is required")
	}
	return s.reservations.ListByEmail(ctx, email)
}

func (s *BookingService) CompletePastReservations(ctx context.Context) ([]domain.Reservation, error) {
	completed, err := s.reservations.CompleteEndedBy(ctx, s.today())
	if err != nil {
		return nil, err
	}
	for i := range completed {
		if err := s.publish(ctx, kafka.EventReservationCompleted, &completed[i]); err != nil {
			s.log.Warn("failed to publish reservation event",
				zap.Int64("reservation_id", completed[i].ID), zap.Error(err))
		}
	}
	return completed, nil
}

func (s *BookingService) today() domain.Date {
	return domain.DateOf(s.now().In(s.loc))
}

func (s *BookingService) publish(ctx context.Context, eventType string, r *domain.Reservation) error {
	if s.producer == nil || s.reservationTopic == "" {
		return nil
	}
	event := kafka.NewReservationEvent(eventType, r, s.now())
	if err := s.producer.PublishWithRetry(ctx, s.reservationTopic, event.Key(), event, s.publishRetries); err != nil {
		return err
	}
	if s.notificationsTopic != "" {
		return s.producer.PublishWithRetry(ctx, s.notificationsTopic, event.Key(), event, s.publishRetries)
	}
	return nil
}

func missingFields(in CreateReservationInput) []string {
	var missing []string
	for _, f := range []struct{ name, value string }{
		{"room_type", in.RoomType},
		{"name", in.Name},
		{"email", in.Email},
		{"check_in", in.CheckIn},
		{"check_out", in.CheckOut},
	} {
		if f.value == "" {
			missing = append(missing, f.name)
		}
	}
	return missing
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

var _ BookingUseCase = (*BookingService)(nil)
