package api

import (
	"context"

	"github.com/Ira5334/backend/internal/domain"
	"github.com/Ira5334/backend/internal/service/booking"
	"github.com/Ira5334/backend/internal/service/customers"
	"github.com/stretchr/testify/mock"
)

// MockRoomUseCase is a mock implementation of rooms.RoomUseCase
type MockRoomUseCase struct {
	mock.Mock
}

func (m *MockRoomUseCase) List(ctx context.Context) ([]domain.Room, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Room), args.Error(1)
}

// MockBookingUseCase is a mock implementation of booking.BookingUseCase
type MockBookingUseCase struct {
	mock.Mock
}

func (m *MockBookingUseCase) CheckAvailability(ctx context.Context, checkIn, checkOut string) ([]domain.Room, error) {
	args := m.Called(ctx, checkIn, checkOut)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Room), args.Error(1)
}

func (m *MockBookingUseCase) CreateReservation(ctx context.Context, input booking.CreateReservationInput) (*domain.Reservation, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Reservation), args.Error(1)
}

func (m *MockBookingUseCase) History(ctx context.Context, email string) ([]domain.ReservationView, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ReservationView), args.Error(1)
}

func (m *MockBookingUseCase) CompletePastReservations(ctx context.Context) ([]domain.Reservation, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Reservation), args.Error(1)
}

// MockCustomerUseCase is a mock implementation of customers.CustomerUseCase
type MockCustomerUseCase struct {
	mock.Mock
}

func (m *MockCustomerUseCase) Register(ctx context.Context, input customers.RegisterInput) (*domain.Customer, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Customer), args.Error(1)
}

func (m *MockCustomerUseCase) Authenticate(ctx context.Context, email, password string) (*domain.Customer, error) {
	args := m.Called(ctx, email, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Customer), args.Error(1)
}

func (m *MockCustomerUseCase) GetProfile(ctx context.Context, email string) (*domain.Customer, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Customer), args.Error(1)
}

func (m *MockCustomerUseCase) UpdateProfile(ctx context.Context, email string, update domain.ProfileUpdate) error {
	args := m.Called(ctx, email, update)
	return args.Error(0)
}

func (m *MockCustomerUseCase) RecordReview(ctx context.Context, email, review string) error {
	args := m.Called(ctx, email, review)
	return args.Error(0)
}
