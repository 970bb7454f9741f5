package customers

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/Ira5334/backend/internal/domain"
	"github.com/Ira5334/backend/internal/repository"
	"github.com/Ira5334/backend/pkg/crypto"
)

const minPasswordLength = 8

type CustomerUseCase interface {
	Register(ctx context.Context, input RegisterInput) (*domain.Customer, error)
	Authenticate(ctx context.Context, email, password string) (*domain.Customer, error)
	GetProfile(ctx context.Context, email string) (*domain.Customer, error)
	UpdateProfile(ctx context.Context, email string, update domain.ProfileUpdate) error
	RecordReview(ctx context.Context, email, review string) error
}

type RegisterInput struct {
	FirstName   string
	LastName    string
	Email       string
	PhoneNumber string
	Password    string
}

type CustomerService struct {
	repo repository.CustomerRepository
	// dummyHash is compared against when the email is unknown so both
	// failure paths cost one bcrypt comparison.
	dummyHash []byte
}

func NewCustomerService(repo repository.CustomerRepository) *CustomerService {
	dummy, _ := crypto.HashPassword("not-a-real-password")
	return &CustomerService{repo: repo, dummyHash: dummy}
}

func (s *CustomerService) Register(ctx context.Context, in RegisterInput) (*domain.Customer, error) {
	email := normalizeEmail(in.Email)
	if email == "" || in.Password == "" {
		return nil, domain.NewValidationError("email and password are required")
	}
	if !strings.Contains(email, "@") || len(email) > 255 {
		return nil, domain.NewValidationError("invalid email %q", email)
	}
	if len(in.Password) < minPasswordLength {
		return nil, domain.NewValidationError("password must be at least %d characters", minPasswordLength)
	}

	hash, err := crypto.HashPassword(in.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}
	customer := &domain.Customer{
		FirstName:    strings.TrimSpace(in.FirstName),
		LastName:     strings.TrimSpace(in.LastName),
		Email:        email,
		PhoneNumber:  strings.TrimSpace(in.PhoneNumber),
		PasswordHash: hash,
	}
	if err := s.repo.Create(ctx, customer); err != nil {
		return nil, err
	}
	return customer, nil
}

// Authenticate fails with domain.ErrUnauthorized both for an unknown email
// and for a wrong password.
func (s *CustomerService) Authenticate(ctx context.Context, email, password string) (*domain.Customer, error) {
	email = normalizeEmail(email)
	if email == "" || password == "" {
		return nil, domain.NewValidationError("email and password are required")
	}

	customer, err := s.repo.GetByEmail(ctx, email)
	if errors.Is(err, domain.ErrNotFound) {
		_ = crypto.CheckPassword(s.dummyHash, password)
		return nil, domain.ErrUnauthorized
	}
	if err != nil {
		return nil, err
	}
	if err := crypto.CheckPassword(customer.PasswordHash, password); err != nil {
		return nil, domain.ErrUnauthorized
	}
	return customer, nil
}

func (s *CustomerService) GetProfile(ctx context.Context, email string) (*domain.Customer, error) {
	email = normalizeEmail(email)
	if email == "" {
		return nil, domain.NewValidationError("email is required")
	}
	return s.repo.GetByEmail(ctx, email)
}

func (s *CustomerService) UpdateProfile(ctx context.Context, email string, u domain.ProfileUpdate) error {
	email = normalizeEmail(email)
	if email == "" {
		return domain.NewValidationError("email is required")
	}
	u.FirstName = strings.TrimSpace(u.FirstName)
	u.LastName = strings.TrimSpace(u.LastName)
	u.PhoneNumber = strings.TrimSpace(u.PhoneNumber)
	return s.repo.UpdateProfile(ctx, email, u)
}

func (s *CustomerService) RecordReview(ctx context.Context, email, review string) error {
	email = normalizeEmail(email)
	review = strings.TrimSpace(review)
	if email == "" || review == "" {
		return domain.NewValidationError("email and review are required")
	}
	return s.repo.SetReview(ctx, email, review)
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

var _ CustomerUseCase = (*CustomerService)(nil)
