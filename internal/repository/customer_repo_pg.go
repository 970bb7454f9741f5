package repository

import (
	"context"

	"github.com/Ira5334/backend/internal/domain"
	"github.com/jackc/pgx/v5/pgxpool"
)

type CustomerRepository interface {
	Create(ctx context.Context, customer *domain.Customer) error
	GetByEmail(ctx context.Context, email string) (*domain.Customer, error)
	UpdateProfile(ctx context.Context, email string, update domain.ProfileUpdate) error
	SetReview(ctx context.Context, email, review string) error
}

type PGCustomerRepository struct {
	db *pgxpool.Pool
}

func NewCustomerRepository(db *pgxpool.Pool) CustomerRepository {
	return &PGCustomerRepository{db: db}
}

func (r *PGCustomerRepository) Create(ctx context.Context, c *domain.Customer) error {
	err := r.db.QueryRow(ctx, `
		INSERT INTO customers (first_name, last_name, email, phone_number, password_hash)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at`,
		c.FirstName, c.LastName, c.Email, c.PhoneNumber, c.PasswordHash).
		Scan(&c.ID, &c.CreatedAt)
	if err != nil {
		return storeErr("create customer", err)
	}
	return nil
}

func (r *PGCustomerRepository) GetByEmail(ctx context.Context, email string) (*domain.Customer, error) {
	row := r.db.QueryRow(ctx, `
		SELECT id, first_name, last_name, email, phone_number, password_hash, review, created_at
		FROM customers WHERE email = $1`, email)
	var c domain.Customer
	if err := row.Scan(&c.ID, &c.FirstName, &c.LastName, &c.Email, &c.PhoneNumber, &c.PasswordHash, &c.Review, &c.CreatedAt); err != nil {
		return nil, storeErr("get customer", err)
	}
	return &c, nil
}

func (r *PGCustomerRepository) UpdateProfile(ctx context.Context, email string, u domain.ProfileUpdate) error {
	cmd, err := r.db.Exec(ctx, `
		UPDATE customers SET first_name = $1, last_name = $2, phone_number = $3
		WHERE email = $4`, u.FirstName, u.LastName, u.PhoneNumber, email)
	if err != nil {
		return storeErr("update customer", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *PGCustomerRepository) SetReview(ctx context.Context, email, review string) error {
	cmd, err := r.db.Exec(ctx, `UPDATE customers SET review = $1 WHERE email = $2`, review, email)
	if err != nil {
		return storeErr("save review", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

var _ CustomerRepository = (*PGCustomerRepository)(nil)
