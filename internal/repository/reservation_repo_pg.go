package repository

import (
	"context"
	"time"

	"github.com/Ira5334/backend/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type ReservationRepository interface {
	Create(ctx context.Context, reservation *domain.Reservation) error
	ListByEmail(ctx context.Context, email string) ([]domain.ReservationView, error)
	// CompleteEndedBy marks confirmed reservations whose check-out is on or
	// before day as completed and returns them.
	CompleteEndedBy(ctx context.Context, day domain.Date) ([]domain.Reservation, error)
}

type PGReservationRepository struct {
	db *pgxpool.Pool
}

func NewReservationRepository(db *pgxpool.Pool) ReservationRepository {
	return &PGReservationRepository{db: db}
}

const reservationColumns = `id, room_type, price, name, email, check_in_date, check_out_date, total_price, status, created_at`

func (r *PGReservationRepository) Create(ctx context.Context, res *domain.Reservation) error {
	if res.Status == "" {
		res.Status = domain.ReservationStatusConfirmed
	}
	err := r.db.QueryRow(ctx, `
		INSERT INTO reservations (room_type, price, name, email, check_in_date, check_out_date, total_price, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, created_at`,
		res.RoomType, res.Price, res.Name, res.Email, res.CheckIn.Time, res.CheckOut.Time, res.TotalPrice, res.Status).
		Scan(&res.ID, &res.CreatedAt)
	if err != nil {
		return storeErr("create reservation", err)
	}
	return nil
}

func (r *PGReservationRepository) ListByEmail(ctx context.Context, email string) ([]domain.ReservationView, error) {
	rows, err := r.db.Query(ctx, `
		SELECT res.id, res.room_type, res.price, res.name, res.email, res.check_in_date, res.check_out_date,
		       res.total_price, res.status, res.created_at, room.price
		FROM reservations res
		LEFT JOIN LATERAL (
			SELECT price FROM rooms WHERE rooms.room_type = res.room_type ORDER BY room_id LIMIT 1
		) room ON true
		WHERE res.email = $1
		ORDER BY res.check_in_date DESC, res.id DESC`, email)
	if err != nil {
		return nil, storeErr("list reservations", err)
	}
	defer rows.Close()

	views := make([]domain.ReservationView, 0)
	for rows.Next() {
		var (
			v       domain.ReservationView
			in, out time.Time
		)
		if err := rows.Scan(&v.ID, &v.RoomType, &v.Price, &v.Name, &v.Email, &in, &out,
			&v.TotalPrice, &v.Status, &v.CreatedAt, &v.RoomPrice); err != nil {
			return nil, storeErr("list reservations", err)
		}
		v.CheckIn, v.CheckOut = domain.DateOf(in), domain.DateOf(out)
		views = append(views, v)
	}
	if err := rows.Err(); err != nil {
		return nil, storeErr("list reservations", err)
	}
	return views, nil
}

func (r *PGReservationRepository) CompleteEndedBy(ctx context.Context, day domain.Date) ([]domain.Reservation, error) {
	rows, err := r.db.Query(ctx, `
		UPDATE reservations SET status = $1
		WHERE status = $2 AND check_out_date <= $3
		RETURNING `+reservationColumns,
		domain.ReservationStatusCompleted, domain.ReservationStatusConfirmed, day.Time)
	if err != nil {
		return nil, storeErr("complete reservations", err)
	}
	return scanReservations(rows, "complete reservations")
}

func scanReservations(rows pgx.Rows, op string) ([]domain.Reservation, error) {
	defer rows.Close()

	var out []domain.Reservation
	for rows.Next() {
		var (
			res               domain.Reservation
			checkIn, checkOut time.Time
		)
		if err := rows.Scan(&res.ID, &res.RoomType, &res.Price, &res.Name, &res.Email, &checkIn, &checkOut,
			&res.TotalPrice, &res.Status, &res.CreatedAt); err != nil {
			return nil, storeErr(op, err)
		}
		res.CheckIn, res.CheckOut = domain.DateOf(checkIn), domain.DateOf(checkOut)
		out = append(out, res)
	}
	if err := rows.Err(); err != nil {
		return nil, storeErr(op, err)
	}
	return out, nil
}

var _ ReservationRepository = (*PGReservationRepository)(nil)
