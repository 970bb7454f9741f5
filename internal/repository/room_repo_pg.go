package repository

import (
	"context"

	"github.com/Ira5334/backend/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type RoomRepository interface {
	List(ctx context.Context) ([]domain.Room, error)
	// ListAvailable returns rooms whose type has no reservation overlapping
	// the half-open stay [CheckIn, CheckOut).
	ListAvailable(ctx context.Context, stay domain.Stay) ([]domain.Room, error)
}

type PGRoomRepository struct {
	db *pgxpool.Pool
}

func NewRoomRepository(db *pgxpool.Pool) RoomRepository {
	return &PGRoomRepository{db: db}
}

const roomColumns = `room_id, room_number, room_type, price, description`

func (r *PGRoomRepository) List(ctx context.Context) ([]domain.Room, error) {
	rows, err := r.db.Query(ctx, `SELECT `+roomColumns+` FROM rooms ORDER BY room_id`)
	if err != nil {
		return nil, storeErr("list rooms", err)
	}
	return scanRooms(rows, "list rooms")
}

func (r *PGRoomRepository) ListAvailable(ctx context.Context, stay domain.Stay) ([]domain.Room, error) {
	rows, err := r.db.Query(ctx, `
		SELECT `+roomColumns+`
		FROM rooms
		WHERE room_type NOT IN (
			SELECT room_type FROM reservations
			WHERE NOT (check_out_date <= $1 OR check_in_date >= $2)
		)
		ORDER BY room_id`, stay.CheckIn.Time, stay.CheckOut.Time)
	if err != nil {
		return nil, storeErr("list available rooms", err)
	}
	return scanRooms(rows, "list available rooms")
}

func scanRooms(rows pgx.Rows, op string) ([]domain.Room, error) {
	defer rows.Close()

	rooms := make([]domain.Room, 0)
	for rows.Next() {
		var room domain.Room
		if err := rows.Scan(&room.ID, &room.Number, &room.Type, &room.Price, &room.Description); err != nil {
			return nil, storeErr(op, err)
		}
		rooms = append(rooms, room)
	}
	if err := rows.Err(); err != nil {
		return nil, storeErr(op, err)
	}
	return rooms, nil
}

var _ RoomRepository = (*PGRoomRepository)(nil)
