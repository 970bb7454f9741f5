package domain

import "time"

type ReservationStatus string

const (
	ReservationStatusConfirmed ReservationStatus = "confirmed"
	ReservationStatusCompleted ReservationStatus = "completed"
)

type Reservation struct {
	ID         int64             `json:"id"`
	RoomType   string            `json:"room_type"`
	Price      float64           `json:"price"`
	Name       string            `json:"name"`
	Email      string            `json:"email"`
	CheckIn    Date              `json:"check_in_date"`
	CheckOut   Date              `json:"check_out_date"`
	TotalPrice float64           `json:"total_price"`
	Status     ReservationStatus `json:"status"`
	CreatedAt  time.Time         `json:"created_at"`
}

// ReservationView is a reservation with the catalog price of its room type.
// RoomPrice is nil when no room of that type exists any more.
type ReservationView struct {
	Reservation
	RoomPrice *float64 `json:"room_price"`
}
