package domain

import "time"

type Customer struct {
	ID           int64     `json:"id"`
	FirstName    string    `json:"first_name"`
	LastName     string    `json:"last_name"`
	Email        string    `json:"email"`
	PhoneNumber  string    `json:"phone_number"`
	PasswordHash []byte    `json:"-"`
	Review       *string   `json:"review"`
	CreatedAt    time.Time `json:"created_at"`
}

type ProfileUpdate struct {
	FirstName   string
	LastName    string
	PhoneNumber string
}
