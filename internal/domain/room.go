package domain

type Room struct {
	ID          int64   `json:"room_id"`
	Number      string  `json:"room_number"`
	Type        string  `json:"room_type"`
	Price       float64 `json:"price"`
	Description *string `json:"description,omitempty"`
}
