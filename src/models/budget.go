package models

import "time"

type Budget struct {
	ID        int       `json:"id"`
	UserID    int       `json:"user_id"`
	Year      int       `json:"year"`
	Amount    float64   `json:"amount"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
