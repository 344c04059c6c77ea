package models

import "time"

type Income struct {
	ID          int            `json:"id"`
	UserID      int            `json:"user_id"`
	Date        time.Time      `json:"date"`
	Category    IncomeCategory `json:"category"`
	Amount      float64        `json:"amount"`
	Description *string        `json:"description"`
	CreatedAt   time.Time      `json:"created_at"`
}
