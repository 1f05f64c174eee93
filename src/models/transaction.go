package models

import "time"

type Transaction struct {
	ID          string    `json:"id"`
	UserID      int64     `json:"user_id"`
	Date        time.Time `json:"date"`
	Amount      float64   `json:"amount"`
	Category    string    `json:"category"`
	Status      string    `json:"status"`
	UserProfile string    `json:"user_profile"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// TransactionFields lists the exportable attributes of a transaction, in
// canonical column order. Export requests may pick any subset in any order.
var TransactionFields = []string{
	"id",
	"user_id",
	"date",
	"amount",
	"category",
	"status",
	"user_profile",
	"created_at",
	"updated_at",
}
