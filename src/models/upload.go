package models

import (
	"fmt"
	"strings"
	"time"
)

// UploadTransaction is one record of an upload payload. Decoding is strict:
// date, amount, and category are required, and a record that fails
// validation rejects the whole upload rather than being silently defaulted.
type UploadTransaction struct {
	Date        string   `json:"date"`
	Amount      *float64 `json:"amount"`
	Category    string   `json:"category"`
	Status      string   `json:"status"`
	UserProfile string   `json:"user_profile"`
}

var uploadDateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// ToTransaction validates the record and converts it into a Transaction
// owned by userID. Status defaults to "pending" and the profile label to ""
// when absent.
func (u UploadTransaction) ToTransaction(userID int64) (Transaction, error) {
	if strings.TrimSpace(u.Date) == "" {
		return Transaction{}, fmt.Errorf("date is required")
	}

	var date time.Time
	parsed := false
	for _, layout := range uploadDateLayouts {
		if t, err := time.Parse(layout, strings.TrimSpace(u.Date)); err == nil {
			date = t
			parsed = true
			break
		}
	}
	if !parsed {
		return Transaction{}, fmt.Errorf("invalid date %q", u.Date)
	}

	if u.Amount == nil {
		return Transaction{}, fmt.Errorf("amount is required")
	}

	category := strings.TrimSpace(u.Category)
	if category == "" {
		return Transaction{}, fmt.Errorf("category is required")
	}

	status := strings.TrimSpace(u.Status)
	if status == "" {
		status = "pending"
	}

	return Transaction{
		UserID:      userID,
		Date:        date,
		Amount:      *u.Amount,
		Category:    category,
		Status:      status,
		UserProfile: u.UserProfile,
	}, nil
}
