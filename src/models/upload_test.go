package models

import (
	"testing"
	"time"
)

func float64Ptr(v float64) *float64 { return &v }

func TestUploadToTransaction_DateLayouts(t *testing.T) {
	tests := []struct {
		name string
		date string
		want time.Time
	}{
		{
			name: "rfc3339",
			date: "2024-01-15T14:30:00Z",
			want: time.Date(2024, 1, 15, 14, 30, 0, 0, time.UTC),
		},
		{
			name: "datetime without zone",
			date: "2024-01-15T14:30:00",
			want: time.Date(2024, 1, 15, 14, 30, 0, 0, time.UTC),
		},
		{
			name: "date only",
			date: "2024-01-15",
			want: time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
		},
		{
			name: "surrounding whitespace",
			date: "  2024-01-15  ",
			want: time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u := UploadTransaction{Date: tt.date, Amount: float64Ptr(10), Category: "Revenue"}
			tx, err := u.ToTransaction(1)
			if err != nil {
				t.Fatalf("ToTransaction() error = %v", err)
			}
			if !tx.Date.Equal(tt.want) {
				t.Errorf("Date = %v, want %v", tx.Date, tt.want)
			}
		})
	}
}

func TestUploadToTransaction_Defaults(t *testing.T) {
	u := UploadTransaction{Date: "2024-01-15", Amount: float64Ptr(-40.5), Category: " Expense "}
	tx, err := u.ToTransaction(7)
	if err != nil {
		t.Fatalf("ToTransaction() error = %v", err)
	}

	if tx.UserID != 7 {
		t.Errorf("UserID = %d, want 7", tx.UserID)
	}
	if tx.Amount != -40.5 {
		t.Errorf("Amount = %v, want -40.5", tx.Amount)
	}
	if tx.Category != "Expense" {
		t.Errorf("Category = %q, want trimmed %q", tx.Category, "Expense")
	}
	if tx.Status != "pending" {
		t.Errorf("Status = %q, want default %q", tx.Status, "pending")
	}
	if tx.UserProfile != "" {
		t.Errorf("UserProfile = %q, want empty", tx.UserProfile)
	}
}

func TestUploadToTransaction_KeepsExplicitStatus(t *testing.T) {
	u := UploadTransaction{Date: "2024-01-15", Amount: float64Ptr(1), Category: "Revenue", Status: "paid"}
	tx, err := u.ToTransaction(1)
	if err != nil {
		t.Fatalf("ToTransaction() error = %v", err)
	}
	if tx.Status != "paid" {
		t.Errorf("Status = %q, want %q", tx.Status, "paid")
	}
}

func TestUploadToTransaction_Invalid(t *testing.T) {
	tests := []struct {
		name string
		u    UploadTransaction
	}{
		{name: "missing date", u: UploadTransaction{Amount: float64Ptr(1), Category: "x"}},
		{name: "blank date", u: UploadTransaction{Date: "   ", Amount: float64Ptr(1), Category: "x"}},
		{name: "unparseable date", u: UploadTransaction{Date: "15/01/2024", Amount: float64Ptr(1), Category: "x"}},
		{name: "missing amount", u: UploadTransaction{Date: "2024-01-15", Category: "x"}},
		{name: "missing category", u: UploadTransaction{Date: "2024-01-15", Amount: float64Ptr(1)}},
		{name: "blank category", u: UploadTransaction{Date: "2024-01-15", Amount: float64Ptr(1), Category: "  "}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := tt.u.ToTransaction(1); err == nil {
				t.Error("ToTransaction() error = nil, want validation error")
			}
		})
	}
}
