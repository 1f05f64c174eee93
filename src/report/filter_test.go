package report

import (
	"errors"
	"net/url"
	"testing"
	"time"

	"looprai-server/src/models"
)

func mustDate(t *testing.T, value string) time.Time {
	t.Helper()
	parsed, err := time.Parse("2006-01-02", value)
	if err != nil {
		t.Fatalf("parse date %q: %v", value, err)
	}
	return parsed
}

func tx(t *testing.T, date string, amount float64, category string) models.Transaction {
	t.Helper()
	return models.Transaction{
		Date:     mustDate(t, date),
		Amount:   amount,
		Category: category,
		Status:   "pending",
	}
}

func TestParseFilter_InvalidBounds(t *testing.T) {
	tests := []struct {
		name  string
		query url.Values
	}{
		{
			name:  "non-numeric min amount",
			query: url.Values{"min_amount": {"abc"}},
		},
		{
			name:  "trailing garbage max amount",
			query: url.Values{"max_amount": {"12x"}},
		},
		{
			name:  "unparseable start date",
			query: url.Values{"start_date": {"not-a-date"}},
		},
		{
			name:  "impossible end date",
			query: url.Values{"end_date": {"2024-13-99"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseFilter(tt.query)
			if !errors.Is(err, ErrInvalidFilter) {
				t.Errorf("ParseFilter(%v) error = %v, want ErrInvalidFilter", tt.query, err)
			}
		})
	}
}

func TestParseFilter_ValidBounds(t *testing.T) {
	q := url.Values{
		"category":   {"expense"},
		"status":     {"paid"},
		"min_amount": {"10.5"},
		"max_amount": {"200"},
		"start_date": {"2024-01-01"},
		"end_date":   {"2024-06-30"},
	}

	f, err := ParseFilter(q)
	if err != nil {
		t.Fatalf("ParseFilter() error = %v, want nil", err)
	}
	if f.Category != "expense" || f.Status != "paid" {
		t.Errorf("ParseFilter() category/status = %q/%q", f.Category, f.Status)
	}
	if f.MinAmount == nil || *f.MinAmount != 10.5 {
		t.Errorf("ParseFilter() min amount = %v, want 10.5", f.MinAmount)
	}
	if f.MaxAmount == nil || *f.MaxAmount != 200 {
		t.Errorf("ParseFilter() max amount = %v, want 200", f.MaxAmount)
	}
	if f.StartDate == nil || !f.StartDate.Equal(mustDate(t, "2024-01-01")) {
		t.Errorf("ParseFilter() start date = %v", f.StartDate)
	}
	if f.EndDate == nil || !f.EndDate.Equal(mustDate(t, "2024-06-30")) {
		t.Errorf("ParseFilter() end date = %v", f.EndDate)
	}
}

func TestParseFilter_AbsentBoundsStayAbsent(t *testing.T) {
	f, err := ParseFilter(url.Values{})
	if err != nil {
		t.Fatalf("ParseFilter() error = %v, want nil", err)
	}
	if f.MinAmount != nil || f.MaxAmount != nil || f.StartDate != nil || f.EndDate != nil {
		t.Errorf("ParseFilter() bounds should be nil when omitted: %+v", f)
	}
}

func TestApply_NoPredicatesPreservesOrder(t *testing.T) {
	input := []models.Transaction{
		tx(t, "2024-03-01", 300, "revenue"),
		tx(t, "2024-01-01", 100, "expense"),
		tx(t, "2024-02-01", 200, "groceries"),
	}

	got := Apply(input, Filter{})
	if len(got) != len(input) {
		t.Fatalf("Apply() returned %d transactions, want %d", len(got), len(input))
	}
	for i := range input {
		if got[i].Amount != input[i].Amount {
			t.Errorf("Apply() order changed at %d: got amount %v, want %v", i, got[i].Amount, input[i].Amount)
		}
	}
}

func TestApply_Conjunction(t *testing.T) {
	paid := tx(t, "2024-01-10", 150, "expense")
	paid.Status = "paid"
	pending := tx(t, "2024-01-11", 150, "expense")
	tooSmall := tx(t, "2024-01-12", 50, "expense")
	tooSmall.Status = "paid"
	wrongCategory := tx(t, "2024-01-13", 150, "revenue")
	wrongCategory.Status = "paid"

	min := 100.0
	f := Filter{Category: "expense", Status: "paid", MinAmount: &min}

	got := Apply([]models.Transaction{paid, pending, tooSmall, wrongCategory}, f)
	if len(got) != 1 {
		t.Fatalf("Apply() returned %d transactions, want 1", len(got))
	}
	if got[0].Status != "paid" || got[0].Category != "expense" || got[0].Amount != 150 {
		t.Errorf("Apply() kept wrong transaction: %+v", got[0])
	}
}

func TestApply_UserProfileSubstring(t *testing.T) {
	alice := tx(t, "2024-01-01", 10, "expense")
	alice.UserProfile = "Alice Smith"
	bob := tx(t, "2024-01-02", 20, "expense")
	bob.UserProfile = "Bob Jones"
	lower := tx(t, "2024-01-03", 30, "expense")
	lower.UserProfile = "alice smith"

	got := Apply([]models.Transaction{alice, bob, lower}, Filter{UserProfile: "Alice"})
	if len(got) != 1 {
		t.Fatalf("Apply() returned %d transactions, want 1 (match is case-sensitive)", len(got))
	}
	if got[0].UserProfile != "Alice Smith" {
		t.Errorf("Apply() kept %q, want %q", got[0].UserProfile, "Alice Smith")
	}
}

func TestApply_AmountBoundsInclusive(t *testing.T) {
	min, max := 100.0, 200.0
	f := Filter{MinAmount: &min, MaxAmount: &max}

	input := []models.Transaction{
		tx(t, "2024-01-01", 99.99, "expense"),
		tx(t, "2024-01-02", 100, "expense"),
		tx(t, "2024-01-03", 200, "expense"),
		tx(t, "2024-01-04", 200.01, "expense"),
	}

	got := Apply(input, f)
	if len(got) != 2 {
		t.Fatalf("Apply() returned %d transactions, want 2", len(got))
	}
	if got[0].Amount != 100 || got[1].Amount != 200 {
		t.Errorf("Apply() bounds not inclusive: %v, %v", got[0].Amount, got[1].Amount)
	}
}

func TestApply_DateBoundsInclusive(t *testing.T) {
	start := mustDate(t, "2024-02-01")
	end := mustDate(t, "2024-02-29")
	f := Filter{StartDate: &start, EndDate: &end}

	input := []models.Transaction{
		tx(t, "2024-01-31", 1, "expense"),
		tx(t, "2024-02-01", 2, "expense"),
		tx(t, "2024-02-29", 3, "expense"),
		tx(t, "2024-03-01", 4, "expense"),
	}

	got := Apply(input, f)
	if len(got) != 2 {
		t.Fatalf("Apply() returned %d transactions, want 2", len(got))
	}
	if got[0].Amount != 2 || got[1].Amount != 3 {
		t.Errorf("Apply() date bounds wrong: kept %v and %v", got[0].Amount, got[1].Amount)
	}
}

func TestApply_InvertedBoundsReturnEmpty(t *testing.T) {
	min, max := 100.0, 50.0
	f := Filter{MinAmount: &min, MaxAmount: &max}

	got := Apply([]models.Transaction{tx(t, "2024-01-01", 75, "expense")}, f)
	if len(got) != 0 {
		t.Errorf("Apply() with inverted bounds returned %d transactions, want 0", len(got))
	}
}

func TestApply_EmptyCollection(t *testing.T) {
	got := Apply(nil, Filter{Category: "expense"})
	if len(got) != 0 {
		t.Errorf("Apply(nil) returned %d transactions, want 0", len(got))
	}
}
