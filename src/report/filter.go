// Package report holds the pure aggregation and export logic behind the
// dashboard: conjunctive transaction filtering, monthly revenue/expense
// bucketing, the spending heatmap grid, and field-projected CSV rows. None
// of it performs I/O; callers load a user's transactions first and hand the
// slice in.
package report

import (
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"looprai-server/src/models"
)

// ErrInvalidFilter marks a filter request carrying a malformed numeric or
// date bound. Bad bounds reject the whole request instead of silently
// dropping the predicate.
var ErrInvalidFilter = errors.New("invalid filter")

// Filter is a set of optional conjunctive predicates. A nil/empty field
// means that predicate is absent from the conjunction, not that it matches
// everything.
type Filter struct {
	Category    string
	Status      string
	UserProfile string
	MinAmount   *float64
	MaxAmount   *float64
	StartDate   *time.Time
	EndDate     *time.Time
}

var filterDateLayouts = []string{
	"2006-01-02",
	time.RFC3339,
}

func parseFilterDate(s string) (time.Time, error) {
	for _, layout := range filterDateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized date %q", s)
}

// ParseFilter builds a Filter from request query parameters. Malformed
// amount or date bounds fail with an ErrInvalidFilter-wrapped error.
func ParseFilter(q url.Values) (Filter, error) {
	var f Filter

	f.Category = strings.TrimSpace(q.Get("category"))
	f.Status = strings.TrimSpace(q.Get("status"))
	f.UserProfile = q.Get("user_profile")

	if v := strings.TrimSpace(q.Get("min_amount")); v != "" {
		n, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return Filter{}, fmt.Errorf("%w: min_amount %q", ErrInvalidFilter, v)
		}
		f.MinAmount = &n
	}
	if v := strings.TrimSpace(q.Get("max_amount")); v != "" {
		n, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return Filter{}, fmt.Errorf("%w: max_amount %q", ErrInvalidFilter, v)
		}
		f.MaxAmount = &n
	}
	if v := strings.TrimSpace(q.Get("start_date")); v != "" {
		t, err := parseFilterDate(v)
		if err != nil {
			return Filter{}, fmt.Errorf("%w: start_date %q", ErrInvalidFilter, v)
		}
		f.StartDate = &t
	}
	if v := strings.TrimSpace(q.Get("end_date")); v != "" {
		t, err := parseFilterDate(v)
		if err != nil {
			return Filter{}, fmt.Errorf("%w: end_date %q", ErrInvalidFilter, v)
		}
		f.EndDate = &t
	}

	return f, nil
}

func (f Filter) matches(t models.Transaction) bool {
	if f.Category != "" && t.Category != f.Category {
		return false
	}
	if f.Status != "" && t.Status != f.Status {
		return false
	}
	if f.UserProfile != "" && !strings.Contains(t.UserProfile, f.UserProfile) {
		return false
	}
	if f.MinAmount != nil && t.Amount < *f.MinAmount {
		return false
	}
	if f.MaxAmount != nil && t.Amount > *f.MaxAmount {
		return false
	}
	if f.StartDate != nil && t.Date.Before(*f.StartDate) {
		return false
	}
	if f.EndDate != nil && t.Date.After(*f.EndDate) {
		return false
	}
	return true
}

// Apply returns the transactions satisfying every supplied predicate, in
// their original order. An empty filter returns the input unchanged.
func Apply(transactions []models.Transaction, f Filter) []models.Transaction {
	result := make([]models.Transaction, 0, len(transactions))
	for _, t := range transactions {
		if f.matches(t) {
			result = append(result, t)
		}
	}
	return result
}
