package report

import (
	"math"
	"sort"
	"strings"

	"looprai-server/src/models"
)

// MonthBucket is one point of the chart feed: totals for a single calendar
// month. Balance is revenue minus expense for that month alone, not a
// running total.
type MonthBucket struct {
	Bucket  string  `json:"bucket"`
	Revenue float64 `json:"revenue"`
	Expense float64 `json:"expense"`
	Balance float64 `json:"balance"`
}

// MonthlySummary buckets transactions by calendar month. Category decides
// which side a transaction lands on: case-insensitive "revenue" adds the
// amount as-is, "expense" adds its absolute value, anything else leaves the
// sums untouched. Records without a usable date are skipped so one dirty
// record cannot break the chart. Buckets come back sorted ascending by
// "YYYY-MM" key, which is chronological order.
func MonthlySummary(transactions []models.Transaction) []MonthBucket {
	buckets := make(map[string]*MonthBucket)

	for _, t := range transactions {
		if t.Date.IsZero() {
			continue
		}

		key := t.Date.Format("2006-01")
		b, ok := buckets[key]
		if !ok {
			b = &MonthBucket{Bucket: key}
			buckets[key] = b
		}

		switch strings.ToLower(t.Category) {
		case "revenue":
			b.Revenue += t.Amount
		case "expense":
			b.Expense += math.Abs(t.Amount)
		}
	}

	result := make([]MonthBucket, 0, len(buckets))
	for _, b := range buckets {
		b.Balance = b.Revenue - b.Expense
		result = append(result, *b)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].Bucket < result[j].Bucket
	})
	return result
}

// Heatmap accumulates absolute transaction amounts into a day-of-week by
// hour-of-day grid (0=Sunday..6=Saturday, hours 0-23, local time). Records
// without a usable date are skipped.
func Heatmap(transactions []models.Transaction) [7][24]float64 {
	var grid [7][24]float64
	for _, t := range transactions {
		if t.Date.IsZero() {
			continue
		}
		day := int(t.Date.Weekday())
		hour := t.Date.Hour()
		if day < 0 || day > 6 || hour < 0 || hour > 23 {
			continue
		}
		grid[day][hour] += math.Abs(t.Amount)
	}
	return grid
}
