package report

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"time"

	"looprai-server/src/models"
)

// ErrInvalidExportRequest marks an export request whose field list is
// missing, empty, or names an attribute transactions do not have. It is
// surfaced before any store access happens.
var ErrInvalidExportRequest = errors.New("invalid export request")

var exportableFields = func() map[string]struct{} {
	m := make(map[string]struct{}, len(models.TransactionFields))
	for _, f := range models.TransactionFields {
		m[f] = struct{}{}
	}
	return m
}()

// ValidateFields checks an export field list: it must be non-empty and
// every name must be a transaction attribute.
func ValidateFields(fields []string) error {
	if len(fields) == 0 {
		return fmt.Errorf("%w: fields must be a non-empty array", ErrInvalidExportRequest)
	}
	for _, f := range fields {
		if _, ok := exportableFields[f]; !ok {
			return fmt.Errorf("%w: unknown field %q", ErrInvalidExportRequest, f)
		}
	}
	return nil
}

// fieldValue renders one transaction attribute as CSV text: timestamps as
// ISO-8601, identifiers as plain strings, numbers in their shortest exact
// form.
func fieldValue(t models.Transaction, field string) string {
	switch field {
	case "id":
		return t.ID
	case "user_id":
		return strconv.FormatInt(t.UserID, 10)
	case "date":
		return t.Date.Format(time.RFC3339)
	case "amount":
		return strconv.FormatFloat(t.Amount, 'f', -1, 64)
	case "category":
		return t.Category
	case "status":
		return t.Status
	case "user_profile":
		return t.UserProfile
	case "created_at":
		return t.CreatedAt.Format(time.RFC3339)
	case "updated_at":
		return t.UpdatedAt.Format(time.RFC3339)
	default:
		return ""
	}
}

// WriteCSV writes a header row of the requested field names followed by one
// row per transaction, restricted to exactly those fields in the order
// given. Quoting follows standard CSV rules via encoding/csv.
func WriteCSV(w io.Writer, transactions []models.Transaction, fields []string) error {
	if err := ValidateFields(fields); err != nil {
		return err
	}

	cw := csv.NewWriter(w)
	if err := cw.Write(fields); err != nil {
		return err
	}

	row := make([]string, len(fields))
	for _, t := range transactions {
		for i, f := range fields {
			row[i] = fieldValue(t, f)
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}
