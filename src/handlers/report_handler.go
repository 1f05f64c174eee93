package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"

	db "looprai-server/src/db/sql"
	"looprai-server/src/report"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/xuri/excelize/v2"
)

// GetSummary returns the chart feed for the user's (optionally filtered)
// transactions: per-month revenue/expense/balance buckets plus the 7x24
// day-by-hour spending grid.
func GetSummary(pool *pgxpool.Pool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := r.Context().Value("user_id").(int64)

		filter, err := report.ParseFilter(r.URL.Query())
		if err != nil {
			if errors.Is(err, report.ErrInvalidFilter) {
				log.Printf("ERROR: Invalid filter from user %d: %v", userID, err)
				http.Error(w, err.Error(), http.StatusBadRequest)
				return
			}
			http.Error(w, "invalid request", http.StatusBadRequest)
			return
		}

		transactions, err := db.GetTransactionsByUser(r.Context(), pool, userID)
		if err != nil {
			log.Printf("ERROR: Failed to get transactions for summary - user %d: %v", userID, err)
			http.Error(w, "failed to get summary", http.StatusInternalServerError)
			return
		}

		filtered := report.Apply(transactions, filter)

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]interface{}{
			"monthly": report.MonthlySummary(filtered),
			"heatmap": report.Heatmap(filtered),
		})
	}
}

// ExportSummaryXLSX downloads the monthly chart feed as an Excel workbook.
func ExportSummaryXLSX(pool *pgxpool.Pool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := r.Context().Value("user_id").(int64)

		filter, err := report.ParseFilter(r.URL.Query())
		if err != nil {
			if errors.Is(err, report.ErrInvalidFilter) {
				log.Printf("ERROR: Invalid filter from user %d: %v", userID, err)
				http.Error(w, err.Error(), http.StatusBadRequest)
				return
			}
			http.Error(w, "invalid request", http.StatusBadRequest)
			return
		}

		transactions, err := db.GetTransactionsByUser(r.Context(), pool, userID)
		if err != nil {
			log.Printf("ERROR: Failed to get transactions for XLSX export - user %d: %v", userID, err)
			http.Error(w, "failed to export summary", http.StatusInternalServerError)
			return
		}

		buckets := report.MonthlySummary(report.Apply(transactions, filter))

		f := excelize.NewFile()
		sheetName := "FinancialData"
		index, err := f.NewSheet(sheetName)
		if err != nil {
			log.Printf("ERROR: Failed to create sheet for user %d: %v", userID, err)
			http.Error(w, "failed to export summary", http.StatusInternalServerError)
			return
		}
		f.SetActiveSheet(index)
		f.DeleteSheet("Sheet1")

		headers := []string{"Month", "Revenue", "Expense", "Balance"}
		for i, h := range headers {
			cell := fmt.Sprintf("%c1", 'A'+i)
			f.SetCellValue(sheetName, cell, h)
		}

		for idx, b := range buckets {
			row := idx + 2
			f.SetCellValue(sheetName, fmt.Sprintf("A%d", row), b.Bucket)
			f.SetCellValue(sheetName, fmt.Sprintf("B%d", row), b.Revenue)
			f.SetCellValue(sheetName, fmt.Sprintf("C%d", row), b.Expense)
			f.SetCellValue(sheetName, fmt.Sprintf("D%d", row), b.Balance)
		}

		f.SetColWidth(sheetName, "A", "A", 12)
		f.SetColWidth(sheetName, "B", "D", 14)

		log.Printf("INFO: Exported %d summary buckets for user %d", len(buckets), userID)
		w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		w.Header().Set("Content-Disposition", `attachment; filename="financial_data.xlsx"`)
		if err := f.Write(w); err != nil {
			log.Printf("ERROR: Failed to write XLSX for user %d: %v", userID, err)
		}
	}
}
