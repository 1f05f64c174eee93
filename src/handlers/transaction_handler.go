package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"path/filepath"

	db "looprai-server/src/db/sql"
	"looprai-server/src/models"
	"looprai-server/src/report"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// UploadTransactions ingests a JSON array of transactions for the
// authenticated user. Every record is validated before anything is written;
// a single bad record rejects the whole batch with its index and reason.
func UploadTransactions(pool *pgxpool.Pool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := r.Context().Value("user_id").(int64)

		var uploads []models.UploadTransaction
		if err := json.NewDecoder(r.Body).Decode(&uploads); err != nil {
			log.Printf("ERROR: Failed to decode upload body for user %d: %v", userID, err)
			http.Error(w, "invalid format, expected array", http.StatusBadRequest)
			return
		}

		transactions := make([]models.Transaction, 0, len(uploads))
		for i, u := range uploads {
			t, err := u.ToTransaction(userID)
			if err != nil {
				log.Printf("ERROR: Invalid transaction at index %d for user %d: %v", i, userID, err)
				http.Error(w, fmt.Sprintf("record %d: %v", i, err), http.StatusBadRequest)
				return
			}
			transactions = append(transactions, t)
		}

		if err := db.InsertTransactions(r.Context(), pool, userID, transactions); err != nil {
			log.Printf("ERROR: Failed to insert %d transactions for user %d: %v", len(transactions), userID, err)
			http.Error(w, "failed to upload transactions", http.StatusInternalServerError)
			return
		}

		log.Printf("INFO: Uploaded %d transactions for user %d", len(transactions), userID)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(map[string]string{"message": "transactions uploaded successfully"})
	}
}

// GetTransactions lists the user's transactions narrowed by the optional
// query filters. A malformed bound value rejects the request rather than
// being silently dropped from the conjunction.
func GetTransactions(pool *pgxpool.Pool) http.HandlerFunc {
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
			log.Printf("ERROR: Failed to get transactions for user %d: %v", userID, err)
			http.Error(w, "failed to get transactions", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(report.Apply(transactions, filter))
	}
}

// GetAllTransactions lists every transaction owned by the user, newest first.
func GetAllTransactions(pool *pgxpool.Pool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := r.Context().Value("user_id").(int64)

		transactions, err := db.GetTransactionsByUser(r.Context(), pool, userID)
		if err != nil {
			log.Printf("ERROR: Failed to get transactions for user %d: %v", userID, err)
			http.Error(w, "failed to get transactions", http.StatusInternalServerError)
			return
		}
		if transactions == nil {
			transactions = []models.Transaction{}
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(transactions)
	}
}

// ExportTransactionsCSV streams a field-projected CSV of the user's
// transactions, optionally restricted to an id set. The file is written to
// a uniquely named temp path and removed once the response is sent.
func ExportTransactionsCSV(pool *pgxpool.Pool, exportDir string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := r.Context().Value("user_id").(int64)

		var req struct {
			Fields         []string `json:"fields"`
			TransactionIDs []string `json:"transaction_ids"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Printf("ERROR: Failed to decode export request body for user %d: %v", userID, err)
			http.Error(w, "invalid request", http.StatusBadRequest)
			return
		}

		// Field list is validated before the store is touched.
		if err := report.ValidateFields(req.Fields); err != nil {
			log.Printf("ERROR: Invalid export field list from user %d: %v", userID, err)
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		var transactions []models.Transaction
		var err error
		if len(req.TransactionIDs) > 0 {
			transactions, err = db.GetTransactionsByIDs(r.Context(), pool, userID, req.TransactionIDs)
		} else {
			transactions, err = db.GetTransactionsByUser(r.Context(), pool, userID)
		}
		if err != nil {
			log.Printf("ERROR: Failed to get transactions for export - user %d: %v", userID, err)
			http.Error(w, "failed to export transactions", http.StatusInternalServerError)
			return
		}

		filePath := filepath.Join(exportDir, uuid.NewString()+".csv")
		f, err := os.Create(filePath)
		if err != nil {
			log.Printf("ERROR: Failed to create export file %s: %v", filePath, err)
			http.Error(w, "failed to export transactions", http.StatusInternalServerError)
			return
		}
		defer os.Remove(filePath)

		if err := report.WriteCSV(f, transactions, req.Fields); err != nil {
			f.Close()
			log.Printf("ERROR: Failed to write export file %s: %v", filePath, err)
			http.Error(w, "failed to export transactions", http.StatusInternalServerError)
			return
		}
		if err := f.Close(); err != nil {
			log.Printf("ERROR: Failed to close export file %s: %v", filePath, err)
			http.Error(w, "failed to export transactions", http.StatusInternalServerError)
			return
		}

		log.Printf("INFO: Exported %d transactions (%d fields) for user %d", len(transactions), len(req.Fields), userID)
		w.Header().Set("Content-Type", "text/csv")
		w.Header().Set("Content-Disposition", `attachment; filename="transactions.csv"`)
		http.ServeFile(w, r, filePath)
	}
}
