package db

import (
	"context"
	"fmt"

	"looprai-server/src/db"
	"looprai-server/src/models"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

func transactionCacheKey(userID int64) string {
	return fmt.Sprintf("transactions:%d", userID)
}

// InsertTransactions stores a batch of transactions for one user. Record
// ids are assigned here, never taken from the caller. The user's cached
// transaction list is invalidated on success.
func InsertTransactions(ctx context.Context, pool *pgxpool.Pool, userID int64, transactions []models.Transaction) error {
	if len(transactions) == 0 {
		return nil
	}

	rows := make([][]interface{}, 0, len(transactions))
	for _, t := range transactions {
		rows = append(rows, []interface{}{
			uuid.NewString(),
			userID,
			t.Date,
			t.Amount,
			t.Category,
			t.Status,
			t.UserProfile,
		})
	}

	_, err := pool.CopyFrom(
		ctx,
		pgx.Identifier{"transactions"},
		[]string{"id", "user_id", "date", "amount", "category", "status", "user_profile"},
		pgx.CopyFromRows(rows),
	)
	if err != nil {
		return fmt.Errorf("failed to insert transactions: %w", err)
	}

	db.DelTransactionCache(transactionCacheKey(userID))
	return nil
}

func scanTransactions(rows pgx.Rows) ([]models.Transaction, error) {
	var transactions []models.Transaction
	for rows.Next() {
		var t models.Transaction
		err := rows.Scan(&t.ID, &t.UserID, &t.Date, &t.Amount, &t.Category, &t.Status, &t.UserProfile, &t.CreatedAt, &t.UpdatedAt)
		if err != nil {
			return nil, err
		}
		transactions = append(transactions, t)
	}
	return transactions, rows.Err()
}

// GetTransactionsByUser returns every transaction owned by userID, newest
// date first. Results are cached per user until the next upload.
func GetTransactionsByUser(ctx context.Context, pool *pgxpool.Pool, userID int64) ([]models.Transaction, error) {
	cacheKey := transactionCacheKey(userID)
	if cached, found := db.Cache.Get(cacheKey); found {
		if transactions, ok := cached.([]models.Transaction); ok {
			return transactions, nil
		}
	}

	query := `
		SELECT id, user_id, date, amount, category, status, user_profile, created_at, updated_at
		FROM transactions
		WHERE user_id = $1
		ORDER BY date DESC, id
	`
	rows, err := pool.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	transactions, err := scanTransactions(rows)
	if err != nil {
		return nil, err
	}

	db.SetTransactionCache(cacheKey, transactions)
	return transactions, nil
}

// GetTransactionsByIDs returns the caller's transactions matching the given
// id set. Ids belonging to other users are silently absent from the result.
func GetTransactionsByIDs(ctx context.Context, pool *pgxpool.Pool, userID int64, ids []string) ([]models.Transaction, error) {
	query := `
		SELECT id, user_id, date, amount, category, status, user_profile, created_at, updated_at
		FROM transactions
		WHERE user_id = $1 AND id = ANY($2)
		ORDER BY date DESC, id
	`
	rows, err := pool.Query(ctx, query, userID, ids)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanTransactions(rows)
}

// GetRecentTransactions returns the user's most recent transactions by
// date, up to limit rows.
func GetRecentTransactions(ctx context.Context, pool *pgxpool.Pool, userID int64, limit int) ([]models.Transaction, error) {
	query := `
		SELECT id, user_id, date, amount, category, status, user_profile, created_at, updated_at
		FROM transactions
		WHERE user_id = $1
		ORDER BY date DESC, id
		LIMIT $2
	`
	rows, err := pool.Query(ctx, query, userID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanTransactions(rows)
}
