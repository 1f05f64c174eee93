package db

import (
	"context"
	"errors"
	"fmt"

	"looprai-server/src/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

func scanUser(row pgx.Row, user *models.User) error {
	return row.Scan(
		&user.ID,
		&user.Username,
		&user.Email,
		&user.PasswordHash,
		&user.ProfilePicture,
		&user.FinancialGoal,
		&user.CreatedAt,
	)
}

func GetUserByID(ctx context.Context, pool *pgxpool.Pool, id int64) (*models.User, error) {
	var user models.User
	query := `
		SELECT id, username, email, password_hash, profile_picture, financial_goal, created_at
		FROM users
		WHERE id = $1
	`
	err := scanUser(pool.QueryRow(ctx, query, id), &user)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, errors.New("user not found")
		}
		return nil, fmt.Errorf("query error: %w", err)
	}
	return &user, nil
}

func GetUserByEmail(ctx context.Context, pool *pgxpool.Pool, email string) (*models.User, error) {
	var user models.User
	query := `
		SELECT id, username, email, password_hash, profile_picture, financial_goal, created_at
		FROM users
		WHERE email = $1
	`
	err := scanUser(pool.QueryRow(ctx, query, email), &user)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, errors.New("user not found")
		}
		return nil, fmt.Errorf("query error: %w", err)
	}
	return &user, nil
}

func CreateUser(ctx context.Context, pool *pgxpool.Pool, req models.RegisterRequest, hashedPassword string) (int64, error) {
	query := `
		INSERT INTO users (username, email, password_hash)
		VALUES ($1, $2, $3)
		RETURNING id
	`

	var userID int64
	err := pool.QueryRow(ctx, query, req.Username, req.Email, hashedPassword).Scan(&userID)
	if err != nil {
		return 0, fmt.Errorf("failed to create user: %w", err)
	}

	return userID, nil
}

// UpdateUserProfile updates only the supplied fields; nil pointers leave
// the stored value untouched.
func UpdateUserProfile(ctx context.Context, pool *pgxpool.Pool, userID int64, email, passwordHash, profilePicture *string, financialGoal *float64) (*models.User, error) {
	query := `
		UPDATE users
		SET email           = COALESCE($1, email),
		    password_hash   = COALESCE($2, password_hash),
		    profile_picture = COALESCE($3, profile_picture),
		    financial_goal  = COALESCE($4, financial_goal)
		WHERE id = $5
		RETURNING id, username, email, password_hash, profile_picture, financial_goal, created_at
	`

	var user models.User
	err := scanUser(pool.QueryRow(ctx, query, email, passwordHash, profilePicture, financialGoal, userID), &user)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, errors.New("user not found")
		}
		return nil, fmt.Errorf("failed to update user: %w", err)
	}
	return &user, nil
}
