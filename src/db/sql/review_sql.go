package db

import (
	"context"

	"looprai-server/src/db"
	"looprai-server/src/models"

	"github.com/jackc/pgx/v5/pgxpool"
)

const reviewListCacheKey = "reviews:all"

func CreateReview(ctx context.Context, pool *pgxpool.Pool, review *models.Review) (*models.Review, error) {
	query := `
		INSERT INTO reviews (name, role, content, rating, avatar)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, name, role, content, rating, avatar, created_at
	`
	var r models.Review
	err := pool.QueryRow(ctx, query, review.Name, review.Role, review.Content, review.Rating, review.Avatar).
		Scan(&r.ID, &r.Name, &r.Role, &r.Content, &r.Rating, &r.Avatar, &r.CreatedAt)
	if err != nil {
		return nil, err
	}

	db.DelReviewCache(reviewListCacheKey)
	return &r, nil
}

// GetAllReviews returns every review, newest first. The list is cached
// until the next review is added.
func GetAllReviews(ctx context.Context, pool *pgxpool.Pool) ([]models.Review, error) {
	if cached, found := db.Cache.Get(reviewListCacheKey); found {
		if reviews, ok := cached.([]models.Review); ok {
			return reviews, nil
		}
	}

	query := `
		SELECT id, name, role, content, rating, avatar, created_at
		FROM reviews
		ORDER BY created_at DESC, id DESC
	`
	rows, err := pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var reviews []models.Review
	for rows.Next() {
		var r models.Review
		err := rows.Scan(&r.ID, &r.Name, &r.Role, &r.Content, &r.Rating, &r.Avatar, &r.CreatedAt)
		if err != nil {
			return nil, err
		}
		reviews = append(reviews, r)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	db.SetReviewCache(reviewListCacheKey, reviews)
	return reviews, nil
}
