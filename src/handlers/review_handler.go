package handlers

import (
	"encoding/json"
	"log"
	"net/http"
	"strings"

	db "looprai-server/src/db/sql"
	"looprai-server/src/models"
	"looprai-server/src/util"

	"github.com/jackc/pgx/v5/pgxpool"
)

func GetReviews(pool *pgxpool.Pool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		reviews, err := db.GetAllReviews(r.Context(), pool)
		if err != nil {
			log.Printf("ERROR: Failed to get reviews: %v", err)
			http.Error(w, "failed to fetch reviews", http.StatusInternalServerError)
			return
		}
		if reviews == nil {
			reviews = []models.Review{}
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(reviews)
	}
}

func AddReview(pool *pgxpool.Pool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Name    string `json:"name"`
			Role    string `json:"role"`
			Content string `json:"content"`
			Rating  int    `json:"rating"`
			Avatar  string `json:"avatar"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Printf("ERROR: Failed to decode review request body: %v", err)
			http.Error(w, "invalid request", http.StatusBadRequest)
			return
		}

		req.Name = strings.TrimSpace(req.Name)
		req.Role = strings.TrimSpace(req.Role)
		req.Content = strings.TrimSpace(req.Content)

		if req.Name == "" || req.Role == "" || req.Content == "" {
			http.Error(w, "name, role, and content are required", http.StatusBadRequest)
			return
		}
		if !util.ValidateRating(req.Rating) {
			http.Error(w, "rating must be between 1 and 5", http.StatusBadRequest)
			return
		}

		review := &models.Review{
			Name:    req.Name,
			Role:    req.Role,
			Content: req.Content,
			Rating:  req.Rating,
			Avatar:  req.Avatar,
		}
		created, err := db.CreateReview(r.Context(), pool, review)
		if err != nil {
			log.Printf("ERROR: Failed to create review from %s: %v", req.Name, err)
			http.Error(w, "failed to add review", http.StatusInternalServerError)
			return
		}

		log.Printf("INFO: Created review id %d from %s", created.ID, created.Name)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(created)
	}
}
