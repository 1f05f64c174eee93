package api

import (
	"net/http"

	"looprai-server/src/ai"
	"looprai-server/src/config"
	"looprai-server/src/handlers"
	"looprai-server/src/middleware"

	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRouter(pool *pgxpool.Pool, cfg config.Config, aiClient *ai.Client) *chi.Mux {
	r := chi.NewRouter()
	r.Use(middleware.CORSMiddleware(cfg.AllowedOrigins))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("ok"))
	})

	r.Route("/api", func(r chi.Router) {
		r.Post("/auth/register", handlers.Register(pool))
		r.Post("/auth/login", handlers.Login(pool))

		// Reviews are public
		r.Get("/reviews", handlers.GetReviews(pool))
		r.Post("/reviews", handlers.AddReview(pool))

		// Protected routes
		r.With(middleware.JWTAuthMiddleware).Group(func(r chi.Router) {
			// Profile
			r.Get("/auth/profile", handlers.GetProfile(pool))
			r.Put("/auth/profile", handlers.UpdateProfile(pool))

			// Transactions
			r.Post("/transactions", handlers.UploadTransactions(pool))
			r.Get("/transactions", handlers.GetTransactions(pool))
			r.Get("/transactions/all", handlers.GetAllTransactions(pool))
			r.Post("/transactions/export", handlers.ExportTransactionsCSV(pool, cfg.ExportDir))

			// Chart feed
			r.Get("/transactions/summary", handlers.GetSummary(pool))
			r.Get("/transactions/summary/export", handlers.ExportSummaryXLSX(pool))

			// AI chat
			r.Post("/ai/ask", handlers.AskAI(pool, aiClient))
		})
	})

	return r
}
