package handlers

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"strings"

	"looprai-server/src/ai"
	db "looprai-server/src/db/sql"
	"looprai-server/src/models"

	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/sync/errgroup"
)

const recentTransactionLimit = 12

const aiSystemPrompt = `You are a financial data analysis assistant.

All amounts are in Indian Rupees (₹/INR).
When the user asks for a chart, respond ONLY with a JSON object like:
{"type":"bar","labels":["A","B"],"data":[10,20],"title":"Sample Chart"}
If the user asks for a pie chart, use {"type":"pie", ...}.
If the user does not ask for a chart, answer normally as text.`

// AskAI answers a financial question about the caller's data: it summarizes
// the user's most recent transactions into a prompt and forwards the
// question to the chat-completions API.
func AskAI(pool *pgxpool.Pool, client *ai.Client) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := r.Context().Value("user_id").(int64)

		var req struct {
			Question string `json:"question"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Printf("ERROR: Failed to decode AI request body for user %d: %v", userID, err)
			http.Error(w, "invalid request", http.StatusBadRequest)
			return
		}
		if strings.TrimSpace(req.Question) == "" {
			http.Error(w, "question is required", http.StatusBadRequest)
			return
		}

		var (
			user         *models.User
			transactions []models.Transaction
		)
		g, gctx := errgroup.WithContext(r.Context())
		g.Go(func() error {
			var err error
			user, err = db.GetUserByID(gctx, pool, userID)
			return err
		})
		g.Go(func() error {
			var err error
			transactions, err = db.GetRecentTransactions(gctx, pool, userID, recentTransactionLimit)
			return err
		})
		if err := g.Wait(); err != nil {
			log.Printf("ERROR: Failed to load data for AI question - user %d: %v", userID, err)
			http.Error(w, "failed to load user data", http.StatusInternalServerError)
			return
		}

		var summary strings.Builder
		fmt.Fprintf(&summary, "User: %s\n", user.Email)
		summary.WriteString("All transaction amounts are in Indian Rupees (₹/INR).\n")
		fmt.Fprintf(&summary, "Showing up to %d most recent transactions.\n", recentTransactionLimit)
		summary.WriteString("Transaction History:\n")
		for _, t := range transactions {
			fmt.Fprintf(&summary, "- %s ₹%g on %s\n", t.Category, t.Amount, t.Date.Format("2006-01-02"))
		}

		prompt := fmt.Sprintf("%s\nUser question: %s", summary.String(), req.Question)

		answer, err := client.Ask(r.Context(), aiSystemPrompt, prompt)
		if err != nil {
			log.Printf("ERROR: AI request failed for user %d: %v", userID, err)
			http.Error(w, "AI request failed", http.StatusBadGateway)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{"answer": answer})
	}
}
