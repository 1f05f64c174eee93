package main

import (
	"log"
	"net/http"

	"looprai-server/src/ai"
	"looprai-server/src/api"
	"looprai-server/src/config"
	"looprai-server/src/db"
)

func main() {
	cfg := config.Load()

	// Connect to database
	pool, err := db.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("DB connection failed: %v", err)
	}
	defer pool.Close()

	// Apply schema migrations
	if err := db.RunMigrations(cfg.DatabaseURL); err != nil {
		log.Fatalf("DB migration failed: %v", err)
	}

	// In-memory cache for transaction and review lists
	db.InitCache()

	aiClient := ai.NewClient(cfg.GroqAPIKey, cfg.GroqModel)

	// Router
	router := api.NewRouter(pool, cfg, aiClient)

	log.Println("API server running on port", cfg.Port)
	if err := http.ListenAndServe(":"+cfg.Port, router); err != nil {
		log.Fatal(err)
	}
}
