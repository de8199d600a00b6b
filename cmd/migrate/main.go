// Command migrate creates the indexes the collections rely on, notably the
// unique index on user email. Run it once against a fresh database.
package main

import (
	"context"
	"log"

	"github.com/joho/godotenv"

	"github.com/mathildetho/taskade/internal/config"
	"github.com/mathildetho/taskade/internal/store"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	ctx := context.Background()

	st, err := store.Connect(ctx, cfg.Mongo.URI, cfg.Mongo.Database)
	if err != nil {
		log.Fatalf("Failed to connect to store: %v", err)
	}
	defer st.Close(ctx)

	if err := st.EnsureIndexes(ctx); err != nil {
		log.Fatalf("Failed to create indexes: %v", err)
	}

	log.Println("Indexes created successfully")
}
