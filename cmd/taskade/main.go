package main

import (
	"context"
	"log"

	"github.com/joho/godotenv"

	"github.com/mathildetho/taskade/internal/config"
	"github.com/mathildetho/taskade/internal/server"
	"github.com/mathildetho/taskade/internal/store"
)

func main() {
	log.Println("Starting taskade...")

	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	st, err := store.Connect(context.Background(), cfg.Mongo.URI, cfg.Mongo.Database)
	if err != nil {
		log.Fatalf("Failed to connect to store: %v", err)
	}

	srv, err := server.New(cfg, st)
	if err != nil {
		log.Fatalf("Failed to create server: %v", err)
	}

	log.Fatal(srv.Start())
}
