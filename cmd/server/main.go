package main

import (
	"fmt"
	"log"

	"field-sales/internal/config"
	"field-sales/internal/database"
	"field-sales/internal/server"
)

func main() {
	cfg := config.Load()

	if err := database.Init(cfg.DatabaseURL); err != nil {
		log.Fatalf("database init: %v", err)
	}

	// seed failures are advisory: missing accounts come back on next boot
	if err := database.SeedUsers(); err != nil {
		log.Printf("user seed error: %v", err)
	}

	r := server.NewRouter(cfg)

	addr := fmt.Sprintf(":%s", cfg.ServerPort)
	log.Printf("starting server on %s", addr)
	if err := r.Run(addr); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
