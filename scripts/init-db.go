package main

import (
	"fmt"
	"log"

	"restaurant_api/internal/config"
	"restaurant_api/internal/database"
	"restaurant_api/internal/migrations"
)

func main() {
	fmt.Println("Initializing database...")

	// Load configuration
	cfg := config.Load()

	// Initialize database
	db, err := database.Initialize(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	if err := migrations.RunMigrations(db); err != nil {
		log.Fatal("Failed to run migrations:", err)
	}

	fmt.Println("Database initialization completed successfully!")
	fmt.Println("Seeded accounts: admin/admin123, manager/manager123, crew/crew1234")
}
