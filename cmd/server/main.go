package main

import (
	"log"

	"tour_to_himachal/internal/config"
	"tour_to_himachal/internal/logger"
	"tour_to_himachal/internal/routes"
)

func main() {
	// Initialize structured logging to file
	logger.Setup()

	db, err := config.OpenDB()
	if err != nil {
		log.Fatalf("database init failed: %v", err)
	}

	if err := config.SeedAdmin(db); err != nil {
		log.Fatalf("admin seed failed: %v", err)
	}

	r := routes.SetupRouter(db)

	port := config.GetEnv("PORT", "8080")
	log.Println("🚀 Server running at :" + port)
	log.Fatal(r.Run("0.0.0.0:" + port))
}
