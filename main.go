package main

import (
	"log"
	"os"

	"restaurant-ops-api/config"
	"restaurant-ops-api/routes"

	"github.com/gin-gonic/gin"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("❌ Failed to load configuration: ", err)
	}

	// Set Gin mode
	if os.Getenv("GIN_MODE") == "" {
		gin.SetMode(gin.DebugMode)
	}

	// Initialize database
	config.InitDB(cfg)

	r := routes.NewRouter(cfg.CORSOrigin)

	log.Printf("🚀 Server running on http://localhost:%s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal("❌ Failed to start server: ", err)
	}
}
