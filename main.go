package main

import (
	"log"
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/shopmetrics/ecommerce-insights/config"
	"github.com/shopmetrics/ecommerce-insights/middleware"
	"github.com/shopmetrics/ecommerce-insights/routes"
)

func init() {
	_ = godotenv.Load()
}

func main() {
	config.InitDB()
	defer config.CloseDB()

	rateLimited := config.ConnectRedis()

	if os.Getenv("APP_ENV") == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://localhost:3001"},
		AllowMethods:     []string{"GET", "HEAD", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Cache-Control"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	api := r.Group("/api/v1")
	if rateLimited {
		api.Use(middleware.RateLimiter(60, time.Minute))
	}

	routes.SetupInsightsRoutes(api)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8081"
	}

	log.Printf("[main] insights API listening on :%s", port)
	if err := r.Run(":" + port); err != nil {
		log.Fatalf("❌ Server failed: %v", err)
	}
}
