package main

import (
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"

	"cleanify-be/config"
	"cleanify-be/controllers"
	"cleanify-be/routes"
	"cleanify-be/simulator"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	store := config.GetStore()

	if os.Getenv("REDIS_ADDRESS") != "" {
		if err := config.ConnectRedis(); err != nil {
			log.Fatalf("Failed to connect to Redis: %v", err)
		}
	}

	uploadDir := os.Getenv("UPLOAD_DIR")
	if uploadDir == "" {
		uploadDir = "uploads"
	}

	h := controllers.New(store, uploadDir)

	r := gin.Default()
	r.Use(cors.New(cors.Config{
		AllowOriginFunc:  func(origin string) bool { return true },
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
	}))

	routes.AuthRoutes(r, h)
	routes.BinRoutes(r, h)
	routes.AlertRoutes(r, h)
	routes.ComplaintRoutes(r, h)
	routes.TaskRoutes(r, h)
	routes.StatsRoutes(r, h)

	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "Cleanify API is running", "version": "1.0.1"})
	})

	interval := 30 * time.Second
	if v, err := strconv.Atoi(os.Getenv("SIMULATOR_INTERVAL_SECONDS")); err == nil && v > 0 {
		interval = time.Duration(v) * time.Second
	}
	sched, err := simulator.Start(store, interval)
	if err != nil {
		log.Fatalf("Failed to start simulator: %v", err)
	}
	defer sched.Stop()

	port := os.Getenv("PORT")
	if port == "" {
		port = "8000"
	}
	if err := r.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
