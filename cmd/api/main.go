package main

import (
	"fmt"
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"bess-pcr/internal/api/handlers"
	"bess-pcr/internal/api/middleware"
	"bess-pcr/internal/observability/metrics"
	"bess-pcr/internal/store"
)

func main() {
	// Get configuration from environment
	port := os.Getenv("API_PORT")
	if port == "" {
		port = "8080"
	}

	if os.Getenv("API_ENV") == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	metrics.Init()

	// Run persistence is optional: without STORE_PATH the /simulations
	// endpoints report the store as disabled and /simulate skips saving.
	var st *store.Store
	if path := os.Getenv("STORE_PATH"); path != "" {
		var err error
		st, err = store.New(path)
		if err != nil {
			log.Fatalf("Failed to open run store %s: %v", path, err)
		}
		log.Printf("Run store: %s", path)
	}

	presetDir := os.Getenv("PRESET_DIR")

	router := gin.Default()

	// Apply middleware
	router.Use(middleware.CORS())
	router.Use(middleware.Logger())
	router.Use(middleware.ErrorHandler())

	// Initialize handlers
	simHandler := handlers.NewSimulationHandler(st, presetDir)
	runsHandler := handlers.NewRunsHandler(st)
	presetsHandler := handlers.NewPresetsHandler(presetDir)

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// API routes
	api := router.Group("/api/v1")
	{
		api.POST("/simulate", simHandler.RunSimulation)
		api.POST("/simulate/compare", simHandler.CompareSimulations)

		api.GET("/simulations", runsHandler.ListRuns)
		api.GET("/simulations/:id", runsHandler.GetRun)

		api.GET("/presets", presetsHandler.ListPresets)
	}

	// Start server
	addr := fmt.Sprintf(":%s", port)
	log.Printf("Starting API server on %s", addr)
	if err := router.Run(addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
