package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/gin-gonic/gin"

	"turbine-backtest/internal/api/handlers"
	"turbine-backtest/internal/api/middleware"
	"turbine-backtest/internal/runs"
	"turbine-backtest/internal/ws"
)

func main() {
	port := os.Getenv("API_PORT")
	if port == "" {
		port = "8080"
	}

	dataDir := os.Getenv("DATA_DIR")
	if dataDir == "" {
		dataDir = "./data"
	}
	turbineDir := os.Getenv("TURBINE_DIR")
	if turbineDir == "" {
		wd, err := os.Getwd()
		if err == nil {
			turbineDir = filepath.Join(wd, "examples", "turbines")
		} else {
			turbineDir = "./examples/turbines"
		}
	}
	log.Printf("Data directory: %s", dataDir)
	log.Printf("Turbine directory: %s", turbineDir)

	runTTL := time.Hour
	if v := os.Getenv("RUN_TTL"); v != "" {
		if parsed, err := time.ParseDuration(v); err == nil {
			runTTL = parsed
		}
	}
	store := runs.NewStore(runTTL)

	hub := ws.NewHub()
	wsHandler := ws.NewHandler(hub)

	if os.Getenv("API_ENV") == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()

	router.Use(middleware.Logger())
	router.Use(middleware.CORS())
	router.Use(middleware.ErrorHandler())

	simulateHandler := handlers.NewSimulateHandler(dataDir, turbineDir, store, hub)
	policyHandler := handlers.NewPolicyHandler()
	turbineHandler := handlers.NewTurbineHandler(turbineDir)

	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok", "ws_clients": hub.ClientCount()})
	})

	api := router.Group("/api/v1")
	{
		api.POST("/simulate", simulateHandler.RunSimulate)
		api.GET("/simulate/:id/ledger", simulateHandler.GetLedger)
		api.POST("/simulate/compare", simulateHandler.Compare)

		api.GET("/policies", policyHandler.ListPolicies)
		api.GET("/turbines", turbineHandler.ListTurbines)
	}

	router.GET("/ws", func(c *gin.Context) {
		wsHandler.ServeHTTP(c.Writer, c.Request)
	})

	addr := fmt.Sprintf(":%s", port)
	log.Printf("Starting API server on %s", addr)
	if err := router.Run(addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
