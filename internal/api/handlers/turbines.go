package handlers

import (
	"log"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"

	"turbine-backtest/internal/api/models"
	"turbine-backtest/internal/config"
)

// TurbineHandler serves the turbine preset catalog
type TurbineHandler struct {
	turbineDir string
}

// NewTurbineHandler creates a new turbine handler
func NewTurbineHandler(turbineDir string) *TurbineHandler {
	return &TurbineHandler{turbineDir: turbineDir}
}

// ListTurbines handles GET /api/v1/turbines
func (h *TurbineHandler) ListTurbines(c *gin.Context) {
	turbines := []models.TurbineInfo{}

	entries, err := os.ReadDir(h.turbineDir)
	if err != nil {
		log.Printf("TurbineHandler: failed to read %s: %v", h.turbineDir, err)
		c.JSON(http.StatusOK, gin.H{"turbines": turbines})
		return
	}

	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".yaml") {
			continue
		}
		id := strings.TrimSuffix(e.Name(), ".yaml")
		tc, err := config.LoadTurbineFile(filepath.Join(h.turbineDir, e.Name()))
		if err != nil {
			log.Printf("TurbineHandler: skipping %s: %v", e.Name(), err)
			continue
		}
		name := tc.Name
		if name == "" {
			name = id
		}
		turbines = append(turbines, models.TurbineInfo{
			ID:              id,
			Name:            name,
			File:            e.Name(),
			InitPressureBar: tc.InitPressureBar,
			MinPressureBar:  tc.MinPressureBar,
			DeclineRateBar:  tc.DeclineRateBar,
		})
	}

	c.JSON(http.StatusOK, gin.H{"turbines": turbines})
}
