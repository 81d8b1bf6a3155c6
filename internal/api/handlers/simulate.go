package handlers

import (
	"errors"
	"log"
	"net/http"
	"os"
	"path/filepath"

	"github.com/gin-gonic/gin"

	"turbine-backtest/internal/api/models"
	"turbine-backtest/internal/config"
	"turbine-backtest/internal/data"
	"turbine-backtest/internal/model"
	"turbine-backtest/internal/runs"
	"turbine-backtest/internal/sim"
)

// Notifier receives finished run summaries. The websocket hub implements it;
// handlers never learn about transports.
type Notifier interface {
	NotifyRun(summary any)
}

// SimulateHandler handles simulation-related requests
type SimulateHandler struct {
	dataDir    string
	turbineDir string
	store      *runs.Store
	notifier   Notifier
}

// NewSimulateHandler creates a new simulate handler. notifier may be nil.
func NewSimulateHandler(dataDir, turbineDir string, store *runs.Store, notifier Notifier) *SimulateHandler {
	return &SimulateHandler{
		dataDir:    dataDir,
		turbineDir: turbineDir,
		store:      store,
		notifier:   notifier,
	}
}

// RunSimulate handles POST /api/v1/simulate
func (h *SimulateHandler) RunSimulate(c *gin.Context) {
	var req models.SimulateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "INVALID_REQUEST",
				Message: err.Error(),
			},
		})
		return
	}

	series, err := h.loadSeries(req.Data)
	if err != nil {
		respondError(c, "DATA_LOAD_ERROR", err)
		return
	}

	if req.Options.LimitSteps > 0 && req.Options.LimitSteps < len(series) {
		series = series[:req.Options.LimitSteps]
	}

	cfg, err := h.buildConfig(req.Config)
	if err != nil {
		respondError(c, "INVALID_CONFIG", err)
		return
	}

	res, summary, err := h.runOnce(series, cfg)
	if err != nil {
		respondError(c, "SIMULATION_ERROR", err)
		return
	}

	summary.RunID = h.store.Put(res)
	if h.notifier != nil {
		h.notifier.NotifyRun(summary)
	}

	response := models.SimulateResponse{
		Status:  "completed",
		Summary: summary,
	}
	if req.Options.IncludeLedger {
		response.Ledger = convertLedger(res.Ledger)
	}
	c.JSON(http.StatusOK, response)
}

// GetLedger handles GET /api/v1/simulate/:id/ledger
func (h *SimulateHandler) GetLedger(c *gin.Context) {
	id := c.Param("id")
	res, ok := h.store.Get(id)
	if !ok {
		c.JSON(http.StatusNotFound, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "RUN_NOT_FOUND",
				Message: "No stored run with that id. Runs expire; re-run the simulation.",
			},
		})
		return
	}
	c.JSON(http.StatusOK, models.LedgerResponse{
		RunID:  id,
		Policy: res.Policy,
		Ledger: convertLedger(res.Ledger),
	})
}

// Compare handles POST /api/v1/simulate/compare
func (h *SimulateHandler) Compare(c *gin.Context) {
	var req models.CompareRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "INVALID_REQUEST",
				Message: err.Error(),
			},
		})
		return
	}

	series, err := h.loadSeries(req.Data)
	if err != nil {
		respondError(c, "DATA_LOAD_ERROR", err)
		return
	}

	comparison := make([]models.ComparisonResult, 0, len(req.Variations))
	for _, variation := range req.Variations {
		merged := mergeConfig(req.BaseConfig, variation.Config)
		cfg, err := h.buildConfig(merged)
		if err != nil {
			log.Printf("compare: skipping %q: %v", variation.Name, err)
			continue
		}
		_, summary, err := h.runOnce(series, cfg)
		if err != nil {
			log.Printf("compare: skipping %q: %v", variation.Name, err)
			continue
		}
		comparison = append(comparison, models.ComparisonResult{
			Name:    variation.Name,
			Summary: summary,
		})
	}

	c.JSON(http.StatusOK, models.CompareResponse{Comparison: comparison})
}

// Helper methods

func (h *SimulateHandler) loadSeries(ds models.DataSourceConfig) (model.Series, error) {
	wind, err := data.LoadSamplesCSV(filepath.Join(h.dataDir, ds.WindCSV))
	if err != nil {
		return nil, err
	}
	price, err := data.LoadSamplesCSV(filepath.Join(h.dataDir, ds.PriceCSV))
	if err != nil {
		return nil, err
	}
	curve, err := data.LoadPowerCurveCSV(filepath.Join(h.dataDir, ds.PowerCurveCSV))
	if err != nil {
		return nil, err
	}
	return data.BuildSeries(wind, price, curve)
}

func (h *SimulateHandler) buildConfig(req models.SimConfig) (*config.Config, error) {
	cfg := &config.Config{
		TurbineFile: req.TurbineFile,
		Turbine: config.TurbineConfig{
			Name:            req.Turbine.Name,
			InitPressureBar: req.Turbine.InitPressureBar,
			MinPressureBar:  req.Turbine.MinPressureBar,
			DeclineRateBar:  req.Turbine.DeclineRateBar,
		},
		Vessel: config.VesselConfig{
			MaxWindSpeedMS: req.Vessel.MaxWindSpeedMS,
			VisitDays:      req.Vessel.VisitDays,
			CostEur:        req.Vessel.CostEur,
		},
		Policy: config.PolicyConfig{
			Name:   req.Policy.Name,
			Params: req.Policy.Params,
		},
	}

	// turbine_file is just the preset name; files live in the turbine dir.
	if cfg.TurbineFile != "" {
		path := filepath.Join(h.turbineDir, cfg.TurbineFile+".yaml")
		loaded, err := config.LoadTurbineFile(path)
		if err == nil {
			cfg.Turbine = config.MergeTurbine(loaded, cfg.Turbine)
		} else {
			log.Printf("SimulateHandler: failed to load turbine file %s: %v", path, err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (h *SimulateHandler) runOnce(series model.Series, cfg *config.Config) (*sim.Result, models.RunSummary, error) {
	pol, err := config.BuildPolicy(cfg.Policy)
	if err != nil {
		return nil, models.RunSummary{}, err
	}
	turbine := cfg.Turbine.ToModelParams()
	vessel := cfg.Vessel.ToModelParams()
	engine, err := sim.New(turbine, vessel)
	if err != nil {
		return nil, models.RunSummary{}, err
	}
	res, err := engine.Run(series, pol)
	if err != nil {
		return nil, models.RunSummary{}, err
	}

	gross := sim.GrossRevenue(res.Ledger, turbine.MinPressureBar)
	start, end := series.Span()
	summary := models.RunSummary{
		Policy:           res.Policy,
		Steps:            len(res.Ledger),
		VisitCount:       res.VisitCount,
		GrossRevenueEur:  gross,
		NetRevenueEur:    gross - float64(res.VisitCount)*vessel.CostEur,
		FinalPressureBar: res.FinalPressureBar,
		Window:           models.TimeWindow{Start: start, End: end},
	}
	return res, summary, nil
}

func mergeConfig(base, override models.SimConfig) models.SimConfig {
	merged := base
	if override.TurbineFile != "" {
		merged.TurbineFile = override.TurbineFile
	}
	if override.Turbine.InitPressureBar != 0 {
		merged.Turbine.InitPressureBar = override.Turbine.InitPressureBar
	}
	if override.Turbine.MinPressureBar != 0 {
		merged.Turbine.MinPressureBar = override.Turbine.MinPressureBar
	}
	if override.Turbine.DeclineRateBar != 0 {
		merged.Turbine.DeclineRateBar = override.Turbine.DeclineRateBar
	}
	if override.Vessel.MaxWindSpeedMS != 0 {
		merged.Vessel.MaxWindSpeedMS = override.Vessel.MaxWindSpeedMS
	}
	if override.Vessel.VisitDays != 0 {
		merged.Vessel.VisitDays = override.Vessel.VisitDays
	}
	if override.Vessel.CostEur != 0 {
		merged.Vessel.CostEur = override.Vessel.CostEur
	}
	if override.Policy.Name != "" {
		merged.Policy = override.Policy
	}
	return merged
}

func convertLedger(ledger []sim.Row) []models.LedgerRow {
	out := make([]models.LedgerRow, len(ledger))
	for i, r := range ledger {
		out[i] = models.LedgerRow{
			Index:       r.Index,
			Timestamp:   r.Timestamp,
			WindSpeed:   r.WindSpeed,
			PriceEur:    r.PriceEur,
			PowerMW:     r.PowerMW,
			RevenueEur:  r.RevenueEur,
			PressureBar: r.PressureBar,
			Visit:       r.Visit,
			Status:      string(r.Status),
		}
	}
	return out
}

// respondError maps the error taxonomy to HTTP codes: configuration and
// input-contract violations are the caller's fault.
func respondError(c *gin.Context, fallbackCode string, err error) {
	status := http.StatusInternalServerError
	code := fallbackCode
	switch {
	case errors.Is(err, model.ErrConfig):
		status = http.StatusBadRequest
		code = "INVALID_CONFIG"
	case errors.Is(err, model.ErrInput):
		status = http.StatusBadRequest
		code = "INVALID_SERIES"
	case errors.Is(err, os.ErrNotExist):
		status = http.StatusBadRequest
	}
	c.JSON(status, models.ErrorResponse{
		Error: models.ErrorDetail{
			Code:    code,
			Message: err.Error(),
		},
	})
}
