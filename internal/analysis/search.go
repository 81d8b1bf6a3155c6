package analysis

import (
	"fmt"

	"turbine-backtest/internal/model"
	"turbine-backtest/internal/policy"
)

// SweepParams bounds the candidate grid for Sweep.
type SweepParams struct {
	// ThresholdSteps controls how many condition-monitoring thresholds are
	// tried between MinPressureBar and InitPressureBar (exclusive).
	// Higher = finer grid, more runs.
	ThresholdSteps int
}

// Sweep searches for the best dispatch setup with full knowledge of the
// series: it builds a grid of condition-monitoring thresholds plus one
// scheduled candidate per calendar month and ranks them all by net revenue.
// The never-dispatch baseline is included so a "do nothing" answer can win.
func Sweep(series model.Series, turbine model.TurbineParams, vessel model.VesselParams, cfg SweepParams) ([]Ranked, error) {
	if cfg.ThresholdSteps <= 0 {
		cfg.ThresholdSteps = 10
	}

	candidates := []Candidate{{Name: "none", Policy: neverPolicy{}}}

	span := turbine.InitPressureBar - turbine.MinPressureBar
	for k := 1; k <= cfg.ThresholdSteps; k++ {
		threshold := turbine.MinPressureBar + span*float64(k)/float64(cfg.ThresholdSteps+1)
		pol, err := policy.NewConditionMonitoring(threshold)
		if err != nil {
			return nil, err
		}
		candidates = append(candidates, Candidate{
			Name:   fmt.Sprintf("condition@%.3fbar", threshold),
			Policy: pol,
		})
	}

	for month := 1; month <= 12; month++ {
		pol, err := policy.NewScheduled(1, month)
		if err != nil {
			return nil, err
		}
		candidates = append(candidates, Candidate{
			Name:   fmt.Sprintf("scheduled@01-%02d", month),
			Policy: pol,
		})
	}

	return Rank(series, turbine, vessel, candidates)
}
