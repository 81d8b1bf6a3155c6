package model

import "fmt"

// TurbineParams defines the cooling-system physics of the simulated turbine.
// Units:
// - pressures in bars
// - DeclineRateBar in bars per series step
type TurbineParams struct {
	InitPressureBar float64
	MinPressureBar  float64
	DeclineRateBar  float64
}

func (p TurbineParams) Validate() error {
	if p.InitPressureBar <= 0 {
		return fmt.Errorf("%w: init pressure must be > 0, got %v", ErrConfig, p.InitPressureBar)
	}
	if p.MinPressureBar < 0 || p.MinPressureBar >= p.InitPressureBar {
		return fmt.Errorf("%w: min pressure must be in [0, init), got %v", ErrConfig, p.MinPressureBar)
	}
	if p.DeclineRateBar <= 0 {
		return fmt.Errorf("%w: decline rate must be > 0, got %v", ErrConfig, p.DeclineRateBar)
	}
	return nil
}

// VesselParams defines the maintenance vessel's dispatch constraints and
// economics. A visit lasts VisitDays calendar days and costs CostEur; the
// vessel cannot sail when wind speed exceeds MaxWindSpeedMS.
type VesselParams struct {
	MaxWindSpeedMS float64
	VisitDays      int
	CostEur        float64
}

func (p VesselParams) Validate() error {
	if p.MaxWindSpeedMS < 0 {
		return fmt.Errorf("%w: max wind speed must be >= 0, got %v", ErrConfig, p.MaxWindSpeedMS)
	}
	if p.VisitDays <= 0 {
		return fmt.Errorf("%w: visit duration must be > 0 days, got %d", ErrConfig, p.VisitDays)
	}
	if p.CostEur <= 0 {
		return fmt.Errorf("%w: vessel cost must be > 0, got %v", ErrConfig, p.CostEur)
	}
	return nil
}
