package sim

import (
	"time"

	"turbine-backtest/internal/model"
)

// Row is one annotated step of a simulation run.
// This is the primary artifact for "what happened" during a run.
type Row struct {
	Index int

	Timestamp time.Time

	WindSpeed  float64
	PriceEur   float64
	PowerMW    float64
	RevenueEur float64

	PressureBar float64
	Visit       bool

	Status model.Status
}

// Result is the outcome of one run: the annotated ledger plus the visit
// counter the revenue calculation charges vessel costs against.
type Result struct {
	Policy string

	Ledger     []Row
	VisitCount int

	FinalPressureBar float64
}
