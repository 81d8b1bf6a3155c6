package sim

import (
	"fmt"
	"time"

	"turbine-backtest/internal/model"
	"turbine-backtest/internal/policy"
)

// Engine folds a maintenance policy over a turbine series. Parameters are
// fixed at construction so every run is reproducible from explicit inputs.
type Engine struct {
	turbine model.TurbineParams
	vessel  model.VesselParams
}

func New(turbine model.TurbineParams, vessel model.VesselParams) (*Engine, error) {
	if err := turbine.Validate(); err != nil {
		return nil, err
	}
	if err := vessel.Validate(); err != nil {
		return nil, err
	}
	return &Engine{turbine: turbine, vessel: vessel}, nil
}

// simState is the mutable state threaded through one walk. It exists only
// for the duration of Run; the annotated ledger is the persistent output.
type simState struct {
	pressureBar  float64
	pendingVisit bool
	visitEnd     time.Time
	visitCount   int
}

// Run executes a single forward pass over the series with the given policy.
//
// Per step: pressure decays, the policy is evaluated, and a trigger starts a
// visit unless one is already pending or the wind gate blocks it. A blocked
// trigger is dropped outright; nothing is deferred to a calmer step. When the
// step's timestamp reaches the active visit's end, pressure resets to the
// initial value and that same row records the reset value, not the decayed
// pressure that prevailed during the visit.
func (e *Engine) Run(series model.Series, pol policy.Policy) (*Result, error) {
	if pol == nil {
		return nil, fmt.Errorf("policy is nil")
	}
	if err := series.Validate(); err != nil {
		return nil, err
	}

	ledger := make([]Row, 0, len(series))
	last := series[len(series)-1].Timestamp

	st := simState{pressureBar: e.turbine.InitPressureBar}

	for idx, rec := range series {
		st.pressureBar -= e.turbine.DeclineRateBar

		fire := pol.Decide(policy.Context{
			Index:       idx,
			Timestamp:   rec.Timestamp,
			PressureBar: st.pressureBar,
			WindSpeed:   rec.WindSpeed,
			PriceEur:    rec.PriceEur,
		})

		if fire && !st.pendingVisit && rec.WindSpeed <= e.vessel.MaxWindSpeedMS {
			st.visitCount++
			st.visitEnd = visitEndAfter(series, idx, e.vessel.VisitDays, last)
			st.pendingVisit = true
		}

		visit := st.pendingVisit

		if st.pendingVisit && rec.Timestamp.Equal(st.visitEnd) {
			st.pressureBar = e.turbine.InitPressureBar
			st.pendingVisit = false
		}

		ledger = append(ledger, Row{
			Index:       idx,
			Timestamp:   rec.Timestamp,
			WindSpeed:   rec.WindSpeed,
			PriceEur:    rec.PriceEur,
			PowerMW:     rec.PowerMW,
			RevenueEur:  rec.RevenueEur,
			PressureBar: st.pressureBar,
			Visit:       visit,
			Status:      model.StatusFor(st.pressureBar, e.turbine.MinPressureBar, visit),
		})
	}

	return &Result{
		Policy:           pol.Name(),
		Ledger:           ledger,
		VisitCount:       st.visitCount,
		FinalPressureBar: st.pressureBar,
	}, nil
}

// visitEndAfter resolves a visit's end: the first record timestamp at or
// after triggerTs + visitDays, clamped to the series' last timestamp when the
// nominal duration runs past the series range.
func visitEndAfter(series model.Series, triggerIdx, visitDays int, last time.Time) time.Time {
	nominal := series[triggerIdx].Timestamp.AddDate(0, 0, visitDays)
	for _, r := range series[triggerIdx+1:] {
		if !r.Timestamp.Before(nominal) {
			return r.Timestamp
		}
	}
	return last
}
