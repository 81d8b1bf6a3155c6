package analysis

import (
	"sort"

	"turbine-backtest/internal/model"
	"turbine-backtest/internal/policy"
	"turbine-backtest/internal/sim"
)

// Candidate pairs a display name with a constructed policy.
type Candidate struct {
	Name   string
	Policy policy.Policy
}

// Ranked is one candidate's outcome over the series.
type Ranked struct {
	Name string

	VisitCount      int
	GrossRevenueEur float64
	NetRevenueEur   float64
}

// Rank runs every candidate policy over the same series and sorts the
// outcomes descending by net revenue.
func Rank(series model.Series, turbine model.TurbineParams, vessel model.VesselParams, candidates []Candidate) ([]Ranked, error) {
	engine, err := sim.New(turbine, vessel)
	if err != nil {
		return nil, err
	}

	out := make([]Ranked, 0, len(candidates))
	for _, c := range candidates {
		res, err := engine.Run(series, c.Policy)
		if err != nil {
			return nil, err
		}
		gross := sim.GrossRevenue(res.Ledger, turbine.MinPressureBar)
		out = append(out, Ranked{
			Name:            c.Name,
			VisitCount:      res.VisitCount,
			GrossRevenueEur: gross,
			NetRevenueEur:   gross - float64(res.VisitCount)*vessel.CostEur,
		})
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].NetRevenueEur > out[j].NetRevenueEur
	})
	return out, nil
}
