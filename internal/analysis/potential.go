package analysis

import (
	"math"
	"sort"
	"time"

	"turbine-backtest/internal/model"
	"turbine-backtest/internal/policy"
	"turbine-backtest/internal/sim"
)

// Potential is a series-level summary for screening a site before comparing
// dispatch policies. It combines raw price/wind statistics with the gross
// revenue a turbine would earn with no maintenance at all, i.e. pressure
// allowed to decay until the cooling system goes unproductive.
type Potential struct {
	Start time.Time
	End   time.Time

	Count int

	MinPrice  float64
	MaxPrice  float64
	MeanPrice float64
	P05Price  float64
	P95Price  float64

	SpreadP95P05 float64

	MeanWindMS  float64
	MeanPowerMW float64
	PeakPowerMW float64

	// BaselineRevenueEur is the net revenue of the never-dispatch baseline:
	// no visits, no vessel costs, pressure decays freely.
	BaselineRevenueEur float64
}

// neverPolicy is the no-maintenance baseline.
type neverPolicy struct{}

func (neverPolicy) Name() string              { return "none" }
func (neverPolicy) Decide(policy.Context) bool { return false }

func ComputePotential(series model.Series, turbine model.TurbineParams, vessel model.VesselParams) (Potential, error) {
	p := Potential{}
	if len(series) == 0 {
		return p, nil
	}
	p.Start, p.End = series.Span()
	p.Count = len(series)

	sumPrice := 0.0
	sumWind := 0.0
	sumPower := 0.0
	minv := math.Inf(1)
	maxv := math.Inf(-1)
	vals := make([]float64, 0, len(series))
	for _, r := range series {
		vals = append(vals, r.PriceEur)
		sumPrice += r.PriceEur
		sumWind += r.WindSpeed
		sumPower += r.PowerMW
		if r.PriceEur < minv {
			minv = r.PriceEur
		}
		if r.PriceEur > maxv {
			maxv = r.PriceEur
		}
		if r.PowerMW > p.PeakPowerMW {
			p.PeakPowerMW = r.PowerMW
		}
	}
	sort.Float64s(vals)
	n := float64(len(vals))
	p.MinPrice = minv
	p.MaxPrice = maxv
	p.MeanPrice = sumPrice / n
	p.P05Price = percentileSorted(vals, 0.05)
	p.P95Price = percentileSorted(vals, 0.95)
	p.SpreadP95P05 = p.P95Price - p.P05Price
	p.MeanWindMS = sumWind / n
	p.MeanPowerMW = sumPower / n

	engine, err := sim.New(turbine, vessel)
	if err != nil {
		return p, err
	}
	res, err := engine.Run(series, neverPolicy{})
	if err != nil {
		return p, err
	}
	p.BaselineRevenueEur = sim.NetRevenue(res.Ledger, res.VisitCount, turbine.MinPressureBar, vessel.CostEur)

	return p, nil
}

func percentileSorted(sorted []float64, q float64) float64 {
	if len(sorted) == 0 {
		return 0
	}
	if q <= 0 {
		return sorted[0]
	}
	if q >= 1 {
		return sorted[len(sorted)-1]
	}
	pos := q * float64(len(sorted)-1)
	lo := int(math.Floor(pos))
	hi := int(math.Ceil(pos))
	if lo == hi {
		return sorted[lo]
	}
	frac := pos - float64(lo)
	return sorted[lo]*(1-frac) + sorted[hi]*frac
}
