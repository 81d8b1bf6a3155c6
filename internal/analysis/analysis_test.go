package analysis

import (
	"sort"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"turbine-backtest/internal/model"
	"turbine-backtest/internal/policy"
)

var analysisT0 = time.Date(2023, time.March, 1, 0, 0, 0, 0, time.UTC)

// priceSeries builds an hourly series with 1 MW power so revenue == price.
func priceSeries(prices ...float64) model.Series {
	series := make(model.Series, len(prices))
	for i, p := range prices {
		series[i] = model.Record{
			Timestamp:  analysisT0.Add(time.Duration(i) * time.Hour),
			WindSpeed:  5,
			PriceEur:   p,
			PowerMW:    1,
			RevenueEur: p,
		}
	}
	return series
}

var (
	testTurbine = model.TurbineParams{InitPressureBar: 2.0, MinPressureBar: 0.5, DeclineRateBar: 0.01}
	testVessel  = model.VesselParams{MaxWindSpeedMS: 10, VisitDays: 1, CostEur: 50}
)

func TestComputePotential(t *testing.T) {
	series := priceSeries(10, 20, 90)

	p, err := ComputePotential(series, testTurbine, testVessel)
	require.NoError(t, err)

	assert.Equal(t, 3, p.Count)
	assert.Equal(t, series[0].Timestamp, p.Start)
	assert.Equal(t, series[2].Timestamp, p.End)
	assert.InDelta(t, 10, p.MinPrice, 1e-9)
	assert.InDelta(t, 90, p.MaxPrice, 1e-9)
	assert.InDelta(t, 40, p.MeanPrice, 1e-9)
	assert.InDelta(t, 11, p.P05Price, 1e-9) // interpolated between 10 and 20
	assert.InDelta(t, 83, p.P95Price, 1e-9)
	assert.InDelta(t, 72, p.SpreadP95P05, 1e-9)
	assert.InDelta(t, 5, p.MeanWindMS, 1e-9)
	assert.InDelta(t, 1, p.MeanPowerMW, 1e-9)
	assert.InDelta(t, 1, p.PeakPowerMW, 1e-9)
	// No dispatch, pressure stays productive: baseline is the plain sum.
	assert.InDelta(t, 120, p.BaselineRevenueEur, 1e-9)
}

func TestComputePotential_EmptySeries(t *testing.T) {
	p, err := ComputePotential(nil, testTurbine, testVessel)
	require.NoError(t, err)
	assert.Equal(t, 0, p.Count)
}

func TestRank_SortsByNetRevenueDescending(t *testing.T) {
	series := priceSeries(10, 40, 90)

	eager, err := policy.NewConditionMonitoring(1.995)
	require.NoError(t, err)

	ranked, err := Rank(series, testTurbine, testVessel, []Candidate{
		{Name: "eager", Policy: eager},
		{Name: "none", Policy: neverPolicy{}},
	})
	require.NoError(t, err)
	require.Len(t, ranked, 2)

	// The eager threshold fires on the first step and the visit swallows the
	// whole short series, so it earns nothing and pays one vessel trip.
	assert.Equal(t, "none", ranked[0].Name)
	assert.InDelta(t, 140, ranked[0].NetRevenueEur, 1e-9)
	assert.Equal(t, 0, ranked[0].VisitCount)

	assert.Equal(t, "eager", ranked[1].Name)
	assert.Equal(t, 1, ranked[1].VisitCount)
	assert.InDelta(t, 0, ranked[1].GrossRevenueEur, 1e-9)
	assert.InDelta(t, -50, ranked[1].NetRevenueEur, 1e-9)
}

func TestSweep(t *testing.T) {
	series := priceSeries(10, 40, 90)

	ranked, err := Sweep(series, testTurbine, testVessel, SweepParams{ThresholdSteps: 3})
	require.NoError(t, err)
	// baseline + 3 thresholds + 12 scheduled months
	require.Len(t, ranked, 16)

	assert.True(t, sort.SliceIsSorted(ranked, func(i, j int) bool {
		return ranked[i].NetRevenueEur > ranked[j].NetRevenueEur
	}))

	names := make([]string, 0, len(ranked))
	for _, r := range ranked {
		names = append(names, r.Name)
	}
	assert.Contains(t, names, "none")
	assert.Contains(t, names, "scheduled@01-03")
}
