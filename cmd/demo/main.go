package main

import (
	"flag"
	"fmt"
	"math"
	"time"

	"turbine-backtest/internal/model"
	"turbine-backtest/internal/policy"
	"turbine-backtest/internal/sim"
)

// Demo:
// - Build a synthetic hourly series (sinusoidal wind, mild price swing)
// - Run both maintenance policies over it
// - Print the first steps and both revenue outcomes
func main() {
	days := flag.Int("days", 30, "Number of days to synthesize")
	outCSV := flag.String("out", "", "Optional path to write the condition-policy ledger CSV")
	flag.Parse()

	curve, err := model.NewPowerCurve([]model.CurvePoint{
		{WindSpeedMS: 0, PowerMW: 0},
		{WindSpeedMS: 4, PowerMW: 0.5},
		{WindSpeedMS: 8, PowerMW: 4},
		{WindSpeedMS: 12, PowerMW: 8},
		{WindSpeedMS: 25, PowerMW: 8},
	})
	if err != nil {
		panic(err)
	}

	series := synthSeries(*days, curve)

	turbine := model.TurbineParams{
		InitPressureBar: 2.0,
		MinPressureBar:  0.5,
		DeclineRateBar:  0.004,
	}
	vessel := model.VesselParams{
		MaxWindSpeedMS: 10,
		VisitDays:      1,
		CostEur:        5000,
	}

	engine, err := sim.New(turbine, vessel)
	if err != nil {
		panic(err)
	}

	scheduled, err := policy.NewScheduled(15, 1)
	if err != nil {
		panic(err)
	}
	condition, err := policy.NewConditionMonitoring(1.0)
	if err != nil {
		panic(err)
	}

	fmt.Printf("Synthesized %d hourly steps\n\n", len(series))

	var condLedger []sim.Row
	for _, pol := range []policy.Policy{scheduled, condition} {
		res, err := engine.Run(series, pol)
		if err != nil {
			panic(err)
		}
		net := sim.NetRevenue(res.Ledger, res.VisitCount, turbine.MinPressureBar, vessel.CostEur)
		fmt.Printf("policy=%-10s visits=%-3d net=%10.2f Eur final pressure=%.4f bar\n",
			res.Policy, res.VisitCount, net, res.FinalPressureBar)
		if pol == condition {
			condLedger = res.Ledger
		}
	}

	fmt.Println("\nFirst steps of the condition-monitoring run:")
	for i := 0; i < min(12, len(condLedger)); i++ {
		r := condLedger[i]
		fmt.Printf(
			"%s wind=%5.2f m/s  price=%6.2f  power=%5.2f MW  pressure=%.4f bar  visit=%v  %s\n",
			r.Timestamp.Format("2006-01-02 15:04"),
			r.WindSpeed,
			r.PriceEur,
			r.PowerMW,
			r.PressureBar,
			r.Visit,
			r.Status,
		)
	}

	if *outCSV != "" {
		if err := sim.WriteLedgerCSV(*outCSV, condLedger); err != nil {
			panic(err)
		}
		fmt.Printf("\nWrote CSV: %s\n", *outCSV)
	}
}

func synthSeries(days int, curve model.PowerCurve) model.Series {
	start := time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)
	n := days * 24
	series := make(model.Series, 0, n)
	for i := 0; i < n; i++ {
		ts := start.Add(time.Duration(i) * time.Hour)
		wind := 8 + 5*math.Sin(float64(i)/24*2*math.Pi) + 2*math.Sin(float64(i)/7)
		if wind < 0 {
			wind = 0
		}
		price := 45 + 15*math.Sin(float64(i)/12*2*math.Pi)
		power := curve.PowerAt(wind)
		series = append(series, model.Record{
			Timestamp:  ts,
			WindSpeed:  wind,
			PriceEur:   price,
			PowerMW:    power,
			RevenueEur: power * price,
		})
	}
	return series
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
