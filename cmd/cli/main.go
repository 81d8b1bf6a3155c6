package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"turbine-backtest/internal/analysis"
	"turbine-backtest/internal/config"
	"turbine-backtest/internal/data"
	"turbine-backtest/internal/model"
	"turbine-backtest/internal/sim"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	switch os.Args[1] {
	case "simulate":
		cmdSimulate(os.Args[2:])
	case "rank":
		cmdRank(os.Args[2:])
	default:
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Println("usage:")
	fmt.Println("  cli simulate --wind data/wind_data.csv --prices data/electricity_prices.csv --curve data/power_curve.csv --config examples/config.yaml --out results/ledger.csv")
	fmt.Println("  cli rank --wind data/wind_data.csv --prices data/electricity_prices.csv --curve data/power_curve.csv --config examples/config.yaml")
	fmt.Println("")
	fmt.Println("notes:")
	fmt.Println("  - simulate outputs CSV with status=PRODUCING/VISIT/LOW_PRESSURE per step")
	fmt.Println("  - rank sweeps policy candidates over the series and sorts by net revenue")
	fmt.Println("  - --base-url fetches the three CSVs over HTTP instead of disk")
}

func cmdSimulate(args []string) {
	fs := flag.NewFlagSet("simulate", flag.ExitOnError)
	windPath := fs.String("wind", "data/wind_data.csv", "Wind speed CSV (timestamp;speed)")
	pricePath := fs.String("prices", "data/electricity_prices.csv", "Price CSV (timestamp;price)")
	curvePath := fs.String("curve", "data/power_curve.csv", "Power curve CSV (wind_speed;power)")
	baseURL := fs.String("base-url", "", "Optional: fetch CSVs from this HTTP base URL")
	cfgPath := fs.String("config", "", "Path to YAML config")
	outPath := fs.String("out", "results/ledger.csv", "Output CSV path")
	n := fs.Int("n", 0, "Optional: limit to first N steps (0=all)")
	_ = fs.Parse(args)

	if *cfgPath == "" {
		fmt.Println("--config is required")
		os.Exit(2)
	}

	series := loadSeries(*windPath, *pricePath, *curvePath, *baseURL)
	if *n > 0 && *n < len(series) {
		series = series[:*n]
	}

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		panic(err)
	}

	pol, err := config.BuildPolicy(cfg.Policy)
	if err != nil {
		panic(err)
	}
	turbine := cfg.Turbine.ToModelParams()
	vessel := cfg.Vessel.ToModelParams()

	engine, err := sim.New(turbine, vessel)
	if err != nil {
		panic(err)
	}
	res, err := engine.Run(series, pol)
	if err != nil {
		panic(err)
	}

	if err := os.MkdirAll(filepath.Dir(*outPath), 0o755); err != nil {
		panic(err)
	}
	if err := sim.WriteLedgerCSV(*outPath, res.Ledger); err != nil {
		panic(err)
	}

	net := sim.NetRevenue(res.Ledger, res.VisitCount, turbine.MinPressureBar, vessel.CostEur)
	fmt.Printf("Wrote %d rows to %s\n", len(res.Ledger), *outPath)
	fmt.Printf("Policy=%s Visits=%d Net revenue=%.2f Eur Final pressure=%.4f bar\n",
		res.Policy, res.VisitCount, net, res.FinalPressureBar)
}

func cmdRank(args []string) {
	fs := flag.NewFlagSet("rank", flag.ExitOnError)
	windPath := fs.String("wind", "data/wind_data.csv", "Wind speed CSV (timestamp;speed)")
	pricePath := fs.String("prices", "data/electricity_prices.csv", "Price CSV (timestamp;price)")
	curvePath := fs.String("curve", "data/power_curve.csv", "Power curve CSV (wind_speed;power)")
	baseURL := fs.String("base-url", "", "Optional: fetch CSVs from this HTTP base URL")
	cfgPath := fs.String("config", "", "Path to YAML config (turbine and vessel params)")
	steps := fs.Int("thresholds", 10, "Number of condition-monitoring thresholds to try")
	_ = fs.Parse(args)

	if *cfgPath == "" {
		fmt.Println("--config is required")
		os.Exit(2)
	}

	series := loadSeries(*windPath, *pricePath, *curvePath, *baseURL)

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		panic(err)
	}
	turbine := cfg.Turbine.ToModelParams()
	vessel := cfg.Vessel.ToModelParams()

	pot, err := analysis.ComputePotential(series, turbine, vessel)
	if err != nil {
		panic(err)
	}
	fmt.Printf("%d steps %s .. %s  mean price %.2f  mean wind %.2f m/s  baseline %.2f Eur\n\n",
		pot.Count,
		pot.Start.Format("2006-01-02"),
		pot.End.Format("2006-01-02"),
		pot.MeanPrice,
		pot.MeanWindMS,
		pot.BaselineRevenueEur,
	)

	ranked, err := analysis.Sweep(series, turbine, vessel, analysis.SweepParams{ThresholdSteps: *steps})
	if err != nil {
		panic(err)
	}

	fmt.Printf("%-4s %-22s %-8s %-14s %-14s\n", "rank", "candidate", "visits", "gross", "net")
	for i, r := range ranked {
		fmt.Printf("%-4d %-22s %-8d %-14.2f %-14.2f\n",
			i+1, r.Name, r.VisitCount, r.GrossRevenueEur, r.NetRevenueEur)
	}
}

func loadSeries(windPath, pricePath, curvePath, baseURL string) model.Series {
	var (
		wind, price []data.Sample
		curve       model.PowerCurve
		err         error
	)
	if baseURL != "" {
		client := data.NewClient(baseURL)
		if wind, err = client.FetchSamples(windPath); err != nil {
			panic(err)
		}
		if price, err = client.FetchSamples(pricePath); err != nil {
			panic(err)
		}
		if curve, err = client.FetchPowerCurve(curvePath); err != nil {
			panic(err)
		}
	} else {
		if wind, err = data.LoadSamplesCSV(windPath); err != nil {
			panic(err)
		}
		if price, err = data.LoadSamplesCSV(pricePath); err != nil {
			panic(err)
		}
		if curve, err = data.LoadPowerCurveCSV(curvePath); err != nil {
			panic(err)
		}
	}
	series, err := data.BuildSeries(wind, price, curve)
	if err != nil {
		panic(err)
	}
	return series
}
