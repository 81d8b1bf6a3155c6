package data

import (
	"fmt"
	"sort"
	"time"

	"turbine-backtest/internal/model"
)

// FallbackWindSpeedMS fills hours that precede the first wind sample. The
// source dataset starts mid-gale; 15 m/s keeps the turbine at rated power
// rather than zero for those placeholder hours.
const FallbackWindSpeedMS = 15.0

// SortDedupe sorts samples chronologically and drops duplicate timestamps,
// keeping the first occurrence. The raw wind dataset contains duplicates.
func SortDedupe(samples []Sample) []Sample {
	out := make([]Sample, len(samples))
	copy(out, samples)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Timestamp.Before(out[j].Timestamp) })
	dedup := out[:0]
	for _, s := range out {
		if len(dedup) > 0 && dedup[len(dedup)-1].Timestamp.Equal(s.Timestamp) {
			continue
		}
		dedup = append(dedup, s)
	}
	return dedup
}

// ResampleHourly projects samples onto an hourly grid from the first sample's
// hour through the last sample, forward-filling the most recent value. Grid
// points before the first sample take fallback.
func ResampleHourly(samples []Sample, fallback float64) []Sample {
	if len(samples) == 0 {
		return nil
	}
	start := samples[0].Timestamp.Truncate(time.Hour)
	end := samples[len(samples)-1].Timestamp

	out := make([]Sample, 0, int(end.Sub(start)/time.Hour)+1)
	i := 0
	value := fallback
	seen := false
	for t := start; !t.After(end); t = t.Add(time.Hour) {
		for i < len(samples) && !samples[i].Timestamp.After(t) {
			value = samples[i].Value
			seen = true
			i++
		}
		v := value
		if !seen {
			v = fallback
		}
		out = append(out, Sample{Timestamp: t, Value: v})
	}
	return out
}

// BuildSeries assembles the simulator's input series from raw wind and price
// samples: sort, dedupe, resample both to an hourly grid, derive power from
// the curve by nearest-neighbor lookup, join prices onto the wind grid, and
// compute per-step revenue. Hours before the first price sample are dropped
// since they have no price to forward-fill.
func BuildSeries(wind, price []Sample, curve model.PowerCurve) (model.Series, error) {
	if len(wind) == 0 {
		return nil, fmt.Errorf("%w: no wind samples", model.ErrInput)
	}
	if len(price) == 0 {
		return nil, fmt.Errorf("%w: no price samples", model.ErrInput)
	}
	if len(curve) == 0 {
		return nil, fmt.Errorf("%w: empty power curve", model.ErrConfig)
	}

	windGrid := ResampleHourly(SortDedupe(wind), FallbackWindSpeedMS)
	priceGrid := ResampleHourly(SortDedupe(price), 0)

	priceAt := make(map[time.Time]float64, len(priceGrid))
	for _, s := range priceGrid {
		priceAt[s.Timestamp] = s.Value
	}
	firstPrice := priceGrid[0].Timestamp

	series := make(model.Series, 0, len(windGrid))
	for _, w := range windGrid {
		if w.Timestamp.Before(firstPrice) {
			continue
		}
		p, ok := priceAt[w.Timestamp]
		if !ok {
			continue
		}
		power := curve.PowerAt(w.Value)
		series = append(series, model.Record{
			Timestamp:  w.Timestamp,
			WindSpeed:  w.Value,
			PriceEur:   p,
			PowerMW:    power,
			RevenueEur: power * p,
		})
	}

	if err := series.Validate(); err != nil {
		return nil, err
	}
	return series, nil
}
