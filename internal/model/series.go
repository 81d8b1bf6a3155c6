package model

import (
	"fmt"
	"math"
	"time"
)

// Record represents one sampling instant of the prepared turbine series.
// Power is derived from wind speed via the power curve; RevenueEur is
// PowerMW * PriceEur for the step.
type Record struct {
	Timestamp  time.Time `json:"timestamp"`
	WindSpeed  float64   `json:"wind_speed_ms"`
	PriceEur   float64   `json:"price_eur_mwh"`
	PowerMW    float64   `json:"power_mw"`
	RevenueEur float64   `json:"revenue_eur"`
}

// Series is an ordered, duplicate-free sequence of records at a fixed cadence.
type Series []Record

// Validate checks the input contract before a series is handed to the
// simulator: strictly increasing unique timestamps, finite non-negative wind
// speed, finite price. The simulator never computes on invalid input.
func (s Series) Validate() error {
	if len(s) == 0 {
		return fmt.Errorf("%w: empty series", ErrInput)
	}
	for i, r := range s {
		if math.IsNaN(r.WindSpeed) || math.IsInf(r.WindSpeed, 0) || r.WindSpeed < 0 {
			return fmt.Errorf("%w: record %d: wind speed %v m/s", ErrInput, i, r.WindSpeed)
		}
		if math.IsNaN(r.PriceEur) || math.IsInf(r.PriceEur, 0) {
			return fmt.Errorf("%w: record %d: price %v", ErrInput, i, r.PriceEur)
		}
		if i > 0 && !s[i-1].Timestamp.Before(r.Timestamp) {
			return fmt.Errorf("%w: record %d: timestamp %s not after %s", ErrInput, i,
				r.Timestamp.Format(time.RFC3339), s[i-1].Timestamp.Format(time.RFC3339))
		}
	}
	return nil
}

// Span returns the first and last timestamps of the series.
func (s Series) Span() (start, end time.Time) {
	if len(s) == 0 {
		return
	}
	return s[0].Timestamp, s[len(s)-1].Timestamp
}

// Cadence returns the step between the first two records. Zero for a series
// of fewer than two records.
func (s Series) Cadence() time.Duration {
	if len(s) < 2 {
		return 0
	}
	return s[1].Timestamp.Sub(s[0].Timestamp)
}
