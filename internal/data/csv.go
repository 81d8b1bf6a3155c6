package data

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"turbine-backtest/internal/model"
)

// Source CSVs are semicolon-separated with a header row and timestamps in
// day-first local format, e.g. "21/03/2020 14:00".
const timestampLayout = "02/01/2006 15:04"

// Sample is one raw timestamped value from a source CSV, before resampling.
type Sample struct {
	Timestamp time.Time
	Value     float64
}

// LoadSamplesCSV reads a two-column (timestamp;value) CSV file.
func LoadSamplesCSV(path string) ([]Sample, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	samples, err := ParseSamples(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return samples, nil
}

// ParseSamples decodes timestamp;value rows from r, skipping the header.
func ParseSamples(r io.Reader) ([]Sample, error) {
	rows, err := readSemicolonCSV(r)
	if err != nil {
		return nil, err
	}
	samples := make([]Sample, 0, len(rows))
	for i, row := range rows {
		ts, err := time.Parse(timestampLayout, strings.TrimSpace(row[0]))
		if err != nil {
			return nil, fmt.Errorf("row %d: bad timestamp %q: %w", i+1, row[0], err)
		}
		v, err := strconv.ParseFloat(strings.TrimSpace(row[1]), 64)
		if err != nil {
			return nil, fmt.Errorf("row %d: bad value %q: %w", i+1, row[1], err)
		}
		samples = append(samples, Sample{Timestamp: ts, Value: v})
	}
	return samples, nil
}

// LoadPowerCurveCSV reads a wind_speed;power CSV file into a power curve.
func LoadPowerCurveCSV(path string) (model.PowerCurve, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	curve, err := ParsePowerCurve(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return curve, nil
}

// ParsePowerCurve decodes wind_speed;power rows from r, skipping the header.
func ParsePowerCurve(r io.Reader) (model.PowerCurve, error) {
	rows, err := readSemicolonCSV(r)
	if err != nil {
		return nil, err
	}
	points := make([]model.CurvePoint, 0, len(rows))
	for i, row := range rows {
		ws, err := strconv.ParseFloat(strings.TrimSpace(row[0]), 64)
		if err != nil {
			return nil, fmt.Errorf("row %d: bad wind speed %q: %w", i+1, row[0], err)
		}
		p, err := strconv.ParseFloat(strings.TrimSpace(row[1]), 64)
		if err != nil {
			return nil, fmt.Errorf("row %d: bad power %q: %w", i+1, row[1], err)
		}
		points = append(points, model.CurvePoint{WindSpeedMS: ws, PowerMW: p})
	}
	return model.NewPowerCurve(points)
}

func readSemicolonCSV(r io.Reader) ([][]string, error) {
	cr := csv.NewReader(r)
	cr.Comma = ';'
	cr.FieldsPerRecord = -1
	rows, err := cr.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(rows) < 2 {
		return nil, fmt.Errorf("no data rows")
	}
	out := make([][]string, 0, len(rows)-1)
	for i, row := range rows[1:] {
		if len(row) < 2 {
			return nil, fmt.Errorf("row %d: expected 2 columns, got %d", i+1, len(row))
		}
		out = append(out, row)
	}
	return out, nil
}
