package data

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"turbine-backtest/internal/model"
)

func ts(s string) time.Time {
	t, err := time.Parse(timestampLayout, s)
	if err != nil {
		panic(err)
	}
	return t
}

func TestParseSamples(t *testing.T) {
	in := "Timestamp (UTC);Speed (m/s)\n01/03/2023 00:00;8.5\n01/03/2023 00:30;9.0\n"
	samples, err := ParseSamples(strings.NewReader(in))
	require.NoError(t, err)
	require.Len(t, samples, 2)
	assert.Equal(t, ts("01/03/2023 00:00"), samples[0].Timestamp)
	assert.InDelta(t, 8.5, samples[0].Value, 1e-9)
	assert.InDelta(t, 9.0, samples[1].Value, 1e-9)
}

func TestParseSamples_Errors(t *testing.T) {
	_, err := ParseSamples(strings.NewReader("header only\n"))
	assert.Error(t, err)

	_, err = ParseSamples(strings.NewReader("h;h\nnot-a-date;1\n"))
	assert.Error(t, err)

	_, err = ParseSamples(strings.NewReader("h;h\n01/03/2023 00:00;abc\n"))
	assert.Error(t, err)
}

func TestParsePowerCurve(t *testing.T) {
	in := "Wind speed (m/s);Power (MW)\n0;0\n10;5\n20;8\n"
	curve, err := ParsePowerCurve(strings.NewReader(in))
	require.NoError(t, err)
	require.Len(t, curve, 3)
	assert.InDelta(t, 5, curve.PowerAt(11), 1e-9)
}

func TestSortDedupe_KeepsFirstOccurrence(t *testing.T) {
	samples := []Sample{
		{Timestamp: ts("01/03/2023 02:00"), Value: 3},
		{Timestamp: ts("01/03/2023 00:00"), Value: 1},
		{Timestamp: ts("01/03/2023 02:00"), Value: 99}, // duplicate, dropped
		{Timestamp: ts("01/03/2023 01:00"), Value: 2},
	}
	out := SortDedupe(samples)
	require.Len(t, out, 3)
	assert.InDelta(t, 1, out[0].Value, 1e-9)
	assert.InDelta(t, 2, out[1].Value, 1e-9)
	assert.InDelta(t, 3, out[2].Value, 1e-9)
}

func TestResampleHourly_ForwardFill(t *testing.T) {
	samples := []Sample{
		{Timestamp: ts("01/03/2023 00:00"), Value: 1},
		{Timestamp: ts("01/03/2023 00:30"), Value: 2}, // sub-hourly, folded into the next grid hour
		{Timestamp: ts("01/03/2023 03:00"), Value: 4},
	}
	out := ResampleHourly(samples, 0)
	require.Len(t, out, 4)
	assert.InDelta(t, 1, out[0].Value, 1e-9)
	assert.InDelta(t, 2, out[1].Value, 1e-9) // forward fill of the 00:30 sample
	assert.InDelta(t, 2, out[2].Value, 1e-9) // gap hour carries the last value
	assert.InDelta(t, 4, out[3].Value, 1e-9)
}

func TestResampleHourly_Empty(t *testing.T) {
	assert.Nil(t, ResampleHourly(nil, 0))
}

func TestBuildSeries(t *testing.T) {
	wind := []Sample{
		{Timestamp: ts("01/03/2023 00:00"), Value: 10},
		{Timestamp: ts("01/03/2023 01:00"), Value: 20},
		{Timestamp: ts("01/03/2023 02:00"), Value: 10},
	}
	price := []Sample{
		{Timestamp: ts("01/03/2023 00:00"), Value: 40},
		{Timestamp: ts("01/03/2023 02:00"), Value: 60},
	}
	curve, err := model.NewPowerCurve([]model.CurvePoint{
		{WindSpeedMS: 10, PowerMW: 5},
		{WindSpeedMS: 20, PowerMW: 8},
	})
	require.NoError(t, err)

	series, err := BuildSeries(wind, price, curve)
	require.NoError(t, err)
	require.Len(t, series, 3)

	assert.InDelta(t, 5, series[0].PowerMW, 1e-9)
	assert.InDelta(t, 200, series[0].RevenueEur, 1e-9) // 5 MW * 40 Eur
	// Price forward-fills the gap hour.
	assert.InDelta(t, 40, series[1].PriceEur, 1e-9)
	assert.InDelta(t, 8*40, series[1].RevenueEur, 1e-9)
	assert.InDelta(t, 60, series[2].PriceEur, 1e-9)

	assert.NoError(t, series.Validate())
}

func TestBuildSeries_DropsHoursBeforeFirstPrice(t *testing.T) {
	wind := []Sample{
		{Timestamp: ts("01/03/2023 00:00"), Value: 10},
		{Timestamp: ts("01/03/2023 01:00"), Value: 10},
	}
	price := []Sample{
		{Timestamp: ts("01/03/2023 01:00"), Value: 50},
	}
	curve, err := model.NewPowerCurve([]model.CurvePoint{{WindSpeedMS: 10, PowerMW: 5}})
	require.NoError(t, err)

	series, err := BuildSeries(wind, price, curve)
	require.NoError(t, err)
	require.Len(t, series, 1)
	assert.Equal(t, ts("01/03/2023 01:00"), series[0].Timestamp)
}

func TestBuildSeries_EmptyInputs(t *testing.T) {
	curve, _ := model.NewPowerCurve([]model.CurvePoint{{WindSpeedMS: 10, PowerMW: 5}})
	_, err := BuildSeries(nil, []Sample{{Timestamp: ts("01/03/2023 00:00"), Value: 1}}, curve)
	assert.ErrorIs(t, err, model.ErrInput)
	_, err = BuildSeries([]Sample{{Timestamp: ts("01/03/2023 00:00"), Value: 1}}, nil, curve)
	assert.ErrorIs(t, err, model.ErrInput)
}
