package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"turbine-backtest/internal/model"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

const validYAML = `
turbine:
  name: test-8mw
  init_pressure_bar: 2.0
  min_pressure_bar: 0.5
  decline_rate_bar: 0.0001
vessel:
  max_wind_speed_ms: 5
  visit_days: 1
  cost_eur: 50000
policy:
  name: condition
  params:
    threshold_bar: 1.0
`

func TestLoad(t *testing.T) {
	path := writeFile(t, t.TempDir(), "config.yaml", validYAML)

	c, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "test-8mw", c.Turbine.Name)
	assert.InDelta(t, 2.0, c.Turbine.InitPressureBar, 1e-9)
	assert.Equal(t, 1, c.Vessel.VisitDays)
	assert.Equal(t, "condition", c.Policy.Name)
}

func TestLoad_RejectsInvalid(t *testing.T) {
	cases := map[string]string{
		"zero vessel cost": `
turbine: {init_pressure_bar: 2, min_pressure_bar: 0.5, decline_rate_bar: 0.01}
vessel: {max_wind_speed_ms: 5, visit_days: 1, cost_eur: 0}
policy: {name: condition, params: {threshold_bar: 1}}
`,
		"min above init": `
turbine: {init_pressure_bar: 2, min_pressure_bar: 3, decline_rate_bar: 0.01}
vessel: {max_wind_speed_ms: 5, visit_days: 1, cost_eur: 1}
policy: {name: condition, params: {threshold_bar: 1}}
`,
		"unknown policy": `
turbine: {init_pressure_bar: 2, min_pressure_bar: 0.5, decline_rate_bar: 0.01}
vessel: {max_wind_speed_ms: 5, visit_days: 1, cost_eur: 1}
policy: {name: oracle}
`,
	}
	dir := t.TempDir()
	for name, yaml := range cases {
		t.Run(name, func(t *testing.T) {
			path := writeFile(t, dir, "bad.yaml", yaml)
			_, err := Load(path)
			assert.ErrorIs(t, err, model.ErrConfig)
		})
	}
}

func TestLoad_TurbineFileRelativeToConfigDir(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "offshore.yaml", `
turbine:
  name: offshore-8mw
  init_pressure_bar: 2.0
  min_pressure_bar: 0.5
  decline_rate_bar: 0.0001
`)
	path := writeFile(t, dir, "config.yaml", `
turbine_file: offshore.yaml
turbine:
  init_pressure_bar: 3.0
vessel:
  max_wind_speed_ms: 5
  visit_days: 1
  cost_eur: 50000
policy:
  name: scheduled
  params: {day: 1, month: 6}
`)

	c, err := Load(path)
	require.NoError(t, err)
	// File supplies the base, inline config overrides non-zero fields.
	assert.Equal(t, "offshore-8mw", c.Turbine.Name)
	assert.InDelta(t, 3.0, c.Turbine.InitPressureBar, 1e-9)
	assert.InDelta(t, 0.5, c.Turbine.MinPressureBar, 1e-9)
}

func TestBuildPolicy(t *testing.T) {
	p, err := BuildPolicy(PolicyConfig{Name: "scheduled", Params: map[string]any{"day": 15, "month": 6}})
	require.NoError(t, err)
	assert.Equal(t, "scheduled", p.Name())

	p, err = BuildPolicy(PolicyConfig{Name: "condition", Params: map[string]any{"threshold_bar": 1.2}})
	require.NoError(t, err)
	assert.Equal(t, "condition", p.Name())

	_, err = BuildPolicy(PolicyConfig{Name: "scheduled", Params: map[string]any{"day": 15}})
	assert.ErrorIs(t, err, model.ErrConfig)

	_, err = BuildPolicy(PolicyConfig{Name: "condition"})
	assert.ErrorIs(t, err, model.ErrConfig)
}

func TestMergeTurbine(t *testing.T) {
	base := TurbineConfig{Name: "base", InitPressureBar: 2, MinPressureBar: 0.5, DeclineRateBar: 0.01}
	out := MergeTurbine(base, TurbineConfig{InitPressureBar: 4})
	assert.Equal(t, "base", out.Name)
	assert.InDelta(t, 4, out.InitPressureBar, 1e-9)
	assert.InDelta(t, 0.5, out.MinPressureBar, 1e-9)
	assert.InDelta(t, 0.01, out.DeclineRateBar, 1e-9)
}
