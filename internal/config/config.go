package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"turbine-backtest/internal/model"
	"turbine-backtest/internal/policy"
)

// Config is the on-disk configuration shape (YAML).
type Config struct {
	// Optional: load turbine parameters from a separate YAML (e.g.
	// examples/turbines/*.yaml). If both TurbineFile and Turbine are
	// provided, Turbine overrides TurbineFile.
	TurbineFile string        `yaml:"turbine_file"`
	Turbine     TurbineConfig `yaml:"turbine"`
	Vessel      VesselConfig  `yaml:"vessel"`
	Policy      PolicyConfig  `yaml:"policy"`
}

type TurbineConfig struct {
	Name            string  `yaml:"name"`
	InitPressureBar float64 `yaml:"init_pressure_bar"`
	MinPressureBar  float64 `yaml:"min_pressure_bar"`
	DeclineRateBar  float64 `yaml:"decline_rate_bar"`
}

type VesselConfig struct {
	MaxWindSpeedMS float64 `yaml:"max_wind_speed_ms"`
	VisitDays      int     `yaml:"visit_days"`
	CostEur        float64 `yaml:"cost_eur"`
}

type PolicyConfig struct {
	Name   string         `yaml:"name"`
	Params map[string]any `yaml:"params"`
}

func Load(path string) (*Config, error) {
	c, err := LoadUnchecked(path)
	if err != nil {
		return nil, err
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// LoadUnchecked loads and merges config, but does not validate it.
// Useful for debugging/printing partial configs.
func LoadUnchecked(path string) (*Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var c Config
	if err := yaml.Unmarshal(raw, &c); err != nil {
		return nil, err
	}
	if c.TurbineFile != "" {
		turbinePath := c.TurbineFile
		if !filepath.IsAbs(turbinePath) {
			// Prefer interpreting relative paths as relative to the config
			// file directory, but fall back to the provided path (relative
			// to cwd) if that doesn't exist.
			cand := filepath.Join(filepath.Dir(path), turbinePath)
			if _, err := os.Stat(cand); err == nil {
				turbinePath = cand
			}
		}
		loaded, err := LoadTurbineFile(turbinePath)
		if err != nil {
			return nil, err
		}
		c.Turbine = MergeTurbine(loaded, c.Turbine)
	}
	return &c, nil
}

func (c *Config) Validate() error {
	if c == nil {
		return errors.New("config is nil")
	}
	if err := c.Turbine.ToModelParams().Validate(); err != nil {
		return fmt.Errorf("turbine config invalid: %w", err)
	}
	if err := c.Vessel.ToModelParams().Validate(); err != nil {
		return fmt.Errorf("vessel config invalid: %w", err)
	}
	if _, err := BuildPolicy(c.Policy); err != nil {
		return fmt.Errorf("policy config invalid: %w", err)
	}
	return nil
}

func (t TurbineConfig) ToModelParams() model.TurbineParams {
	return model.TurbineParams{
		InitPressureBar: t.InitPressureBar,
		MinPressureBar:  t.MinPressureBar,
		DeclineRateBar:  t.DeclineRateBar,
	}
}

func (v VesselConfig) ToModelParams() model.VesselParams {
	return model.VesselParams{
		MaxWindSpeedMS: v.MaxWindSpeedMS,
		VisitDays:      v.VisitDays,
		CostEur:        v.CostEur,
	}
}

// BuildPolicy constructs the configured policy variant.
func BuildPolicy(pc PolicyConfig) (policy.Policy, error) {
	switch pc.Name {
	case "scheduled":
		day, ok := numParam(pc.Params, "day")
		if !ok {
			return nil, fmt.Errorf("%w: scheduled policy requires params.day", model.ErrConfig)
		}
		month, ok := numParam(pc.Params, "month")
		if !ok {
			return nil, fmt.Errorf("%w: scheduled policy requires params.month", model.ErrConfig)
		}
		return policy.NewScheduled(int(day), int(month))
	case "condition":
		threshold, ok := numParam(pc.Params, "threshold_bar")
		if !ok {
			return nil, fmt.Errorf("%w: condition policy requires params.threshold_bar", model.ErrConfig)
		}
		return policy.NewConditionMonitoring(threshold)
	default:
		return nil, fmt.Errorf("%w: unsupported policy %q", model.ErrConfig, pc.Name)
	}
}

type turbineFileWrapper struct {
	Turbine TurbineConfig `yaml:"turbine"`
}

// LoadTurbineFile reads a standalone turbine parameter YAML.
func LoadTurbineFile(path string) (TurbineConfig, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return TurbineConfig{}, err
	}
	var w turbineFileWrapper
	if err := yaml.Unmarshal(raw, &w); err != nil {
		return TurbineConfig{}, err
	}
	return w.Turbine, nil
}

// MergeTurbine overlays non-zero fields from override onto base.
// This is used when loading a turbine file and then applying overrides from
// the config or an API request.
func MergeTurbine(base, override TurbineConfig) TurbineConfig {
	out := base
	if strings.TrimSpace(override.Name) != "" {
		out.Name = override.Name
	}
	if override.InitPressureBar != 0 {
		out.InitPressureBar = override.InitPressureBar
	}
	if override.MinPressureBar != 0 {
		out.MinPressureBar = override.MinPressureBar
	}
	if override.DeclineRateBar != 0 {
		out.DeclineRateBar = override.DeclineRateBar
	}
	return out
}

func numParam(m map[string]any, key string) (float64, bool) {
	v, ok := m[key]
	if !ok || v == nil {
		return 0, false
	}
	switch x := v.(type) {
	case float64:
		return x, true
	case float32:
		return float64(x), true
	case int:
		return float64(x), true
	case int64:
		return float64(x), true
	case uint:
		return float64(x), true
	case uint64:
		return float64(x), true
	default:
		return 0, false
	}
}
