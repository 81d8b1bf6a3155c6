package models

// SimulateRequest represents the request body for running a simulation
type SimulateRequest struct {
	Data    DataSourceConfig `json:"data" binding:"required"`
	Config  SimConfig        `json:"config" binding:"required"`
	Options SimulateOptions  `json:"options,omitempty"`
}

// DataSourceConfig names the source CSV files, resolved inside the server's
// dataset directory
type DataSourceConfig struct {
	WindCSV       string `json:"wind_csv" binding:"required"`
	PriceCSV      string `json:"price_csv" binding:"required"`
	PowerCurveCSV string `json:"power_curve_csv" binding:"required"`
}

// SimConfig contains turbine, vessel and policy configuration
type SimConfig struct {
	TurbineFile string        `json:"turbine_file,omitempty"`
	Turbine     TurbineConfig `json:"turbine,omitempty"`
	Vessel      VesselConfig  `json:"vessel,omitempty"`
	Policy      PolicyConfig  `json:"policy" binding:"required"`
}

// TurbineConfig defines cooling-system parameters
type TurbineConfig struct {
	Name            string  `json:"name,omitempty"`
	InitPressureBar float64 `json:"init_pressure_bar"`
	MinPressureBar  float64 `json:"min_pressure_bar"`
	DeclineRateBar  float64 `json:"decline_rate_bar"`
}

// VesselConfig defines vessel dispatch parameters
type VesselConfig struct {
	MaxWindSpeedMS float64 `json:"max_wind_speed_ms"`
	VisitDays      int     `json:"visit_days"`
	CostEur        float64 `json:"cost_eur"`
}

// PolicyConfig defines the maintenance policy and its parameters
type PolicyConfig struct {
	Name   string                 `json:"name" binding:"required"`
	Params map[string]interface{} `json:"params,omitempty"`
}

// SimulateOptions contains optional simulation parameters
type SimulateOptions struct {
	LimitSteps    int  `json:"limit_steps,omitempty"`    // 0 = all
	IncludeLedger bool `json:"include_ledger,omitempty"` // default: false
}

// CompareRequest represents a request to compare multiple policy setups
type CompareRequest struct {
	Data       DataSourceConfig `json:"data" binding:"required"`
	BaseConfig SimConfig        `json:"base_config" binding:"required"`
	Variations []SimVariation   `json:"variations" binding:"required"`
}

// SimVariation defines a variation to test
type SimVariation struct {
	Name   string    `json:"name" binding:"required"`
	Config SimConfig `json:"config" binding:"required"`
}
