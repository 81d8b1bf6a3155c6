package models

import "time"

// SimulateResponse represents the response from a simulation run
type SimulateResponse struct {
	Status  string      `json:"status"`
	Summary RunSummary  `json:"summary"`
	Ledger  []LedgerRow `json:"ledger,omitempty"`
}

// RunSummary contains aggregated run results
type RunSummary struct {
	RunID            string     `json:"run_id,omitempty"`
	Policy           string     `json:"policy"`
	Steps            int        `json:"steps"`
	VisitCount       int        `json:"visit_count"`
	GrossRevenueEur  float64    `json:"gross_revenue_eur"`
	NetRevenueEur    float64    `json:"net_revenue_eur"`
	FinalPressureBar float64    `json:"final_pressure_bar"`
	Window           TimeWindow `json:"window"`
}

// TimeWindow represents a time range
type TimeWindow struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// LedgerRow represents one step of the annotated series
type LedgerRow struct {
	Index       int       `json:"index"`
	Timestamp   time.Time `json:"timestamp"`
	WindSpeed   float64   `json:"wind_speed_ms"`
	PriceEur    float64   `json:"price_eur_mwh"`
	PowerMW     float64   `json:"power_mw"`
	RevenueEur  float64   `json:"revenue_eur"`
	PressureBar float64   `json:"pressure_bar"`
	Visit       bool      `json:"visit"`
	Status      string    `json:"status"` // "PRODUCING", "VISIT", "LOW_PRESSURE"
}

// LedgerResponse carries a stored run's ledger
type LedgerResponse struct {
	RunID  string      `json:"run_id"`
	Policy string      `json:"policy"`
	Ledger []LedgerRow `json:"ledger"`
}

// CompareResponse represents the response from a comparison
type CompareResponse struct {
	Comparison []ComparisonResult `json:"comparison"`
}

// ComparisonResult contains results for one variation
type ComparisonResult struct {
	Name    string     `json:"name"`
	Summary RunSummary `json:"summary"`
}

// TurbineInfo represents one turbine preset file
type TurbineInfo struct {
	ID              string  `json:"id"`
	Name            string  `json:"name"`
	File            string  `json:"file"`
	InitPressureBar float64 `json:"init_pressure_bar"`
	MinPressureBar  float64 `json:"min_pressure_bar"`
	DeclineRateBar  float64 `json:"decline_rate_bar"`
}

// PolicyInfo represents information about a maintenance policy
type PolicyInfo struct {
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Parameters  []ParameterInfo `json:"parameters"`
}

// ParameterInfo describes a policy parameter
type ParameterInfo struct {
	Name        string      `json:"name"`
	Type        string      `json:"type"` // "float", "int", "string"
	Description string      `json:"description"`
	Default     interface{} `json:"default,omitempty"`
}

// ErrorResponse is the error envelope for all endpoints
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail carries a machine code and a human message
type ErrorDetail struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
}
