package policy

import (
	"fmt"

	"turbine-backtest/internal/model"
)

// ConditionMonitoring dispatches the vessel as soon as the cooling-system
// pressure falls to a configured threshold.
type ConditionMonitoring struct {
	thresholdBar float64
}

func NewConditionMonitoring(thresholdBar float64) (*ConditionMonitoring, error) {
	if thresholdBar <= 0 {
		return nil, fmt.Errorf("%w: pressure threshold must be > 0, got %v", model.ErrConfig, thresholdBar)
	}
	return &ConditionMonitoring{thresholdBar: thresholdBar}, nil
}

func (p *ConditionMonitoring) Name() string { return "condition" }

func (p *ConditionMonitoring) Decide(ctx Context) bool {
	return ctx.PressureBar <= p.thresholdBar
}
