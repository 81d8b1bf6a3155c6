package policy

import (
	"fmt"

	"turbine-backtest/internal/model"
)

// Scheduled dispatches the vessel on a fixed calendar date every year,
// regardless of the turbine's condition.
type Scheduled struct {
	day   int
	month int
}

func NewScheduled(day, month int) (*Scheduled, error) {
	if day < 1 || day > 31 {
		return nil, fmt.Errorf("%w: scheduled day %d out of range [1,31]", model.ErrConfig, day)
	}
	if month < 1 || month > 12 {
		return nil, fmt.Errorf("%w: scheduled month %d out of range [1,12]", model.ErrConfig, month)
	}
	return &Scheduled{day: day, month: month}, nil
}

func (p *Scheduled) Name() string { return "scheduled" }

// Decide is true for every record on the configured day. Within that day the
// engine's pending-visit guard prevents repeated triggers.
func (p *Scheduled) Decide(ctx Context) bool {
	return int(ctx.Timestamp.Month()) == p.month && ctx.Timestamp.Day() == p.day
}
