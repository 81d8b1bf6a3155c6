package policy

import "time"

// Context carries everything a policy may look at for one step of the walk.
// PressureBar is the cooling-system pressure after the step's decay has been
// applied.
type Context struct {
	Index       int
	Timestamp   time.Time
	PressureBar float64
	WindSpeed   float64
	PriceEur    float64
}

// Policy answers "send the maintenance vessel now?" for one step.
// Implementations are stateless: Decide must be a pure function of the
// context and the policy's construction parameters. The engine owns all
// simulation state, including the pending-visit guard that keeps a policy
// from re-triggering while a visit is in progress.
type Policy interface {
	Name() string
	Decide(ctx Context) bool
}
