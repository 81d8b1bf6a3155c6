package model

// Status is a human-friendly operating mode for a timestep.
// Keep these values stable; they are intended for CSV output.
type Status string

const (
	StatusProducing   Status = "PRODUCING"
	StatusVisit       Status = "VISIT"
	StatusLowPressure Status = "LOW_PRESSURE"
)

// StatusFor classifies one annotated step. A visit takes precedence over low
// pressure: both exclude the step from revenue, but only the visit was paid for.
func StatusFor(pressureBar, minPressureBar float64, visit bool) Status {
	switch {
	case visit:
		return StatusVisit
	case pressureBar < minPressureBar:
		return StatusLowPressure
	default:
		return StatusProducing
	}
}
