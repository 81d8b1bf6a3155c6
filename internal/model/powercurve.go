package model

import (
	"fmt"
	"sort"
)

// CurvePoint is one row of a manufacturer power curve.
type CurvePoint struct {
	WindSpeedMS float64
	PowerMW     float64
}

// PowerCurve is a wind-speed to power lookup table, kept sorted by wind speed.
type PowerCurve []CurvePoint

// NewPowerCurve copies and sorts the given points.
func NewPowerCurve(points []CurvePoint) (PowerCurve, error) {
	if len(points) == 0 {
		return nil, fmt.Errorf("%w: empty power curve", ErrConfig)
	}
	c := make(PowerCurve, len(points))
	copy(c, points)
	sort.Slice(c, func(i, j int) bool { return c[i].WindSpeedMS < c[j].WindSpeedMS })
	return c, nil
}

// PowerAt returns the power of the curve entry whose wind speed is nearest
// (by absolute difference) to windSpeed. Ties go to the lower entry.
func (c PowerCurve) PowerAt(windSpeed float64) float64 {
	if len(c) == 0 {
		return 0
	}
	i := sort.Search(len(c), func(i int) bool { return c[i].WindSpeedMS >= windSpeed })
	if i == 0 {
		return c[0].PowerMW
	}
	if i == len(c) {
		return c[len(c)-1].PowerMW
	}
	if windSpeed-c[i-1].WindSpeedMS <= c[i].WindSpeedMS-windSpeed {
		return c[i-1].PowerMW
	}
	return c[i].PowerMW
}

// MaxPowerMW returns the largest power value on the curve.
func (c PowerCurve) MaxPowerMW() float64 {
	max := 0.0
	for _, p := range c {
		if p.PowerMW > max {
			max = p.PowerMW
		}
	}
	return max
}
