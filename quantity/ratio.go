package quantity

import (
	"fmt"
	"math"
)

// GearRatio is input speed divided by output speed across a transmission.
// A ratio above 1 is a speed reduction (torque multiplication) toward the
// load; below 1 is a step-up. The zero value is not a valid ratio; build one
// with NewGearRatio or use DirectDrive.
type GearRatio struct {
	r float64
}

// DirectDrive is the 1:1 ratio of a directly coupled load.
var DirectDrive = GearRatio{r: 1}

// NewGearRatio validates r > 0.
func NewGearRatio(r float64) (GearRatio, error) {
	if !(r > 0) || math.IsInf(r, 1) {
		return GearRatio{}, fmt.Errorf("%w: gear ratio must be > 0, got %g", ErrNonPositive, r)
	}
	return GearRatio{r: r}, nil
}

// MustGearRatio is NewGearRatio that panics on an invalid ratio.
func MustGearRatio(r float64) GearRatio {
	g, err := NewGearRatio(r)
	if err != nil {
		panic(err)
	}
	return g
}

// Value returns the dimensionless ratio.
func (g GearRatio) Value() float64 { return g.r }

// Inverse returns the ratio seen from the other side of the transmission.
func (g GearRatio) Inverse() GearRatio { return GearRatio{r: 1 / g.r} }

// Then chains two stages: the overall ratio of g followed by next.
func (g GearRatio) Then(next GearRatio) GearRatio { return GearRatio{r: g.r * next.r} }

func (g GearRatio) String() string { return fmt.Sprintf("%g:1", g.r) }
