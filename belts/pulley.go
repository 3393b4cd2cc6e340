// Package belts models synchronous (timing) belt drives: toothed pulleys,
// belts with a whole number of teeth, and the two-pulley geometry linking
// center distance to belt pitch length.
package belts

import (
	"fmt"
	"math"

	"github.com/corey/mechsize/geometry"
	"github.com/corey/mechsize/quantity"
)

var (
	// ErrInfeasibleGeometry reports a center distance too short for the belt
	// to span both pulleys.
	ErrInfeasibleGeometry = fmt.Errorf("%w: infeasible geometry", quantity.ErrInvalidArgument)

	// ErrNotPitchMultiple reports a belt length that is not a whole number of
	// pitches.
	ErrNotPitchMultiple = fmt.Errorf("%w: length is not an exact multiple of pitch", quantity.ErrInvalidArgument)
)

// Pulley is a toothed timing pulley.
type Pulley struct {
	pitch quantity.Length
	teeth int
	width quantity.Length
}

// NewPulley validates pitch, teeth and width independently; each must be > 0.
func NewPulley(pitch quantity.Length, teeth int, width quantity.Length) (Pulley, error) {
	if err := quantity.RequirePositive("pitch", pitch.Meters()); err != nil {
		return Pulley{}, err
	}
	if teeth <= 0 {
		return Pulley{}, fmt.Errorf("%w: teeth must be > 0, got %d", quantity.ErrNonPositive, teeth)
	}
	if err := quantity.RequirePositive("width", width.Meters()); err != nil {
		return Pulley{}, err
	}
	return Pulley{pitch: pitch, teeth: teeth, width: width}, nil
}

// MustPulley is NewPulley that panics on invalid input.
func MustPulley(pitch quantity.Length, teeth int, width quantity.Length) Pulley {
	p, err := NewPulley(pitch, teeth, width)
	if err != nil {
		panic(err)
	}
	return p
}

func (p Pulley) Pitch() quantity.Length { return p.pitch }

func (p Pulley) Teeth() int { return p.teeth }

func (p Pulley) Width() quantity.Length { return p.width }

// PitchDiameter is teeth·pitch/π.
func (p Pulley) PitchDiameter() geometry.Diameter {
	return geometry.DiameterOf(p.pitchDiameter())
}

// PitchRadius is half the pitch diameter.
func (p Pulley) PitchRadius() geometry.Radius { return p.PitchDiameter().ToRadius() }

// ToRadius lets a pulley stand in wherever a radius is accepted.
func (p Pulley) ToRadius() geometry.Radius { return p.PitchRadius() }

func (p Pulley) pitchDiameter() quantity.Length {
	return p.pitch.Mul(float64(p.teeth) / math.Pi)
}

func (p Pulley) String() string {
	return fmt.Sprintf("%dT %.3gmm pitch (PD %.2fmm)", p.teeth, p.pitch.Millimeters(), p.pitchDiameter().Millimeters())
}
