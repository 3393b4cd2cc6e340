// Package geometry provides radius and diameter as distinct types so a
// formula can never confuse the two.
package geometry

import (
	"fmt"
	"math"

	"github.com/corey/mechsize/quantity"
)

// RadiusLike is anything a formula can reduce to a radius. Both Radius and
// Diameter implement it.
type RadiusLike interface {
	ToRadius() Radius
}

// Radius is a circle radius.
type Radius struct {
	l quantity.Length
}

// Diameter is a circle diameter.
type Diameter struct {
	l quantity.Length
}

// NewRadius wraps l as a radius. l must be > 0.
func NewRadius(l quantity.Length) (Radius, error) {
	if err := quantity.RequirePositive("radius", l.Meters()); err != nil {
		return Radius{}, err
	}
	return Radius{l: l}, nil
}

// NewDiameter wraps l as a diameter. l must be > 0.
func NewDiameter(l quantity.Length) (Diameter, error) {
	if err := quantity.RequirePositive("diameter", l.Meters()); err != nil {
		return Diameter{}, err
	}
	return Diameter{l: l}, nil
}

// RadiusOf wraps l without validation. It is meant for lengths derived from
// already validated inputs, such as a pulley's pitch radius.
func RadiusOf(l quantity.Length) Radius { return Radius{l: l} }

// DiameterOf is the unvalidated counterpart of NewDiameter.
func DiameterOf(l quantity.Length) Diameter { return Diameter{l: l} }

// MustRadius is NewRadius that panics on invalid input.
func MustRadius(l quantity.Length) Radius {
	r, err := NewRadius(l)
	if err != nil {
		panic(err)
	}
	return r
}

// MustDiameter is NewDiameter that panics on invalid input.
func MustDiameter(l quantity.Length) Diameter {
	d, err := NewDiameter(l)
	if err != nil {
		panic(err)
	}
	return d
}

func (r Radius) Length() quantity.Length { return r.l }

func (r Radius) Meters() float64 { return r.l.Meters() }

func (r Radius) Millimeters() float64 { return r.l.Millimeters() }

func (r Radius) ToRadius() Radius { return r }

func (r Radius) ToDiameter() Diameter { return Diameter{l: r.l.Mul(2)} }

// Circumference is 2πr.
func (r Radius) Circumference() quantity.Length { return r.l.Mul(2 * math.Pi) }

// Area is πr² in m².
func (r Radius) Area() float64 { return math.Pi * r.l.Meters() * r.l.Meters() }

func (r Radius) Add(o Radius) Radius { return Radius{l: r.l.Add(o.l)} }

func (r Radius) Sub(o Radius) Radius { return Radius{l: r.l.Sub(o.l)} }

func (r Radius) String() string { return fmt.Sprintf("r=%s", r.l) }

func (d Diameter) Length() quantity.Length { return d.l }

func (d Diameter) Meters() float64 { return d.l.Meters() }

func (d Diameter) Millimeters() float64 { return d.l.Millimeters() }

func (d Diameter) ToRadius() Radius { return Radius{l: d.l.Div(2)} }

// Circumference is πd.
func (d Diameter) Circumference() quantity.Length { return d.l.Mul(math.Pi) }

// Area is πd²/4 in m².
func (d Diameter) Area() float64 { return math.Pi * d.l.Meters() * d.l.Meters() / 4 }

func (d Diameter) Add(o Diameter) Diameter { return Diameter{l: d.l.Add(o.l)} }

func (d Diameter) Sub(o Diameter) Diameter { return Diameter{l: d.l.Sub(o.l)} }

func (d Diameter) String() string { return fmt.Sprintf("⌀%s", d.l) }
