package quantity

import "fmt"

// Length is a linear distance stored in meters.
type Length struct {
	m float64
}

// Meters creates a Length from meters.
func Meters(v float64) Length { return Length{m: v} }

// Millimeters creates a Length from millimeters.
func Millimeters(v float64) Length { return Length{m: v / 1_000.0} }

// Meters returns the length in meters.
func (l Length) Meters() float64 { return l.m }

// Millimeters returns the length in millimeters.
func (l Length) Millimeters() float64 { return l.m * 1_000.0 }

// Add returns l + o.
func (l Length) Add(o Length) Length { return Length{m: l.m + o.m} }

// Sub returns l - o.
func (l Length) Sub(o Length) Length { return Length{m: l.m - o.m} }

// Mul scales the length by a dimensionless factor.
func (l Length) Mul(k float64) Length { return Length{m: l.m * k} }

// Div divides the length by a dimensionless factor.
func (l Length) Div(k float64) Length { return Length{m: l.m / k} }

func (l Length) String() string { return fmt.Sprintf("%g m", l.m) }
