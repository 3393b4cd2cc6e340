package quantity

import "fmt"

// Mass is stored in kilograms.
type Mass struct {
	kg float64
}

// Kilograms creates a Mass from kilograms.
func Kilograms(v float64) Mass { return Mass{kg: v} }

// Grams creates a Mass from grams.
func Grams(v float64) Mass { return Mass{kg: v / 1_000.0} }

// Kilograms returns the mass in kilograms.
func (m Mass) Kilograms() float64 { return m.kg }

// Grams returns the mass in grams.
func (m Mass) Grams() float64 { return m.kg * 1_000.0 }

func (m Mass) Add(o Mass) Mass { return Mass{kg: m.kg + o.kg} }

func (m Mass) Sub(o Mass) Mass { return Mass{kg: m.kg - o.kg} }

func (m Mass) Mul(k float64) Mass { return Mass{kg: m.kg * k} }

func (m Mass) Div(k float64) Mass { return Mass{kg: m.kg / k} }

func (m Mass) String() string { return fmt.Sprintf("%g kg", m.kg) }

// MulAcceleration applies F = m·a.
func (m Mass) MulAcceleration(a Acceleration) Force {
	return Force{n: m.kg * a.mps2}
}
