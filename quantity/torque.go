package quantity

import "fmt"

// Torque is stored in newton meters.
type Torque struct {
	nm float64
}

// NewtonMeters creates a Torque from N·m.
func NewtonMeters(v float64) Torque { return Torque{nm: v} }

// NewtonMillimeters creates a Torque from N·mm.
func NewtonMillimeters(v float64) Torque { return Torque{nm: v / 1_000.0} }

// NewtonMeters returns the torque in N·m.
func (t Torque) NewtonMeters() float64 { return t.nm }

// NewtonMillimeters returns the torque in N·mm.
func (t Torque) NewtonMillimeters() float64 { return t.nm * 1_000.0 }

func (t Torque) Add(o Torque) Torque { return Torque{nm: t.nm + o.nm} }

func (t Torque) Sub(o Torque) Torque { return Torque{nm: t.nm - o.nm} }

func (t Torque) Mul(k float64) Torque { return Torque{nm: t.nm * k} }

func (t Torque) Div(k float64) Torque { return Torque{nm: t.nm / k} }

// MulRatio scales the torque by a gear ratio (torque multiplication across a
// reduction).
func (t Torque) MulRatio(r GearRatio) Torque { return Torque{nm: t.nm * r.r} }

func (t Torque) String() string { return fmt.Sprintf("%.5f N·m", t.nm) }
