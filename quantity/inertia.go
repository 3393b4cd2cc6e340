package quantity

import "fmt"

// gramMillimeter2 is one g·mm² in kg·m².
const gramMillimeter2 = 1e-9

// MomentOfInertia (J) is stored in kg·m². Motor datasheets often list rotor
// inertia in g·mm² or kg·cm²; convert through the constructors rather than by
// hand.
type MomentOfInertia struct {
	kgm2 float64
}

// KilogramMeters2 creates a MomentOfInertia from kg·m².
func KilogramMeters2(v float64) MomentOfInertia { return MomentOfInertia{kgm2: v} }

// GramMillimeters2 creates a MomentOfInertia from g·mm².
func GramMillimeters2(v float64) MomentOfInertia {
	return MomentOfInertia{kgm2: v * gramMillimeter2}
}

// KilogramCentimeters2 creates a MomentOfInertia from kg·cm².
func KilogramCentimeters2(v float64) MomentOfInertia { return MomentOfInertia{kgm2: v * 1e-4} }

func (j MomentOfInertia) KilogramMeters2() float64 { return j.kgm2 }

func (j MomentOfInertia) GramMillimeters2() float64 { return j.kgm2 / gramMillimeter2 }

func (j MomentOfInertia) KilogramCentimeters2() float64 { return j.kgm2 / 1e-4 }

func (j MomentOfInertia) Add(o MomentOfInertia) MomentOfInertia {
	return MomentOfInertia{kgm2: j.kgm2 + o.kgm2}
}

func (j MomentOfInertia) Sub(o MomentOfInertia) MomentOfInertia {
	return MomentOfInertia{kgm2: j.kgm2 - o.kgm2}
}

func (j MomentOfInertia) Mul(k float64) MomentOfInertia { return MomentOfInertia{kgm2: j.kgm2 * k} }

func (j MomentOfInertia) Div(k float64) MomentOfInertia { return MomentOfInertia{kgm2: j.kgm2 / k} }

// MulAngularAcceleration applies τ = J·α.
func (j MomentOfInertia) MulAngularAcceleration(a AngularAcceleration) Torque {
	return Torque{nm: j.kgm2 * a.radps2}
}

func (j MomentOfInertia) String() string { return fmt.Sprintf("%.5e kg·m²", j.kgm2) }
