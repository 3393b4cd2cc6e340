package quantity

import (
	"fmt"
	"math"
	"time"
)

// Velocity is a linear speed stored in m/s.
type Velocity struct {
	mps float64
}

// MetersPerSecond creates a Velocity from m/s.
func MetersPerSecond(v float64) Velocity { return Velocity{mps: v} }

// MillimetersPerMinute creates a Velocity from mm/min, the unit CNC feed
// rates are usually quoted in.
func MillimetersPerMinute(v float64) Velocity { return Velocity{mps: v / 1_000.0 / 60.0} }

func (v Velocity) MetersPerSecond() float64 { return v.mps }

func (v Velocity) MillimetersPerMinute() float64 { return v.mps * 1_000.0 * 60.0 }

func (v Velocity) Add(o Velocity) Velocity { return Velocity{mps: v.mps + o.mps} }

func (v Velocity) Sub(o Velocity) Velocity { return Velocity{mps: v.mps - o.mps} }

func (v Velocity) Mul(k float64) Velocity { return Velocity{mps: v.mps * k} }

func (v Velocity) Div(k float64) Velocity { return Velocity{mps: v.mps / k} }

func (v Velocity) String() string { return fmt.Sprintf("%.5f m/s", v.mps) }

// AngularVelocity is a rotational speed stored in rad/s.
type AngularVelocity struct {
	radps float64
}

// RadiansPerSecond creates an AngularVelocity from rad/s.
func RadiansPerSecond(v float64) AngularVelocity { return AngularVelocity{radps: v} }

// DegreesPerSecond creates an AngularVelocity from °/s.
func DegreesPerSecond(v float64) AngularVelocity {
	return AngularVelocity{radps: v * math.Pi / 180.0}
}

// RPM creates an AngularVelocity from revolutions per minute.
func RPM(v float64) AngularVelocity { return AngularVelocity{radps: v * 2 * math.Pi / 60.0} }

func (w AngularVelocity) RadiansPerSecond() float64 { return w.radps }

func (w AngularVelocity) DegreesPerSecond() float64 { return w.radps * 180.0 / math.Pi }

func (w AngularVelocity) RPM() float64 { return w.radps * 60.0 / (2 * math.Pi) }

func (w AngularVelocity) Add(o AngularVelocity) AngularVelocity {
	return AngularVelocity{radps: w.radps + o.radps}
}

func (w AngularVelocity) Sub(o AngularVelocity) AngularVelocity {
	return AngularVelocity{radps: w.radps - o.radps}
}

func (w AngularVelocity) Mul(k float64) AngularVelocity { return AngularVelocity{radps: w.radps * k} }

func (w AngularVelocity) Div(k float64) AngularVelocity { return AngularVelocity{radps: w.radps / k} }

// MulRatio converts an output-shaft speed to the input shaft: ω_in = ω_out·n.
func (w AngularVelocity) MulRatio(r GearRatio) AngularVelocity {
	return AngularVelocity{radps: w.radps * r.r}
}

// DivRatio converts an input-shaft speed to the output shaft: ω_out = ω_in/n.
func (w AngularVelocity) DivRatio(r GearRatio) AngularVelocity {
	return AngularVelocity{radps: w.radps / r.r}
}

// DivDuration returns the constant angular acceleration that reaches w from
// standstill in d. d must be positive.
func (w AngularVelocity) DivDuration(d time.Duration) (AngularAcceleration, error) {
	if d <= 0 {
		return AngularAcceleration{}, fmt.Errorf("%w: duration must be > 0, got %s", ErrNonPositive, d)
	}
	return AngularAcceleration{radps2: w.radps / d.Seconds()}, nil
}

func (w AngularVelocity) String() string { return fmt.Sprintf("%.1f rpm", w.RPM()) }
