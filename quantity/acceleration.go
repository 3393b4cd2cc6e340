package quantity

import (
	"fmt"
	"math"
)

// Acceleration is a linear acceleration stored in m/s².
type Acceleration struct {
	mps2 float64
}

// MetersPerSecond2 creates an Acceleration from m/s².
func MetersPerSecond2(v float64) Acceleration { return Acceleration{mps2: v} }

// MillimetersPerSecond2 creates an Acceleration from mm/s².
func MillimetersPerSecond2(v float64) Acceleration { return Acceleration{mps2: v / 1_000.0} }

func (a Acceleration) MetersPerSecond2() float64 { return a.mps2 }

func (a Acceleration) MillimetersPerSecond2() float64 { return a.mps2 * 1_000.0 }

func (a Acceleration) Add(o Acceleration) Acceleration { return Acceleration{mps2: a.mps2 + o.mps2} }

func (a Acceleration) Sub(o Acceleration) Acceleration { return Acceleration{mps2: a.mps2 - o.mps2} }

func (a Acceleration) Mul(k float64) Acceleration { return Acceleration{mps2: a.mps2 * k} }

func (a Acceleration) Div(k float64) Acceleration { return Acceleration{mps2: a.mps2 / k} }

func (a Acceleration) String() string { return fmt.Sprintf("%g m/s²", a.mps2) }

// AngularAcceleration is stored in rad/s².
type AngularAcceleration struct {
	radps2 float64
}

// RadiansPerSecond2 creates an AngularAcceleration from rad/s².
func RadiansPerSecond2(v float64) AngularAcceleration { return AngularAcceleration{radps2: v} }

// RPMPerSecond creates an AngularAcceleration from rpm/s, the unit motor
// ramp settings are usually given in. 1 rpm/s = 2π/60 rad/s².
func RPMPerSecond(v float64) AngularAcceleration {
	return AngularAcceleration{radps2: v * 2 * math.Pi / 60.0}
}

// AngularAccelerationFromDeltaOverTime is α = Δω / t. seconds must be > 0.
func AngularAccelerationFromDeltaOverTime(delta AngularVelocity, seconds float64) (AngularAcceleration, error) {
	if err := RequirePositive("seconds", seconds); err != nil {
		return AngularAcceleration{}, err
	}
	return AngularAcceleration{radps2: delta.radps / seconds}, nil
}

// AngularAccelerationForRamp is the acceleration of a linear ramp from
// standstill to target in seconds.
func AngularAccelerationForRamp(target AngularVelocity, seconds float64) (AngularAcceleration, error) {
	return AngularAccelerationFromDeltaOverTime(target, seconds)
}

func (a AngularAcceleration) RadiansPerSecond2() float64 { return a.radps2 }

func (a AngularAcceleration) RPMPerSecond() float64 { return a.radps2 * 60.0 / (2 * math.Pi) }

func (a AngularAcceleration) Add(o AngularAcceleration) AngularAcceleration {
	return AngularAcceleration{radps2: a.radps2 + o.radps2}
}

func (a AngularAcceleration) Sub(o AngularAcceleration) AngularAcceleration {
	return AngularAcceleration{radps2: a.radps2 - o.radps2}
}

func (a AngularAcceleration) Mul(k float64) AngularAcceleration {
	return AngularAcceleration{radps2: a.radps2 * k}
}

func (a AngularAcceleration) Div(k float64) AngularAcceleration {
	return AngularAcceleration{radps2: a.radps2 / k}
}

func (a AngularAcceleration) String() string { return fmt.Sprintf("%g rad/s²", a.radps2) }
