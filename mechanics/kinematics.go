package mechanics

import (
	"math"

	"github.com/corey/mechsize/geometry"
	"github.com/corey/mechsize/quantity"
)

// AccelerationToAngularForScrew converts carriage acceleration to screw
// angular acceleration, a·2π/lead.
func AccelerationToAngularForScrew(a quantity.Acceleration, lead quantity.Length) (quantity.AngularAcceleration, error) {
	if err := quantity.RequirePositive("lead", lead.Meters()); err != nil {
		return quantity.AngularAcceleration{}, err
	}
	return quantity.RadiansPerSecond2(a.MetersPerSecond2() * 2 * math.Pi / lead.Meters()), nil
}

// AccelerationToAngularForPulley converts belt acceleration to pulley angular
// acceleration, a/r.
func AccelerationToAngularForPulley(a quantity.Acceleration, r geometry.RadiusLike) (quantity.AngularAcceleration, error) {
	rm := r.ToRadius().Meters()
	if err := quantity.RequirePositive("radius", rm); err != nil {
		return quantity.AngularAcceleration{}, err
	}
	return quantity.RadiansPerSecond2(a.MetersPerSecond2() / rm), nil
}

// AngularAccelerationForRamp is the constant acceleration of a linear speed
// ramp from standstill to target in seconds, ω/t.
func AngularAccelerationForRamp(target quantity.AngularVelocity, seconds float64) (quantity.AngularAcceleration, error) {
	return quantity.AngularAccelerationForRamp(target, seconds)
}

// VelocityToAngularForScrew converts carriage speed to screw speed, v/lead·2π.
// A 10 mm lead screw moving the carriage at 6000 mm/min turns at 600 rpm.
func VelocityToAngularForScrew(v quantity.Velocity, lead quantity.Length) (quantity.AngularVelocity, error) {
	if err := quantity.RequirePositive("lead", lead.Meters()); err != nil {
		return quantity.AngularVelocity{}, err
	}
	return quantity.RadiansPerSecond(v.MetersPerSecond() / lead.Meters() * 2 * math.Pi), nil
}

// VelocityToAngularForPulley converts belt speed to pulley speed, v/r.
func VelocityToAngularForPulley(v quantity.Velocity, r geometry.RadiusLike) (quantity.AngularVelocity, error) {
	rm := r.ToRadius().Meters()
	if err := quantity.RequirePositive("radius", rm); err != nil {
		return quantity.AngularVelocity{}, err
	}
	return quantity.RadiansPerSecond(v.MetersPerSecond() / rm), nil
}
