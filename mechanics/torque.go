package mechanics

import (
	"fmt"
	"math"

	"github.com/corey/mechsize/geometry"
	"github.com/corey/mechsize/quantity"
)

// RequiredTorque is τ = J·α.
func RequiredTorque(j quantity.MomentOfInertia, alpha quantity.AngularAcceleration) quantity.Torque {
	return j.MulAngularAcceleration(alpha)
}

// RequiredTorqueForRamp is the torque to bring j from standstill to target
// in seconds with a linear ramp.
func RequiredTorqueForRamp(j quantity.MomentOfInertia, target quantity.AngularVelocity, seconds float64) (quantity.Torque, error) {
	alpha, err := AngularAccelerationForRamp(target, seconds)
	if err != nil {
		return quantity.Torque{}, err
	}
	return RequiredTorque(j, alpha), nil
}

// RequiredTorqueForScrew is the torque to give a screw-driven carriage the
// linear acceleration a.
func RequiredTorqueForScrew(j quantity.MomentOfInertia, a quantity.Acceleration, lead quantity.Length) (quantity.Torque, error) {
	alpha, err := AccelerationToAngularForScrew(a, lead)
	if err != nil {
		return quantity.Torque{}, err
	}
	return RequiredTorque(j, alpha), nil
}

// RequiredTorqueForPulley is the torque to give a belt-driven carriage the
// linear acceleration a.
func RequiredTorqueForPulley(j quantity.MomentOfInertia, a quantity.Acceleration, r geometry.RadiusLike) (quantity.Torque, error) {
	alpha, err := AccelerationToAngularForPulley(a, r)
	if err != nil {
		return quantity.Torque{}, err
	}
	return RequiredTorque(j, alpha), nil
}

// ForceToTorqueForScrew is the screw torque that produces axial force f,
// F·lead/(2π·η). efficiency must be in (0, 1].
func ForceToTorqueForScrew(f quantity.Force, lead quantity.Length, efficiency float64) (quantity.Torque, error) {
	if err := quantity.RequirePositive("lead", lead.Meters()); err != nil {
		return quantity.Torque{}, err
	}
	if err := quantity.RequirePositive("efficiency", efficiency); err != nil {
		return quantity.Torque{}, err
	}
	if efficiency > 1 {
		return quantity.Torque{}, fmt.Errorf("%w: efficiency must be <= 1, got %g", quantity.ErrInvalidArgument, efficiency)
	}
	return quantity.NewtonMeters(f.Newtons() * lead.Meters() / (2 * math.Pi * efficiency)), nil
}
