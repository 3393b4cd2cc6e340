// Package mechanics holds the sizing formulas: inertia of common bodies,
// gear-ratio referral, linear to angular kinematics, and required torque.
//
// Every function is pure. Any argument used as a denominator (lead, radius,
// ramp time, efficiency) must be strictly positive; otherwise the function
// returns an error wrapping quantity.ErrInvalidArgument instead of an
// infinite or NaN result.
package mechanics

import (
	"math"

	"github.com/corey/mechsize/geometry"
	"github.com/corey/mechsize/quantity"
)

// EarthGravity is standard gravity as used for vertical-axis loads.
var EarthGravity = quantity.MetersPerSecond2(9.81)

// CylinderInertia is the inertia of a solid cylinder about its axis, ½·m·r².
func CylinderInertia(m quantity.Mass, r geometry.RadiusLike) quantity.MomentOfInertia {
	rm := r.ToRadius().Meters()
	return quantity.KilogramMeters2(0.5 * m.Kilograms() * rm * rm)
}

// HollowCylinderInertia is the inertia of a thick-walled tube, ½·m·(ro²+ri²).
func HollowCylinderInertia(m quantity.Mass, outer, inner geometry.RadiusLike) quantity.MomentOfInertia {
	ro := outer.ToRadius().Meters()
	ri := inner.ToRadius().Meters()
	return quantity.KilogramMeters2(0.5 * m.Kilograms() * (ro*ro + ri*ri))
}

// LinearInertia is the rotational inertia a screw of the given lead sees from
// a translating mass, m·(lead/2π)².
func LinearInertia(m quantity.Mass, lead quantity.Length) (quantity.MomentOfInertia, error) {
	if err := quantity.RequirePositive("lead", lead.Meters()); err != nil {
		return quantity.MomentOfInertia{}, err
	}
	k := lead.Meters() / (2 * math.Pi)
	return quantity.KilogramMeters2(m.Kilograms() * k * k), nil
}

// ReferredTo reflects j through a transmission to its input shaft, j·n².
// With n = input/output speed, a reduction (n > 1) makes the load look
// heavier to the motor.
func ReferredTo(j quantity.MomentOfInertia, n quantity.GearRatio) quantity.MomentOfInertia {
	return j.Mul(n.Value() * n.Value())
}

// InertiaTerm is one inertia together with the ratio between its shaft and
// the shaft the total is referred to.
type InertiaTerm struct {
	Inertia quantity.MomentOfInertia
	Ratio   quantity.GearRatio
}

// Term pairs j with ratio n.
func Term(j quantity.MomentOfInertia, n quantity.GearRatio) InertiaTerm {
	return InertiaTerm{Inertia: j, Ratio: n}
}

// TotalInertia sums the referred inertia of every term. A zero inertia adds
// nothing regardless of its ratio.
func TotalInertia(terms ...InertiaTerm) quantity.MomentOfInertia {
	var total quantity.MomentOfInertia
	for _, t := range terms {
		if t.Inertia.KilogramMeters2() == 0 {
			continue
		}
		total = total.Add(ReferredTo(t.Inertia, t.Ratio))
	}
	return total
}
