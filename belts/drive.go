package belts

import (
	"fmt"
	"math"

	"github.com/corey/mechsize/quantity"
)

// Bisection stops once the bracket is narrower than this, in meters.
const centerDistanceResolution = 1e-9

// span holds the resolved two-pulley geometry shared by the drive formulas.
type span struct {
	c      float64 // center distance, m
	dl, ds float64 // larger and smaller pitch diameter, m
	small  Pulley
}

func resolve(center quantity.Length, a, b Pulley) (span, error) {
	if err := quantity.RequirePositive("center distance", center.Meters()); err != nil {
		return span{}, err
	}
	da := a.pitchDiameter().Meters()
	db := b.pitchDiameter().Meters()
	if err := quantity.RequirePositive("pitch diameter", da); err != nil {
		return span{}, err
	}
	if err := quantity.RequirePositive("pitch diameter", db); err != nil {
		return span{}, err
	}

	s := span{c: center.Meters(), dl: da, ds: db, small: b}
	if db > da {
		s.dl, s.ds, s.small = db, da, a
	}
	if half := (s.dl - s.ds) / 2; s.c < half {
		return span{}, fmt.Errorf("%w: center distance %gmm is below %gmm, half the pitch diameter difference",
			ErrInfeasibleGeometry, s.c*1e3, half*1e3)
	}
	return s, nil
}

// asinArg is (D_L−D_S)/(2C) clamped to [-1, 1] so a center distance at the
// feasibility boundary survives rounding.
func (s span) asinArg() float64 {
	return math.Max(-1, math.Min(1, (s.dl-s.ds)/(2*s.c)))
}

func (s span) length() float64 {
	half := (s.dl - s.ds) / 2
	straight := math.Sqrt(math.Max(0, s.c*s.c-half*half))
	return math.Pi/2*(s.dl+s.ds) + (s.dl-s.ds)*math.Asin(s.asinArg()) + 2*straight
}

// Length is the pitch length of a belt running over pulleys a and b at the
// given center distance:
//
//	L = (π/2)(D_L+D_S) + (D_L−D_S)·asin((D_L−D_S)/2C) + 2·√(C² − ((D_L−D_S)/2)²)
//
// The result does not depend on argument order. A center distance below half
// the pitch diameter difference fails with ErrInfeasibleGeometry; exactly
// half succeeds.
func Length(center quantity.Length, a, b Pulley) (quantity.Length, error) {
	s, err := resolve(center, a, b)
	if err != nil {
		return quantity.Length{}, err
	}
	return quantity.Meters(s.length()), nil
}

// WrapAngle is the arc of contact on the smaller pulley in radians,
// π − 2·asin((D_L−D_S)/2C).
func WrapAngle(center quantity.Length, a, b Pulley) (float64, error) {
	s, err := resolve(center, a, b)
	if err != nil {
		return 0, err
	}
	return math.Pi - 2*math.Asin(s.asinArg()), nil
}

// TeethInMesh is the number of belt teeth engaged with the smaller pulley.
// Manufacturers derate belt capacity below six teeth in mesh.
func TeethInMesh(center quantity.Length, a, b Pulley) (float64, error) {
	s, err := resolve(center, a, b)
	if err != nil {
		return 0, err
	}
	wrap := math.Pi - 2*math.Asin(s.asinArg())
	return wrap / (2 * math.Pi) * float64(s.small.teeth), nil
}

// SpeedRatio is the reduction from driver to driven pulley, driven teeth over
// driver teeth.
func SpeedRatio(driver, driven Pulley) (quantity.GearRatio, error) {
	if driver.teeth <= 0 || driven.teeth <= 0 {
		return quantity.GearRatio{}, fmt.Errorf("%w: teeth must be > 0, got %d and %d",
			quantity.ErrNonPositive, driver.teeth, driven.teeth)
	}
	if !SamePitch(driver.pitch, driven.pitch) {
		return quantity.GearRatio{}, quantity.Invalidf("driver pitch %gmm does not match driven pitch %gmm",
			driver.pitch.Millimeters(), driven.pitch.Millimeters())
	}
	return quantity.NewGearRatio(float64(driven.teeth) / float64(driver.teeth))
}

// CenterDistance solves Length for the center distance at which belt fits
// pulleys a and b. All three must share a pitch. A belt shorter than the
// tightest possible wrap fails with ErrInfeasibleGeometry.
func CenterDistance(belt Belt, a, b Pulley) (quantity.Length, error) {
	if err := quantity.RequirePositive("belt length", belt.length.Meters()); err != nil {
		return quantity.Length{}, err
	}
	for _, p := range []Pulley{a, b} {
		if !SamePitch(p.pitch, belt.pitch) {
			return quantity.Length{}, quantity.Invalidf("pulley pitch %gmm does not match belt pitch %gmm",
				p.pitch.Millimeters(), belt.pitch.Millimeters())
		}
	}

	target := belt.length.Meters()
	lo, minLen, err := tightest(a, b)
	if err != nil {
		return quantity.Length{}, err
	}
	hi := target / 2

	at := func(c float64) (float64, error) {
		s, err := resolve(quantity.Meters(c), a, b)
		if err != nil {
			return 0, err
		}
		return s.length(), nil
	}

	if !fits(target, minLen) || hi < lo {
		return quantity.Length{}, fmt.Errorf("%w: %gmm belt is shorter than the %gmm minimum wrap",
			ErrInfeasibleGeometry, target*1e3, minLen*1e3)
	}

	for i := 0; i < 200 && hi-lo > centerDistanceResolution; i++ {
		mid := (lo + hi) / 2
		l, err := at(mid)
		if err != nil {
			return quantity.Length{}, err
		}
		if l < target {
			lo = mid
		} else {
			hi = mid
		}
	}
	return quantity.Meters((lo + hi) / 2), nil
}

// MinimumLength is the shortest belt that fits pulleys a and b: its pitch
// length at the tightest feasible center distance, (D_L−D_S)/2.
func MinimumLength(a, b Pulley) (quantity.Length, error) {
	_, l, err := tightest(a, b)
	if err != nil {
		return quantity.Length{}, err
	}
	return quantity.Meters(l), nil
}

// tightest returns the smallest feasible center distance for a and b and the
// belt length there, both in meters.
func tightest(a, b Pulley) (c, length float64, err error) {
	c = math.Abs(a.pitchDiameter().Meters()-b.pitchDiameter().Meters()) / 2
	if c == 0 {
		c = centerDistanceResolution
	}
	s, err := resolve(quantity.Meters(c), a, b)
	if err != nil {
		return 0, 0, err
	}
	return c, s.length(), nil
}

// fits reports whether a belt of length l (meters) is long enough for a and
// b, using the same comparison as CenterDistance.
func fits(l, minLen float64) bool { return !(l < minLen) }

// SamePitch reports whether two tooth pitches are equal to within one part
// in 1e9, so "8mm" and "0.008m" compare equal.
func SamePitch(a, b quantity.Length) bool {
	return math.Abs(a.Meters()-b.Meters()) <= 1e-9*math.Max(a.Meters(), b.Meters())
}
