package quantity

import (
	"math"
	"strconv"
	"strings"
)

// Unit tables map a lower-cased unit suffix to its factor into the canonical
// SI unit of the type.
var (
	lengthUnits = map[string]float64{
		"m":  1,
		"cm": 1e-2,
		"mm": 1e-3,
		"in": 0.0254,
	}
	massUnits = map[string]float64{
		"kg": 1,
		"g":  1e-3,
	}
	forceUnits = map[string]float64{
		"n":  1,
		"kn": 1e3,
	}
	inertiaUnits = map[string]float64{
		"kg·m²":  1,
		"kgm2":   1,
		"kgm^2":  1,
		"kg*m^2": 1,
		"kg·cm²": 1e-4,
		"kgcm2":  1e-4,
		"g·mm²":  gramMillimeter2,
		"gmm2":   gramMillimeter2,
	}
	angularVelocityUnits = map[string]float64{
		"rpm":   2 * math.Pi / 60.0,
		"rad/s": 1,
		"deg/s": math.Pi / 180.0,
		"°/s":   math.Pi / 180.0,
	}
	accelerationUnits = map[string]float64{
		"m/s2":  1,
		"m/s²":  1,
		"mm/s2": 1e-3,
		"mm/s²": 1e-3,
	}
	velocityUnits = map[string]float64{
		"m/s":    1,
		"mm/s":   1e-3,
		"m/min":  1 / 60.0,
		"mm/min": 1e-3 / 60.0,
	}
)

// ParseLength parses a literal such as "165.5mm" or "0.1 m".
func ParseLength(s string) (Length, error) {
	v, err := parseLiteral("length", s, lengthUnits)
	return Length{m: v}, err
}

// ParseMass parses a literal such as "250g" or "2 kg".
func ParseMass(s string) (Mass, error) {
	v, err := parseLiteral("mass", s, massUnits)
	return Mass{kg: v}, err
}

// ParseForce parses a literal such as "245N" or "1.2 kN".
func ParseForce(s string) (Force, error) {
	v, err := parseLiteral("force", s, forceUnits)
	return Force{n: v}, err
}

// ParseMomentOfInertia parses a literal such as "1.2e-4 kgm2" or "350 g·mm²".
func ParseMomentOfInertia(s string) (MomentOfInertia, error) {
	v, err := parseLiteral("moment of inertia", s, inertiaUnits)
	return MomentOfInertia{kgm2: v}, err
}

// ParseAngularVelocity parses a literal such as "3000rpm" or "10 rad/s".
func ParseAngularVelocity(s string) (AngularVelocity, error) {
	v, err := parseLiteral("angular velocity", s, angularVelocityUnits)
	return AngularVelocity{radps: v}, err
}

// ParseAcceleration parses a literal such as "1.5 m/s2".
func ParseAcceleration(s string) (Acceleration, error) {
	v, err := parseLiteral("acceleration", s, accelerationUnits)
	return Acceleration{mps2: v}, err
}

// ParseVelocity parses a literal such as "5000 mm/min" or "0.2m/s".
func ParseVelocity(s string) (Velocity, error) {
	v, err := parseLiteral("velocity", s, velocityUnits)
	return Velocity{mps: v}, err
}

// parseLiteral splits s into the longest numeric prefix and a unit suffix and
// returns the value converted to the canonical unit. The zero value is
// returned alongside any error.
func parseLiteral(kind, s string, units map[string]float64) (float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, Invalidf("parse %s: empty value", kind)
	}

	var (
		num   float64
		split = -1
	)
	for i := len(s); i > 0; i-- {
		v, err := strconv.ParseFloat(strings.TrimSpace(s[:i]), 64)
		if err == nil {
			num, split = v, i
			break
		}
	}
	if split < 0 {
		return 0, Invalidf("parse %s %q: no leading number", kind, s)
	}
	if math.IsNaN(num) || math.IsInf(num, 0) {
		return 0, Invalidf("parse %s %q: value is not finite", kind, s)
	}

	unit := strings.ToLower(strings.TrimSpace(s[split:]))
	if unit == "" {
		return 0, Invalidf("parse %s %q: missing unit", kind, s)
	}
	factor, ok := units[unit]
	if !ok {
		return 0, Invalidf("parse %s %q: unknown unit %q", kind, s, unit)
	}
	return num * factor, nil
}
