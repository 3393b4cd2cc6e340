package mechanics

import (
	"math"
	"math/rand"
	"testing"

	"github.com/corey/mechsize/geometry"
	"github.com/corey/mechsize/quantity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mm(v float64) quantity.Length { return quantity.Millimeters(v) }

func TestCylinderInertia_Reference(t *testing.T) {
	j := CylinderInertia(quantity.Kilograms(2), geometry.MustRadius(quantity.Meters(0.1)))
	assert.InDelta(t, 0.01, j.KilogramMeters2(), 1e-12)

	// Same body described by its diameter.
	j = CylinderInertia(quantity.Kilograms(2), geometry.MustDiameter(quantity.Meters(0.2)))
	assert.InDelta(t, 0.01, j.KilogramMeters2(), 1e-12)
}

func TestHollowCylinderInertia(t *testing.T) {
	j := HollowCylinderInertia(quantity.Kilograms(1),
		geometry.MustRadius(mm(40)), geometry.MustDiameter(mm(60)))
	assert.InDelta(t, 0.5*(0.04*0.04+0.03*0.03), j.KilogramMeters2(), 1e-12)
}

func TestLinearInertia(t *testing.T) {
	j, err := LinearInertia(quantity.Kilograms(25), mm(10))
	require.NoError(t, err)
	k := 0.01 / (2 * math.Pi)
	assert.InDelta(t, 25*k*k, j.KilogramMeters2(), 1e-15)

	_, err = LinearInertia(quantity.Kilograms(25), mm(0))
	assert.ErrorIs(t, err, quantity.ErrInvalidArgument)
}

func TestReferredTo(t *testing.T) {
	j := quantity.KilogramMeters2(0.02)
	assert.Equal(t, j, ReferredTo(j, quantity.DirectDrive))
	assert.InDelta(t, 0.02/16, ReferredTo(j, quantity.MustGearRatio(0.25)).KilogramMeters2(), 1e-15)
	assert.InDelta(t, 0.32, ReferredTo(j, quantity.MustGearRatio(4)).KilogramMeters2(), 1e-12)
}

func TestTotalInertia_ZeroContributesNothing(t *testing.T) {
	j := quantity.KilogramMeters2(1e-4)
	total := TotalInertia(
		Term(j, quantity.DirectDrive),
		Term(quantity.KilogramMeters2(0), quantity.MustGearRatio(1e9)),
	)
	assert.Equal(t, j, total)
	assert.Equal(t, 0.0, TotalInertia().KilogramMeters2())
}

func TestTotalInertia_OrderIndependent(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for round := 0; round < 200; round++ {
		n := 2 + rng.Intn(6)
		terms := make([]InertiaTerm, n)
		for i := range terms {
			terms[i] = Term(
				quantity.KilogramMeters2(rng.Float64()*1e-2),
				quantity.MustGearRatio(0.1+rng.Float64()*10),
			)
		}
		want := TotalInertia(terms...).KilogramMeters2()

		shuffled := append([]InertiaTerm(nil), terms...)
		rng.Shuffle(len(shuffled), func(i, k int) { shuffled[i], shuffled[k] = shuffled[k], shuffled[i] })
		got := TotalInertia(shuffled...).KilogramMeters2()

		assert.InDelta(t, want, got, want*1e-12+1e-18, "round %d", round)
	}
}

func TestAccelerationToAngularForScrew(t *testing.T) {
	alpha, err := AccelerationToAngularForScrew(quantity.MetersPerSecond2(1), mm(10))
	require.NoError(t, err)
	assert.InDelta(t, 2*math.Pi/0.01, alpha.RadiansPerSecond2(), 1e-9)

	for _, lead := range []float64{0, -10} {
		_, err := AccelerationToAngularForScrew(quantity.MetersPerSecond2(1), mm(lead))
		assert.ErrorIs(t, err, quantity.ErrNonPositive)
	}
}

func TestAccelerationToAngularForPulley(t *testing.T) {
	alpha, err := AccelerationToAngularForPulley(quantity.MetersPerSecond2(2), geometry.MustDiameter(mm(40)))
	require.NoError(t, err)
	assert.InDelta(t, 100, alpha.RadiansPerSecond2(), 1e-9)

	// Zero-value radius slips past the constructors; the formula still refuses it.
	_, err = AccelerationToAngularForPulley(quantity.MetersPerSecond2(2), geometry.Radius{})
	assert.ErrorIs(t, err, quantity.ErrInvalidArgument)
}

func TestAngularAccelerationForRamp(t *testing.T) {
	alpha, err := AngularAccelerationForRamp(quantity.RPM(3000), 0.2)
	require.NoError(t, err)
	assert.InDelta(t, 15000, alpha.RPMPerSecond(), 1e-6)

	_, err = AngularAccelerationForRamp(quantity.RPM(3000), 0)
	assert.ErrorIs(t, err, quantity.ErrInvalidArgument)
}

func TestVelocityToAngularForScrew(t *testing.T) {
	w, err := VelocityToAngularForScrew(quantity.MillimetersPerMinute(6000), mm(10))
	require.NoError(t, err)
	assert.InDelta(t, 600, w.RPM(), 1e-9)

	_, err = VelocityToAngularForScrew(quantity.MillimetersPerMinute(6000), mm(0))
	assert.ErrorIs(t, err, quantity.ErrInvalidArgument)
}

func TestVelocityToAngularForPulley(t *testing.T) {
	w, err := VelocityToAngularForPulley(quantity.MetersPerSecond(1), geometry.MustRadius(mm(50)))
	require.NoError(t, err)
	assert.InDelta(t, 20, w.RadiansPerSecond(), 1e-9)
}

func TestRequiredTorque(t *testing.T) {
	tq := RequiredTorque(quantity.KilogramMeters2(0.01), quantity.RadiansPerSecond2(50))
	assert.InDelta(t, 0.5, tq.NewtonMeters(), 1e-12)
}

func TestRequiredTorqueForRamp(t *testing.T) {
	j := quantity.KilogramMeters2(1e-3)
	tq, err := RequiredTorqueForRamp(j, quantity.RPM(3000), 0.2)
	require.NoError(t, err)
	assert.InDelta(t, 1e-3*3000*2*math.Pi/60/0.2, tq.NewtonMeters(), 1e-9)

	_, err = RequiredTorqueForRamp(j, quantity.RPM(3000), -1)
	assert.ErrorIs(t, err, quantity.ErrInvalidArgument)
}

func TestRequiredTorqueForScrewAndPulley(t *testing.T) {
	j := quantity.KilogramMeters2(1e-4)
	tq, err := RequiredTorqueForScrew(j, quantity.MetersPerSecond2(1), mm(10))
	require.NoError(t, err)
	assert.InDelta(t, 1e-4*2*math.Pi/0.01, tq.NewtonMeters(), 1e-9)

	tq, err = RequiredTorqueForPulley(j, quantity.MetersPerSecond2(1), geometry.MustRadius(mm(20)))
	require.NoError(t, err)
	assert.InDelta(t, 1e-4/0.02, tq.NewtonMeters(), 1e-9)

	_, err = RequiredTorqueForScrew(j, quantity.MetersPerSecond2(1), mm(0))
	assert.ErrorIs(t, err, quantity.ErrInvalidArgument)
}

func TestForceToTorqueForScrew(t *testing.T) {
	f := quantity.Kilograms(10).MulAcceleration(EarthGravity)
	tq, err := ForceToTorqueForScrew(f, mm(5), 0.9)
	require.NoError(t, err)
	assert.InDelta(t, 98.1*0.005/(2*math.Pi*0.9), tq.NewtonMeters(), 1e-12)

	for _, eta := range []float64{0, -0.5, 1.5, math.NaN()} {
		_, err := ForceToTorqueForScrew(f, mm(5), eta)
		assert.ErrorIs(t, err, quantity.ErrInvalidArgument, "efficiency %v", eta)
	}
	_, err = ForceToTorqueForScrew(f, mm(0), 0.9)
	assert.ErrorIs(t, err, quantity.ErrInvalidArgument)
}
