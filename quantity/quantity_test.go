package quantity

import (
	"errors"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLength_Conversions(t *testing.T) {
	l := Millimeters(165.5)
	assert.InDelta(t, 0.1655, l.Meters(), 1e-12)
	assert.InDelta(t, 165.5, l.Millimeters(), 1e-9)
	assert.Equal(t, Meters(0.5), Millimeters(500))
}

func TestLength_Arithmetic(t *testing.T) {
	a, b := Millimeters(30), Millimeters(12)
	assert.InDelta(t, 42, a.Add(b).Millimeters(), 1e-9)
	assert.InDelta(t, 18, a.Sub(b).Millimeters(), 1e-9)
	assert.InDelta(t, 60, a.Mul(2).Millimeters(), 1e-9)
	assert.InDelta(t, 15, a.Div(2).Millimeters(), 1e-9)
}

func TestMass_Conversions(t *testing.T) {
	assert.InDelta(t, 0.25, Grams(250).Kilograms(), 1e-12)
	assert.InDelta(t, 2000, Kilograms(2).Grams(), 1e-9)
	assert.Equal(t, "2 kg", Kilograms(2).String())
}

func TestMass_MulAcceleration(t *testing.T) {
	f := Kilograms(10).MulAcceleration(MetersPerSecond2(9.81))
	assert.InDelta(t, 98.1, f.Newtons(), 1e-9)
}

func TestForce_KilonewtonString(t *testing.T) {
	assert.Equal(t, "1.5 kN", Newtons(1500).KilonewtonString(1))
	assert.Equal(t, "0.123 kN", Newtons(123.4).KilonewtonString(3))
	assert.Equal(t, "2 kN", Kilonewtons(2).KilonewtonString(0))
}

func TestTorque_Conversions(t *testing.T) {
	tq := NewtonMillimeters(1500)
	assert.InDelta(t, 1.5, tq.NewtonMeters(), 1e-12)
	assert.Equal(t, "1.50000 N·m", tq.String())
}

func TestTorque_MulRatio(t *testing.T) {
	tq := NewtonMeters(2).MulRatio(MustGearRatio(4))
	assert.InDelta(t, 8, tq.NewtonMeters(), 1e-12)
}

func TestAngularVelocity_Conversions(t *testing.T) {
	w := RPM(60)
	assert.InDelta(t, 2*math.Pi, w.RadiansPerSecond(), 1e-12)
	assert.InDelta(t, 360, w.DegreesPerSecond(), 1e-9)
	assert.InDelta(t, 60, w.RPM(), 1e-9)
	assert.Equal(t, "3000.0 rpm", RPM(3000).String())
}

func TestAngularVelocity_Ratio(t *testing.T) {
	r := MustGearRatio(4)
	out := RPM(3000).DivRatio(r)
	assert.InDelta(t, 750, out.RPM(), 1e-9)
	assert.InDelta(t, 3000, out.MulRatio(r).RPM(), 1e-9)
}

func TestAngularVelocity_DivDuration(t *testing.T) {
	a, err := RPM(3000).DivDuration(200 * time.Millisecond)
	require.NoError(t, err)
	assert.InDelta(t, 15000, a.RPMPerSecond(), 1e-6)

	_, err = RPM(3000).DivDuration(0)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidArgument))
}

func TestAngularAcceleration_ForRamp(t *testing.T) {
	a, err := AngularAccelerationForRamp(RPM(3000), 0.2)
	require.NoError(t, err)
	assert.InDelta(t, 3000.0*2*math.Pi/60/0.2, a.RadiansPerSecond2(), 1e-9)

	for _, secs := range []float64{0, -1, math.NaN()} {
		_, err := AngularAccelerationFromDeltaOverTime(RPM(100), secs)
		assert.ErrorIs(t, err, ErrNonPositive, "seconds=%v", secs)
	}
}

func TestVelocity_MillimetersPerMinute(t *testing.T) {
	v := MillimetersPerMinute(6000)
	assert.InDelta(t, 0.1, v.MetersPerSecond(), 1e-12)
	assert.InDelta(t, 6000, v.MillimetersPerMinute(), 1e-9)
}

func TestMomentOfInertia_Conversions(t *testing.T) {
	j := GramMillimeters2(1)
	assert.InDelta(t, 1e-9, j.KilogramMeters2(), 1e-21)
	assert.InDelta(t, 1, KilogramCentimeters2(1e4).KilogramMeters2(), 1e-12)
	assert.Equal(t, "1.00000e-04 kg·m²", KilogramMeters2(1e-4).String())
}

func TestMomentOfInertia_MulAngularAcceleration(t *testing.T) {
	tq := KilogramMeters2(0.01).MulAngularAcceleration(RadiansPerSecond2(100))
	assert.InDelta(t, 1, tq.NewtonMeters(), 1e-12)
}

func TestCurrent_PeakAndRMS(t *testing.T) {
	c := CurrentPeak(2 * math.Sqrt2)
	assert.InDelta(t, 2, c.RMS(), 1e-12)
	assert.InDelta(t, 2000, c.MilliRMS(), 1e-9)
	assert.InDelta(t, 2*math.Sqrt2, c.Peak(), 1e-12)
	assert.Equal(t, "2 Arms", CurrentRMS(2).String())
}

func TestPowerAndVoltage(t *testing.T) {
	assert.InDelta(t, 750, Kilowatts(0.75).Watts(), 1e-9)
	assert.Equal(t, "48 V", Volts(48).String())
}

func TestNewGearRatio_RejectsNonPositive(t *testing.T) {
	for _, r := range []float64{0, -1, math.NaN(), math.Inf(1)} {
		_, err := NewGearRatio(r)
		require.Error(t, err, "ratio %v", r)
		assert.ErrorIs(t, err, ErrInvalidArgument)
	}

	_, err := NewGearRatio(-1)
	assert.Contains(t, err.Error(), "gear ratio must be > 0, got -1")
}

func TestGearRatio_ThenAndInverse(t *testing.T) {
	g := MustGearRatio(4).Then(MustGearRatio(2.5))
	assert.InDelta(t, 10, g.Value(), 1e-12)
	assert.InDelta(t, 0.1, g.Inverse().Value(), 1e-12)
	assert.Equal(t, 1.0, DirectDrive.Value())
}

func TestMustGearRatio_Panics(t *testing.T) {
	assert.Panics(t, func() { MustGearRatio(0) })
}

func TestQuantities_Comparable(t *testing.T) {
	assert.True(t, Millimeters(8) == Millimeters(8))
	assert.False(t, Grams(1) == Grams(2))
}
