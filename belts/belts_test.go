package belts

import (
	"math"
	"math/rand"
	"testing"

	"github.com/corey/mechsize/quantity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mm(v float64) quantity.Length { return quantity.Millimeters(v) }

func htd8(t *testing.T, teeth int) Pulley {
	t.Helper()
	p, err := NewPulley(mm(8), teeth, mm(30))
	require.NoError(t, err)
	return p
}

func TestPulley_PitchDiameter(t *testing.T) {
	assert.InDelta(t, 45.84, htd8(t, 18).PitchDiameter().Millimeters(), 0.01)
	assert.InDelta(t, 183.35, htd8(t, 72).PitchDiameter().Millimeters(), 0.01)
	assert.InDelta(t, 45.84/2, htd8(t, 18).PitchRadius().Millimeters(), 0.01)
}

func TestNewPulley_EachFieldValidated(t *testing.T) {
	tests := []struct {
		name  string
		pitch float64
		teeth int
		width float64
	}{
		{"zero pitch", 0, 18, 30},
		{"negative pitch", -8, 18, 30},
		{"zero teeth", 8, 0, 30},
		{"negative teeth", 8, -1, 30},
		{"zero width", 8, 18, 0},
		{"negative width", 8, 18, -30},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewPulley(mm(tt.pitch), tt.teeth, mm(tt.width))
			require.Error(t, err)
			assert.ErrorIs(t, err, quantity.ErrNonPositive)
			assert.ErrorIs(t, err, quantity.ErrInvalidArgument)
		})
	}
}

func TestLength_Reference(t *testing.T) {
	l, err := Length(mm(165.5), htd8(t, 18), htd8(t, 72))
	require.NoError(t, err)
	assert.InDelta(t, 720, l.Millimeters(), 0.5)
}

func TestLength_EqualPulleys(t *testing.T) {
	p := htd8(t, 30)
	l, err := Length(mm(200), p, p)
	require.NoError(t, err)
	want := math.Pi*p.PitchDiameter().Millimeters() + 2*200
	assert.InDelta(t, want, l.Millimeters(), 1e-9)
}

func TestLength_Symmetric(t *testing.T) {
	a, b := MustPulley(mm(2), 20, mm(6)), MustPulley(mm(2), 72, mm(6))
	ab, err := Length(mm(150), a, b)
	require.NoError(t, err)
	ba, err := Length(mm(150), b, a)
	require.NoError(t, err)
	assert.Equal(t, ab, ba)

	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 300; i++ {
		pitch := mm(1 + rng.Float64()*10)
		p1 := MustPulley(pitch, 10+rng.Intn(100), mm(10))
		p2 := MustPulley(pitch, 10+rng.Intn(100), mm(10))
		half := math.Abs(p1.PitchDiameter().Meters()-p2.PitchDiameter().Meters()) / 2
		c := quantity.Meters(half + 1e-3 + rng.Float64())

		l12, err := Length(c, p1, p2)
		require.NoError(t, err)
		l21, err := Length(c, p2, p1)
		require.NoError(t, err)
		assert.Equal(t, l12, l21)
	}
}

func TestLength_BoundaryCenterDistance(t *testing.T) {
	small, large := htd8(t, 18), htd8(t, 72)
	half := (large.PitchDiameter().Meters() - small.PitchDiameter().Meters()) / 2

	l, err := Length(quantity.Meters(half), small, large)
	require.NoError(t, err)
	assert.False(t, math.IsNaN(l.Meters()))
	// At the boundary the belt wraps the large pulley completely.
	assert.InDelta(t, math.Pi*large.PitchDiameter().Meters(), l.Meters(), 1e-8)

	l, err = Length(quantity.Meters(half), large, small)
	require.NoError(t, err)
	assert.InDelta(t, math.Pi*large.PitchDiameter().Meters(), l.Meters(), 1e-8)
}

func TestLength_InfeasibleGeometry(t *testing.T) {
	small, large := htd8(t, 18), htd8(t, 72)
	half := (large.PitchDiameter().Meters() - small.PitchDiameter().Meters()) / 2

	_, err := Length(quantity.Meters(half*0.99), small, large)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInfeasibleGeometry)
	assert.ErrorIs(t, err, quantity.ErrInvalidArgument)
	assert.NotErrorIs(t, err, quantity.ErrNonPositive)
}

func TestLength_NonPositiveInputs(t *testing.T) {
	p := htd8(t, 18)

	_, err := Length(mm(0), p, p)
	assert.ErrorIs(t, err, quantity.ErrNonPositive)

	_, err = Length(mm(-10), p, p)
	assert.ErrorIs(t, err, quantity.ErrNonPositive)

	_, err = Length(mm(100), Pulley{}, p)
	assert.ErrorIs(t, err, quantity.ErrNonPositive)
	assert.NotErrorIs(t, err, ErrInfeasibleGeometry)
}

func TestWrapAngle(t *testing.T) {
	p := htd8(t, 30)
	w, err := WrapAngle(mm(200), p, p)
	require.NoError(t, err)
	assert.InDelta(t, math.Pi, w, 1e-12)

	w, err = WrapAngle(mm(165.5), htd8(t, 18), htd8(t, 72))
	require.NoError(t, err)
	assert.Less(t, w, math.Pi)
	assert.Greater(t, w, 2.0)
}

func TestTeethInMesh(t *testing.T) {
	n, err := TeethInMesh(mm(165.5), htd8(t, 72), htd8(t, 18))
	require.NoError(t, err)
	assert.InDelta(t, 6.545, n, 0.01)
}

func TestSpeedRatio(t *testing.T) {
	r, err := SpeedRatio(htd8(t, 18), htd8(t, 72))
	require.NoError(t, err)
	assert.InDelta(t, 4, r.Value(), 1e-12)

	_, err = SpeedRatio(Pulley{}, htd8(t, 72))
	assert.ErrorIs(t, err, quantity.ErrInvalidArgument)

	htd5 := MustPulley(mm(5), 72, mm(15))
	_, err = SpeedRatio(htd8(t, 18), htd5)
	assert.ErrorIs(t, err, quantity.ErrInvalidArgument)
	assert.Contains(t, err.Error(), "does not match")
}

func TestSamePitch(t *testing.T) {
	assert.True(t, SamePitch(mm(8), quantity.Meters(0.008)))
	assert.True(t, SamePitch(mm(8), mm(8.0000000001)))
	assert.False(t, SamePitch(mm(8), mm(8.001)))
	assert.False(t, SamePitch(mm(8), mm(5)))
}

func TestMinimumLength(t *testing.T) {
	// At C = (D_L−D_S)/2 the belt wraps half of each pulley plus the
	// asin term, which adds up to π·D_L.
	l, err := MinimumLength(htd8(t, 18), htd8(t, 72))
	require.NoError(t, err)
	assert.InDelta(t, 576, l.Millimeters(), 1e-6)

	_, err = MinimumLength(Pulley{}, htd8(t, 72))
	assert.ErrorIs(t, err, quantity.ErrNonPositive)
}

func TestBeltFromTeeth_Exact(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	for i := 0; i < 500; i++ {
		pitch := quantity.Millimeters(0.5 + rng.Float64()*20)
		z := 1 + rng.Intn(1000)
		b, err := BeltFromTeeth(pitch, mm(10), z)
		require.NoError(t, err)
		assert.Equal(t, pitch.Mul(float64(z)), b.Length())
		assert.Equal(t, z, b.Teeth())
	}
}

func TestBeltFromTeeth_EachFieldValidated(t *testing.T) {
	_, err := BeltFromTeeth(mm(0), mm(30), 90)
	assert.ErrorIs(t, err, quantity.ErrNonPositive)
	_, err = BeltFromTeeth(mm(8), mm(0), 90)
	assert.ErrorIs(t, err, quantity.ErrNonPositive)
	_, err = BeltFromTeeth(mm(8), mm(30), 0)
	assert.ErrorIs(t, err, quantity.ErrNonPositive)
	_, err = BeltFromTeeth(mm(8), mm(30), -90)
	assert.ErrorIs(t, err, quantity.ErrNonPositive)
}

func TestBeltFromLength(t *testing.T) {
	b, err := BeltFromLength(mm(8), mm(30), mm(720))
	require.NoError(t, err)
	assert.Equal(t, 90, b.Teeth())
	assert.Equal(t, mm(8).Mul(90), b.Length())

	// Within tolerance on either side of the whole tooth count.
	for _, l := range []float64{720.0000001, 719.9999999} {
		b, err := BeltFromLength(mm(8), mm(30), mm(l))
		require.NoError(t, err, "length %v", l)
		assert.Equal(t, 90, b.Teeth())
	}
}

func TestBeltFromLength_NotPitchMultiple(t *testing.T) {
	for _, l := range []float64{721, 724, 3} {
		_, err := BeltFromLength(mm(8), mm(30), mm(l))
		require.Error(t, err, "length %v", l)
		assert.ErrorIs(t, err, ErrNotPitchMultiple)
		assert.ErrorIs(t, err, quantity.ErrInvalidArgument)
	}
}

func TestBeltFromLength_EachFieldValidated(t *testing.T) {
	_, err := BeltFromLength(mm(0), mm(30), mm(720))
	assert.ErrorIs(t, err, quantity.ErrNonPositive)
	_, err = BeltFromLength(mm(8), mm(-1), mm(720))
	assert.ErrorIs(t, err, quantity.ErrNonPositive)
	_, err = BeltFromLength(mm(8), mm(30), mm(0))
	assert.ErrorIs(t, err, quantity.ErrNonPositive)
}

func TestCenterDistance_RoundTrip(t *testing.T) {
	a, b := htd8(t, 18), htd8(t, 72)
	belt, err := BeltFromTeeth(mm(8), mm(30), 90)
	require.NoError(t, err)

	c, err := CenterDistance(belt, a, b)
	require.NoError(t, err)
	assert.InDelta(t, 165.5015, c.Millimeters(), 1e-3)

	l, err := Length(c, b, a)
	require.NoError(t, err)
	assert.InDelta(t, belt.Length().Millimeters(), l.Millimeters(), 1e-5)
}

func TestCenterDistance_EqualPulleys(t *testing.T) {
	p := htd8(t, 20)
	belt, err := BeltFromTeeth(mm(8), mm(30), 100)
	require.NoError(t, err)

	c, err := CenterDistance(belt, p, p)
	require.NoError(t, err)
	want := (800 - 20*8) / 2.0
	assert.InDelta(t, want, c.Millimeters(), 1e-5)
}

func TestCenterDistance_BeltTooShort(t *testing.T) {
	belt, err := BeltFromTeeth(mm(8), mm(30), 60)
	require.NoError(t, err)

	_, err = CenterDistance(belt, htd8(t, 18), htd8(t, 72))
	assert.ErrorIs(t, err, ErrInfeasibleGeometry)
}

func TestCenterDistance_PitchMismatch(t *testing.T) {
	belt, err := BeltFromTeeth(mm(5), mm(15), 200)
	require.NoError(t, err)

	_, err = CenterDistance(belt, htd8(t, 18), htd8(t, 72))
	assert.ErrorIs(t, err, quantity.ErrInvalidArgument)
	assert.NotErrorIs(t, err, ErrInfeasibleGeometry)
}
