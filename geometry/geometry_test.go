package geometry

import (
	"math"
	"math/rand"
	"testing"

	"github.com/corey/mechsize/quantity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRadius_ToDiameter(t *testing.T) {
	r := MustRadius(quantity.Millimeters(50))
	assert.InDelta(t, 100, r.ToDiameter().Millimeters(), 1e-9)
	assert.InDelta(t, 50, r.ToDiameter().ToRadius().Millimeters(), 1e-9)
}

func TestRadiusDiameter_RoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 500; i++ {
		m := rng.Float64()*10 + 1e-6
		r := MustRadius(quantity.Meters(m))
		assert.InEpsilon(t, m, r.ToDiameter().ToRadius().Meters(), 1e-12)

		d := MustDiameter(quantity.Meters(m))
		assert.InEpsilon(t, m, d.ToRadius().ToDiameter().Meters(), 1e-12)
	}
}

func TestCircumference_Agrees(t *testing.T) {
	r := MustRadius(quantity.Meters(0.1))
	assert.InDelta(t, 2*math.Pi*0.1, r.Circumference().Meters(), 1e-12)
	assert.InDelta(t, r.Circumference().Meters(), r.ToDiameter().Circumference().Meters(), 1e-12)
}

func TestArea_Agrees(t *testing.T) {
	d := MustDiameter(quantity.Millimeters(20))
	assert.InDelta(t, math.Pi*0.01*0.01, d.Area(), 1e-15)
	assert.InDelta(t, d.Area(), d.ToRadius().Area(), 1e-15)
}

func TestRadius_AddSub(t *testing.T) {
	a := MustRadius(quantity.Millimeters(30))
	b := MustRadius(quantity.Millimeters(10))
	assert.InDelta(t, 40, a.Add(b).Millimeters(), 1e-9)
	assert.InDelta(t, 20, a.Sub(b).Millimeters(), 1e-9)
}

func TestNewRadius_RejectsNonPositive(t *testing.T) {
	for _, mm := range []float64{0, -5} {
		_, err := NewRadius(quantity.Millimeters(mm))
		require.Error(t, err)
		assert.ErrorIs(t, err, quantity.ErrInvalidArgument)

		_, err = NewDiameter(quantity.Millimeters(mm))
		assert.ErrorIs(t, err, quantity.ErrNonPositive)
	}
	assert.Panics(t, func() { MustRadius(quantity.Meters(0)) })
}

func TestRadiusLike_Interface(t *testing.T) {
	shapes := []RadiusLike{
		MustRadius(quantity.Millimeters(25)),
		MustDiameter(quantity.Millimeters(50)),
	}
	for _, s := range shapes {
		assert.InDelta(t, 25, s.ToRadius().Millimeters(), 1e-9)
	}
}
