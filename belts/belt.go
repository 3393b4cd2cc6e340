package belts

import (
	"fmt"
	"math"

	"github.com/corey/mechsize/quantity"
)

// PitchMultipleTolerance is how far, relative to the nearest whole tooth
// count, length/pitch may stray before BeltFromLength rejects the length.
const PitchMultipleTolerance = 1e-6

// Belt is a closed timing belt. Its pitch length is always exactly
// teeth × pitch.
type Belt struct {
	pitch  quantity.Length
	width  quantity.Length
	length quantity.Length
	teeth  int
}

// BeltFromTeeth builds a belt from its tooth count.
func BeltFromTeeth(pitch, width quantity.Length, teeth int) (Belt, error) {
	if err := validateBelt(pitch, width); err != nil {
		return Belt{}, err
	}
	if teeth <= 0 {
		return Belt{}, fmt.Errorf("%w: teeth must be > 0, got %d", quantity.ErrNonPositive, teeth)
	}
	return Belt{
		pitch:  pitch,
		width:  width,
		length: pitch.Mul(float64(teeth)),
		teeth:  teeth,
	}, nil
}

// BeltFromLength builds a belt from its pitch length, which must be a whole
// number of pitches within PitchMultipleTolerance. The stored length is
// recomputed from the rounded tooth count.
func BeltFromLength(pitch, width, length quantity.Length) (Belt, error) {
	if err := validateBelt(pitch, width); err != nil {
		return Belt{}, err
	}
	if err := quantity.RequirePositive("length", length.Meters()); err != nil {
		return Belt{}, err
	}

	ratio := length.Meters() / pitch.Meters()
	whole := math.Round(ratio)
	if whole < 1 || math.Abs(ratio-whole) > PitchMultipleTolerance*whole {
		return Belt{}, fmt.Errorf("%w: %gmm / %gmm pitch = %.6f teeth",
			ErrNotPitchMultiple, length.Millimeters(), pitch.Millimeters(), ratio)
	}
	if whole > math.MaxInt32 {
		return Belt{}, quantity.Invalidf("belt of %.0f teeth is out of range", whole)
	}
	return BeltFromTeeth(pitch, width, int(whole))
}

func validateBelt(pitch, width quantity.Length) error {
	if err := quantity.RequirePositive("pitch", pitch.Meters()); err != nil {
		return err
	}
	return quantity.RequirePositive("width", width.Meters())
}

func (b Belt) Pitch() quantity.Length { return b.pitch }

func (b Belt) Width() quantity.Length { return b.width }

func (b Belt) Length() quantity.Length { return b.length }

func (b Belt) Teeth() int { return b.teeth }

func (b Belt) String() string {
	return fmt.Sprintf("%dT × %gmm = %gmm, %gmm wide",
		b.teeth, b.pitch.Millimeters(), b.length.Millimeters(), b.width.Millimeters())
}
