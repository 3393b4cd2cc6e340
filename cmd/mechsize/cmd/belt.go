package cmd

import (
	"fmt"
	"math"

	"github.com/corey/mechsize/belts"
	"github.com/corey/mechsize/quantity"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	beltPitchFlag   = lengthFlag()
	beltWidthFlag   = lengthFlag()
	beltCenter      = lengthFlag()
	beltLengthFlag  = lengthFlag()
	beltProfileName string
	beltTeethA      int
	beltTeethB      int
	beltTeeth       int
)

var beltCmd = &cobra.Command{
	Use:   "belt",
	Short: "Timing belt length and center distance",
}

var beltLengthCmd = &cobra.Command{
	Use:   "length",
	Short: "Belt pitch length for a center distance",
	Long: "Computes the pitch length of a belt over two pulleys at --center, the wrap\n" +
		"angle and teeth in mesh on the smaller pulley, and the nearest stock belt.",
	Args: cobra.NoArgs,
	RunE: runBeltLength,
}

var beltCenterCmd = &cobra.Command{
	Use:   "center",
	Short: "Center distance for a given belt",
	Long:  "Solves for the center distance at which a belt of --belt-teeth (or --belt-length) fits both pulleys.",
	Args:  cobra.NoArgs,
	RunE:  runBeltCenter,
}

func init() {
	for _, c := range []*cobra.Command{beltLengthCmd, beltCenterCmd} {
		f := c.Flags()
		f.Var(beltPitchFlag, "pitch", "tooth pitch, e.g. 8mm")
		f.StringVar(&beltProfileName, "profile", "", "belt profile name, e.g. HTD-8M")
		f.Var(beltWidthFlag, "width", "belt width")
		f.IntVar(&beltTeethA, "teeth-a", 0, "teeth on the first pulley")
		f.IntVar(&beltTeethB, "teeth-b", 0, "teeth on the second pulley")
		c.MarkFlagRequired("teeth-a")
		c.MarkFlagRequired("teeth-b")
		c.MarkFlagsOneRequired("pitch", "profile")
	}
	beltLengthCmd.Flags().Var(beltCenter, "center", "center distance, e.g. 165.5mm")
	beltLengthCmd.MarkFlagRequired("center")

	beltCenterCmd.Flags().IntVar(&beltTeeth, "belt-teeth", 0, "belt tooth count")
	beltCenterCmd.Flags().Var(beltLengthFlag, "belt-length", "belt pitch length (a whole number of teeth)")
	beltCenterCmd.MarkFlagsOneRequired("belt-teeth", "belt-length")
	beltCenterCmd.MarkFlagsMutuallyExclusive("belt-teeth", "belt-length")

	beltCmd.AddCommand(beltLengthCmd)
	beltCmd.AddCommand(beltCenterCmd)
}

// beltPulleys builds the two pulleys from the shared belt flags.
func beltPulleys() (a, b belts.Pulley, width quantity.Length, prof *belts.Profile, err error) {
	pitch, prof, err := beltPitch(beltPitchFlag, beltProfileName)
	if err != nil {
		return
	}
	width = beltWidth(beltWidthFlag, prof)
	if a, err = belts.NewPulley(pitch, beltTeethA, width); err != nil {
		err = fmt.Errorf("--teeth-a: %w", err)
		return
	}
	if b, err = belts.NewPulley(pitch, beltTeethB, width); err != nil {
		err = fmt.Errorf("--teeth-b: %w", err)
	}
	return
}

type beltLengthResult struct {
	Length      float64 `json:"length_mm"`
	Teeth       float64 `json:"teeth"`
	WrapAngle   float64 `json:"wrap_angle_deg"`
	TeethInMesh float64 `json:"teeth_in_mesh"`
	Nearest     struct {
		Teeth          int     `json:"teeth"`
		Length         float64 `json:"length_mm"`
		CenterDistance float64 `json:"center_distance_mm"`
	} `json:"nearest_belt"`
}

func runBeltLength(cmd *cobra.Command, args []string) error {
	a, b, width, prof, err := beltPulleys()
	if err != nil {
		return err
	}
	center, _ := beltCenter.Get()

	length, err := belts.Length(center, a, b)
	if err != nil {
		return err
	}
	wrap, err := belts.WrapAngle(center, a, b)
	if err != nil {
		return err
	}
	mesh, err := belts.TeethInMesh(center, a, b)
	if err != nil {
		return err
	}

	stockFrom := belts.Profile{Name: "custom", Pitch: a.Pitch()}
	if prof != nil {
		stockFrom = *prof
	}
	nearest, err := stockFrom.NearestFittingBelt(length, width, a, b)
	if err != nil {
		return err
	}
	c, err := belts.CenterDistance(nearest, a, b)
	if err != nil {
		return fmt.Errorf("center distance for %dT belt: %w", nearest.Teeth(), err)
	}
	application.Log.Debug("belt length",
		zap.Stringer("a", a), zap.Stringer("b", b),
		zap.Float64("center_mm", center.Millimeters()),
		zap.Float64("length_mm", length.Millimeters()))

	var res beltLengthResult
	res.Length = length.Millimeters()
	res.Teeth = length.Meters() / a.Pitch().Meters()
	res.WrapAngle = wrap * 180 / math.Pi
	res.TeethInMesh = mesh
	res.Nearest.Teeth = nearest.Teeth()
	res.Nearest.Length = nearest.Length().Millimeters()
	res.Nearest.CenterDistance = c.Millimeters()

	out := cmd.OutOrStdout()
	if wantJSON() {
		return writeJSON(out, res)
	}
	fmt.Fprint(out, heading("%dT / %dT at C=%gmm", a.Teeth(), b.Teeth(), center.Millimeters()))
	fmt.Fprint(out, row("Belt length", "%.3fmm (%.2f teeth)", res.Length, res.Teeth))
	fmt.Fprint(out, row("Wrap angle", "%.1f°", res.WrapAngle))
	fmt.Fprint(out, row("Teeth in mesh", "%.2f", res.TeethInMesh))
	fmt.Fprint(out, row("Nearest belt", "%s%dT%s %.3fmm at C=%.3fmm",
		paint(colorCyan), res.Nearest.Teeth, paint(colorReset), res.Nearest.Length, res.Nearest.CenterDistance))
	return nil
}

type beltCenterResult struct {
	BeltTeeth      int     `json:"belt_teeth"`
	BeltLength     float64 `json:"belt_length_mm"`
	CenterDistance float64 `json:"center_distance_mm"`
	WrapAngle      float64 `json:"wrap_angle_deg"`
	TeethInMesh    float64 `json:"teeth_in_mesh"`
}

func runBeltCenter(cmd *cobra.Command, args []string) error {
	a, b, width, _, err := beltPulleys()
	if err != nil {
		return err
	}

	var belt belts.Belt
	if l, ok := beltLengthFlag.Get(); ok {
		belt, err = belts.BeltFromLength(a.Pitch(), width, l)
	} else {
		belt, err = belts.BeltFromTeeth(a.Pitch(), width, beltTeeth)
	}
	if err != nil {
		return err
	}

	c, err := belts.CenterDistance(belt, a, b)
	if err != nil {
		return err
	}
	wrap, err := belts.WrapAngle(c, a, b)
	if err != nil {
		return err
	}
	mesh, err := belts.TeethInMesh(c, a, b)
	if err != nil {
		return err
	}

	res := beltCenterResult{
		BeltTeeth:      belt.Teeth(),
		BeltLength:     belt.Length().Millimeters(),
		CenterDistance: c.Millimeters(),
		WrapAngle:      wrap * 180 / math.Pi,
		TeethInMesh:    mesh,
	}
	out := cmd.OutOrStdout()
	if wantJSON() {
		return writeJSON(out, res)
	}
	fmt.Fprint(out, heading("%dT belt (%.3fmm) over %dT / %dT", res.BeltTeeth, res.BeltLength, a.Teeth(), b.Teeth()))
	fmt.Fprint(out, row("Center distance", "%s%.3fmm%s", paint(colorGreen), res.CenterDistance, paint(colorReset)))
	fmt.Fprint(out, row("Wrap angle", "%.1f°", res.WrapAngle))
	fmt.Fprint(out, row("Teeth in mesh", "%.2f", res.TeethInMesh))
	return nil
}
