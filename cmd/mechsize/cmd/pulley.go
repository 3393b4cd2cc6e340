package cmd

import (
	"fmt"

	"github.com/corey/mechsize/belts"
	"github.com/corey/mechsize/quantity"
	"github.com/spf13/cobra"
)

// defaultWidth is used when neither --width nor a profile gives one. Width
// does not enter any geometry formula.
var defaultWidth = quantity.Millimeters(10)

var (
	pulleyPitch   = lengthFlag()
	pulleyWidth   = lengthFlag()
	pulleyProfile string
	pulleyTeeth   int
)

var pulleyCmd = &cobra.Command{
	Use:   "pulley",
	Short: "Pitch diameter of a timing pulley",
	Long:  "Prints pitch diameter, radius and circumference for a pulley of --teeth at --pitch (or a catalog --profile).",
	Args:  cobra.NoArgs,
	RunE:  runPulley,
}

func init() {
	f := pulleyCmd.Flags()
	f.Var(pulleyPitch, "pitch", "tooth pitch, e.g. 8mm")
	f.StringVar(&pulleyProfile, "profile", "", "belt profile name, e.g. HTD-8M")
	f.IntVar(&pulleyTeeth, "teeth", 0, "tooth count")
	f.Var(pulleyWidth, "width", "pulley width")
	pulleyCmd.MarkFlagRequired("teeth")
	pulleyCmd.MarkFlagsOneRequired("pitch", "profile")
}

// beltPitch resolves --pitch and --profile into a pitch. An explicit pitch
// must match the profile's.
func beltPitch(pitch *quantityFlag[quantity.Length], profileName string) (quantity.Length, *belts.Profile, error) {
	p, hasPitch := pitch.Get()
	if profileName == "" {
		if !hasPitch {
			return quantity.Length{}, nil, fmt.Errorf("one of --pitch or --profile is required")
		}
		return p, nil, nil
	}
	prof, ok := belts.FindProfile(application.Catalog, profileName)
	if !ok {
		return quantity.Length{}, nil, fmt.Errorf("unknown belt profile %q (see: mechsize profiles)", profileName)
	}
	if hasPitch && !belts.SamePitch(p, prof.Pitch) {
		return quantity.Length{}, nil, fmt.Errorf("--pitch %s does not match %s pitch %gmm", pitch, prof.Name, prof.Pitch.Millimeters())
	}
	return prof.Pitch, &prof, nil
}

// beltWidth returns --width, else the profile's narrowest stock width.
func beltWidth(width *quantityFlag[quantity.Length], prof *belts.Profile) quantity.Length {
	if w, ok := width.Get(); ok {
		return w
	}
	if prof != nil && len(prof.Widths) > 0 {
		return prof.Widths[0]
	}
	return defaultWidth
}

type pulleyResult struct {
	Pitch         float64 `json:"pitch_mm"`
	Teeth         int     `json:"teeth"`
	Width         float64 `json:"width_mm"`
	PitchDiameter float64 `json:"pitch_diameter_mm"`
	PitchRadius   float64 `json:"pitch_radius_mm"`
	Circumference float64 `json:"circumference_mm"`
}

func runPulley(cmd *cobra.Command, args []string) error {
	pitch, prof, err := beltPitch(pulleyPitch, pulleyProfile)
	if err != nil {
		return err
	}
	p, err := belts.NewPulley(pitch, pulleyTeeth, beltWidth(pulleyWidth, prof))
	if err != nil {
		return err
	}

	res := pulleyResult{
		Pitch:         p.Pitch().Millimeters(),
		Teeth:         p.Teeth(),
		Width:         p.Width().Millimeters(),
		PitchDiameter: p.PitchDiameter().Millimeters(),
		PitchRadius:   p.PitchRadius().Millimeters(),
		Circumference: p.PitchDiameter().Circumference().Millimeters(),
	}
	out := cmd.OutOrStdout()
	if wantJSON() {
		return writeJSON(out, res)
	}

	fmt.Fprint(out, heading("%dT pulley, %gmm pitch", res.Teeth, res.Pitch))
	fmt.Fprint(out, row("Pitch diameter", "%.3fmm", res.PitchDiameter))
	fmt.Fprint(out, row("Pitch radius", "%.3fmm", res.PitchRadius))
	fmt.Fprint(out, row("Circumference", "%.3fmm", res.Circumference))
	fmt.Fprint(out, row("Width", "%gmm", res.Width))
	return nil
}
