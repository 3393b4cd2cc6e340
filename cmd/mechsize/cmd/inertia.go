package cmd

import (
	"fmt"

	"github.com/corey/mechsize/geometry"
	"github.com/corey/mechsize/mechanics"
	"github.com/corey/mechsize/quantity"
	"github.com/spf13/cobra"
)

var (
	inertiaMass     = massFlag()
	inertiaRadius   = lengthFlag()
	inertiaDiameter = lengthFlag()
	inertiaOuter    = lengthFlag()
	inertiaInner    = lengthFlag()
	inertiaLead     = lengthFlag()
	inertiaRatio    float64
)

var inertiaCmd = &cobra.Command{
	Use:   "inertia",
	Short: "Moment of inertia of common bodies",
}

var inertiaCylinderCmd = &cobra.Command{
	Use:   "cylinder",
	Short: "Solid cylinder, ½·m·r²",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		r, err := radiusFrom(inertiaRadius, inertiaDiameter)
		if err != nil {
			return err
		}
		m, _ := inertiaMass.Get()
		return printInertia(cmd, "solid cylinder", mechanics.CylinderInertia(m, r))
	},
}

var inertiaHollowCmd = &cobra.Command{
	Use:   "hollow",
	Short: "Hollow cylinder, ½·m·(ro²+ri²)",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		outer, _ := inertiaOuter.Get()
		inner, _ := inertiaInner.Get()
		ro, err := geometry.NewRadius(outer)
		if err != nil {
			return fmt.Errorf("--outer: %w", err)
		}
		ri, err := geometry.NewRadius(inner)
		if err != nil {
			return fmt.Errorf("--inner: %w", err)
		}
		if ri.Meters() >= ro.Meters() {
			return fmt.Errorf("--inner %s must be smaller than --outer %s", inertiaInner, inertiaOuter)
		}
		m, _ := inertiaMass.Get()
		return printInertia(cmd, "hollow cylinder", mechanics.HollowCylinderInertia(m, ro, ri))
	},
}

var inertiaLinearCmd = &cobra.Command{
	Use:   "linear",
	Short: "Translating mass seen through a lead screw, m·(lead/2π)²",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		m, _ := inertiaMass.Get()
		lead, _ := inertiaLead.Get()
		j, err := mechanics.LinearInertia(m, lead)
		if err != nil {
			return err
		}
		return printInertia(cmd, "linear load", j)
	},
}

func init() {
	for _, c := range []*cobra.Command{inertiaCylinderCmd, inertiaHollowCmd, inertiaLinearCmd} {
		c.Flags().Var(inertiaMass, "mass", "mass, e.g. 2kg")
		c.Flags().Float64Var(&inertiaRatio, "ratio", 1, "refer through a reduction: input/output speed")
		c.MarkFlagRequired("mass")
		inertiaCmd.AddCommand(c)
	}

	inertiaCylinderCmd.Flags().Var(inertiaRadius, "radius", "radius, e.g. 0.1m")
	inertiaCylinderCmd.Flags().Var(inertiaDiameter, "diameter", "diameter, e.g. 200mm")
	inertiaCylinderCmd.MarkFlagsOneRequired("radius", "diameter")
	inertiaCylinderCmd.MarkFlagsMutuallyExclusive("radius", "diameter")

	inertiaHollowCmd.Flags().Var(inertiaOuter, "outer", "outer radius")
	inertiaHollowCmd.Flags().Var(inertiaInner, "inner", "inner radius")
	inertiaHollowCmd.MarkFlagRequired("outer")
	inertiaHollowCmd.MarkFlagRequired("inner")

	inertiaLinearCmd.Flags().Var(inertiaLead, "lead", "screw lead, e.g. 10mm")
	inertiaLinearCmd.MarkFlagRequired("lead")
}

// radiusFrom returns whichever of --radius or --diameter was given.
func radiusFrom(radius, diameter *quantityFlag[quantity.Length]) (geometry.RadiusLike, error) {
	if r, ok := radius.Get(); ok {
		return geometry.NewRadius(r)
	}
	d, ok := diameter.Get()
	if !ok {
		return nil, fmt.Errorf("one of --radius or --diameter is required")
	}
	return geometry.NewDiameter(d)
}

type inertiaResult struct {
	Body          string  `json:"body"`
	KgM2          float64 `json:"kg_m2"`
	KgCm2         float64 `json:"kg_cm2"`
	GMm2          float64 `json:"g_mm2"`
	Ratio         float64 `json:"ratio,omitempty"`
	ReferredKgM2  float64 `json:"referred_kg_m2,omitempty"`
	ReferredKgCm2 float64 `json:"referred_kg_cm2,omitempty"`
}

func printInertia(cmd *cobra.Command, body string, j quantity.MomentOfInertia) error {
	res := inertiaResult{
		Body:  body,
		KgM2:  j.KilogramMeters2(),
		KgCm2: j.KilogramCentimeters2(),
		GMm2:  j.GramMillimeters2(),
	}
	if inertiaRatio != 1 {
		n, err := quantity.NewGearRatio(inertiaRatio)
		if err != nil {
			return fmt.Errorf("--ratio: %w", err)
		}
		// The body sits on the output shaft; the input shaft sees it through 1/n.
		ref := mechanics.ReferredTo(j, n.Inverse())
		res.Ratio = n.Value()
		res.ReferredKgM2 = ref.KilogramMeters2()
		res.ReferredKgCm2 = ref.KilogramCentimeters2()
	}

	out := cmd.OutOrStdout()
	if wantJSON() {
		return writeJSON(out, res)
	}
	fmt.Fprint(out, heading("%s", body))
	fmt.Fprint(out, row("Inertia", "%s%.6e kg·m²%s", paint(colorGreen), res.KgM2, paint(colorReset)))
	fmt.Fprint(out, row("", "%.6g kg·cm²", res.KgCm2))
	fmt.Fprint(out, row("", "%.6g g·mm²", res.GMm2))
	if res.Ratio != 0 {
		fmt.Fprint(out, row("Through", "%g:1 → %.6e kg·m² (%.6g kg·cm²)", res.Ratio, res.ReferredKgM2, res.ReferredKgCm2))
	}
	return nil
}
