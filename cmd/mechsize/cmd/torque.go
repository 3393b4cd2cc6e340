package cmd

import (
	"fmt"

	"github.com/corey/mechsize/mechanics"
	"github.com/corey/mechsize/quantity"
	"github.com/spf13/cobra"
)

var (
	torqueInertia    = inertiaFlag()
	torqueSpeed      = speedFlag()
	torqueAccel      = accelFlag()
	torqueLead       = lengthFlag()
	torqueRadius     = lengthFlag()
	torqueDiameter   = lengthFlag()
	torqueForce      = forceFlag()
	torqueMass       = massFlag()
	torqueSeconds    float64
	torqueEfficiency float64
)

var torqueCmd = &cobra.Command{
	Use:   "torque",
	Short: "Motor torque to accelerate or hold a load",
}

var torqueRampCmd = &cobra.Command{
	Use:   "ramp",
	Short: "Torque to ramp an inertia to --speed in --time seconds",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		j, _ := torqueInertia.Get()
		w, _ := torqueSpeed.Get()
		tau, err := mechanics.RequiredTorqueForRamp(j, w, torqueSeconds)
		if err != nil {
			return err
		}
		alpha, _ := mechanics.AngularAccelerationForRamp(w, torqueSeconds)
		return printTorque(cmd, fmt.Sprintf("ramp to %s in %gs (%.1f rpm/s)", w, torqueSeconds, alpha.RPMPerSecond()), tau)
	},
}

var torqueScrewCmd = &cobra.Command{
	Use:   "screw",
	Short: "Torque to give a screw-driven carriage a linear acceleration",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		j, _ := torqueInertia.Get()
		a, _ := torqueAccel.Get()
		lead, _ := torqueLead.Get()
		tau, err := mechanics.RequiredTorqueForScrew(j, a, lead)
		if err != nil {
			return err
		}
		return printTorque(cmd, fmt.Sprintf("%g m/s² through a %gmm lead", a.MetersPerSecond2(), lead.Millimeters()), tau)
	},
}

var torquePulleyCmd = &cobra.Command{
	Use:   "pulley",
	Short: "Torque to give a belt-driven carriage a linear acceleration",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		j, _ := torqueInertia.Get()
		a, _ := torqueAccel.Get()
		r, err := radiusFrom(torqueRadius, torqueDiameter)
		if err != nil {
			return err
		}
		tau, err := mechanics.RequiredTorqueForPulley(j, a, r)
		if err != nil {
			return err
		}
		return printTorque(cmd, fmt.Sprintf("%g m/s² on a %gmm radius", a.MetersPerSecond2(), r.ToRadius().Millimeters()), tau)
	},
}

var torqueForceCmd = &cobra.Command{
	Use:   "force",
	Short: "Screw torque to produce an axial force (or hold --mass against gravity)",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		var f quantity.Force
		if v, ok := torqueForce.Get(); ok {
			f = v
		} else {
			m, _ := torqueMass.Get()
			f = m.MulAcceleration(mechanics.EarthGravity)
		}
		eff := torqueEfficiency
		if !cmd.Flags().Changed("efficiency") {
			eff = application.Config.ScrewEfficiency
		}
		lead, _ := torqueLead.Get()
		tau, err := mechanics.ForceToTorqueForScrew(f, lead, eff)
		if err != nil {
			return err
		}
		return printTorque(cmd, fmt.Sprintf("%.1f N through a %gmm lead at η=%g", f.Newtons(), lead.Millimeters(), eff), tau)
	},
}

func init() {
	for _, c := range []*cobra.Command{torqueRampCmd, torqueScrewCmd, torquePulleyCmd} {
		c.Flags().Var(torqueInertia, "inertia", "total inertia at the motor, e.g. 1.6e-3 kgm2")
		c.MarkFlagRequired("inertia")
	}
	for _, c := range []*cobra.Command{torqueScrewCmd, torquePulleyCmd} {
		c.Flags().Var(torqueAccel, "accel", "linear acceleration, e.g. 2 m/s2")
		c.MarkFlagRequired("accel")
	}
	for _, c := range []*cobra.Command{torqueScrewCmd, torqueForceCmd} {
		c.Flags().Var(torqueLead, "lead", "screw lead, e.g. 10mm")
		c.MarkFlagRequired("lead")
	}

	torqueRampCmd.Flags().Var(torqueSpeed, "speed", "target speed, e.g. 3000rpm")
	torqueRampCmd.Flags().Float64Var(&torqueSeconds, "time", 0, "ramp time in seconds")
	torqueRampCmd.MarkFlagRequired("speed")
	torqueRampCmd.MarkFlagRequired("time")

	torquePulleyCmd.Flags().Var(torqueRadius, "radius", "pulley pitch radius")
	torquePulleyCmd.Flags().Var(torqueDiameter, "diameter", "pulley pitch diameter")
	torquePulleyCmd.MarkFlagsOneRequired("radius", "diameter")
	torquePulleyCmd.MarkFlagsMutuallyExclusive("radius", "diameter")

	torqueForceCmd.Flags().Var(torqueForce, "force", "axial force, e.g. 250N")
	torqueForceCmd.Flags().Var(torqueMass, "mass", "mass held against gravity, e.g. 25kg")
	torqueForceCmd.Flags().Float64Var(&torqueEfficiency, "efficiency", 0.9, "screw efficiency in (0, 1] (default from screw.efficiency)")
	torqueForceCmd.MarkFlagsOneRequired("force", "mass")
	torqueForceCmd.MarkFlagsMutuallyExclusive("force", "mass")

	torqueCmd.AddCommand(torqueRampCmd)
	torqueCmd.AddCommand(torqueScrewCmd)
	torqueCmd.AddCommand(torquePulleyCmd)
	torqueCmd.AddCommand(torqueForceCmd)
}

type torqueResult struct {
	Case              string  `json:"case"`
	NewtonMeters      float64 `json:"nm"`
	NewtonMillimeters float64 `json:"nmm"`
}

func printTorque(cmd *cobra.Command, what string, tau quantity.Torque) error {
	res := torqueResult{Case: what, NewtonMeters: tau.NewtonMeters(), NewtonMillimeters: tau.NewtonMillimeters()}
	out := cmd.OutOrStdout()
	if wantJSON() {
		return writeJSON(out, res)
	}
	fmt.Fprint(out, heading("%s", what))
	fmt.Fprint(out, row("Torque", "%s%s%s (%.2f N·mm)", paint(colorGreen), tau, paint(colorReset), res.NewtonMillimeters))
	return nil
}
