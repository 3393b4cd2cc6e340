package cmd

import (
	"github.com/corey/mechsize/quantity"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// quantityFlag is a pflag.Value holding a unit-suffixed quantity such as
// "165.5mm". The literal is parsed on Set, so bad units fail at flag parse
// time with the flag name in the message.
type quantityFlag[T any] struct {
	kind  string
	parse func(string) (T, error)
	raw   string
	value T
	set   bool
}

var _ pflag.Value = (*quantityFlag[quantity.Length])(nil)

func (f *quantityFlag[T]) String() string { return f.raw }

func (f *quantityFlag[T]) Type() string { return f.kind }

func (f *quantityFlag[T]) Set(s string) error {
	v, err := f.parse(s)
	if err != nil {
		return err
	}
	f.raw, f.value, f.set = s, v, true
	return nil
}

// Get returns the parsed value and whether the flag was given.
func (f *quantityFlag[T]) Get() (T, bool) { return f.value, f.set }

// reset clears the flag so a command can run again in the same process.
func (f *quantityFlag[T]) reset() {
	var zero T
	f.raw, f.value, f.set = "", zero, false
}

func lengthFlag() *quantityFlag[quantity.Length] {
	return &quantityFlag[quantity.Length]{kind: "length", parse: quantity.ParseLength}
}

func massFlag() *quantityFlag[quantity.Mass] {
	return &quantityFlag[quantity.Mass]{kind: "mass", parse: quantity.ParseMass}
}

func forceFlag() *quantityFlag[quantity.Force] {
	return &quantityFlag[quantity.Force]{kind: "force", parse: quantity.ParseForce}
}

func inertiaFlag() *quantityFlag[quantity.MomentOfInertia] {
	return &quantityFlag[quantity.MomentOfInertia]{kind: "inertia", parse: quantity.ParseMomentOfInertia}
}

func speedFlag() *quantityFlag[quantity.AngularVelocity] {
	return &quantityFlag[quantity.AngularVelocity]{kind: "speed", parse: quantity.ParseAngularVelocity}
}

func accelFlag() *quantityFlag[quantity.Acceleration] {
	return &quantityFlag[quantity.Acceleration]{kind: "accel", parse: quantity.ParseAcceleration}
}

// resetter is implemented by every quantityFlag.
type resetter interface{ reset() }

// resetFlags restores every flag of cmd and its subcommands to its default.
// Tests run several commands through the same package-level flag set.
func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		if r, ok := f.Value.(resetter); ok {
			r.reset()
		} else {
			f.Value.Set(f.DefValue)
		}
		f.Changed = false
	}
	cmd.Flags().VisitAll(reset)
	cmd.PersistentFlags().VisitAll(reset)
	for _, c := range cmd.Commands() {
		resetFlags(c)
	}
}
