// mechsize sizes motion-control drives: belts and pulleys, inertia and
// motor torque, with unit-checked inputs.
package main

import (
	"os"

	"github.com/corey/mechsize/cmd/mechsize/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
