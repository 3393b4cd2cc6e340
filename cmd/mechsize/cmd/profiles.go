package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var profilesCmd = &cobra.Command{
	Use:   "profiles",
	Short: "List built-in belt profiles",
	Long:  "Lists the embedded timing belt profiles with their pitch, stock widths and stock belt sizes.",
	Args:  cobra.NoArgs,
	RunE:  runProfiles,
}

func runProfiles(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	if wantJSON() {
		return writeJSON(out, toProfileJSON(application.Catalog))
	}
	fmt.Fprint(out, formatProfiles(application.Catalog))
	return nil
}
