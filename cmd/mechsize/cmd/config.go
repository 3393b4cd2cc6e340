package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show configuration",
	Long:  "Shows the effective configuration after defaults, config file, MECHSIZE_* environment and flags.",
	Args:  cobra.NoArgs,
	RunE:  runConfig,
}

func runConfig(cmd *cobra.Command, args []string) error {
	cfg := application.Config
	out := cmd.OutOrStdout()
	if wantJSON() {
		return writeJSON(out, cfg)
	}

	file := cfg.File
	if file == "" {
		file = fmt.Sprintf("%s(none)%s", paint(colorGray), paint(colorReset))
	}
	fmt.Fprint(out, heading("mechsize config"))
	fmt.Fprint(out, row("Config file", "%s", file))
	fmt.Fprint(out, row("Log level", "%s", cfg.LogLevel))
	fmt.Fprint(out, row("Design store", "%s", cfg.StorePath))
	fmt.Fprint(out, row("JSON output", "%t", cfg.OutputJSON))
	fmt.Fprint(out, row("Screw η", "%g", cfg.ScrewEfficiency))
	fmt.Fprint(out, row("Watch debounce", "%s", cfg.WatchDebounce))
	return nil
}
