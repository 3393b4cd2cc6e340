package cmd

import (
	"fmt"

	"github.com/corey/mechsize/internal/domain/drive"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var evalOut string

var evalCmd = &cobra.Command{
	Use:   "eval <design.yaml>",
	Short: "Evaluate a drive design document",
	Long: "Sizes the belt stage of a design and the motor torque needed to ramp it\n" +
		"to speed. Output follows --json / output.json.",
	Args: cobra.ExactArgs(1),
	RunE: runEval,
}

func init() {
	evalCmd.Flags().StringVarP(&evalOut, "out", "o", "", "also write the JSON report to this file")
}

func runEval(cmd *cobra.Command, args []string) error {
	r, err := application.EvaluateFile(args[0])
	if err != nil {
		return err
	}
	if evalOut != "" {
		if err := drive.WriteJSON(evalOut, r); err != nil {
			return fmt.Errorf("write report: %w", err)
		}
		application.Log.Debug("report written", zap.String("path", evalOut))
	}
	return printReport(cmd, r)
}

func printReport(cmd *cobra.Command, r *drive.Report) error {
	out := cmd.OutOrStdout()
	if wantJSON() {
		return drive.EncodeJSON(out, r)
	}
	fmt.Fprint(out, formatReport(r))
	return nil
}
