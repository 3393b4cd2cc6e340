package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/corey/mechsize/internal/domain/drive"
	"github.com/spf13/cobra"
)

var watchCmd = &cobra.Command{
	Use:   "watch <design.yaml>",
	Short: "Re-evaluate a design every time it is saved",
	Long:  "Evaluates the design, then again after each change to the file, until interrupted.",
	Args:  cobra.ExactArgs(1),
	RunE:  runWatch,
}

func runWatch(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%s⚙ watching %s%s (ctrl-c to stop)\n", paint(colorBold), args[0], paint(colorReset))

	err := application.Watch(ctx, args[0], func(r *drive.Report, err error) {
		stamp := time.Now().Format(time.TimeOnly)
		if err != nil {
			fmt.Fprintf(out, "%s[%s] %v%s\n", paint(colorYellow), stamp, err, paint(colorReset))
			return
		}
		fmt.Fprintf(out, "%s[%s]%s\n", paint(colorGray), stamp, paint(colorReset))
		printReport(cmd, r)
	})
	if err != nil {
		return err
	}
	fmt.Fprintln(out, "\n⚙ stopped")
	return nil
}
