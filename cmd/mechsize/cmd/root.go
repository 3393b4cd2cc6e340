package cmd

import (
	"github.com/corey/mechsize/internal/app"
	"github.com/corey/mechsize/internal/config"
	"github.com/corey/mechsize/internal/logging"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	configPath string
	logLevel   string
	storePath  string
	jsonOutput bool

	// application is built by the root pre-run hook for every command.
	application *app.App
)

var rootCmd = &cobra.Command{
	Use:   "mechsize",
	Short: "Motion-control sizing calculator",
	Long: "Unit-checked sizing for motion-control drives: timing belts and pulleys,\n" +
		"moment of inertia, and the motor torque to ramp a load to speed.",
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

// Execute runs the root command. The App is closed even when the command
// fails.
func Execute() error {
	err := rootCmd.Execute()
	if terr := teardown(); err == nil {
		err = terr
	}
	return err
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&configPath, "config", "", "config file (default: mechsize.yaml in the user config dir or working dir)")
	pf.StringVar(&logLevel, "log-level", "warn", "log level: debug, info, warn, error")
	pf.StringVar(&storePath, "store", "", "design store path")
	pf.BoolVar(&jsonOutput, "json", false, "output as JSON")

	rootCmd.AddCommand(pulleyCmd)
	rootCmd.AddCommand(beltCmd)
	rootCmd.AddCommand(inertiaCmd)
	rootCmd.AddCommand(torqueCmd)
	rootCmd.AddCommand(profilesCmd)
	rootCmd.AddCommand(evalCmd)
	rootCmd.AddCommand(designCmd)
	rootCmd.AddCommand(watchCmd)
	rootCmd.AddCommand(configCmd)
}

// setup loads configuration and builds the logger and App.
func setup(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(configPath, cmd.Flags())
	if err != nil {
		return err
	}
	log, err := logging.New(cfg.LogLevel)
	if err != nil {
		return err
	}
	log.Debug("config loaded",
		zap.String("file", cfg.File),
		zap.String("store", cfg.StorePath),
		zap.Float64("screw_efficiency", cfg.ScrewEfficiency))

	a, err := app.New(cfg, log)
	if err != nil {
		return err
	}
	application = a
	return nil
}

func teardown() error {
	if application == nil {
		return nil
	}
	err := application.Close()
	application.Log.Sync()
	application = nil
	return err
}

// wantJSON reports whether output should be JSON, from --json or output.json.
func wantJSON() bool {
	return application != nil && application.Config.OutputJSON
}
