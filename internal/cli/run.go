// internal/cli/run.go
package cli

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"procrun/internal/app"
	"procrun/internal/config"
	"procrun/internal/observability/logging"
)

type runFlags struct {
	executable  string
	measureTime bool
	output      string
	style       string
	dir         string
	metricsFile string
	runID       string
}

func newRunCmd() *cobra.Command {
	rf := &runFlags{}

	cmd := &cobra.Command{
		Use:   "run [executable]",
		Short: "Run the executable once and report its exit code (default)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runOnce(cmd, rf, args)
		},
	}

	bindRunFlags(cmd, rf)
	return cmd
}

func bindRunFlags(cmd *cobra.Command, rf *runFlags) {
	fs := cmd.Flags()
	fs.StringVarP(&rf.executable, "executable", "e", "", "path to the executable (overrides config)")
	fs.BoolVarP(&rf.measureTime, "time", "t", false, "also report elapsed time in milliseconds")
	fs.StringVar(&rf.output, "output", "", "child stdout/stderr: inherit | capture | discard")
	fs.StringVar(&rf.style, "style", "", "report style: status | exit")
	fs.StringVar(&rf.dir, "dir", "", "working directory for the child")
	fs.StringVar(&rf.metricsFile, "metrics-file", "", "write a Prometheus textfile after the run")
	fs.StringVar(&rf.runID, "run-id", "", "use this run id instead of generating one")
}

// apply copies only the flags the user actually set.
func (rf *runFlags) apply(cmd *cobra.Command, cfg *config.Config) {
	fs := cmd.Flags()
	if fs.Changed("executable") {
		cfg.Executable = rf.executable
	}
	if fs.Changed("time") {
		cfg.MeasureTime = rf.measureTime
	}
	if fs.Changed("output") {
		cfg.Output = rf.output
	}
	if fs.Changed("style") {
		cfg.Style = rf.style
	}
	if fs.Changed("dir") {
		cfg.Dir = rf.dir
	}
	if fs.Changed("metrics-file") {
		cfg.MetricsFile = rf.metricsFile
	}
}

// loadConfig resolves defaults < file < env < flags < positional arg.
func loadConfig(cmd *cobra.Command, rf *runFlags, args []string) (*config.Config, error) {
	cfg := config.Default()
	if cfgPath != "" {
		loaded, err := config.LoadFromFile(cfgPath)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	if err := cfg.ApplyEnv(os.Getenv); err != nil {
		return nil, err
	}

	if rf != nil {
		rf.apply(cmd, cfg)
	}
	if len(args) == 1 {
		cfg.Executable = args[0]
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func setupLogger(cmd *cobra.Command, cfg *config.Config) *slog.Logger {
	lvl, err := logging.ParseLevel(cfg.Log.Level)
	if err != nil {
		lvl = slog.LevelWarn
	}
	switch {
	case verbose:
		lvl = slog.LevelDebug
	case quiet:
		lvl = slog.LevelError
	}

	return logging.New(logging.Config{
		Mode:   logging.Mode(cfg.Log.Format),
		Level:  lvl,
		Output: cmd.ErrOrStderr(),
	})
}

// runOnce never fails because of the child: not-found and other run
// failures are printed by the app and the wrapper still exits 0.
func runOnce(cmd *cobra.Command, rf *runFlags, args []string) error {
	cfg, err := loadConfig(cmd, rf, args)
	if err != nil {
		return err
	}

	log := setupLogger(cmd, cfg)
	ctx := logging.WithLogger(cmd.Context(), log)
	ctx, _ = logging.EnsureRunIDWithIncoming(ctx, rf.runID)

	a, err := app.New(cfg, cmd.OutOrStdout())
	if err != nil {
		return err
	}

	res, runErr := a.Run(ctx)
	if runErr != nil {
		log.Debug("run finished without exit status",
			logging.RunID(res.RunID),
			logging.Err(runErr),
		)
	}
	return nil
}
