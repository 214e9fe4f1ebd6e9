// internal/cli/root.go
package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// build info (inject via -ldflags)
	Version   = "dev"
	Commit    = "none"
	BuildDate = "unknown"

	// global flags
	cfgPath string
	verbose bool
	quiet   bool
)

// NewRootCmd builds the root command for procrun.
//
// Behavior:
// - default config: ./procrun.yaml or ./procrun.toml if present, else built-in defaults
// - running with no subcommand defaults to "run"
func NewRootCmd() *cobra.Command {
	rf := &runFlags{}

	cmd := &cobra.Command{
		Use:   "procrun [executable]",
		Short: "Run an executable and report its exit code",
		Long: "procrun launches an executable as a child process, waits for it to " +
			"terminate and prints its exit code (optionally the elapsed time).",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			// default behavior: run
			return runOnce(cmd, rf, args)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// global flags
	cmd.PersistentFlags().StringVar(
		&cfgPath,
		"config",
		pickDefaultConfig(),
		"path to procrun.yaml / procrun.toml",
	)
	cmd.PersistentFlags().BoolVar(
		&verbose,
		"verbose",
		false,
		"enable verbose logging",
	)
	cmd.PersistentFlags().BoolVar(
		&quiet,
		"quiet",
		false,
		"suppress non-error logs",
	)

	bindRunFlags(cmd, rf)

	// version wiring (supports `procrun --version`)
	cmd.Version = Version
	cmd.SetVersionTemplate(versionTemplate())

	// register subcommands
	cmd.AddCommand(
		newRunCmd(),
		newConfigCmd(),
		newVersionCmd(),
	)

	return cmd
}

// Execute is called by cmd/procrun/main.go
func Execute() {
	// Sem handler de sinal: SIGINT/SIGTERM mantêm a ação padrão e
	// encerram o wrapper; o filho não é morto por nós.
	root := NewRootCmd()
	root.SetContext(context.Background())

	if err := root.Execute(); err != nil {
		// Cobra output is silenced; print clean error
		fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(1)
	}
}

func versionTemplate() string {
	return `procrun {{.Version}}
`
}
