// internal/cli/config_show.go
package cli

import (
	"fmt"
	"io"
	"path/filepath"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Config utilities",
	}

	cmd.AddCommand(newConfigShowCmd())
	return cmd
}

func newConfigShowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print resolved config path and effective settings",
		RunE: func(cmd *cobra.Command, args []string) error {
			return printConfig(cmd, cmd.OutOrStdout())
		},
	}
	return cmd
}

func printConfig(cmd *cobra.Command, w io.Writer) error {
	cfg, err := loadConfig(cmd, nil, nil)
	if err != nil {
		return err
	}

	source := "(defaults)"
	if cfgPath != "" {
		source = cfgPath
		if p, err := filepath.Abs(cfgPath); err == nil {
			source = p
		}
	}

	b, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("render config: %w", err)
	}

	fmt.Fprintf(w, "config.path=%s\n", source)
	fmt.Fprintf(w, "----- BEGIN EFFECTIVE CONFIG -----\n")
	_, _ = w.Write(b)
	if len(b) == 0 || b[len(b)-1] != '\n' {
		fmt.Fprintln(w)
	}
	fmt.Fprintf(w, "----- END EFFECTIVE CONFIG -----\n")
	return nil
}
