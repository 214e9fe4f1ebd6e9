package cli

import (
	"os"
)

// pickDefaultConfig returns the first config file found in the working
// directory, or "" to run on built-in defaults.
func pickDefaultConfig() string {
	for _, candidate := range []string{"procrun.yaml", "procrun.yml", "procrun.toml"} {
		if _, err := os.Stat(candidate); err == nil {
			return candidate
		}
	}
	return ""
}
