package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

const (
	DefaultExecutable = "app.exe"

	OutputInherit = "inherit"
	OutputCapture = "capture"
	OutputDiscard = "discard"

	StyleStatus = "status"
	StyleExit   = "exit"

	LogText = "text"
	LogJSON = "json"
)

// Env var names read by ApplyEnv.
const (
	EnvExecutable  = "PROCRUN_EXECUTABLE"
	EnvMeasureTime = "PROCRUN_MEASURE_TIME"
	EnvLogLevel    = "PROCRUN_LOG_LEVEL"
	EnvLogFormat   = "PROCRUN_LOG_FORMAT"
)

type Log struct {
	Format string `yaml:"format" toml:"format"` // text | json
	Level  string `yaml:"level" toml:"level"`   // debug | info | warn | error
}

type Config struct {
	// Alvo
	Executable string            `yaml:"executable" toml:"executable"`
	Args       []string          `yaml:"args,omitempty" toml:"args"`
	Dir        string            `yaml:"dir,omitempty" toml:"dir"`
	Env        map[string]string `yaml:"env,omitempty" toml:"env"`

	// Execução
	MeasureTime bool   `yaml:"measure_time" toml:"measure_time"`
	Output      string `yaml:"output" toml:"output"` // inherit | capture | discard

	// Saída
	Style       string `yaml:"style" toml:"style"` // status | exit
	MetricsFile string `yaml:"metrics_file,omitempty" toml:"metrics_file"`

	Log Log `yaml:"log" toml:"log"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		Executable: DefaultExecutable,
		Output:     OutputInherit,
		Style:      StyleStatus,
		Log: Log{
			Format: LogText,
			Level:  "warn",
		},
	}
}

// LoadFromFile decodes path over Default(). The format is picked from the
// file extension: .yaml/.yml or .toml.
//
// The result is not validated: env and flag overrides still apply on top,
// so callers run Validate once the layers are merged.
func LoadFromFile(path string) (*Config, error) {
	cfg := Default()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config file %q: %w", path, err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("invalid yaml %q: %w", path, err)
		}
	case ".toml":
		if _, err := toml.DecodeFile(path, cfg); err != nil {
			return nil, fmt.Errorf("invalid toml %q: %w", path, err)
		}
	default:
		return nil, fmt.Errorf("config file %q: unsupported extension (want .yaml, .yml or .toml)", path)
	}

	return cfg, nil
}

// ApplyEnv overrides fields from the PROCRUN_* variables. Empty values are
// ignored.
func (c *Config) ApplyEnv(getenv func(string) string) error {
	if getenv == nil {
		getenv = os.Getenv
	}

	if v := strings.TrimSpace(getenv(EnvExecutable)); v != "" {
		c.Executable = v
	}

	if v := strings.TrimSpace(getenv(EnvMeasureTime)); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("config: %s must be a boolean: %w", EnvMeasureTime, err)
		}
		c.MeasureTime = b
	}

	if v := strings.TrimSpace(getenv(EnvLogLevel)); v != "" {
		c.Log.Level = strings.ToLower(v)
	}

	if v := strings.TrimSpace(getenv(EnvLogFormat)); v != "" {
		c.Log.Format = strings.ToLower(v)
	}

	return nil
}

func (c *Config) Validate() error {
	if strings.TrimSpace(c.Executable) == "" {
		return fmt.Errorf("config: executable is required")
	}

	if strings.ContainsRune(c.Executable, 0) {
		return fmt.Errorf("config: executable contains NUL byte")
	}

	switch c.Output {
	case OutputInherit, OutputCapture, OutputDiscard:
	default:
		return fmt.Errorf("config: output must be inherit, capture or discard")
	}

	switch c.Style {
	case StyleStatus, StyleExit:
	default:
		return fmt.Errorf("config: style must be status or exit")
	}

	switch c.Log.Format {
	case LogText, LogJSON:
	default:
		return fmt.Errorf("config: log.format must be text or json")
	}

	switch strings.ToLower(c.Log.Level) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("config: log.level must be debug, info, warn or error")
	}

	for k := range c.Env {
		if k == "" || strings.ContainsAny(k, "=\x00") {
			return fmt.Errorf("config: env[%q] is not a valid variable name", k)
		}
	}

	return nil
}

// Environ converts Env into KEY=VALUE pairs in a stable order.
func (c *Config) Environ() []string {
	if len(c.Env) == 0 {
		return nil
	}
	keys := make([]string, 0, len(c.Env))
	for k := range c.Env {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	out := make([]string, 0, len(keys))
	for _, k := range keys {
		out = append(out, k+"="+c.Env[k])
	}
	return out
}
