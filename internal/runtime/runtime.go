package runtime

import (
	"fmt"
	"os"
)

// OutputMode decide o destino de stdout/stderr do filho.
type OutputMode string

const (
	// OutputInherit compartilha stdin/stdout/stderr do wrapper.
	OutputInherit OutputMode = "inherit"
	// OutputCapture coleta stdout e stderr em buffers separados.
	OutputCapture OutputMode = "capture"
	// OutputDiscard manda stdout/stderr para o null device.
	OutputDiscard OutputMode = "discard"
)

func ParseOutputMode(s string) (OutputMode, error) {
	switch OutputMode(s) {
	case OutputInherit, OutputCapture, OutputDiscard:
		return OutputMode(s), nil
	case "":
		return OutputInherit, nil
	default:
		return "", fmt.Errorf("invalid output mode: %s", s)
	}
}

// Target descreve um processo a ser lançado.
type Target struct {
	Path   string
	Args   []string
	Dir    string
	Env    []string // KEY=VALUE extras, somados ao env do wrapper
	Output OutputMode
}

// Runtime é a menor interface que o Runner precisa.
type Runtime interface {
	Spawn(t Target) (*Process, error)
}

func environ(extra []string) []string {
	if len(extra) == 0 {
		// nil => exec herda o env do processo atual
		return nil
	}
	return append(os.Environ(), extra...)
}
