package runtime

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"os/exec"
)

type NativeRuntime struct{}

// Spawn inicia t.Path com t.Args, sem shell.
//
// Usa exec.Command (e não CommandContext): o wait é incondicional e nada
// além do próprio filho encerra o processo.
func (NativeRuntime) Spawn(t Target) (*Process, error) {
	cmd := exec.Command(t.Path, t.Args...)
	// Nome simples achado via "." no PATH (ou no cwd, no Windows): segue a
	// regra do SO e executa.
	if errors.Is(cmd.Err, exec.ErrDot) {
		cmd.Err = nil
	}
	cmd.Dir = t.Dir
	cmd.Env = environ(t.Env)

	p := &Process{cmd: cmd}

	switch t.Output {
	case OutputInherit, "":
		cmd.Stdin = os.Stdin
		cmd.Stdout = os.Stdout
		cmd.Stderr = os.Stderr
	case OutputCapture:
		p.stdout = &bytes.Buffer{}
		p.stderr = &bytes.Buffer{}
		cmd.Stdin = os.Stdin
		cmd.Stdout = p.stdout
		cmd.Stderr = p.stderr
	case OutputDiscard:
		// nil => /dev/null
	default:
		return nil, fmt.Errorf("invalid output mode: %s", t.Output)
	}

	if err := cmd.Start(); err != nil {
		return nil, err
	}

	return p, nil
}
