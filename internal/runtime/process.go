package runtime

import (
	"bytes"
	"os"
	"os/exec"
	"slices"
)

// Process é o handle de um filho já iniciado.
// Pertence a quem chamou Spawn até Wait retornar.
type Process struct {
	cmd    *exec.Cmd
	stdout *bytes.Buffer
	stderr *bytes.Buffer
}

func (p *Process) Pid() int {
	if p == nil || p.cmd == nil || p.cmd.Process == nil {
		return 0
	}
	return p.cmd.Process.Pid
}

// Wait bloqueia até o filho terminar. Não há timeout.
// Um exit != 0 volta como *exec.ExitError junto com o ProcessState.
func (p *Process) Wait() (*os.ProcessState, error) {
	err := p.cmd.Wait()
	return p.cmd.ProcessState, err
}

// Stdout devolve uma cópia do que foi capturado (só em OutputCapture).
func (p *Process) Stdout() []byte {
	if p.stdout == nil {
		return nil
	}
	return slices.Clone(p.stdout.Bytes())
}

// Stderr devolve uma cópia do que foi capturado (só em OutputCapture).
func (p *Process) Stderr() []byte {
	if p.stderr == nil {
		return nil
	}
	return slices.Clone(p.stderr.Bytes())
}
