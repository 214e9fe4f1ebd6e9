//go:build unix

package runner

import (
	"errors"
	"os"
	"syscall"

	"golang.org/x/sys/unix"
)

// signalOf reports the terminating signal of a child, if any.
func signalOf(state *os.ProcessState) (signo int, name string, ok bool) {
	if state == nil {
		return 0, "", false
	}
	ws, isWS := state.Sys().(syscall.WaitStatus)
	if !isWS || !ws.Signaled() {
		return 0, "", false
	}
	sig := ws.Signal()
	name = unix.SignalName(sig)
	if name == "" {
		name = sig.String()
	}
	return int(sig), name, true
}

// ENOTDIR: um componente do caminho não é diretório (ex.: "arquivo/app").
func isNotFoundErrno(err error) bool {
	return errors.Is(err, unix.ENOENT) || errors.Is(err, unix.ENOTDIR)
}
