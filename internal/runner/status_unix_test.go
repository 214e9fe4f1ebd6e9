//go:build unix

package runner

import (
	"os"
	"path/filepath"
	"testing"

	"procrun/internal/config"
)

func TestRun_KilledBySignal(t *testing.T) {
	cfg := helperConfig("kill")

	res, err := New(cfg).Run(quietCtx(), cfg.Executable, true)
	if err != nil {
		t.Fatalf("a signalled child is still a result, got error: %v", err)
	}
	if !res.Signaled {
		t.Fatalf("Signaled = false: %+v", res)
	}
	if res.Signal != "SIGKILL" {
		t.Fatalf("Signal = %q, want SIGKILL", res.Signal)
	}
	if res.ExitCode != -9 {
		t.Fatalf("ExitCode = %d, want -9", res.ExitCode)
	}
	if res.Success() {
		t.Fatalf("Success() = true for signalled child")
	}
}

func TestRun_PermissionDeniedIsOther(t *testing.T) {
	p := filepath.Join(t.TempDir(), "not-executable")
	if err := os.WriteFile(p, []byte("#!/bin/sh\nexit 0\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	cfg := config.Default()
	cfg.Output = config.OutputDiscard

	_, err := New(cfg).Run(quietCtx(), p, false)
	if err == nil {
		t.Fatalf("expected permission error")
	}
	if KindOf(err) != KindOther {
		t.Fatalf("KindOf = %v, want other (err=%v)", KindOf(err), err)
	}
}
