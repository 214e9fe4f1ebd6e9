//go:build unix

package runtime

import (
	"os"
	"path/filepath"
	"testing"
)

func TestNativeRuntime_Spawn_BareNameFromDotInPath(t *testing.T) {
	dir := t.TempDir()
	script := filepath.Join(dir, "localtool")
	if err := os.WriteFile(script, []byte("#!/bin/sh\nexit 5\n"), 0o755); err != nil {
		t.Fatalf("write script: %v", err)
	}
	oldwd, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("chdir: %v", err)
	}
	t.Cleanup(func() { _ = os.Chdir(oldwd) })
	t.Setenv("PATH", ".")

	p, err := NativeRuntime{}.Spawn(Target{Path: "localtool", Output: OutputDiscard})
	if err != nil {
		t.Fatalf("Spawn error: %v", err)
	}
	state, _ := p.Wait()
	if state == nil || state.ExitCode() != 5 {
		t.Fatalf("expected exit code 5, got %v", state)
	}
}
