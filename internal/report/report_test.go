package report

import (
	"bytes"
	"errors"
	"fmt"
	"testing"
	"time"

	"procrun/internal/runner"
)

func TestPrinter_Result(t *testing.T) {
	tests := []struct {
		name  string
		style Style
		res   runner.Result
		want  string
	}{
		{
			name:  "status zero",
			style: StyleStatus,
			res:   runner.Result{ExitCode: 0},
			want:  "Status code 0\n",
		},
		{
			name:  "status 42",
			style: StyleStatus,
			res:   runner.Result{ExitCode: 42},
			want:  "Status code 42\n",
		},
		{
			name:  "exit timed",
			style: StyleExit,
			res:   runner.Result{ExitCode: 3, Timed: true, Elapsed: 1234*time.Millisecond + 999*time.Microsecond},
			want:  "Exit code: 3\nTook 1234\n",
		},
		{
			name:  "status timed zero",
			style: StyleStatus,
			res:   runner.Result{ExitCode: 0, Timed: true},
			want:  "Status code 0\nTook 0\n",
		},
		{
			name:  "default style",
			style: "",
			res:   runner.Result{ExitCode: 1},
			want:  "Status code 1\n",
		},
		{
			name:  "signalled",
			style: StyleExit,
			res:   runner.Result{ExitCode: -9, Signaled: true, Signal: "SIGKILL"},
			want:  "Exit code: -9 (signal SIGKILL)\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			if err := New(&buf, tt.style).Result(tt.res); err != nil {
				t.Fatalf("Result: %v", err)
			}
			if buf.String() != tt.want {
				t.Fatalf("got %q, want %q", buf.String(), tt.want)
			}
		})
	}
}

func TestPrinter_Failure(t *testing.T) {
	notFound := &runner.Error{
		Kind: runner.KindNotFound,
		Op:   "start",
		Path: "does_not_exist.exe",
		Err:  errors.New(`exec: "does_not_exist.exe": executable file not found in $PATH`),
	}
	denied := &runner.Error{
		Kind: runner.KindOther,
		Op:   "start",
		Path: "./tool",
		Err:  errors.New("fork/exec ./tool: permission denied"),
	}

	tests := []struct {
		name string
		err  error
		want string
	}{
		{"not found", notFound, "The executable does_not_exist.exe was not found.\n"},
		{"wrapped not found", fmt.Errorf("run: %w", notFound), "The executable does_not_exist.exe was not found.\n"},
		{"other", denied, "An error occurred: fork/exec ./tool: permission denied\n"},
		{"plain error", errors.New("boom"), "An error occurred: boom\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			path := "does_not_exist.exe"
			if err := New(&buf, StyleStatus).Failure(path, tt.err); err != nil {
				t.Fatalf("Failure: %v", err)
			}
			if buf.String() != tt.want {
				t.Fatalf("got %q, want %q", buf.String(), tt.want)
			}
		})
	}
}

func TestPrinter_Outcome(t *testing.T) {
	var buf bytes.Buffer
	p := New(&buf, StyleExit)

	if err := p.Outcome(runner.Result{ExitCode: 7}, nil); err != nil {
		t.Fatalf("Outcome: %v", err)
	}
	err := p.Outcome(runner.Result{Executable: "app.exe"}, &runner.Error{Kind: runner.KindNotFound, Err: errors.New("x")})
	if err != nil {
		t.Fatalf("Outcome: %v", err)
	}

	want := "Exit code: 7\nThe executable app.exe was not found.\n"
	if buf.String() != want {
		t.Fatalf("got %q, want %q", buf.String(), want)
	}
}
