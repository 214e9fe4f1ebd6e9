// Package report renders run outcomes as the human-readable lines printed on
// stdout.
package report

import (
	"errors"
	"fmt"
	"io"

	"procrun/internal/runner"
)

type Style string

const (
	// StyleStatus prints "Status code <N>".
	StyleStatus Style = "status"
	// StyleExit prints "Exit code: <N>".
	StyleExit Style = "exit"
)

type Printer struct {
	w     io.Writer
	style Style
}

func New(w io.Writer, style Style) *Printer {
	if style == "" {
		style = StyleStatus
	}
	return &Printer{w: w, style: style}
}

// Result writes the exit status line and, when the run was timed, the
// "Took <ms>" line.
func (p *Printer) Result(res runner.Result) error {
	line := p.codeLine(res.ExitCode)
	if res.Signaled {
		line += fmt.Sprintf(" (signal %s)", res.Signal)
	}
	if _, err := fmt.Fprintln(p.w, line); err != nil {
		return err
	}
	if res.Timed {
		if _, err := fmt.Fprintf(p.w, "Took %d\n", res.ElapsedMs()); err != nil {
			return err
		}
	}
	return nil
}

// Failure writes the one-line message for a run that never produced a
// status.
func (p *Printer) Failure(path string, err error) error {
	if errors.Is(err, runner.ErrNotFound) {
		_, werr := fmt.Fprintf(p.w, "The executable %s was not found.\n", path)
		return werr
	}
	_, werr := fmt.Fprintf(p.w, "An error occurred: %s\n", describe(err))
	return werr
}

// Outcome dispatches to Result or Failure.
func (p *Printer) Outcome(res runner.Result, err error) error {
	if err != nil {
		return p.Failure(res.Executable, err)
	}
	return p.Result(res)
}

func (p *Printer) codeLine(code int) string {
	if p.style == StyleExit {
		return fmt.Sprintf("Exit code: %d", code)
	}
	return fmt.Sprintf("Status code %d", code)
}

// describe strips the runner's op/path prefix and keeps the cause text.
func describe(err error) string {
	var rerr *runner.Error
	if errors.As(err, &rerr) && rerr.Err != nil {
		return rerr.Err.Error()
	}
	return err.Error()
}
