// Package runner launches one executable, waits for it and returns its
// Result.
package runner

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"os/exec"
	"time"

	"procrun/internal/config"
	"procrun/internal/observability/logging"
	"procrun/internal/runtime"
)

type Runner struct {
	cfg *config.Config
	rt  runtime.Runtime
}

func New(cfg *config.Config) *Runner {
	return &Runner{cfg: cfg, rt: runtime.NativeRuntime{}}
}

// Run spawns path with the configured args, dir, env and output mode, then
// blocks until it terminates. There is no timeout and ctx never kills the
// child; ctx only carries the logger and run id.
//
// When measureTime is set, Elapsed covers the span from just before spawn
// to just after the wait returns.
//
// A child that exits non-zero is a successful Run. The returned error is
// always an *Error; the Result is still populated with RunID and
// Executable.
func (r *Runner) Run(ctx context.Context, path string, measureTime bool) (Result, error) {
	ctx, runID := logging.EnsureRunID(ctx)

	log := logging.LoggerFromContext(ctx).With(
		logging.RunID(runID),
		logging.Executable(path),
	)

	res := Result{
		RunID:      runID,
		Executable: path,
		ExitCode:   -1,
	}

	output, err := runtime.ParseOutputMode(r.cfg.Output)
	if err != nil {
		return res, &Error{Kind: KindOther, Op: "start", Path: path, Err: err}
	}

	target := runtime.Target{
		Path:   path,
		Args:   r.cfg.Args,
		Dir:    r.cfg.Dir,
		Env:    r.cfg.Environ(),
		Output: output,
	}

	var start time.Time
	if measureTime {
		start = time.Now()
	}

	p, err := r.rt.Spawn(target)
	if err != nil {
		rerr := classify("start", path, err)
		log.Info("process start failed",
			logging.Kind(rerr.Kind.String()),
			logging.Err(err),
		)
		return res, rerr
	}

	log.Debug("process started",
		logging.PID(p.Pid()),
		logging.Output(string(output)),
	)

	state, werr := p.Wait()
	if measureTime {
		res.Timed = true
		res.Elapsed = time.Since(start)
	}

	if output == runtime.OutputCapture {
		res.Stdout = p.Stdout()
		res.Stderr = p.Stderr()
		log.Debug("captured output",
			slog.Int("stdout_bytes", len(res.Stdout)),
			slog.Int("stderr_bytes", len(res.Stderr)),
		)
	}

	if werr != nil {
		var exitErr *exec.ExitError
		if !errors.As(werr, &exitErr) {
			rerr := classify("wait", path, werr)
			log.Info("process wait failed",
				logging.Kind(rerr.Kind.String()),
				logging.Err(werr),
			)
			return res, rerr
		}
	}

	res.ExitCode = exitCodeFrom(state)
	if signo, name, ok := signalOf(state); ok {
		res.Signaled = true
		res.Signal = name
		res.ExitCode = -signo
	}

	attrs := []any{logging.ExitCode(res.ExitCode)}
	if res.Timed {
		attrs = append(attrs, logging.DurationMs(res.ElapsedMs()))
	}
	if res.Signaled {
		attrs = append(attrs, slog.String("signal", res.Signal))
	}
	log.Info("process exited", attrs...)

	return res, nil
}

func exitCodeFrom(state *os.ProcessState) int {
	if state == nil {
		return -1
	}
	return state.ExitCode()
}
