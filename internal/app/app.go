package app

import (
	"context"
	"errors"
	"io"
	"os"
	"time"

	"procrun/internal/config"
	"procrun/internal/observability/logging"
	"procrun/internal/observability/metrics"
	"procrun/internal/report"
	"procrun/internal/runner"
)

type App struct {
	cfg     *config.Config
	runner  *runner.Runner
	printer *report.Printer
	metrics *metrics.Recorder
}

// New wires one App from a validated config. stdout receives the report
// lines; nil means os.Stdout.
func New(cfg *config.Config, stdout io.Writer) (*App, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if stdout == nil {
		stdout = os.Stdout
	}

	a := &App{
		cfg:     cfg,
		runner:  runner.New(cfg),
		printer: report.New(stdout, report.Style(cfg.Style)),
	}
	if cfg.MetricsFile != "" {
		a.metrics = metrics.NewRecorder()
	}
	return a, nil
}

// Run executes the configured executable once and reports the outcome.
//
// The run outcome (including *runner.Error) is returned for inspection
// only; it has already been printed. Callers must not turn it into a
// process failure.
func (a *App) Run(ctx context.Context) (runner.Result, error) {
	res, runErr := a.runner.Run(ctx, a.cfg.Executable, a.cfg.MeasureTime)

	log := logging.LoggerFromContext(ctx).With(logging.RunID(res.RunID))

	if err := a.printer.Outcome(res, runErr); err != nil {
		log.Warn("report write failed", logging.Err(err))
	}

	if a.metrics != nil {
		a.metrics.Record(metricsRun(res, runErr))
		if err := a.metrics.WriteTextfile(a.cfg.MetricsFile); err != nil {
			log.Warn("metrics write failed", logging.Err(err))
		}
	}

	return res, runErr
}

func metricsRun(res runner.Result, runErr error) metrics.Run {
	m := metrics.Run{
		Executable: res.Executable,
		ExitCode:   res.ExitCode,
		Timed:      res.Timed,
		Duration:   res.Elapsed,
		FinishedAt: time.Now(),
	}
	switch {
	case errors.Is(runErr, runner.ErrNotFound):
		m.Outcome = metrics.OutcomeNotFound
	case runErr != nil:
		m.Outcome = metrics.OutcomeError
	case res.Signaled:
		m.Outcome = metrics.OutcomeSignaled
	default:
		m.Outcome = metrics.OutcomeExited
	}
	return m
}
