// Package metrics writes the outcome of a run as a Prometheus textfile
// (node_exporter textfile collector format).
package metrics

import (
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "procrun"

// Outcome labels.
const (
	OutcomeExited   = "exited"
	OutcomeSignaled = "signaled"
	OutcomeNotFound = "not-found"
	OutcomeError    = "error"
)

// Run is the subset of a run's outcome recorded as metrics.
type Run struct {
	Executable string
	Outcome    string
	ExitCode   int
	Timed      bool
	Duration   time.Duration
	FinishedAt time.Time
}

// Recorder holds one registry per process; every Record overwrites the
// previous values.
type Recorder struct {
	reg *prometheus.Registry

	exitCode  *prometheus.GaugeVec
	success   *prometheus.GaugeVec
	duration  *prometheus.GaugeVec
	finished  *prometheus.GaugeVec
	outcome   *prometheus.GaugeVec
	outcomeOf map[string]string
}

func NewRecorder() *Recorder {
	r := &Recorder{
		reg: prometheus.NewRegistry(),
		exitCode: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Subsystem: "last_run",
				Name:      "exit_code",
				Help:      "Exit code of the last run (-signo when signalled, -1 when it never started).",
			},
			[]string{"executable"},
		),
		success: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Subsystem: "last_run",
				Name:      "success",
				Help:      "1 if the last run exited with status 0, else 0.",
			},
			[]string{"executable"},
		),
		duration: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Subsystem: "last_run",
				Name:      "duration_seconds",
				Help:      "Wall-clock duration of the last timed run in seconds.",
			},
			[]string{"executable"},
		),
		finished: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Subsystem: "last_run",
				Name:      "timestamp_seconds",
				Help:      "Unix time the last run finished.",
			},
			[]string{"executable"},
		),
		outcome: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Subsystem: "last_run",
				Name:      "outcome",
				Help:      "Outcome of the last run; the active outcome label has value 1.",
			},
			[]string{"executable", "outcome"},
		),
		outcomeOf: make(map[string]string),
	}

	r.reg.MustRegister(r.exitCode, r.success, r.duration, r.finished, r.outcome)
	return r
}

// Record stores run in the registry.
func (r *Recorder) Record(run Run) {
	exe := run.Executable

	if prev, ok := r.outcomeOf[exe]; ok && prev != run.Outcome {
		r.outcome.DeleteLabelValues(exe, prev)
	}
	r.outcomeOf[exe] = run.Outcome
	r.outcome.WithLabelValues(exe, run.Outcome).Set(1)

	r.exitCode.WithLabelValues(exe).Set(float64(run.ExitCode))

	ok := 0.0
	if run.Outcome == OutcomeExited && run.ExitCode == 0 {
		ok = 1
	}
	r.success.WithLabelValues(exe).Set(ok)

	if run.Timed {
		r.duration.WithLabelValues(exe).Set(run.Duration.Seconds())
	} else {
		r.duration.DeleteLabelValues(exe)
	}

	finished := run.FinishedAt
	if finished.IsZero() {
		finished = time.Now()
	}
	r.finished.WithLabelValues(exe).Set(float64(finished.UnixNano()) / 1e9)
}

// WriteTextfile writes the registry to path atomically (temp file + rename).
func (r *Recorder) WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, r.reg); err != nil {
		return fmt.Errorf("write metrics textfile %q: %w", path, err)
	}
	return nil
}

// Gatherer exposes the registry, mainly for tests.
func (r *Recorder) Gatherer() prometheus.Gatherer {
	return r.reg
}
