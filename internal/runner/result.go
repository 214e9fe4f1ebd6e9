package runner

import "time"

// Result holds the outcome of one Run. It is never modified after Run
// returns.
type Result struct {
	RunID      string // unique identifier for this run
	Executable string // path as given to Run

	// ExitCode is the child's exit status. A child killed by a signal has no
	// exit status: ExitCode is then -signo and Signaled is set.
	ExitCode int
	Signaled bool
	Signal   string // e.g. "SIGKILL"; empty unless Signaled

	Timed   bool          // true when Run was asked to measure time
	Elapsed time.Duration // spawn-to-wait wall clock; zero unless Timed

	Stdout []byte // captured stdout (capture mode only)
	Stderr []byte // captured stderr (capture mode only)
}

// ElapsedMs is Elapsed truncated to whole milliseconds.
func (r Result) ElapsedMs() int64 {
	return r.Elapsed.Milliseconds()
}

// Success reports whether the child exited normally with status 0.
func (r Result) Success() bool {
	return !r.Signaled && r.ExitCode == 0
}
