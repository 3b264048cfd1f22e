package batch

import "time"

// Status classifies the outcome of one input file.
type Status int

const (
	StatusPending    Status = iota // Not attempted (batch stopped early).
	StatusOK                       // Tool exited 0.
	StatusSkipped                  // Output directory already existed.
	StatusExitError                // Tool ran and exited non-zero.
	StatusSpawnError               // Tool could not be started.
	StatusNoResults                // Tool exited 0 but wrote no result JSON (--require-results).
)

func (s Status) String() string {
	switch s {
	case StatusPending:
		return "pending"
	case StatusOK:
		return "ok"
	case StatusSkipped:
		return "skipped"
	case StatusExitError:
		return "exit-error"
	case StatusSpawnError:
		return "spawn-error"
	case StatusNoResults:
		return "no-results"
	default:
		return "unknown"
	}
}

// Outcome records what happened to one input file. Outcomes are kept in
// input order so the summary can name every failure distinctly.
type Outcome struct {
	Input     string // Absolute input file path.
	OutputDir string // Derived output directory.
	Status    Status
	ExitCode  int // Valid when Status is StatusExitError.
	Err       error
	Elapsed   time.Duration
}

// Failed reports whether this outcome counts against the batch exit code.
func (o Outcome) Failed() bool {
	switch o.Status {
	case StatusExitError, StatusSpawnError, StatusNoResults:
		return true
	}
	return false
}

// RunStats tracks aggregate counters across a batch run. Attempted is the
// number of files the batch actually reached; it is lower than Total only
// when the run was interrupted or stopped on a spawn failure.
type RunStats struct {
	Total           int
	Attempted       int
	Completed       int
	Skipped         int
	Failed          int
	TotalInputBytes int64
	Elapsed         time.Duration
	Outcomes        []Outcome
}

// FailedOutcomes returns the outcomes that count as failures, in input order.
func (s *RunStats) FailedOutcomes() []Outcome {
	var out []Outcome
	for _, o := range s.Outcomes {
		if o.Failed() {
			out = append(out, o)
		}
	}
	return out
}

// aggregate fills the counters from the per-file outcomes.
func (s *RunStats) aggregate() {
	for _, o := range s.Outcomes {
		switch o.Status {
		case StatusPending:
			continue
		case StatusOK:
			s.Completed++
		case StatusSkipped:
			s.Skipped++
		default:
			s.Failed++
		}
		s.Attempted++
	}
}
