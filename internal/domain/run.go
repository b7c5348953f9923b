package domain

import "time"

type RunStatus string

const (
	StatusRunning    RunStatus = "running"
	StatusDone       RunStatus = "done"
	StatusFailed     RunStatus = "failed"
	StatusNotStarted RunStatus = "not_started"
)

// Run is the record of a single invocation of the external task.
// Records live only in process memory; nothing survives a restart.
type Run struct {
	ID         string    `json:"id"`
	Cycle      uint64    `json:"cycle"`
	StartedAt  time.Time `json:"started_at"`
	FinishedAt time.Time `json:"finished_at"`
	ExitCode   int       `json:"exit_code"`
	Status     RunStatus `json:"status"`
	StartError string    `json:"start_error,omitempty"`
}

func (r Run) Duration() time.Duration {
	if r.FinishedAt.IsZero() {
		return 0
	}
	return r.FinishedAt.Sub(r.StartedAt)
}
