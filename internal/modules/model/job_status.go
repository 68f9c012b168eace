package model

import "fmt"

// JobStatus is the lifecycle state of a long-running operation row
// (CSV ingestion, export, publish, AI generation).
type JobStatus string

const (
	JobStatusPending             JobStatus = "pending"
	JobStatusInProgress          JobStatus = "in_progress"
	JobStatusCompleted           JobStatus = "completed"
	JobStatusCompletedWithErrors JobStatus = "completed_with_errors"
	JobStatusFailed              JobStatus = "failed"
)

// ActiveJobStatuses are the states a job may still leave.
var ActiveJobStatuses = []JobStatus{JobStatusPending, JobStatusInProgress}

func (s JobStatus) Valid() bool {
	switch s {
	case JobStatusPending, JobStatusInProgress, JobStatusCompleted, JobStatusCompletedWithErrors, JobStatusFailed:
		return true
	}
	return false
}

func (s JobStatus) IsTerminal() bool {
	switch s {
	case JobStatusCompleted, JobStatusCompletedWithErrors, JobStatusFailed:
		return true
	}
	return false
}

// CanTransitionTo reports whether next is a legal successor of s.
// Only active jobs move, and only into a terminal state.
func (s JobStatus) CanTransitionTo(next JobStatus) bool {
	if s.IsTerminal() || !s.Valid() {
		return false
	}
	return next.IsTerminal()
}

// Transition returns next if the move is legal.
func (s JobStatus) Transition(next JobStatus) (JobStatus, error) {
	if !s.CanTransitionTo(next) {
		return s, fmt.Errorf("illegal job status transition %s -> %s", s, next)
	}
	return next, nil
}

// ActiveStatusValues is used in conditional UPDATE ... WHERE status IN (?) clauses.
func ActiveStatusValues() []string {
	out := make([]string, 0, len(ActiveJobStatuses))
	for _, s := range ActiveJobStatuses {
		out = append(out, string(s))
	}
	return out
}
