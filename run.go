package apicheck

import (
	"context"
	"time"
)

// Run is the recorded outcome of one conformance check.
type Run struct {
	ID            string    `json:"id"`
	Crate         string    `json:"crate"`
	Source        string    `json:"source"`
	OK            bool      `json:"ok"`
	Gaps          []string  `json:"gaps"`
	ReferenceHash string    `json:"referenceHash"`
	LocalHash     string    `json:"localHash"`
	CreatedAt     time.Time `json:"createdAt"`
}

// Validate returns an error if the run contains invalid fields.
func (r *Run) Validate() error {
	if r.Crate == "" {
		return Errorf(EINVALID, "run crate required")
	}
	if r.Source == "" {
		return Errorf(EINVALID, "run source required")
	}
	return nil
}

// RunService represents a service for recording check runs.
type RunService interface {
	// CreateRun records a run, assigning its ID and CreatedAt.
	CreateRun(ctx context.Context, run *Run) error

	// FindRuns retrieves runs matching the filter, newest first.
	FindRuns(ctx context.Context, filter RunFilter) ([]*Run, error)
}

// RunFilter represents a filter for FindRuns.
type RunFilter struct {
	Crate  *string `json:"crate"`
	Source *string `json:"source"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}
