package mock

import (
	"context"

	"github.com/fwojciec/apicheck"
)

var _ apicheck.RunService = (*RunService)(nil)

// RunService is a mock implementation of apicheck.RunService.
type RunService struct {
	CreateRunFn func(ctx context.Context, run *apicheck.Run) error
	FindRunsFn  func(ctx context.Context, filter apicheck.RunFilter) ([]*apicheck.Run, error)
}

func (s *RunService) CreateRun(ctx context.Context, run *apicheck.Run) error {
	return s.CreateRunFn(ctx, run)
}

func (s *RunService) FindRuns(ctx context.Context, filter apicheck.RunFilter) ([]*apicheck.Run, error) {
	return s.FindRunsFn(ctx, filter)
}
