package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/apicheck"
)

// Ensure LoggingRunService implements apicheck.RunService.
var _ apicheck.RunService = (*LoggingRunService)(nil)

// LoggingRunService wraps a RunService with debug logging.
type LoggingRunService struct {
	next   apicheck.RunService
	logger *slog.Logger
}

// NewLoggingRunService creates a new LoggingRunService.
func NewLoggingRunService(next apicheck.RunService, logger *slog.Logger) *LoggingRunService {
	return &LoggingRunService{next: next, logger: logger}
}

// CreateRun delegates to the wrapped service and logs the operation.
func (s *LoggingRunService) CreateRun(ctx context.Context, run *apicheck.Run) (err error) {
	defer func(begin time.Time) {
		s.logger.Info("create run",
			"crate", run.Crate,
			"source", run.Source,
			"ok", run.OK,
			"gaps", len(run.Gaps),
			"id", run.ID,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.CreateRun(ctx, run)
}

// FindRuns delegates to the wrapped service and logs the operation.
func (s *LoggingRunService) FindRuns(ctx context.Context, filter apicheck.RunFilter) (runs []*apicheck.Run, err error) {
	defer func(begin time.Time) {
		s.logger.Info("find runs",
			"count", len(runs),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.FindRuns(ctx, filter)
}
