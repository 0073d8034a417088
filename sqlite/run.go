package sqlite

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/fwojciec/apicheck"
	"github.com/goccy/go-json"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var _ apicheck.RunService = (*RunService)(nil)

// RunService implements apicheck.RunService using SQLite.
type RunService struct {
	db *DB
}

// NewRunService creates a new RunService.
func NewRunService(db *DB) *RunService {
	return &RunService{db: db}
}

// CreateRun records a check run. Gaps are stored as a JSON array.
func (s *RunService) CreateRun(ctx context.Context, run *apicheck.Run) error {
	if err := run.Validate(); err != nil {
		return err
	}

	gaps := run.Gaps
	if gaps == nil {
		gaps = []string{}
	}
	encoded, err := json.Marshal(gaps)
	if err != nil {
		return fmt.Errorf("failed to encode gaps: %w", err)
	}

	run.ID = uuid.New().String()
	run.CreatedAt = time.Now().UTC().Truncate(time.Second)

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO runs (id, crate, source, ok, gaps, reference_hash, local_hash, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`, run.ID, run.Crate, run.Source, run.OK, string(encoded), run.ReferenceHash, run.LocalHash,
		run.CreatedAt.Format(time.RFC3339))

	return err
}

// FindRuns retrieves runs matching the filter, newest first.
func (s *RunService) FindRuns(ctx context.Context, filter apicheck.RunFilter) ([]*apicheck.Run, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT id, crate, source, ok, gaps, reference_hash, local_hash, created_at FROM runs WHERE 1=1")

	if filter.Crate != nil {
		query.WriteString(" AND crate = ?")
		args = append(args, *filter.Crate)
	}
	if filter.Source != nil {
		query.WriteString(" AND source = ?")
		args = append(args, *filter.Source)
	}

	// rowid breaks ties between runs recorded within the same second.
	query.WriteString(" ORDER BY created_at DESC, rowid DESC")
	appendPagination(&query, &args, filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	runs := make([]*apicheck.Run, 0)
	for rows.Next() {
		var run apicheck.Run
		var gaps, createdAt string

		if err := rows.Scan(&run.ID, &run.Crate, &run.Source, &run.OK, &gaps,
			&run.ReferenceHash, &run.LocalHash, &createdAt); err != nil {
			return nil, err
		}

		if err := json.Unmarshal([]byte(gaps), &run.Gaps); err != nil {
			return nil, fmt.Errorf("failed to decode gaps of run %s: %w", run.ID, err)
		}
		if run.CreatedAt, err = parseRFC3339(createdAt, "created_at"); err != nil {
			return nil, err
		}

		runs = append(runs, &run)
	}

	return runs, rows.Err()
}
