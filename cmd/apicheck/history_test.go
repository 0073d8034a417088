package main_test

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/fwojciec/apicheck"
	main "github.com/fwojciec/apicheck/cmd/apicheck"
	"github.com/fwojciec/apicheck/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHistoryCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("lists runs with status", func(t *testing.T) {
		t.Parallel()

		var got apicheck.RunFilter
		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: stdout,
			Stderr: &bytes.Buffer{},
			Info:   &apicheck.Info{Name: "gdvariants"},
			Runs: &mock.RunService{
				FindRunsFn: func(_ context.Context, filter apicheck.RunFilter) ([]*apicheck.Run, error) {
					got = filter
					return []*apicheck.Run{
						{Crate: "gdvariants", Source: "Vec", OK: true, CreatedAt: time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC)},
						{Crate: "gdvariants", Source: "Vec", Gaps: []string{"a", "b"}, CreatedAt: time.Date(2026, 3, 1, 9, 30, 0, 0, time.UTC)},
					}, nil
				},
			},
		}

		err := (&main.HistoryCmd{Item: "Vec", Limit: 5}).Run(deps)

		require.NoError(t, err)
		assert.Equal(t, "2026-03-02T10:00:00Z  gdvariants  Vec  OK\n"+
			"2026-03-01T09:30:00Z  gdvariants  Vec  FAIL (2 gaps)\n", stdout.String())
		require.NotNil(t, got.Crate)
		require.NotNil(t, got.Source)
		assert.Equal(t, "gdvariants", *got.Crate)
		assert.Equal(t, "Vec", *got.Source)
		assert.Equal(t, 5, got.Limit)
	})

	t.Run("does not filter by crate without configuration", func(t *testing.T) {
		t.Parallel()

		var got apicheck.RunFilter
		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: &bytes.Buffer{},
			Stderr: &bytes.Buffer{},
			Runs: &mock.RunService{
				FindRunsFn: func(_ context.Context, filter apicheck.RunFilter) ([]*apicheck.Run, error) {
					got = filter
					return nil, nil
				},
			},
		}

		err := (&main.HistoryCmd{}).Run(deps)

		require.NoError(t, err)
		assert.Nil(t, got.Crate)
		assert.Nil(t, got.Source)
	})

	t.Run("returns store error", func(t *testing.T) {
		t.Parallel()

		dbErr := errors.New("database connection failed")
		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: &bytes.Buffer{},
			Stderr: &bytes.Buffer{},
			Runs: &mock.RunService{
				FindRunsFn: func(context.Context, apicheck.RunFilter) ([]*apicheck.Run, error) {
					return nil, dbErr
				},
			},
		}

		err := (&main.HistoryCmd{}).Run(deps)

		assert.Equal(t, dbErr, err)
	})
}
