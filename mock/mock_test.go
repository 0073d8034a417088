package mock_test

import (
	"context"
	"testing"

	"github.com/fwojciec/apicheck"
	"github.com/fwojciec/apicheck/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunService_CreateRun(t *testing.T) {
	t.Parallel()

	t.Run("delegates to CreateRunFn", func(t *testing.T) {
		t.Parallel()

		var calledWith *apicheck.Run
		s := &mock.RunService{
			CreateRunFn: func(_ context.Context, run *apicheck.Run) error {
				calledWith = run
				return nil
			},
		}

		run := &apicheck.Run{Crate: "gdvariants", Source: "Vec"}
		err := s.CreateRun(context.Background(), run)

		require.NoError(t, err)
		assert.Same(t, run, calledWith)
	})

	t.Run("returns error from CreateRunFn", func(t *testing.T) {
		t.Parallel()

		s := &mock.RunService{
			CreateRunFn: func(_ context.Context, _ *apicheck.Run) error {
				return apicheck.Errorf(apicheck.EINTERNAL, "disk full")
			},
		}

		err := s.CreateRun(context.Background(), &apicheck.Run{})

		assert.Equal(t, apicheck.EINTERNAL, apicheck.ErrorCode(err))
	})
}

func TestDetector_Detect(t *testing.T) {
	t.Parallel()

	d := &mock.Detector{
		DetectFn: func(markup string) apicheck.Generator {
			return apicheck.Generator{Name: markup}
		},
	}

	assert.True(t, d.Detect(apicheck.GeneratorRustdoc).IsRustdoc())
}
