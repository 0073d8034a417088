package apicheck_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/fwojciec/apicheck"
	"github.com/stretchr/testify/assert"
)

func TestErrorf(t *testing.T) {
	t.Parallel()

	err := apicheck.Errorf(apicheck.ENOTFOUND, "source %q not found", "Vec")

	assert.Equal(t, apicheck.ENOTFOUND, apicheck.ErrorCode(err))
	assert.Equal(t, "source \"Vec\" not found", apicheck.ErrorMessage(err))
}

func TestErrorCode_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, apicheck.ErrorCode(nil))
}

func TestErrorMessage_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, apicheck.ErrorMessage(nil))
}

func TestErrorCode_WrappedError(t *testing.T) {
	t.Parallel()

	err := fmt.Errorf("extract reference: %w", apicheck.Errorf(apicheck.ENOTFOUND, "element not found"))

	assert.Equal(t, apicheck.ENOTFOUND, apicheck.ErrorCode(err))
	assert.Equal(t, "element not found", apicheck.ErrorMessage(err))
}

func TestErrorCode_NonApplicationError(t *testing.T) {
	t.Parallel()

	err := errors.New("disk on fire")

	assert.Equal(t, apicheck.EINTERNAL, apicheck.ErrorCode(err))
	assert.Equal(t, "Internal error.", apicheck.ErrorMessage(err))
}
