package codesearch_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/fwojciec/codesearch"
	"github.com/stretchr/testify/assert"
)

func TestErrorf(t *testing.T) {
	t.Parallel()

	err := codesearch.Errorf(codesearch.ENOTFOUND, "project file %q not found", "a.sublime-project")

	assert.Equal(t, codesearch.ENOTFOUND, codesearch.ErrorCode(err))
	assert.Equal(t, "project file \"a.sublime-project\" not found", codesearch.ErrorMessage(err))
}

func TestErrorCode_Wrapped(t *testing.T) {
	t.Parallel()

	err := fmt.Errorf("load: %w", codesearch.Errorf(codesearch.EINVALID, "bad"))

	assert.Equal(t, codesearch.EINVALID, codesearch.ErrorCode(err))
	assert.Equal(t, "bad", codesearch.ErrorMessage(err))
}

func TestErrorCode_NonApplicationError(t *testing.T) {
	t.Parallel()

	err := errors.New("boom")

	assert.Equal(t, codesearch.EINTERNAL, codesearch.ErrorCode(err))
	assert.Equal(t, "Internal error.", codesearch.ErrorMessage(err))
}

func TestErrorCode_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, codesearch.ErrorCode(nil))
}

func TestErrorMessage_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, codesearch.ErrorMessage(nil))
}
