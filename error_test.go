package lumi_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/fwojciec/lumi"
	"github.com/stretchr/testify/assert"
)

func TestErrorf(t *testing.T) {
	t.Parallel()

	err := lumi.Errorf(lumi.ENOTFOUND, "file %q not found", "C:\\a.pdf")

	assert.Equal(t, lumi.ENOTFOUND, lumi.ErrorCode(err))
	assert.Equal(t, "file \"C:\\\\a.pdf\" not found", lumi.ErrorMessage(err))
}

func TestErrorCode_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, lumi.ErrorCode(nil))
}

func TestErrorMessage_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, lumi.ErrorMessage(nil))
}

func TestErrorCode_WrappedError(t *testing.T) {
	t.Parallel()

	err := fmt.Errorf("search: %w", lumi.Errorf(lumi.EUNAVAILABLE, "connection refused"))

	assert.Equal(t, lumi.EUNAVAILABLE, lumi.ErrorCode(err))
	assert.Equal(t, "connection refused", lumi.ErrorMessage(err))
}

func TestErrorCode_ForeignError(t *testing.T) {
	t.Parallel()

	err := errors.New("boom")

	assert.Equal(t, lumi.EINTERNAL, lumi.ErrorCode(err))
	assert.Equal(t, "Internal error.", lumi.ErrorMessage(err))
}
