package errors_test

import (
	"fmt"
	"io"
	"testing"

	"github.com/pysugar/backend/errors"
	"github.com/stretchr/testify/assert"
)

var errBase = errors.New("base failure")

func TestSingle(t *testing.T) {
	err := errors.Single(errBase, io.ErrUnexpectedEOF)

	assert.EqualError(t, err, "base failure: unexpected EOF")
	assert.True(t, errors.Is(err, errBase))
	assert.True(t, errors.Is(err, io.ErrUnexpectedEOF))
	assert.False(t, errors.Is(err, io.EOF))
}

func TestSingleWithoutCause(t *testing.T) {
	err := errors.Single(errBase, nil)

	assert.EqualError(t, err, "base failure")
	assert.True(t, errors.Is(err, errBase))
}

func TestCause(t *testing.T) {
	assert.Nil(t, errors.Cause(nil))

	wrapped := fmt.Errorf("outer: %w", errors.Single(errBase, io.ErrClosedPipe))
	assert.Equal(t, io.ErrClosedPipe, errors.Cause(wrapped))
	assert.Equal(t, io.EOF, errors.Cause(io.EOF))
}
