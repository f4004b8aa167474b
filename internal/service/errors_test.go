package service

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransErrorFormatting(t *testing.T) {
	cause := fmt.Errorf("connection refused")
	err := WrapError(cause, ErrBackend, "translate call failed").WithContext("backend", "deepl")

	msg := err.Error()
	assert.Contains(t, msg, "[Backend] translate call failed")
	assert.Contains(t, msg, "backend=deepl")
	assert.Contains(t, msg, "cause: connection refused")
	assert.ErrorIs(t, err, cause)
}

func TestIsErrorType(t *testing.T) {
	err := NewError(ErrParse, "bad file")

	assert.True(t, IsErrorType(err, ErrParse))
	assert.False(t, IsErrorType(err, ErrConfig))
	assert.False(t, IsErrorType(fmt.Errorf("plain"), ErrParse))

	wrapped := fmt.Errorf("outer: %w", err)
	assert.True(t, IsErrorType(wrapped, ErrParse))
}

func TestSafeExecuteRecoversPanic(t *testing.T) {
	err := SafeExecute(func() error {
		panic("boom")
	})

	require.Error(t, err)
	assert.True(t, IsErrorType(err, ErrUnknown))
	assert.Contains(t, err.Error(), "boom")
}

func TestSafeExecutePassesThrough(t *testing.T) {
	assert.NoError(t, SafeExecute(func() error { return nil }))

	sentinel := errors.New("sentinel")
	assert.ErrorIs(t, SafeExecute(func() error { return sentinel }), sentinel)
}
