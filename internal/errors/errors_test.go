package errors

import (
	stderrors "errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppError_Error(t *testing.T) {
	err := NewParsingError("bad input", ErrInvalidJSON)
	assert.Equal(t, "parsing: bad input: invalid JSON format", err.Error())

	bare := &AppError{Type: ErrorTypeOutput, Message: "write failed"}
	assert.Equal(t, "output: write failed", bare.Error())
}

func TestAppError_Unwrap(t *testing.T) {
	err := NewInputError("no file", ErrFileNotFound)
	assert.ErrorIs(t, err, ErrFileNotFound)
}

func TestAppError_Is(t *testing.T) {
	err := NewAnalysisError("boom", nil)

	assert.True(t, stderrors.Is(err, &AppError{Type: ErrorTypeAnalysis}))
	assert.False(t, stderrors.Is(err, &AppError{Type: ErrorTypeRender}))
}

func TestUserFriendlyError_AppErrors(t *testing.T) {
	tests := []struct {
		err      error
		expected string
	}{
		{NewInputError("missing input", nil), "Input error: missing input"},
		{NewParsingError("bad json", nil), "JSON parsing error: bad json"},
		{NewAnalysisError("bad shape", nil), "Shape analysis error: bad shape"},
		{NewRenderError("bad render", nil), "Rendering error: bad render"},
		{NewOutputError("bad write", nil), "Output error: bad write"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, UserFriendlyError(tt.err))
	}
}

func TestUserFriendlyError_Sentinels(t *testing.T) {
	assert.Contains(t, UserFriendlyError(ErrEmptyInput), "input is empty")
	assert.Contains(t, UserFriendlyError(ErrInvalidJSON), "invalid JSON")
	assert.Contains(t, UserFriendlyError(ErrMultipleJSON), "Multiple JSON values")
	assert.Contains(t, UserFriendlyError(ErrFileNotFound), "could not be found")
}

func TestUserFriendlyError_Unknown(t *testing.T) {
	err := stderrors.New("something odd")
	assert.Equal(t, "Error: something odd", UserFriendlyError(err))
}
