package hlerrors

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppErrorMessageWithoutWrappedCause(t *testing.T) {
	err := New(CodeBoundsError, "bad coordinate")
	assert.Equal(t, "[BOUNDS_ERROR] bad coordinate", err.Error())
	assert.Nil(t, err.Unwrap())
}

func TestAppErrorMessageWithWrappedCause(t *testing.T) {
	cause := errors.New("boom")
	err := Wrap(CodeIOError, "failed to read pattern file", cause)
	assert.Equal(t, "[IO_ERROR] failed to read pattern file: boom", err.Error())
	assert.Same(t, cause, err.Unwrap())
}

func TestIsHelpersMatchByCode(t *testing.T) {
	err := Wrap(CodePatternError, "unexpected token", errors.New("line 4"))
	assert.True(t, IsPatternError(err))
	assert.False(t, IsConfigError(err))
	assert.False(t, IsBoundsError(err))
}

func TestCodeAndMessageExtraction(t *testing.T) {
	err := New(CodeBoundsError, "x exceeds root bounds")
	assert.Equal(t, CodeBoundsError, Code(err))
	assert.Equal(t, "x exceeds root bounds", Message(err))

	plain := errors.New("opaque failure")
	assert.Equal(t, CodeUnknown, Code(plain))
	assert.Equal(t, "opaque failure", Message(plain))

	assert.Equal(t, CodeUnknown, Code(nil))
	assert.Equal(t, "", Message(nil))
}

func TestErrorsIsThroughWrappedAppError(t *testing.T) {
	err := Wrap(CodePatternError, "pattern not found", errors.New("enoent"))
	assert.True(t, errors.Is(err, ErrPatternError))
	assert.False(t, errors.Is(err, ErrConfigError))
}
