// pkg/errors/errors_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: None
// PURPOSE: Test error creation, wrapping, and code lookup

package errors_test

import (
	stderrors "errors"
	"io/fs"
	"testing"

	"github.com/arthur-debert/futils/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		code    errors.ErrorCode
		message string
		wantStr string
	}{
		{
			name:    "not_symlink_error",
			code:    errors.ErrNotSymlink,
			message: "Not a symbolic link: /tmp/a",
			wantStr: "[NOT_SYMLINK] Not a symbolic link: /tmp/a",
		},
		{
			name:    "invalid_input_error",
			code:    errors.ErrInvalidInput,
			message: "Invalid value for verbosity: 7",
			wantStr: "[INVALID_INPUT] Invalid value for verbosity: 7",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := errors.New(tt.code, tt.message)

			assert.Equal(t, tt.code, err.Code)
			assert.Equal(t, tt.message, err.Message)
			assert.NotNil(t, err.Details)
			assert.Equal(t, tt.wantStr, err.Error())
		})
	}
}

func TestNewf(t *testing.T) {
	err := errors.Newf(errors.ErrDestinationExists, "Destination already exists: %s", "/tmp/b")
	assert.Equal(t, "Destination already exists: /tmp/b", err.Message)
}

func TestWrap(t *testing.T) {
	baseErr := stderrors.New("base error")

	t.Run("wrap_non_nil_error", func(t *testing.T) {
		err := errors.Wrap(baseErr, errors.ErrInternal, "internal error")
		require.NotNil(t, err)

		assert.Equal(t, errors.ErrInternal, err.Code)
		assert.Same(t, baseErr, err.Wrapped)
		assert.Equal(t, "[INTERNAL] internal error: base error", err.Error())
	})

	t.Run("wrap_nil_error_returns_nil", func(t *testing.T) {
		assert.Nil(t, errors.Wrap(nil, errors.ErrInternal, "internal error"))
		assert.Nil(t, errors.Wrapf(nil, errors.ErrInternal, "internal %s", "error"))
	})

	t.Run("wrapped_stdlib_error_still_matches", func(t *testing.T) {
		err := errors.Wrapf(fs.ErrNotExist, errors.ErrFileAccess, "cannot stat %s", "/x")
		assert.True(t, stderrors.Is(err, fs.ErrNotExist))
	})
}

func TestWithDetails(t *testing.T) {
	err := errors.New(errors.ErrRestore, "restore failed").
		WithDetail("path", "/test/path").
		WithDetails(map[string]interface{}{"mode": 0644, "size": 1024})

	assert.Equal(t, "/test/path", err.Details["path"])
	assert.Equal(t, 0644, err.Details["mode"])
	assert.Equal(t, 1024, err.Details["size"])
	assert.Equal(t, err.Details, errors.GetErrorDetails(err))
	assert.Nil(t, errors.GetErrorDetails(stderrors.New("plain")))
}

func TestIs(t *testing.T) {
	err1 := errors.New(errors.ErrNotSymlink, "error 1")
	err2 := errors.New(errors.ErrNotSymlink, "error 2")
	err3 := errors.New(errors.ErrDestinationExists, "error 3")

	assert.True(t, err1.Is(err2), "same code should match")
	assert.False(t, err1.Is(err3), "different codes should not match")
	assert.True(t, stderrors.Is(err1, err2), "errors.Is should work with FutilsError")
}

func TestIsErrorCode(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		code     errors.ErrorCode
		expected bool
	}{
		{"matching_code", errors.New(errors.ErrFileAccess, "cannot read"), errors.ErrFileAccess, true},
		{"different_code", errors.New(errors.ErrFileAccess, "cannot read"), errors.ErrInternal, false},
		{"wrapped_error", errors.Wrap(stderrors.New("base"), errors.ErrFileAccess, "denied"), errors.ErrFileAccess, true},
		{"non_futils_error", stderrors.New("standard error"), errors.ErrFileAccess, false},
		{"nil_error", nil, errors.ErrFileAccess, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, errors.IsErrorCode(tt.err, tt.code))
		})
	}
}

func TestGetErrorCode(t *testing.T) {
	assert.Equal(t, errors.ErrConfigValid, errors.GetErrorCode(errors.New(errors.ErrConfigValid, "bad")))
	assert.Equal(t, errors.ErrUnknown, errors.GetErrorCode(stderrors.New("standard error")))
	assert.Equal(t, errors.ErrUnknown, errors.GetErrorCode(nil))
}

func TestErrorChaining(t *testing.T) {
	rootCause := stderrors.New("root cause")
	fileErr := errors.Wrap(rootCause, errors.ErrFileAccess, "cannot read file")
	configErr := errors.Wrap(fileErr, errors.ErrConfigLoad, "failed to load config")

	assert.True(t, errors.IsErrorCode(configErr, errors.ErrConfigLoad))

	var middle *errors.FutilsError
	require.True(t, stderrors.As(configErr.Unwrap(), &middle))
	assert.Equal(t, errors.ErrFileAccess, middle.Code)

	assert.True(t, stderrors.Is(configErr, rootCause))
}
