// pkg/errors/errors_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: None
// PURPOSE: Test error creation, wrapping, and utility functions

package errors_test

import (
	stderrors "errors"
	"testing"

	"github.com/csabourin/inkscape-plugin-CSVColumnExporter/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		code    errors.ErrorCode
		message string
		wantStr string
	}{
		{
			name:    "source_not_found",
			code:    errors.ErrSourceNotFound,
			message: "CSV file not found",
			wantStr: "[SOURCE_NOT_FOUND] CSV file not found",
		},
		{
			name:    "no_headers",
			code:    errors.ErrNoHeaders,
			message: "no headers found in CSV",
			wantStr: "[NO_HEADERS] no headers found in CSV",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := errors.New(tt.code, tt.message)

			assert.Equal(t, tt.code, err.Code)
			assert.Equal(t, tt.message, err.Message)
			assert.NotNil(t, err.Details, "details should be initialized")
			assert.Equal(t, tt.wantStr, err.Error())
		})
	}
}

func TestNewf(t *testing.T) {
	err := errors.Newf(errors.ErrColumnNotFound, "column %q not found", "Name")
	assert.Equal(t, `column "Name" not found`, err.Message)
}

func TestWrap(t *testing.T) {
	baseErr := stderrors.New("permission denied")

	t.Run("wrap_non_nil_error", func(t *testing.T) {
		err := errors.Wrap(baseErr, errors.ErrDirCreate, "cannot create output directory")

		assert.Equal(t, errors.ErrDirCreate, err.Code)
		assert.Same(t, baseErr, err.Wrapped)
		assert.Equal(t, "[DIR_CREATE] cannot create output directory: permission denied", err.Error())
	})

	t.Run("wrap_nil_error_returns_nil", func(t *testing.T) {
		assert.Nil(t, errors.Wrap(nil, errors.ErrInternal, "internal error"))
		assert.Nil(t, errors.Wrapf(nil, errors.ErrInternal, "internal %s", "error"))
	})
}

func TestWithDetails(t *testing.T) {
	err := errors.New(errors.ErrFileWrite, "cannot write file").
		WithDetail("path", "/out/Ann.svg").
		WithDetails(map[string]interface{}{"row": 3})

	assert.Equal(t, "/out/Ann.svg", err.Details["path"])
	assert.Equal(t, 3, err.Details["row"])
}

func TestIs(t *testing.T) {
	err1 := errors.New(errors.ErrColumnNotFound, "error 1")
	err2 := errors.New(errors.ErrColumnNotFound, "error 2")
	err3 := errors.New(errors.ErrInternal, "error 3")

	assert.True(t, err1.Is(err2), "same code should match")
	assert.False(t, err1.Is(err3), "different codes should not match")
	assert.True(t, stderrors.Is(err1, err2), "errors.Is should work with ExportError")
}

func TestIsErrorCode(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		code     errors.ErrorCode
		expected bool
	}{
		{"matching_code", errors.New(errors.ErrNoHeaders, "x"), errors.ErrNoHeaders, true},
		{"different_code", errors.New(errors.ErrNoHeaders, "x"), errors.ErrInternal, false},
		{"wrapped_error", errors.Wrap(stderrors.New("base"), errors.ErrSourceRead, "read"), errors.ErrSourceRead, true},
		{"standard_error", stderrors.New("standard error"), errors.ErrNoHeaders, false},
		{"nil_error", nil, errors.ErrNoHeaders, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, errors.IsErrorCode(tt.err, tt.code))
		})
	}
}

func TestGetErrorCode(t *testing.T) {
	assert.Equal(t, errors.ErrDirCreate, errors.GetErrorCode(errors.New(errors.ErrDirCreate, "x")))
	assert.Equal(t, errors.ErrUnknown, errors.GetErrorCode(stderrors.New("standard error")))
	assert.Equal(t, errors.ErrUnknown, errors.GetErrorCode(nil))
}

func TestGetErrorDetails(t *testing.T) {
	err := errors.New(errors.ErrColumnNotFound, "x").WithDetail("available", []string{"name", "city"})
	assert.Equal(t, []string{"name", "city"}, errors.GetErrorDetails(err)["available"])
	assert.Nil(t, errors.GetErrorDetails(stderrors.New("plain")))
}

func TestDescribe(t *testing.T) {
	err := errors.Newf(errors.ErrColumnNotFound, "column %q not found", "Nmae").
		WithDetail("available", []string{"name", "city"}).
		WithDetail("source", "data.csv")

	want := "column \"Nmae\" not found\n  available: name, city\n  source: data.csv"
	assert.Equal(t, want, errors.Describe(err))
	assert.Equal(t, "plain", errors.Describe(stderrors.New("plain")))
}

func TestErrorChaining(t *testing.T) {
	rootCause := stderrors.New("root cause")
	fileErr := errors.Wrap(rootCause, errors.ErrSourceRead, "cannot read file")
	outer := errors.Wrap(fileErr, errors.ErrConfigLoad, "failed to load config")

	assert.True(t, errors.IsErrorCode(outer, errors.ErrConfigLoad))

	var inner *errors.ExportError
	if assert.True(t, stderrors.As(outer.Unwrap(), &inner)) {
		assert.Equal(t, errors.ErrSourceRead, inner.Code)
	}
	assert.True(t, stderrors.Is(outer, rootCause))
}
