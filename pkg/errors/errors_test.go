// pkg/errors/errors_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: None
// PURPOSE: Test error creation, wrapping, and setup-failure classification

package errors_test

import (
	stderrors "errors"
	"testing"

	"github.com/stowd/stowd/pkg/errors"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		code    errors.ErrorCode
		message string
		wantStr string
	}{
		{
			name:    "config_not_found",
			code:    errors.ErrConfigNotFound,
			message: "no stowd.cfg",
			wantStr: "[CONFIG_NOT_FOUND] no stowd.cfg",
		},
		{
			name:    "invalid_path",
			code:    errors.ErrInvalidPath,
			message: "not a directory",
			wantStr: "[INVALID_PATH] not a directory",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := errors.New(tt.code, tt.message)

			if err.Code != tt.code {
				t.Errorf("New() code = %v, want %v", err.Code, tt.code)
			}

			if err.Details == nil {
				t.Error("New() details should be initialized")
			}

			if got := err.Error(); got != tt.wantStr {
				t.Errorf("Error() = %q, want %q", got, tt.wantStr)
			}
		})
	}
}

func TestNewf(t *testing.T) {
	err := errors.Newf(errors.ErrDependency, "%s not found in PATH", "stow")
	if err.Message != "stow not found in PATH" {
		t.Errorf("Newf() message = %q", err.Message)
	}
}

func TestWrap(t *testing.T) {
	baseErr := stderrors.New("base error")

	t.Run("wrap_non_nil_error", func(t *testing.T) {
		err := errors.Wrap(baseErr, errors.ErrConfigParse, "bad config")

		if err.Wrapped != baseErr {
			t.Error("Wrap() should preserve wrapped error")
		}

		wantStr := "[CONFIG_PARSE] bad config: base error"
		if got := err.Error(); got != wantStr {
			t.Errorf("Error() = %q, want %q", got, wantStr)
		}
	})

	t.Run("wrap_nil_error_returns_nil", func(t *testing.T) {
		if err := errors.Wrap(nil, errors.ErrInternal, "internal error"); err != nil {
			t.Error("Wrap(nil) should return nil")
		}
		if err := errors.Wrapf(nil, errors.ErrInternal, "internal %d", 1); err != nil {
			t.Error("Wrapf(nil) should return nil")
		}
	})
}

func TestWithDetail(t *testing.T) {
	err := errors.New(errors.ErrInvalidPath, "bad path").
		WithDetail("path", "/test/path")

	if err.Details["path"] != "/test/path" {
		t.Errorf("WithDetail() path = %v", err.Details["path"])
	}
	if got := errors.GetErrorDetails(err)["path"]; got != "/test/path" {
		t.Errorf("GetErrorDetails() path = %v", got)
	}
}

func TestIs(t *testing.T) {
	err1 := errors.New(errors.ErrLocked, "error 1")
	err2 := errors.New(errors.ErrLocked, "error 2")
	err3 := errors.New(errors.ErrInternal, "error 3")

	if !stderrors.Is(err1, err2) {
		t.Error("errors.Is() should match on code")
	}
	if err1.Is(err3) {
		t.Error("Is() should return false for different codes")
	}
}

func TestIsErrorCode(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		code     errors.ErrorCode
		expected bool
	}{
		{"matching_code", errors.New(errors.ErrDependency, "x"), errors.ErrDependency, true},
		{"different_code", errors.New(errors.ErrDependency, "x"), errors.ErrInternal, false},
		{"wrapped_error", errors.Wrap(stderrors.New("base"), errors.ErrFileAccess, "denied"), errors.ErrFileAccess, true},
		{"standard_error", stderrors.New("standard error"), errors.ErrDependency, false},
		{"nil_error", nil, errors.ErrDependency, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := errors.IsErrorCode(tt.err, tt.code); got != tt.expected {
				t.Errorf("IsErrorCode() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestGetErrorCode(t *testing.T) {
	if got := errors.GetErrorCode(stderrors.New("plain")); got != errors.ErrUnknown {
		t.Errorf("GetErrorCode() = %v, want %v", got, errors.ErrUnknown)
	}
	if got := errors.GetErrorCode(nil); got != errors.ErrUnknown {
		t.Errorf("GetErrorCode(nil) = %v, want %v", got, errors.ErrUnknown)
	}
}

func TestIsSetupFailure(t *testing.T) {
	tests := []struct {
		code errors.ErrorCode
		want bool
	}{
		{errors.ErrDependency, true},
		{errors.ErrConfigNotFound, true},
		{errors.ErrConfigParse, true},
		{errors.ErrConfigInvalid, true},
		{errors.ErrInvalidPath, true},
		{errors.ErrLocked, true},
		{errors.ErrMissingSource, false},
		{errors.ErrStowExecute, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.code), func(t *testing.T) {
			if got := errors.IsSetupFailure(errors.New(tt.code, "x")); got != tt.want {
				t.Errorf("IsSetupFailure(%s) = %v, want %v", tt.code, got, tt.want)
			}
		})
	}
}

func TestErrorChaining(t *testing.T) {
	rootCause := stderrors.New("root cause")
	fileErr := errors.Wrap(rootCause, errors.ErrFileAccess, "cannot read file")
	configErr := errors.Wrap(fileErr, errors.ErrConfigParse, "failed to load config")

	if !errors.IsErrorCode(configErr, errors.ErrConfigParse) {
		t.Error("Top level should have ErrConfigParse code")
	}

	var stowdErr *errors.StowdError
	if stderrors.As(configErr.Unwrap(), &stowdErr) {
		if stowdErr.Code != errors.ErrFileAccess {
			t.Error("Middle error should have ErrFileAccess code")
		}
	}

	if !stderrors.Is(configErr, rootCause) {
		t.Error("Should find root cause with errors.Is")
	}
}

func TestGetErrorMessage(t *testing.T) {
	err := errors.Newf(errors.ErrMissingSource, "%s directory not found in %s.", "vim", "/d")
	if got := errors.GetErrorMessage(err); got != "vim directory not found in /d." {
		t.Errorf("GetErrorMessage() = %q", got)
	}
	if got := errors.GetErrorMessage(stderrors.New("plain")); got != "plain" {
		t.Errorf("GetErrorMessage() = %q", got)
	}
	if got := errors.GetErrorMessage(nil); got != "" {
		t.Errorf("GetErrorMessage(nil) = %q", got)
	}
}
