package errors

import (
	"errors"
	"testing"
)

func TestError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *Error
		expected string
	}{
		{
			name:     "error without cause",
			err:      &Error{Code: ErrCodeConfig, Message: "invalid configuration"},
			expected: "[CONFIG_ERROR] invalid configuration",
		},
		{
			name:     "error with cause",
			err:      Wrap(ErrCodeInput, "failed to read input", errors.New("permission denied")),
			expected: "[INPUT_ERROR] failed to read input: permission denied",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.expected {
				t.Errorf("Error() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestError_Unwrap(t *testing.T) {
	cause := errors.New("underlying error")
	err := Wrap(ErrCodeInternal, "wrapper", cause)

	if unwrapped := err.Unwrap(); unwrapped != cause {
		t.Errorf("Unwrap() = %v, want %v", unwrapped, cause)
	}
}

func TestError_Is(t *testing.T) {
	err1 := &Error{Code: ErrCodeConfig, Message: "test error"}
	err2 := &Error{Code: ErrCodeConfig, Message: "another error"}
	err3 := &Error{Code: ErrCodeOutput, Message: "output error"}

	if !err1.Is(err2) {
		t.Errorf("Expected errors with same code to match")
	}

	if err1.Is(err3) {
		t.Errorf("Expected errors with different codes to not match")
	}
}

func TestError_IsViaStdlib(t *testing.T) {
	cause := errors.New("disk full")
	err := NewOutputError("failed to write accepted list", cause)

	if !errors.Is(err, cause) {
		t.Errorf("Expected errors.Is to find the cause through Unwrap")
	}

	if !errors.Is(err, New(ErrCodeOutput, "")) {
		t.Errorf("Expected errors.Is to match on error code")
	}
}

func TestNewSuffixDataError(t *testing.T) {
	cause := errors.New("file not found")
	err := NewSuffixDataError("failed to load public suffix list", cause)

	if err.Code != ErrCodeSuffixData {
		t.Errorf("Expected code %v, got %v", ErrCodeSuffixData, err.Code)
	}

	if err.Message != "failed to load public suffix list" {
		t.Errorf("Expected message 'failed to load public suffix list', got %v", err.Message)
	}

	if err.Cause != cause {
		t.Errorf("Expected cause to be preserved")
	}
}
