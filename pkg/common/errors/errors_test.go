package errors

import (
	"errors"
	"fmt"
	"testing"
)

func TestCommonErrors(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"ErrClosed", ErrClosed, "resource is closed"},
		{"ErrInvalidContent", ErrInvalidContent, "invalid content"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.err == nil {
				t.Fatal("error should not be nil")
			}
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestValidationError_Error(t *testing.T) {
	tests := []struct {
		name string
		err  *ValidationError
		want string
	}{
		{
			name: "without hint",
			err: &ValidationError{
				Module: "header",
				Field:  "line",
				Value:  "a\r\nb",
				Reason: "contains CRLF",
			},
			want: "header: invalid line=a\r\nb (contains CRLF)",
		},
		{
			name: "with hint",
			err: &ValidationError{
				Module: "header",
				Field:  "line",
				Value:  2,
				Reason: "contains CRLF",
				Hint:   "split the value across lines",
			},
			want: "header: invalid line=2 (contains CRLF) - split the value across lines",
		},
		{
			name: "empty value",
			err: &ValidationError{
				Module: "sink",
				Field:  "name",
				Value:  "",
				Reason: "cannot be empty",
			},
			want: "sink: invalid name= (cannot be empty)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestValidationError_Unwrap(t *testing.T) {
	verr := NewValidationError("test", "field", 0, "test")

	if unwrapped := verr.Unwrap(); unwrapped != ErrInvalidContent {
		t.Errorf("Unwrap() = %v, want ErrInvalidContent", unwrapped)
	}

	if !errors.Is(verr, ErrInvalidContent) {
		t.Error("ValidationError should wrap ErrInvalidContent")
	}
	if !IsInvalidContent(fmt.Errorf("write: %w", verr)) {
		t.Error("IsInvalidContent should see through wrapping")
	}
}

func TestValidationError_WithHint(t *testing.T) {
	err := NewValidationError("test", "field", 0, "invalid").
		WithHint("remove the terminator")

	if err.Hint != "remove the terminator" {
		t.Errorf("Hint = %q, want %q", err.Hint, "remove the terminator")
	}

	// Should return same instance for chaining
	if result := err.WithHint("new hint"); result != err {
		t.Error("WithHint should return the same instance")
	}
}

func TestIsClosed(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"sentinel", ErrClosed, true},
		{"wrapped", fmt.Errorf("line: %w", ErrClosed), true},
		{"other", errors.New("boom"), false},
		{"nil", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsClosed(tt.err); got != tt.want {
				t.Errorf("IsClosed() = %v, want %v", got, tt.want)
			}
		})
	}
}
