package errors

import (
	"errors"
	"fmt"
	"testing"
)

func TestNew(t *testing.T) {
	err := New(ErrCodeUnknownPreset, "unknown preset %q", "fractal")

	if err.Code != ErrCodeUnknownPreset {
		t.Errorf("Code = %v, want %v", err.Code, ErrCodeUnknownPreset)
	}

	expected := `UNKNOWN_PRESET: unknown preset "fractal"`
	if err.Error() != expected {
		t.Errorf("Error() = %v, want %v", err.Error(), expected)
	}
}

func TestWrap(t *testing.T) {
	cause := errors.New("disk full")
	err := Wrap(ErrCodeIO, cause, "writing %s", "out.png")

	if !errors.Is(err, cause) {
		t.Error("errors.Is(err, cause) = false, want true")
	}

	expected := "IO: writing out.png: disk full"
	if err.Error() != expected {
		t.Errorf("Error() = %v, want %v", err.Error(), expected)
	}
}

func TestIs(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		code     Code
		expected bool
	}{
		{
			name:     "matching code",
			err:      New(ErrCodeInvalidPointCount, "n = 0"),
			code:     ErrCodeInvalidPointCount,
			expected: true,
		},
		{
			name:     "non-matching code",
			err:      New(ErrCodeInvalidPointCount, "n = 0"),
			code:     ErrCodeDegenerateFractal,
			expected: false,
		},
		{
			name:     "wrapped by fmt",
			err:      fmt.Errorf("render: %w", New(ErrCodeDegenerateFractal, "flat")),
			code:     ErrCodeDegenerateFractal,
			expected: true,
		},
		{
			name:     "plain error",
			err:      errors.New("plain"),
			code:     ErrCodeIO,
			expected: false,
		},
		{
			name:     "nil",
			err:      nil,
			code:     ErrCodeIO,
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Is(tt.err, tt.code); got != tt.expected {
				t.Errorf("Is() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestGetCode(t *testing.T) {
	if got := GetCode(New(ErrCodeInvalidCanvas, "0x0")); got != ErrCodeInvalidCanvas {
		t.Errorf("GetCode() = %v, want %v", got, ErrCodeInvalidCanvas)
	}
	if got := GetCode(errors.New("plain")); got != "" {
		t.Errorf("GetCode() = %v, want empty", got)
	}
}
