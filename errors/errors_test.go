package errors

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestErrorClass_String(t *testing.T) {
	tests := []struct {
		class    ErrorClass
		expected string
	}{
		{ErrorInvalid, "invalid"},
		{ErrorFatal, "fatal"},
		{ErrorClass(999), "unknown"},
	}

	for _, test := range tests {
		t.Run(test.expected, func(t *testing.T) {
			result := test.class.String()
			if result != test.expected {
				t.Errorf("expected %s, got %s", test.expected, result)
			}
		})
	}
}

func TestIsFatal(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected bool
	}{
		{"nil error", nil, false},
		{"engine init", ErrEngineInit, true},
		{"engine closed", ErrEngineClosed, true},
		{"length mismatch", ErrLengthMismatch, false},
		{"unknown field", ErrUnknownField, false},
		{"classified fatal", &ClassifiedError{Class: ErrorFatal, Err: fmt.Errorf("test")}, true},
		{"classified invalid", &ClassifiedError{Class: ErrorInvalid, Err: fmt.Errorf("test")}, false},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			result := IsFatal(test.err)
			if result != test.expected {
				t.Errorf("expected %v, got %v for error: %v", test.expected, result, test.err)
			}
		})
	}
}

func TestIsInvalid(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected bool
	}{
		{"nil error", nil, false},
		{"length mismatch", ErrLengthMismatch, true},
		{"unknown field", ErrUnknownField, true},
		{"invalid config", ErrInvalidConfig, true},
		{"missing config", ErrMissingConfig, true},
		{"engine init", ErrEngineInit, false},
		{"classified invalid", &ClassifiedError{Class: ErrorInvalid, Err: fmt.Errorf("test")}, true},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			result := IsInvalid(test.err)
			if result != test.expected {
				t.Errorf("expected %v, got %v for error: %v", test.expected, result, test.err)
			}
		})
	}
}

func TestWrap(t *testing.T) {
	t.Run("nil passthrough", func(t *testing.T) {
		if Wrap(nil, "postal", "Normalize", "expand") != nil {
			t.Error("expected nil for nil error")
		}
	})

	t.Run("message format", func(t *testing.T) {
		base := fmt.Errorf("boom")
		err := Wrap(base, "postal", "Normalize", "expand")
		expected := "postal.Normalize: expand failed: boom"
		if err.Error() != expected {
			t.Errorf("expected %q, got %q", expected, err.Error())
		}
		if !errors.Is(err, base) {
			t.Error("wrapped error should unwrap to base")
		}
	})
}

func TestWrapFatal(t *testing.T) {
	err := WrapFatal(ErrEngineInit, "engine", "Open", "setup language classifier")
	if err == nil {
		t.Fatal("expected error")
	}
	if !IsFatal(err) {
		t.Error("WrapFatal result should be fatal")
	}
	if !errors.Is(err, ErrEngineInit) {
		t.Error("should unwrap to sentinel")
	}
	if !strings.Contains(err.Error(), "engine.Open") {
		t.Errorf("missing context in %q", err.Error())
	}

	if WrapFatal(nil, "engine", "Open", "setup") != nil {
		t.Error("nil should pass through")
	}
}

func TestWrapInvalid(t *testing.T) {
	err := WrapInvalid(ErrLengthMismatch, "postal", "SetField", "validate replacements")
	if err == nil {
		t.Fatal("expected error")
	}
	if !IsInvalid(err) {
		t.Error("WrapInvalid result should be invalid")
	}
	if IsFatal(err) {
		t.Error("WrapInvalid result should not be fatal")
	}
	if !errors.Is(err, ErrLengthMismatch) {
		t.Error("should unwrap to sentinel")
	}
}

func TestClassify(t *testing.T) {
	if Classify(ErrEngineInit) != ErrorFatal {
		t.Error("engine init should classify fatal")
	}
	if Classify(ErrLengthMismatch) != ErrorInvalid {
		t.Error("length mismatch should classify invalid")
	}
}
