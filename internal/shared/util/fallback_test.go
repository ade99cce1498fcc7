package util

import (
	"errors"
	"testing"
)

func TestAttemptFirstSuccess(t *testing.T) {
	got, err := Attempt(
		func() (string, error) { return "primary", nil },
		func() (string, error) { t.Fatal("second strategy must not run"); return "", nil },
	)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "primary" {
		t.Fatalf("expected primary result, got %q", got)
	}
}

func TestAttemptFallsBack(t *testing.T) {
	got, err := Attempt(
		func() (int, error) { return 0, errors.New("boom") },
		func() (int, error) { return 42, nil },
	)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != 42 {
		t.Fatalf("expected fallback result 42, got %d", got)
	}
}

func TestAttemptAllFailReturnsLastError(t *testing.T) {
	first := errors.New("first")
	second := errors.New("second")
	got, err := Attempt(
		func() (string, error) { return "", first },
		func() (string, error) { return "", second },
	)
	if !errors.Is(err, second) {
		t.Fatalf("expected last error, got %v", err)
	}
	if got != "" {
		t.Fatalf("expected zero value, got %q", got)
	}
}

func TestAttemptNoStrategies(t *testing.T) {
	_, err := Attempt[string]()
	if !errors.Is(err, ErrNoAttempts) {
		t.Fatalf("expected ErrNoAttempts, got %v", err)
	}
}
