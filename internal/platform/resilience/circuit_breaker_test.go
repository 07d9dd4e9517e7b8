package resilience

import (
	"errors"
	"testing"
	"time"
)

func TestCircuitBreaker_OpensAfterThreshold(t *testing.T) {
	breaker := NewCircuitBreaker(2, time.Minute, 1)

	if err := breaker.Allow(); err != nil {
		t.Fatalf("closed breaker must allow: %v", err)
	}
	breaker.RecordFailure()
	breaker.RecordFailure()

	if got := breaker.State(); got != CircuitStateOpen {
		t.Fatalf("expected open state, got %s", got)
	}
	if err := breaker.Allow(); !errors.Is(err, ErrCircuitOpen) {
		t.Fatalf("expected ErrCircuitOpen, got %v", err)
	}
}

func TestCircuitBreaker_HalfOpenRecovery(t *testing.T) {
	breaker := NewCircuitBreaker(1, time.Minute, 1)

	current := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	breaker.now = func() time.Time { return current }

	breaker.RecordFailure()
	if got := breaker.State(); got != CircuitStateOpen {
		t.Fatalf("expected open state, got %s", got)
	}

	current = current.Add(2 * time.Minute)
	if err := breaker.Allow(); err != nil {
		t.Fatalf("expected half-open probe to pass: %v", err)
	}
	if err := breaker.Allow(); !errors.Is(err, ErrCircuitOpen) {
		t.Fatal("second probe must be rejected while one is in flight")
	}

	breaker.RecordSuccess()
	if got := breaker.State(); got != CircuitStateClosed {
		t.Fatalf("expected closed after successful probe, got %s", got)
	}
}

func TestCircuitBreaker_HalfOpenFailureReopens(t *testing.T) {
	breaker := NewCircuitBreaker(1, time.Minute, 1)

	current := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	breaker.now = func() time.Time { return current }

	breaker.RecordFailure()
	current = current.Add(2 * time.Minute)
	if err := breaker.Allow(); err != nil {
		t.Fatalf("expected half-open probe to pass: %v", err)
	}

	breaker.RecordFailure()
	if got := breaker.State(); got != CircuitStateOpen {
		t.Fatalf("expected reopened breaker, got %s", got)
	}
}
