package retry

import (
	"context"
	"errors"
	"testing"
	"time"
)

// mockOperation tracks invocation count and simulates transient failures
type mockOperation struct {
	invocations int
	failUntil   int // Fail for invocations < failUntil
	failWith    error
}

func (m *mockOperation) execute(ctx context.Context) error {
	m.invocations++
	if m.invocations < m.failUntil {
		if m.failWith != nil {
			return m.failWith
		}
		return statusError(503)
	}
	return nil
}

func fastStrategy(maxAttempts int) *ExponentialBackoff {
	return NewExponentialBackoff(maxAttempts, WithInitialDelay(time.Millisecond), WithJitter(0))
}

func TestExecutor_Execute_SuccessOnFirstAttempt(t *testing.T) {
	executor := NewExecutor(NewHTTPErrorClassifier(), fastStrategy(3))
	op := &mockOperation{failUntil: 1}

	if err := executor.Execute(context.Background(), op.execute); err != nil {
		t.Errorf("Expected success, got error: %v", err)
	}
	if op.invocations != 1 {
		t.Errorf("Expected 1 invocation, got %d", op.invocations)
	}
}

func TestExecutor_Execute_NoRetriesByDefault(t *testing.T) {
	executor := NewExecutor(NewHTTPErrorClassifier(), fastStrategy(0))
	op := &mockOperation{failUntil: 3}

	err := executor.Execute(context.Background(), op.execute)
	if err == nil {
		t.Fatal("Expected failure with zero retries")
	}
	if op.invocations != 1 {
		t.Errorf("Expected exactly 1 invocation, got %d", op.invocations)
	}
}

func TestExecutor_Execute_SuccessAfterRetries(t *testing.T) {
	var retries []int
	executor := NewExecutor(NewHTTPErrorClassifier(), fastStrategy(5)).
		WithOnRetry(func(attempt int, err error, delay time.Duration) {
			retries = append(retries, attempt)
		})

	// Fail first 3 attempts, succeed on 4th
	op := &mockOperation{failUntil: 4}

	if err := executor.Execute(context.Background(), op.execute); err != nil {
		t.Errorf("Expected success after retries, got error: %v", err)
	}
	if op.invocations != 4 {
		t.Errorf("Expected 4 invocations, got %d", op.invocations)
	}
	if len(retries) != 3 {
		t.Errorf("Expected 3 retry callbacks, got %v", retries)
	}
}

func TestExecutor_Execute_FatalErrorNoRetry(t *testing.T) {
	executor := NewExecutor(NewHTTPErrorClassifier(), fastStrategy(5))
	fatal := statusError(401)
	op := &mockOperation{failUntil: 10, failWith: fatal}

	err := executor.Execute(context.Background(), op.execute)
	if !errors.Is(err, fatal) {
		t.Errorf("Expected fatal error, got %v", err)
	}
	if op.invocations != 1 {
		t.Errorf("Expected 1 invocation, got %d", op.invocations)
	}
}

func TestExecutor_Execute_ExhaustsRetries(t *testing.T) {
	executor := NewExecutor(NewHTTPErrorClassifier(), fastStrategy(2))
	op := &mockOperation{failUntil: 100}

	if err := executor.Execute(context.Background(), op.execute); err == nil {
		t.Fatal("Expected error after exhausting retries")
	}
	if op.invocations != 3 {
		t.Errorf("Expected 3 invocations (1 + 2 retries), got %d", op.invocations)
	}
}

func TestExecutor_Execute_ContextCancelledDuringBackoff(t *testing.T) {
	strategy := NewExponentialBackoff(5, WithInitialDelay(time.Hour), WithJitter(0), WithMaxDelay(time.Hour))
	executor := NewExecutor(NewHTTPErrorClassifier(), strategy)

	ctx, cancel := context.WithCancel(context.Background())
	executor = executor.WithOnRetry(func(int, error, time.Duration) { cancel() })

	op := &mockOperation{failUntil: 100}
	if err := executor.Execute(ctx, op.execute); !errors.Is(err, context.Canceled) {
		t.Errorf("Expected context.Canceled, got %v", err)
	}
}

func TestNewExecutor_PanicsOnNil(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Expected panic for nil classifier")
		}
	}()
	NewExecutor(nil, fastStrategy(1))
}
