// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package retry

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/twokul/navigator-app/internal/logging"
)

func newTestExecutor(policy Policy) (*Executor, *[]time.Duration) {
	delays := make([]time.Duration, 0)
	e := NewExecutor(policy, logging.NewNoopLogger())
	e.notify = func(_ uint, _ error, d time.Duration) {
		delays = append(delays, d)
	}
	return e, &delays
}

func TestPolicyDelay(t *testing.T) {
	p := Policy{MaxRetries: 5, BaseDelay: time.Second, MaxDelay: 10 * time.Second}

	expected := []time.Duration{
		time.Second,
		2 * time.Second,
		4 * time.Second,
		8 * time.Second,
		10 * time.Second,
		10 * time.Second,
	}

	for attempt, want := range expected {
		if got := p.Delay(uint(attempt)); got != want {
			t.Errorf("attempt %d: expected %s, got %s", attempt, want, got)
		}
	}
}

func TestPolicyDelayDoesNotOverflow(t *testing.T) {
	p := Policy{BaseDelay: time.Second, MaxDelay: time.Hour}

	if got := p.Delay(200); got != time.Hour {
		t.Errorf("expected cap, got %s", got)
	}
}

func TestDefaultPolicy(t *testing.T) {
	p := DefaultPolicy()

	if p.MaxRetries != 3 || p.BaseDelay != time.Second || p.MaxDelay != 10*time.Second {
		t.Errorf("unexpected default policy %+v", p)
	}
}

func TestDoSucceedsAfterMaxRetriesFailures(t *testing.T) {
	policy := Policy{MaxRetries: 3, BaseDelay: time.Millisecond, MaxDelay: 3 * time.Millisecond}
	e, delays := newTestExecutor(policy)

	calls := 0
	res, err := Do(context.Background(), e, "test", func(context.Context) (string, error) {
		calls++
		if calls <= int(policy.MaxRetries) {
			return "", errors.New("transient")
		}
		return "ok", nil
	})

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res != "ok" {
		t.Errorf("expected ok, got %q", res)
	}
	if calls != int(policy.MaxRetries)+1 {
		t.Errorf("expected %d attempts, got %d", policy.MaxRetries+1, calls)
	}

	expected := []time.Duration{time.Millisecond, 2 * time.Millisecond, 3 * time.Millisecond}
	if len(*delays) != len(expected) {
		t.Fatalf("expected %d delays, got %v", len(expected), *delays)
	}
	for i, d := range *delays {
		if d != expected[i] {
			t.Errorf("delay %d: expected %s, got %s", i, expected[i], d)
		}
		if d != policy.Delay(uint(i)) {
			t.Errorf("delay %d does not follow policy: %s", i, d)
		}
	}
}

func TestDoBaseDelayAboveCap(t *testing.T) {
	policy := Policy{MaxRetries: 2, BaseDelay: 20 * time.Millisecond, MaxDelay: 5 * time.Millisecond}
	e, delays := newTestExecutor(policy)

	_ = e.Run(context.Background(), "test", func(context.Context) error {
		return errors.New("transient")
	})

	if len(*delays) != 2 {
		t.Fatalf("expected 2 waits, got %v", *delays)
	}
	for i, d := range *delays {
		if d != policy.MaxDelay {
			t.Errorf("delay %d: expected the cap %s, got %s", i, policy.MaxDelay, d)
		}
		if d != policy.Delay(uint(i)) {
			t.Errorf("delay %d does not follow policy: %s", i, d)
		}
	}
}

func TestDoPropagatesLastError(t *testing.T) {
	policy := Policy{MaxRetries: 2, BaseDelay: time.Millisecond, MaxDelay: 10 * time.Millisecond}
	e, delays := newTestExecutor(policy)

	calls := 0
	var last error
	err := e.Run(context.Background(), "test", func(context.Context) error {
		calls++
		last = errors.New("failure")
		return last
	})

	if err != last {
		t.Errorf("expected the last error unmodified, got %v", err)
	}
	if calls != 3 {
		t.Errorf("expected 3 attempts, got %d", calls)
	}
	if len(*delays) != 2 {
		t.Errorf("expected 2 waits, got %d", len(*delays))
	}
}

func TestDoZeroRetries(t *testing.T) {
	e, delays := newTestExecutor(Policy{MaxRetries: 0, BaseDelay: time.Millisecond, MaxDelay: time.Millisecond})

	calls := 0
	sentinel := errors.New("boom")
	err := e.Run(context.Background(), "test", func(context.Context) error {
		calls++
		return sentinel
	})

	if !errors.Is(err, sentinel) {
		t.Errorf("expected sentinel error, got %v", err)
	}
	if calls != 1 || len(*delays) != 0 {
		t.Errorf("expected a single attempt without waits, got %d attempts and %d waits", calls, len(*delays))
	}
}

func TestDoPermanentErrorStopsImmediately(t *testing.T) {
	e, _ := newTestExecutor(Policy{MaxRetries: 3, BaseDelay: time.Millisecond, MaxDelay: time.Millisecond})

	sentinel := errors.New("not found")
	calls := 0
	err := e.Run(context.Background(), "test", func(context.Context) error {
		calls++
		return Permanent(sentinel)
	})

	if err != sentinel {
		t.Errorf("expected unwrapped sentinel, got %v", err)
	}
	if calls != 1 {
		t.Errorf("expected 1 attempt, got %d", calls)
	}
}

func TestDoContextCancelledWhileWaiting(t *testing.T) {
	e := NewExecutor(Policy{MaxRetries: 3, BaseDelay: time.Hour, MaxDelay: time.Hour}, logging.NewNoopLogger())

	ctx, cancel := context.WithCancel(context.Background())
	e.notify = func(uint, error, time.Duration) { cancel() }

	calls := 0
	err := e.Run(ctx, "test", func(context.Context) error {
		calls++
		return errors.New("transient")
	})

	if !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
	if calls != 1 {
		t.Errorf("expected 1 attempt, got %d", calls)
	}
}

func TestDoConcurrentCallsAreIndependent(t *testing.T) {
	e := NewExecutor(Policy{MaxRetries: 1, BaseDelay: 20 * time.Millisecond, MaxDelay: 20 * time.Millisecond}, logging.NewNoopLogger())

	var wg sync.WaitGroup
	results := make([]int, 4)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			calls := 0
			_ = e.Run(context.Background(), "test", func(context.Context) error {
				calls++
				if calls == 1 {
					return errors.New("transient")
				}
				return nil
			})
			results[i] = calls
		}(i)
	}
	wg.Wait()

	for i, calls := range results {
		if calls != 2 {
			t.Errorf("call %d: expected 2 attempts, got %d", i, calls)
		}
	}
}
