// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package retry

import (
	"context"
	"errors"
	"time"

	"github.com/cenkalti/backoff/v5"

	"github.com/twokul/navigator-app/internal/logging"
)

// Executor runs operations under a Policy. It holds no per-call state, every call
// starts with a fresh attempt counter, so it is safe for concurrent use.
type Executor struct {
	policy Policy

	// notify observes each failed attempt and the wait chosen before the next one
	notify func(attempt uint, err error, delay time.Duration)

	logger logging.LoggerInterface
}

func (e *Executor) Policy() Policy {
	return e.policy
}

// Run executes op until it succeeds, returns a permanent error or the policy is exhausted.
func (e *Executor) Run(ctx context.Context, name string, op func(context.Context) error) error {
	_, err := Do(ctx, e, name, func(ctx context.Context) (struct{}, error) {
		return struct{}{}, op(ctx)
	})

	return err
}

func (e *Executor) backOff() *backoff.ExponentialBackOff {
	b := backoff.NewExponentialBackOff()
	// the first wait is capped like every later one
	b.InitialInterval = min(e.policy.BaseDelay, e.policy.MaxDelay)
	b.MaxInterval = e.policy.MaxDelay
	b.Multiplier = 2
	b.RandomizationFactor = 0
	b.Reset()

	return b
}

// Do is the value-returning form of Executor.Run. On exhaustion the last error is
// returned as-is; a Permanent error stops immediately and is returned unwrapped.
func Do[T any](ctx context.Context, e *Executor, name string, op func(context.Context) (T, error)) (T, error) {
	var attempt uint

	notify := func(err error, delay time.Duration) {
		e.logger.Debugf("%s: attempt %d failed, retrying in %s: %v", name, attempt+1, delay, err)
		if e.notify != nil {
			e.notify(attempt, err, delay)
		}
		attempt++
	}

	res, err := backoff.Retry(
		ctx,
		func() (T, error) {
			return op(ctx)
		},
		backoff.WithBackOff(e.backOff()),
		backoff.WithMaxTries(e.policy.MaxRetries+1),
		backoff.WithMaxElapsedTime(0),
		backoff.WithNotify(notify),
	)

	var permanent *backoff.PermanentError
	if errors.As(err, &permanent) {
		err = permanent.Unwrap()
	}

	if err != nil {
		e.logger.Debugf("%s: giving up after %d attempts: %v", name, attempt+1, err)
	}

	return res, err
}

// Permanent marks err as not worth retrying.
func Permanent(err error) error {
	return backoff.Permanent(err)
}

func NewExecutor(policy Policy, logger logging.LoggerInterface) *Executor {
	e := new(Executor)

	e.policy = policy
	e.logger = logger

	return e
}
