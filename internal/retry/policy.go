// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package retry

import (
	"time"
)

const (
	DefaultMaxRetries uint = 3
	DefaultBaseDelay       = time.Second
	DefaultMaxDelay        = 10 * time.Second
)

// Policy bounds a single call: at most MaxRetries+1 attempts, waiting
// min(BaseDelay*2^n, MaxDelay) after the n-th failure.
type Policy struct {
	MaxRetries uint
	BaseDelay  time.Duration
	MaxDelay   time.Duration
}

// Delay returns the wait that follows the failed attempt with zero-based index attempt.
func (p Policy) Delay(attempt uint) time.Duration {
	delay := p.BaseDelay
	for i := uint(0); i < attempt; i++ {
		if delay >= p.MaxDelay/2 {
			return p.MaxDelay
		}
		delay *= 2
	}

	return min(delay, p.MaxDelay)
}

func DefaultPolicy() Policy {
	return Policy{
		MaxRetries: DefaultMaxRetries,
		BaseDelay:  DefaultBaseDelay,
		MaxDelay:   DefaultMaxDelay,
	}
}
