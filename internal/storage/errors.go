// Copyright 2025 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"errors"
)

// ErrInvalidOutcome is returned before any query runs.
var ErrInvalidOutcome = errors.New("invalid delivery outcome")
