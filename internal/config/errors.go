// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package config

import "errors"

// ErrConfigurationMissing is returned when a required setting is absent or invalid.
// It is never retried.
var ErrConfigurationMissing = errors.New("missing required configuration")
