// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package webhooks

import "errors"

var (
	ErrInvalidSignature     = errors.New("invalid webhook signature")
	ErrMissingCustomerEmail = errors.New("no customer email on checkout session")
	ErrUserNotFound         = errors.New("no user found for customer email")
)
