// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package types

import (
	"time"
)

// User is the subset of a Kinde user record the service relies on.
type User struct {
	ID        string `json:"id"`
	Email     string `json:"email"`
	FirstName string `json:"first_name,omitempty"`
	LastName  string `json:"last_name,omitempty"`
}

type Permission struct {
	ID          string `json:"id"`
	Key         string `json:"key"`
	Name        string `json:"name,omitempty"`
	Description string `json:"description,omitempty"`
}

// PermissionGrantRequest is only built once the user lookup has resolved a UserID.
type PermissionGrantRequest struct {
	OrgCode       string `validate:"required"`
	UserID        string `validate:"required"`
	PermissionKey string `validate:"required"`
}

const (
	DeliveryOutcomeProcessed = "processed"
	DeliveryOutcomeIgnored   = "ignored"
	DeliveryOutcomeFailed    = "failed"
)

type Delivery struct {
	ID        string    `db:"id" json:"id"`
	EventID   string    `db:"event_id" json:"event_id"`
	EventType string    `db:"event_type" json:"event_type"`
	Outcome   string    `db:"outcome" json:"outcome"`
	Error     string    `db:"error" json:"error,omitempty"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}
