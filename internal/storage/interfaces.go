// Copyright 2025 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"

	"github.com/twokul/navigator-app/internal/types"
)

// StorageInterface is the webhook delivery ledger. Rows are appended, never updated.
type StorageInterface interface {
	RecordDelivery(ctx context.Context, d *types.Delivery) (*types.Delivery, error)
	ListDeliveries(ctx context.Context, filter DeliveryFilter) ([]*types.Delivery, error)
}

type DeliveryFilter struct {
	EventID  string
	Outcome  string
	Page     int64
	PageSize int64
}
