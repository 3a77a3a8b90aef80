// Copyright 2025 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"time"

	"github.com/twokul/navigator-app/internal/types"
)

var _ StorageInterface = (*NoopStorage)(nil)

// NoopStorage is used when no database is configured, deliveries are only logged.
type NoopStorage struct{}

func (n *NoopStorage) RecordDelivery(_ context.Context, d *types.Delivery) (*types.Delivery, error) {
	out := *d
	out.CreatedAt = time.Now().UTC()

	return &out, nil
}

func (n *NoopStorage) ListDeliveries(context.Context, DeliveryFilter) ([]*types.Delivery, error) {
	return []*types.Delivery{}, nil
}

func NewNoopStorage() *NoopStorage {
	return new(NoopStorage)
}
