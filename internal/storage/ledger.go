// Copyright 2025 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/twokul/navigator-app/internal/db"
	"github.com/twokul/navigator-app/internal/logging"
	"github.com/twokul/navigator-app/internal/monitoring"
	"github.com/twokul/navigator-app/internal/tracing"
	"github.com/twokul/navigator-app/internal/types"
)

const deliveriesTable = "webhook_deliveries"

var _ StorageInterface = (*Storage)(nil)

type Storage struct {
	db db.DBClientInterface

	logger  logging.LoggerInterface
	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
}

func NewStorage(c db.DBClientInterface, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Storage {
	s := new(Storage)

	s.db = c

	s.logger = logger
	s.tracer = tracer
	s.monitor = monitor

	return s
}

func validOutcome(outcome string) bool {
	switch outcome {
	case types.DeliveryOutcomeProcessed, types.DeliveryOutcomeIgnored, types.DeliveryOutcomeFailed:
		return true
	}
	return false
}

func (s *Storage) RecordDelivery(ctx context.Context, d *types.Delivery) (*types.Delivery, error) {
	ctx, span := s.tracer.Start(ctx, "storage.RecordDelivery")
	defer span.End()

	if d == nil {
		return nil, fmt.Errorf("delivery is nil")
	}

	if !validOutcome(d.Outcome) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidOutcome, d.Outcome)
	}

	id, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("failed to generate delivery ID: %w", err)
	}

	var out types.Delivery
	err = s.db.Statement(ctx).
		Insert(deliveriesTable).
		Columns("id", "event_id", "event_type", "outcome", "error").
		Values(id.String(), d.EventID, d.EventType, d.Outcome, d.Error).
		Suffix("RETURNING id, event_id, event_type, outcome, error, created_at").
		QueryRowContext(ctx).
		Scan(&out.ID, &out.EventID, &out.EventType, &out.Outcome, &out.Error, &out.CreatedAt)

	if err != nil {
		return nil, fmt.Errorf("failed to insert delivery: %w", err)
	}

	return &out, nil
}

func (s *Storage) ListDeliveries(ctx context.Context, filter DeliveryFilter) ([]*types.Delivery, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListDeliveries")
	defer span.End()

	if filter.Outcome != "" && !validOutcome(filter.Outcome) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidOutcome, filter.Outcome)
	}

	pageSize := db.PageSize(filter.PageSize)

	q := s.db.Statement(ctx).
		Select("id", "event_id", "event_type", "outcome", "error", "created_at").
		From(deliveriesTable).
		OrderBy("created_at DESC", "id DESC").
		Limit(pageSize).
		Offset(db.Offset(filter.Page, pageSize))

	if filter.EventID != "" {
		q = q.Where(sq.Eq{"event_id": filter.EventID})
	}

	if filter.Outcome != "" {
		q = q.Where(sq.Eq{"outcome": filter.Outcome})
	}

	rows, err := q.QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list deliveries: %w", err)
	}
	defer rows.Close()

	deliveries := make([]*types.Delivery, 0)
	for rows.Next() {
		d := new(types.Delivery)
		if err := rows.Scan(&d.ID, &d.EventID, &d.EventType, &d.Outcome, &d.Error, &d.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan delivery: %w", err)
		}
		deliveries = append(deliveries, d)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate deliveries: %w", err)
	}

	return deliveries, nil
}
