// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package webhooks

import (
	"context"
	"fmt"

	"github.com/stripe/stripe-go/v82"

	"github.com/twokul/navigator-app/internal/logging"
	"github.com/twokul/navigator-app/internal/monitoring"
	"github.com/twokul/navigator-app/internal/tracing"
	"github.com/twokul/navigator-app/internal/types"
)

var _ ServiceInterface = (*Service)(nil)

type Service struct {
	orgCode       string
	permissionKey string

	gateway IdentityGatewayInterface
	ledger  LedgerInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

// HandleEvent routes a verified event. Only checkout.session.completed has side effects,
// every other type is acknowledged.
func (s *Service) HandleEvent(ctx context.Context, event *Event) error {
	ctx, span := s.tracer.Start(ctx, "webhooks.Service.HandleEvent")
	defer span.End()

	if event == nil {
		return fmt.Errorf("event is nil")
	}

	outcome, err := s.dispatch(ctx, event)

	s.observe(event, outcome)
	s.record(ctx, event, outcome, err)

	return err
}

func (s *Service) dispatch(ctx context.Context, event *Event) (string, error) {
	if event.Type() == stripe.EventTypeCheckoutSessionCompleted {
		session, err := decodeCheckoutSession(event.Payload())
		if err != nil {
			return types.DeliveryOutcomeFailed, err
		}

		if err := s.HandleSuccessfulPayment(ctx, session); err != nil {
			return types.DeliveryOutcomeFailed, err
		}

		return types.DeliveryOutcomeProcessed, nil
	}

	if _, ok := ignoredEvents[event.Type()]; ok {
		s.logger.Infof("Unhandled event type: %s", event.Type())
		return types.DeliveryOutcomeIgnored, nil
	}

	s.logger.Warnf("Unknown event type: %s", event.Type())
	return types.DeliveryOutcomeIgnored, nil
}

// HandleSuccessfulPayment grants the configured permission to the Kinde user owning the
// checkout email and refreshes their claims. A grant is never rolled back when the
// refresh fails.
func (s *Service) HandleSuccessfulPayment(ctx context.Context, session *CheckoutSession) error {
	ctx, span := s.tracer.Start(ctx, "webhooks.Service.HandleSuccessfulPayment")
	defer span.End()

	if session == nil {
		return fmt.Errorf("checkout session is nil")
	}

	email := session.Email()
	if email == "" {
		return fmt.Errorf("checkout session %s: %w", session.ID, ErrMissingCustomerEmail)
	}

	s.logger.Debugf("Processing successful payment for checkout session %s", session.ID)

	user, err := s.gateway.FindUserByEmail(ctx, email)
	if err != nil {
		return fmt.Errorf("failed to look up user: %w", err)
	}

	if user == nil || user.ID == "" {
		return fmt.Errorf("checkout session %s: %w", session.ID, ErrUserNotFound)
	}

	req := &types.PermissionGrantRequest{
		OrgCode:       s.orgCode,
		UserID:        user.ID,
		PermissionKey: s.permissionKey,
	}

	if err := s.gateway.GrantPermission(ctx, req); err != nil {
		return fmt.Errorf("failed to grant permission: %w", err)
	}

	s.logger.Security().PermissionGrant(user.ID, s.permissionKey)

	if err := s.gateway.RefreshUserClaims(ctx, user.ID); err != nil {
		return fmt.Errorf("failed to refresh user claims: %w", err)
	}

	s.logger.Infof("Access granted to user %s for checkout session %s", user.ID, session.ID)
	return nil
}

func (s *Service) observe(event *Event, outcome string) {
	eventType := string(event.Type())
	if _, ok := ignoredEvents[event.Type()]; !ok && event.Type() != stripe.EventTypeCheckoutSessionCompleted {
		// keep label cardinality bounded
		eventType = "unknown"
	}

	if err := s.monitor.IncWebhookEvent(map[string]string{"type": eventType, "outcome": outcome}); err != nil {
		s.logger.Debugf("error incrementing webhook event metric: %v", err)
	}
}

func (s *Service) record(ctx context.Context, event *Event, outcome string, err error) {
	d := &types.Delivery{
		EventID:   event.ID(),
		EventType: string(event.Type()),
		Outcome:   outcome,
	}

	if err != nil {
		d.Error = err.Error()
	}

	if _, lerr := s.ledger.RecordDelivery(ctx, d); lerr != nil {
		s.logger.Errorf("failed to record delivery %s: %v", event.ID(), lerr)
	}
}

func NewService(
	orgCode string,
	permissionKey string,
	gateway IdentityGatewayInterface,
	ledger LedgerInterface,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *Service {
	s := new(Service)

	s.orgCode = orgCode
	s.permissionKey = permissionKey
	s.gateway = gateway
	s.ledger = ledger
	s.tracer = tracer
	s.monitor = monitor
	s.logger = logger

	return s
}
