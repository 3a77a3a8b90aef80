// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package webhooks

import (
	"context"
	"fmt"

	"github.com/stripe/stripe-go/v82/webhook"

	"github.com/twokul/navigator-app/internal/config"
	"github.com/twokul/navigator-app/internal/logging"
	"github.com/twokul/navigator-app/internal/tracing"
)

var _ VerifierInterface = (*Verifier)(nil)

type Verifier struct {
	secret string

	tracer tracing.TracingInterface
	logger logging.LoggerInterface
}

// Verify checks the Stripe-Signature header against the raw request body, which must
// be the exact bytes received.
func (v *Verifier) Verify(ctx context.Context, payload []byte, signature string) (*Event, error) {
	_, span := v.tracer.Start(ctx, "webhooks.Verifier.Verify")
	defer span.End()

	if v.secret == "" {
		return nil, fmt.Errorf("%w: stripe webhook secret", config.ErrConfigurationMissing)
	}

	if signature == "" {
		return nil, fmt.Errorf("%w: missing signature header", ErrInvalidSignature)
	}

	event, err := webhook.ConstructEventWithOptions(
		payload,
		signature,
		v.secret,
		webhook.ConstructEventOptions{IgnoreAPIVersionMismatch: true},
	)
	if err != nil {
		v.logger.Debugf("stripe signature verification failed: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidSignature, err)
	}

	e := new(Event)
	e.id = event.ID
	e.eventType = event.Type
	if event.Data != nil {
		e.payload = event.Data.Raw
	}

	return e, nil
}

func NewVerifier(secret string, tracer tracing.TracingInterface, logger logging.LoggerInterface) *Verifier {
	v := new(Verifier)

	v.secret = secret
	v.tracer = tracer
	v.logger = logger

	return v
}
