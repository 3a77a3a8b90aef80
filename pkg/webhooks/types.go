// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package webhooks

import (
	"encoding/json"
	"fmt"

	"github.com/stripe/stripe-go/v82"
)

// Event is a delivery whose signature has been checked. Only the Verifier builds one.
type Event struct {
	id        string
	eventType stripe.EventType
	payload   json.RawMessage
}

func (e *Event) ID() string {
	return e.id
}

func (e *Event) Type() stripe.EventType {
	return e.eventType
}

// Payload is the raw data.object of the event.
func (e *Event) Payload() []byte {
	return e.payload
}

// ignoredEvents are delivered to the endpoint but need no action.
var ignoredEvents = map[stripe.EventType]struct{}{
	stripe.EventTypePriceCreated:           {},
	stripe.EventTypeProductCreated:         {},
	stripe.EventTypePaymentIntentSucceeded: {},
	stripe.EventTypePaymentIntentCreated:   {},
	stripe.EventTypeChargeUpdated:          {},
	stripe.EventTypeChargeSucceeded:        {},
	stripe.EventTypeChargeFailed:           {},
	stripe.EventTypeChargeRefunded:         {},
	stripe.EventTypeChargeCaptured:         {},
	stripe.EventTypeChargeExpired:          {},
}

type CustomerDetails struct {
	Email string `json:"email"`
}

type CheckoutSession struct {
	ID              string           `json:"id"`
	CustomerEmail   string           `json:"customer_email"`
	CustomerDetails *CustomerDetails `json:"customer_details"`
}

// Email prefers the address collected at checkout over the legacy customer_email.
func (s *CheckoutSession) Email() string {
	if s.CustomerDetails != nil && s.CustomerDetails.Email != "" {
		return s.CustomerDetails.Email
	}

	return s.CustomerEmail
}

func decodeCheckoutSession(payload []byte) (*CheckoutSession, error) {
	session := new(CheckoutSession)

	if err := json.Unmarshal(payload, session); err != nil {
		return nil, fmt.Errorf("failed to decode checkout session: %w", err)
	}

	return session, nil
}

type response struct {
	Received bool   `json:"received,omitempty"`
	Error    string `json:"error,omitempty"`
}
