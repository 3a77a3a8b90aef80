// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package webhooks

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stripe/stripe-go/v82"
	"github.com/stripe/stripe-go/v82/webhook"

	"github.com/twokul/navigator-app/internal/config"
	"github.com/twokul/navigator-app/internal/logging"
	"github.com/twokul/navigator-app/internal/tracing"
)

const (
	testSecret  = "whsec_test_secret"
	testPayload = `{"id":"evt_1","object":"event","type":"checkout.session.completed","data":{"object":{"id":"cs_1","object":"checkout.session","customer_email":"legacy@example.com","customer_details":{"email":"jane@example.com"}}}}`
)

func sign(payload, secret string, ts time.Time) string {
	return webhook.GenerateTestSignedPayload(&webhook.UnsignedPayload{
		Payload:   []byte(payload),
		Secret:    secret,
		Timestamp: ts,
	}).Header
}

func TestVerifier_VerifyRoundTrip(t *testing.T) {
	v := NewVerifier(testSecret, tracing.NewNoopTracer(), logging.NewNoopLogger())

	event, err := v.Verify(context.Background(), []byte(testPayload), sign(testPayload, testSecret, time.Now()))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if event.ID() != "evt_1" {
		t.Fatalf("expected event id evt_1, got %s", event.ID())
	}

	if event.Type() != stripe.EventTypeCheckoutSessionCompleted {
		t.Fatalf("unexpected event type %s", event.Type())
	}

	session, err := decodeCheckoutSession(event.Payload())
	if err != nil {
		t.Fatalf("unexpected error decoding payload: %v", err)
	}

	if session.ID != "cs_1" || session.Email() != "jane@example.com" {
		t.Fatalf("unexpected session %+v", session)
	}
}

func TestVerifier_VerifyRejects(t *testing.T) {
	valid := sign(testPayload, testSecret, time.Now())

	tests := []struct {
		name      string
		secret    string
		payload   string
		signature string
		expected  error
	}{
		{
			name:      "body changed",
			secret:    testSecret,
			payload:   strings.Replace(testPayload, "jane@example.com", "mallory@example.com", 1),
			signature: valid,
			expected:  ErrInvalidSignature,
		},
		{
			name:      "body with trailing whitespace",
			secret:    testSecret,
			payload:   testPayload + "\n",
			signature: valid,
			expected:  ErrInvalidSignature,
		},
		{
			name:      "signed with another secret",
			secret:    testSecret,
			payload:   testPayload,
			signature: sign(testPayload, "whsec_other", time.Now()),
			expected:  ErrInvalidSignature,
		},
		{
			name:      "signature tampered",
			secret:    testSecret,
			payload:   testPayload,
			signature: valid[:len(valid)-1] + flip(valid[len(valid)-1]),
			expected:  ErrInvalidSignature,
		},
		{
			name:      "timestamp outside tolerance",
			secret:    testSecret,
			payload:   testPayload,
			signature: sign(testPayload, testSecret, time.Now().Add(-10*time.Minute)),
			expected:  ErrInvalidSignature,
		},
		{
			name:      "malformed header",
			secret:    testSecret,
			payload:   testPayload,
			signature: "not-a-signature",
			expected:  ErrInvalidSignature,
		},
		{
			name:      "missing header",
			secret:    testSecret,
			payload:   testPayload,
			signature: "",
			expected:  ErrInvalidSignature,
		},
		{
			name:      "missing secret",
			secret:    "",
			payload:   testPayload,
			signature: valid,
			expected:  config.ErrConfigurationMissing,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			v := NewVerifier(test.secret, tracing.NewNoopTracer(), logging.NewNoopLogger())

			event, err := v.Verify(context.Background(), []byte(test.payload), test.signature)

			if !errors.Is(err, test.expected) {
				t.Fatalf("expected error %v, got %v", test.expected, err)
			}

			if event != nil {
				t.Fatalf("expected no event, got %+v", event)
			}
		})
	}
}

func flip(c byte) string {
	if c == '0' {
		return "1"
	}

	return "0"
}
