// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package webhooks

import (
	"context"
	"errors"
	"testing"

	"github.com/stripe/stripe-go/v82"
	"go.uber.org/mock/gomock"

	"github.com/twokul/navigator-app/internal/logging"
	"github.com/twokul/navigator-app/internal/monitoring"
	"github.com/twokul/navigator-app/internal/tracing"
	"github.com/twokul/navigator-app/internal/types"
)

//go:generate mockgen -build_flags=--mod=mod -package webhooks -destination ./mock_webhooks.go -source=./interfaces.go

const (
	testOrgCode    = "org_123"
	testPermission = "access:navigator"
	testUserID     = "kp_abc"
)

func newTestService(gw IdentityGatewayInterface, ledger LedgerInterface) *Service {
	return NewService(
		testOrgCode,
		testPermission,
		gw,
		ledger,
		tracing.NewNoopTracer(),
		monitoring.NewNoopMonitor("navigator-app"),
		logging.NewNoopLogger(),
	)
}

func expectOutcome(t *testing.T, ledger *MockLedgerInterface, outcome string) {
	t.Helper()

	ledger.EXPECT().RecordDelivery(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, d *types.Delivery) (*types.Delivery, error) {
			if d.Outcome != outcome {
				t.Errorf("expected outcome %s, got %s", outcome, d.Outcome)
			}
			if outcome == types.DeliveryOutcomeFailed && d.Error == "" {
				t.Error("expected error to be recorded")
			}
			return d, nil
		},
	)
}

func TestService_HandleSuccessfulPayment(t *testing.T) {
	grant := &types.PermissionGrantRequest{OrgCode: testOrgCode, UserID: testUserID, PermissionKey: testPermission}

	tests := []struct {
		name       string
		session    *CheckoutSession
		setupMocks func(*MockIdentityGatewayInterface)
		expected   error
		wantErr    bool
	}{
		{
			name:    "access granted via customer details",
			session: &CheckoutSession{ID: "cs_1", CustomerEmail: "legacy@example.com", CustomerDetails: &CustomerDetails{Email: "jane@example.com"}},
			setupMocks: func(gw *MockIdentityGatewayInterface) {
				gomock.InOrder(
					gw.EXPECT().FindUserByEmail(gomock.Any(), "jane@example.com").Return(&types.User{ID: testUserID}, nil),
					gw.EXPECT().GrantPermission(gomock.Any(), grant).Return(nil),
					gw.EXPECT().RefreshUserClaims(gomock.Any(), testUserID).Return(nil),
				)
			},
		},
		{
			name:    "access granted via legacy email",
			session: &CheckoutSession{ID: "cs_1", CustomerEmail: "legacy@example.com"},
			setupMocks: func(gw *MockIdentityGatewayInterface) {
				gw.EXPECT().FindUserByEmail(gomock.Any(), "legacy@example.com").Return(&types.User{ID: testUserID}, nil)
				gw.EXPECT().GrantPermission(gomock.Any(), grant).Return(nil)
				gw.EXPECT().RefreshUserClaims(gomock.Any(), testUserID).Return(nil)
			},
		},
		{
			name:       "missing email",
			session:    &CheckoutSession{ID: "cs_1"},
			setupMocks: func(gw *MockIdentityGatewayInterface) {},
			expected:   ErrMissingCustomerEmail,
			wantErr:    true,
		},
		{
			name:    "user not found",
			session: &CheckoutSession{ID: "cs_1", CustomerEmail: "nobody@example.com"},
			setupMocks: func(gw *MockIdentityGatewayInterface) {
				gw.EXPECT().FindUserByEmail(gomock.Any(), "nobody@example.com").Return(nil, nil)
			},
			expected: ErrUserNotFound,
			wantErr:  true,
		},
		{
			name:    "user without id",
			session: &CheckoutSession{ID: "cs_1", CustomerEmail: "jane@example.com"},
			setupMocks: func(gw *MockIdentityGatewayInterface) {
				gw.EXPECT().FindUserByEmail(gomock.Any(), "jane@example.com").Return(&types.User{Email: "jane@example.com"}, nil)
			},
			expected: ErrUserNotFound,
			wantErr:  true,
		},
		{
			name:    "lookup fails",
			session: &CheckoutSession{ID: "cs_1", CustomerEmail: "jane@example.com"},
			setupMocks: func(gw *MockIdentityGatewayInterface) {
				gw.EXPECT().FindUserByEmail(gomock.Any(), "jane@example.com").Return(nil, errors.New("kinde down"))
			},
			wantErr: true,
		},
		{
			name:    "grant fails skips refresh",
			session: &CheckoutSession{ID: "cs_1", CustomerEmail: "jane@example.com"},
			setupMocks: func(gw *MockIdentityGatewayInterface) {
				gw.EXPECT().FindUserByEmail(gomock.Any(), "jane@example.com").Return(&types.User{ID: testUserID}, nil)
				gw.EXPECT().GrantPermission(gomock.Any(), grant).Return(errors.New("kinde down"))
			},
			wantErr: true,
		},
		{
			name:    "refresh fails after grant",
			session: &CheckoutSession{ID: "cs_1", CustomerEmail: "jane@example.com"},
			setupMocks: func(gw *MockIdentityGatewayInterface) {
				gw.EXPECT().FindUserByEmail(gomock.Any(), "jane@example.com").Return(&types.User{ID: testUserID}, nil)
				gw.EXPECT().GrantPermission(gomock.Any(), grant).Return(nil)
				gw.EXPECT().RefreshUserClaims(gomock.Any(), testUserID).Return(errors.New("kinde down"))
			},
			wantErr: true,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			gw := NewMockIdentityGatewayInterface(ctrl)
			test.setupMocks(gw)

			s := newTestService(gw, NewMockLedgerInterface(ctrl))
			err := s.HandleSuccessfulPayment(context.Background(), test.session)

			if test.wantErr != (err != nil) {
				t.Fatalf("expected error %v, got %v", test.wantErr, err)
			}

			if test.expected != nil && !errors.Is(err, test.expected) {
				t.Fatalf("expected %v, got %v", test.expected, err)
			}
		})
	}
}

func TestService_HandleSuccessfulPaymentNilSession(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// no gateway call is expected
	gw := NewMockIdentityGatewayInterface(ctrl)

	if err := newTestService(gw, NewMockLedgerInterface(ctrl)).HandleSuccessfulPayment(context.Background(), nil); err == nil {
		t.Fatal("expected an error for a nil checkout session")
	}
}

func TestService_HandleEvent(t *testing.T) {
	tests := []struct {
		name       string
		event      *Event
		setupMocks func(*MockIdentityGatewayInterface, *MockLedgerInterface)
		wantErr    bool
	}{
		{
			name: "checkout completed",
			event: &Event{
				id:        "evt_1",
				eventType: stripe.EventTypeCheckoutSessionCompleted,
				payload:   []byte(`{"id":"cs_1","customer_details":{"email":"jane@example.com"}}`),
			},
			setupMocks: func(gw *MockIdentityGatewayInterface, ledger *MockLedgerInterface) {
				gw.EXPECT().FindUserByEmail(gomock.Any(), "jane@example.com").Return(&types.User{ID: testUserID}, nil)
				gw.EXPECT().GrantPermission(gomock.Any(), gomock.Any()).Return(nil)
				gw.EXPECT().RefreshUserClaims(gomock.Any(), testUserID).Return(nil)
				expectOutcome(t, ledger, types.DeliveryOutcomeProcessed)
			},
		},
		{
			name: "checkout completed without email",
			event: &Event{
				id:        "evt_2",
				eventType: stripe.EventTypeCheckoutSessionCompleted,
				payload:   []byte(`{"id":"cs_1"}`),
			},
			setupMocks: func(gw *MockIdentityGatewayInterface, ledger *MockLedgerInterface) {
				expectOutcome(t, ledger, types.DeliveryOutcomeFailed)
			},
			wantErr: true,
		},
		{
			name: "undecodable payload",
			event: &Event{
				id:        "evt_3",
				eventType: stripe.EventTypeCheckoutSessionCompleted,
				payload:   []byte(`[]`),
			},
			setupMocks: func(gw *MockIdentityGatewayInterface, ledger *MockLedgerInterface) {
				expectOutcome(t, ledger, types.DeliveryOutcomeFailed)
			},
			wantErr: true,
		},
		{
			name:  "known ignored type",
			event: &Event{id: "evt_4", eventType: stripe.EventTypeChargeSucceeded, payload: []byte(`{}`)},
			setupMocks: func(gw *MockIdentityGatewayInterface, ledger *MockLedgerInterface) {
				expectOutcome(t, ledger, types.DeliveryOutcomeIgnored)
			},
		},
		{
			name:  "unknown type",
			event: &Event{id: "evt_5", eventType: "customer.created", payload: []byte(`{}`)},
			setupMocks: func(gw *MockIdentityGatewayInterface, ledger *MockLedgerInterface) {
				expectOutcome(t, ledger, types.DeliveryOutcomeIgnored)
			},
		},
		{
			name:  "ledger failure does not change result",
			event: &Event{id: "evt_6", eventType: stripe.EventTypePriceCreated, payload: []byte(`{}`)},
			setupMocks: func(gw *MockIdentityGatewayInterface, ledger *MockLedgerInterface) {
				ledger.EXPECT().RecordDelivery(gomock.Any(), gomock.Any()).Return(nil, errors.New("db down"))
			},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			gw := NewMockIdentityGatewayInterface(ctrl)
			ledger := NewMockLedgerInterface(ctrl)
			test.setupMocks(gw, ledger)

			err := newTestService(gw, ledger).HandleEvent(context.Background(), test.event)

			if test.wantErr != (err != nil) {
				t.Fatalf("expected error %v, got %v", test.wantErr, err)
			}
		})
	}
}
