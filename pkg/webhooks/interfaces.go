// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package webhooks

import (
	"context"

	"github.com/twokul/navigator-app/internal/types"
)

type VerifierInterface interface {
	Verify(ctx context.Context, payload []byte, signature string) (*Event, error)
}

// IdentityGatewayInterface is the subset of the kinde client the payment flow needs.
type IdentityGatewayInterface interface {
	FindUserByEmail(ctx context.Context, email string) (*types.User, error)
	GrantPermission(ctx context.Context, req *types.PermissionGrantRequest) error
	RefreshUserClaims(ctx context.Context, userID string) error
}

// LedgerInterface is the subset of the internal/storage interface used to audit deliveries.
type LedgerInterface interface {
	RecordDelivery(ctx context.Context, d *types.Delivery) (*types.Delivery, error)
}

type ServiceInterface interface {
	HandleEvent(ctx context.Context, event *Event) error
	HandleSuccessfulPayment(ctx context.Context, session *CheckoutSession) error
}
