// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package kinde

import (
	"context"

	"github.com/twokul/navigator-app/internal/types"
)

type ClientInterface interface {
	GetPermissionIDByKey(ctx context.Context, key string) (string, error)
	GrantPermission(ctx context.Context, req *types.PermissionGrantRequest) error
	RefreshUserClaims(ctx context.Context, userID string) error
	FindUserByEmail(ctx context.Context, email string) (*types.User, error)
}
