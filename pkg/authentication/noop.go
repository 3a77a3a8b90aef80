// Copyright 2025 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authentication

import (
	"context"
)

var _ TokenVerifierInterface = (*NoopVerifier)(nil)

type NoopVerifier struct {
	orgCode     string
	permissions []string
}

// NewNoopVerifier returns a no-op token verifier that allows all requests and grants
// the given permissions in orgCode to every caller.
func NewNoopVerifier(orgCode string, permissions ...string) *NoopVerifier {
	return &NoopVerifier{orgCode: orgCode, permissions: append([]string{}, permissions...)}
}

// VerifyToken treats the token as the user ID for development purposes.
func (n *NoopVerifier) VerifyToken(ctx context.Context, rawToken string) (*Principal, error) {
	return &Principal{Subject: rawToken, OrgCode: n.orgCode, Permissions: append([]string{}, n.permissions...)}, nil
}
