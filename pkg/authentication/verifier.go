// Copyright 2025 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authentication

import (
	"context"
	"fmt"

	"github.com/coreos/go-oidc/v3/oidc"

	"github.com/twokul/navigator-app/internal/logging"
	"github.com/twokul/navigator-app/internal/monitoring"
	"github.com/twokul/navigator-app/internal/tracing"
)

var _ TokenVerifierInterface = (*JWTVerifier)(nil)

type JWTVerifier struct {
	verifier *oidc.IDTokenVerifier

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

// kindeClaims are the Kinde specific claims of an access token.
type kindeClaims struct {
	Subject     string    `json:"sub"`
	OrgCode     string    `json:"org_code"`
	Permissions *[]string `json:"permissions"`
}

func (v *JWTVerifier) VerifyToken(ctx context.Context, rawToken string) (*Principal, error) {
	ctx, span := v.tracer.Start(ctx, "authentication.JWTVerifier.VerifyToken")
	defer span.End()

	token, err := v.verifier.Verify(ctx, rawToken)
	if err != nil {
		return nil, err
	}

	var claims kindeClaims
	if err := token.Claims(&claims); err != nil {
		v.logger.Debugf("Failed to extract claims: %v", err)
		return nil, err
	}

	if claims.Subject == "" {
		return nil, fmt.Errorf("token has no subject")
	}

	p := &Principal{
		Subject: claims.Subject,
		OrgCode: claims.OrgCode,
	}

	if claims.Permissions != nil {
		p.Permissions = append([]string{}, (*claims.Permissions)...)
	}

	return p, nil
}

func oidcConfig(audience string) *oidc.Config {
	if audience == "" {
		return &oidc.Config{SkipClientIDCheck: true}
	}

	return &oidc.Config{ClientID: audience}
}

func NewJWTVerifier(
	provider ProviderInterface,
	audience string,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *JWTVerifier {
	v := &JWTVerifier{
		tracer:  tracer,
		monitor: monitor,
		logger:  logger,
	}

	v.verifier = provider.Verifier(oidcConfig(audience))

	return v
}

func NewJWTVerifierDirect(
	verifier *oidc.IDTokenVerifier,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *JWTVerifier {
	return &JWTVerifier{
		verifier: verifier,
		tracer:   tracer,
		monitor:  monitor,
		logger:   logger,
	}
}
