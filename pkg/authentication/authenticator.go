// Copyright 2025 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authentication

import (
	"context"
	"fmt"
	"strings"

	"github.com/twokul/navigator-app/internal/logging"
	"github.com/twokul/navigator-app/internal/monitoring"
	"github.com/twokul/navigator-app/internal/tracing"
)

// NewJWTAuthenticator initializes a verifier for Kinde access tokens.
func NewJWTAuthenticator(
	ctx context.Context,
	issuer string,
	jwksURL string,
	audience string,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) (TokenVerifierInterface, error) {
	if issuer == "" {
		return nil, fmt.Errorf("issuer is required for JWT authentication")
	}

	// Kinde advertises its issuer without a trailing slash
	issuer = strings.TrimRight(issuer, "/")

	if jwksURL != "" {
		logger.Infof("Using manual JWKS URL: %s", jwksURL)
		verifier := NewJWTVerifierDirect(NewProviderWithJWKS(ctx, issuer, jwksURL, audience), tracer, monitor, logger)
		logger.Info("JWT authentication is enabled with manual JWKS URL")
		return verifier, nil
	}

	logger.Infof("Using OIDC discovery for issuer: %s", issuer)
	provider, err := NewProvider(ctx, issuer)
	if err != nil {
		return nil, fmt.Errorf("failed to create OIDC provider: %v", err)
	}
	logger.Info("JWT authentication is enabled with OIDC discovery")

	return NewJWTVerifier(provider, audience, tracer, monitor, logger), nil
}
