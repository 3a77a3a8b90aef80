// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"context"
	"fmt"
	"net/http"

	"github.com/kelseyhightower/envconfig"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/twokul/navigator-app/internal/config"
	"github.com/twokul/navigator-app/internal/kinde"
	"github.com/twokul/navigator-app/internal/logging"
	"github.com/twokul/navigator-app/internal/monitoring"
	"github.com/twokul/navigator-app/internal/retry"
	"github.com/twokul/navigator-app/internal/tracing"
)

func loadSpecs() (*config.EnvSpec, error) {
	specs := new(config.EnvSpec)
	if err := envconfig.Process("", specs); err != nil {
		return nil, fmt.Errorf("issues with environment sourcing: %w", err)
	}

	if err := specs.Validate(); err != nil {
		return nil, err
	}

	return specs, nil
}

func newKindeClient(ctx context.Context, specs *config.EnvSpec, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) (*kinde.Client, error) {
	httpClient := &http.Client{Transport: otelhttp.NewTransport(http.DefaultTransport)}

	return kinde.NewClient(
		kinde.Config{
			BaseURL:     specs.KindeIssuerURL,
			TokenSource: kinde.NewTokenSource(ctx, specs.KindeIssuerURL, specs.KindeAPIToken, specs.KindeClientID, specs.KindeClientSecret, httpClient),
			HTTPClient:  httpClient,
			Retry: retry.Policy{
				MaxRetries: specs.RetryMaxRetries,
				BaseDelay:  specs.RetryBaseDelay,
				MaxDelay:   specs.RetryMaxDelay,
			},
		},
		tracer,
		monitor,
		logger,
	)
}
