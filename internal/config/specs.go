// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package config

import (
	"time"
)

// EnvSpec is the basic environment configuration setup needed for the app to start
type EnvSpec struct {
	OtelGRPCEndpoint string `envconfig:"otel_grpc_endpoint"`
	OtelHTTPEndpoint string `envconfig:"otel_http_endpoint"`
	TracingEnabled   bool   `envconfig:"tracing_enabled" default:"true"`

	LogLevel string `envconfig:"log_level" default:"error"`
	Debug    bool   `envconfig:"debug" default:"false"`

	Port               int      `envconfig:"port" default:"8080"`
	CORSAllowedOrigins []string `envconfig:"cors_allowed_origins" default:"*"`

	KindeIssuerURL    string `envconfig:"kinde_issuer_url" required:"true" validate:"required,url"`
	KindeAPIToken     string `envconfig:"kinde_api_token" validate:"required_without=KindeClientID"`
	KindeClientID     string `envconfig:"kinde_client_id" validate:"required_without=KindeAPIToken"`
	KindeClientSecret string `envconfig:"kinde_client_secret" validate:"required_with=KindeClientID"`
	KindeOrgCode      string `envconfig:"kinde_org_code" required:"true" validate:"required"`
	KindeAudience     string `envconfig:"kinde_audience"`
	KindeJWKSURL      string `envconfig:"kinde_jwks_url" validate:"omitempty,url"`

	StripeWebhookSecret string `envconfig:"stripe_webhook_secret" required:"true" validate:"required"`
	PermissionKey       string `envconfig:"permission_key" default:"access:navigator" validate:"required"`

	RetryMaxRetries uint          `envconfig:"retry_max_retries" default:"3"`
	RetryBaseDelay  time.Duration `envconfig:"retry_base_delay" default:"1s" validate:"gt=0"`
	RetryMaxDelay   time.Duration `envconfig:"retry_max_delay" default:"10s" validate:"gtefield=RetryBaseDelay"`

	AuthenticationEnabled bool `envconfig:"authentication_enabled" default:"true"`

	DSN string `envconfig:"DSN"`

	DBMaxConns        int32         `envconfig:"db_max_conns" default:"10"`
	DBMinConns        int32         `envconfig:"db_min_conns" default:"1"`
	DBMaxConnLifetime time.Duration `envconfig:"db_max_conn_lifetime" default:"1h"`
	DBMaxConnIdleTime time.Duration `envconfig:"db_max_conn_idle_time" default:"30m"`
}
