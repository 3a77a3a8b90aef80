// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/twokul/navigator-app/internal/db"
	"github.com/twokul/navigator-app/internal/logging"
	"github.com/twokul/navigator-app/internal/monitoring/prometheus"
	"github.com/twokul/navigator-app/internal/storage"
	"github.com/twokul/navigator-app/internal/tracing"
	"github.com/twokul/navigator-app/pkg/access"
	"github.com/twokul/navigator-app/pkg/authentication"
	"github.com/twokul/navigator-app/pkg/status"
	"github.com/twokul/navigator-app/pkg/web"
	"github.com/twokul/navigator-app/pkg/webhooks"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "serve starts the web server",
	Long:  `Launch the web application, list of environment variables is available in the readme`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return serve()
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func serve() error {
	specs, err := loadSpecs()
	if err != nil {
		return err
	}

	logger := logging.NewLogger(specs.LogLevel)
	defer logger.Sync()

	monitor := prometheus.NewMonitor(serviceName, logger)
	tracer := tracing.NewTracer(tracing.NewConfig(specs.TracingEnabled, serviceName, specs.OtelGRPCEndpoint, specs.OtelHTTPEndpoint, logger))

	ctx := context.Background()

	kindeClient, err := newKindeClient(ctx, specs, tracer, monitor, logger)
	if err != nil {
		return fmt.Errorf("failed to create kinde client: %w", err)
	}

	var ledger storage.StorageInterface = storage.NewNoopStorage()
	checks := make(map[string]status.PingerInterface)

	if specs.DSN != "" {
		dbClient, err := db.NewDBClient(
			ctx,
			db.Config{
				DSN:             specs.DSN,
				MaxConns:        specs.DBMaxConns,
				MinConns:        specs.DBMinConns,
				MaxConnLifetime: specs.DBMaxConnLifetime,
				MaxConnIdleTime: specs.DBMaxConnIdleTime,
				TracingEnabled:  specs.TracingEnabled,
			},
			tracer,
			monitor,
			logger,
		)
		if err != nil {
			return fmt.Errorf("failed to create database client: %w", err)
		}
		defer dbClient.Close()

		ledger = storage.NewStorage(dbClient, tracer, monitor, logger)
		checks["database"] = dbClient
	} else {
		logger.Info("No DSN configured, webhook deliveries are not recorded")
	}

	service := webhooks.NewService(
		specs.KindeOrgCode,
		specs.PermissionKey,
		kindeClient,
		ledger,
		tracer,
		monitor,
		logger,
	)
	webhooksAPI := webhooks.NewAPI(
		webhooks.NewVerifier(specs.StripeWebhookSecret, tracer, logger),
		service,
		tracer,
		logger,
	)

	var verifier authentication.TokenVerifierInterface
	if specs.AuthenticationEnabled {
		verifier, err = authentication.NewJWTAuthenticator(
			ctx,
			specs.KindeIssuerURL,
			specs.KindeJWKSURL,
			specs.KindeAudience,
			tracer,
			monitor,
			logger,
		)
		if err != nil {
			return fmt.Errorf("failed to create token verifier: %w", err)
		}
	} else {
		logger.Warn("Authentication is disabled, every bearer token is accepted")
		verifier = authentication.NewNoopVerifier(specs.KindeOrgCode)
	}

	authMiddleware := authentication.NewMiddleware(verifier, tracer, monitor, logger)
	accessAPI := access.NewAPI(specs.PermissionKey, specs.KindeOrgCode, authMiddleware.Authenticate(), tracer, monitor, logger)

	router := web.NewRouter(
		webhooksAPI,
		accessAPI,
		checks,
		specs.CORSAllowedOrigins,
		tracer,
		monitor,
		logger,
	)
	logger.Infof("Starting HTTP server on port %v", specs.Port)

	srv := &http.Server{
		Addr:         fmt.Sprintf("0.0.0.0:%v", specs.Port),
		WriteTimeout: time.Second * 60,
		ReadTimeout:  time.Second * 15,
		IdleTimeout:  time.Second * 60,
		Handler:      router,
	}

	var serverError error
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		logger.Security().SystemStartup()
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverError = fmt.Errorf("server error: %w", err)
			c <- os.Interrupt
		}
	}()

	<-c

	// Create a deadline to wait for.
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	logger.Security().SystemShutdown()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		serverError = fmt.Errorf("server shutdown error: %w", err)
	}

	return serverError
}
