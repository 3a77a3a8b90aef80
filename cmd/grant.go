// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/twokul/navigator-app/internal/logging"
	"github.com/twokul/navigator-app/internal/monitoring"
	"github.com/twokul/navigator-app/internal/storage"
	"github.com/twokul/navigator-app/internal/tracing"
	"github.com/twokul/navigator-app/pkg/webhooks"
)

// grantCmd replays the payment flow for one customer, for checkouts whose deliveries
// were exhausted on the Stripe side.
var grantCmd = &cobra.Command{
	Use:   "grant [email]",
	Short: "Grant paid access to the Kinde user with the given email",
	Long:  `Grant paid access to the Kinde user with the given email, configuration is read from the same environment variables as serve`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		specs, err := loadSpecs()
		if err != nil {
			return err
		}

		logger := logging.NewLogger(specs.LogLevel)
		defer logger.Sync()

		tracer := tracing.NewNoopTracer()
		monitor := monitoring.NewNoopMonitor(serviceName)

		client, err := newKindeClient(cmd.Context(), specs, tracer, monitor, logger)
		if err != nil {
			return err
		}

		service := webhooks.NewService(specs.KindeOrgCode, specs.PermissionKey, client, storage.NewNoopStorage(), tracer, monitor, logger)

		session := &webhooks.CheckoutSession{ID: "manual", CustomerEmail: args[0]}
		if err := service.HandleSuccessfulPayment(cmd.Context(), session); err != nil {
			return fmt.Errorf("failed to grant access to %s: %w", args[0], err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Granted %s to %s\n", specs.PermissionKey, args[0])
		return nil
	},
}

func init() {
	rootCmd.AddCommand(grantCmd)
}
