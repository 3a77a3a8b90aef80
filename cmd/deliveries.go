// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/twokul/navigator-app/internal/db"
	"github.com/twokul/navigator-app/internal/logging"
	"github.com/twokul/navigator-app/internal/monitoring"
	"github.com/twokul/navigator-app/internal/storage"
	"github.com/twokul/navigator-app/internal/tracing"
	"github.com/twokul/navigator-app/internal/types"
)

var deliveriesCmd = &cobra.Command{
	Use:   "deliveries",
	Short: "Inspect recorded webhook deliveries",
}

var listDeliveriesCmd = &cobra.Command{
	Use:   "list",
	Short: "List webhook deliveries, newest first",
	RunE: func(cmd *cobra.Command, args []string) error {
		dsn, _ := cmd.Flags().GetString("dsn")
		format, _ := cmd.Flags().GetString("format")
		eventID, _ := cmd.Flags().GetString("event-id")
		outcome, _ := cmd.Flags().GetString("outcome")
		page, _ := cmd.Flags().GetInt64("page")
		size, _ := cmd.Flags().GetInt64("size")

		logger := logging.NewLogger("error")
		defer logger.Sync()

		tracer := tracing.NewNoopTracer()
		monitor := monitoring.NewNoopMonitor(serviceName)

		dbClient, err := db.NewDBClient(cmd.Context(), db.Config{DSN: dsn, MaxConns: 1}, tracer, monitor, logger)
		if err != nil {
			return err
		}
		defer dbClient.Close()

		deliveries, err := storage.NewStorage(dbClient, tracer, monitor, logger).ListDeliveries(
			cmd.Context(),
			storage.DeliveryFilter{EventID: eventID, Outcome: outcome, Page: page, PageSize: size},
		)
		if err != nil {
			return err
		}

		return printDeliveries(cmd.OutOrStdout(), deliveries, format)
	},
}

func printDeliveries(out io.Writer, deliveries []*types.Delivery, format string) error {
	if format == "json" {
		return json.NewEncoder(out).Encode(deliveries)
	}

	w := tabwriter.NewWriter(out, 0, 0, 3, ' ', 0)
	fmt.Fprintln(w, "CREATED AT\tEVENT ID\tTYPE\tOUTCOME\tERROR")
	for _, d := range deliveries {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n", d.CreatedAt.Format(time.RFC3339), d.EventID, d.EventType, d.Outcome, d.Error)
	}

	return w.Flush()
}

func init() {
	listDeliveriesCmd.Flags().String("dsn", os.Getenv("DSN"), "PostgreSQL DSN connection string")
	listDeliveriesCmd.Flags().StringP("format", "f", "text", "Output format (text or json)")
	listDeliveriesCmd.Flags().String("event-id", "", "Only show deliveries of this Stripe event")
	listDeliveriesCmd.Flags().String("outcome", "", "Only show deliveries with this outcome (processed, ignored, failed)")
	listDeliveriesCmd.Flags().Int64("page", 1, "Page number")
	listDeliveriesCmd.Flags().Int64("size", 50, "Page size")

	deliveriesCmd.AddCommand(listDeliveriesCmd)
	rootCmd.AddCommand(deliveriesCmd)
}
