// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"fmt"
	"net/url"
	"os"
	"strings"

	"github.com/coreos/go-oidc/v3/oidc"
	"github.com/spf13/cobra"
	"golang.org/x/oauth2/clientcredentials"
)

var tokenCmd = &cobra.Command{
	Use:   "token",
	Short: "Get a Kinde management API token using the Client Credentials flow",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		clientID, _ := cmd.Flags().GetString("client-id")
		clientSecret, _ := cmd.Flags().GetString("client-secret")
		issuerURL, _ := cmd.Flags().GetString("issuer-url")
		tokenURL, _ := cmd.Flags().GetString("token-url")
		audience, _ := cmd.Flags().GetString("audience")

		if clientID == "" || clientSecret == "" {
			return fmt.Errorf("--client-id and --client-secret are required")
		}

		issuerURL = strings.TrimRight(issuerURL, "/")

		if tokenURL == "" {
			if issuerURL == "" {
				return fmt.Errorf("either --token-url or --issuer-url must be provided")
			}

			// Discovery endpoint
			provider, err := oidc.NewProvider(ctx, issuerURL)
			if err != nil {
				return fmt.Errorf("failed to create OIDC provider from issuer: %w", err)
			}
			tokenURL = provider.Endpoint().TokenURL
		}

		if audience == "" && issuerURL != "" {
			audience = issuerURL + "/api"
		}

		config := &clientcredentials.Config{
			ClientID:     clientID,
			ClientSecret: clientSecret,
			TokenURL:     tokenURL,
		}

		if audience != "" {
			config.EndpointParams = url.Values{"audience": {audience}}
		}

		token, err := config.Token(ctx)
		if err != nil {
			return fmt.Errorf("failed to get token: %w", err)
		}

		fmt.Fprintln(cmd.OutOrStdout(), token.AccessToken)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(tokenCmd)

	tokenCmd.Flags().String("client-id", os.Getenv("KINDE_CLIENT_ID"), "Kinde M2M client ID")
	tokenCmd.Flags().String("client-secret", os.Getenv("KINDE_CLIENT_SECRET"), "Kinde M2M client secret")
	tokenCmd.Flags().String("issuer-url", os.Getenv("KINDE_ISSUER_URL"), "Kinde issuer URL (for OIDC discovery)")
	tokenCmd.Flags().String("token-url", "", "Token URL, skips discovery")
	tokenCmd.Flags().String("audience", "", "Token audience, defaults to {issuer}/api")
}
