// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package kinde

import (
	"context"
	"net/http"
	"net/url"
	"strings"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/clientcredentials"
)

// NewTokenSource returns the credentials used against the management API. A static
// apiToken wins; otherwise a machine-to-machine client credentials grant is used
// against {issuer}/oauth2/token with the {issuer}/api audience.
func NewTokenSource(ctx context.Context, issuerURL, apiToken, clientID, clientSecret string, httpClient *http.Client) oauth2.TokenSource {
	if apiToken != "" {
		return oauth2.StaticTokenSource(&oauth2.Token{AccessToken: apiToken, TokenType: "Bearer"})
	}

	if clientID == "" || clientSecret == "" {
		return nil
	}

	if httpClient != nil {
		ctx = context.WithValue(ctx, oauth2.HTTPClient, httpClient)
	}

	issuer := strings.TrimRight(issuerURL, "/")
	cc := &clientcredentials.Config{
		ClientID:     clientID,
		ClientSecret: clientSecret,
		TokenURL:     issuer + "/oauth2/token",
		EndpointParams: url.Values{
			"audience": {issuer + "/api"},
		},
	}

	return cc.TokenSource(ctx)
}
