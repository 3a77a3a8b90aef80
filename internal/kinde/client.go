// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package kinde

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/oapi-codegen/runtime"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"golang.org/x/oauth2"

	"github.com/twokul/navigator-app/internal/config"
	"github.com/twokul/navigator-app/internal/logging"
	"github.com/twokul/navigator-app/internal/monitoring"
	"github.com/twokul/navigator-app/internal/retry"
	"github.com/twokul/navigator-app/internal/tracing"
	"github.com/twokul/navigator-app/internal/types"
)

const (
	// the permissions listing is read as a single page
	permissionsPageSize = 200
	defaultTimeout      = 30 * time.Second
)

var _ ClientInterface = (*Client)(nil)

// Config is passed explicitly by the caller so tests can point the client at a fake server.
type Config struct {
	BaseURL     string
	TokenSource oauth2.TokenSource
	// HTTPClient is optional, its transport is used underneath the oauth2 transport
	HTTPClient *http.Client
	// Retry defaults to retry.DefaultPolicy when left empty
	Retry retry.Policy
}

type Client struct {
	baseURL  string
	client   *http.Client
	retry    *retry.Executor
	validate *validator.Validate

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

type permissionsResponse struct {
	Code        string             `json:"code"`
	Permissions []types.Permission `json:"permissions"`
}

type usersResponse struct {
	Code  string       `json:"code"`
	Users []types.User `json:"users"`
}

type createOrganizationUserPermissionRequest struct {
	PermissionID string `json:"permission_id"`
}

func (c *Client) GetPermissionIDByKey(ctx context.Context, key string) (string, error) {
	ctx, span := c.tracer.Start(ctx, "kinde.Client.GetPermissionIDByKey")
	defer span.End()

	query := url.Values{}
	if err := addQueryParam(query, "page_size", permissionsPageSize); err != nil {
		return "", err
	}

	return retry.Do(ctx, c.retry, "kinde.GetPermissionIDByKey", func(ctx context.Context) (string, error) {
		var res permissionsResponse
		if err := c.do(ctx, http.MethodGet, "/api/v1/permissions", query, nil, &res); err != nil {
			return "", err
		}

		for _, p := range res.Permissions {
			if p.Key == key && p.ID != "" {
				return p.ID, nil
			}
		}

		return "", retry.Permanent(fmt.Errorf("%w: %q", ErrPermissionNotFound, key))
	})
}

func (c *Client) GrantPermission(ctx context.Context, req *types.PermissionGrantRequest) error {
	ctx, span := c.tracer.Start(ctx, "kinde.Client.GrantPermission")
	defer span.End()

	if req == nil {
		return fmt.Errorf("permission grant request is nil")
	}

	if err := c.validate.Struct(req); err != nil {
		return fmt.Errorf("invalid permission grant request: %w", err)
	}

	permissionID, err := c.GetPermissionIDByKey(ctx, req.PermissionKey)
	if err != nil {
		return fmt.Errorf("failed to resolve permission %s: %w", req.PermissionKey, err)
	}

	orgCode, err := pathParam("org_code", req.OrgCode)
	if err != nil {
		return err
	}

	userID, err := pathParam("user_id", req.UserID)
	if err != nil {
		return err
	}

	path := fmt.Sprintf("/api/v1/organizations/%s/users/%s/permissions", orgCode, userID)
	body := createOrganizationUserPermissionRequest{PermissionID: permissionID}

	alreadyAssigned := false
	err = c.retry.Run(ctx, "kinde.GrantPermission", func(ctx context.Context) error {
		err := c.do(ctx, http.MethodPost, path, nil, body, nil)
		if IsPermissionAlreadyAssigned(err) {
			alreadyAssigned = true
			return nil
		}
		return err
	})

	if err != nil {
		return fmt.Errorf("failed to grant permission: %w", err)
	}

	if alreadyAssigned {
		c.logger.Infof("Permission %s already assigned to user %s", req.PermissionKey, req.UserID)
	} else {
		c.logger.Infof("Successfully granted permission %s to user %s", req.PermissionKey, req.UserID)
	}

	return nil
}

// RefreshUserClaims makes Kinde recompute the user's token claims so a new grant is
// visible without a re-login.
func (c *Client) RefreshUserClaims(ctx context.Context, userID string) error {
	ctx, span := c.tracer.Start(ctx, "kinde.Client.RefreshUserClaims")
	defer span.End()

	id, err := pathParam("user_id", userID)
	if err != nil {
		return err
	}

	err = c.retry.Run(ctx, "kinde.RefreshUserClaims", func(ctx context.Context) error {
		return c.do(ctx, http.MethodPost, fmt.Sprintf("/api/v1/users/%s/refresh_claims", id), nil, nil, nil)
	})

	if err != nil {
		return fmt.Errorf("failed to refresh user claims: %w", err)
	}

	c.logger.Debugf("Successfully refreshed claims for user %s", userID)
	return nil
}

// FindUserByEmail returns nil without an error when no user matches.
func (c *Client) FindUserByEmail(ctx context.Context, email string) (*types.User, error) {
	ctx, span := c.tracer.Start(ctx, "kinde.Client.FindUserByEmail")
	defer span.End()

	if email == "" {
		return nil, fmt.Errorf("email is required")
	}

	query := url.Values{}
	if err := addQueryParam(query, "email", email); err != nil {
		return nil, err
	}
	if err := addQueryParam(query, "page_size", 1); err != nil {
		return nil, err
	}

	user, err := retry.Do(ctx, c.retry, "kinde.FindUserByEmail", func(ctx context.Context) (*types.User, error) {
		var res usersResponse
		if err := c.do(ctx, http.MethodGet, "/api/v1/users", query, nil, &res); err != nil {
			return nil, err
		}

		if len(res.Users) == 0 {
			return nil, nil
		}

		// emails are unique within a Kinde business
		return &res.Users[0], nil
	})

	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}

	return user, nil
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out interface{}) error {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return retry.Permanent(fmt.Errorf("failed to encode request body: %w", err))
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reader)
	if err != nil {
		return retry.Permanent(fmt.Errorf("failed to create request: %w", err))
	}

	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.client.Do(req)
	if err != nil {
		c.setAvailability(0)
		return fmt.Errorf("%s %s failed: %w", method, path, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode >= http.StatusInternalServerError {
		c.setAvailability(0)
	} else {
		c.setAvailability(1)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		apiErr := &APIError{StatusCode: resp.StatusCode}
		if len(data) > 0 {
			if err := json.Unmarshal(data, apiErr); err != nil {
				c.logger.Debugf("unable to decode kinde error response: %v", err)
			}
		}
		return apiErr
	}

	if out == nil || len(data) == 0 {
		return nil
	}

	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}

	return nil
}

func (c *Client) setAvailability(v float64) {
	if err := c.monitor.SetDependencyAvailability(map[string]string{"component": "kinde"}, v); err != nil {
		c.logger.Debugf("error setting dependency availability metric: %v", err)
	}
}

func pathParam(name, value string) (string, error) {
	if value == "" {
		return "", fmt.Errorf("%s is required", name)
	}

	p, err := runtime.StyleParamWithLocation("simple", false, name, runtime.ParamLocationPath, value)
	if err != nil {
		return "", fmt.Errorf("invalid format for parameter %s: %w", name, err)
	}

	return p, nil
}

func addQueryParam(q url.Values, name string, value interface{}) error {
	frag, err := runtime.StyleParamWithLocation("form", true, name, runtime.ParamLocationQuery, value)
	if err != nil {
		return fmt.Errorf("invalid format for parameter %s: %w", name, err)
	}

	parsed, err := url.ParseQuery(frag)
	if err != nil {
		return fmt.Errorf("invalid format for parameter %s: %w", name, err)
	}

	for k, vs := range parsed {
		for _, v := range vs {
			q.Add(k, v)
		}
	}

	return nil
}

func NewClient(cfg Config, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) (*Client, error) {
	if cfg.BaseURL == "" {
		return nil, fmt.Errorf("%w: kinde base url", config.ErrConfigurationMissing)
	}

	if cfg.TokenSource == nil {
		return nil, fmt.Errorf("%w: kinde api token or client credentials", config.ErrConfigurationMissing)
	}

	if _, err := url.ParseRequestURI(cfg.BaseURL); err != nil {
		return nil, errors.Join(config.ErrConfigurationMissing, fmt.Errorf("invalid kinde base url: %w", err))
	}

	base := http.RoundTripper(otelhttp.NewTransport(http.DefaultTransport))
	if cfg.HTTPClient != nil && cfg.HTTPClient.Transport != nil {
		base = cfg.HTTPClient.Transport
	}

	c := new(Client)
	c.baseURL = strings.TrimRight(cfg.BaseURL, "/")
	c.client = &http.Client{
		Transport: &oauth2.Transport{
			Source: oauth2.ReuseTokenSource(nil, cfg.TokenSource),
			Base:   base,
		},
		Timeout: defaultTimeout,
	}
	policy := cfg.Retry
	if policy == (retry.Policy{}) {
		policy = retry.DefaultPolicy()
	}

	c.retry = retry.NewExecutor(policy, logger)
	c.validate = validator.New(validator.WithRequiredStructEnabled())

	c.tracer = tracer
	c.monitor = monitor
	c.logger = logger

	return c, nil
}
