// Copyright 2025 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package status

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/twokul/navigator-app/internal/logging"
	"github.com/twokul/navigator-app/internal/monitoring"
	"github.com/twokul/navigator-app/internal/tracing"
	"github.com/twokul/navigator-app/internal/version"
)

type pingerFunc func(context.Context) error

func (f pingerFunc) Ping(ctx context.Context) error {
	return f(ctx)
}

func TestAPI_Alive(t *testing.T) {
	tests := []struct {
		name           string
		checks         map[string]PingerInterface
		expectedStatus int
		expectedValue  string
	}{
		{
			name:           "no checks",
			expectedStatus: http.StatusOK,
			expectedValue:  okValue,
		},
		{
			name:           "database up",
			checks:         map[string]PingerInterface{"database": pingerFunc(func(context.Context) error { return nil })},
			expectedStatus: http.StatusOK,
			expectedValue:  okValue,
		},
		{
			name:           "database down",
			checks:         map[string]PingerInterface{"database": pingerFunc(func(context.Context) error { return errors.New("connection refused") })},
			expectedStatus: http.StatusServiceUnavailable,
			expectedValue:  degradedValue,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			mux := chi.NewMux()
			NewAPI(test.checks, tracing.NewNoopTracer(), monitoring.NewNoopMonitor("test"), logging.NewNoopLogger()).RegisterEndpoints(mux)

			w := httptest.NewRecorder()
			mux.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v0/status", nil))

			if w.Code != test.expectedStatus {
				t.Fatalf("expected status %d, got %d", test.expectedStatus, w.Code)
			}

			var s Status
			if err := json.NewDecoder(w.Body).Decode(&s); err != nil {
				t.Fatalf("failed to decode response: %v", err)
			}

			if s.Status != test.expectedValue {
				t.Fatalf("expected %s, got %s", test.expectedValue, s.Status)
			}

			if len(s.Checks) != len(test.checks) {
				t.Fatalf("expected %d checks, got %v", len(test.checks), s.Checks)
			}
		})
	}
}

func TestAPI_Version(t *testing.T) {
	mux := chi.NewMux()
	NewAPI(nil, tracing.NewNoopTracer(), monitoring.NewNoopMonitor("test"), logging.NewNoopLogger()).RegisterEndpoints(mux)

	w := httptest.NewRecorder()
	mux.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v0/version", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}

	var b BuildInfo
	if err := json.NewDecoder(w.Body).Decode(&b); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	if b.Version != version.Version {
		t.Fatalf("expected version %s, got %s", version.Version, b.Version)
	}
}
