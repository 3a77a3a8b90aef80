// Copyright 2025 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package status

import (
	"context"
	"encoding/json"
	"net/http"
	"runtime/debug"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/twokul/navigator-app/internal/logging"
	"github.com/twokul/navigator-app/internal/monitoring"
	"github.com/twokul/navigator-app/internal/tracing"
	"github.com/twokul/navigator-app/internal/version"
)

const (
	okValue       = "ok"
	degradedValue = "degraded"

	checkTimeout = 2 * time.Second
)

// PingerInterface is implemented by dependencies whose health is reported on the status endpoint.
type PingerInterface interface {
	Ping(context.Context) error
}

type Status struct {
	Status    string            `json:"status"`
	BuildInfo *BuildInfo        `json:"buildInfo,omitempty"`
	Checks    map[string]string `json:"checks,omitempty"`
}

type BuildInfo struct {
	Version    string `json:"version"`
	CommitHash string `json:"commit_hash"`
	Name       string `json:"name"`
}

type API struct {
	checks map[string]PingerInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func (a *API) RegisterEndpoints(mux *chi.Mux) {
	mux.Get("/api/v0/status", a.alive)
	mux.Get("/api/v0/version", a.version)
}

func (a *API) alive(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "status.API.alive")
	defer span.End()

	status := Status{Status: okValue, BuildInfo: buildInfo()}
	code := http.StatusOK

	if len(a.checks) > 0 {
		ctx, cancel := context.WithTimeout(ctx, checkTimeout)
		defer cancel()

		status.Checks = make(map[string]string, len(a.checks))
		for name, c := range a.checks {
			if err := c.Ping(ctx); err != nil {
				a.logger.Errorf("status check %s failed: %v", name, err)
				status.Checks[name] = err.Error()
				status.Status = degradedValue
				code = http.StatusServiceUnavailable
				continue
			}
			status.Checks[name] = okValue
		}
	}

	a.write(w, code, status)
}

func (a *API) version(w http.ResponseWriter, r *http.Request) {
	_, span := a.tracer.Start(r.Context(), "status.API.version")
	defer span.End()

	a.write(w, http.StatusOK, buildInfo())
}

func (a *API) write(w http.ResponseWriter, code int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)

	if err := json.NewEncoder(w).Encode(body); err != nil {
		a.logger.Errorf("failed to encode status response: %v", err)
	}
}

func buildInfo() *BuildInfo {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return &BuildInfo{Version: version.Version}
	}

	b := &BuildInfo{Version: version.Version, Name: info.Main.Path}
	for _, s := range info.Settings {
		if s.Key == "vcs.revision" {
			b.CommitHash = s.Value
		}
	}

	return b
}

// NewAPI returns the status endpoints; checks are pinged on every status request.
func NewAPI(checks map[string]PingerInterface, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *API {
	a := new(API)

	a.checks = checks
	a.tracer = tracer
	a.monitor = monitor
	a.logger = logger

	return a
}
