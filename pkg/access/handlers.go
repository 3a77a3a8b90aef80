// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package access

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/twokul/navigator-app/internal/logging"
	"github.com/twokul/navigator-app/internal/monitoring"
	"github.com/twokul/navigator-app/internal/tracing"
	"github.com/twokul/navigator-app/pkg/authentication"
)

type PaymentStatus struct {
	Paid bool `json:"paid"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// API answers whether the signed-in user holds the paid access permission.
type API struct {
	permissionKey string
	orgCode       string
	authenticate  func(http.Handler) http.Handler

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func (a *API) RegisterEndpoints(mux *chi.Mux) {
	mux.Group(func(r chi.Router) {
		r.Use(a.authenticate)

		r.Get("/api/v0/check-payment", a.checkPayment)
		r.Post("/api/v0/check-payment", a.checkPayment)
	})
}

func (a *API) checkPayment(w http.ResponseWriter, r *http.Request) {
	_, span := a.tracer.Start(r.Context(), "access.API.checkPayment")
	defer span.End()

	principal, ok := authentication.GetPrincipal(r.Context())

	// a token without any permissions claim is not a usable session
	if !ok || principal.Permissions == nil {
		a.write(w, http.StatusUnauthorized, errorResponse{Error: "Unauthorized"})
		return
	}

	paid := principal.HasPermission(a.permissionKey)

	// permissions granted in another organization do not count
	if a.orgCode != "" && principal.OrgCode != a.orgCode {
		a.logger.Debugf("Token for user %s belongs to organization %q, expected %q", principal.Subject, principal.OrgCode, a.orgCode)
		paid = false
	}

	a.logger.Debugf("Checking payment status for user %s: %t", principal.Subject, paid)

	a.write(w, http.StatusOK, PaymentStatus{Paid: paid})
}

func (a *API) write(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(body); err != nil {
		a.logger.Errorf("failed to encode response: %v", err)
	}
}

func NewAPI(
	permissionKey string,
	orgCode string,
	authenticate func(http.Handler) http.Handler,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *API {
	a := new(API)

	a.permissionKey = permissionKey
	a.orgCode = orgCode
	a.authenticate = authenticate
	a.tracer = tracer
	a.monitor = monitor
	a.logger = logger

	return a
}
