// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package webhooks

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/twokul/navigator-app/internal/config"
	"github.com/twokul/navigator-app/internal/logging"
	"github.com/twokul/navigator-app/internal/tracing"
)

const (
	maxBodyBytes = 1 << 20

	signatureHeader = "Stripe-Signature"
)

type API struct {
	verifier VerifierInterface
	service  ServiceInterface

	tracer tracing.TracingInterface
	logger logging.LoggerInterface
}

func (a *API) RegisterEndpoints(mux *chi.Mux) {
	mux.Post("/api/v0/webhooks/stripe", a.stripe)
}

func (a *API) stripe(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "webhooks.API.stripe")
	defer span.End()

	payload, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		a.logger.Errorf("failed to read webhook body: %v", err)

		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			a.write(w, http.StatusRequestEntityTooLarge, response{Error: "Request body too large"})
			return
		}

		a.write(w, http.StatusBadRequest, response{Error: "Invalid request body"})
		return
	}

	signature := r.Header.Get(signatureHeader)
	if signature == "" {
		a.write(w, http.StatusBadRequest, response{Error: "No signature"})
		return
	}

	event, err := a.verifier.Verify(ctx, payload, signature)

	switch {
	case errors.Is(err, config.ErrConfigurationMissing):
		a.logger.Errorf("webhook verification is not configured: %v", err)
		a.write(w, http.StatusInternalServerError, response{Error: "Server configuration error"})
		return
	case errors.Is(err, ErrInvalidSignature):
		a.logger.Security().WebhookSignatureFailure("stripe")
		a.write(w, http.StatusBadRequest, response{Error: "Invalid signature"})
		return
	case err != nil:
		a.logger.Errorf("failed to verify webhook: %v", err)
		a.write(w, http.StatusInternalServerError, response{Error: "Internal server error"})
		return
	}

	if err := a.service.HandleEvent(ctx, event); err != nil {
		a.logger.Errorf("failed to handle event %s of type %s: %v", event.ID(), event.Type(), err)

		if errors.Is(err, config.ErrConfigurationMissing) {
			a.write(w, http.StatusInternalServerError, response{Error: "Server configuration error"})
			return
		}

		a.write(w, http.StatusInternalServerError, response{Error: "Internal server error"})
		return
	}

	a.write(w, http.StatusOK, response{Received: true})
}

func (a *API) write(w http.ResponseWriter, status int, body response) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(body); err != nil {
		a.logger.Errorf("failed to encode response: %v", err)
	}
}

func NewAPI(verifier VerifierInterface, service ServiceInterface, tracer tracing.TracingInterface, logger logging.LoggerInterface) *API {
	a := new(API)

	a.verifier = verifier
	a.service = service
	a.tracer = tracer
	a.logger = logger

	return a
}
