// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package kinde

import (
	"errors"
	"fmt"
	"net/http"
)

const codePermissionAlreadyAssigned = "PERMISSION_ALREADY_ASSIGNED"

var ErrPermissionNotFound = errors.New("permission not found")

type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// APIError is returned for every non-2xx response from the management API.
type APIError struct {
	StatusCode int           `json:"-"`
	Errors     []ErrorDetail `json:"errors"`
}

func (e *APIError) Error() string {
	if len(e.Errors) == 0 {
		return fmt.Sprintf("kinde api returned %d", e.StatusCode)
	}

	return fmt.Sprintf("kinde api returned %d: %s: %s", e.StatusCode, e.Errors[0].Code, e.Errors[0].Message)
}

// IsPermissionAlreadyAssigned reports whether err is the 400 the API answers with when
// a grant already exists.
func IsPermissionAlreadyAssigned(err error) bool {
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		return false
	}

	return apiErr.StatusCode == http.StatusBadRequest &&
		len(apiErr.Errors) > 0 &&
		apiErr.Errors[0].Code == codePermissionAlreadyAssigned
}
