// Copyright 2025 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authentication

import "slices"

// Principal is the caller described by a verified access token.
type Principal struct {
	Subject string
	OrgCode string
	// Permissions is nil when the token carries no permissions claim at all
	Permissions []string
}

func (p *Principal) HasPermission(key string) bool {
	return slices.Contains(p.Permissions, key)
}
