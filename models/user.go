// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "strings"

// DefaultDisplayName is shown when a user has neither a name nor an email.
const DefaultDisplayName = "User"

// User is the identity handed over by the authentication collaborator.
// The planner never validates credentials; it only scopes data by ID.
type User struct {
	// ID is the opaque user identifier. Storage keys are derived from it.
	ID string `json:"id"`

	// Email is optional.
	Email string `json:"email,omitempty"`

	// Metadata carries optional profile fields such as "name" or "full_name".
	Metadata map[string]string `json:"metadata,omitempty"`
}

// DisplayName returns metadata "name", then "full_name", then the local part
// of the email, then [DefaultDisplayName].
func (u User) DisplayName() string {
	for _, key := range []string{"name", "full_name"} {
		if v := strings.TrimSpace(u.Metadata[key]); v != "" {
			return v
		}
	}
	if u.Email != "" {
		local, _, _ := strings.Cut(u.Email, "@")
		if local != "" {
			return local
		}
	}
	return DefaultDisplayName
}
