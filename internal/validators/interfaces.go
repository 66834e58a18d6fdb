// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks user input before it reaches the entity store.
//
// The entity store accepts drafts as given, so the terminal forms run a
// [Validator] first and show the returned error next to the form.
package validators

import "context"

// Validator validates the provided input, optionally restricted to the
// named fields.
type Validator interface {
	Validate(context.Context, any, ...string) error
}
