// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"

	"github.com/MKhiriev/go-study-planner/models"
)

// Client defines the minimal lifecycle contract for runnable client
// applications.
type Client interface {
	// Run starts the client application and blocks until exit.
	Run(ctx context.Context) error
}

// UI is the interactive surface driven by [App].
type UI interface {
	// LoginFlow asks for the user identity.
	LoginFlow(ctx context.Context) (models.User, error)
	// MainLoop shows the planner for user. logout reports whether the user
	// signed out rather than quit.
	MainLoop(ctx context.Context, user models.User) (logout bool, err error)
}
