// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the interactive planner runtime.
//
// It connects the terminal UI flows to the session service and repeats the
// sign-in flow whenever the user signs out.
package client
