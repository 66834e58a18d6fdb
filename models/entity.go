// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package models declares the planner entities shared by the store, the
// calendar query engine, the sort/filter policies and the TUI.
//
// Entities are plain values. Collections are owned by the entity store and
// handed to collaborators as copies, so nothing outside the store can mutate
// them in place.
package models

// EntityKind names one of the three planner collections. It is used as the
// identifier prefix (e.g. "todo_0190...").
type EntityKind string

const (
	KindTodo  EntityKind = "todo"
	KindNote  EntityKind = "note"
	KindEvent EntityKind = "event"
)
