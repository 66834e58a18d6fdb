// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Priority is the urgency of a [Todo].
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// Priorities lists every known priority from least to most urgent.
var Priorities = []Priority{PriorityLow, PriorityMedium, PriorityHigh}

// Rank returns the sort rank of the priority: high=0, medium=1, low=2.
// Unknown values rank after low.
func (p Priority) Rank() int {
	switch p {
	case PriorityHigh:
		return 0
	case PriorityMedium:
		return 1
	case PriorityLow:
		return 2
	default:
		return 3
	}
}

// Todo is a single task.
type Todo struct {
	// ID is the opaque identifier assigned by the store on creation.
	ID string `json:"id"`

	// Title is the task text. The presentation layer keeps it non-empty.
	Title string `json:"title"`

	// Completed marks the task as done.
	Completed bool `json:"completed"`

	// DueDate is optional; nil serializes as JSON null.
	DueDate *time.Time `json:"dueDate"`

	// Priority is one of low, medium, high.
	Priority Priority `json:"priority"`

	// CreatedAt is set once by the store and never changes afterwards.
	CreatedAt time.Time `json:"createdAt"`
}

// TodoDraft holds the caller-supplied fields of a new [Todo]. The store
// assigns ID and CreatedAt.
type TodoDraft struct {
	Title     string
	Completed bool
	DueDate   *time.Time
	Priority  Priority
}

// TodoUpdate is a partial update of a [Todo]. Nil fields are left untouched.
// ID and CreatedAt are not part of the update on purpose.
type TodoUpdate struct {
	Title     *string
	Completed *bool
	DueDate   *time.Time
	// ClearDueDate removes the due date. It wins over DueDate.
	ClearDueDate bool
	Priority     *Priority
}

// Apply merges the non-nil fields of u into t and returns the result.
func (u TodoUpdate) Apply(t Todo) Todo {
	if u.Title != nil {
		t.Title = *u.Title
	}
	if u.Completed != nil {
		t.Completed = *u.Completed
	}
	if u.DueDate != nil {
		due := *u.DueDate
		t.DueDate = &due
	}
	if u.ClearDueDate {
		t.DueDate = nil
	}
	if u.Priority != nil {
		t.Priority = *u.Priority
	}
	return t
}

// IsOverdue reports whether t has a due date in the past and is still open.
func (t Todo) IsOverdue(now time.Time) bool {
	return t.DueDate != nil && !t.Completed && t.DueDate.Before(now)
}

// Clone returns a deep copy of t.
func (t Todo) Clone() Todo {
	if t.DueDate != nil {
		due := *t.DueDate
		t.DueDate = &due
	}
	return t
}
