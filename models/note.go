// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// DefaultCategory is assigned to notes created without a category.
const DefaultCategory = "General"

// Note is a free-form text note.
type Note struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Content  string `json:"content"`
	Category string `json:"category"`

	// CreatedAt is set once by the store.
	CreatedAt time.Time `json:"createdAt"`

	// UpdatedAt equals CreatedAt on creation and is refreshed by every update.
	UpdatedAt time.Time `json:"updatedAt"`
}

// NoteDraft holds the caller-supplied fields of a new [Note].
type NoteDraft struct {
	Title    string
	Content  string
	Category string
}

// NoteUpdate is a partial update of a [Note]. Nil fields are left untouched.
type NoteUpdate struct {
	Title    *string
	Content  *string
	Category *string
}

// Apply merges the non-nil fields of u into n. Timestamps are handled by the store.
func (u NoteUpdate) Apply(n Note) Note {
	if u.Title != nil {
		n.Title = *u.Title
	}
	if u.Content != nil {
		n.Content = *u.Content
	}
	if u.Category != nil {
		n.Category = *u.Category
	}
	return n
}
