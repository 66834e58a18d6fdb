// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Snapshot is the persisted record of a single user: exactly the three
// collections, in insertion order.
type Snapshot struct {
	Todos  []Todo          `json:"todos"`
	Notes  []Note          `json:"notes"`
	Events []CalendarEvent `json:"events"`
}

// EmptySnapshot returns a snapshot with empty, non-nil collections so that it
// serializes as `{"todos":[],"notes":[],"events":[]}`.
func EmptySnapshot() Snapshot {
	return Snapshot{
		Todos:  []Todo{},
		Notes:  []Note{},
		Events: []CalendarEvent{},
	}
}

// Normalize replaces nil collections with empty ones.
func (s Snapshot) Normalize() Snapshot {
	if s.Todos == nil {
		s.Todos = []Todo{}
	}
	if s.Notes == nil {
		s.Notes = []Note{}
	}
	if s.Events == nil {
		s.Events = []CalendarEvent{}
	}
	return s
}

// Clone returns a deep copy of s. Todo due dates are copied too.
func (s Snapshot) Clone() Snapshot {
	out := Snapshot{
		Todos:  make([]Todo, len(s.Todos)),
		Notes:  append([]Note{}, s.Notes...),
		Events: append([]CalendarEvent{}, s.Events...),
	}
	for i, t := range s.Todos {
		out.Todos[i] = t.Clone()
	}
	return out
}

// IDs returns every identifier contained in s.
func (s Snapshot) IDs() []string {
	ids := make([]string, 0, len(s.Todos)+len(s.Notes)+len(s.Events))
	for _, t := range s.Todos {
		ids = append(ids, t.ID)
	}
	for _, n := range s.Notes {
		ids = append(ids, n.ID)
	}
	for _, e := range s.Events {
		ids = append(ids, e.ID)
	}
	return ids
}
