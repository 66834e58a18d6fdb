// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// EventType classifies a [CalendarEvent].
type EventType string

const (
	EventAssignment EventType = "assignment"
	EventExam       EventType = "exam"
	EventMeeting    EventType = "meeting"
	EventOther      EventType = "other"
)

// EventTypes lists every known event type in display order.
var EventTypes = []EventType{EventAssignment, EventExam, EventMeeting, EventOther}

// ParseEventType maps s to a known [EventType], falling back to [EventOther].
func ParseEventType(s string) EventType {
	for _, t := range EventTypes {
		if string(t) == s {
			return t
		}
	}
	return EventOther
}

// CalendarEvent is a dated entry on the calendar.
type CalendarEvent struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Start       time.Time `json:"start"`
	End         time.Time `json:"end"`
	Description string    `json:"description"`
	Type        EventType `json:"type"`
}

// EventDraft holds the caller-supplied fields of a new [CalendarEvent].
// End is stored as given even if it is not after Start.
type EventDraft struct {
	Title       string
	Description string
	Start       time.Time
	End         time.Time
	Type        EventType
}

// EventUpdate is a partial update of a [CalendarEvent].
type EventUpdate struct {
	Title       *string
	Description *string
	Start       *time.Time
	End         *time.Time
	Type        *EventType
}

// Apply merges the non-nil fields of u into e.
func (u EventUpdate) Apply(e CalendarEvent) CalendarEvent {
	if u.Title != nil {
		e.Title = *u.Title
	}
	if u.Description != nil {
		e.Description = *u.Description
	}
	if u.Start != nil {
		e.Start = *u.Start
	}
	if u.End != nil {
		e.End = *u.End
	}
	if u.Type != nil {
		e.Type = *u.Type
	}
	return e
}
