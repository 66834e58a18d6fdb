// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package calendar

import (
	"cmp"
	"slices"
	"time"

	"github.com/MKhiriev/go-study-planner/models"
)

// StartOfDay returns midnight of t's calendar day in t's location.
func StartOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// DayBounds returns the first and the last instant of date's day. Both ends
// are inclusive.
func DayBounds(date time.Time) (start, end time.Time) {
	start = StartOfDay(date)
	end = start.AddDate(0, 0, 1).Add(-time.Nanosecond)
	return start, end
}

// OccursOn reports whether e touches the day of date: it starts within the
// day, or it starts before the day ends and ends after the day starts.
func OccursOn(e models.CalendarEvent, date time.Time) bool {
	dayStart, dayEnd := DayBounds(date)

	startsWithin := !e.Start.Before(dayStart) && !e.Start.After(dayEnd)
	overlaps := e.Start.Before(dayEnd) && e.End.After(dayStart)

	return startsWithin || overlaps
}

// EventsOn returns the events that occur on date's day ordered by start.
func EventsOn(date time.Time, events []models.CalendarEvent) []models.CalendarEvent {
	out := make([]models.CalendarEvent, 0)
	for _, e := range events {
		if OccursOn(e, date) {
			out = append(out, e)
		}
	}
	slices.SortFunc(out, compareByStart)
	return out
}

// Upcoming returns the events starting at or after from, earliest first,
// truncated to limit. A limit <= 0 keeps all of them.
func Upcoming(events []models.CalendarEvent, from time.Time, limit int) []models.CalendarEvent {
	out := make([]models.CalendarEvent, 0)
	for _, e := range events {
		if !e.Start.Before(from) {
			out = append(out, e)
		}
	}
	slices.SortFunc(out, compareByStart)

	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}

func compareByStart(a, b models.CalendarEvent) int {
	if c := a.Start.Compare(b.Start); c != 0 {
		return c
	}
	return cmp.Compare(a.ID, b.ID)
}
