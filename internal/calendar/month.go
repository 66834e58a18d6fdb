package calendar

import (
	"time"

	"github.com/MKhiriev/go-study-planner/models"
)

// Month identifies a calendar month in a location.
type Month struct {
	Year     int
	Month    time.Month
	Location *time.Location
}

// MonthOf returns the month containing t, in t's location.
func MonthOf(t time.Time) Month {
	return Month{Year: t.Year(), Month: t.Month(), Location: t.Location()}
}

// Today returns the month containing now in loc.
func Today(now time.Time, loc *time.Location) Month {
	return MonthOf(now.In(loc))
}

// First returns midnight of the first day of m.
func (m Month) First() time.Time {
	return time.Date(m.Year, m.Month, 1, 0, 0, 0, 0, m.location())
}

// Last returns midnight of the last day of m.
func (m Month) Last() time.Time {
	return m.First().AddDate(0, 1, -1)
}

// Prev returns the month before m.
func (m Month) Prev() Month {
	return MonthOf(m.First().AddDate(0, -1, 0))
}

// Next returns the month after m.
func (m Month) Next() Month {
	return MonthOf(m.First().AddDate(0, 1, 0))
}

// Contains reports whether t falls in m.
func (m Month) Contains(t time.Time) bool {
	t = t.In(m.location())
	return t.Year() == m.Year && t.Month() == m.Month
}

func (m Month) String() string {
	return m.First().Format("January 2006")
}

func (m Month) location() *time.Location {
	if m.Location == nil {
		return time.Local
	}
	return m.Location
}

// StartOfWeek returns midnight of the first day of t's week.
func StartOfWeek(t time.Time, weekStart time.Weekday) time.Time {
	d := StartOfDay(t)
	offset := (int(d.Weekday()) - int(weekStart) + 7) % 7
	return d.AddDate(0, 0, -offset)
}

// EndOfWeek returns the last instant of t's week.
func EndOfWeek(t time.Time, weekStart time.Weekday) time.Time {
	_, end := DayBounds(StartOfWeek(t, weekStart).AddDate(0, 0, 6))
	return end
}

// Cell is one day of a month grid.
type Cell struct {
	Date time.Time
	// InMonth is false for the leading and trailing days of adjacent months.
	InMonth bool
	Events  []models.CalendarEvent
}

// Grid is a month laid out in complete weeks.
type Grid struct {
	Month     Month
	WeekStart time.Weekday
	Weeks     [][]Cell
}

// BuildGrid lays out m from the start of the week holding its first day to
// the end of the week holding its last day. Every cell carries the events
// [EventsOn] returns for its date.
func BuildGrid(m Month, weekStart time.Weekday, events []models.CalendarEvent) Grid {
	grid := Grid{Month: m, WeekStart: weekStart}

	last := StartOfWeek(m.Last(), weekStart).AddDate(0, 0, 6)
	for day := StartOfWeek(m.First(), weekStart); !day.After(last); day = day.AddDate(0, 0, 7) {
		week := make([]Cell, 7)
		for i := range week {
			date := day.AddDate(0, 0, i)
			week[i] = Cell{
				Date:    date,
				InMonth: m.Contains(date),
				Events:  EventsOn(date, events),
			}
		}
		grid.Weeks = append(grid.Weeks, week)
	}

	return grid
}

// Cell returns the cell of date's day, if the grid shows it.
func (g Grid) Cell(date time.Time) (Cell, bool) {
	day := StartOfDay(date.In(g.Month.location()))
	for _, week := range g.Weeks {
		for _, c := range week {
			if c.Date.Equal(day) {
				return c, true
			}
		}
	}
	return Cell{}, false
}

// WeekdayNames returns short weekday names in grid column order.
func WeekdayNames(weekStart time.Weekday) []string {
	names := make([]string, 7)
	for i := range names {
		names[i] = time.Weekday((int(weekStart) + i) % 7).String()[:3]
	}
	return names
}
