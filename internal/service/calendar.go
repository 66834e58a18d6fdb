package service

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/MKhiriev/go-study-planner/internal/calendar"
	"github.com/MKhiriev/go-study-planner/internal/config"
	"github.com/MKhiriev/go-study-planner/internal/logger"
	"github.com/MKhiriev/go-study-planner/internal/utils"
	"github.com/MKhiriev/go-study-planner/models"
)

type calendarService struct {
	entities  EntityStore
	location  *time.Location
	weekStart time.Weekday
	clock     utils.Clock
	logger    *logger.Logger
}

// NewCalendarService returns a [CalendarService] over entities.
func NewCalendarService(entities EntityStore, cfg config.ClientCalendar, clock utils.Clock, log *logger.Logger) CalendarService {
	loc := cfg.Location
	if loc == nil {
		loc = time.Local
	}
	return &calendarService{
		entities:  entities,
		location:  loc,
		weekStart: cfg.WeekStart,
		clock:     clock,
		logger:    log,
	}
}

func (c *calendarService) Location() *time.Location { return c.location }

func (c *calendarService) WeekStart() time.Weekday { return c.weekStart }

func (c *calendarService) Today() time.Time {
	return c.clock.Now().In(c.location)
}

func (c *calendarService) Grid(month calendar.Month) calendar.Grid {
	if month.Location == nil {
		month.Location = c.location
	}
	return calendar.BuildGrid(month, c.weekStart, c.entities.Events())
}

func (c *calendarService) EventsOn(date time.Time) []models.CalendarEvent {
	return calendar.EventsOn(date.In(c.location), c.entities.Events())
}

func (c *calendarService) Upcoming(limit int) []models.CalendarEvent {
	return calendar.Upcoming(c.entities.Events(), c.clock.Now(), limit)
}

func (c *calendarService) CreateEvent(ctx context.Context, date time.Time, start, end string, draft models.EventDraft) (models.CalendarEvent, error) {
	startAt, endAt, err := calendar.EventTimes(date.In(c.location), start, end)
	if err != nil {
		return models.CalendarEvent{}, err
	}

	draft.Start = startAt.UTC()
	draft.End = endAt.UTC()
	event, ok := c.entities.AddEvent(ctx, draft)
	if !ok {
		return models.CalendarEvent{}, ErrNoSession
	}
	return event, nil
}

func (c *calendarService) ExportICS(ctx context.Context, w io.Writer) error {
	if _, ok := c.entities.UserID(); !ok {
		return ErrNoSession
	}

	if _, err := io.WriteString(w, calendar.ExportICS(c.entities.Events(), c.clock.Now())); err != nil {
		return fmt.Errorf("write calendar: %w", err)
	}
	return nil
}

func (c *calendarService) ImportICS(ctx context.Context, r io.Reader) (int, error) {
	if _, ok := c.entities.UserID(); !ok {
		return 0, ErrNoSession
	}

	drafts, err := calendar.ImportICS(r)
	if err != nil {
		return 0, fmt.Errorf("import calendar: %w", err)
	}
	if len(drafts) == 0 {
		return 0, nil
	}

	added, ok := c.entities.AddEvents(ctx, drafts...)
	if !ok {
		return 0, ErrNoSession
	}
	c.logger.Info().Int("events", len(added)).Msg("calendar imported")
	return len(added), nil
}
