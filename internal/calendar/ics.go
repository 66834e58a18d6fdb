package calendar

import (
	"fmt"
	"io"
	"strings"
	"time"

	ical "github.com/arran4/golang-ical"

	"github.com/MKhiriev/go-study-planner/models"
)

// ProductID is written as PRODID of exported calendars.
const ProductID = "-//go-study-planner//Study Planner//EN"

// ExportICS renders events as an iCalendar document. The event type goes to
// CATEGORIES; stamp is used as DTSTAMP of every event.
func ExportICS(events []models.CalendarEvent, stamp time.Time) string {
	cal := ical.NewCalendar()
	cal.SetProductId(ProductID)
	cal.SetMethod(ical.MethodPublish)

	for _, e := range events {
		ve := cal.AddEvent(e.ID)
		ve.SetDtStampTime(stamp)
		ve.SetStartAt(e.Start)
		ve.SetEndAt(e.End)
		ve.SetSummary(e.Title)
		if e.Description != "" {
			ve.SetDescription(e.Description)
		}
		ve.AddProperty(ical.ComponentPropertyCategories, strings.ToUpper(string(e.Type)))
	}

	return cal.Serialize()
}

// ImportICS reads the events of an iCalendar document as drafts. Events
// without a readable DTSTART are skipped; a missing DTEND means the event
// ends when it starts.
func ImportICS(r io.Reader) ([]models.EventDraft, error) {
	cal, err := ical.ParseCalendar(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrICSParse, err)
	}

	drafts := make([]models.EventDraft, 0)
	for _, ve := range cal.Events() {
		start, err := ve.GetStartAt()
		if err != nil {
			continue
		}
		end, err := ve.GetEndAt()
		if err != nil {
			end = start
		}

		draft := models.EventDraft{
			Start: start,
			End:   end,
			Type:  models.EventOther,
		}
		if p := ve.GetProperty(ical.ComponentPropertySummary); p != nil {
			draft.Title = p.Value
		}
		if p := ve.GetProperty(ical.ComponentPropertyDescription); p != nil {
			draft.Description = p.Value
		}
		if p := ve.GetProperty(ical.ComponentPropertyCategories); p != nil {
			draft.Type = models.ParseEventType(strings.ToLower(strings.TrimSpace(p.Value)))
		}
		drafts = append(drafts, draft)
	}

	return drafts, nil
}
