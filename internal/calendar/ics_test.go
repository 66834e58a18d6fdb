package calendar

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-study-planner/models"
)

func TestICS_RoundTrip(t *testing.T) {
	events := []models.CalendarEvent{
		{ID: "event_1", Title: "Algebra exam", Description: "Room 12", Start: at(10, 9, 0), End: at(10, 11, 0), Type: models.EventExam},
		{ID: "event_2", Title: "Study group", Start: at(12, 18, 0), End: at(12, 19, 0), Type: models.EventMeeting},
	}

	doc := ExportICS(events, at(1, 0, 0))
	assert.Contains(t, doc, "BEGIN:VCALENDAR")
	assert.Contains(t, doc, "UID:event_1")

	drafts, err := ImportICS(strings.NewReader(doc))
	require.NoError(t, err)
	require.Len(t, drafts, 2)

	assert.Equal(t, "Algebra exam", drafts[0].Title)
	assert.Equal(t, "Room 12", drafts[0].Description)
	assert.True(t, drafts[0].Start.Equal(events[0].Start))
	assert.True(t, drafts[0].End.Equal(events[0].End))
	assert.Equal(t, models.EventExam, drafts[0].Type)
	assert.Equal(t, models.EventMeeting, drafts[1].Type)
	assert.Empty(t, drafts[1].Description)
}

func TestImportICS_UnknownCategory(t *testing.T) {
	doc := strings.Join([]string{
		"BEGIN:VCALENDAR",
		"VERSION:2.0",
		"PRODID:-//test//EN",
		"BEGIN:VEVENT",
		"UID:x1",
		"DTSTAMP:20240101T000000Z",
		"DTSTART:20240310T090000Z",
		"SUMMARY:Dentist",
		"CATEGORIES:HEALTH",
		"END:VEVENT",
		"END:VCALENDAR",
		"",
	}, "\r\n")

	drafts, err := ImportICS(strings.NewReader(doc))

	require.NoError(t, err)
	require.Len(t, drafts, 1)
	assert.Equal(t, models.EventOther, drafts[0].Type)
	assert.True(t, drafts[0].End.Equal(drafts[0].Start))
}

func TestImportICS_Malformed(t *testing.T) {
	_, err := ImportICS(strings.NewReader("BEGIN:VCALENDAR\r\nBEGIN:VEVENT\r\n"))
	assert.ErrorIs(t, err, ErrICSParse)
}
