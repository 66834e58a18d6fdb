package store

import (
	"time"

	"github.com/MKhiriev/go-study-planner/models"
)

func sampleSnapshot() models.Snapshot {
	created := time.Date(2024, 3, 1, 8, 30, 0, 0, time.UTC)
	due := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)
	return models.Snapshot{
		Todos: []models.Todo{
			{ID: "todo_1", Title: "Read chapter 4", DueDate: &due, Priority: models.PriorityHigh, CreatedAt: created},
			{ID: "todo_2", Title: "Buy pens", Completed: true, Priority: models.PriorityLow, CreatedAt: created},
		},
		Notes: []models.Note{
			{ID: "note_1", Title: "Lecture", Content: "Sorting", Category: "CS", CreatedAt: created, UpdatedAt: created.Add(time.Hour)},
		},
		Events: []models.CalendarEvent{
			{
				ID:    "event_1",
				Title: "Exam",
				Start: time.Date(2024, 3, 10, 9, 0, 0, 0, time.UTC),
				End:   time.Date(2024, 3, 10, 10, 0, 0, 0, time.UTC),
				Type:  models.EventExam,
			},
		},
	}
}
