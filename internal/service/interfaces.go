package service

import (
	"context"
	"io"
	"time"

	"github.com/MKhiriev/go-study-planner/internal/calendar"
	"github.com/MKhiriev/go-study-planner/models"
)

// EntityStore owns the todos, notes and events of the signed-in user.
//
// It is either unloaded or loaded for exactly one user. While unloaded every
// collection reads empty and every mutation is a silent no-op. Each
// successful mutation writes the complete snapshot once. Update and delete of
// an unknown id change nothing and write nothing.
type EntityStore interface {
	// Login loads the snapshot of user. Logging in again as the loaded user is
	// a no-op; logging in as somebody else returns [ErrSessionActive].
	Login(ctx context.Context, user models.User) error
	// Logout drops the in-memory collections.
	Logout(ctx context.Context)
	// UserID returns the loaded user id, if any.
	UserID() (string, bool)

	Todos() []models.Todo
	Notes() []models.Note
	Events() []models.CalendarEvent
	// Snapshot returns a copy of all three collections.
	Snapshot() models.Snapshot

	AddTodo(ctx context.Context, draft models.TodoDraft) (models.Todo, bool)
	UpdateTodo(ctx context.Context, id string, update models.TodoUpdate)
	DeleteTodo(ctx context.Context, id string)

	AddNote(ctx context.Context, draft models.NoteDraft) (models.Note, bool)
	UpdateNote(ctx context.Context, id string, update models.NoteUpdate)
	DeleteNote(ctx context.Context, id string)

	AddEvent(ctx context.Context, draft models.EventDraft) (models.CalendarEvent, bool)
	// AddEvents adds all drafts with a single write.
	AddEvents(ctx context.Context, drafts ...models.EventDraft) ([]models.CalendarEvent, bool)
	UpdateEvent(ctx context.Context, id string, update models.EventUpdate)
	DeleteEvent(ctx context.Context, id string)
}

// SessionService tracks the signed-in user and drives the store lifecycle.
type SessionService interface {
	// Login signs user in. A different user signed in before is signed out
	// first.
	Login(ctx context.Context, user models.User) error
	// Logout signs the current user out, if any.
	Logout(ctx context.Context)
	// CurrentUser returns the signed-in user.
	CurrentUser() (models.User, bool)
}

// DashboardService assembles the dashboard.
type DashboardService interface {
	Summary(ctx context.Context) DashboardSummary
}

// CalendarService answers calendar queries for the signed-in user in the
// configured timezone.
type CalendarService interface {
	Location() *time.Location
	WeekStart() time.Weekday
	// Today returns the current instant in Location.
	Today() time.Time
	Grid(month calendar.Month) calendar.Grid
	EventsOn(date time.Time) []models.CalendarEvent
	Upcoming(limit int) []models.CalendarEvent
	// CreateEvent adds an event on date from HH:MM start and end times.
	CreateEvent(ctx context.Context, date time.Time, start, end string, draft models.EventDraft) (models.CalendarEvent, error)
	ExportICS(ctx context.Context, w io.Writer) error
	ImportICS(ctx context.Context, r io.Reader) (int, error)
}
