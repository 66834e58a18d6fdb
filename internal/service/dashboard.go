package service

import (
	"context"
	"time"

	"github.com/MKhiriev/go-study-planner/internal/calendar"
	"github.com/MKhiriev/go-study-planner/internal/config"
	"github.com/MKhiriev/go-study-planner/internal/policy"
	"github.com/MKhiriev/go-study-planner/internal/utils"
	"github.com/MKhiriev/go-study-planner/models"
)

// DashboardSummary is everything the dashboard shows at once.
type DashboardSummary struct {
	Greeting    string
	DisplayName string

	NoteCount       int
	ActiveTaskCount int
	UpcomingCount   int

	// Tasks and CompactTasks are the first open tasks by due date, then
	// priority. They differ only in length.
	Tasks        []models.Todo
	CompactTasks []models.Todo
	RecentNotes  []models.Note
	Upcoming     []models.CalendarEvent
}

type dashboardService struct {
	entities EntityStore
	session  SessionService
	limits   config.ClientDashboard
	location *time.Location
	clock    utils.Clock
}

// NewDashboardService returns a [DashboardService] reading from entities.
// Greetings follow the hour in loc.
func NewDashboardService(entities EntityStore, session SessionService, limits config.ClientDashboard, loc *time.Location, clock utils.Clock) DashboardService {
	if loc == nil {
		loc = time.Local
	}
	return &dashboardService{
		entities: entities,
		session:  session,
		limits:   limits,
		location: loc,
		clock:    clock,
	}
}

func (d *dashboardService) Summary(ctx context.Context) DashboardSummary {
	now := d.clock.Now()
	snapshot := d.entities.Snapshot()

	user, _ := d.session.CurrentUser()
	counts := policy.CountTasks(snapshot.Todos)
	upcoming := calendar.Upcoming(snapshot.Events, now, 0)

	summary := DashboardSummary{
		Greeting:        Greeting(now.In(d.location)),
		DisplayName:     user.DisplayName(),
		NoteCount:       len(snapshot.Notes),
		ActiveTaskCount: counts.Active,
		UpcomingCount:   len(upcoming),
		Tasks:           policy.SortTasksCompact(snapshot.Todos, d.limits.TaskLimit),
		CompactTasks:    policy.SortTasksCompact(snapshot.Todos, d.limits.CompactTaskLimit),
		RecentNotes:     policy.RecentNotes(snapshot.Notes, d.limits.RecentNotesLimit),
		Upcoming:        upcoming,
	}
	if limit := d.limits.UpcomingLimit; limit > 0 && len(upcoming) > limit {
		summary.Upcoming = upcoming[:limit]
	}

	return summary
}

// Greeting returns the salutation for the hour of t.
func Greeting(t time.Time) string {
	switch h := t.Hour(); {
	case h < 12:
		return "Good morning"
	case h < 18:
		return "Good afternoon"
	default:
		return "Good evening"
	}
}
