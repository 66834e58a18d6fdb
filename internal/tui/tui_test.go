package tui

import (
	"context"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-study-planner/internal/app"
	"github.com/MKhiriev/go-study-planner/internal/config"
	"github.com/MKhiriev/go-study-planner/internal/logger"
	"github.com/MKhiriev/go-study-planner/internal/service"
	"github.com/MKhiriev/go-study-planner/internal/store"
	"github.com/MKhiriev/go-study-planner/models"
)

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

var (
	enterKey = tea.KeyMsg{Type: tea.KeyEnter}
	tabKey   = tea.KeyMsg{Type: tea.KeyTab}
)

// newSignedInServices returns services over memory storage with "alice"
// signed in.
func newSignedInServices(t *testing.T) *service.ClientServices {
	t.Helper()

	storages, err := store.NewClientStorages(config.ClientStorage{Backend: config.BackendMemory}, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = storages.Close() })

	cfg := &config.ClientConfig{
		Calendar:  config.ClientCalendar{WeekStart: time.Monday, Location: time.UTC},
		Dashboard: config.ClientDashboard{UpcomingLimit: 3, TaskLimit: 5, CompactTaskLimit: 3, RecentNotesLimit: 3},
	}
	services := service.NewClientServices(storages, cfg, logger.Nop())
	require.NoError(t, services.Session.Login(context.Background(), models.User{ID: "alice", Email: "alice@uni.edu"}))
	return services
}

// ── Login ────────────────────────────────────────────────────────────────────

func TestLoginModel_ToUser(t *testing.T) {
	tests := []struct {
		name    string
		values  []string
		want    models.User
		wantErr string
	}{
		{name: "id only", values: []string{"alice", "", ""}, want: models.User{ID: "alice"}},
		{
			name:   "with email and name",
			values: []string{"alice", "alice@uni.edu", "Alice"},
			want:   models.User{ID: "alice", Email: "alice@uni.edu", Metadata: map[string]string{"name": "Alice"}},
		},
		{name: "missing id", values: []string{"", "a@b.c", ""}, wantErr: app.MsgUserIDRequired},
		{name: "id with spaces", values: []string{"al ice", "", ""}, wantErr: app.MsgUserIDHasSpaces},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newLoginModel(models.NewAppBuildInfo("", "", ""))
			m.form = m.form.withValues(tt.values...)

			user, errText := m.toUser()

			assert.Equal(t, tt.wantErr, errText)
			if tt.wantErr == "" {
				assert.Equal(t, tt.want, user)
			}
		})
	}
}

func TestLoginModel_SubmitAndQuit(t *testing.T) {
	m := newLoginModel(models.NewAppBuildInfo("1.0.0", "", ""))
	m.form = m.form.withValues("alice")

	next, cmd := m.Update(enterKey)
	result := next.(loginModel)

	assert.True(t, result.done)
	assert.Equal(t, "alice", result.user.ID)
	assert.NotNil(t, cmd)

	next, _ = newLoginModel(models.NewAppBuildInfo("", "", "")).Update(tea.KeyMsg{Type: tea.KeyEsc})
	assert.True(t, next.(loginModel).quitByUser)
}

// ── Main loop ────────────────────────────────────────────────────────────────

func TestMainLoop_Navigation(t *testing.T) {
	services := newSignedInServices(t)
	user, _ := services.Session.CurrentUser()
	m := newMainLoopModel(context.Background(), services, user)

	next, _ := m.Update(tabKey)
	m = next.(mainLoopModel)
	assert.Equal(t, screenTasks, m.active)

	next, _ = m.Update(runes("4"))
	m = next.(mainLoopModel)
	assert.Equal(t, screenCalendar, m.active)

	assert.Contains(t, m.View(), "CALENDAR")

	next, cmd := m.Update(runes("L"))
	m = next.(mainLoopModel)
	assert.True(t, m.logout)
	assert.NotNil(t, cmd)
}

func TestMainLoop_DashboardView(t *testing.T) {
	services := newSignedInServices(t)
	ctx := context.Background()
	services.Entities.AddTodo(ctx, models.TodoDraft{Title: "Finish lab report", Priority: models.PriorityHigh})
	user, _ := services.Session.CurrentUser()

	view := newMainLoopModel(ctx, services, user).View()

	assert.Contains(t, view, "DASHBOARD")
	assert.Contains(t, view, "alice")
	assert.Contains(t, view, "To do")
	assert.Equal(t, 2, strings.Count(view, "Finish lab report"))
}

func TestMainLoop_HotkeysIgnoredWhileTyping(t *testing.T) {
	services := newSignedInServices(t)
	user, _ := services.Session.CurrentUser()
	m := newMainLoopModel(context.Background(), services, user)
	m.active = screenTasks

	next, _ := m.Update(runes("n"))
	m = next.(mainLoopModel)
	require.True(t, m.capturesInput())

	// "L" is typed into the form instead of signing out
	next, _ = m.Update(runes("L"))
	m = next.(mainLoopModel)
	assert.False(t, m.logout)
	assert.Equal(t, "L", m.tasks.form.value(0))
}

// ── Tasks ────────────────────────────────────────────────────────────────────

func TestTasksModel_AddEditToggleDelete(t *testing.T) {
	services := newSignedInServices(t)
	ctx := context.Background()
	m := newTasksModel(ctx, services)

	m, _ = m.update(runes("n"))
	require.True(t, m.formOpen)
	m.form = m.form.withValues("Essay", "2024-03-15", "HIGH")
	m, cmd := m.update(enterKey)

	require.False(t, m.formOpen)
	assert.NotNil(t, cmd)
	todos := services.Entities.Todos()
	require.Len(t, todos, 1)
	assert.Equal(t, "Essay", todos[0].Title)
	assert.Equal(t, models.PriorityHigh, todos[0].Priority)
	require.NotNil(t, todos[0].DueDate)
	assert.Equal(t, time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC), *todos[0].DueDate)

	m, _ = m.update(runes("e"))
	require.True(t, m.formOpen)
	m.form = m.form.withValues("Essay draft", "", "low")
	m, _ = m.update(enterKey)
	todos = services.Entities.Todos()
	assert.Equal(t, "Essay draft", todos[0].Title)
	assert.Nil(t, todos[0].DueDate)

	m, _ = m.update(runes(" "))
	assert.True(t, services.Entities.Todos()[0].Completed)

	m, _ = m.update(runes("d"))
	require.True(t, m.confirmDelete)
	m, _ = m.update(runes("y"))
	assert.Empty(t, services.Entities.Todos())
}

func TestTasksModel_FormErrors(t *testing.T) {
	services := newSignedInServices(t)
	m := newTasksModel(context.Background(), services)

	m, _ = m.update(runes("n"))
	m.form = m.form.withValues("Essay", "15/03/2024", "high")
	m, _ = m.update(enterKey)
	assert.True(t, m.formOpen)
	assert.Equal(t, app.MsgInvalidDueDate, m.form.err)

	m.form = m.form.withValues("", "", "high")
	m, _ = m.update(enterKey)
	assert.True(t, m.formOpen)
	assert.NotEmpty(t, m.form.err)
	assert.Empty(t, services.Entities.Todos())
}

func TestRenderTaskLine_Overdue(t *testing.T) {
	due := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	now := time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)

	open := renderTaskLine(models.Todo{Title: "Late", DueDate: &due, Priority: models.PriorityLow}, now, time.UTC, false)
	done := renderTaskLine(models.Todo{Title: "Late", DueDate: &due, Completed: true}, now, time.UTC, false)

	assert.Contains(t, open, "(overdue)")
	assert.NotContains(t, done, "(overdue)")
	assert.Contains(t, done, "[x]")
}

// ── Notes ────────────────────────────────────────────────────────────────────

func TestNotesModel_AddAndFilterByCategory(t *testing.T) {
	services := newSignedInServices(t)
	ctx := context.Background()
	services.Entities.AddNote(ctx, models.NoteDraft{Title: "Sets", Category: "Math"})
	m := newNotesModel(ctx, services)

	m, _ = m.update(runes("n"))
	m.form = m.form.withValues("Shopping list", "")
	m, _ = m.update(tea.KeyMsg{Type: tea.KeyCtrlS})
	require.False(t, m.formOpen)

	notes := services.Entities.Notes()
	require.Len(t, notes, 2)
	assert.Equal(t, models.DefaultCategory, notes[1].Category)

	// All -> General -> Math
	m, _ = m.update(runes("]"))
	assert.Equal(t, models.DefaultCategory, m.category)
	m, _ = m.update(runes("]"))
	assert.Equal(t, "Math", m.category)
	visible := m.visible()
	require.Len(t, visible, 1)
	assert.Equal(t, "Sets", visible[0].Title)
}

// ── Calendar ─────────────────────────────────────────────────────────────────

func TestCalendarModel_AddEventPastMidnight(t *testing.T) {
	services := newSignedInServices(t)
	user, _ := services.Session.CurrentUser()
	m := newCalendarModel(context.Background(), services, user)

	m, _ = m.update(runes("n"))
	require.True(t, m.formOpen)
	m.form = m.form.withValues("Night study", "23:00", "01:00", "Exam", "")
	m, _ = m.update(enterKey)
	require.False(t, m.formOpen, m.form.err)

	events := services.Entities.Events()
	require.Len(t, events, 1)
	assert.Equal(t, models.EventExam, events[0].Type)
	assert.Equal(t, 2*time.Hour, events[0].End.Sub(events[0].Start))
	assert.Len(t, m.dayEvents(), 1)

	// the next day still shows the overnight part
	m, _ = m.update(tea.KeyMsg{Type: tea.KeyRight})
	assert.Len(t, m.dayEvents(), 1)
}

func TestCalendarModel_MoveMonthsClampsDay(t *testing.T) {
	services := newSignedInServices(t)
	user, _ := services.Session.CurrentUser()
	m := newCalendarModel(context.Background(), services, user)
	m.selected = time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC)

	m = m.moveMonths(1)
	assert.Equal(t, time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC), m.selected)

	m = m.moveMonths(-2)
	assert.Equal(t, time.Date(2023, 12, 29, 0, 0, 0, 0, time.UTC), m.selected)
}

// ── Helpers ──────────────────────────────────────────────────────────────────

func TestParseHelpers(t *testing.T) {
	assert.Equal(t, models.PriorityMedium, parsePriority(" "))
	assert.Equal(t, models.PriorityHigh, parsePriority("High"))
	assert.Equal(t, models.EventOther, parseEventType(""))
	assert.Equal(t, models.EventMeeting, parseEventType(" MEETING "))

	due, err := parseDate("", time.UTC)
	require.NoError(t, err)
	assert.Nil(t, due)
	_, err = parseDate("tomorrow", time.UTC)
	assert.Error(t, err)
}

func TestFitTextAndClamp(t *testing.T) {
	assert.Equal(t, "short", fitText("short", 10))
	assert.Equal(t, "abcd...", fitText("abcdefghij", 7))
	assert.Equal(t, "ab", fitText("abcdef", 2))

	assert.Equal(t, 0, clamp(-1, 3))
	assert.Equal(t, 2, clamp(5, 3))
	assert.Equal(t, 0, clamp(4, 0))
}

func TestRenderPage(t *testing.T) {
	page := renderPage("TITLE", "", "x: do")

	assert.True(t, strings.HasPrefix(page, titleStyle.Render("TITLE")))
	assert.Contains(t, page, "  -\n")
	assert.Contains(t, page, "x: do")
}
