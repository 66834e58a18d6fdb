package tui

import (
	"context"
	"fmt"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/MKhiriev/go-study-planner/internal/app"
	"github.com/MKhiriev/go-study-planner/internal/calendar"
	"github.com/MKhiriev/go-study-planner/internal/logger"
	"github.com/MKhiriev/go-study-planner/internal/service"
	"github.com/MKhiriev/go-study-planner/models"
)

type calendarModel struct {
	ctx      context.Context
	services *service.ClientServices
	icsPath  string

	selected time.Time
	eventIdx int

	formOpen      bool
	form          formModel
	confirmDelete bool
}

func newCalendarModel(ctx context.Context, services *service.ClientServices, user models.User) calendarModel {
	return calendarModel{
		ctx:      ctx,
		services: services,
		icsPath:  icsFileName(user.ID),
		selected: calendar.StartOfDay(services.Calendar.Today()),
	}
}

func icsFileName(userID string) string {
	return "planner-" + url.PathEscape(userID) + ".ics"
}

func (m calendarModel) capturesInput() bool {
	return m.formOpen || m.confirmDelete
}

func (m calendarModel) dayEvents() []models.CalendarEvent {
	return m.services.Calendar.EventsOn(m.selected)
}

func (m calendarModel) selectedEvent() (models.CalendarEvent, bool) {
	events := m.dayEvents()
	if len(events) == 0 {
		return models.CalendarEvent{}, false
	}
	return events[clamp(m.eventIdx, len(events))], true
}

func (m calendarModel) moveDays(n int) calendarModel {
	m.selected = m.selected.AddDate(0, 0, n)
	m.eventIdx = 0
	return m
}

func (m calendarModel) moveMonths(n int) calendarModel {
	day := m.selected.Day()
	first := calendar.MonthOf(m.selected).First().AddDate(0, n, 0)
	last := calendar.MonthOf(first).Last().Day()
	m.selected = first.AddDate(0, 0, min(day, last)-1)
	m.eventIdx = 0
	return m
}

func (m calendarModel) update(msg tea.Msg) (calendarModel, tea.Cmd) {
	if m.formOpen {
		return m.updateForm(msg)
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	if m.confirmDelete {
		m.confirmDelete = false
		if key.Matches(keyMsg, keys.yes) {
			if event, ok := m.selectedEvent(); ok {
				m.services.Entities.DeleteEvent(m.ctx, event.ID)
				m.eventIdx = clamp(m.eventIdx, len(m.dayEvents()))
				return m, setStatus(app.MsgEventDeleted)
			}
		}
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.left):
		m = m.moveDays(-1)
	case key.Matches(keyMsg, keys.right):
		m = m.moveDays(1)
	case key.Matches(keyMsg, keys.up):
		m = m.moveDays(-7)
	case key.Matches(keyMsg, keys.down):
		m = m.moveDays(7)
	case key.Matches(keyMsg, keys.prevMonth):
		m = m.moveMonths(-1)
	case key.Matches(keyMsg, keys.nextMonth):
		m = m.moveMonths(1)
	case key.Matches(keyMsg, keys.today):
		m.selected = calendar.StartOfDay(m.services.Calendar.Today())
		m.eventIdx = 0
	case key.Matches(keyMsg, keys.prevEvent):
		m.eventIdx = clamp(m.eventIdx-1, len(m.dayEvents()))
	case key.Matches(keyMsg, keys.nextEvent):
		m.eventIdx = clamp(m.eventIdx+1, len(m.dayEvents()))
	case key.Matches(keyMsg, keys.newItem):
		m.formOpen = true
		m.form = newEventForm(m.selected)
	case key.Matches(keyMsg, keys.delete):
		if _, ok := m.selectedEvent(); ok {
			m.confirmDelete = true
		}
	case key.Matches(keyMsg, keys.exportICS):
		return m, m.exportICS()
	case key.Matches(keyMsg, keys.importICS):
		return m, m.importICS()
	}
	return m, nil
}

func (m calendarModel) exportICS() tea.Cmd {
	f, err := os.Create(m.icsPath)
	if err != nil {
		return setError(fmt.Errorf("export calendar: %w", err))
	}
	defer f.Close()

	if err := m.services.Calendar.ExportICS(m.ctx, f); err != nil {
		logger.FromContext(m.ctx).Err(err).Str("path", m.icsPath).Msg("calendar export failed")
		return setError(err)
	}
	return setStatus(app.MsgCalendarExported + m.icsPath)
}

func (m calendarModel) importICS() tea.Cmd {
	f, err := os.Open(m.icsPath)
	if err != nil {
		return setError(fmt.Errorf("import calendar: %w", err))
	}
	defer f.Close()

	n, err := m.services.Calendar.ImportICS(m.ctx, f)
	if err != nil {
		logger.FromContext(m.ctx).Err(err).Str("path", m.icsPath).Msg("calendar import failed")
		return setError(err)
	}
	return setStatus(fmt.Sprintf(app.MsgCalendarImported, n, m.icsPath))
}

func newEventForm(date time.Time) formModel {
	return newForm("New event on "+date.Format("Mon, Jan 2 2006"), "Title", "Start", "End", "Type", "Description").
		withPlaceholders("required", "HH:MM", "HH:MM", "assignment, exam, meeting, other", "optional").
		withValues("", "09:00", "10:00", string(models.EventOther))
}

func (m calendarModel) updateForm(msg tea.Msg) (calendarModel, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, keys.esc):
			m.formOpen = false
			return m, nil
		case m.form.submitted(keyMsg):
			return m.submitForm()
		}
	}

	var cmd tea.Cmd
	m.form, cmd = m.form.update(msg)
	return m, cmd
}

func (m calendarModel) submitForm() (calendarModel, tea.Cmd) {
	draft := models.EventDraft{
		Title:       m.form.value(0),
		Type:        parseEventType(m.form.value(3)),
		Description: m.form.value(4),
	}
	if err := m.services.Validator.Validate(m.ctx, draft); err != nil {
		m.form.err = err.Error()
		return m, nil
	}
	if _, err := m.services.Calendar.CreateEvent(m.ctx, m.selected, m.form.value(1), m.form.value(2), draft); err != nil {
		m.form.err = err.Error()
		return m, nil
	}

	m.formOpen = false
	return m, setStatus(app.MsgEventAdded)
}

func parseEventType(v string) models.EventType {
	t := models.EventType(strings.ToLower(strings.TrimSpace(v)))
	if t == "" {
		return models.EventOther
	}
	return t
}

func (m calendarModel) View() string {
	if m.formOpen {
		return m.form.View()
	}

	svc := m.services.Calendar
	grid := svc.Grid(calendar.MonthOf(m.selected))
	today := calendar.StartOfDay(svc.Today())

	var b strings.Builder
	b.WriteString(titleStyle.Render(grid.Month.String()))
	b.WriteString("\n")

	header := make([]string, 0, 7)
	for _, name := range calendar.WeekdayNames(grid.WeekStart) {
		header = append(header, cellStyle.Render(name))
	}
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, header...))
	b.WriteString("\n")

	for _, week := range grid.Weeks {
		row := make([]string, 0, len(week))
		for _, cell := range week {
			row = append(row, renderCell(cell, m.selected, today))
		}
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, row...))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(titleStyle.Render(m.selected.Format("Monday, January 2")))
	b.WriteString("\n")

	events := m.dayEvents()
	if len(events) == 0 {
		b.WriteString(helpStyle.Render("No events. Press n to add one."))
	}
	loc := svc.Location()
	idx := clamp(m.eventIdx, len(events))
	for i, e := range events {
		line := fmt.Sprintf("%s-%s  %s [%s]", e.Start.In(loc).Format("15:04"), e.End.In(loc).Format("15:04"), fitText(e.Title, 40), e.Type)
		if e.Description != "" {
			line += "  " + helpStyle.Render(fitText(e.Description, 30))
		}
		if i == idx {
			line = selectedStyle.Render(line)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}

	if m.confirmDelete {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render("Delete this event? y/n"))
	}
	return strings.TrimRight(b.String(), "\n")
}

func renderCell(cell calendar.Cell, selected, today time.Time) string {
	label := fmt.Sprintf("%d", cell.Date.Day())
	if len(cell.Events) > 0 {
		label += "*"
	}

	switch {
	case cell.Date.Equal(selected):
		return selectedCell.Render(label)
	case cell.Date.Equal(today):
		return todayCellStyle.Render(label)
	case !cell.InMonth:
		return outOfMonthStyle.Render(label)
	default:
		return cellStyle.Render(label)
	}
}

func (m calendarModel) hotKeys() string {
	if m.capturesInput() {
		return ""
	}
	return "arrows: day  </>: month  g: today  J/K: event  n: new  d: delete  x: export  i: import"
}
