// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-study-planner/internal/service"
	"github.com/MKhiriev/go-study-planner/models"
)

type screen int

const (
	screenDashboard screen = iota
	screenTasks
	screenNotes
	screenCalendar
)

var screenNames = []string{"1 Dashboard", "2 Tasks", "3 Notes", "4 Calendar"}

type mainLoopModel struct {
	ctx      context.Context
	services *service.ClientServices
	user     models.User

	active   screen
	tasks    tasksModel
	notes    notesModel
	calendar calendarModel

	status string
	errMsg string
	logout bool
}

func newMainLoopModel(ctx context.Context, services *service.ClientServices, user models.User) mainLoopModel {
	return mainLoopModel{
		ctx:      ctx,
		services: services,
		user:     user,
		tasks:    newTasksModel(ctx, services),
		notes:    newNotesModel(ctx, services),
		calendar: newCalendarModel(ctx, services, user),
	}
}

func (m mainLoopModel) Init() tea.Cmd {
	return nil
}

// capturesInput reports whether the active screen is typing into a form or
// a search box, in which case global hotkeys are not applied.
func (m mainLoopModel) capturesInput() bool {
	switch m.active {
	case screenTasks:
		return m.tasks.capturesInput()
	case screenNotes:
		return m.notes.capturesInput()
	case screenCalendar:
		return m.calendar.capturesInput()
	default:
		return false
	}
}

func (m mainLoopModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case statusMsg:
		m.status = string(msg)
		m.errMsg = ""
		return m, clearStatusLater()
	case errMsg:
		m.errMsg = msg.err.Error()
		return m, nil
	case clearStatusMsg:
		m.status = ""
		return m, nil
	}

	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		if keyMsg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		if !m.capturesInput() {
			switch {
			case key.Matches(keyMsg, keys.quit):
				return m, tea.Quit
			case key.Matches(keyMsg, keys.logout):
				m.logout = true
				return m, tea.Quit
			case key.Matches(keyMsg, keys.tab):
				m.active = (m.active + 1) % screen(len(screenNames))
				return m, nil
			case key.Matches(keyMsg, keys.backtab):
				m.active = (m.active + screen(len(screenNames)) - 1) % screen(len(screenNames))
				return m, nil
			}
			for i, b := range keys.screenKeys {
				if key.Matches(keyMsg, b) {
					m.active = screen(i)
					return m, nil
				}
			}
		}
	}

	var cmd tea.Cmd
	switch m.active {
	case screenTasks:
		m.tasks, cmd = m.tasks.update(msg)
	case screenNotes:
		m.notes, cmd = m.notes.update(msg)
	case screenCalendar:
		m.calendar, cmd = m.calendar.update(msg)
	}
	return m, cmd
}

func (m mainLoopModel) View() string {
	var b strings.Builder

	for i, name := range screenNames {
		if screen(i) == m.active {
			b.WriteString(activeTabStyle.Render(name))
		} else {
			b.WriteString(tabStyle.Render(name))
		}
	}
	b.WriteString("   ")
	b.WriteString(helpStyle.Render(m.user.DisplayName()))
	b.WriteString("\n\n")

	var title, body, hotKeys string
	switch m.active {
	case screenDashboard:
		title, body, hotKeys = "DASHBOARD", renderDashboard(m.services.Dashboard.Summary(m.ctx), m.services.Calendar.Location()), ""
	case screenTasks:
		title, body, hotKeys = "TASKS", m.tasks.View(), m.tasks.hotKeys()
	case screenNotes:
		title, body, hotKeys = "NOTES", m.notes.View(), m.notes.hotKeys()
	case screenCalendar:
		title, body, hotKeys = "CALENDAR", m.calendar.View(), m.calendar.hotKeys()
	}
	if !m.capturesInput() {
		hotKeys = strings.TrimSpace(hotKeys + "  tab/1-4: screens  L: sign out")
	}

	if m.status != "" {
		body += "\n\n" + statusStyle.Render(m.status)
	}
	if m.errMsg != "" {
		body += "\n\n" + errorStyle.Render("Error: "+m.errMsg)
	}

	b.WriteString(renderPage(title, body, hotKeys))
	return appStyle.Render(b.String())
}
