package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-study-planner/internal/app"
	"github.com/MKhiriev/go-study-planner/internal/policy"
	"github.com/MKhiriev/go-study-planner/internal/service"
	"github.com/MKhiriev/go-study-planner/models"
)

type tasksModel struct {
	ctx      context.Context
	services *service.ClientServices

	view      policy.TaskView
	search    textinput.Model
	searching bool
	idx       int

	formOpen      bool
	form          formModel
	editingID     string
	confirmDelete bool
}

func newTasksModel(ctx context.Context, services *service.ClientServices) tasksModel {
	search := textinput.New()
	search.Prompt = "/"
	search.Placeholder = "search titles"
	search.Width = 30

	return tasksModel{
		ctx:      ctx,
		services: services,
		view:     policy.ViewAll,
		search:   search,
	}
}

func (m tasksModel) capturesInput() bool {
	return m.searching || m.formOpen || m.confirmDelete
}

func (m tasksModel) visible() []models.Todo {
	return policy.FilterTasks(m.services.Entities.Todos(), m.search.Value(), m.view)
}

func (m tasksModel) selected() (models.Todo, bool) {
	todos := m.visible()
	if len(todos) == 0 {
		return models.Todo{}, false
	}
	return todos[clamp(m.idx, len(todos))], true
}

func (m tasksModel) update(msg tea.Msg) (tasksModel, tea.Cmd) {
	if m.formOpen {
		return m.updateForm(msg)
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	if m.searching {
		switch {
		case key.Matches(keyMsg, keys.enter):
			m.searching = false
			m.search.Blur()
			return m, nil
		case key.Matches(keyMsg, keys.esc):
			m.searching = false
			m.search.Blur()
			m.search.SetValue("")
			return m, nil
		}
		var cmd tea.Cmd
		m.search, cmd = m.search.Update(msg)
		m.idx = 0
		return m, cmd
	}

	if m.confirmDelete {
		m.confirmDelete = false
		if key.Matches(keyMsg, keys.yes) {
			if todo, ok := m.selected(); ok {
				m.services.Entities.DeleteTodo(m.ctx, todo.ID)
				m.idx = clamp(m.idx, len(m.visible()))
				return m, setStatus(app.MsgTaskDeleted)
			}
		}
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.up):
		m.idx = clamp(m.idx-1, len(m.visible()))
	case key.Matches(keyMsg, keys.down):
		m.idx = clamp(m.idx+1, len(m.visible()))
	case key.Matches(keyMsg, keys.view):
		m.view = m.view.Next()
		m.idx = 0
	case key.Matches(keyMsg, keys.search):
		m.searching = true
		return m, m.search.Focus()
	case key.Matches(keyMsg, keys.toggle):
		if todo, ok := m.selected(); ok {
			done := !todo.Completed
			m.services.Entities.UpdateTodo(m.ctx, todo.ID, models.TodoUpdate{Completed: &done})
		}
	case key.Matches(keyMsg, keys.newItem):
		m.formOpen = true
		m.editingID = ""
		m.form = newTaskForm("New task", nil, m.services.Calendar.Location())
	case key.Matches(keyMsg, keys.edit):
		if todo, ok := m.selected(); ok {
			m.formOpen = true
			m.editingID = todo.ID
			m.form = newTaskForm("Edit task", &todo, m.services.Calendar.Location())
		}
	case key.Matches(keyMsg, keys.delete):
		if _, ok := m.selected(); ok {
			m.confirmDelete = true
		}
	}
	return m, nil
}

func newTaskForm(title string, todo *models.Todo, loc *time.Location) formModel {
	form := newForm(title, "Title", "Due date", "Priority").
		withPlaceholders("required", "YYYY-MM-DD", "low, medium, high").
		withValues("", "", string(models.PriorityMedium))
	if todo == nil {
		return form
	}

	due := ""
	if todo.DueDate != nil {
		due = todo.DueDate.In(loc).Format(dateLayout)
	}
	return form.withValues(todo.Title, due, string(todo.Priority))
}

func (m tasksModel) updateForm(msg tea.Msg) (tasksModel, tea.Cmd) {
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

func (m tasksModel) submitForm() (tasksModel, tea.Cmd) {
	due, err := parseDate(m.form.value(1), m.services.Calendar.Location())
	if err != nil {
		m.form.err = app.MsgInvalidDueDate
		return m, nil
	}
	draft := models.TodoDraft{Title: m.form.value(0), DueDate: due, Priority: parsePriority(m.form.value(2))}
	if err := m.services.Validator.Validate(m.ctx, draft); err != nil {
		m.form.err = err.Error()
		return m, nil
	}

	m.formOpen = false
	if m.editingID == "" {
		m.services.Entities.AddTodo(m.ctx, draft)
		return m, setStatus(app.MsgTaskAdded)
	}

	update := models.TodoUpdate{Title: &draft.Title, Priority: &draft.Priority, DueDate: due, ClearDueDate: due == nil}
	m.services.Entities.UpdateTodo(m.ctx, m.editingID, update)
	m.editingID = ""
	return m, setStatus(app.MsgTaskUpdated)
}

// parsePriority maps blank input to medium. Other input is lower-cased and
// left for the validator to reject.
func parsePriority(v string) models.Priority {
	p := models.Priority(strings.ToLower(strings.TrimSpace(v)))
	if p == "" {
		return models.PriorityMedium
	}
	return p
}

func (m tasksModel) View() string {
	if m.formOpen {
		return m.form.View()
	}

	var b strings.Builder
	counts := policy.CountTasks(m.services.Entities.Todos())
	for _, v := range policy.TaskViews {
		label := fmt.Sprintf("%s (%d)", v, counts.Of(v))
		if v == m.view {
			b.WriteString(activeTabStyle.Render(label))
		} else {
			b.WriteString(tabStyle.Render(label))
		}
	}
	b.WriteString("\n")
	if m.searching || m.search.Value() != "" {
		b.WriteString(m.search.View())
		b.WriteString("\n")
	}
	b.WriteString("\n")

	todos := m.visible()
	if len(todos) == 0 {
		b.WriteString(helpStyle.Render("No tasks here. Press n to add one."))
	}

	now := time.Now()
	loc := m.services.Calendar.Location()
	idx := clamp(m.idx, len(todos))
	for i, t := range todos {
		b.WriteString(renderTaskLine(t, now, loc, i == idx))
		b.WriteString("\n")
	}

	if m.confirmDelete {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render("Delete this task? y/n"))
	}
	return strings.TrimRight(b.String(), "\n")
}

func renderTaskLine(t models.Todo, now time.Time, loc *time.Location, selected bool) string {
	check := "[ ]"
	if t.Completed {
		check = "[x]"
	}

	title := fitText(t.Title, 40)
	if t.Completed {
		title = doneStyle.Render(title)
	}

	line := fmt.Sprintf("%s %s  %s", check, title, t.Priority)
	if t.DueDate != nil {
		due := "due " + t.DueDate.In(loc).Format(dateLayout)
		if t.IsOverdue(now) {
			due = overdueStyle.Render(due + " (overdue)")
		}
		line += "  " + due
	}

	if selected {
		return selectedStyle.Render(line)
	}
	return line
}

func (m tasksModel) hotKeys() string {
	switch {
	case m.formOpen:
		return ""
	case m.searching:
		return "enter: apply  esc: clear"
	default:
		return "j/k: move  space: done  n: new  e: edit  d: delete  v: view  /: search"
	}
}
