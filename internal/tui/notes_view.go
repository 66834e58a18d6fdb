package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-study-planner/internal/app"
	"github.com/MKhiriev/go-study-planner/internal/policy"
	"github.com/MKhiriev/go-study-planner/internal/service"
	"github.com/MKhiriev/go-study-planner/models"
)

type notesModel struct {
	ctx      context.Context
	services *service.ClientServices

	category  string
	search    textinput.Model
	searching bool
	idx       int

	formOpen      bool
	form          formModel
	editingID     string
	confirmDelete bool
}

func newNotesModel(ctx context.Context, services *service.ClientServices) notesModel {
	search := textinput.New()
	search.Prompt = "/"
	search.Placeholder = "search titles and content"
	search.Width = 30

	return notesModel{
		ctx:      ctx,
		services: services,
		category: policy.AllCategories,
		search:   search,
	}
}

func (m notesModel) capturesInput() bool {
	return m.searching || m.formOpen || m.confirmDelete
}

func (m notesModel) visible() []models.Note {
	return policy.FilterNotes(m.services.Entities.Notes(), m.search.Value(), m.category)
}

func (m notesModel) selected() (models.Note, bool) {
	notes := m.visible()
	if len(notes) == 0 {
		return models.Note{}, false
	}
	return notes[clamp(m.idx, len(notes))], true
}

// cycleCategory moves the category filter by step through the category list.
func (m notesModel) cycleCategory(step int) notesModel {
	categories := policy.Categories(m.services.Entities.Notes())
	current := 0
	for i, c := range categories {
		if c.Name == m.category {
			current = i
		}
	}
	n := len(categories)
	m.category = categories[((current+step)%n+n)%n].Name
	m.idx = 0
	return m
}

func (m notesModel) update(msg tea.Msg) (notesModel, tea.Cmd) {
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
			if note, ok := m.selected(); ok {
				m.services.Entities.DeleteNote(m.ctx, note.ID)
				m.idx = clamp(m.idx, len(m.visible()))
				return m, setStatus(app.MsgNoteDeleted)
			}
		}
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.up):
		m.idx = clamp(m.idx-1, len(m.visible()))
	case key.Matches(keyMsg, keys.down):
		m.idx = clamp(m.idx+1, len(m.visible()))
	case key.Matches(keyMsg, keys.prevCat):
		m = m.cycleCategory(-1)
	case key.Matches(keyMsg, keys.nextCat):
		m = m.cycleCategory(1)
	case key.Matches(keyMsg, keys.search):
		m.searching = true
		return m, m.search.Focus()
	case key.Matches(keyMsg, keys.newItem):
		m.formOpen = true
		m.editingID = ""
		m.form = newNoteForm("New note", nil)
	case key.Matches(keyMsg, keys.edit):
		if note, ok := m.selected(); ok {
			m.formOpen = true
			m.editingID = note.ID
			m.form = newNoteForm("Edit note", &note)
		}
	case key.Matches(keyMsg, keys.delete):
		if _, ok := m.selected(); ok {
			m.confirmDelete = true
		}
	case key.Matches(keyMsg, keys.copy):
		if note, ok := m.selected(); ok {
			if err := clipboard.WriteAll(note.Content); err != nil {
				return m, setError(fmt.Errorf("copy to clipboard: %w", err))
			}
			return m, setStatus(app.MsgNoteCopied)
		}
	}
	return m, nil
}

func newNoteForm(title string, note *models.Note) formModel {
	form := newForm(title, "Title", "Category").
		withPlaceholders("required", models.DefaultCategory)
	if note == nil {
		return form.withArea("Content", "")
	}
	return form.withValues(note.Title, note.Category).withArea("Content", note.Content)
}

func (m notesModel) updateForm(msg tea.Msg) (notesModel, tea.Cmd) {
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

func (m notesModel) submitForm() (notesModel, tea.Cmd) {
	title := m.form.value(0)
	category := m.form.value(1)
	content := m.form.areaValue()
	draft := models.NoteDraft{Title: title, Content: content, Category: category}
	if err := m.services.Validator.Validate(m.ctx, draft); err != nil {
		m.form.err = err.Error()
		return m, nil
	}

	m.formOpen = false
	if m.editingID == "" {
		m.services.Entities.AddNote(m.ctx, draft)
		return m, setStatus(app.MsgNoteAdded)
	}

	if category == "" {
		category = models.DefaultCategory
	}
	m.services.Entities.UpdateNote(m.ctx, m.editingID, models.NoteUpdate{Title: &title, Content: &content, Category: &category})
	m.editingID = ""
	return m, setStatus(app.MsgNoteUpdated)
}

func (m notesModel) View() string {
	if m.formOpen {
		return m.form.View()
	}

	var b strings.Builder
	for _, c := range policy.Categories(m.services.Entities.Notes()) {
		label := fmt.Sprintf("%s (%d)", c.Name, c.Count)
		if c.Name == m.category {
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

	notes := m.visible()
	if len(notes) == 0 {
		b.WriteString(helpStyle.Render("No notes here. Press n to write one."))
	}

	loc := m.services.Calendar.Location()
	idx := clamp(m.idx, len(notes))
	for i, n := range notes {
		line := fmt.Sprintf("%s  %s (%s)", n.UpdatedAt.In(loc).Format(dateTimeLayout), fitText(n.Title, 40), n.Category)
		if i == idx {
			line = selectedStyle.Render(line)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}

	if note, ok := m.selected(); ok {
		b.WriteString("\n")
		b.WriteString(titleStyle.Render(note.Title))
		b.WriteString("\n")
		b.WriteString(note.Content)
		b.WriteString("\n")
	}

	if m.confirmDelete {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render("Delete this note? y/n"))
	}
	return strings.TrimRight(b.String(), "\n")
}

func (m notesModel) hotKeys() string {
	switch {
	case m.formOpen:
		return ""
	case m.searching:
		return "enter: apply  esc: clear"
	default:
		return "j/k: move  n: new  e: edit  d: delete  c: copy  [/]: category  /: search"
	}
}
