package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// formModel is a column of labelled single-line inputs, optionally followed
// by a multi-line text area. Focus index len(inputs) is the text area.
type formModel struct {
	title  string
	labels []string
	inputs []textinput.Model

	hasArea   bool
	areaLabel string
	area      textarea.Model

	focus int
	err   string
}

func newForm(title string, labels ...string) formModel {
	inputs := make([]textinput.Model, len(labels))
	for i := range inputs {
		inputs[i] = textinput.New()
		inputs[i].Width = 40
		inputs[i].Prompt = ""
	}
	if len(inputs) > 0 {
		inputs[0].Focus()
	}

	return formModel{title: title, labels: labels, inputs: inputs}
}

func (f formModel) withArea(label, value string) formModel {
	f.hasArea = true
	f.areaLabel = label
	f.area = textarea.New()
	f.area.SetWidth(60)
	f.area.SetHeight(8)
	f.area.ShowLineNumbers = false
	f.area.SetValue(value)
	return f
}

func (f formModel) withValues(values ...string) formModel {
	for i, v := range values {
		if i < len(f.inputs) {
			f.inputs[i].SetValue(v)
		}
	}
	return f
}

func (f formModel) withPlaceholders(placeholders ...string) formModel {
	for i, p := range placeholders {
		if i < len(f.inputs) {
			f.inputs[i].Placeholder = p
		}
	}
	return f
}

func (f formModel) value(i int) string {
	return strings.TrimSpace(f.inputs[i].Value())
}

func (f formModel) areaValue() string {
	return f.area.Value()
}

func (f formModel) fieldCount() int {
	if f.hasArea {
		return len(f.inputs) + 1
	}
	return len(f.inputs)
}

func (f formModel) onArea() bool {
	return f.hasArea && f.focus == len(f.inputs)
}

// submitted reports whether msg asks to save the form: ctrl+s anywhere, or
// enter outside the text area.
func (f formModel) submitted(msg tea.KeyMsg) bool {
	if key.Matches(msg, keys.save) {
		return true
	}
	return key.Matches(msg, keys.enter) && !f.onArea()
}

func (f formModel) setFocus(i int) (formModel, tea.Cmd) {
	n := f.fieldCount()
	f.focus = (i%n + n) % n

	var cmd tea.Cmd
	for j := range f.inputs {
		if j == f.focus {
			cmd = f.inputs[j].Focus()
		} else {
			f.inputs[j].Blur()
		}
	}
	if f.hasArea {
		if f.onArea() {
			cmd = f.area.Focus()
		} else {
			f.area.Blur()
		}
	}
	return f, cmd
}

func (f formModel) update(msg tea.Msg) (formModel, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, keys.tab):
			return f.setFocus(f.focus + 1)
		case key.Matches(keyMsg, keys.backtab):
			return f.setFocus(f.focus - 1)
		}
	}

	var cmd tea.Cmd
	if f.onArea() {
		f.area, cmd = f.area.Update(msg)
		return f, cmd
	}
	f.inputs[f.focus], cmd = f.inputs[f.focus].Update(msg)
	return f, cmd
}

func (f formModel) View() string {
	width := 0
	for _, l := range f.labels {
		width = max(width, len(l))
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render(f.title))
	b.WriteString("\n\n")
	for i, label := range f.labels {
		b.WriteString(label)
		b.WriteString(":")
		b.WriteString(strings.Repeat(" ", width-len(label)+1))
		b.WriteString("[")
		b.WriteString(f.inputs[i].View())
		b.WriteString("]\n")
	}
	if f.hasArea {
		b.WriteString("\n")
		b.WriteString(f.areaLabel)
		b.WriteString(":\n")
		b.WriteString(f.area.View())
		b.WriteString("\n")
	}
	if f.err != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render(f.err))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	hint := "esc cancel  tab next field  enter save"
	if f.hasArea {
		hint = "esc cancel  tab next field  ctrl+s save"
	}
	b.WriteString(helpStyle.Render(hint))
	return b.String()
}
