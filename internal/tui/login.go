package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-study-planner/internal/app"
	"github.com/MKhiriev/go-study-planner/models"
)

// loginModel asks who is using the planner. The id scopes all stored data;
// email and name only feed the greeting.
type loginModel struct {
	form      formModel
	buildInfo models.AppBuildInfo

	showBuildInfo bool
	quitByUser    bool
	done          bool
	user          models.User
}

func newLoginModel(buildInfo models.AppBuildInfo) loginModel {
	form := newForm("Sign in", "User ID", "Email", "Name").
		withPlaceholders("required", "optional", "optional")
	return loginModel{form: form, buildInfo: buildInfo}
}

func (m loginModel) Init() tea.Cmd {
	return nil
}

func (m loginModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		var cmd tea.Cmd
		m.form, cmd = m.form.update(msg)
		return m, cmd
	}

	switch {
	case keyMsg.String() == "ctrl+c":
		m.quitByUser = true
		return m, tea.Quit
	case key.Matches(keyMsg, keys.buildInfo):
		m.showBuildInfo = !m.showBuildInfo
		return m, nil
	case m.showBuildInfo:
		if key.Matches(keyMsg, keys.esc) {
			m.showBuildInfo = false
		}
		return m, nil
	case key.Matches(keyMsg, keys.esc):
		m.quitByUser = true
		return m, tea.Quit
	case m.form.submitted(keyMsg):
		user, err := m.toUser()
		if err != "" {
			m.form.err = err
			return m, nil
		}
		m.user = user
		m.done = true
		return m, tea.Quit
	}

	var cmd tea.Cmd
	m.form, cmd = m.form.update(msg)
	return m, cmd
}

func (m loginModel) toUser() (models.User, string) {
	id := m.form.value(0)
	if id == "" {
		return models.User{}, app.MsgUserIDRequired
	}
	if strings.ContainsAny(id, " \t") {
		return models.User{}, app.MsgUserIDHasSpaces
	}

	user := models.User{ID: id, Email: m.form.value(1)}
	if name := m.form.value(2); name != "" {
		user.Metadata = map[string]string{"name": name}
	}
	return user, ""
}

func (m loginModel) View() string {
	if m.showBuildInfo {
		return appStyle.Render(renderBuildInfoWindow(m.buildInfo))
	}
	return appStyle.Render(renderPage("STUDY PLANNER", m.form.View(), "ctrl+b: about  esc: quit"))
}
