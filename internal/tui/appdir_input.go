package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

type appDirInputModel struct {
	state  *wizardState
	input  textinput.Model
	errMsg string
}

func newAppDirInputModel(state *wizardState) *appDirInputModel {
	ti := textinput.New()
	ti.Placeholder = "/var/www/vhosts/flower-server"
	ti.CharLimit = 255
	ti.Width = 40

	return &appDirInputModel{
		state: state,
		input: ti,
	}
}

func (m *appDirInputModel) Init() tea.Cmd {
	if m.state.appDir != "" {
		m.input.SetValue(m.state.appDir)
	}
	m.input.Focus()
	return textinput.Blink
}

func (m *appDirInputModel) Update(msg tea.Msg) (screenModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if isEsc(msg) {
			return m, func() tea.Msg { return navigateMsg{to: screenDomainInput} }
		}
		if isEnter(msg) {
			val := strings.TrimSpace(m.input.Value())
			if !strings.HasPrefix(val, "/") {
				m.errMsg = "App dir must be an absolute path"
				return m, nil
			}
			m.errMsg = ""
			m.state.appDir = strings.TrimRight(val, "/")
			return m, func() tea.Msg { return navigateMsg{to: screenRedisInput} }
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *appDirInputModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("App Directory"))
	b.WriteString("\n")
	b.WriteString(mutedStyle.Render("Directory where the virtualenv and Flower app live."))
	b.WriteString("\n\n")
	b.WriteString("  " + m.input.View())
	b.WriteString("\n")

	if m.errMsg != "" {
		b.WriteString("\n  " + errorStyle.Render(m.errMsg))
	}

	b.WriteString(helpStyle.Render("\n  enter: confirm  esc: back"))
	return b.String()
}
