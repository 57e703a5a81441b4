package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

type authInputModel struct {
	state *wizardState
	input textinput.Model
}

func newAuthInputModel(state *wizardState) *authInputModel {
	ti := textinput.New()
	ti.Placeholder = "admin"
	ti.CharLimit = 64
	ti.Width = 40

	return &authInputModel{
		state: state,
		input: ti,
	}
}

func (m *authInputModel) Init() tea.Cmd {
	if m.state.authUser != "" {
		m.input.SetValue(m.state.authUser)
	}
	m.input.Focus()
	return textinput.Blink
}

func (m *authInputModel) Update(msg tea.Msg) (screenModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if isEsc(msg) {
			return m, func() tea.Msg { return navigateMsg{to: screenIPAllowInput} }
		}
		if isEnter(msg) {
			m.state.authUser = strings.TrimSpace(m.input.Value())
			if m.state.authUser == "" {
				m.state.password = ""
				return m, func() tea.Msg { return navigateMsg{to: screenCertbotSelect} }
			}
			return m, func() tea.Msg { return navigateMsg{to: screenPasswordInput} }
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *authInputModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Basic Auth"))
	b.WriteString("\n")
	b.WriteString(mutedStyle.Render("Optional username for HTTP basic auth. Leave empty to skip."))
	b.WriteString("\n\n")
	b.WriteString("  " + m.input.View())
	b.WriteString("\n")

	b.WriteString(helpStyle.Render("\n  enter: confirm (empty = no auth)  esc: back"))
	return b.String()
}
