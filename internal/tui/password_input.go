package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

type passwordInputModel struct {
	state  *wizardState
	input  textinput.Model
	errMsg string
}

func newPasswordInputModel(state *wizardState) *passwordInputModel {
	ti := textinput.New()
	ti.EchoMode = textinput.EchoPassword
	ti.EchoCharacter = '•'
	ti.CharLimit = 128
	ti.Width = 40

	return &passwordInputModel{
		state: state,
		input: ti,
	}
}

func (m *passwordInputModel) Init() tea.Cmd {
	m.input.SetValue("")
	m.input.Focus()
	return textinput.Blink
}

func (m *passwordInputModel) Update(msg tea.Msg) (screenModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if isEsc(msg) {
			return m, func() tea.Msg { return navigateMsg{to: screenAuthInput} }
		}
		if isEnter(msg) {
			if m.input.Value() == "" {
				m.errMsg = "Password must not be empty"
				return m, nil
			}
			m.errMsg = ""
			m.state.password = m.input.Value()
			return m, func() tea.Msg { return navigateMsg{to: screenCertbotSelect} }
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *passwordInputModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Password"))
	b.WriteString("\n")
	b.WriteString(mutedStyle.Render("Password for " + m.state.authUser + ". Input is hidden."))
	b.WriteString("\n\n")
	b.WriteString("  " + m.input.View())
	b.WriteString("\n")

	if m.errMsg != "" {
		b.WriteString("\n  " + errorStyle.Render(m.errMsg))
	}

	b.WriteString(helpStyle.Render("\n  enter: confirm  esc: back"))
	return b.String()
}
