package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

type redisInputModel struct {
	state  *wizardState
	input  textinput.Model
	errMsg string
}

func newRedisInputModel(state *wizardState) *redisInputModel {
	ti := textinput.New()
	ti.Placeholder = "redis://127.0.0.1:6379/0"
	ti.CharLimit = 255
	ti.Width = 40

	return &redisInputModel{
		state: state,
		input: ti,
	}
}

func (m *redisInputModel) Init() tea.Cmd {
	if m.state.redisURL != "" {
		m.input.SetValue(m.state.redisURL)
	}
	m.input.Focus()
	return textinput.Blink
}

func (m *redisInputModel) Update(msg tea.Msg) (screenModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if isEsc(msg) {
			return m, func() tea.Msg { return navigateMsg{to: screenAppDirInput} }
		}
		if isEnter(msg) {
			val := strings.TrimSpace(m.input.Value())
			if val == "" {
				val = "redis://127.0.0.1:6379/0"
			}
			if !strings.Contains(val, "://") {
				m.errMsg = "Broker URL must include a scheme, e.g. redis://"
				return m, nil
			}
			m.errMsg = ""
			m.state.redisURL = val
			return m, func() tea.Msg { return navigateMsg{to: screenIPAllowInput} }
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *redisInputModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Redis Broker"))
	b.WriteString("\n")
	b.WriteString(mutedStyle.Render("Broker URL Flower connects to for task events."))
	b.WriteString("\n\n")
	b.WriteString("  " + m.input.View())
	b.WriteString("\n")

	if m.errMsg != "" {
		b.WriteString("\n  " + errorStyle.Render(m.errMsg))
	}

	b.WriteString(helpStyle.Render("\n  enter: confirm (empty = default)  esc: back"))
	return b.String()
}
