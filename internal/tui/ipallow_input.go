package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Mohanad7770/flower-installer/internal/flowerctl"
)

type ipAllowInputModel struct {
	state  *wizardState
	input  textinput.Model
	errMsg string
}

func newIPAllowInputModel(state *wizardState) *ipAllowInputModel {
	ti := textinput.New()
	ti.Placeholder = "10.0.0.0/24, 192.168.1.5"
	ti.CharLimit = 512
	ti.Width = 40

	return &ipAllowInputModel{
		state: state,
		input: ti,
	}
}

func (m *ipAllowInputModel) Init() tea.Cmd {
	if m.state.ipAllow != "" {
		m.input.SetValue(m.state.ipAllow)
	}
	m.input.Focus()
	return textinput.Blink
}

func (m *ipAllowInputModel) Update(msg tea.Msg) (screenModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if isEsc(msg) {
			return m, func() tea.Msg { return navigateMsg{to: screenRedisInput} }
		}
		if isEnter(msg) {
			normalized, err := flowerctl.ValidateIPList(m.input.Value())
			if err != nil {
				m.errMsg = err.Error()
				return m, nil
			}
			m.errMsg = ""
			m.state.ipAllow = normalized
			return m, func() tea.Msg { return navigateMsg{to: screenAuthInput} }
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *ipAllowInputModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("IP Allow-List"))
	b.WriteString("\n")
	b.WriteString(mutedStyle.Render("Optional comma-separated IPs or networks allowed to reach the dashboard."))
	b.WriteString("\n\n")
	b.WriteString("  " + m.input.View())
	b.WriteString("\n")

	if m.errMsg != "" {
		b.WriteString("\n  " + errorStyle.Render(m.errMsg))
	}

	b.WriteString(helpStyle.Render("\n  enter: confirm (empty = no restriction)  esc: back"))
	return b.String()
}
