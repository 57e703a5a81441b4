package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

type certbotSelectModel struct {
	state  *wizardState
	cursor int
}

func newCertbotSelectModel(state *wizardState) *certbotSelectModel {
	return &certbotSelectModel{state: state}
}

func (m *certbotSelectModel) Init() tea.Cmd {
	if m.state.certbot {
		m.cursor = 0
	} else {
		m.cursor = 1
	}
	return nil
}

func (m *certbotSelectModel) Update(msg tea.Msg) (screenModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if isEsc(msg) {
			return m, func() tea.Msg { return navigateMsg{to: screenAuthInput} }
		}
		if isUp(msg) && m.cursor > 0 {
			m.cursor--
		}
		if isDown(msg) && m.cursor < 1 {
			m.cursor++
		}
		if isEnter(msg) {
			m.state.certbot = m.cursor == 0
			return m, func() tea.Msg { return navigateMsg{to: screenConfirm} }
		}
	}
	return m, nil
}

func (m *certbotSelectModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("TLS Certificate"))
	b.WriteString("\n")
	b.WriteString(mutedStyle.Render("Issue a certificate for the domain via certbot?"))
	b.WriteString("\n\n")

	options := []string{"Yes, run certbot", "No, HTTP only for now"}
	for i, opt := range options {
		radio := radioOff
		label := normalStyle.Render(opt)
		if i == m.cursor {
			radio = radioOn
			label = selectedStyle.Render(opt)
		}
		b.WriteString(fmt.Sprintf("  %s %s\n", radio, label))
	}

	b.WriteString(helpStyle.Render("\n  up/down: navigate  enter: select  esc: back"))
	return b.String()
}
