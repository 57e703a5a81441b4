package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

type confirmModel struct {
	state  *wizardState
	cursor int
}

func newConfirmModel(state *wizardState) *confirmModel {
	return &confirmModel{state: state}
}

func (m *confirmModel) Init() tea.Cmd {
	m.cursor = 0
	return nil
}

func (m *confirmModel) Update(msg tea.Msg) (screenModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if isEsc(msg) {
			return m, func() tea.Msg { return navigateMsg{to: screenCertbotSelect} }
		}
		if (isLeft(msg) || isUp(msg)) && m.cursor > 0 {
			m.cursor--
		}
		if (isRight(msg) || isDown(msg)) && m.cursor < 2 {
			m.cursor++
		}
		if isEnter(msg) {
			switch m.cursor {
			case 0:
				return m, func() tea.Msg { return navigateMsg{to: screenProgress} }
			case 1:
				return m, func() tea.Msg { return navigateMsg{to: screenCertbotSelect} }
			case 2:
				return m, tea.Quit
			}
		}
	}
	return m, nil
}

func (m *confirmModel) View() string {
	var b strings.Builder
	s := m.state

	b.WriteString(titleStyle.Render("Confirm Install"))
	b.WriteString("\n\n")

	b.WriteString(subtitleStyle.Render("  Summary"))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("  Web server:   %s\n", selectedStyle.Render(s.webServer)))
	b.WriteString(fmt.Sprintf("  Domain:       %s\n", selectedStyle.Render(s.domain)))
	b.WriteString(fmt.Sprintf("  App dir:      %s\n", selectedStyle.Render(s.appDir)))
	b.WriteString(fmt.Sprintf("  Redis broker: %s\n", selectedStyle.Render(s.redisURL)))
	if s.ipAllow != "" {
		b.WriteString(fmt.Sprintf("  IP allow:     %s\n", selectedStyle.Render(s.ipAllow)))
	} else {
		b.WriteString(fmt.Sprintf("  IP allow:     %s\n", mutedStyle.Render("(unrestricted)")))
	}
	if s.authUser != "" {
		b.WriteString(fmt.Sprintf("  Basic auth:   %s\n", selectedStyle.Render(s.authUser)))
	} else {
		b.WriteString(fmt.Sprintf("  Basic auth:   %s\n", mutedStyle.Render("(none)")))
	}
	b.WriteString(fmt.Sprintf("  Certbot:      %s\n", selectedStyle.Render(fmt.Sprintf("%t", s.certbot))))

	b.WriteString("\n")
	b.WriteString(subtitleStyle.Render("  Equivalent CLI Command"))
	b.WriteString("\n")
	b.WriteString(mutedStyle.Render("  $ " + m.cliCommand()))
	b.WriteString("\n\n")

	buttons := []string{"Install", "Back", "Cancel"}
	for i, btn := range buttons {
		if i == m.cursor {
			b.WriteString("  " + borderStyle.Render(selectedStyle.Render(btn)))
		} else {
			b.WriteString("  " + normalStyle.Render("["+btn+"]"))
		}
		b.WriteString("  ")
	}
	b.WriteString("\n")

	b.WriteString(helpStyle.Render("\n  left/right: navigate  enter: select  esc: back"))
	return b.String()
}

func (m *confirmModel) cliCommand() string {
	s := m.state
	parts := []string{
		"flowerctl install",
		"--web-server " + s.webServer,
		"--domain " + s.domain,
		"--app-dir " + s.appDir,
		"--redis-url " + s.redisURL,
	}
	if s.ipAllow != "" {
		parts = append(parts, fmt.Sprintf("--ip-allow %q", s.ipAllow))
	}
	if s.authUser != "" {
		parts = append(parts, "--create-user "+s.authUser)
	}
	if s.certbot {
		parts = append(parts, "--certbot")
	}
	return strings.Join(parts, " ")
}
