package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

type completeModel struct {
	state *wizardState
}

func newCompleteModel(state *wizardState) *completeModel {
	return &completeModel{state: state}
}

func (m *completeModel) Init() tea.Cmd {
	return nil
}

func (m *completeModel) Update(msg tea.Msg) (screenModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if isEnter(msg) || isEsc(msg) || msg.String() == "q" {
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m *completeModel) View() string {
	var b strings.Builder

	b.WriteString(successStyle.Render("  Install Complete!"))
	b.WriteString("\n\n")

	b.WriteString(fmt.Sprintf("  Dashboard:    %s\n", selectedStyle.Render("https://"+m.state.domain)))
	if m.state.authUser != "" {
		b.WriteString(fmt.Sprintf("  Login user:   %s\n", normalStyle.Render(m.state.authUser)))
	}
	b.WriteString(fmt.Sprintf("  App dir:      %s\n", normalStyle.Render(m.state.appDir)))

	b.WriteString("\n")
	b.WriteString(subtitleStyle.Render("  Next Steps"))
	b.WriteString("\n")
	b.WriteString(mutedStyle.Render("  $ flowerctl status               # check what is installed"))
	b.WriteString("\n")
	b.WriteString(mutedStyle.Render("  $ systemctl status flower        # watch the service"))
	b.WriteString("\n")
	b.WriteString(mutedStyle.Render("  $ flowerctl uninstall            # remove everything again"))
	b.WriteString("\n")

	b.WriteString(helpStyle.Render("\n  enter/q: exit"))
	return b.String()
}
