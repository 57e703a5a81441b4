package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Mohanad7770/flower-installer/internal/flowerctl"
)

type serverOption struct {
	value string
	label string
	desc  string
}

type serverSelectModel struct {
	state   *wizardState
	cursor  int
	options []serverOption
}

func newServerSelectModel(state *wizardState) *serverSelectModel {
	return &serverSelectModel{
		state: state,
		options: []serverOption{
			{value: flowerctl.WebServerApache, label: "apache", desc: "Apache vhost with mod_proxy"},
			{value: flowerctl.WebServerNginx, label: "nginx", desc: "Nginx server block with sites-enabled symlink"},
		},
	}
}

func (m *serverSelectModel) Init() tea.Cmd {
	for i, opt := range m.options {
		if opt.value == m.state.webServer {
			m.cursor = i
			break
		}
	}
	return nil
}

func (m *serverSelectModel) Update(msg tea.Msg) (screenModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if isEsc(msg) {
			return m, func() tea.Msg { return navigateMsg{to: screenWelcome} }
		}
		if isUp(msg) && m.cursor > 0 {
			m.cursor--
		}
		if isDown(msg) && m.cursor < len(m.options)-1 {
			m.cursor++
		}
		if isEnter(msg) {
			m.state.webServer = m.options[m.cursor].value
			return m, func() tea.Msg { return navigateMsg{to: screenDomainInput} }
		}
	}
	return m, nil
}

func (m *serverSelectModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Select Web Server"))
	b.WriteString("\n")
	b.WriteString(mutedStyle.Render("Choose which web server fronts the Flower dashboard."))
	b.WriteString("\n\n")

	for i, opt := range m.options {
		radio := radioOff
		label := normalStyle.Render(opt.label)
		if i == m.cursor {
			radio = radioOn
			label = selectedStyle.Render(opt.label)
		}
		b.WriteString(fmt.Sprintf("  %s %s\n", radio, label))
		b.WriteString(fmt.Sprintf("      %s\n", mutedStyle.Render(opt.desc)))
	}

	b.WriteString(helpStyle.Render("\n  up/down: navigate  enter: select  esc: back"))
	return b.String()
}
