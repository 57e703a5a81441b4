package tui

import (
	tea "github.com/charmbracelet/bubbletea"
)

type screen int

const (
	screenWelcome screen = iota
	screenServerSelect
	screenDomainInput
	screenAppDirInput
	screenRedisInput
	screenIPAllowInput
	screenAuthInput
	screenPasswordInput
	screenCertbotSelect
	screenConfirm
	screenProgress
	screenComplete
)

type navigateMsg struct {
	to screen
}

type wizardState struct {
	webServer string
	domain    string
	appDir    string
	redisURL  string
	ipAllow   string
	authUser  string
	password  string
	certbot   bool
}

type screenModel interface {
	Init() tea.Cmd
	Update(tea.Msg) (screenModel, tea.Cmd)
	View() string
}

type rootModel struct {
	current  screen
	state    *wizardState
	screens  map[screen]screenModel
	width    int
	height   int
	quitting bool
}

// StartWizard runs the interactive install wizard.
func StartWizard() error {
	state := &wizardState{}
	screens := map[screen]screenModel{
		screenWelcome:       newWelcomeModel(),
		screenServerSelect:  newServerSelectModel(state),
		screenDomainInput:   newDomainInputModel(state),
		screenAppDirInput:   newAppDirInputModel(state),
		screenRedisInput:    newRedisInputModel(state),
		screenIPAllowInput:  newIPAllowInputModel(state),
		screenAuthInput:     newAuthInputModel(state),
		screenPasswordInput: newPasswordInputModel(state),
		screenCertbotSelect: newCertbotSelectModel(state),
		screenConfirm:       newConfirmModel(state),
		screenProgress:      newProgressModel(state),
		screenComplete:      newCompleteModel(state),
	}

	m := rootModel{
		current: screenWelcome,
		state:   state,
		screens: screens,
	}

	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err := p.Run()
	return err
}

func (m rootModel) Init() tea.Cmd {
	return m.screens[m.current].Init()
}

func (m rootModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		if isQuit(msg) {
			m.quitting = true
			return m, tea.Quit
		}

	case navigateMsg:
		m.current = msg.to
		s := m.screens[m.current]
		return m, s.Init()
	}

	s := m.screens[m.current]
	newScreen, cmd := s.Update(msg)
	m.screens[m.current] = newScreen
	return m, cmd
}

func (m rootModel) View() string {
	if m.quitting {
		return ""
	}
	return m.screens[m.current].View()
}
