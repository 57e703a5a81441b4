package tui

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Mohanad7770/flower-installer/internal/flowerctl"
)

type stepStatus int

const (
	stepPending stepStatus = iota
	stepRunning
	stepDone
	stepSkipped
	stepFailed
)

type progressStep struct {
	label  string
	run    func(in *flowerctl.Installer, req flowerctl.Request) error
	skip   bool
	status stepStatus
	err    error
}

type stepDoneMsg struct {
	index int
	err   error
}

type progressModel struct {
	state     *wizardState
	steps     []progressStep
	spinner   spinner.Model
	installer *flowerctl.Installer
	req       flowerctl.Request
	current   int
	done      bool
	errMsg    string
}

func newProgressModel(state *wizardState) *progressModel {
	sp := spinner.New()
	sp.Spinner = spinner.Dot

	return &progressModel{
		state:   state,
		spinner: sp,
	}
}

func (m *progressModel) Init() tea.Cmd {
	m.req = flowerctl.Request{
		WebServer:  m.state.webServer,
		Domain:     m.state.domain,
		AppDir:     m.state.appDir,
		RedisURL:   m.state.redisURL,
		IPAllow:    m.state.ipAllow,
		CreateUser: m.state.authUser,
		Certbot:    m.state.certbot,
	}

	paths, err := flowerctl.LoadPaths()
	if err != nil {
		m.errMsg = err.Error()
		m.done = true
		return nil
	}
	log := flowerctl.NewLogger()
	m.installer = flowerctl.NewInstaller(paths, flowerctl.NewRunner(log), log)
	password := m.state.password
	m.installer.ReadPassword = func(string) (string, error) { return password, nil }

	useAuth := m.state.authUser != ""
	m.steps = []progressStep{
		{label: "Validating request", run: func(in *flowerctl.Installer, req flowerctl.Request) error {
			if err := flowerctl.EnsureRoot(); err != nil {
				return err
			}
			return (&req).Validate()
		}},
		{label: "Creating virtualenv and installing Flower", run: func(in *flowerctl.Installer, req flowerctl.Request) error {
			return in.CreateVenv(req)
		}},
		{label: "Configuring basic auth", skip: !useAuth, run: func(in *flowerctl.Installer, req flowerctl.Request) error {
			_, err := in.ConfigureAuth(req)
			return err
		}},
		{label: "Configuring " + m.state.webServer, run: func(in *flowerctl.Installer, req flowerctl.Request) error {
			return in.ConfigureWebServer(req, useAuth)
		}},
		{label: "Issuing TLS certificate", skip: !m.state.certbot, run: func(in *flowerctl.Installer, req flowerctl.Request) error {
			return in.IssueCertificate(req)
		}},
		{label: "Registering systemd service", run: func(in *flowerctl.Installer, req flowerctl.Request) error {
			return in.RegisterService(req)
		}},
	}

	m.current = 0
	m.done = false
	m.errMsg = ""
	m.steps[0].status = stepRunning

	return tea.Batch(m.spinner.Tick, m.runStep(0))
}

func (m *progressModel) runStep(index int) tea.Cmd {
	return func() tea.Msg {
		step := m.steps[index]
		if step.skip {
			return stepDoneMsg{index: index}
		}
		_, err := captureOutput(func() error {
			return step.run(m.installer, m.req)
		})
		return stepDoneMsg{index: index, err: err}
	}
}

// captureOutput keeps the pipeline's fmt prints from corrupting the
// alternate screen while the wizard is running. The pipe is drained
// concurrently: pip alone can emit more than a pipe buffer's worth, and a
// full pipe with no reader would block the step forever. Restoration runs
// deferred so a panicking step cannot leave the process streams hijacked.
func captureOutput(fn func() error) (out string, err error) {
	oldOut, oldErr := os.Stdout, os.Stderr
	r, w, perr := os.Pipe()
	if perr != nil {
		return "", fn()
	}
	os.Stdout, os.Stderr = w, w

	drained := make(chan string, 1)
	go func() {
		var buf bytes.Buffer
		io.Copy(&buf, r)
		drained <- buf.String()
	}()

	defer func() {
		os.Stdout, os.Stderr = oldOut, oldErr
		w.Close()
		out = <-drained
	}()

	err = fn()
	return
}

func (m *progressModel) Update(msg tea.Msg) (screenModel, tea.Cmd) {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case stepDoneMsg:
		if m.steps[msg.index].skip {
			m.steps[msg.index].status = stepSkipped
		} else {
			m.steps[msg.index].status = stepDone
		}
		if msg.err != nil {
			m.steps[msg.index].status = stepFailed
			m.steps[msg.index].err = msg.err
			m.errMsg = msg.err.Error()
			m.done = true
			return m, nil
		}

		next := msg.index + 1
		if next >= len(m.steps) {
			m.done = true
			return m, func() tea.Msg { return navigateMsg{to: screenComplete} }
		}
		m.current = next
		m.steps[next].status = stepRunning
		return m, m.runStep(next)

	case tea.KeyMsg:
		if m.done && m.errMsg != "" {
			if isEnter(msg) || isEsc(msg) {
				return m, tea.Quit
			}
		}
	}
	return m, nil
}

func (m *progressModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Installing"))
	b.WriteString("\n\n")

	for _, step := range m.steps {
		var icon string
		switch step.status {
		case stepPending:
			icon = mutedStyle.Render("  ")
		case stepRunning:
			icon = m.spinner.View()
		case stepDone:
			icon = successStyle.Render("OK")
		case stepSkipped:
			icon = mutedStyle.Render("--")
		case stepFailed:
			icon = errorStyle.Render("XX")
		}
		b.WriteString(fmt.Sprintf("  %s %s\n", icon, normalStyle.Render(step.label)))
	}

	if m.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render("  Error: " + m.errMsg))
		b.WriteString("\n")
		b.WriteString(helpStyle.Render("\n  press enter or esc to exit"))
	}

	return b.String()
}
