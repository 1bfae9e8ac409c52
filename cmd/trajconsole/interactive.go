package main

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/motionkit/traject/hwsim"
	"github.com/motionkit/traject/msg"
	"github.com/motionkit/traject/registry"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	claimedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#98FB98"))

	freeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))

	valueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#87CEEB"))

	activeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#90EE90"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

type consoleState int

const (
	stateMain consoleState = iota
	stateTargetInput
)

type consoleModel struct {
	err      error
	arm      *hwsim.Arm
	cfg      hwsim.Config
	events   chan registry.Event
	log      []string
	feedback msg.JointTrajectoryFeedback
	claimed  map[string]bool
	active   bool
	input    textinput.Model
	state    consoleState
}

type tickMsg time.Time

// chanObserver forwards registry events into a channel drained by the TUI
// tick handler. Sends never block; a full channel drops the event.
type chanObserver struct {
	ch chan registry.Event
}

func (o chanObserver) OnClaimEvent(e registry.Event) {
	select {
	case o.ch <- e:
	default:
	}
}

func newConsoleModel(cfg hwsim.Config) (*consoleModel, error) {
	arm, err := hwsim.NewArm(cfg)
	if err != nil {
		return nil, err
	}

	m := &consoleModel{
		arm:     arm,
		cfg:     cfg,
		events:  make(chan registry.Event, 64),
		claimed: make(map[string]bool),
	}
	arm.Interface().Subscribe(chanObserver{ch: m.events})
	return m, nil
}

func (m *consoleModel) Init() tea.Cmd {
	return tick()
}

func tick() tea.Cmd {
	return tea.Tick(100*time.Millisecond, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m *consoleModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.state == stateTargetInput {
			return m.updateTargetInput(msg)
		}
		return m.updateMain(msg)

	case tickMsg:
		m.refresh()
		return m, tick()
	}
	return m, nil
}

func (m *consoleModel) updateMain(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	iface := m.arm.Interface()

	switch msg.String() {
	case "ctrl+c", "q":
		m.arm.Close()
		return m, tea.Quit

	case "c":
		m.err = iface.Claim(m.cfg.Joints[0])

	case "a":
		m.err = iface.ClaimAtomic(m.cfg.Joints[0])

	case "r":
		m.err = nil
		for _, name := range iface.ClaimedNames() {
			if err := iface.Release(name); err != nil {
				m.err = err
				break
			}
		}

	case "s":
		m.err = nil
		m.arm.Handle().SetCommand(sweepTrajectory(m.cfg.Joints, 50, 2*time.Second))
		m.appendLog("sent sweep trajectory")

	case "g":
		ti := textinput.New()
		ti.Placeholder = placeholderTargets(len(m.cfg.Joints))
		ti.Prompt = "targets: "
		ti.Width = 50
		ti.Focus()
		m.input = ti
		m.state = stateTargetInput

	case "x":
		m.arm.Handle().CancelCommand()
		m.appendLog("cancel requested")
	}
	return m, nil
}

func (m *consoleModel) updateTargetInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.state = stateMain
		return m, nil

	case "enter":
		traj, err := targetTrajectory(m.cfg.Joints, m.input.Value())
		m.state = stateMain
		if err != nil {
			m.err = err
			return m, nil
		}
		m.err = nil
		m.arm.Handle().SetCommand(traj)
		m.appendLog("sent move to " + m.input.Value())
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *consoleModel) refresh() {
	m.feedback = m.arm.Feedback()
	m.active = m.arm.Active()

	claimed := make(map[string]bool, len(m.cfg.Joints))
	for _, name := range m.arm.Interface().ClaimedNames() {
		claimed[name] = true
	}
	m.claimed = claimed

	for {
		select {
		case e := <-m.events:
			verb := "claimed"
			if e.Type == registry.EventReleased {
				verb = "released"
			}
			m.appendLog(fmt.Sprintf("%s %s", verb, e.Resource))
		default:
			return
		}
	}
}

func (m *consoleModel) appendLog(line string) {
	m.log = append(m.log, line)
	if len(m.log) > 6 {
		m.log = m.log[len(m.log)-6:]
	}
}

func (m *consoleModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Trajectory Console"))
	b.WriteString(" ")
	b.WriteString(m.cfg.Name)
	b.WriteString("\n\n")

	status := "idle"
	if m.active {
		status = activeStyle.Render("executing")
	}
	b.WriteString("Status: " + status + "\n\n")

	for i, name := range m.cfg.Joints {
		marker := freeStyle.Render("free   ")
		if m.claimed[name] {
			marker = claimedStyle.Render("claimed")
		}
		pos := ""
		if i < len(m.feedback.Desired.Positions) {
			pos = valueStyle.Render(fmt.Sprintf("%8.4f rad", m.feedback.Desired.Positions[i]))
		}
		b.WriteString(fmt.Sprintf("  %-14s %s  %s\n", name, marker, pos))
	}

	if m.feedback.Desired.TimeFromStart > 0 {
		b.WriteString(fmt.Sprintf("\nWaypoint t=%s\n", m.feedback.Desired.TimeFromStart))
	}

	if len(m.log) > 0 {
		b.WriteString("\n")
		for _, line := range m.log {
			b.WriteString(helpStyle.Render("• " + line))
			b.WriteString("\n")
		}
	}

	if m.err != nil {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render("Error: " + m.err.Error()))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	if m.state == stateTargetInput {
		b.WriteString(m.input.View())
		b.WriteString("\n")
		b.WriteString(helpStyle.Render("comma-separated positions • enter send • esc back"))
	} else {
		b.WriteString(helpStyle.Render("c claim • a claim atomic • r release • s sweep • g goto • x cancel • q quit"))
	}

	return b.String()
}

func placeholderTargets(n int) string {
	parts := make([]string, n)
	for i := range parts {
		parts[i] = "0.0"
	}
	return strings.Join(parts, ", ")
}

// targetTrajectory builds a two-second move from the current position to the
// comma-separated targets.
func targetTrajectory(joints []string, value string) (msg.JointTrajectory, error) {
	parts := strings.Split(value, ",")
	if len(parts) != len(joints) {
		return msg.JointTrajectory{}, fmt.Errorf("expected %d positions, got %d", len(joints), len(parts))
	}

	positions := make([]float64, len(parts))
	for i, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return msg.JointTrajectory{}, fmt.Errorf("position %d: %w", i, err)
		}
		positions[i] = v
	}

	return msg.JointTrajectory{
		JointNames: append([]string(nil), joints...),
		Points: []msg.JointPoint{
			{Positions: positions, TimeFromStart: 2 * time.Second},
		},
	}, nil
}

func runInteractive(cfg hwsim.Config) error {
	m, err := newConsoleModel(cfg)
	if err != nil {
		return err
	}
	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err = p.Run()
	return err
}
