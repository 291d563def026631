// Package ui renders the interactive dashboard. It is a pure consumer of
// the engine: keys call into it, the one-second tick refreshes the
// display and drives the lunch countdown, and advisory messages arrive
// over a channel and show as a transient footer flash.
package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"hourbank/internal/dateutil"
	"hourbank/internal/tracker"
)

const flashDuration = 3 * time.Second

type tickMsg time.Time

func tickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// Model is the dashboard's bubbletea model.
type Model struct {
	engine *tracker.Engine
	msgs   <-chan string

	width  int
	height int

	input    textinput.Model
	entering bool

	flash      string
	flashUntil time.Time
}

// New builds the dashboard over an engine; msgs receives the engine's
// advisory messages.
func New(engine *tracker.Engine, msgs <-chan string) Model {
	ti := textinput.New()
	ti.Placeholder = "HH:MM"
	ti.CharLimit = 5
	ti.Width = 10
	return Model{engine: engine, msgs: msgs, input: ti}
}

// Run starts the dashboard program and blocks until it quits.
func Run(engine *tracker.Engine, msgs <-chan string) error {
	p := tea.NewProgram(New(engine, msgs), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

func (m Model) Init() tea.Cmd {
	return tickCmd()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case tickMsg:
		_ = m.engine.Tick()
		m.drainMessages()
		if m.flash != "" && time.Now().After(m.flashUntil) {
			m.flash = ""
		}
		return m, tickCmd()

	case tea.KeyMsg:
		if m.entering {
			return m.updateEntering(msg)
		}
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		case "s":
			_ = m.engine.Start()
		case "p":
			_ = m.engine.Pause()
		case "x":
			_ = m.engine.Stop()
		case "l":
			_ = m.engine.StartLunch()
		case "e":
			m.entering = true
			m.input.SetValue("")
			m.input.Focus()
			return m, textinput.Blink
		}
	}
	return m, nil
}

// updateEntering handles the inline "started earlier" prompt.
func (m Model) updateEntering(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.entering = false
		m.input.Blur()
		return m, nil
	case "enter":
		m.entering = false
		m.input.Blur()
		if at, err := todayAt(m.input.Value()); err != nil {
			m.setFlash(err.Error())
		} else if err := m.engine.StartFrom(at); err != nil {
			m.setFlash(err.Error())
		}
		return m, nil
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// todayAt turns an HH:MM string into today's corresponding instant.
func todayAt(value string) (time.Time, error) {
	parsed, err := time.Parse("15:04", strings.TrimSpace(value))
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid time %q, use HH:MM", value)
	}
	now := time.Now()
	return time.Date(now.Year(), now.Month(), now.Day(), parsed.Hour(), parsed.Minute(), 0, 0, now.Location()), nil
}

func (m *Model) drainMessages() {
	for {
		select {
		case msg := <-m.msgs:
			m.setFlash(msg)
		default:
			return
		}
	}
}

func (m *Model) setFlash(msg string) {
	m.flash = msg
	m.flashUntil = time.Now().Add(flashDuration)
}

func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	status, err := m.engine.Status()
	if err != nil {
		return fmt.Sprintf("Error reading tracker state: %v", err)
	}

	header := headerStyle.Width(m.width).Render(
		fmt.Sprintf("Hours Tracker — %s", time.Now().Format("Mon Jan 2, 2006 15:04:05")),
	)

	colWidth := m.width/2 - 3
	if colWidth < 24 {
		colWidth = 24
	}

	leftColumn := lipgloss.JoinVertical(lipgloss.Left,
		m.todayBox(status, colWidth),
		m.weekBox(status, colWidth),
	)
	rightColumn := lipgloss.JoinVertical(lipgloss.Left,
		m.timerBox(status, colWidth),
		m.bankedBox(status, colWidth),
	)
	content := lipgloss.JoinHorizontal(lipgloss.Top, leftColumn, rightColumn)

	sections := []string{header, content}
	if m.entering {
		preview := ""
		if at, err := todayAt(m.input.Value()); err == nil {
			if since := time.Since(at); since > 0 {
				preview = footerStyle.Render(fmt.Sprintf("\n%.1f hours so far", since.Hours()))
			}
		}
		sections = append(sections, boxStyle.Width(colWidth).Render(
			"I started at:\n\n"+m.input.View()+preview,
		))
	}
	sections = append(sections, m.footer())

	full := lipgloss.JoinVertical(lipgloss.Left, sections...)
	if h := lipgloss.Height(full); h < m.height {
		full += strings.Repeat("\n", m.height-h-1)
	}
	return full
}

func (m Model) todayBox(status tracker.Status, width int) string {
	pct := 0
	if status.TargetHours > 0 {
		pct = int(status.TodayTotal / status.TargetHours * 100)
	}
	barWidth := width - 10
	if barWidth < 20 {
		barWidth = 20
	}
	return boxStyle.Width(width).Render(fmt.Sprintf(
		"TODAY\n\n%s\n\n%s %d%%\n%s",
		progressStyle.Render(fmt.Sprintf("%.1f / %.1f hours", status.TodayTotal, status.TargetHours)),
		ProgressBar(pct, barWidth),
		pct,
		footerStyle.Render(dateutil.FormatDate(status.TodayKey)),
	))
}

func (m Model) weekBox(status tracker.Status, width int) string {
	label := "hours ahead"
	style := workingStyle
	if status.WeekBalance < 0 {
		label = "hours behind"
		style = idleStyle
	}
	return boxStyle.Width(width).Render(fmt.Sprintf(
		"THIS WEEK\n%s\n\n%s %s\nWorked %.1f of %.1f target",
		footerStyle.Render(dateutil.FormatWeekRange(status.WeekStart)),
		style.Render(FormatSigned(status.WeekBalance)),
		label,
		status.WeekWorked,
		status.WeekTarget,
	))
}

func (m Model) timerBox(status tracker.Status, width int) string {
	var state string
	switch {
	case status.OnLunch:
		state = pausedStyle.Render(fmt.Sprintf("LUNCH (%dm left)", status.LunchRemaining))
	case status.Phase == tracker.Running:
		state = workingStyle.Render("RUNNING")
	case status.Phase == tracker.Paused:
		state = pausedStyle.Render("PAUSED")
	default:
		state = idleStyle.Render("IDLE")
	}
	return boxStyle.Width(width).Render(fmt.Sprintf(
		"TIMER\n\n%s\n\nSession: %s",
		state,
		FormatElapsed(status.Elapsed),
	))
}

func (m Model) bankedBox(status tracker.Status, width int) string {
	style := workingStyle
	if status.BankedBalance < 0 {
		style = idleStyle
	}
	return boxStyle.Width(width).Render(fmt.Sprintf(
		"BANKED\n\n%s hours banked",
		style.Render(fmt.Sprintf("%.1f", status.BankedBalance)),
	))
}

func (m Model) footer() string {
	help := footerStyle.Width(m.width).Render(
		"s start/resume • p pause • x stop • l lunch • e started earlier • q quit",
	)
	if m.entering {
		help = footerStyle.Width(m.width).Render("enter confirm • esc cancel")
	}
	if m.flash != "" {
		return lipgloss.JoinVertical(lipgloss.Left, flashStyle.Render(m.flash), help)
	}
	return help
}
