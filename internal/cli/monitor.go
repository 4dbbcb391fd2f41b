package cli

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/agegold/driveralert/internal/events"
	"github.com/agegold/driveralert/internal/loop"
	"github.com/agegold/driveralert/internal/storage"
	"github.com/agegold/driveralert/pkg/models"
)

var (
	monitorSpeed float64
	monitorWatch bool
)

type monitorModel struct {
	scenario *storage.Scenario
	registry events.Registry
	runner   *loop.Runner
	summary  *loop.Summary
	frame    loop.Frame
	speed    float64

	width  int
	height int

	paused  bool
	done    bool
	reloads int
	err     error
}

// cycleTickMsg advances the loop by one cycle.
type cycleTickMsg time.Time

// scenarioReloadedMsg carries a freshly loaded scenario into the model.
type scenarioReloadedMsg struct {
	scenario *storage.Scenario
}

// monitorErrMsg surfaces watcher or reload failures in the footer.
type monitorErrMsg struct {
	err error
}

// Style definitions.
var (
	hudTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("230")).
			Background(lipgloss.Color("62")).
			Padding(0, 1)

	hudPanelStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(1, 2)

	hudHeaderStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("62")).
			MarginBottom(1)

	hudQuietStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	hudHelpStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	hudErrStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))

	sevCriticalStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)
	sevWarnStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("226"))
	sevNoticeStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("69"))
)

func newMonitorModel(scenario *storage.Scenario, registry events.Registry, speed float64) (monitorModel, error) {
	if speed <= 0 {
		speed = 1
	}
	runner, err := loop.NewRunner(scenario, registry)
	if err != nil {
		return monitorModel{}, err
	}
	return monitorModel{
		scenario: scenario,
		registry: registry,
		runner:   runner,
		summary:  loop.NewSummary(scenario.Name),
		speed:    speed,
	}, nil
}

func (m monitorModel) Init() tea.Cmd {
	return m.tick()
}

// tick schedules the next cycle. Exactly one tick is in flight while the
// model is neither paused nor done.
func (m monitorModel) tick() tea.Cmd {
	interval := time.Duration(float64(m.runner.Period()) / m.speed)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return cycleTickMsg(t)
	})
}

func (m monitorModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		case "p":
			if m.done {
				return m, nil
			}
			m.paused = !m.paused
			if m.paused {
				return m, nil
			}
			return m, m.tick()
		case "r":
			return m.restart()
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case cycleTickMsg:
		if m.paused || m.done {
			return m, nil
		}
		frame, ok := m.runner.Step()
		if !ok {
			m.done = true
			return m, nil
		}
		m.frame = frame
		m.summary.Observe(frame)
		return m, m.tick()

	case scenarioReloadedMsg:
		m.scenario = msg.scenario
		m.reloads++
		return m.restart()

	case monitorErrMsg:
		m.err = msg.err
		return m, nil
	}

	return m, nil
}

// restart rebuilds the runner from the current scenario and resumes from
// cycle one.
func (m monitorModel) restart() (tea.Model, tea.Cmd) {
	runner, err := loop.NewRunner(m.scenario, m.registry)
	if err != nil {
		m.err = err
		return m, nil
	}

	needTick := m.done || m.paused
	m.runner = runner
	m.summary = loop.NewSummary(m.scenario.Name)
	m.frame = loop.Frame{}
	m.done = false
	m.paused = false
	m.err = nil

	if needTick {
		return m, m.tick()
	}
	return m, nil
}

func (m monitorModel) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	title := hudTitleStyle.Render(fmt.Sprintf(" dra monitor · %s ", m.scenario.Name))
	help := hudHelpStyle.Render("p: pause | r: restart | q: quit")

	status := fmt.Sprintf("cycle %d/%d", m.frame.Cycle, m.runner.TotalCycles())
	if m.frame.Phase != "" {
		status += fmt.Sprintf(" · phase %s", m.frame.Phase)
	}
	if m.speed != 1 {
		status += fmt.Sprintf(" · %.1fx", m.speed)
	}
	if m.reloads > 0 {
		status += fmt.Sprintf(" · reloaded %d time(s)", m.reloads)
	}
	if m.paused {
		status += " · paused"
	}
	if m.done {
		status += " · done"
	}

	panelWidth := m.width - 8
	if panelWidth < 30 {
		panelWidth = 30
	}

	alertPanel := hudPanelStyle.Width(panelWidth).Render(m.renderAlertPanel())
	eventsPanel := hudPanelStyle.Width(panelWidth).Render(m.renderEventsPanel())
	runPanel := hudPanelStyle.Width(panelWidth).Render(m.renderRunPanel())

	body := lipgloss.JoinVertical(lipgloss.Left, alertPanel, eventsPanel, runPanel)

	footer := help
	if m.err != nil {
		footer = hudErrStyle.Render(fmt.Sprintf("error: %s", m.err)) + "\n" + help
	}

	return fmt.Sprintf("%s\n%s\n\n%s\n\n%s", title, status, body, footer)
}

func (m monitorModel) renderAlertPanel() string {
	var b strings.Builder
	b.WriteString(hudHeaderStyle.Render("Alert"))
	b.WriteString("\n")

	if len(m.frame.Alerts) == 0 {
		b.WriteString(hudQuietStyle.Render("  no alert this cycle"))
		return b.String()
	}

	top := slices.MaxFunc(m.frame.Alerts, models.Alert.Compare)
	chip := styleForSeverity(top.Severity).Render(fmt.Sprintf("[%s]", strings.ToUpper(top.Severity.String())))
	b.WriteString(fmt.Sprintf("  %s %s\n", chip, top.Text1))
	if top.Text2 != "" {
		b.WriteString(fmt.Sprintf("        %s\n", top.Text2))
	}
	b.WriteString(hudQuietStyle.Render(fmt.Sprintf("\n  %s", top.Tag)))
	if n := len(m.frame.Alerts) - 1; n > 0 {
		b.WriteString(hudQuietStyle.Render(fmt.Sprintf("  (+%d more)", n)))
	}

	return b.String()
}

func (m monitorModel) renderEventsPanel() string {
	var b strings.Builder
	b.WriteString(hudHeaderStyle.Render("Active events"))
	b.WriteString("\n")

	if len(m.frame.Active) == 0 {
		b.WriteString(hudQuietStyle.Render("  (none)"))
		return b.String()
	}

	for _, name := range m.frame.Active {
		line := fmt.Sprintf("  %-26s", name)
		if count, ok := m.frame.Counters[name]; ok && count > 0 {
			line += fmt.Sprintf("×%d", count)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}

	return b.String()
}

func (m monitorModel) renderRunPanel() string {
	var b strings.Builder
	b.WriteString(hudHeaderStyle.Render("Run"))
	b.WriteString("\n")

	b.WriteString(fmt.Sprintf("  alerts fired   %d\n", m.summary.AlertsFired))
	if m.summary.MostCritical != nil {
		mc := m.summary.MostCritical
		sev := styleForSeverity(mc.Severity).Render(fmt.Sprintf("[%s]", strings.ToUpper(mc.Severity.String())))
		b.WriteString(fmt.Sprintf("  most critical  %s %s at cycle %d\n", sev, mc.Tag, mc.Cycle))
	}

	return b.String()
}

func styleForSeverity(sev models.Severity) lipgloss.Style {
	switch {
	case sev >= models.SeverityHigh:
		return sevCriticalStyle
	case sev >= models.SeverityMid:
		return sevWarnStyle
	default:
		return sevNoticeStyle
	}
}

var monitorCmd = &cobra.Command{
	Use:   "monitor <scenario>",
	Short: "Watch a scenario run on a live alert HUD",
	Long: `Replay a drive scenario in real time on an interactive terminal HUD:
the current alert with its severity, the active events with their
persistence counters, and the running totals.

With --watch the scenario file is reloaded automatically when it changes
on disk. --speed scales the cycle clock.`,
	Args: cobra.ExactArgs(1),
	RunE: runMonitor,
}

func runMonitor(cmd *cobra.Command, args []string) error {
	if Registry == nil || Scenarios == nil {
		return fmt.Errorf("services not initialized")
	}

	scenario, err := Scenarios.Load(args[0])
	if err != nil {
		return err
	}

	m, err := newMonitorModel(scenario, Registry, monitorSpeed)
	if err != nil {
		return err
	}
	p := tea.NewProgram(m, tea.WithAltScreen())

	if monitorWatch {
		w, err := storage.NewWatcher(Scenarios.Path(args[0]))
		if err != nil {
			return fmt.Errorf("watching scenario: %w", err)
		}
		w.OnChange = func(string) error {
			s, err := Scenarios.Load(args[0])
			if err != nil {
				p.Send(monitorErrMsg{err})
				return nil
			}
			p.Send(scenarioReloadedMsg{s})
			return nil
		}
		w.OnError = func(err error) {
			p.Send(monitorErrMsg{err})
		}

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()
		go func() { _ = w.Run(ctx) }()
	}

	_, err = p.Run()
	return err
}

func init() {
	monitorCmd.Flags().Float64Var(&monitorSpeed, "speed", 1.0, "Cycle clock multiplier")
	monitorCmd.Flags().BoolVar(&monitorWatch, "watch", false, "Reload the scenario when the file changes")
	rootCmd.AddCommand(monitorCmd)
}
