package timer

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	studytimedto "gateprep/internal/modules/studytime/dto"
	"gateprep/internal/report"
	"gateprep/internal/ui/theme"
)

// ─── port ────────────────────────────────────────────────────────────────────

type Port interface {
	Snapshot(ctx context.Context) (studytimedto.SnapshotOutput, error)
	Toggle(ctx context.Context) (studytimedto.SnapshotOutput, *studytimedto.PauseOutput, error)
	Tick(ctx context.Context) (studytimedto.SnapshotOutput, error)
	Reset(ctx context.Context) (studytimedto.SnapshotOutput, error)
	SetTarget(ctx context.Context, hours int) (studytimedto.SnapshotOutput, error)
	ResetAll(ctx context.Context) (studytimedto.SnapshotOutput, error)
}

// ─── messages ────────────────────────────────────────────────────────────────

type SnapshotMsg struct {
	Snapshot studytimedto.SnapshotOutput
	Paused   *studytimedto.PauseOutput
	Status   string
	Err      error
}

// ─── model ───────────────────────────────────────────────────────────────────

type Model struct {
	port      Port
	snap      studytimedto.SnapshotOutput
	target    textinput.Model
	editing   bool
	confirm   *huh.Form
	confirmed *bool
	err       error
	width     int
	height    int
}

var labelStyle = theme.Muted.Width(14)

func New(port Port) Model {
	ti := textinput.New()
	ti.Placeholder = "100–3000"
	ti.CharLimit = 4
	ti.Width = 8
	return Model{port: port, target: ti}
}

func (m Model) Init() tea.Cmd {
	return func() tea.Msg {
		snap, err := m.port.Snapshot(context.Background())
		return SnapshotMsg{Snapshot: snap, Err: err}
	}
}

// TickCmd advances a running timer by one second.
func (m Model) TickCmd() tea.Cmd {
	return func() tea.Msg {
		snap, err := m.port.Tick(context.Background())
		return SnapshotMsg{Snapshot: snap, Err: err}
	}
}

// Capturing reports whether the view is consuming raw key input.
func (m Model) Capturing() bool {
	return m.editing || m.confirm != nil
}

func (m Model) Running() bool {
	return m.snap.TimerState == "running"
}

// Session is the current session time as HH:MM:SS.
func (m Model) Session() string {
	return m.snap.Session
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case SnapshotMsg:
		m.err = msg.Err
		if msg.Err == nil {
			m.snap = msg.Snapshot
		}
		return m, nil
	}

	if m.confirm != nil {
		return m.updateConfirm(msg)
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.editing {
			return m.updateTarget(msg)
		}
		switch msg.String() {
		case " ", "enter":
			return m, m.ToggleCmd()
		case "r":
			return m, m.ResetCmd()
		case "t":
			m.editing = true
			m.target.SetValue(strconv.Itoa(m.snap.Stats.TargetHours))
			cmd := m.target.Focus()
			return m, cmd
		case "X":
			cmd := m.openConfirm()
			return m, cmd
		}
	}
	return m, nil
}

func (m Model) View() string {
	if m.confirm != nil {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, m.confirm.View())
	}

	state := theme.Muted.Render(m.snap.TimerState)
	if m.Running() {
		state = theme.Done.Bold(true).Render("● running")
	}
	clock := theme.Clock.Render(m.snap.Session)

	s := m.snap.Stats
	rows := []string{
		row("Today", fmt.Sprintf("%.1f h", s.TodayHours)),
		row("All time", fmt.Sprintf("%.1f h", s.AllTimeHours)),
		row("Average", fmt.Sprintf("%.1f h/day", s.AveragePerDay)),
		row("Target", fmt.Sprintf("%d h", s.TargetHours)),
		row("Remaining", fmt.Sprintf("%.1f h", s.RemainingHours)),
		row("Days left", report.DaysLeft(s)),
		row("Finish date", report.FinishDate(s)),
	}
	if m.editing {
		rows = append(rows, "", theme.Title.Render("New target: ")+m.target.View())
	}
	if m.err != nil {
		rows = append(rows, "", theme.Error.Render("error: "+m.err.Error()))
	}

	hints := theme.Muted.Render("space: start/pause  r: discard session  t: set target  X: reset all")
	left := lipgloss.JoinVertical(lipgloss.Center, clock, state)
	body := lipgloss.JoinHorizontal(lipgloss.Top, left, "    ", strings.Join(rows, "\n"))
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center,
		lipgloss.JoinVertical(lipgloss.Left, body, "", hints))
}

// ─── private ─────────────────────────────────────────────────────────────────

func row(label, value string) string {
	return labelStyle.Render(label) + value
}

func (m Model) updateTarget(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.editing = false
		m.target.Blur()
		return m, nil
	case "enter":
		m.editing = false
		m.target.Blur()
		hours, err := strconv.Atoi(strings.TrimSpace(m.target.Value()))
		if err != nil {
			m.err = fmt.Errorf("target must be a whole number of hours")
			return m, nil
		}
		return m, m.SetTargetCmd(hours)
	}
	var cmd tea.Cmd
	m.target, cmd = m.target.Update(msg)
	return m, cmd
}

func (m *Model) openConfirm() tea.Cmd {
	m.confirmed = new(bool)
	m.confirm = huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title("Reset all tracked study data?").
				Description("This cannot be undone. Your target is kept.").
				Affirmative("Yes, reset").
				Negative("Cancel").
				Value(m.confirmed),
		),
	).WithWidth(min(m.width, 60)).WithShowHelp(false)
	return m.confirm.Init()
}

func (m Model) updateConfirm(msg tea.Msg) (Model, tea.Cmd) {
	mdl, cmd := m.confirm.Update(msg)
	if f, ok := mdl.(*huh.Form); ok {
		m.confirm = f
	}
	switch m.confirm.State {
	case huh.StateCompleted:
		m.confirm = nil
		if *m.confirmed {
			return m, m.resetAllCmd()
		}
		return m, nil
	case huh.StateAborted:
		m.confirm = nil
		return m, nil
	}
	return m, cmd
}

// ToggleCmd starts or pauses the timer.
func (m Model) ToggleCmd() tea.Cmd {
	return func() tea.Msg {
		snap, paused, err := m.port.Toggle(context.Background())
		out := SnapshotMsg{Snapshot: snap, Paused: paused, Err: err}
		if err == nil && paused != nil {
			out.Status = fmt.Sprintf("credited %s to %s", studyTime(paused.Credited), paused.DayKey)
		}
		return out
	}
}

// ResetCmd discards the running session without crediting it.
func (m Model) ResetCmd() tea.Cmd {
	return func() tea.Msg {
		snap, err := m.port.Reset(context.Background())
		return SnapshotMsg{Snapshot: snap, Err: err, Status: "session discarded"}
	}
}

func (m Model) SetTargetCmd(hours int) tea.Cmd {
	return func() tea.Msg {
		snap, err := m.port.SetTarget(context.Background(), hours)
		return SnapshotMsg{Snapshot: snap, Err: err, Status: fmt.Sprintf("target set to %d h", hours)}
	}
}

func (m Model) resetAllCmd() tea.Cmd {
	return func() tea.Msg {
		snap, err := m.port.ResetAll(context.Background())
		return SnapshotMsg{Snapshot: snap, Err: err, Status: "all study data reset"}
	}
}

func studyTime(seconds int64) string {
	return fmt.Sprintf("%dm%02ds", seconds/60, seconds%60)
}
