package app

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"gateprep/internal/ui/components"
	"gateprep/internal/ui/theme"
	checklistview "gateprep/internal/ui/views/checklist"
	plannerview "gateprep/internal/ui/views/planner"
	timelineview "gateprep/internal/ui/views/timeline"
	timerview "gateprep/internal/ui/views/timer"
)

// ─── tab index ───────────────────────────────────────────────────────────────

type tabID int

const (
	tabTimer tabID = iota
	tabChecklist
	tabPlanner
	tabTimeline
	tabCount
)

var tabLabels = [tabCount]string{
	"Timer", "Checklist", "Planner", "Timeline",
}

// ─── async messages ───────────────────────────────────────────────────────────

type tickMsg time.Time

// ─── key bindings ─────────────────────────────────────────────────────────────

type keyMap struct {
	Tab     key.Binding
	Help    key.Binding
	Palette key.Binding
	Quit    key.Binding
	Toggle  key.Binding
	Reset   key.Binding
	Target  key.Binding
	Wipe    key.Binding
	Subject key.Binding
	Edit    key.Binding
}

func defaultKeys() keyMap {
	return keyMap{
		Tab:     key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next tab")),
		Help:    key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Palette: key.NewBinding(key.WithKeys(":"), key.WithHelp(":", "palette")),
		Quit:    key.NewBinding(key.WithKeys("ctrl+c", "q"), key.WithHelp("q", "quit")),
		Toggle:  key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "start/pause · toggle topic")),
		Reset:   key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "discard session")),
		Target:  key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "set target hours")),
		Wipe:    key.NewBinding(key.WithKeys("X"), key.WithHelp("X", "reset all data")),
		Subject: key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "next subject")),
		Edit:    key.NewBinding(key.WithKeys("g", "y"), key.WithHelp("g/y", "edit goal/year")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Tab, k.Help, k.Palette, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Toggle, k.Reset, k.Target, k.Wipe},
		{k.Subject, k.Edit},
		{k.Tab, k.Help, k.Palette, k.Quit},
	}
}

// ─── model ───────────────────────────────────────────────────────────────────

// Model is the root Bubble Tea model. It owns tab routing, the timer tick,
// the help overlay and the command palette; rendering is left to sub-views.
type Model struct {
	tick time.Duration

	timerView     timerview.Model
	checklistView checklistview.Model
	plannerView   plannerview.Model
	timelineView  timelineview.Model

	activeTab tabID
	keys      keyMap
	help      help.Model
	showHelp  bool
	palette   components.Palette
	status    string
	width     int
	height    int
}

// ─── constructor ─────────────────────────────────────────────────────────────

func NewModel(
	tick time.Duration,
	timer timerview.Port,
	checklist checklistview.Port,
	planner plannerview.Port,
	timeline timelineview.Port,
) Model {
	if tick <= 0 {
		tick = time.Second
	}
	return Model{
		tick:          tick,
		timerView:     timerview.New(timer),
		checklistView: checklistview.New(checklist),
		plannerView:   plannerview.New(planner),
		timelineView:  timelineview.New(timeline),
		activeTab:     tabTimer,
		keys:          defaultKeys(),
		help:          help.New(),
		palette:       components.NewPalette(),
		status:        "ready",
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(
		m.timerView.Init(),
		m.checklistView.Init(),
		m.tickCmd(),
	)
}

// ─── update ───────────────────────────────────────────────────────────────────

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	// Results of async commands go to the view that issued them,
	// whichever tab is showing or whether the palette is open.
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.palette.SetWidth(min(m.width-4, 80))
		m.help.Width = m.width
		m.propagateSize()
		return m, nil

	case tickMsg:
		if !m.timerView.Running() {
			return m, m.tickCmd()
		}
		return m, tea.Batch(m.tickCmd(), m.timerView.TickCmd())

	case timerview.SnapshotMsg:
		m.reportStatus(msg.Status, msg.Err)
		var cmd tea.Cmd
		m.timerView, cmd = m.timerView.Update(msg)
		return m, cmd

	case checklistview.LoadedMsg:
		var cmd tea.Cmd
		m.checklistView, cmd = m.checklistView.Update(msg)
		return m, cmd

	case checklistview.ToggledMsg:
		if msg.Err == nil {
			r := msg.Result
			mark := "○"
			if r.Done {
				mark = "✓"
			}
			m.status = fmt.Sprintf("%s %s · %s %d%% · overall %d%%",
				mark, r.Title, r.Subject.Name, r.Subject.Progress.Percent, r.Overall.Percent)
		} else {
			m.reportStatus("", msg.Err)
		}
		var cmd tea.Cmd
		m.checklistView, cmd = m.checklistView.Update(msg)
		return m, cmd

	case checklistview.ModeSwitchedMsg:
		if msg.Err == nil {
			m.status = "switched to " + msg.Checklist.Label
			cmds = append(cmds, m.plannerView.Refresh())
		} else {
			m.reportStatus("", msg.Err)
		}
		var cmd tea.Cmd
		m.checklistView, cmd = m.checklistView.Update(msg)
		return m, tea.Batch(append(cmds, cmd)...)

	case plannerview.PlannedMsg:
		var cmd tea.Cmd
		m.plannerView, cmd = m.plannerView.Update(msg)
		return m, cmd

	case timelineview.PlannedMsg:
		var cmd tea.Cmd
		m.timelineView, cmd = m.timelineView.Update(msg)
		return m, cmd

	case components.PaletteSubmitMsg:
		return m.executePalette(msg.Input)

	case components.PaletteCancelMsg:
		m.status = "ready"

	case tea.KeyMsg:
		if m.palette.Visible() {
			var cmd tea.Cmd
			m.palette, cmd = m.palette.Update(msg)
			return m, cmd
		}
		if m.showHelp {
			if msg.String() == "?" || msg.String() == "esc" {
				m.showHelp = false
			}
			return m, nil
		}

		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		if m.subViewCapturing() {
			break
		}

		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "tab":
			m.activeTab = (m.activeTab + 1) % tabCount
			return m, nil
		case "shift+tab":
			m.activeTab = (m.activeTab + tabCount - 1) % tabCount
			return m, nil
		case "?":
			m.showHelp = !m.showHelp
			return m, nil
		case ":":
			cmd := m.palette.Open()
			return m, cmd
		}
	}

	if m.palette.Visible() {
		var cmd tea.Cmd
		m.palette, cmd = m.palette.Update(msg)
		return m, cmd
	}

	var tabCmd tea.Cmd
	switch m.activeTab {
	case tabTimer:
		m.timerView, tabCmd = m.timerView.Update(msg)
	case tabChecklist:
		m.checklistView, tabCmd = m.checklistView.Update(msg)
	case tabPlanner:
		m.plannerView, tabCmd = m.plannerView.Update(msg)
	case tabTimeline:
		m.timelineView, tabCmd = m.timelineView.Update(msg)
	}
	cmds = append(cmds, tabCmd)

	return m, tea.Batch(cmds...)
}

// ─── view ────────────────────────────────────────────────────────────────────

func (m Model) View() string {
	tabBar := m.renderTabBar()
	statusBar := m.renderStatusBar()
	contentH := max(m.height-lipgloss.Height(tabBar)-lipgloss.Height(statusBar), 1)

	var content string
	switch {
	case m.showHelp:
		content = lipgloss.NewStyle().Width(m.width).Height(contentH).
			Render(m.help.View(m.keys))
	case m.palette.Visible():
		content = lipgloss.Place(m.width, contentH,
			lipgloss.Center, lipgloss.Center, m.palette.View())
	default:
		content = m.activeView()
	}

	return lipgloss.JoinVertical(lipgloss.Left, tabBar, content, statusBar)
}

func (m Model) activeView() string {
	switch m.activeTab {
	case tabTimer:
		return m.timerView.View()
	case tabChecklist:
		return m.checklistView.View()
	case tabPlanner:
		return m.plannerView.View()
	case tabTimeline:
		return m.timelineView.View()
	}
	return ""
}

func (m Model) renderTabBar() string {
	parts := make([]string, tabCount)
	for i := tabID(0); i < tabCount; i++ {
		label := tabLabels[i]
		if i == m.activeTab {
			parts[i] = theme.Hot.Render(" " + label + " ")
		} else {
			parts[i] = theme.Muted.Render(" " + label + " ")
		}
	}
	sep := theme.Muted.Render(" │ ")
	bar := "gateprep  " + strings.Join(parts, sep)
	if label := m.checklistView.Label(); label != "" {
		bar += "   " + theme.Muted.Render(label)
	}
	return theme.Bar.Width(m.width).Render(bar) + "\n"
}

func (m Model) renderStatusBar() string {
	left := m.status
	if m.timerView.Running() {
		left = theme.Hot.Render("● "+m.timerView.Session()) + "  " + left
	}
	right := theme.Muted.Render("?:help  tab:switch  :::palette  q:quit")
	gap := max(m.width-lipgloss.Width(left)-lipgloss.Width(right), 1)
	bar := left + strings.Repeat(" ", gap) + right
	return "\n" + theme.Bar.Width(m.width).Render(bar)
}

// ─── palette execution ────────────────────────────────────────────────────────

func (m Model) executePalette(input string) (tea.Model, tea.Cmd) {
	parts := strings.Fields(input)
	if len(parts) == 0 {
		return m, nil
	}

	arg := func(usage string) (string, bool) {
		if len(parts) < 2 {
			m.status = "usage: " + usage
			return "", false
		}
		return parts[1], true
	}
	number := func(usage string) (int, bool) {
		raw, ok := arg(usage)
		if !ok {
			return 0, false
		}
		n, err := strconv.Atoi(raw)
		if err != nil {
			m.status = "usage: " + usage
			return 0, false
		}
		return n, true
	}

	switch parts[0] {
	case "timer:toggle":
		m.activeTab = tabTimer
		return m, m.timerView.ToggleCmd()

	case "timer:reset":
		m.activeTab = tabTimer
		return m, m.timerView.ResetCmd()

	case "target:set":
		hours, ok := number("target:set <hours>")
		if !ok {
			return m, nil
		}
		m.activeTab = tabTimer
		return m, m.timerView.SetTargetCmd(hours)

	case "mode:set":
		mode, ok := arg("mode:set <da|cse>")
		if !ok {
			return m, nil
		}
		return m, m.checklistView.SwitchModeCmd(mode)

	case "checklist:toggle":
		id, ok := arg("checklist:toggle <topic-id>")
		if !ok {
			return m, nil
		}
		m.activeTab = tabChecklist
		return m, m.checklistView.ToggleCmd(id)

	case "plan:goal":
		goal, ok := number("plan:goal <marks>")
		if !ok {
			return m, nil
		}
		m.activeTab = tabPlanner
		return m, m.plannerView.PlanCmd(goal)

	case "timeline:year":
		year, ok := number("timeline:year <yyyy>")
		if !ok {
			return m, nil
		}
		m.activeTab = tabTimeline
		return m, m.timelineView.PlanCmd(year)

	default:
		m.status = "unknown command: " + parts[0]
	}
	return m, nil
}

// ─── helpers ─────────────────────────────────────────────────────────────────

// subViewCapturing reports whether the active tab is taking free text,
// in which case global key bindings must yield.
func (m Model) subViewCapturing() bool {
	switch m.activeTab {
	case tabTimer:
		return m.timerView.Capturing()
	case tabChecklist:
		return m.checklistView.Filtering()
	case tabPlanner:
		return m.plannerView.Editing()
	case tabTimeline:
		return m.timelineView.Editing()
	}
	return false
}

func (m *Model) reportStatus(status string, err error) {
	switch {
	case err != nil:
		m.status = "error: " + err.Error()
	case status != "":
		m.status = status
	}
}

func (m *Model) propagateSize() {
	sz := tea.WindowSizeMsg{Width: m.width, Height: m.height - 3}
	m.timerView, _ = m.timerView.Update(sz)
	m.checklistView, _ = m.checklistView.Update(sz)
	m.plannerView, _ = m.plannerView.Update(sz)
	m.timelineView, _ = m.timelineView.Update(sz)
}

func (m Model) tickCmd() tea.Cmd {
	return tea.Tick(m.tick, func(t time.Time) tea.Msg { return tickMsg(t) })
}
