package planner

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"

	plannerdto "gateprep/internal/modules/planner/dto"
	"gateprep/internal/report"
	"gateprep/internal/ui/theme"
)

// ─── port ────────────────────────────────────────────────────────────────────

type Port interface {
	Plan(ctx context.Context, goal int) (plannerdto.PlanOutput, error)
}

// ─── messages ────────────────────────────────────────────────────────────────

type PlannedMsg struct {
	Plan plannerdto.PlanOutput
	Err  error
}

// ─── model ───────────────────────────────────────────────────────────────────

type Model struct {
	port     Port
	input    textinput.Model
	viewport viewport.Model
	renderer *glamour.TermRenderer
	plan     plannerdto.PlanOutput
	err      error
	width    int
	height   int
}

func New(port Port) Model {
	ti := textinput.New()
	ti.Prompt = "Goal marks: "
	ti.Placeholder = "30–100"
	ti.CharLimit = 3
	ti.Width = 6

	r, _ := glamour.NewTermRenderer(
		glamour.WithStylePath("dark"),
		glamour.WithWordWrap(0),
	)

	return Model{port: port, input: ti, viewport: viewport.New(0, 0), renderer: r}
}

func (m Model) Init() tea.Cmd { return nil }

// Editing reports whether the goal field has focus.
func (m Model) Editing() bool { return m.input.Focused() }

// PlanCmd computes a plan for the given goal.
func (m Model) PlanCmd(goal int) tea.Cmd {
	return func() tea.Msg {
		plan, err := m.port.Plan(context.Background(), goal)
		return PlannedMsg{Plan: plan, Err: err}
	}
}

// Refresh recomputes the current plan, e.g. after a mode switch.
func (m Model) Refresh() tea.Cmd {
	if m.plan.Goal == 0 {
		return nil
	}
	return m.PlanCmd(m.plan.Goal)
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resize()

	case PlannedMsg:
		m.err = msg.Err
		if msg.Err == nil {
			m.plan = msg.Plan
		}
		m.viewport.SetContent(m.renderContent())
		m.viewport.GotoTop()

	case tea.KeyMsg:
		if m.input.Focused() {
			switch msg.String() {
			case "esc":
				m.input.Blur()
				return m, nil
			case "enter":
				m.input.Blur()
				goal, err := strconv.Atoi(strings.TrimSpace(m.input.Value()))
				if err != nil {
					m.err = fmt.Errorf("goal must be a whole number of marks")
					m.viewport.SetContent(m.renderContent())
					return m, nil
				}
				return m, m.PlanCmd(goal)
			}
			var cmd tea.Cmd
			m.input, cmd = m.input.Update(msg)
			return m, cmd
		}
		if msg.String() == "g" || msg.String() == "enter" {
			cmd := m.input.Focus()
			return m, cmd
		}
	}

	var vCmd tea.Cmd
	m.viewport, vCmd = m.viewport.Update(msg)
	cmds = append(cmds, vCmd)

	return m, tea.Batch(cmds...)
}

func (m Model) View() string {
	header := theme.Title.Render("Goal planner") + "  " + m.input.View()
	if !m.input.Focused() {
		header += theme.Muted.Render("  g: edit goal  ↑/↓: scroll")
	}
	return lipgloss.JoinVertical(lipgloss.Left, header, m.viewport.View())
}

// ─── private ─────────────────────────────────────────────────────────────────

func (m *Model) resize() {
	m.viewport.Width = m.width
	m.viewport.Height = max(m.height-2, 1)
	if r, err := glamour.NewTermRenderer(
		glamour.WithStylePath("dark"),
		glamour.WithWordWrap(m.width),
	); err == nil {
		m.renderer = r
	}
	m.viewport.SetContent(m.renderContent())
}

func (m Model) renderContent() string {
	if m.err != nil {
		return theme.Error.Render("Error: " + m.err.Error())
	}
	if m.plan.Goal == 0 {
		return theme.Muted.Render("Enter a target score between 30 and 100 to split it across subjects.")
	}
	md := report.PlanMarkdown(m.plan)
	if m.renderer == nil {
		return md
	}
	out, err := m.renderer.Render(md)
	if err != nil {
		return md
	}
	return out
}
