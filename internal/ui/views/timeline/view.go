package timeline

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

	timelinedto "gateprep/internal/modules/timeline/dto"
	"gateprep/internal/report"
	"gateprep/internal/ui/theme"
)

// ─── port ────────────────────────────────────────────────────────────────────

type Port interface {
	Plan(ctx context.Context, year int) (timelinedto.TimelineOutput, error)
}

// ─── messages ────────────────────────────────────────────────────────────────

type PlannedMsg struct {
	Timeline timelinedto.TimelineOutput
	Err      error
}

// ─── model ───────────────────────────────────────────────────────────────────

type Model struct {
	port     Port
	year     textinput.Model
	viewport viewport.Model
	renderer *glamour.TermRenderer
	timeline timelinedto.TimelineOutput
	err      error
	width    int
	height   int
}

func New(port Port) Model {
	ti := textinput.New()
	ti.Prompt = "Exam year: "
	ti.Placeholder = "2026–2035"
	ti.CharLimit = 4
	ti.Width = 6

	return Model{port: port, year: ti, viewport: viewport.New(0, 0)}
}

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Editing() bool { return m.year.Focused() }

// PlanCmd builds the phase plan for an exam held in February of year.
func (m Model) PlanCmd(year int) tea.Cmd {
	return func() tea.Msg {
		out, err := m.port.Plan(context.Background(), year)
		return PlannedMsg{Timeline: out, Err: err}
	}
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.viewport.Width = m.width
		m.viewport.Height = max(m.height-2, 1)
		m.renderer, _ = glamour.NewTermRenderer(
			glamour.WithStylePath("dark"),
			glamour.WithWordWrap(m.width),
		)
		m.viewport.SetContent(m.render())
		return m, nil

	case PlannedMsg:
		m.err = msg.Err
		if msg.Err == nil {
			m.timeline = msg.Timeline
		}
		m.viewport.SetContent(m.render())
		m.viewport.GotoTop()
		return m, nil

	case tea.KeyMsg:
		if m.year.Focused() {
			switch msg.String() {
			case "esc":
				m.year.Blur()
				return m, nil
			case "enter":
				m.year.Blur()
				year, err := strconv.Atoi(strings.TrimSpace(m.year.Value()))
				if err != nil {
					m.err = fmt.Errorf("year must be a number like 2027")
					m.viewport.SetContent(m.render())
					return m, nil
				}
				return m, m.PlanCmd(year)
			}
			var cmd tea.Cmd
			m.year, cmd = m.year.Update(msg)
			return m, cmd
		}
		if msg.String() == "y" || msg.String() == "enter" {
			cmd := m.year.Focus()
			return m, cmd
		}
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	header := theme.Title.Render("Timeline") + "  " + m.year.View()
	if t := m.timeline; t.Year != 0 && !m.year.Focused() {
		header += theme.Muted.Render(fmt.Sprintf("  %.1f months to %s", t.MonthsLeft, t.ExamDate.Format("2 Jan 2006")))
	} else if !m.year.Focused() {
		header += theme.Muted.Render("  y: choose exam year")
	}
	return lipgloss.JoinVertical(lipgloss.Left, header, m.viewport.View())
}

func (m Model) render() string {
	switch {
	case m.err != nil:
		return theme.Error.Render("Error: " + m.err.Error())
	case m.timeline.Year == 0:
		return theme.Muted.Render("Pick the GATE year you are aiming for to get a phase-by-phase plan.")
	}
	md := report.TimelineMarkdown(m.timeline)
	if m.renderer == nil {
		return md
	}
	if out, err := m.renderer.Render(md); err == nil {
		return out
	}
	return md
}
