package checklist

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	checklistdto "gateprep/internal/modules/checklist/dto"
	"gateprep/internal/ui/theme"
)

// ─── port ────────────────────────────────────────────────────────────────────

type Port interface {
	List(ctx context.Context, subjectID string) (checklistdto.ChecklistOutput, error)
	Mark(ctx context.Context, topicID string, done bool) (checklistdto.ToggleOutput, error)
	SwitchMode(ctx context.Context, mode string) (checklistdto.ChecklistOutput, error)
}

// ─── messages ────────────────────────────────────────────────────────────────

type LoadedMsg struct {
	Checklist checklistdto.ChecklistOutput
	Err       error
}

type ToggledMsg struct {
	Result checklistdto.ToggleOutput
	Err    error
}

// ModeSwitchedMsg is emitted after the active mode changed so other views
// can refresh.
type ModeSwitchedMsg struct {
	Checklist checklistdto.ChecklistOutput
	Err       error
}

// ─── list item ───────────────────────────────────────────────────────────────

type topicItem struct {
	topic   checklistdto.TopicOutput
	subject string
}

func (i topicItem) Title() string {
	box := "[ ]"
	if i.topic.Done {
		box = "[x]"
	}
	title := fmt.Sprintf("%s %d. %s", box, i.topic.Index+1, i.topic.Title)
	if i.topic.Important {
		title += " ★"
	}
	return title
}

func (i topicItem) Description() string { return i.subject + "  " + i.topic.ID }
func (i topicItem) FilterValue() string { return i.topic.Title }

// ─── model ───────────────────────────────────────────────────────────────────

type Model struct {
	port     Port
	list     list.Model
	summary  viewport.Model
	bar      progress.Model
	spinner  spinner.Model
	data     checklistdto.ChecklistOutput
	subjects []checklistdto.SubjectOutput
	subject  int // -1 shows every subject
	loading  bool
	err      error
	width    int
	height   int
}

func New(port Port) Model {
	delegate := list.NewDefaultDelegate()
	delegate.Styles.SelectedTitle = delegate.Styles.SelectedTitle.Foreground(theme.Lavender).BorderForeground(theme.Lavender)
	delegate.Styles.SelectedDesc = delegate.Styles.SelectedDesc.Foreground(theme.Sapphire).BorderForeground(theme.Lavender)

	l := list.New(nil, delegate, 0, 0)
	l.Title = "Checklist"
	l.Styles.Title = theme.Title
	l.SetShowStatusBar(true)
	l.SetFilteringEnabled(true)
	l.SetShowHelp(false)

	vp := viewport.New(0, 0)
	vp.Style = lipgloss.NewStyle().
		Background(theme.Mantle).
		Foreground(theme.Text).
		Padding(1)

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(theme.Lavender)

	return Model{
		port:    port,
		list:    l,
		summary: vp,
		bar:     progress.New(progress.WithGradient(string(theme.Sapphire), string(theme.Green))),
		spinner: sp,
		subject: -1,
		loading: true,
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.loadCmd(), m.spinner.Tick)
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resize()

	case LoadedMsg:
		m.loading = false
		m.err = msg.Err
		if msg.Err == nil {
			cmds = append(cmds, m.apply(msg.Checklist))
		}

	case ModeSwitchedMsg:
		m.err = msg.Err
		if msg.Err == nil {
			m.subject = -1
			m.list.ResetSelected()
			cmds = append(cmds, m.apply(msg.Checklist))
		}

	case ToggledMsg:
		m.err = msg.Err
		if msg.Err == nil {
			cmds = append(cmds, m.loadCmd())
		}

	case spinner.TickMsg:
		if m.loading {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			cmds = append(cmds, cmd)
		}

	case tea.KeyMsg:
		if !m.Filtering() {
			switch msg.String() {
			case " ", "enter":
				if item, ok := m.list.SelectedItem().(topicItem); ok {
					return m, m.toggleCmd(item.topic.ID, !item.topic.Done)
				}
				return m, nil
			case "s":
				m.subject++
				if m.subject >= len(m.subjects) {
					m.subject = -1
				}
				m.list.ResetSelected()
				cmd := m.setItems()
				return m, cmd
			}
		}
	}

	if !m.loading {
		var lCmd tea.Cmd
		m.list, lCmd = m.list.Update(msg)
		cmds = append(cmds, lCmd)

		var vCmd tea.Cmd
		m.summary, vCmd = m.summary.Update(msg)
		cmds = append(cmds, vCmd)
	}

	return m, tea.Batch(cmds...)
}

func (m Model) View() string {
	if m.loading {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center,
			m.spinner.View()+" Loading syllabus…")
	}

	listW := m.width * 6 / 10
	summaryW := m.width - listW

	listPane := lipgloss.NewStyle().
		Width(listW).
		Height(m.height).
		Render(m.list.View())

	summaryPane := theme.Pane.
		Width(summaryW - 2).
		Height(m.height - 2).
		Render(m.summary.View())

	return lipgloss.JoinHorizontal(lipgloss.Top, listPane, summaryPane)
}

// Filtering reports whether the list's search filter is currently active.
func (m Model) Filtering() bool {
	return m.list.FilterState() == list.Filtering
}

// SwitchModeCmd changes the active exam mode and reloads the checklist.
func (m Model) SwitchModeCmd(mode string) tea.Cmd {
	return func() tea.Msg {
		out, err := m.port.SwitchMode(context.Background(), mode)
		return ModeSwitchedMsg{Checklist: out, Err: err}
	}
}

// ToggleCmd flips a topic by ID, as typed into the command palette.
func (m Model) ToggleCmd(topicID string) tea.Cmd {
	done := true
	for _, s := range m.subjects {
		for _, t := range s.Topics {
			if t.ID == topicID {
				done = !t.Done
			}
		}
	}
	return m.toggleCmd(topicID, done)
}

func (m Model) Label() string {
	return m.data.Label
}

// ─── private ─────────────────────────────────────────────────────────────────

func (m *Model) resize() {
	listW := m.width * 6 / 10
	summaryW := m.width - listW
	m.list.SetSize(listW, m.height)
	m.summary.Width = summaryW - 4
	m.summary.Height = m.height - 4
	m.bar.Width = max(summaryW-12, 10)
	m.summary.SetContent(m.renderSummary())
}

func (m *Model) apply(data checklistdto.ChecklistOutput) tea.Cmd {
	m.data = data
	m.subjects = data.Subjects
	if m.subject >= len(m.subjects) {
		m.subject = -1
	}
	m.list.Title = "Checklist · " + data.Label
	m.summary.SetContent(m.renderSummary())
	return m.setItems()
}

func (m *Model) setItems() tea.Cmd {
	var items []list.Item
	for i, s := range m.subjects {
		if m.subject >= 0 && i != m.subject {
			continue
		}
		for _, t := range s.Topics {
			items = append(items, topicItem{topic: t, subject: s.Name})
		}
	}
	m.summary.SetContent(m.renderSummary())
	return m.list.SetItems(items)
}

func (m Model) renderSummary() string {
	if m.data.Mode == "" {
		return theme.Muted.Render("No syllabus loaded")
	}
	var sb strings.Builder
	o := m.data.Overall
	sb.WriteString(theme.Title.Render("Overall") + "\n")
	sb.WriteString(m.bar.ViewAs(float64(o.Percent)/100) + "\n")
	sb.WriteString(theme.Muted.Render(fmt.Sprintf("%d / %d topics", o.Done, o.Total)) + "\n\n")
	for i, s := range m.subjects {
		name := s.Name
		if s.Progress.Total > 0 && s.Progress.Done == s.Progress.Total {
			name = theme.Done.Render("✓ " + name)
		}
		if i == m.subject {
			name = theme.Hot.Render("▸ " + name)
		}
		sb.WriteString(fmt.Sprintf("%s\n%s %s\n", name,
			theme.Muted.Render(fmt.Sprintf("%d/%d", s.Progress.Done, s.Progress.Total)),
			theme.Muted.Render(fmt.Sprintf("%d%%", s.Progress.Percent))))
	}
	sb.WriteString("\n" + theme.Muted.Render("space: toggle  s: next subject  /: search"))
	return sb.String()
}

func (m Model) loadCmd() tea.Cmd {
	return func() tea.Msg {
		out, err := m.port.List(context.Background(), "")
		return LoadedMsg{Checklist: out, Err: err}
	}
}

func (m Model) toggleCmd(topicID string, done bool) tea.Cmd {
	return func() tea.Msg {
		out, err := m.port.Mark(context.Background(), topicID, done)
		return ToggledMsg{Result: out, Err: err}
	}
}
