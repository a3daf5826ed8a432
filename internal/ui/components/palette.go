package components

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"gateprep/internal/ui/theme"
)

// PaletteSubmitMsg is emitted when the user confirms a command.
type PaletteSubmitMsg struct{ Input string }

// PaletteCancelMsg is emitted when the user presses esc.
type PaletteCancelMsg struct{}

type hint struct {
	usage string
	about string
}

func (h hint) name() string {
	name, _, _ := strings.Cut(h.usage, " ")
	return name
}

// hints must stay in sync with the switch in app/model.go executePalette.
var paletteHints = []hint{
	{"timer:toggle", "start or pause the study timer"},
	{"timer:reset", "discard the current session"},
	{"target:set <hours>", "total study-hour goal, 100–3000"},
	{"mode:set <da|cse>", "switch exam paper"},
	{"checklist:toggle <topic-id>", "flip a topic, e.g. prob_stats_0"},
	{"plan:goal <marks>", "split a score across subjects"},
	{"timeline:year <yyyy>", "phase plan for an exam year"},
}

const maxShown = 5

var (
	paletteStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(theme.Peach).
			Background(theme.Mantle).
			Foreground(theme.Text).
			Padding(0, 1)

	usageStyle = lipgloss.NewStyle().Foreground(theme.Lavender).Width(30)
)

// Palette is a command-palette overlay backed by bubbles/textinput.
type Palette struct {
	input   textinput.Model
	visible bool
	width   int
}

func NewPalette() Palette {
	ti := textinput.New()
	ti.Placeholder = "type a command…"
	ti.CharLimit = 128
	return Palette{input: ti}
}

func (p Palette) Visible() bool { return p.visible }

// Open shows the palette, clears the input, and returns the focus command.
func (p *Palette) Open() tea.Cmd {
	p.visible = true
	p.input.SetValue("")
	return p.input.Focus()
}

func (p *Palette) SetWidth(w int) { p.width = w }

func (p Palette) Update(msg tea.Msg) (Palette, tea.Cmd) {
	if !p.visible {
		return p, nil
	}
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "esc":
			p.close()
			return p, func() tea.Msg { return PaletteCancelMsg{} }
		case "enter":
			val := strings.TrimSpace(p.input.Value())
			p.close()
			return p, func() tea.Msg { return PaletteSubmitMsg{Input: val} }
		case "tab":
			if m := matches(p.input.Value()); len(m) > 0 {
				p.input.SetValue(m[0].name() + " ")
				p.input.CursorEnd()
			}
			return p, nil
		}
	}
	var cmd tea.Cmd
	p.input, cmd = p.input.Update(msg)
	return p, cmd
}

func (p Palette) View() string {
	if !p.visible {
		return ""
	}

	var sb strings.Builder
	sb.WriteString(theme.Title.Render("Command Palette") + "\n")
	sb.WriteString(": " + p.input.View() + "\n")
	if found := matches(p.input.Value()); len(found) > 0 {
		sb.WriteString("\n")
		for _, h := range found {
			sb.WriteString("  " + usageStyle.Render(h.usage) + theme.Muted.Render(h.about) + "\n")
		}
	}
	sb.WriteString(theme.Muted.Render("\ntab: complete  enter: run  esc: close"))

	w := p.width
	if w < 20 {
		w = 64
	}
	return paletteStyle.Width(w - 2).Render(sb.String())
}

func (p *Palette) close() {
	p.visible = false
	p.input.Blur()
}

// matches returns hints whose command name contains the typed word.
func matches(input string) []hint {
	word, _, _ := strings.Cut(strings.ToLower(strings.TrimSpace(input)), " ")
	var out []hint
	for _, h := range paletteHints {
		if word == "" || strings.Contains(h.name(), word) {
			out = append(out, h)
			if len(out) == maxShown {
				break
			}
		}
	}
	return out
}
