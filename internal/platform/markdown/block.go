package markdown

import "strings"

// Block is a generated region of a note, fenced by HTML comments so the
// rest of the note stays hand-editable.
type Block struct {
	Name string
}

func (b Block) Start() string { return "<!-- " + b.Name + ":start -->" }

func (b Block) End() string { return "<!-- " + b.Name + ":end -->" }

// Replace swaps the block's content in place, or appends the block when the
// note has none yet.
func (b Block) Replace(body, generated string) string {
	block := b.Start() + "\n" + strings.TrimRight(generated, "\n") + "\n" + b.End()
	start := strings.Index(body, b.Start())
	if start >= 0 {
		if end := strings.Index(body[start:], b.End()); end >= 0 {
			end += start + len(b.End())
			return body[:start] + block + body[end:]
		}
	}

	switch {
	case strings.TrimSpace(body) == "":
		return block + "\n"
	case strings.HasSuffix(body, "\n"):
		return body + "\n" + block + "\n"
	default:
		return body + "\n\n" + block + "\n"
	}
}

// Content returns what sits between the markers.
func (b Block) Content(body string) (string, bool) {
	start := strings.Index(body, b.Start())
	if start < 0 {
		return "", false
	}
	inner := body[start+len(b.Start()):]
	end := strings.Index(inner, b.End())
	if end < 0 {
		return "", false
	}
	return strings.Trim(inner[:end], "\n"), true
}
