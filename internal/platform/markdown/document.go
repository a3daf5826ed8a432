package markdown

import (
	"bytes"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

const fence = "---"

// Document is a markdown note split into YAML frontmatter and body.
type Document struct {
	Meta map[string]any
	Body string
}

// Parse accepts notes with or without frontmatter. CRLF line endings are
// normalised.
func Parse(content string) (Document, error) {
	content = strings.ReplaceAll(content, "\r\n", "\n")
	if !strings.HasPrefix(content, fence+"\n") {
		return Document{Meta: map[string]any{}, Body: content}, nil
	}
	rest := content[len(fence)+1:]
	var raw, body string
	if strings.HasPrefix(rest, fence+"\n") {
		body = rest[len(fence)+1:]
	} else {
		idx := strings.Index(rest, "\n"+fence+"\n")
		if idx < 0 {
			return Document{}, fmt.Errorf("frontmatter is not closed")
		}
		raw = rest[:idx]
		body = rest[idx+len(fence)+2:]
	}

	meta := map[string]any{}
	if err := yaml.Unmarshal([]byte(raw), &meta); err != nil {
		return Document{}, fmt.Errorf("decode frontmatter: %w", err)
	}
	if meta == nil {
		meta = map[string]any{}
	}
	return Document{Meta: meta, Body: body}, nil
}

// Set overwrites the given keys and leaves the rest of the frontmatter alone.
func (d *Document) Set(values map[string]any) {
	if d.Meta == nil {
		d.Meta = map[string]any{}
	}
	for k, v := range values {
		d.Meta[k] = v
	}
}

func (d Document) Render() (string, error) {
	buf := bytes.Buffer{}
	if len(d.Meta) > 0 {
		raw, err := yaml.Marshal(d.Meta)
		if err != nil {
			return "", fmt.Errorf("encode frontmatter: %w", err)
		}
		buf.WriteString(fence + "\n")
		buf.Write(raw)
		buf.WriteString(fence + "\n")
		if !strings.HasPrefix(d.Body, "\n") {
			buf.WriteString("\n")
		}
	}
	buf.WriteString(d.Body)
	return buf.String(), nil
}
