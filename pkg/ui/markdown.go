package ui

import (
	"io"

	"github.com/charmbracelet/glamour"
)

// Markdown renders markdown documents with glamour on capable terminals and
// passes them through unchanged otherwise.
type Markdown struct {
	Style string // "auto", a glamour standard style name or a style file path
	Width int    // word wrap column, 0 disables wrapping
	Plain bool   // skip rendering entirely
}

// NewMarkdown returns a renderer suited to w.
func NewMarkdown(format Format, w io.Writer) *Markdown {
	return &Markdown{
		Style: "auto",
		Width: Width(w),
		Plain: Resolve(format, w) != FormatTerminal,
	}
}

// Render converts content to terminal output. Only ".md" content is styled.
func (m *Markdown) Render(content string, ext string) string {
	if m.Plain || ext != ".md" {
		return content
	}

	var options []glamour.TermRendererOption
	if m.Style != "" && m.Style != "auto" {
		options = append(options, glamour.WithStylePath(m.Style))
	} else {
		options = append(options, glamour.WithAutoStyle())
	}
	if m.Width > 0 {
		options = append(options, glamour.WithWordWrap(m.Width))
	}

	renderer, err := glamour.NewTermRenderer(options...)
	if err != nil {
		return content
	}
	rendered, err := renderer.Render(content)
	if err != nil {
		return content
	}
	return rendered
}
