package topics

import "io"

// Renderer turns a topic's stored content into terminal output. ext is the
// topic file extension, such as ".md".
type Renderer interface {
	Render(content, ext string) string
}

// RendererFactory builds the Renderer for the writer a topic is printed to.
type RendererFactory func(w io.Writer) Renderer

type plainRenderer struct{}

func (plainRenderer) Render(content, _ string) string { return content }

// Plain prints topics exactly as stored.
func Plain(io.Writer) Renderer { return plainRenderer{} }
