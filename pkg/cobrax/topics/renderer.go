package topics

import (
	"github.com/charmbracelet/glamour"
)

// Renderer turns raw topic content into terminal output. ext is the topic
// file's extension, dot included.
type Renderer interface {
	Render(content, ext string) string
}

// PlainRenderer prints topics verbatim
type PlainRenderer struct{}

func (PlainRenderer) Render(content, _ string) string {
	return content
}

// GlamourRenderer styles markdown topics with glamour
type GlamourRenderer struct {
	Style string // "auto", a standard glamour style name, or a style file path
	Width int    // word wrap width, 0 keeps glamour's default
}

// NewGlamourRenderer picks the style from the terminal background.
func NewGlamourRenderer() *GlamourRenderer {
	return &GlamourRenderer{Style: "auto"}
}

func (r *GlamourRenderer) options() []glamour.TermRendererOption {
	var options []glamour.TermRendererOption
	switch r.Style {
	case "", "auto":
		options = append(options, glamour.WithAutoStyle())
	case "dark", "light", "notty", "ascii", "dracula", "pink", "tokyo-night":
		options = append(options, glamour.WithStandardStyle(r.Style))
	default:
		options = append(options, glamour.WithStylePath(r.Style))
	}
	if r.Width > 0 {
		options = append(options, glamour.WithWordWrap(r.Width))
	}
	return options
}

// Render styles .md content. Other extensions, and markdown glamour cannot
// render, come back unchanged.
func (r *GlamourRenderer) Render(content, ext string) string {
	if ext != ".md" {
		return content
	}

	tr, err := glamour.NewTermRenderer(r.options()...)
	if err != nil {
		return content
	}
	rendered, err := tr.Render(content)
	if err != nil {
		return content
	}
	return rendered
}
