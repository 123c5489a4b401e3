// Package ui renders link results in different formats.
// It supports terminal (colored), text (plain), and JSON output formats.
package ui

import (
	"fmt"
	"io"
	"os"

	"github.com/arthur-debert/lnlst/pkg/commands/link"
	"github.com/arthur-debert/lnlst/pkg/placer"
	"github.com/arthur-debert/lnlst/pkg/ui/json"
	"github.com/arthur-debert/lnlst/pkg/ui/terminal"
	"github.com/arthur-debert/lnlst/pkg/ui/text"
)

// Renderer is the common interface for all output renderers.
type Renderer interface {
	// RenderResult renders the status of one filelist entry
	RenderResult(result placer.Result) error

	// RenderSummary renders the totals after the last entry
	RenderSummary(summary *link.Summary) error

	// RenderError renders an error with appropriate formatting
	RenderError(err error) error
}

// NewRenderer creates a new renderer based on the specified format.
// With FormatAuto the output is inspected; anything that is not a color
// capable terminal gets plain text.
func NewRenderer(format Format, output io.Writer) (Renderer, error) {
	switch format {
	case FormatAuto:
		if file, ok := output.(*os.File); ok {
			return NewRenderer(DetectFormat(file), output)
		}
		return NewRenderer(FormatText, output)
	case FormatTerminal:
		return terminal.New(output)
	case FormatText:
		return text.New(output)
	case FormatJSON:
		return json.New(output)
	default:
		return nil, fmt.Errorf("unknown format: %v", format)
	}
}

// Reporter adapts a Renderer to the link command's result callback.
func Reporter(r Renderer) link.Reporter {
	return link.ReporterFunc(r.RenderResult)
}
