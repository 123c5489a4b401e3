// Package text provides plain text output without any styling
package text

import (
	"fmt"
	"io"

	"github.com/arthur-debert/lnlst/pkg/commands/link"
	"github.com/arthur-debert/lnlst/pkg/placer"
	"github.com/arthur-debert/lnlst/pkg/ui/status"
)

// Renderer provides plain text output without colors or styling
type Renderer struct {
	output io.Writer
}

// New creates a new text renderer
func New(output io.Writer) (*Renderer, error) {
	return &Renderer{output: output}, nil
}

// RenderResult prints one status line
func (r *Renderer) RenderResult(result placer.Result) error {
	_, err := fmt.Fprintln(r.output, status.Line(result))
	return err
}

// RenderSummary prints the run totals
func (r *Renderer) RenderSummary(summary *link.Summary) error {
	_, err := fmt.Fprintln(r.output, status.SummaryLine(summary))
	return err
}

// RenderError renders an error as plain text
func (r *Renderer) RenderError(err error) error {
	_, writeErr := fmt.Fprintln(r.output, status.ErrorLine(err))
	return writeErr
}
