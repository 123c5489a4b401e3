// Package terminal provides rich terminal output with colors and styling
package terminal

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/arthur-debert/lnlst/pkg/commands/link"
	"github.com/arthur-debert/lnlst/pkg/placer"
	"github.com/arthur-debert/lnlst/pkg/ui/output/styles"
	"github.com/arthur-debert/lnlst/pkg/ui/status"
)

// Renderer provides colored status lines using the style registry
type Renderer struct {
	output io.Writer
	lg     *lipgloss.Renderer
}

// New creates a new terminal renderer. Choosing this renderer means colors
// were asked for, so an undetected profile is raised to plain ANSI.
func New(w io.Writer) (*Renderer, error) {
	lg := lipgloss.NewRenderer(w)
	if lg.ColorProfile() == termenv.Ascii {
		lg.SetColorProfile(termenv.ANSI)
	}
	return NewWithRenderer(w, lg), nil
}

// NewWithRenderer uses lg as is, which pins the color profile in tests.
func NewWithRenderer(w io.Writer, lg *lipgloss.Renderer) *Renderer {
	return &Renderer{output: w, lg: lg}
}

func (r *Renderer) style(name string) lipgloss.Style {
	return r.lg.NewStyle().Inherit(styles.GetStyle(name))
}

// RenderResult prints one status line with a colored verdict
func (r *Renderer) RenderResult(result placer.Result) error {
	verdict := status.VerdictFor(result)
	line := status.Quote(result.Source) + " " + r.style(verdict.Style).Render(verdict.Label)
	if verdict.Detail != "" {
		line += " " + r.style("LinkName").Render(verdict.Detail)
	}
	_, err := fmt.Fprintln(r.output, line)
	return err
}

// RenderSummary prints the run totals
func (r *Renderer) RenderSummary(summary *link.Summary) error {
	name := "Summary"
	if summary.Failed > 0 {
		name = "Warning"
	}
	_, err := fmt.Fprintln(r.output, "\n"+r.style(name).Render(status.SummaryLine(summary)))
	return err
}

// RenderError renders an error in the error style
func (r *Renderer) RenderError(err error) error {
	_, writeErr := fmt.Fprintln(r.output, r.style("Error").Render(status.ErrorLine(err)))
	return writeErr
}
