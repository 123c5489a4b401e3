// Package status holds the wording shared by the text and terminal renderers.
package status

import (
	stderrors "errors"
	"fmt"
	"path/filepath"

	"github.com/arthur-debert/lnlst/pkg/commands/link"
	"github.com/arthur-debert/lnlst/pkg/errors"
	"github.com/arthur-debert/lnlst/pkg/placer"
)

// Verdict is the part of a status line after the source.
type Verdict struct {
	// Label is styled as a whole, Detail is appended unstyled.
	Label  string
	Detail string
	// Style names an entry of the style registry.
	Style string
}

// String joins label and detail.
func (v Verdict) String() string {
	if v.Detail == "" {
		return v.Label
	}
	return v.Label + " " + v.Detail
}

// VerdictFor describes a placement result.
func VerdictFor(result placer.Result) Verdict {
	name := filepath.Base(result.Link)
	switch result.Outcome {
	case placer.OutcomeOK:
		return Verdict{Label: "OK", Style: "Success"}
	case placer.OutcomeRenamed:
		return Verdict{Label: "Renamed", Detail: fmt.Sprintf("(linked as %s)", name), Style: "Warning"}
	case placer.OutcomeFailedExhausted:
		return Verdict{Label: "ERROR (could not find valid name)", Style: "Error"}
	case placer.OutcomeWouldLink:
		return Verdict{Label: "Would link", Style: "Info"}
	case placer.OutcomeWouldRename:
		return Verdict{Label: "Would rename", Detail: fmt.Sprintf("(as %s)", name), Style: "Warning"}
	default:
		return Verdict{Label: "ERROR (OS related error)", Style: "Error"}
	}
}

// Quote renders the source part of a status line.
func Quote(source string) string {
	return fmt.Sprintf("'%s':", source)
}

// Line is the unstyled status line for result.
func Line(result placer.Result) string {
	return Quote(result.Source) + " " + VerdictFor(result).String()
}

// SummaryLine is the closing line of a run.
func SummaryLine(summary *link.Summary) string {
	line := fmt.Sprintf("%d linked, %d renamed, %d failed", summary.Linked, summary.Renamed, summary.Failed)
	if summary.DryRun {
		line += " (dry run, nothing created)"
	}
	return line
}

// FatalLine is printed when the filelist aborts the run.
func FatalLine(cause string) string {
	return fmt.Sprintf("ERROR in filelist files: (%s) Are you missing --base-src-dir?", cause)
}

// ErrorLine describes an error that ended the run. A missing source gets the
// --base-src-dir hint.
func ErrorLine(err error) string {
	var lnlstErr *errors.LnlstError
	if stderrors.As(err, &lnlstErr) && lnlstErr.Code == errors.ErrSourceNotFound {
		return FatalLine(lnlstErr.Message)
	}
	return "Error: " + err.Error()
}
