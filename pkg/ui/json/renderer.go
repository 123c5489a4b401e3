// Package json provides machine-readable JSON output, one object per line
package json

import (
	"encoding/json"
	"io"

	"github.com/arthur-debert/lnlst/pkg/commands/link"
	"github.com/arthur-debert/lnlst/pkg/errors"
	"github.com/arthur-debert/lnlst/pkg/placer"
)

// Entry is the JSON form of a placement result.
type Entry struct {
	Source string         `json:"source"`
	Link   string         `json:"link,omitempty"`
	Status placer.Outcome `json:"status"`
	Error  string         `json:"error,omitempty"`
	Code   string         `json:"code,omitempty"`
}

// Renderer provides JSON output for machine consumption
type Renderer struct {
	output  io.Writer
	encoder *json.Encoder
}

// New creates a new JSON renderer
func New(output io.Writer) (*Renderer, error) {
	return &Renderer{
		output:  output,
		encoder: json.NewEncoder(output),
	}, nil
}

// RenderResult writes one entry object
func (r *Renderer) RenderResult(result placer.Result) error {
	entry := Entry{
		Source: result.Source,
		Link:   result.Link,
		Status: result.Outcome,
	}
	if result.Err != nil {
		entry.Error = result.Err.Error()
		entry.Code = string(errors.GetErrorCode(result.Err))
	}
	return r.encoder.Encode(entry)
}

// RenderSummary writes the summary object
func (r *Renderer) RenderSummary(summary *link.Summary) error {
	return r.encoder.Encode(map[string]*link.Summary{"summary": summary})
}

// RenderError renders an error as JSON
func (r *Renderer) RenderError(err error) error {
	errorObj := map[string]interface{}{
		"error": err.Error(),
		"code":  string(errors.GetErrorCode(err)),
	}
	if details := errors.GetErrorDetails(err); len(details) > 0 {
		errorObj["details"] = details
	}
	return r.encoder.Encode(errorObj)
}
