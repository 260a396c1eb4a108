// Package parse orchestrates a single parse run: validate inputs,
// invoke the selected backend through its uniform contract, normalize
// success into records, convert failure into a diagnostic report, and
// produce the reproducer snippet. The orchestrator never inspects
// backend internals; everything crosses the backend contract.
package parse

import (
	"fmt"
	"strings"

	"github.com/dkoosis/tpt/pkg/backend"
	"github.com/dkoosis/tpt/pkg/record"
	"github.com/dkoosis/tpt/pkg/snippet"
)

// Kind is the terminal outcome of one parse invocation.
type Kind int

const (
	// KindEmptyInput means a precondition failed (blank source or
	// blank template). The backend was never invoked and no report
	// exists; Status carries the guidance message.
	KindEmptyInput Kind = iota
	// KindSuccess carries records (possibly none) and a snippet.
	KindSuccess
	// KindFailure carries the diagnostic report and the placeholder
	// snippet.
	KindFailure
)

// Outcome is the result of one parse run. Exactly one of the three
// kinds applies; artifacts for the other kinds are zero-valued.
type Outcome struct {
	Kind    Kind
	Records []*record.Record // KindSuccess
	Snippet string           // KindSuccess: reproducer; KindFailure: placeholder
	Report  string           // KindFailure
	Status  string           // one-line status for all kinds
}

// Run executes one parse against an already-resolved backend.
// Invocations are independent: no state survives between calls.
func Run(source, template string, b backend.Backend) Outcome {
	if strings.TrimSpace(source) == "" {
		return Outcome{Kind: KindEmptyInput, Status: "source text is empty"}
	}
	if strings.TrimSpace(template) == "" {
		return Outcome{Kind: KindEmptyInput, Status: "template is empty"}
	}

	raw, err := b.Extract(source, template)
	if err != nil {
		return Outcome{
			Kind:    KindFailure,
			Report:  b.FormatError(err, template),
			Snippet: snippet.Placeholder(b, err),
			Status:  b.Label + ": " + err.Error(),
		}
	}

	records := b.Normalize(raw)
	// The snippet is driven by the inputs, not the normalized records,
	// so it stays correct even if normalization changes.
	return Outcome{
		Kind:    KindSuccess,
		Records: records,
		Snippet: snippet.Generate(b, source, template),
		Status:  statusLine(len(records), b.Label),
	}
}

// RunID resolves the backend identifier first. A blank identifier is a
// guidance state like blank inputs; an unknown identifier is a
// configuration bug rather than a parse failure and is therefore
// returned as an error, not converted into a report.
func RunID(source, template, backendID string) (Outcome, error) {
	if strings.TrimSpace(backendID) == "" {
		return Outcome{Kind: KindEmptyInput, Status: "no backend selected"}, nil
	}
	b, err := backend.Lookup(backendID)
	if err != nil {
		return Outcome{}, err
	}
	return Run(source, template, b), nil
}

func statusLine(count int, label string) string {
	plural := "s"
	if count == 1 {
		plural = ""
	}
	return fmt.Sprintf("parsed %d record%s with %s", count, plural, label)
}
