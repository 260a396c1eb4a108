// Package backend defines the closed set of extraction backends and
// the uniform contract the parse orchestrator consumes. A backend
// bundles its extraction function, its diagnostic formatter, its
// normalization function, and its snippet template as data, so adding
// a grammar never touches the orchestrator.
package backend

import (
	"errors"
	"fmt"

	"github.com/dkoosis/tpt/pkg/record"
)

// ID identifies one extraction backend.
type ID string

const (
	TextFSM ID = "textfsm"
	TTP     ID = "ttp"
)

// ErrUnknownBackend is returned by Lookup for unregistered identifiers.
var ErrUnknownBackend = errors.New("unknown backend")

// ExtractFunc runs the grammar engine over (source, template) and
// returns its raw, backend-specific result shape. Extraction must be
// pure in its two inputs: no ambient state, no side effects.
type ExtractFunc func(source, template string) (any, error)

// FormatErrorFunc converts an extraction failure plus the active
// template into a diagnostic report.
type FormatErrorFunc func(err error, template string) string

// NormalizeFunc converts the backend's raw result shape into the
// uniform record sequence. Each backend declares its own, since raw
// nesting conventions differ per engine.
type NormalizeFunc func(raw any) []*record.Record

// Backend is one registered extraction grammar. Backends are immutable
// after init and are passed by value.
type Backend struct {
	ID            ID
	Label         string
	Extract       ExtractFunc
	FormatError   FormatErrorFunc
	Normalize     NormalizeFunc
	SnippetFormat string   // standalone reproducer program, see pkg/snippet
	TemplateExts  []string // file extensions routed to the template pane
}

// All returns the registered backends in stable display order.
func All() []Backend {
	return []Backend{textFSMBackend, ttpBackend}
}

// IDs returns the registered identifiers in the same order as All.
func IDs() []string {
	backends := All()
	ids := make([]string, len(backends))
	for i, b := range backends {
		ids[i] = string(b.ID)
	}
	return ids
}

// Lookup resolves an identifier to its backend.
func Lookup(id string) (Backend, error) {
	for _, b := range All() {
		if string(b.ID) == id {
			return b, nil
		}
	}
	return Backend{}, fmt.Errorf("%w: %q", ErrUnknownBackend, id)
}

// IsTemplateExt reports whether ext (including the dot) belongs to any
// backend's template extension set.
func IsTemplateExt(ext string) bool {
	for _, b := range All() {
		for _, e := range b.TemplateExts {
			if e == ext {
				return true
			}
		}
	}
	return false
}
