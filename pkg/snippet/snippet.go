// Package snippet renders standalone reproducer programs. A snippet
// embeds the literal template and source text and calls the same
// engine the interactive tool used, so a parse can be replayed with
// plain `go run` and no dependency on the orchestration layer.
package snippet

import (
	"fmt"
	"strings"

	"github.com/dkoosis/tpt/pkg/backend"
)

// Generate fills the backend's snippet program with the literal
// template and source text. Output is deterministic in its inputs.
func Generate(b backend.Backend, source, template string) string {
	return strings.NewReplacer(
		"__TEMPLATE__", quoteRaw(template),
		"__SOURCE__", quoteRaw(source),
	).Replace(b.SnippetFormat)
}

// Placeholder is the stand-in snippet for a failed parse. It documents
// the failure instead of reproducing it.
func Placeholder(b backend.Backend, err error) string {
	return fmt.Sprintf("// Parse failed. Fix the template first.\n// %s: %v\n", b.Label, err)
}

// quoteRaw renders s as a Go string expression built from backquoted
// raw literals. Raw literals cannot hold backticks, and the compiler
// drops carriage returns inside them, so both are spliced in as
// interpreted literals to keep the round trip byte-for-byte exact.
func quoteRaw(s string) string {
	var b strings.Builder
	b.WriteByte('`')
	for _, r := range s {
		switch r {
		case '`':
			b.WriteString("` + \"`\" + `")
		case '\r':
			b.WriteString("` + \"\\r\" + `")
		default:
			b.WriteRune(r)
		}
	}
	b.WriteByte('`')
	return b.String()
}
