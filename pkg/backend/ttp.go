package backend

import (
	"github.com/dkoosis/tpt/pkg/diagnose"
	"github.com/dkoosis/tpt/pkg/normalize"
	"github.com/dkoosis/tpt/pkg/ttp"
)

var ttpBackend = Backend{
	ID:            TTP,
	Label:         "TTP",
	Extract:       extractTTP,
	FormatError:   diagnose.TTP,
	Normalize:     normalize.Flatten,
	SnippetFormat: ttpSnippet,
	TemplateExts:  []string{".ttp", ".tpl"},
}

// extractTTP parses source with a placeholder template. The raw result
// keeps the engine's per-group nesting; the normalizer flattens it.
func extractTTP(source, template string) (any, error) {
	tpl, err := ttp.Parse(template)
	if err != nil {
		return nil, err
	}
	return tpl.ParseText(source), nil
}

const ttpSnippet = `// Generated by tpt. Reproduces this exact TTP parse standalone:
//
//	go run snippet.go
package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/dkoosis/tpt/pkg/record"
	"github.com/dkoosis/tpt/pkg/ttp"
)

const TEMPLATE = __TEMPLATE__

const SOURCE = __SOURCE__

func main() {
	tpl, err := ttp.Parse(TEMPLATE)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	var records []*record.Record
	for _, group := range tpl.ParseText(SOURCE) {
		records = append(records, group...)
	}
	data, _ := json.MarshalIndent(records, "", "  ")
	fmt.Println(string(data))
}
`
