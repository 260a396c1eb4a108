package backend

import (
	"strings"

	"github.com/sirikothe/gotextfsm"

	"github.com/dkoosis/tpt/pkg/diagnose"
	"github.com/dkoosis/tpt/pkg/normalize"
	"github.com/dkoosis/tpt/pkg/record"
)

var textFSMBackend = Backend{
	ID:            TextFSM,
	Label:         "TextFSM",
	Extract:       extractTextFSM,
	FormatError:   diagnose.TextFSM,
	Normalize:     normalize.Flatten,
	SnippetFormat: textFSMSnippet,
	TemplateExts:  []string{".textfsm", ".template"},
}

// extractTextFSM parses source with a TextFSM template. The raw result
// is a flat record list; field order follows the template's Value
// declaration order, which the engine's row maps do not preserve.
func extractTextFSM(source, template string) (any, error) {
	fsm := gotextfsm.TextFSM{}
	if err := fsm.ParseString(template); err != nil {
		return nil, err
	}
	out := gotextfsm.ParserOutput{}
	if err := out.ParseTextString(source, fsm, true); err != nil {
		return nil, err
	}

	headers := valueNames(template)
	rows := make([]*record.Record, 0, len(out.Dict))
	for _, row := range out.Dict {
		rec := record.New()
		for _, h := range headers {
			if v, ok := row[h]; ok {
				rec.Set(h, v)
			} else {
				rec.Set(h, "")
			}
		}
		rows = append(rows, rec)
	}
	return rows, nil
}

// valueNames extracts Value names in declaration order from a TextFSM
// template. A declaration is "Value [options] NAME (regex)"; the name
// is the token right before the pattern, which always opens with '('.
func valueNames(template string) []string {
	var names []string
	for _, line := range strings.Split(template, "\n") {
		fields := strings.Fields(line)
		if len(fields) < 2 || fields[0] != "Value" {
			continue
		}
		name := fields[len(fields)-1]
		for i := 1; i < len(fields); i++ {
			if strings.HasPrefix(fields[i], "(") && i > 1 {
				name = fields[i-1]
				break
			}
		}
		if !strings.HasPrefix(name, "(") {
			names = append(names, name)
		}
	}
	return names
}

const textFSMSnippet = `// Generated by tpt. Reproduces this exact TextFSM parse standalone:
//
//	go run snippet.go
package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/sirikothe/gotextfsm"
)

const TEMPLATE = __TEMPLATE__

const SOURCE = __SOURCE__

func main() {
	fsm := gotextfsm.TextFSM{}
	if err := fsm.ParseString(TEMPLATE); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	out := gotextfsm.ParserOutput{}
	if err := out.ParseTextString(SOURCE, fsm, true); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	// The engine's row maps are unordered; keep the template's Value
	// declaration order in the printed output.
	headers := valueNames(TEMPLATE)
	var buf bytes.Buffer
	buf.WriteString("[")
	for i, row := range out.Dict {
		if i > 0 {
			buf.WriteString(",")
		}
		buf.WriteString("\n  {")
		for j, h := range headers {
			if j > 0 {
				buf.WriteString(",")
			}
			v, ok := row[h]
			if !ok {
				v = ""
			}
			key, _ := json.Marshal(h)
			val, _ := json.Marshal(v)
			fmt.Fprintf(&buf, "\n    %s: %s", key, val)
		}
		buf.WriteString("\n  }")
	}
	if len(out.Dict) > 0 {
		buf.WriteString("\n")
	}
	buf.WriteString("]")
	fmt.Println(buf.String())
}

// valueNames extracts Value names in declaration order from the
// template. A declaration is "Value [options] NAME (regex)".
func valueNames(template string) []string {
	var names []string
	for _, line := range strings.Split(template, "\n") {
		fields := strings.Fields(line)
		if len(fields) < 2 || fields[0] != "Value" {
			continue
		}
		name := fields[len(fields)-1]
		for i := 1; i < len(fields); i++ {
			if strings.HasPrefix(fields[i], "(") && i > 1 {
				name = fields[i-1]
				break
			}
		}
		if !strings.HasPrefix(name, "(") {
			names = append(names, name)
		}
	}
	return names
}
`
