// Package ttp implements a small placeholder-matching extraction engine
// in the style of template text parsers: template lines mirror the
// source text with {{ name }} placeholders standing in for the values
// to capture. Blank template lines separate match groups; each group is
// matched independently against the source and every completed group
// match yields one record merging the captures of its lines.
//
// The engine is consumed through the backend contract; nothing in the
// parse core depends on its internals.
package ttp

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/dkoosis/tpt/pkg/record"
)

// IgnoreName is the placeholder name that matches without capturing.
const IgnoreName = "ignore"

var identRe = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// Template is a compiled placeholder template.
type Template struct {
	groups []*group
}

// group is a run of contiguous non-blank template lines that must match
// consecutive source lines.
type group struct {
	matchers []*lineMatcher
}

// lineMatcher matches one template line against one source line.
type lineMatcher struct {
	re    *regexp.Regexp
	names []string // capture names in appearance order, ignores excluded
}

// Parse compiles template text. Errors describe the offending template
// line so they can be classified downstream.
func Parse(text string) (*Template, error) {
	tpl := &Template{}
	cur := &group{}
	flush := func() {
		if len(cur.matchers) > 0 {
			tpl.groups = append(tpl.groups, cur)
			cur = &group{}
		}
	}

	for i, line := range strings.Split(text, "\n") {
		line = strings.TrimRight(line, "\r")
		if strings.TrimSpace(line) == "" {
			flush()
			continue
		}
		m, err := compileLine(line, i+1)
		if err != nil {
			return nil, err
		}
		cur.matchers = append(cur.matchers, m)
	}
	flush()

	if len(tpl.groups) == 0 {
		return nil, fmt.Errorf("template contains no match lines")
	}
	return tpl, nil
}

// compileLine turns a template line into an anchored regexp. Literal
// text is quoted; {{ name }} becomes a named non-greedy capture.
func compileLine(line string, lineNo int) (*lineMatcher, error) {
	var pattern strings.Builder
	var names []string
	seen := make(map[string]bool)

	pattern.WriteString("^")
	rest := line
	for {
		open := strings.Index(rest, "{{")
		if open < 0 {
			if stray := strings.Index(rest, "}}"); stray >= 0 {
				return nil, fmt.Errorf("template syntax error at line %d: '}}' without matching '{{'", lineNo)
			}
			pattern.WriteString(regexp.QuoteMeta(rest))
			break
		}
		pattern.WriteString(regexp.QuoteMeta(rest[:open]))
		rest = rest[open+2:]

		end := strings.Index(rest, "}}")
		if end < 0 {
			return nil, fmt.Errorf("template syntax error at line %d: unclosed placeholder '{{'", lineNo)
		}
		name := strings.TrimSpace(rest[:end])
		rest = rest[end+2:]

		switch {
		case name == "":
			return nil, fmt.Errorf("template syntax error at line %d: empty placeholder", lineNo)
		case name == IgnoreName:
			pattern.WriteString(`\S+`)
		case !identRe.MatchString(name):
			return nil, fmt.Errorf("invalid variable name %q in match at line %d", name, lineNo)
		case seen[name]:
			return nil, fmt.Errorf("duplicate variable %q in match at line %d", name, lineNo)
		default:
			seen[name] = true
			names = append(names, name)
			fmt.Fprintf(&pattern, `(?P<%s>\S+)`, name)
		}
	}
	pattern.WriteString("$")

	re, err := regexp.Compile(pattern.String())
	if err != nil {
		return nil, fmt.Errorf("template syntax error at line %d: %w", lineNo, err)
	}
	return &lineMatcher{re: re, names: names}, nil
}

// ParseText matches the template against source text. The result is one
// record list per template group, each record merging the captures of a
// completed group match in placeholder appearance order. A source that
// matches nothing yields empty group lists, not an error.
func (t *Template) ParseText(source string) [][]*record.Record {
	lines := strings.Split(strings.TrimRight(source, "\n"), "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, "\r")
	}

	results := make([][]*record.Record, len(t.groups))
	for gi, g := range t.groups {
		results[gi] = g.scan(lines)
	}
	return results
}

// scan walks the source lines looking for runs that satisfy every
// matcher in order. Matches do not overlap.
func (g *group) scan(lines []string) []*record.Record {
	var records []*record.Record
	for i := 0; i+len(g.matchers) <= len(lines); {
		rec, ok := g.matchAt(lines, i)
		if !ok {
			i++
			continue
		}
		records = append(records, rec)
		i += len(g.matchers)
	}
	return records
}

func (g *group) matchAt(lines []string, start int) (*record.Record, bool) {
	rec := record.New()
	for offset, m := range g.matchers {
		sub := m.re.FindStringSubmatch(lines[start+offset])
		if sub == nil {
			return nil, false
		}
		for _, name := range m.names {
			rec.Set(name, sub[m.re.SubexpIndex(name)])
		}
	}
	return rec, true
}
