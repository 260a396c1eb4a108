// Package diagnose turns raw extraction failures into line-anchored,
// human-actionable reports. Each grammar engine has its own error
// vocabulary, so each backend gets its own formatter; the classifiers
// are plain ordered substring rules evaluated first match wins, so
// their heuristic nature stays visible and testable.
package diagnose

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// previewLines bounds the template preview for grammars without
// meaningful line numbers in their errors.
const previewLines = 10

// lineRe matches the many ways engines spell a line reference:
// "Line: 4", "line 4", "Line:4".
var lineRe = regexp.MustCompile(`(?i)line:?\s*(\d+)`)

// Rule classifies a failure message into an issue and a hint.
// Rules are evaluated in order; the first match wins.
type Rule struct {
	Match func(msg string) bool
	Issue string
	Hint  []string
}

func contains(subs ...string) func(string) bool {
	return func(msg string) bool {
		lower := strings.ToLower(msg)
		for _, s := range subs {
			if !strings.Contains(lower, s) {
				return false
			}
		}
		return true
	}
}

func anyOf(fns ...func(string) bool) func(string) bool {
	return func(msg string) bool {
		for _, fn := range fns {
			if fn(msg) {
				return true
			}
		}
		return false
	}
}

var textFSMRules = []Rule{
	{
		Match: contains("invalid state name"),
		Issue: "Invalid state name in Value definition.",
		Hint: []string{
			"Blank lines are not allowed between Value",
			"declarations. Remove any empty lines before",
			"the 'Start' state.",
		},
	},
	{
		Match: anyOf(contains("start", "no "), contains("start", "missing"), contains("start", "not found")),
		Issue: "Missing 'Start' state.",
		Hint: []string{
			"Every TextFSM template needs a 'Start' state",
			"after the Value declarations.",
		},
	},
	{
		Match: contains("duplicate"),
		Issue: "Duplicate value or state name.",
		Hint:  []string{"Each Value name must be unique."},
	},
	{
		Match: contains("rule", "syntax"),
		Issue: "Rule syntax error.",
		Hint:  []string{"Check regex patterns and -> actions."},
	},
}

var ttpRules = []Rule{
	{
		Match: contains("template"),
		Issue: "Template syntax problem.",
	},
	{
		Match: anyOf(contains("variable"), contains("match")),
		Issue: "Variable/match definition error.",
	},
}

var ttpTips = []string{
	"- Check that {{ variable }} placeholders match source structure",
	"- Use {{ ignore }} to skip fields you don't need",
	"- Whitespace in the template must match the source text",
}

// TextFSM formats a TextFSM engine failure against the active template.
func TextFSM(err error, template string) (report string) {
	defer func() {
		// A report must be producible from any failure and any
		// template; degrade instead of propagating.
		if recover() != nil {
			report = fallback("TextFSM Error", err)
		}
	}()
	msg := errText(err)
	lines := strings.Split(template, "\n")
	parts := []string{"TextFSM Error", strings.Repeat("=", 50), ""}

	parts = append(parts, excerpt(msg, lines)...)
	parts = append(parts, classify(msg, textFSMRules)...)

	return strings.Join(parts, "\n")
}

// TTP formats a TTP engine failure. TTP errors rarely carry usable line
// numbers, so the report shows a bounded template preview and general
// troubleshooting tips instead of an excerpt window.
func TTP(err error, template string) (report string) {
	defer func() {
		if recover() != nil {
			report = fallback("TTP Error", err)
		}
	}()
	msg := errText(err)
	lines := strings.Split(template, "\n")
	parts := []string{"TTP Error", strings.Repeat("=", 50), ""}

	parts = append(parts, classify(msg, ttpRules)...)

	parts = append(parts, "", "  Template preview:")
	shown := lines
	if len(shown) > previewLines {
		shown = shown[:previewLines]
	}
	for i, line := range shown {
		parts = append(parts, fmt.Sprintf("    %3d | %s", i+1, line))
	}
	if rest := len(lines) - previewLines; rest > 0 {
		parts = append(parts, fmt.Sprintf("    ... (%d more lines)", rest))
	}

	parts = append(parts, "", "  Tips:")
	for _, tip := range ttpTips {
		parts = append(parts, "  "+tip)
	}

	return strings.Join(parts, "\n")
}

func fallback(header string, err error) string {
	return strings.Join([]string{header, strings.Repeat("=", 50), "", "  Detail: " + errText(err)}, "\n")
}

func errText(err error) string {
	if err == nil {
		return "unknown failure"
	}
	return err.Error()
}

// excerpt renders a window of template lines around the line number
// found in msg, two lines of context before and one after, clipped to
// template bounds, with the offending line marked. A message without a
// parsable line number yields no excerpt.
func excerpt(msg string, lines []string) []string {
	m := lineRe.FindStringSubmatch(msg)
	if m == nil {
		return nil
	}
	lineNo, err := strconv.Atoi(m[1])
	if err != nil || lineNo < 1 {
		// Unparsable line reference; degrade to the detail-only report.
		return nil
	}

	start := lineNo - 3
	if start < 0 {
		start = 0
	}
	end := lineNo + 1
	if end > len(lines) {
		end = len(lines)
	}
	if start >= end {
		return nil
	}

	parts := []string{fmt.Sprintf("  Problem at line %d:", lineNo)}
	for i := start; i < end; i++ {
		marker := "    "
		if i == lineNo-1 {
			marker = " >>>"
		}
		parts = append(parts, fmt.Sprintf("%s %3d | %s", marker, i+1, lines[i]))
	}
	return append(parts, "")
}

// classify runs the ordered rule list over msg. No match falls back to
// the verbatim detail line.
func classify(msg string, rules []Rule) []string {
	for _, r := range rules {
		if !r.Match(msg) {
			continue
		}
		parts := []string{"  Issue: " + r.Issue}
		for i, h := range r.Hint {
			if i == 0 {
				parts = append(parts, "  Hint:  "+h)
			} else {
				parts = append(parts, "         "+h)
			}
		}
		return parts
	}
	return []string{"  Detail: " + msg}
}
