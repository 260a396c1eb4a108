// tpt is an interactive workbench for testing template-based text
// extraction.
//
// Usage:
//
//	tpt                                  # open the TUI in the current directory
//	tpt ./templates                      # open the TUI in a workspace directory
//	tpt parse -template r.textfsm -source out.txt
//	cat out.txt | tpt parse -backend ttp -template r.ttp -format table
//	tpt version
//
// The parse subcommand runs one headless extraction and prints the
// records as JSON or a table. On parse failure it prints the
// diagnostic report to stderr and exits 1.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"

	"github.com/dkoosis/tpt/internal/config"
	"github.com/dkoosis/tpt/internal/tui"
	"github.com/dkoosis/tpt/internal/version"
	"github.com/dkoosis/tpt/internal/workspace"
	"github.com/dkoosis/tpt/pkg/backend"
	"github.com/dkoosis/tpt/pkg/parse"
	"github.com/dkoosis/tpt/pkg/render"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	// Check for subcommands before flag parsing
	if len(args) > 0 {
		switch args[0] {
		case "parse":
			return runParse(args[1:], stdin, stdout, stderr)
		case "version":
			fmt.Fprintf(stdout, "tpt %s (%s, built %s)\n", version.Version, version.CommitHash, version.BuildDate)
			return 0
		}
	}

	fs := flag.NewFlagSet("tpt", flag.ContinueOnError)
	fs.SetOutput(stderr)
	dirFlag := fs.String("dir", ".", "Workspace directory for the file pane")
	themeFlag := fs.String("theme", "", "Theme: default, mono (overrides .tpt.yaml)")
	if err := fs.Parse(args); err != nil {
		return 2
	}
	dir := *dirFlag
	if fs.NArg() > 0 {
		dir = fs.Arg(0)
	}

	if !isTTYWriter(stdout) {
		fmt.Fprintf(stderr, "tpt: stdout is not a terminal (use 'tpt parse' for scripted runs)\n")
		return 2
	}

	cfg := config.Load(dir)
	themeName := cfg.Theme
	if *themeFlag != "" {
		themeName = *themeFlag
	}
	theme := tui.ThemeByName(themeName)
	// Honor NO_COLOR
	if os.Getenv("NO_COLOR") != "" {
		theme = tui.MonoTheme()
	}

	ws, err := workspace.New(dir, browserFilter(cfg))
	if err != nil {
		fmt.Fprintf(stderr, "tpt: opening workspace: %v\n", err)
		return 2
	}

	p := tea.NewProgram(tui.New(cfg, ws, theme), tea.WithAltScreen(), tea.WithOutput(stdout))
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(stderr, "tpt: %v\n", err)
		return 2
	}
	return 0
}

// browserFilter shows configured text extensions plus every template
// extension any backend claims.
func browserFilter(cfg *config.Config) workspace.Filter {
	return func(name string) bool {
		if cfg.ShowsFile(name) {
			return true
		}
		return backend.IsTemplateExt(strings.ToLower(filepath.Ext(name)))
	}
}

// isTTYWriter reports whether w is a terminal.
func isTTYWriter(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// --- tpt parse subcommand ---

func runParse(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("tpt parse", flag.ContinueOnError)
	fs.SetOutput(stderr)
	backendFlag := fs.String("backend", "", "Backend: "+strings.Join(backend.IDs(), ", ")+" (default from template extension)")
	templateFlag := fs.String("template", "", "Template file (required)")
	sourceFlag := fs.String("source", "", "Source text file (default stdin)")
	formatFlag := fs.String("format", "json", "Output format: json, table")
	snippetFlag := fs.String("snippet", "", "Write the generated Go snippet to this file")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	if *templateFlag == "" {
		fmt.Fprintf(stderr, "tpt parse: -template is required\n")
		return 2
	}
	if *formatFlag != "json" && *formatFlag != "table" {
		fmt.Fprintf(stderr, "tpt parse: unknown format %q (expected json, table)\n", *formatFlag)
		return 2
	}

	template, err := os.ReadFile(*templateFlag)
	if err != nil {
		fmt.Fprintf(stderr, "tpt parse: reading template: %v\n", err)
		return 2
	}

	var source []byte
	if *sourceFlag != "" {
		source, err = os.ReadFile(*sourceFlag)
	} else {
		source, err = io.ReadAll(stdin)
	}
	if err != nil {
		fmt.Fprintf(stderr, "tpt parse: reading source: %v\n", err)
		return 2
	}

	id := *backendFlag
	if id == "" {
		id = backendForTemplate(*templateFlag)
	}
	out, err := parse.RunID(string(source), string(template), id)
	if err != nil {
		fmt.Fprintf(stderr, "tpt parse: %v (expected %s)\n", err, strings.Join(backend.IDs(), ", "))
		return 2
	}

	switch out.Kind {
	case parse.KindEmptyInput:
		fmt.Fprintf(stderr, "tpt parse: %s\n", out.Status)
		return 2

	case parse.KindFailure:
		fmt.Fprint(stderr, out.Report)
		if !strings.HasSuffix(out.Report, "\n") {
			fmt.Fprintln(stderr)
		}
		return 1

	default:
		if *snippetFlag != "" {
			if err := os.WriteFile(*snippetFlag, []byte(out.Snippet), 0o644); err != nil {
				fmt.Fprintf(stderr, "tpt parse: writing snippet: %v\n", err)
				return 2
			}
		}
		if *formatFlag == "table" {
			fmt.Fprintln(stdout, render.Table(out.Records))
		} else {
			fmt.Fprintln(stdout, render.JSON(out.Records))
		}
		fmt.Fprintf(stderr, "%s\n", out.Status)
		return 0
	}
}

// backendForTemplate picks a backend from the template file extension,
// falling back to the default.
func backendForTemplate(path string) string {
	ext := strings.ToLower(filepath.Ext(path))
	for _, b := range backend.All() {
		for _, e := range b.TemplateExts {
			if e == ext {
				return string(b.ID)
			}
		}
	}
	return config.DefaultBackend
}
