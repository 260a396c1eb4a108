// Package tui implements the interactive surface: editor panes for
// source and template text, a result pane with JSON and table views, a
// snippet pane, and a file browser with basic file management. All
// parsing goes through the parse orchestrator; the TUI holds only the
// latest outcome.
package tui

import (
	"path/filepath"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/dkoosis/tpt/internal/config"
	"github.com/dkoosis/tpt/internal/workspace"
	"github.com/dkoosis/tpt/pkg/backend"
	"github.com/dkoosis/tpt/pkg/parse"
	"github.com/dkoosis/tpt/pkg/render"
)

type focusArea int

const (
	focusBrowser focusArea = iota
	focusSource
	focusTemplate
	focusResult
	focusSnippet
	focusCount
)

type resultMode int

const (
	modeJSON resultMode = iota
	modeTable
)

type statusLevel int

const (
	statusInfo statusLevel = iota
	statusWarn
	statusError
)

const browserWidth = 28

// Model is the bubbletea model for the whole application.
type Model struct {
	cfg   *config.Config
	theme Theme
	keys  keyMap

	browser  browser
	source   textarea.Model
	template textarea.Model
	result   viewport.Model
	snippet  viewport.Model

	backends   []backend.Backend
	backendIdx int
	mode       resultMode
	focus      focusArea

	outcome    parse.Outcome
	hasOutcome bool

	dialog *dialog

	status      string
	statusLevel statusLevel

	width  int
	height int
	ready  bool
}

// New builds the application model rooted at ws.
func New(cfg *config.Config, ws *workspace.Workspace, theme Theme) Model {
	src := newEditor("Paste or load the text to parse...")
	tpl := newEditor("Paste or load the extraction template...")

	backends := backend.All()
	idx := 0
	for i, b := range backends {
		if string(b.ID) == cfg.Backend {
			idx = i
		}
	}

	m := Model{
		cfg:        cfg,
		theme:      theme,
		keys:       defaultKeyMap(),
		browser:    newBrowser(ws),
		source:     src,
		template:   tpl,
		result:     viewport.New(0, 0),
		snippet:    viewport.New(0, 0),
		backends:   backends,
		backendIdx: idx,
		focus:      focusSource,
		status:     "ready",
	}
	m.source.Focus()
	m.snippet.SetContent("// Parse to generate a snippet...")
	return m
}

func newEditor(placeholder string) textarea.Model {
	ta := textarea.New()
	ta.Placeholder = placeholder
	ta.ShowLineNumbers = true
	ta.CharLimit = 0
	ta.MaxHeight = 0
	ta.MaxWidth = 0
	return ta
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return textarea.Blink
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		m.layout()
		return m, nil

	case tea.KeyMsg:
		if m.dialog != nil {
			return m.updateDialog(msg)
		}
		return m.updateKey(msg)
	}
	return m, nil
}

func (m Model) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Parse):
		m.runParse()
		return m, nil

	case key.Matches(msg, m.keys.CycleBackend):
		m.backendIdx = (m.backendIdx + 1) % len(m.backends)
		m.setStatus("backend: "+m.current().Label, statusInfo)
		return m, nil

	case key.Matches(msg, m.keys.ToggleView):
		if m.mode == modeJSON {
			m.mode = modeTable
		} else {
			m.mode = modeJSON
		}
		m.refreshResult()
		return m, nil

	case key.Matches(msg, m.keys.NextPane):
		m.cycleFocus()
		return m, nil

	case key.Matches(msg, m.keys.ClearAll):
		m.clearAll()
		return m, nil

	case key.Matches(msg, m.keys.SaveSource):
		if strings.TrimSpace(m.source.Value()) == "" {
			m.setStatus("source pane is empty, nothing to save", statusWarn)
			return m, nil
		}
		m.dialog = newInputDialog(dialogSaveSource, "Save source as", "source.txt", "source.txt")
		return m, nil

	case key.Matches(msg, m.keys.SaveTemplate):
		if strings.TrimSpace(m.template.Value()) == "" {
			m.setStatus("template pane is empty, nothing to save", statusWarn)
			return m, nil
		}
		suggested := "template" + m.current().TemplateExts[0]
		m.dialog = newInputDialog(dialogSaveTemplate, "Save template as", suggested, suggested)
		return m, nil
	}

	switch m.focus {
	case focusBrowser:
		return m.updateBrowser(msg)
	case focusSource:
		var cmd tea.Cmd
		m.source, cmd = m.source.Update(msg)
		return m, cmd
	case focusTemplate:
		var cmd tea.Cmd
		m.template, cmd = m.template.Update(msg)
		return m, cmd
	case focusResult:
		var cmd tea.Cmd
		m.result, cmd = m.result.Update(msg)
		return m, cmd
	case focusSnippet:
		var cmd tea.Cmd
		m.snippet, cmd = m.snippet.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m *Model) current() backend.Backend {
	return m.backends[m.backendIdx]
}

func (m *Model) cycleFocus() {
	m.source.Blur()
	m.template.Blur()
	m.focus = (m.focus + 1) % focusCount
	switch m.focus {
	case focusSource:
		m.source.Focus()
	case focusTemplate:
		m.template.Focus()
	}
}

// runParse executes one parse run and refreshes the result panes.
func (m *Model) runParse() {
	out := parse.Run(m.source.Value(), m.template.Value(), m.current())
	m.outcome = out
	m.hasOutcome = true

	switch out.Kind {
	case parse.KindEmptyInput:
		m.setStatus(out.Status, statusWarn)
	case parse.KindFailure:
		m.setStatus(out.Status, statusError)
	case parse.KindSuccess:
		m.setStatus(out.Status, statusInfo)
	}
	m.refreshResult()
}

// refreshResult repaints the result and snippet panes from the latest
// outcome without re-running the parse.
func (m *Model) refreshResult() {
	if !m.hasOutcome {
		return
	}
	switch m.outcome.Kind {
	case parse.KindEmptyInput:
		// Guidance state: keep the previous panes untouched.
	case parse.KindFailure:
		m.result.SetContent(m.outcome.Report)
		m.snippet.SetContent(m.outcome.Snippet)
	case parse.KindSuccess:
		if m.mode == modeTable {
			m.result.SetContent(render.Table(m.outcome.Records))
		} else {
			m.result.SetContent(render.JSON(m.outcome.Records))
		}
		m.snippet.SetContent(m.outcome.Snippet)
	}
	m.result.GotoTop()
}

func (m *Model) clearAll() {
	m.source.SetValue("")
	m.template.SetValue("")
	m.result.SetContent("")
	m.snippet.SetContent("// Parse to generate a snippet...")
	m.outcome = parse.Outcome{}
	m.hasOutcome = false
	m.setStatus("cleared", statusInfo)
}

func (m *Model) setStatus(msg string, level statusLevel) {
	m.status = msg
	m.statusLevel = level
}

// updateBrowser handles keys while the file pane has focus.
func (m Model) updateBrowser(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case msg.String() == "up" || msg.String() == "k":
		m.browser.moveUp()
	case msg.String() == "down" || msg.String() == "j":
		m.browser.moveDown()
	case msg.String() == "backspace" || msg.String() == "left":
		m.browser.up()
	case msg.String() == "enter":
		if e, ok := m.browser.selected(); ok {
			if e.IsDir {
				m.browser.enter(e)
			} else {
				m.loadFile(e)
			}
		}
	case key.Matches(msg, m.keys.NewFile):
		m.dialog = newInputDialog(dialogNewFile, "New file in "+filepath.Base(m.browser.targetDir()), "my_template.textfsm", "")
	case key.Matches(msg, m.keys.NewDir):
		m.dialog = newInputDialog(dialogNewDir, "New directory in "+filepath.Base(m.browser.targetDir()), "subfolder", "")
	case key.Matches(msg, m.keys.Rename):
		if e, ok := m.browser.selected(); ok {
			d := newInputDialog(dialogRename, "Rename "+e.Name, e.Name, e.Name)
			d.target = e.Path
			m.dialog = d
		}
	case key.Matches(msg, m.keys.Delete):
		if e, ok := m.browser.selected(); ok {
			m.dialog = newConfirmDialog("Delete "+e.Name+"? (y/n)", e.Path)
		}
	}
	return m, nil
}

// loadFile routes a selected file into the matching editor pane.
func (m *Model) loadFile(e workspace.Entry) {
	content, err := m.browser.ws.Read(e.Path)
	if err != nil {
		m.setStatus("could not read "+e.Name+": "+err.Error(), statusWarn)
		return
	}
	if workspace.PaneFor(e.Path) == workspace.TemplatePane {
		m.template.SetValue(content)
		m.setStatus("template loaded: "+e.Name, statusInfo)
	} else {
		m.source.SetValue(content)
		m.setStatus("source loaded: "+e.Name, statusInfo)
	}
}

// updateDialog routes keys while a modal dialog is open.
func (m Model) updateDialog(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	d := m.dialog

	if d.confirm {
		switch msg.String() {
		case "y", "Y", "enter":
			if err := m.browser.ws.Delete(d.target); err != nil {
				m.setStatus("delete failed: "+err.Error(), statusWarn)
			} else {
				m.setStatus("deleted: "+filepath.Base(d.target), statusInfo)
				m.browser.reload()
			}
			m.dialog = nil
		case "n", "N", "esc":
			m.setStatus("delete cancelled", statusInfo)
			m.dialog = nil
		}
		return m, nil
	}

	switch msg.String() {
	case "esc":
		m.dialog = nil
		m.setStatus("cancelled", statusInfo)
		return m, nil
	case "enter":
		m.applyDialog(d)
		m.dialog = nil
		return m, nil
	}

	var cmd tea.Cmd
	d.input, cmd = d.input.Update(msg)
	return m, cmd
}

// applyDialog performs the action a completed input dialog stands for.
func (m *Model) applyDialog(d *dialog) {
	name := strings.TrimSpace(d.value())
	if name == "" {
		m.setStatus("cancelled", statusInfo)
		return
	}
	ws := m.browser.ws

	switch d.kind {
	case dialogSaveSource, dialogSaveTemplate:
		content := m.source.Value()
		label := "source"
		if d.kind == dialogSaveTemplate {
			content = m.template.Value()
			label = "template"
		}
		path := filepath.Join(m.browser.targetDir(), name)
		if err := ws.Save(path, content); err != nil {
			m.setStatus("save failed: "+err.Error(), statusWarn)
			return
		}
		m.setStatus("saved "+label+": "+path, statusInfo)

	case dialogNewFile:
		if _, err := ws.CreateFile(m.browser.targetDir(), name); err != nil {
			m.setStatus("create failed: "+err.Error(), statusWarn)
			return
		}
		m.setStatus("created file: "+name, statusInfo)

	case dialogNewDir:
		if _, err := ws.CreateDir(m.browser.targetDir(), name); err != nil {
			m.setStatus("create failed: "+err.Error(), statusWarn)
			return
		}
		m.setStatus("created directory: "+name, statusInfo)

	case dialogRename:
		if _, err := ws.Rename(d.target, name); err != nil {
			m.setStatus("rename failed: "+err.Error(), statusWarn)
			return
		}
		m.setStatus("renamed to: "+name, statusInfo)
	}
	m.browser.reload()
}
