package tui

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

// layout distributes the terminal area across the panes. Called on
// every resize.
func (m *Model) layout() {
	mainH := m.height - 2 // status and help lines
	if mainH < 6 {
		mainH = 6
	}
	rightW := m.width - browserWidth
	if rightW < 20 {
		rightW = 20
	}

	editorH := mainH / 2
	resultH := mainH - editorH
	paneW := rightW / 2

	// Inner sizes subtract the border and the title line.
	m.source.SetWidth(paneW - 2)
	m.source.SetHeight(editorH - 3)
	m.template.SetWidth(rightW - paneW - 2)
	m.template.SetHeight(editorH - 3)

	m.result.Width = paneW - 2
	m.result.Height = resultH - 3
	m.snippet.Width = rightW - paneW - 2
	m.snippet.Height = resultH - 3
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "starting..."
	}

	mainH := m.height - 2
	if mainH < 6 {
		mainH = 6
	}
	rightW := m.width - browserWidth
	if rightW < 20 {
		rightW = 20
	}
	editorH := mainH / 2
	resultH := mainH - editorH
	paneW := rightW / 2

	resultTitle := "Result (JSON)"
	if m.mode == modeTable {
		resultTitle = "Result (Table)"
	}

	editors := lipgloss.JoinHorizontal(lipgloss.Top,
		m.pane("Source Text", m.source.View(), focusSource, paneW, editorH),
		m.pane("Template", m.template.View(), focusTemplate, rightW-paneW, editorH),
	)
	results := lipgloss.JoinHorizontal(lipgloss.Top,
		m.pane(resultTitle, m.result.View(), focusResult, paneW, resultH),
		m.pane("Go Snippet", m.snippet.View(), focusSnippet, rightW-paneW, resultH),
	)
	right := lipgloss.JoinVertical(lipgloss.Left, editors, results)
	left := m.pane(m.browserTitle(), m.browserView(mainH-3), focusBrowser, browserWidth, mainH)

	main := lipgloss.JoinHorizontal(lipgloss.Top, left, right)

	return lipgloss.JoinVertical(lipgloss.Left, main, m.statusLine(), m.helpLine())
}

// pane draws a bordered box with a title line and focus highlighting.
func (m Model) pane(title, content string, area focusArea, w, h int) string {
	style := m.theme.BlurredPane
	if m.focus == area {
		style = m.theme.FocusedPane
	}
	inner := m.theme.PaneTitle.Render(title) + "\n" + content
	return style.Width(w - 2).Height(h - 2).Render(inner)
}

func (m Model) browserTitle() string {
	rel, err := filepath.Rel(m.browser.ws.Root(), m.browser.dir)
	if err != nil || rel == "." {
		return "Files"
	}
	return "Files: " + rel
}

// browserView renders the directory listing with the cursor row
// highlighted.
func (m Model) browserView(height int) string {
	if m.browser.err != nil {
		return m.theme.StatusWarn.Render(m.browser.err.Error())
	}
	if len(m.browser.entries) == 0 {
		return "(empty)"
	}

	var b strings.Builder
	for i, e := range m.browser.entries {
		if i >= height {
			break
		}
		name := e.Name
		if e.IsDir {
			name += "/"
		}
		name = runewidth.Truncate(name, browserWidth-4, "…")
		line := "  " + name
		switch {
		case i == m.browser.cursor && m.focus == focusBrowser:
			line = m.theme.Cursor.Render("> " + name)
		case e.IsDir:
			line = m.theme.BrowserDir.Render(line)
		default:
			line = m.theme.BrowserFile.Render(line)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

// statusLine is the one-line status bar, replaced by the dialog prompt
// while a dialog is open.
func (m Model) statusLine() string {
	if m.dialog != nil {
		prompt := m.theme.ControlLabel.Render(m.dialog.title) + " "
		if m.dialog.confirm {
			return prompt
		}
		return prompt + m.dialog.input.View() + "  (enter: ok, esc: cancel)"
	}

	var icon, text string
	switch m.statusLevel {
	case statusError:
		icon = m.theme.StatusError.Render("✗")
		text = m.theme.StatusError.Render(m.status)
	case statusWarn:
		icon = m.theme.StatusWarn.Render("⚠")
		text = m.theme.StatusWarn.Render(m.status)
	default:
		icon = m.theme.StatusOK.Render("✓")
		text = m.status
	}
	backend := m.theme.ControlLabel.Render("backend:") + " " + m.current().Label
	return fmt.Sprintf(" %s %s  │  %s", icon, text, backend)
}

func (m Model) helpLine() string {
	bindings := []string{
		m.keys.Parse.Help().Key + " " + m.keys.Parse.Help().Desc,
		m.keys.CycleBackend.Help().Key + " " + m.keys.CycleBackend.Help().Desc,
		m.keys.ToggleView.Help().Key + " " + m.keys.ToggleView.Help().Desc,
		m.keys.NextPane.Help().Key + " " + m.keys.NextPane.Help().Desc,
		m.keys.SaveSource.Help().Key + " " + m.keys.SaveSource.Help().Desc,
		m.keys.SaveTemplate.Help().Key + " " + m.keys.SaveTemplate.Help().Desc,
		m.keys.Quit.Help().Key + " " + m.keys.Quit.Help().Desc,
	}
	if m.focus == focusBrowser {
		bindings = append(bindings,
			m.keys.NewFile.Help().Key+" "+m.keys.NewFile.Help().Desc,
			m.keys.Rename.Help().Key+" "+m.keys.Rename.Help().Desc,
			m.keys.Delete.Help().Key+" "+m.keys.Delete.Help().Desc,
		)
	}
	line := " " + strings.Join(bindings, " · ")
	return runewidth.Truncate(line, m.width, "…")
}
