package tui

import (
	"path/filepath"

	"github.com/dkoosis/tpt/internal/workspace"
)

// browser is the file pane: a flat listing of one directory with a
// cursor, navigable into subdirectories and back up to the root.
type browser struct {
	ws      *workspace.Workspace
	dir     string
	entries []workspace.Entry
	cursor  int
	err     error
}

func newBrowser(ws *workspace.Workspace) browser {
	b := browser{ws: ws, dir: ws.Root()}
	b.reload()
	return b
}

// reload re-lists the current directory, clamping the cursor.
func (b *browser) reload() {
	entries, err := b.ws.List(b.dir)
	b.err = err
	b.entries = entries
	if b.cursor >= len(b.entries) {
		b.cursor = len(b.entries) - 1
	}
	if b.cursor < 0 {
		b.cursor = 0
	}
}

func (b *browser) moveUp() {
	if b.cursor > 0 {
		b.cursor--
	}
}

func (b *browser) moveDown() {
	if b.cursor < len(b.entries)-1 {
		b.cursor++
	}
}

// selected returns the entry under the cursor, if any.
func (b *browser) selected() (workspace.Entry, bool) {
	if len(b.entries) == 0 || b.cursor >= len(b.entries) {
		return workspace.Entry{}, false
	}
	return b.entries[b.cursor], true
}

// enter descends into the selected directory. File selection is the
// caller's concern.
func (b *browser) enter(e workspace.Entry) {
	if !e.IsDir {
		return
	}
	b.dir = e.Path
	b.cursor = 0
	b.reload()
}

// up ascends one directory, stopping at the workspace root.
func (b *browser) up() {
	if b.dir == b.ws.Root() {
		return
	}
	b.dir = filepath.Dir(b.dir)
	b.cursor = 0
	b.reload()
}

// targetDir is where new files and directories land: the selected
// directory, or the listing's directory otherwise.
func (b *browser) targetDir() string {
	if e, ok := b.selected(); ok && e.IsDir {
		return e.Path
	}
	return b.dir
}
