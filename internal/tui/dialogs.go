package tui

import (
	"github.com/charmbracelet/bubbles/textinput"
)

// dialogKind enumerates the modal prompts.
type dialogKind int

const (
	dialogSaveSource dialogKind = iota
	dialogSaveTemplate
	dialogNewFile
	dialogNewDir
	dialogRename
	dialogConfirmDelete
)

// dialog is a modal input or confirmation. While open it captures all
// key input.
type dialog struct {
	kind    dialogKind
	title   string
	input   textinput.Model
	confirm bool   // confirmation dialog instead of text input
	target  string // path the dialog acts on (rename/delete)
}

func newInputDialog(kind dialogKind, title, placeholder, initial string) *dialog {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.SetValue(initial)
	ti.CursorEnd()
	ti.Focus()
	return &dialog{kind: kind, title: title, input: ti}
}

func newConfirmDialog(title, target string) *dialog {
	return &dialog{kind: dialogConfirmDelete, title: title, confirm: true, target: target}
}

func (d *dialog) value() string {
	return d.input.Value()
}
