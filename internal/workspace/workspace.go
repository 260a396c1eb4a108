// Package workspace wraps the file operations the interactive surface
// needs: listing a project tree filtered to text-ish files, loading
// panes, saving edits, and creating/renaming/deleting entries. All
// paths stay under the chosen root; failures surface as errors for the
// status bar, never as process exits.
package workspace

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/dkoosis/tpt/pkg/backend"
)

// Entry is one listed file or directory.
type Entry struct {
	Name  string
	Path  string
	IsDir bool
}

// Filter decides which file names the listing shows.
type Filter func(name string) bool

// Workspace is rooted at one project directory.
type Workspace struct {
	root   string
	filter Filter
}

// New opens a workspace rooted at dir. The filter may be nil to show
// every file.
func New(dir string, filter Filter) (*Workspace, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, err
	}
	info, err := os.Stat(abs)
	if err != nil {
		return nil, err
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("not a directory: %s", abs)
	}
	return &Workspace{root: abs, filter: filter}, nil
}

// Root returns the absolute workspace root.
func (w *Workspace) Root() string {
	return w.root
}

// List returns the entries of dir (absolute path), directories first,
// each group sorted by name. Files are filtered; dot files are hidden.
func (w *Workspace) List(dir string) ([]Entry, error) {
	items, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	var dirs, files []Entry
	for _, item := range items {
		name := item.Name()
		if strings.HasPrefix(name, ".") {
			continue
		}
		e := Entry{Name: name, Path: filepath.Join(dir, name), IsDir: item.IsDir()}
		if e.IsDir {
			dirs = append(dirs, e)
			continue
		}
		if w.filter == nil || w.filter(name) {
			files = append(files, e)
		}
	}
	sort.Slice(dirs, func(i, j int) bool { return dirs[i].Name < dirs[j].Name })
	sort.Slice(files, func(i, j int) bool { return files[i].Name < files[j].Name })
	return append(dirs, files...), nil
}

// Read loads a file's content.
func (w *Workspace) Read(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// Save writes content to path, creating parent directories as needed.
func (w *Workspace) Save(path, content string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(path, []byte(content), 0o644)
}

// CreateFile creates an empty file under parent.
func (w *Workspace) CreateFile(parent, name string) (string, error) {
	path := filepath.Join(parent, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return "", err
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0o644)
	if err != nil {
		return "", err
	}
	return path, f.Close()
}

// CreateDir creates a directory under parent.
func (w *Workspace) CreateDir(parent, name string) (string, error) {
	path := filepath.Join(parent, name)
	return path, os.MkdirAll(path, 0o755)
}

// Rename renames path to newName within its directory. The target must
// not already exist.
func (w *Workspace) Rename(path, newName string) (string, error) {
	target := filepath.Join(filepath.Dir(path), newName)
	if _, err := os.Stat(target); err == nil {
		return "", fmt.Errorf("already exists: %s", newName)
	}
	return target, os.Rename(path, target)
}

// Delete removes a file, or a directory if it is empty.
func (w *Workspace) Delete(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return err
	}
	if !info.IsDir() {
		return os.Remove(path)
	}
	items, err := os.ReadDir(path)
	if err != nil {
		return err
	}
	if len(items) > 0 {
		return fmt.Errorf("directory not empty: %s", filepath.Base(path))
	}
	return os.Remove(path)
}

// Pane identifies which editor pane a loaded file belongs in.
type Pane int

const (
	SourcePane Pane = iota
	TemplatePane
)

// PaneFor routes a file to an editor pane by extension: template
// suffixes go to the template pane, everything else is source text.
func PaneFor(path string) Pane {
	if backend.IsTemplateExt(strings.ToLower(filepath.Ext(path))) {
		return TemplatePane
	}
	return SourcePane
}
