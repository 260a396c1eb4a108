package workspace

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newWS(t *testing.T) *Workspace {
	t.Helper()
	ws, err := New(t.TempDir(), func(name string) bool {
		return filepath.Ext(name) != ".bin"
	})
	require.NoError(t, err)
	return ws
}

func TestNew_RejectsNonDirectory(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	file := filepath.Join(dir, "f.txt")
	require.NoError(t, os.WriteFile(file, nil, 0o644))

	_, err := New(file, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not a directory")
}

func TestList_FiltersAndOrders(t *testing.T) {
	t.Parallel()

	ws := newWS(t)
	root := ws.Root()
	require.NoError(t, os.Mkdir(filepath.Join(root, "zdir"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(root, "b.txt"), nil, 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(root, "a.bin"), nil, 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(root, ".hidden"), nil, 0o644))

	entries, err := ws.List(root)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "zdir", entries[0].Name, "directories sort first")
	assert.True(t, entries[0].IsDir)
	assert.Equal(t, "b.txt", entries[1].Name)
}

func TestSaveAndRead_RoundTrip(t *testing.T) {
	t.Parallel()

	ws := newWS(t)
	path := filepath.Join(ws.Root(), "sub", "tpl.textfsm")

	require.NoError(t, ws.Save(path, "Value X (\\S+)\n"))
	content, err := ws.Read(path)
	require.NoError(t, err)
	assert.Equal(t, "Value X (\\S+)\n", content)
}

func TestCreateFile_RefusesExisting(t *testing.T) {
	t.Parallel()

	ws := newWS(t)
	_, err := ws.CreateFile(ws.Root(), "new.txt")
	require.NoError(t, err)

	_, err = ws.CreateFile(ws.Root(), "new.txt")
	assert.Error(t, err)
}

func TestRename_RefusesCollision(t *testing.T) {
	t.Parallel()

	ws := newWS(t)
	a, err := ws.CreateFile(ws.Root(), "a.txt")
	require.NoError(t, err)
	_, err = ws.CreateFile(ws.Root(), "b.txt")
	require.NoError(t, err)

	_, err = ws.Rename(a, "b.txt")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")

	target, err := ws.Rename(a, "c.txt")
	require.NoError(t, err)
	assert.FileExists(t, target)
}

func TestDelete_EmptyDirOnly(t *testing.T) {
	t.Parallel()

	ws := newWS(t)
	dir, err := ws.CreateDir(ws.Root(), "d")
	require.NoError(t, err)
	_, err = ws.CreateFile(dir, "inner.txt")
	require.NoError(t, err)

	err = ws.Delete(dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not empty")

	require.NoError(t, ws.Delete(filepath.Join(dir, "inner.txt")))
	require.NoError(t, ws.Delete(dir))
	assert.NoDirExists(t, dir)
}

func TestPaneFor_RoutesByExtension(t *testing.T) {
	t.Parallel()

	assert.Equal(t, TemplatePane, PaneFor("x/y/tpl.textfsm"))
	assert.Equal(t, TemplatePane, PaneFor("rules.TTP"))
	assert.Equal(t, TemplatePane, PaneFor("t.tpl"))
	assert.Equal(t, SourcePane, PaneFor("show_version.txt"))
	assert.Equal(t, SourcePane, PaneFor("noext"))
}
