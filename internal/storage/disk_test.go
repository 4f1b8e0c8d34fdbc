package storage

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiskStore_SaveProjectFile(t *testing.T) {
	store, err := NewDiskStore(t.TempDir())
	require.NoError(t, err)

	url, err := store.SaveProjectFile("proj-1", "facade.jpg", bytes.NewReader([]byte("jpeg bytes")))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(url, "/uploads/projects/proj-1/"))
	assert.True(t, strings.HasSuffix(url, "_facade.jpg"))

	rel := strings.TrimPrefix(url, "/uploads/")
	data, err := os.ReadFile(filepath.Join(store.Root(), filepath.FromSlash(rel)))
	require.NoError(t, err)
	assert.Equal(t, []byte("jpeg bytes"), data)
}

func TestDiskStore_SameNameNoCollision(t *testing.T) {
	store, err := NewDiskStore(t.TempDir())
	require.NoError(t, err)

	url1, err := store.SaveProjectFile("proj-1", "site.png", bytes.NewReader([]byte("first")))
	require.NoError(t, err)
	url2, err := store.SaveProjectFile("proj-1", "site.png", bytes.NewReader([]byte("second")))
	require.NoError(t, err)

	assert.NotEqual(t, url1, url2)

	entries, err := os.ReadDir(filepath.Join(store.Root(), "projects", "proj-1"))
	require.NoError(t, err)
	assert.Len(t, entries, 2)
}

func TestDiskStore_TraversalSafeNames(t *testing.T) {
	store, err := NewDiskStore(t.TempDir())
	require.NoError(t, err)

	tests := []struct {
		name     string
		filename string
	}{
		{name: "relative traversal", filename: "../../evil.png"},
		{name: "absolute path", filename: "/etc/passwd"},
		{name: "windows separators", filename: `..\..\evil.png`},
		{name: "empty name", filename: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			url, err := store.SaveProjectFile("proj-1", tt.filename, bytes.NewReader([]byte("data")))
			require.NoError(t, err)

			// The stored file must land inside the project directory.
			rel := strings.TrimPrefix(url, "/uploads/")
			path := filepath.Join(store.Root(), filepath.FromSlash(rel))
			assert.True(t, strings.HasPrefix(path, filepath.Join(store.Root(), "projects", "proj-1")+string(os.PathSeparator)))
			_, err = os.Stat(path)
			assert.NoError(t, err)
		})
	}
}

func TestDiskStore_RemoveFile(t *testing.T) {
	store, err := NewDiskStore(t.TempDir())
	require.NoError(t, err)

	url, err := store.SaveProjectFile("proj-1", "facade.jpg", bytes.NewReader([]byte("jpeg bytes")))
	require.NoError(t, err)

	require.NoError(t, store.RemoveFile(url))

	rel := strings.TrimPrefix(url, "/uploads/")
	_, err = os.Stat(filepath.Join(store.Root(), filepath.FromSlash(rel)))
	assert.True(t, os.IsNotExist(err))

	// Deleting again reports the missing file.
	assert.Error(t, store.RemoveFile(url))
}

func TestDiskStore_RemoveFileRefusesEscapes(t *testing.T) {
	store, err := NewDiskStore(t.TempDir())
	require.NoError(t, err)

	err = store.RemoveFile("/uploads/../../../etc/passwd")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "escapes upload root")
}
