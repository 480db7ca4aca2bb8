package localstore

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFileStore_RoundTrip(t *testing.T) {
	dir := t.TempDir()

	s, err := NewFileStore(dir)
	require.NoError(t, err)

	_, ok := s.Get("token")
	require.False(t, ok)

	require.NoError(t, s.Set("token", "abc"))
	v, ok := s.Get("token")
	require.True(t, ok)
	require.Equal(t, "abc", v)
}

func TestFileStore_SurvivesRestart(t *testing.T) {
	dir := t.TempDir()

	s, err := NewFileStore(dir)
	require.NoError(t, err)
	require.NoError(t, s.Set("token", "abc"))
	require.NoError(t, s.Set("theme", "dark"))

	// Fresh store over the same directory sees the persisted values.
	s2, err := NewFileStore(dir)
	require.NoError(t, err)

	v, ok := s2.Get("token")
	require.True(t, ok)
	require.Equal(t, "abc", v)

	v, ok = s2.Get("theme")
	require.True(t, ok)
	require.Equal(t, "dark", v)
}

func TestFileStore_DeleteAndClear(t *testing.T) {
	dir := t.TempDir()

	s, err := NewFileStore(dir)
	require.NoError(t, err)
	require.NoError(t, s.Set("token", "abc"))
	require.NoError(t, s.Set("theme", "dark"))

	require.NoError(t, s.Delete("token"))
	_, ok := s.Get("token")
	require.False(t, ok)

	require.NoError(t, s.Clear())
	_, ok = s.Get("theme")
	require.False(t, ok)

	s2, err := NewFileStore(dir)
	require.NoError(t, err)
	_, ok = s2.Get("theme")
	require.False(t, ok)
}

func TestFileStore_FilePermissions(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("permission bits not meaningful on windows")
	}
	dir := t.TempDir()

	s, err := NewFileStore(dir)
	require.NoError(t, err)
	require.NoError(t, s.Set("token", "abc"))

	info, err := os.Stat(filepath.Join(dir, "state.json"))
	require.NoError(t, err)
	require.Equal(t, os.FileMode(0o600), info.Mode().Perm())
}

func TestFileStore_RejectsCorruptFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "state.json"), []byte("{not json"), 0o600))

	_, err := NewFileStore(dir)
	require.Error(t, err)
}
