package token

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFileStore_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session", "token")
	s, err := NewFileStore(path)
	require.NoError(t, err)

	_, ok := s.Get()
	require.False(t, ok, "fresh store must be empty")

	require.NoError(t, s.Set("tok-123"))
	got, ok := s.Get()
	require.True(t, ok)
	require.Equal(t, "tok-123", got)

	// overwrite
	require.NoError(t, s.Set("tok-456"))
	got, ok = s.Get()
	require.True(t, ok)
	require.Equal(t, "tok-456", got)

	require.NoError(t, s.Clear())
	_, ok = s.Get()
	require.False(t, ok)
}

func TestFileStore_ClearIdempotent(t *testing.T) {
	s, err := NewFileStore(filepath.Join(t.TempDir(), "token"))
	require.NoError(t, err)

	require.NoError(t, s.Clear())
	require.NoError(t, s.Clear())

	require.NoError(t, s.Set("t"))
	require.NoError(t, s.Clear())
	require.NoError(t, s.Clear())
}

func TestFileStore_Permissions(t *testing.T) {
	path := filepath.Join(t.TempDir(), "token")
	s, err := NewFileStore(path)
	require.NoError(t, err)
	require.NoError(t, s.Set("secret"))

	info, err := os.Stat(path)
	require.NoError(t, err)
	require.Equal(t, os.FileMode(0o600), info.Mode().Perm())
}

func TestFileStore_EmptyPath(t *testing.T) {
	_, err := NewFileStore("")
	require.Error(t, err)
}

func TestFileStore_IgnoresSurroundingWhitespace(t *testing.T) {
	path := filepath.Join(t.TempDir(), "token")
	require.NoError(t, os.WriteFile(path, []byte("  tok \n"), 0o600))

	s, err := NewFileStore(path)
	require.NoError(t, err)
	got, ok := s.Get()
	require.True(t, ok)
	require.Equal(t, "tok", got)
}

func TestMemStore(t *testing.T) {
	s := NewMemStore()
	_, ok := s.Get()
	require.False(t, ok)

	require.NoError(t, s.Set("x"))
	got, ok := s.Get()
	require.True(t, ok)
	require.Equal(t, "x", got)

	require.NoError(t, s.Clear())
	_, ok = s.Get()
	require.False(t, ok)
}
