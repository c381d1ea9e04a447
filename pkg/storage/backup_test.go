package storage

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateSnapshotDir(t *testing.T) {
	store, err := NewBackupStorage(filepath.Join(t.TempDir(), "backups"))
	require.NoError(t, err)

	ts := time.Date(2024, 1, 15, 14, 30, 22, 0, time.UTC)
	dir, err := store.CreateSnapshotDir(ts)
	require.NoError(t, err)

	assert.Equal(t, "backup_20240115_143022", filepath.Base(dir))
	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestSizeSumsRegularFiles(t *testing.T) {
	base := t.TempDir()
	store, err := NewBackupStorage(base)
	require.NoError(t, err)

	dir := filepath.Join(base, "backup_x")
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "nested"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.csv"), []byte("12345"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "nested", "b.csv"), []byte("123"), 0o644))

	size, err := store.Size(dir)
	require.NoError(t, err)
	assert.Equal(t, int64(8), size)
}

func TestTreeRespectsDepth(t *testing.T) {
	base := t.TempDir()
	store, err := NewBackupStorage(base)
	require.NoError(t, err)

	dir := filepath.Join(base, "backup_x")
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "nested"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.csv"), []byte("12345"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "nested", "b.csv"), []byte("123"), 0o644))

	lines, err := store.Tree(dir, 1)
	require.NoError(t, err)
	assert.Contains(t, lines, "[FILE] a.csv (5 bytes)")
	assert.Contains(t, lines, "[DIR] nested")
	assert.Contains(t, lines, "  [FILE] b.csv (3 bytes)")

	shallow, err := store.Tree(dir, 0)
	require.NoError(t, err)
	assert.NotContains(t, shallow, "  [FILE] b.csv (3 bytes)", "depth 0 stops at the top level")
}
