package backup

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestManager(t *testing.T, opts ...Option) *Manager {
	t.Helper()
	m := NewManager(append([]Option{WithBackupDir(t.TempDir())}, opts...)...)
	clock := time.Date(2026, 1, 23, 10, 7, 12, 0, time.UTC)
	m.now = func() time.Time {
		clock = clock.Add(time.Second)
		return clock
	}
	return m
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
}

func TestBackupAndRestore(t *testing.T) {
	m := newTestManager(t)
	ws := t.TempDir()
	pairsFile := filepath.Join(ws, ".syncopener")
	writeFile(t, pairsFile, `[{"directory1":{"path":"a"},"directory2":{"path":"b"}}]`)

	manifest, err := m.Backup(ws, "init --force", []string{pairsFile, filepath.Join(ws, "missing.yaml")})
	require.NoError(t, err)
	require.Len(t, manifest.Files, 1)
	assert.Equal(t, "20260123T100713", manifest.ID)
	assert.Equal(t, ".syncopener", manifest.Files[0].RelPath)
	assert.Equal(t, os.FileMode(0o600), manifest.Files[0].Mode)
	assert.Equal(t, "init --force", manifest.Reason)

	require.NoError(t, os.Remove(pairsFile))
	require.NoError(t, m.Restore(ws, manifest.ID))

	data, err := os.ReadFile(pairsFile)
	require.NoError(t, err)
	assert.Contains(t, string(data), "directory1")
	info, err := os.Stat(pairsFile)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
}

func TestBackup_SameSecond(t *testing.T) {
	m := newTestManager(t)
	m.now = func() time.Time { return time.Date(2026, 1, 23, 10, 7, 12, 0, time.UTC) }
	ws := t.TempDir()
	src := filepath.Join(ws, ".syncopener")
	writeFile(t, src, "[]")

	first, err := m.Backup(ws, "", []string{src})
	require.NoError(t, err)
	second, err := m.Backup(ws, "", []string{src})
	require.NoError(t, err)

	assert.NotEqual(t, first.ID, second.ID)
	assert.Equal(t, first.ID+"-1", second.ID)

	latest, err := m.Latest(ws)
	require.NoError(t, err)
	assert.Equal(t, second.ID, latest.ID)
}

func TestBackup_Errors(t *testing.T) {
	m := newTestManager(t)
	ws := t.TempDir()

	_, err := m.Backup("", "", []string{"x"})
	assert.Error(t, err)

	_, err = m.Backup(ws, "", nil)
	assert.Error(t, err)

	_, err = m.Backup(ws, "", []string{filepath.Join(ws, "absent")})
	assert.Error(t, err)

	_, err = m.List(ws)
	assert.ErrorIs(t, err, ErrNoBackupsFound, "a failed backup leaves nothing behind")
}

func TestList_NewestFirstAndPerWorkspace(t *testing.T) {
	m := newTestManager(t)
	ws1, ws2 := t.TempDir(), t.TempDir()
	src1 := filepath.Join(ws1, ".syncopener")
	src2 := filepath.Join(ws2, ".syncopener.yaml")
	writeFile(t, src1, "[]")
	writeFile(t, src2, "[]")

	var ids []string
	for range 3 {
		mf, err := m.Backup(ws1, "", []string{src1})
		require.NoError(t, err)
		ids = append(ids, mf.ID)
	}
	_, err := m.Backup(ws2, "", []string{src2})
	require.NoError(t, err)

	list, err := m.List(ws1)
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, ids[2], list[0].ID)
	assert.Equal(t, ids[0], list[2].ID)

	list, err = m.List(ws2)
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestBackup_Retention(t *testing.T) {
	m := newTestManager(t, WithRetentionCount(2))
	ws := t.TempDir()
	src := filepath.Join(ws, ".syncopener")
	writeFile(t, src, "[]")

	var last string
	for range 4 {
		mf, err := m.Backup(ws, "", []string{src})
		require.NoError(t, err)
		last = mf.ID
	}

	list, err := m.List(ws)
	require.NoError(t, err)
	assert.Len(t, list, 4, "Backup alone never prunes")

	require.NoError(t, m.Retain(ws))

	list, err = m.List(ws)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, last, list[0].ID)
}

func TestPrune(t *testing.T) {
	m := newTestManager(t)
	ws := t.TempDir()

	assert.NoError(t, m.Prune(ws, 1), "nothing to prune")
	assert.Error(t, m.Prune(ws, -1))
}

func TestRestore_Corrupted(t *testing.T) {
	m := newTestManager(t)
	ws := t.TempDir()
	src := filepath.Join(ws, ".syncopener")
	writeFile(t, src, "[]")

	mf, err := m.Backup(ws, "", []string{src})
	require.NoError(t, err)

	copyPath := filepath.Join(m.backupPath(ws, mf.ID), ".syncopener")
	require.NoError(t, os.WriteFile(copyPath, []byte("tampered"), 0o600))
	writeFile(t, src, "current")

	err = m.Restore(ws, mf.ID)
	assert.ErrorIs(t, err, ErrBackupCorrupted)

	data, err := os.ReadFile(src)
	require.NoError(t, err)
	assert.Equal(t, "current", string(data), "workspace untouched on a failed restore")
}

func TestGet(t *testing.T) {
	m := newTestManager(t)
	ws := t.TempDir()
	src := filepath.Join(ws, ".syncopener")
	writeFile(t, src, "[]")

	mf, err := m.Backup(ws, "", []string{src})
	require.NoError(t, err)

	got, err := m.Get(ws, mf.ID)
	require.NoError(t, err)
	assert.Equal(t, mf.ID, got.ID)
	assert.Equal(t, ManifestVersion, got.Version)

	raw, err := os.ReadFile(filepath.Join(m.backupPath(ws, mf.ID), manifestName))
	require.NoError(t, err)
	var fields map[string]any
	require.NoError(t, json.Unmarshal(raw, &fields))
	assert.Contains(t, fields, "syncopener_version")
	assert.NotContains(t, fields, "ID")

	_, err = m.Get(ws, "")
	assert.Error(t, err)
	_, err = m.Get(ws, "../escape")
	assert.Error(t, err)
	_, err = m.Get(ws, "20000101T000000")
	assert.ErrorIs(t, err, ErrNoBackupsFound)
}

func TestRelPath(t *testing.T) {
	ws := filepath.Join(string(filepath.Separator), "work")
	assert.Equal(t, ".syncopener", relPath(ws, filepath.Join(ws, ".syncopener")))
	assert.Equal(t, filepath.Join("nested", "x.yaml"), relPath(ws, filepath.Join(ws, "nested", "x.yaml")))
	assert.Equal(t, "x.yaml", relPath(ws, filepath.Join(string(filepath.Separator), "other", "x.yaml")))
}

func TestCompareIDs(t *testing.T) {
	assert.Negative(t, compareIDs("20260123T100712", "20260123T100712-1"))
	assert.Negative(t, compareIDs("20260123T100712-1", "20260123T100712-2"))
	assert.Positive(t, compareIDs("20260123T100713", "20260123T100712"))
	assert.Zero(t, compareIDs("a", "a"))
}
