package backup

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"time"

	"github.com/cockroachdb/errors"

	"github.com/thoreinstein/syncopener/internal/paths"
	"github.com/thoreinstein/syncopener/pkg/fileutil"
)

// Version is set at build time via ldflags.
var Version = "dev"

const (
	manifestName = "manifest.json"
	idLayout     = "20060102T150405"
)

// Dir returns the default backup directory.
func Dir() string {
	return filepath.Join(paths.ConfigDir(), "backups")
}

// Manager creates, lists and restores backups.
type Manager struct {
	rootDir        string
	retentionCount int
	now            func() time.Time
}

// Option configures a Manager.
type Option func(*Manager)

// WithBackupDir sets the root backup directory.
func WithBackupDir(dir string) Option {
	return func(m *Manager) {
		m.rootDir = dir
	}
}

// WithRetentionCount sets the number of backups kept per workspace.
func WithRetentionCount(n int) Option {
	return func(m *Manager) {
		if n > 0 {
			m.retentionCount = n
		}
	}
}

// NewManager creates a Manager with the given options.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		rootDir:        Dir(),
		retentionCount: DefaultRetentionCount,
		now:            time.Now,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Backup copies files of workspace into a new backup. Files that do not
// exist are skipped. Old backups are kept until Retain is called.
func (m *Manager) Backup(workspace, reason string, files []string) (*Manifest, error) {
	if workspace == "" {
		return nil, errors.New("workspace is required")
	}
	if len(files) == 0 {
		return nil, errors.New("at least one file is required")
	}

	created := m.now()
	id, err := m.newID(workspace, created)
	if err != nil {
		return nil, err
	}
	dir := m.backupPath(workspace, id)

	var copied []File
	for _, src := range files {
		info, err := os.Stat(src)
		if err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return nil, errors.Wrapf(err, "stat %s", src)
		}
		if info.IsDir() {
			return nil, errors.Newf("%s is a directory", src)
		}

		rel := relPath(workspace, src)
		dst := filepath.Join(dir, rel)
		if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
			return nil, errors.Wrap(err, "creating backup directory")
		}
		hash, mode, err := copyFile(src, dst)
		if err != nil {
			return nil, errors.Wrapf(err, "backing up %s", src)
		}
		abs, _ := filepath.Abs(src)
		copied = append(copied, File{OriginalPath: abs, RelPath: filepath.ToSlash(rel), SHA256Hash: hash, Mode: mode})
	}

	if len(copied) == 0 {
		os.RemoveAll(dir)
		return nil, errors.New("no files to back up")
	}

	manifest := &Manifest{
		Version:     ManifestVersion,
		CreatedAt:   created.UTC(),
		Workspace:   workspace,
		Reason:      reason,
		Files:       copied,
		ToolVersion: Version,
		ID:          id,
	}
	data, err := json.MarshalIndent(manifest, "", "  ")
	if err != nil {
		return nil, errors.Wrap(err, "encoding manifest")
	}
	if err := fileutil.AtomicWriteFile(filepath.Join(dir, manifestName), append(data, '\n'), 0o644); err != nil {
		return nil, errors.Wrap(err, "writing manifest")
	}
	return manifest, nil
}

// newID returns a timestamp ID that is not yet taken. Backups created
// within the same second get a numeric suffix.
func (m *Manager) newID(workspace string, t time.Time) (string, error) {
	base := t.Format(idLayout)
	id := base
	for n := 1; ; n++ {
		err := os.MkdirAll(m.workspaceDir(workspace), 0o755)
		if err != nil {
			return "", errors.Wrap(err, "creating backup directory")
		}
		err = os.Mkdir(m.backupPath(workspace, id), 0o755)
		if err == nil {
			return id, nil
		}
		if !os.IsExist(err) {
			return "", errors.Wrap(err, "creating backup directory")
		}
		id = fmt.Sprintf("%s-%d", base, n)
	}
}

// Restore copies the files of a backup back to their original paths after
// verifying their hashes.
func (m *Manager) Restore(workspace, id string) error {
	manifest, err := m.Get(workspace, id)
	if err != nil {
		return err
	}
	dir := m.backupPath(workspace, id)

	// Verify everything before touching the workspace.
	for _, f := range manifest.Files {
		hash, err := hashFile(filepath.Join(dir, filepath.FromSlash(f.RelPath)))
		if err != nil {
			return errors.Wrapf(err, "reading backup file %s", f.RelPath)
		}
		if hash != f.SHA256Hash {
			return errors.Wrapf(ErrBackupCorrupted, "file %s hash mismatch", f.RelPath)
		}
	}

	for _, f := range manifest.Files {
		src := filepath.Join(dir, filepath.FromSlash(f.RelPath))
		if err := os.MkdirAll(filepath.Dir(f.OriginalPath), 0o755); err != nil {
			return errors.Wrapf(err, "creating directory for %s", f.OriginalPath)
		}
		if _, _, err := copyFile(src, f.OriginalPath); err != nil {
			return errors.Wrapf(err, "restoring %s", f.OriginalPath)
		}
		if err := os.Chmod(f.OriginalPath, f.Mode); err != nil {
			return errors.Wrapf(err, "setting permissions for %s", f.OriginalPath)
		}
	}
	return nil
}

// List returns the backups of workspace, newest first.
func (m *Manager) List(workspace string) ([]Manifest, error) {
	entries, err := os.ReadDir(m.workspaceDir(workspace))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrNoBackupsFound
		}
		return nil, errors.Wrap(err, "reading backup directory")
	}

	manifests := make([]Manifest, 0, len(entries))
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		manifest, err := m.Get(workspace, entry.Name())
		if err != nil {
			// Skip directories without a readable manifest
			continue
		}
		manifests = append(manifests, *manifest)
	}
	if len(manifests) == 0 {
		return nil, ErrNoBackupsFound
	}

	slices.SortFunc(manifests, func(a, b Manifest) int {
		if c := b.CreatedAt.Compare(a.CreatedAt); c != 0 {
			return c
		}
		return compareIDs(b.ID, a.ID)
	})
	return manifests, nil
}

// Latest returns the newest backup of workspace.
func (m *Manager) Latest(workspace string) (*Manifest, error) {
	manifests, err := m.List(workspace)
	if err != nil {
		return nil, err
	}
	return &manifests[0], nil
}

// Prune removes all but the newest keep backups of workspace.
func (m *Manager) Prune(workspace string, keep int) error {
	if keep < 0 {
		return errors.New("keep must be non-negative")
	}

	manifests, err := m.List(workspace)
	if err != nil {
		if errors.Is(err, ErrNoBackupsFound) {
			return nil
		}
		return err
	}

	for i := keep; i < len(manifests); i++ {
		if err := os.RemoveAll(m.backupPath(workspace, manifests[i].ID)); err != nil {
			return errors.Wrapf(err, "removing backup %s", manifests[i].ID)
		}
	}
	return nil
}

// Retain prunes the backups of workspace down to the retention count.
func (m *Manager) Retain(workspace string) error {
	return errors.Wrap(m.Prune(workspace, m.retentionCount), "pruning old backups")
}

// Get returns the manifest of one backup.
func (m *Manager) Get(workspace, id string) (*Manifest, error) {
	if id == "" {
		return nil, errors.New("backup ID is required")
	}
	if id != filepath.Base(id) {
		return nil, errors.Newf("invalid backup ID %q", id)
	}

	data, err := os.ReadFile(filepath.Join(m.backupPath(workspace, id), manifestName))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrapf(ErrNoBackupsFound, "backup %s not found", id)
		}
		return nil, errors.Wrap(err, "reading manifest")
	}

	var manifest Manifest
	if err := json.Unmarshal(data, &manifest); err != nil {
		return nil, errors.Wrap(err, "parsing manifest")
	}
	manifest.ID = id
	return &manifest, nil
}

func (m *Manager) backupPath(workspace, id string) string {
	return filepath.Join(m.workspaceDir(workspace), id)
}

// workspaceDir returns the backup directory of workspace, named by a
// short hash of its absolute path.
func (m *Manager) workspaceDir(workspace string) string {
	return filepath.Join(m.rootDir, workspaceKey(workspace))
}

func workspaceKey(workspace string) string {
	abs, err := filepath.Abs(workspace)
	if err != nil {
		abs = workspace
	}
	sum := sha256.Sum256([]byte(filepath.Clean(abs)))
	return filepath.Base(abs) + "-" + hex.EncodeToString(sum[:6])
}

// compareIDs orders "20260123T100712" before "20260123T100712-1" before
// "20260123T100712-2".
func compareIDs(a, b string) int {
	if len(a) != len(b) {
		return len(a) - len(b)
	}
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

// relPath returns where src is stored inside a backup: relative to the
// workspace when it lies inside it, and by base name otherwise.
func relPath(workspace, src string) string {
	if rel, ok := paths.Rel(workspace, src); ok {
		return filepath.FromSlash(rel)
	}
	return filepath.Base(src)
}

func hashFile(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", errors.Wrap(err, "opening file")
	}
	defer f.Close()

	h := sha256.New()
	if _, err := io.Copy(h, f); err != nil {
		return "", errors.Wrap(err, "reading file")
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}

// copyFile copies src to dst and returns the SHA256 of the contents and
// the source mode, which dst is given too.
func copyFile(src, dst string) (hash string, mode fs.FileMode, err error) {
	srcFile, err := os.Open(src)
	if err != nil {
		return "", 0, errors.Wrap(err, "opening source file")
	}
	defer srcFile.Close()

	srcInfo, err := srcFile.Stat()
	if err != nil {
		return "", 0, errors.Wrap(err, "stat source file")
	}
	mode = srcInfo.Mode().Perm()

	dstFile, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o644)
	if err != nil {
		return "", 0, errors.Wrap(err, "creating destination file")
	}

	h := sha256.New()
	if _, err := io.Copy(io.MultiWriter(dstFile, h), srcFile); err != nil {
		dstFile.Close()
		return "", 0, errors.Wrap(err, "copying file")
	}
	if err := dstFile.Close(); err != nil {
		return "", 0, errors.Wrap(err, "closing destination file")
	}
	if err := os.Chmod(dst, mode); err != nil {
		return "", 0, errors.Wrap(err, "setting permissions")
	}

	return hex.EncodeToString(h.Sum(nil)), mode, nil
}
