package doctor

import (
	"io/fs"
	"path/filepath"
	"slices"
	"strings"

	"github.com/thoreinstein/syncopener/internal/pairs"
	"github.com/thoreinstein/syncopener/internal/paths"
	"github.com/thoreinstein/syncopener/internal/resolve"
)

// skipDirs are never descended into when listing files.
var skipDirs = []string{"node_modules", "vendor", "dist", "build"}

// Workspace is the state shared by the checks of one doctor run.
type Workspace struct {
	Root     string
	Config   *pairs.Config
	LoadErr  error
	Resolver *resolve.Resolver

	files map[string][]string
}

// NewWorkspace loads the pairs file of root.
func NewWorkspace(root string, r *resolve.Resolver) *Workspace {
	cfg, err := pairs.Load(root)
	return &Workspace{
		Root:     root,
		Config:   cfg,
		LoadErr:  err,
		Resolver: r,
		files:    make(map[string][]string),
	}
}

// pairList returns the loaded pairs, or nil.
func (w *Workspace) pairList() []pairs.Pair {
	if w.Config == nil {
		return nil
	}
	return w.Config.Pairs
}

// Files lists the synced files under the workspace-relative dir, sorted.
// A missing directory yields no files.
func (w *Workspace) Files(dir string) []string {
	key := filepath.ToSlash(filepath.Clean(dir))
	if files, ok := w.files[key]; ok {
		return files
	}

	var files []string
	base := filepath.Join(w.Root, filepath.FromSlash(dir))
	_ = filepath.WalkDir(base, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if path == base {
				return err
			}
			return nil
		}
		if d.IsDir() {
			name := d.Name()
			if path != base && (strings.HasPrefix(name, ".") || slices.Contains(skipDirs, name)) {
				return filepath.SkipDir
			}
			return nil
		}
		if !d.Type().IsRegular() {
			return nil
		}
		if w.Resolver.Supported(path) && !w.Resolver.Excluded(w.Root, path) {
			files = append(files, path)
		}
		return nil
	})

	slices.Sort(files)
	w.files[key] = files
	return files
}

// rel shows path relative to the workspace root.
func (w *Workspace) rel(path string) string {
	if r, ok := paths.Rel(w.Root, path); ok {
		return r
	}
	return path
}

// sample returns at most n workspace-relative paths.
func (w *Workspace) sample(files []string, n int) []string {
	out := make([]string, 0, min(len(files), n))
	for _, f := range files[:min(len(files), n)] {
		out = append(out, w.rel(f))
	}
	return out
}
