package paths

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"

	"github.com/thoreinstein/syncopener/internal/errors"
)

// AppName names the settings directory under the XDG config home.
const AppName = "syncopener"

// ErrNoWorkspace indicates no marker was found above a path.
var ErrNoWorkspace = errors.New("no workspace root found")

// ConfigHome returns the XDG config home directory.
// On Linux: ~/.config
// On macOS: ~/Library/Application Support
// On Windows: %LOCALAPPDATA%
func ConfigHome() string {
	return xdg.ConfigHome
}

// ConfigDir returns <ConfigHome>/syncopener.
func ConfigDir() string {
	return filepath.Join(ConfigHome(), AppName)
}

// FindUp returns the nearest directory at or above start that contains any
// of markers. If start is a file its directory is the first candidate.
func FindUp(start string, markers ...string) (string, error) {
	abs, err := filepath.Abs(start)
	if err != nil {
		return "", errors.Wrapf(err, "resolving %s", start)
	}

	dir := abs
	if info, err := os.Stat(abs); err != nil || !info.IsDir() {
		dir = filepath.Dir(abs)
	}

	for {
		for _, m := range markers {
			if _, err := os.Stat(filepath.Join(dir, m)); err == nil {
				return dir, nil
			}
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", errors.Wrapf(ErrNoWorkspace, "searching above %s", abs)
		}
		dir = parent
	}
}

// Rel returns target relative to root with forward slashes, and false when
// target is not inside root.
func Rel(root, target string) (string, bool) {
	rel, err := filepath.Rel(root, target)
	if err != nil {
		return "", false
	}
	rel = filepath.ToSlash(rel)
	if rel == ".." || strings.HasPrefix(rel, "../") {
		return "", false
	}
	return rel, true
}

// Segments splits a slash or OS separated path into its non-empty,
// non-"." segments.
func Segments(p string) []string {
	p = filepath.ToSlash(p)
	parts := strings.Split(p, "/")
	out := parts[:0]
	for _, s := range parts {
		if s == "" || s == "." {
			continue
		}
		out = append(out, s)
	}
	return out
}

// HasSegmentPrefix reports whether the first segments of p equal prefix.
func HasSegmentPrefix(p, prefix []string) bool {
	if len(prefix) > len(p) {
		return false
	}
	for i := range prefix {
		if p[i] != prefix[i] {
			return false
		}
	}
	return true
}
