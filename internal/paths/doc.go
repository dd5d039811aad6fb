// Package paths provides path resolution for syncopener: the XDG location of
// the tool's own settings and discovery of a workspace root from a file path.
//
// # XDG Base Directory Compliance
//
// The package wraps github.com/adrg/xdg. On Linux settings live in
// ~/.config/syncopener/, on macOS in ~/Library/Application Support/syncopener/.
//
// # Workspace Discovery
//
// [FindUp] walks from a file toward the filesystem root and returns the first
// directory holding one of the given marker names. The CLI uses it with the
// pairs file names, then ".git", when --workspace is not given:
//
//	root, err := paths.FindUp(file, ".syncopener", ".git")
package paths
