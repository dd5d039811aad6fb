// Package editor opens documents by launching an external editor command.
package editor

import (
	"context"
	"io"
	"os"
	"os/exec"
	"strings"

	"github.com/thoreinstein/syncopener/internal/errors"
	"github.com/thoreinstein/syncopener/internal/logging"
	"github.com/thoreinstein/syncopener/internal/opener"
)

// Launcher implements opener.Editor for a terminal session. It knows the
// workspace root it was created with and nothing about views, so every
// counterpart is opened by running the editor command.
type Launcher struct {
	root    string
	command []string
	active  string

	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// NewLauncher returns a Launcher for root. command is the editor command
// line; when empty it is detected from the environment.
func NewLauncher(root, command string) *Launcher {
	args := strings.Fields(command)
	if len(args) == 0 {
		args = []string{Detect()}
	}
	return &Launcher{
		root:    root,
		command: args,
		Stdin:   os.Stdin,
		Stdout:  os.Stdout,
		Stderr:  os.Stderr,
	}
}

// Command returns the editor command line.
func (l *Launcher) Command() []string {
	return l.command
}

// SetActive records the document the user is working in.
func (l *Launcher) SetActive(path string) {
	l.active = path
}

func (l *Launcher) WorkspaceRoot(context.Context) (string, error) {
	return l.root, nil
}

// ActiveDocument returns the document set with SetActive. Its slot is
// empty because a launched editor has no observable views.
func (l *Launcher) ActiveDocument(context.Context) (opener.View, error) {
	return opener.View{Path: l.active}, nil
}

// VisibleDocuments always reports nothing; a launched editor is not observable.
func (l *Launcher) VisibleDocuments(context.Context) ([]opener.View, error) {
	return nil, nil
}

// Open runs the editor command with path appended. The slot is ignored.
func (l *Launcher) Open(ctx context.Context, path string, _ opener.Slot) error {
	if _, err := os.Stat(path); err != nil {
		return errors.Wrapf(err, "opening %s", path)
	}

	args := append(l.command[1:len(l.command):len(l.command)], path)
	logging.FromContext(ctx).Debug("launching editor", "command", l.command[0], "args", args)

	cmd := exec.CommandContext(ctx, l.command[0], args...)
	cmd.Stdin = l.Stdin
	cmd.Stdout = l.Stdout
	cmd.Stderr = l.Stderr

	if err := cmd.Run(); err != nil {
		return errors.Wrapf(err, "running editor %s", l.command[0])
	}
	return nil
}

// Show has nothing to focus; a launched editor manages its own windows.
func (l *Launcher) Show(context.Context, opener.View) error {
	return nil
}

// Detect returns the editor command to use based on environment variables
// and available binaries. Fallback chain: $VISUAL → $EDITOR → code → nano → vi
func Detect() string {
	if visual := os.Getenv("VISUAL"); visual != "" {
		return visual
	}
	if editor := os.Getenv("EDITOR"); editor != "" {
		return editor
	}

	// Counterparts are meant to sit side by side, which needs a GUI editor.
	for _, name := range []string{"code", "nano"} {
		if _, err := exec.LookPath(name); err == nil {
			return name
		}
	}

	// POSIX standard fallback (vi is available on all Unix systems)
	return "vi"
}
