package opener

import (
	"context"
)

// Slot names the view a document is shown in. Editors report the views
// they list with their own identifiers, such as a column number; the two
// constants below are relative and only used in requests.
type Slot string

const (
	// SlotActive is the view that currently has focus.
	SlotActive Slot = "active"
	// SlotBeside is the view next to the active one, created if needed.
	SlotBeside Slot = "beside"
)

// Relative reports whether s names a view relative to the focused one.
func (s Slot) Relative() bool {
	return s == SlotActive || s == SlotBeside
}

// EventKind classifies editor events.
type EventKind string

const (
	EventOpened        EventKind = "opened"
	EventActiveChanged EventKind = "active-changed"
)

// Event reports that a document was opened or became active.
type Event struct {
	Kind EventKind `json:"kind"`
	Path string    `json:"path"`
	// Origin is the ID of the token whose operation caused the event, when
	// the editor can tell.
	Origin string `json:"origin,omitempty"`
}

// View is a visible document and the view it occupies.
type View struct {
	Path string `json:"path"`
	Slot Slot   `json:"slot"`
}

// Editor is the surface of the host editor the Coordinator drives.
// Implementations read the operation token from ctx with TokenFromContext.
type Editor interface {
	// WorkspaceRoot returns the root folder, or "" when none is open.
	WorkspaceRoot(ctx context.Context) (string, error)
	// ActiveDocument returns the focused document and the view holding it.
	// The path is "" when no document has focus.
	ActiveDocument(ctx context.Context) (View, error)
	// VisibleDocuments lists the documents currently on screen.
	VisibleDocuments(ctx context.Context) ([]View, error)
	// Open opens path in slot. It returns an error matching fs.ErrNotExist
	// when path does not exist.
	Open(ctx context.Context, path string, slot Slot) error
	// Show brings view.Path forward in view.Slot and focuses it. An empty
	// slot means the view the document is already in.
	Show(ctx context.Context, view View) error
}
