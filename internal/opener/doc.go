// Package opener reacts to editor events by opening the counterpart of the
// file the user opened next to it.
//
// A Coordinator receives Events from an Editor, resolves the counterpart
// through the pairs file at the workspace root and opens it in the view
// beside the current one, then gives focus back to the document the user
// was working in. Opening a file makes the editor emit events of its own;
// the Guard recognizes those echoes so they do not trigger another round.
//
// The Guard marks each operation with a token. The token travels in the
// context of the calls made for the operation, is attached by editor
// adapters to the events they report while executing it, and pins the
// paths the operation touches until it completes:
//
//	tok := guard.Begin(target, previous)
//	defer tok.Done()
//	err := editor.Open(opener.WithToken(ctx, tok), target, opener.SlotBeside)
package opener
