// Package bridge connects the opener to an editor over a JSON-lines
// protocol on a reader/writer pair.
//
// Each line is one Message. The editor side sends "event" messages when a
// document is opened or focused and "response" messages answering
// requests. The Go side sends "request" messages:
//
//	{"type":"request","id":3,"method":"open","params":{"path":"/w/a.scss","slot":"beside"},"token":"5f0c..."}
//	{"type":"response","id":3,"result":null}
//	{"type":"event","event":{"kind":"opened","path":"/w/a.scss","origin":"5f0c..."}}
//
// Editor shims should copy the token of the request they are executing
// into the origin of the events it causes. An event without an origin is
// tagged with the token of an outstanding open or show request only when
// both name the same document; any other event is treated as the user's.
//
// activeDocument answers with a view, {"path":...,"slot":...}, whose slot
// identifies the view itself (a column number, say) rather than "active";
// focus is restored into that slot after the counterpart opens beside it.
// A bare path string is accepted too.
//
// show is sent for two reasons. With the token of a preceding open, it
// restores focus and must take it. With a fresh token, it reveals a
// counterpart that is already visible; shims that report active-changed
// events should reveal it without taking focus (preserveFocus in VS Code),
// or every switch into a document moves focus to its counterpart.
package bridge

import (
	"encoding/json"

	"github.com/thoreinstein/syncopener/internal/opener"
)

// Message types.
const (
	TypeRequest  = "request"
	TypeResponse = "response"
	TypeEvent    = "event"
)

// Request methods.
const (
	MethodWorkspaceRoot    = "workspaceRoot"
	MethodActiveDocument   = "activeDocument"
	MethodVisibleDocuments = "visibleDocuments"
	MethodOpen             = "open"
	MethodShow             = "show"
)

// CodeNotFound marks a response error for a document that does not exist.
const CodeNotFound = "not_found"

// Message is one line of the protocol.
type Message struct {
	Type   string          `json:"type"`
	ID     uint64          `json:"id,omitempty"`
	Method string          `json:"method,omitempty"`
	Params json.RawMessage `json:"params,omitempty"`
	Token  string          `json:"token,omitempty"`
	Result json.RawMessage `json:"result,omitempty"`
	Error  string          `json:"error,omitempty"`
	Code   string          `json:"code,omitempty"`
	Event  *opener.Event   `json:"event,omitempty"`
}

// OpenParams are the params of an open request.
type OpenParams struct {
	Path string      `json:"path"`
	Slot opener.Slot `json:"slot"`
}
