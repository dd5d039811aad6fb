package bridge

import (
	"bufio"
	"context"
	"encoding/json"
	"io"
	"io/fs"
	"path/filepath"
	"sync"
	"sync/atomic"

	"github.com/thoreinstein/syncopener/internal/errors"
	"github.com/thoreinstein/syncopener/internal/logging"
	"github.com/thoreinstein/syncopener/internal/opener"
)

// maxLine bounds a single protocol line.
const maxLine = 1 << 20

// eventBuffer is how many events may wait for the coordinator before new
// ones are dropped.
const eventBuffer = 64

// ErrClosed is returned by calls made after the editor side hung up.
var ErrClosed = errors.New("bridge closed")

// Client implements opener.Editor by exchanging Messages with an editor.
type Client struct {
	r io.Reader

	wmu sync.Mutex
	enc *json.Encoder

	nextID atomic.Uint64

	mu      sync.Mutex
	pending map[uint64]chan Message
	ops     map[uint64]operation
	err     error

	events chan opener.Event
	done   chan struct{}
}

// NewClient returns a Client reading from r and writing to w. Call Start
// before making requests.
func NewClient(r io.Reader, w io.Writer) *Client {
	return &Client{
		r:       r,
		enc:     json.NewEncoder(w),
		pending: make(map[uint64]chan Message),
		ops:     make(map[uint64]operation),
		events:  make(chan opener.Event, eventBuffer),
		done:    make(chan struct{}),
	}
}

// Start launches the reader goroutine. ctx supplies the logger.
func (c *Client) Start(ctx context.Context) {
	go c.read(ctx)
}

// Events returns the channel of editor events. It is closed when the
// editor side hangs up.
func (c *Client) Events() <-chan opener.Event {
	return c.events
}

// Done is closed when the reader goroutine exits.
func (c *Client) Done() <-chan struct{} {
	return c.done
}

// Err returns why the reader stopped, or nil on a clean hang-up.
func (c *Client) Err() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if errors.Is(c.err, ErrClosed) {
		return nil
	}
	return c.err
}

func (c *Client) read(ctx context.Context) {
	log := logging.FromContext(ctx)
	defer close(c.done)
	defer close(c.events)

	sc := bufio.NewScanner(c.r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLine)
	for sc.Scan() {
		line := sc.Bytes()
		if len(line) == 0 {
			continue
		}

		var msg Message
		if err := json.Unmarshal(line, &msg); err != nil {
			log.Warn("discarding malformed bridge message", "error", err)
			continue
		}

		switch msg.Type {
		case TypeResponse:
			c.deliver(msg)
		case TypeEvent:
			if msg.Event == nil || msg.Event.Path == "" {
				log.Warn("discarding event without a path")
				continue
			}
			ev := *msg.Event
			if ev.Origin == "" {
				ev.Origin = c.originFor(ev.Path)
			}
			select {
			case c.events <- ev:
			default:
				log.Warn("event queue full, dropping event", "path", ev.Path)
			}
		default:
			log.Warn("discarding bridge message of unknown type", "type", msg.Type)
		}
	}

	err := sc.Err()
	if err == nil {
		err = ErrClosed
	}
	c.fail(err)
	log.Debug("bridge reader stopped", "error", err)
}

func (c *Client) deliver(msg Message) {
	c.mu.Lock()
	ch, ok := c.pending[msg.ID]
	delete(c.pending, msg.ID)
	delete(c.ops, msg.ID)
	c.mu.Unlock()

	if ok {
		ch <- msg
	}
}

// originFor returns the token of an outstanding request acting on path, if
// any.
func (c *Client) originFor(path string) string {
	path = filepath.Clean(path)

	c.mu.Lock()
	defer c.mu.Unlock()
	for _, op := range c.ops {
		if op.path == path {
			return op.token
		}
	}
	return ""
}

func (c *Client) fail(err error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.err = err
	for id, ch := range c.pending {
		close(ch)
		delete(c.pending, id)
	}
	clear(c.ops)
}

// operation is an outstanding tokened request and the document it acts on.
type operation struct {
	token string
	path  string
}

// call sends a request and decodes its result into out, if non-nil.
func (c *Client) call(ctx context.Context, method string, params, out any) error {
	msg := Message{
		Type:   TypeRequest,
		ID:     c.nextID.Add(1),
		Method: method,
	}
	if tok, ok := opener.TokenFromContext(ctx); ok {
		msg.Token = tok
	}
	if params != nil {
		raw, err := json.Marshal(params)
		if err != nil {
			return errors.Wrapf(err, "encoding %s params", method)
		}
		msg.Params = raw
	}

	ch := make(chan Message, 1)
	c.mu.Lock()
	if c.err != nil {
		c.mu.Unlock()
		return errors.Wrapf(ErrClosed, "%s", method)
	}
	c.pending[msg.ID] = ch
	if path := paramsPath(params); msg.Token != "" && path != "" {
		c.ops[msg.ID] = operation{token: msg.Token, path: path}
	}
	c.mu.Unlock()

	c.wmu.Lock()
	err := c.enc.Encode(msg)
	c.wmu.Unlock()
	if err != nil {
		c.forget(msg.ID)
		return errors.Wrapf(err, "sending %s", method)
	}

	select {
	case <-ctx.Done():
		c.forget(msg.ID)
		return errors.Wrapf(ctx.Err(), "waiting for %s", method)
	case resp, ok := <-ch:
		if !ok {
			return errors.Wrapf(ErrClosed, "%s", method)
		}
		if resp.Error != "" {
			if resp.Code == CodeNotFound {
				return errors.Wrapf(fs.ErrNotExist, "%s: %s", method, resp.Error)
			}
			return errors.Newf("%s: %s", method, resp.Error)
		}
		if out == nil || len(resp.Result) == 0 || string(resp.Result) == "null" {
			return nil
		}
		if err := json.Unmarshal(resp.Result, out); err != nil {
			return errors.Wrapf(err, "decoding %s result", method)
		}
		return nil
	}
}

func (c *Client) forget(id uint64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.pending, id)
	delete(c.ops, id)
}

// paramsPath returns the document a request acts on.
func paramsPath(params any) string {
	switch p := params.(type) {
	case OpenParams:
		return filepath.Clean(p.Path)
	case opener.View:
		return filepath.Clean(p.Path)
	}
	return ""
}

func (c *Client) WorkspaceRoot(ctx context.Context) (string, error) {
	var root string
	err := c.call(ctx, MethodWorkspaceRoot, nil, &root)
	return root, err
}

// ActiveDocument accepts either a view object or a bare path as result.
func (c *Client) ActiveDocument(ctx context.Context) (opener.View, error) {
	var raw json.RawMessage
	if err := c.call(ctx, MethodActiveDocument, nil, &raw); err != nil || len(raw) == 0 {
		return opener.View{}, err
	}

	var view opener.View
	if raw[0] == '"' {
		err := json.Unmarshal(raw, &view.Path)
		return view, errors.Wrap(err, "decoding activeDocument result")
	}
	err := json.Unmarshal(raw, &view)
	return view, errors.Wrap(err, "decoding activeDocument result")
}

func (c *Client) VisibleDocuments(ctx context.Context) ([]opener.View, error) {
	var views []opener.View
	err := c.call(ctx, MethodVisibleDocuments, nil, &views)
	return views, err
}

func (c *Client) Open(ctx context.Context, path string, slot opener.Slot) error {
	return c.call(ctx, MethodOpen, OpenParams{Path: path, Slot: slot}, nil)
}

func (c *Client) Show(ctx context.Context, view opener.View) error {
	return c.call(ctx, MethodShow, view, nil)
}
