package opener

import (
	"context"
	"io/fs"
	"log/slog"
	"path/filepath"

	"github.com/thoreinstein/syncopener/internal/errors"
	"github.com/thoreinstein/syncopener/internal/logging"
	"github.com/thoreinstein/syncopener/internal/pairs"
	"github.com/thoreinstein/syncopener/internal/resolve"
)

// Outcome summarizes what Handle did with an event.
type Outcome string

const (
	OutcomeIgnored     Outcome = "ignored"
	OutcomeUnsupported Outcome = "unsupported"
	OutcomeNoWorkspace Outcome = "no-workspace"
	OutcomeNoConfig    Outcome = "no-config"
	OutcomeNoMatch     Outcome = "no-match"
	OutcomeRevealed    Outcome = "revealed"
	OutcomeOpened      Outcome = "opened"
	OutcomeMissing     Outcome = "missing"
)

// Loader reads the pairs configuration of a workspace.
type Loader func(root string) (*pairs.Config, error)

// Option configures a Coordinator.
type Option func(*Coordinator)

// WithGuard replaces the default guard.
func WithGuard(g *Guard) Option {
	return func(c *Coordinator) { c.guard = g }
}

// WithLoader replaces pairs.Load.
func WithLoader(l Loader) Option {
	return func(c *Coordinator) { c.load = l }
}

// Coordinator opens counterparts in response to editor events.
type Coordinator struct {
	editor   Editor
	resolver *resolve.Resolver
	guard    *Guard
	load     Loader
}

// New returns a Coordinator driving ed.
func New(ed Editor, r *resolve.Resolver, opts ...Option) *Coordinator {
	c := &Coordinator{
		editor:   ed,
		resolver: r,
		guard:    NewGuard(DefaultSettleDelay),
		load:     pairs.Load,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Guard returns the coordinator's guard.
func (c *Coordinator) Guard() *Guard {
	return c.guard
}

// Run handles events one at a time until events is closed or ctx is done.
// Failures are logged; they never stop the loop.
func (c *Coordinator) Run(ctx context.Context, events <-chan Event) error {
	log := logging.FromContext(ctx)
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			outcome, err := c.Handle(ctx, ev)
			if err != nil {
				log.Warn("handling event failed", "path", ev.Path, "outcome", string(outcome), "error", err)
			}
		}
	}
}

// Handle processes a single event. The returned error reports editor
// failures; configuration problems and misses are outcomes, not errors.
func (c *Coordinator) Handle(ctx context.Context, ev Event) (Outcome, error) {
	log := logging.FromContext(ctx).With("event", string(ev.Kind))
	opened := resolve.Normalize(ev.Path)
	ev.Path = opened

	if reason, ok := c.guard.Ignore(ctx, ev); ok {
		log.Debug("skipping event", "path", opened, "reason", reason)
		return OutcomeIgnored, nil
	}
	if !c.resolver.Supported(opened) {
		log.Log(ctx, logging.LevelTrace, "skipping unsupported file", "path", opened)
		return OutcomeUnsupported, nil
	}

	root, err := c.editor.WorkspaceRoot(ctx)
	if err != nil {
		return OutcomeNoWorkspace, errors.Wrap(err, "querying workspace root")
	}
	if root == "" {
		log.Debug("no workspace open", "path", opened)
		return OutcomeNoWorkspace, nil
	}

	cfg, err := c.load(root)
	if err != nil {
		log.Debug("pairs configuration unavailable", "root", root, "error", err)
		return OutcomeNoConfig, nil
	}

	res, err := c.resolver.Resolve(ctx, opened, root, cfg)
	if err != nil {
		log.Info("no counterpart", "path", opened, "reason", err)
		return OutcomeNoMatch, nil
	}
	target := res.Target

	views, err := c.editor.VisibleDocuments(ctx)
	if err != nil {
		return OutcomeNoMatch, errors.Wrap(err, "listing visible documents")
	}
	for _, v := range views {
		if samePath(v.Path, target) {
			tok := c.guard.Begin(target)
			err := c.editor.Show(WithToken(ctx, tok), v)
			tok.Done()
			if err != nil {
				return OutcomeRevealed, errors.Wrapf(err, "focusing %s", target)
			}
			log.Info("counterpart already open", "path", opened, "target", target, "slot", string(v.Slot))
			return OutcomeRevealed, nil
		}
	}

	previous, err := c.editor.ActiveDocument(ctx)
	if err != nil {
		return OutcomeNoMatch, errors.Wrap(err, "querying active document")
	}
	if previous.Slot.Relative() {
		previous.Slot = ""
	}

	tok := c.guard.Begin(target, previous.Path)
	defer tok.Done()
	opCtx := WithToken(ctx, tok)

	outcome := OutcomeOpened
	if err := c.editor.Open(opCtx, target, SlotBeside); err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return outcome, errors.Wrapf(err, "opening %s", target)
		}
		outcome = OutcomeMissing
		log.Warn("counterpart does not exist", "path", opened, "target", target)
	}

	// Restore into the view the user was in; after the open, the active
	// view is the one holding the counterpart.
	if previous.Path != "" {
		if err := c.editor.Show(opCtx, previous); err != nil {
			return outcome, errors.Wrapf(err, "restoring focus to %s", previous.Path)
		}
	}

	if outcome == OutcomeOpened {
		log.Info("opened counterpart",
			slog.String("path", opened),
			slog.String("target", target),
			slog.Int("pair", res.PairIndex))
	}
	return outcome, nil
}

func samePath(a, b string) bool {
	return filepath.Clean(a) == filepath.Clean(b)
}
