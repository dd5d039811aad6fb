// Package resolve maps an opened file to its counterpart in a configured
// directory pair.
package resolve

import (
	"context"
	"log/slog"
	"path/filepath"
	"slices"
	"strings"

	"github.com/gobwas/glob"

	"github.com/thoreinstein/syncopener/internal/errors"
	"github.com/thoreinstein/syncopener/internal/logging"
	"github.com/thoreinstein/syncopener/internal/naming"
	"github.com/thoreinstein/syncopener/internal/pairs"
)

// DefaultExtensions are the file types that are ever synced.
var DefaultExtensions = []string{".ts", ".tsx", ".js", ".jsx", ".html", ".css", ".scss"}

// gitSuffix is appended by some editors to the path of a file's diff view.
const gitSuffix = ".git"

// Result describes a resolved counterpart.
type Result struct {
	// Target is the absolute path of the counterpart.
	Target string `json:"target"`
	// PairIndex is the position of the pair that produced Target.
	PairIndex int `json:"pair"`
	// Side is the side the opened file belongs to.
	Side pairs.Side `json:"side"`
	// Source is the detected naming format of the opened file.
	Source naming.NamingFormat `json:"source"`
	// Format is the naming format the counterpart must have.
	Format naming.NamingFormat `json:"format"`
	// Extension is the counterpart's extension.
	Extension string `json:"extension"`
}

// Option configures a Resolver.
type Option func(*Resolver)

// WithStrategy sets how opened paths are matched to directories.
func WithStrategy(s Strategy) Option {
	return func(r *Resolver) { r.strategy = s }
}

// WithExtensions replaces the supported extension set.
func WithExtensions(exts []string) Option {
	return func(r *Resolver) {
		r.extensions = make([]string, 0, len(exts))
		for _, e := range exts {
			e = strings.ToLower(strings.TrimSpace(e))
			if e == "" {
				continue
			}
			if !strings.HasPrefix(e, ".") {
				e = "." + e
			}
			r.extensions = append(r.extensions, e)
		}
	}
}

// WithExclude skips opened files whose workspace-relative path matches any
// of the glob patterns ("**" crosses directories).
func WithExclude(patterns []string) Option {
	return func(r *Resolver) {
		r.excludeSrc = patterns
	}
}

// Resolver finds counterparts. The zero value is not usable; use New.
type Resolver struct {
	strategy   Strategy
	extensions []string
	excludeSrc []string
	exclude    []glob.Glob
}

// New returns a Resolver using segment matching and DefaultExtensions
// unless overridden.
func New(opts ...Option) (*Resolver, error) {
	r := &Resolver{
		strategy:   SegmentStrategy{},
		extensions: DefaultExtensions,
	}
	for _, opt := range opts {
		opt(r)
	}

	for _, p := range r.excludeSrc {
		g, err := glob.Compile(p, '/')
		if err != nil {
			return nil, errors.Mark(errors.Wrapf(err, "compiling exclude pattern %q", p), errors.ErrInvalidConfig)
		}
		r.exclude = append(r.exclude, g)
	}

	return r, nil
}

// Strategy returns the matching strategy in use.
func (r *Resolver) Strategy() Strategy {
	return r.strategy
}

// Normalize strips the diff-view ".git" suffix from path.
func Normalize(path string) string {
	return strings.TrimSuffix(path, gitSuffix)
}

// Supported reports whether the (normalized) path has a synced extension.
// It touches neither the filesystem nor the editor.
func (r *Resolver) Supported(path string) bool {
	ext := strings.ToLower(filepath.Ext(Normalize(path)))
	return ext != "" && slices.Contains(r.extensions, ext)
}

// Excluded reports whether path, inside root, matches an exclude pattern.
func (r *Resolver) Excluded(root, path string) bool {
	if len(r.exclude) == 0 {
		return false
	}
	rel, err := filepath.Rel(root, Normalize(path))
	if err != nil {
		return false
	}
	rel = filepath.ToSlash(rel)
	for _, g := range r.exclude {
		if g.Match(rel) {
			return true
		}
	}
	return false
}

// Resolve returns the counterpart of opened, an absolute path inside root.
// Pairs are tried in order and the first one that yields a name in the
// target convention wins. It returns errors.ErrUnsupportedExtension for
// files that are never synced and errors.ErrNoMatch when no pair applies.
func (r *Resolver) Resolve(ctx context.Context, opened, root string, cfg *pairs.Config) (*Result, error) {
	log := logging.FromContext(ctx)
	opened = Normalize(opened)

	if !r.Supported(opened) {
		return nil, errors.Wrapf(errors.ErrUnsupportedExtension, "%s", filepath.Base(opened))
	}
	if r.Excluded(root, opened) {
		return nil, errors.Wrapf(errors.ErrNoMatch, "%s is excluded", filepath.Base(opened))
	}
	if cfg == nil || len(cfg.Pairs) == 0 {
		return nil, errors.Wrap(errors.ErrNoMatch, "no pairs configured")
	}

	for i, p := range cfg.Pairs {
		side, ok := r.strategy.Match(root, opened, p)
		if !ok {
			log.Log(ctx, logging.LevelTrace, "pair does not contain file", "pair", i)
			continue
		}

		res, ok := candidate(opened, p, side)
		if !ok {
			log.Debug("converted name does not satisfy target format",
				"pair", i,
				"format", res.Format.String(),
				"candidate", filepath.Base(res.Target))
			continue
		}

		target := p.Dir(side.Other())
		res.Target = filepath.Join(root, filepath.FromSlash(target.Path), res.Target)
		res.PairIndex = i
		log.Debug("resolved counterpart",
			slog.Int("pair", i),
			slog.String("side", side.String()),
			slog.String("target", res.Target))
		return res, nil
	}

	return nil, errors.Wrapf(errors.ErrNoMatch, "%s", filepath.Base(opened))
}

// candidate computes the counterpart file name for opened, which belongs to
// side of p. Result.Target holds the bare file name. The boolean is false
// when the converted name does not detect as the target format.
func candidate(opened string, p pairs.Pair, side pairs.Side) (*Result, bool) {
	target := p.Dir(side.Other())
	base := filepath.Base(opened)
	ownExt := filepath.Ext(base)
	stem := strings.TrimSuffix(base, ownExt)

	ext := target.Extension
	if ext == "" {
		ext = ownExt
	}

	// Detection runs on the stem re-based onto the target extension so an
	// unchanged name already carries the right extension.
	rebased := stem + ext
	source := naming.Detect(rebased)

	format := source
	if target.FileFormat != nil {
		format = *target.FileFormat
	}

	name := naming.Convert(rebased, source, format, ext)
	res := &Result{
		Target:    name,
		Side:      side,
		Source:    source,
		Format:    format,
		Extension: ext,
	}

	got := naming.Detect(name)
	if got.Format != format.Format {
		return res, false
	}
	if format.Prefix != "" && !strings.HasPrefix(got.Prefix, format.Prefix) {
		return res, false
	}
	return res, true
}
