package resolve

import (
	"strings"

	"github.com/thoreinstein/syncopener/internal/errors"
	"github.com/thoreinstein/syncopener/internal/pairs"
	"github.com/thoreinstein/syncopener/internal/paths"
)

// Strategy decides which side of a pair an opened file belongs to.
type Strategy interface {
	// Name is the value used in settings and on the command line.
	Name() string
	// Match returns the side containing opened, or false for neither.
	Match(root, opened string, p pairs.Pair) (pairs.Side, bool)
}

// ErrUnknownStrategy is returned by ParseStrategy.
var ErrUnknownStrategy = errors.New("unknown match strategy")

// ParseStrategy returns the strategy called name: "segment" or "substring".
// An empty name selects segment matching.
func ParseStrategy(name string) (Strategy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "segment":
		return SegmentStrategy{}, nil
	case "substring":
		return SubstringStrategy{}, nil
	default:
		return nil, errors.Wrapf(ErrUnknownStrategy, "%q (valid: segment, substring)", name)
	}
}

// SegmentStrategy matches when the opened path, relative to the workspace
// root, starts with the directory's path segments. If both sides match
// the one with more segments wins.
type SegmentStrategy struct{}

func (SegmentStrategy) Name() string { return "segment" }

func (SegmentStrategy) Match(root, opened string, p pairs.Pair) (pairs.Side, bool) {
	rel, ok := paths.Rel(root, opened)
	if !ok {
		return 0, false
	}
	file := paths.Segments(rel)

	best, bestLen := pairs.Side(0), 0
	for _, s := range []pairs.Side{pairs.Side1, pairs.Side2} {
		dir := paths.Segments(p.Dir(s).Path)
		if len(dir) == 0 || len(dir) >= len(file) {
			continue
		}
		if paths.HasSegmentPrefix(file, dir) && len(dir) > bestLen {
			best, bestLen = s, len(dir)
		}
	}
	return best, best != 0
}

// SubstringStrategy matches when the directory path occurs anywhere in the
// opened path. directory1 is checked first. Directory names that are
// substrings of unrelated paths match too.
type SubstringStrategy struct{}

func (SubstringStrategy) Name() string { return "substring" }

func (SubstringStrategy) Match(_, opened string, p pairs.Pair) (pairs.Side, bool) {
	for _, s := range []pairs.Side{pairs.Side1, pairs.Side2} {
		dir := p.Dir(s).Path
		if dir != "" && strings.Contains(opened, dir) {
			return s, true
		}
	}
	return 0, false
}
