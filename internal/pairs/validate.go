package pairs

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/thoreinstein/syncopener/internal/errors"
	"github.com/thoreinstein/syncopener/internal/paths"
)

// Validation errors for pair fields.
var (
	// ErrEmptyPath indicates a directory with no path.
	ErrEmptyPath = errors.New("directory path is empty")

	// ErrAbsolutePath indicates a directory path that is not workspace-relative.
	ErrAbsolutePath = errors.New("directory path must be relative to the workspace root")

	// ErrUnknownFormat indicates a fileFormat.format outside the known conventions.
	ErrUnknownFormat = errors.New("unknown fileFormat.format")

	// ErrSameDirectory indicates both sides of a pair name the same directory.
	ErrSameDirectory = errors.New("directory1 and directory2 are the same")

	// ErrOverlap indicates one side is nested inside the other, so a file can
	// match both sides.
	ErrOverlap = errors.New("directories overlap")
)

// PairError locates a validation failure inside the pairs file.
type PairError struct {
	// Index is the zero-based position of the pair.
	Index int
	// Side is zero for errors about the pair as a whole.
	Side Side
	Err  error
}

func (e *PairError) Error() string {
	if e.Side == 0 {
		return fmt.Sprintf("pair %d: %v", e.Index, e.Err)
	}
	return fmt.Sprintf("pair %d %s: %v", e.Index, e.Side, e.Err)
}

func (e *PairError) Unwrap() error {
	return e.Err
}

// Validate checks every pair and returns all problems found.
// Overlapping directories are reported because they make the side a file
// belongs to ambiguous.
func Validate(cfg *Config) []error {
	if cfg == nil {
		return []error{errors.New("config is nil")}
	}

	var errs []error
	for i, p := range cfg.Pairs {
		for _, s := range []Side{Side1, Side2} {
			d := p.Dir(s)
			switch {
			case strings.TrimSpace(d.Path) == "":
				errs = append(errs, &PairError{Index: i, Side: s, Err: ErrEmptyPath})
			case filepath.IsAbs(d.Path):
				errs = append(errs, &PairError{Index: i, Side: s, Err: ErrAbsolutePath})
			}
			if d.FileFormat != nil && !d.FileFormat.Format.Known() {
				errs = append(errs, &PairError{
					Index: i,
					Side:  s,
					Err:   errors.Wrapf(ErrUnknownFormat, "%q", d.FileFormat.Format),
				})
			}
		}

		a := paths.Segments(p.Directory1.Path)
		b := paths.Segments(p.Directory2.Path)
		if len(a) == 0 || len(b) == 0 {
			continue
		}
		switch {
		case strings.Join(a, "/") == strings.Join(b, "/"):
			errs = append(errs, &PairError{Index: i, Err: ErrSameDirectory})
		case paths.HasSegmentPrefix(a, b) || paths.HasSegmentPrefix(b, a):
			errs = append(errs, &PairError{Index: i, Err: ErrOverlap})
		}
	}
	return errs
}
