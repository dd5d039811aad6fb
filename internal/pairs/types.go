package pairs

import (
	"strings"

	"github.com/thoreinstein/syncopener/internal/naming"
)

// DirectorySpec is one side of a pair. Empty Extension and nil FileFormat
// are inferred from the file being processed.
type DirectorySpec struct {
	Path       string               `json:"path" yaml:"path" toml:"path"`
	Extension  string               `json:"extension,omitempty" yaml:"extension,omitempty" toml:"extension,omitempty"`
	FileFormat *naming.NamingFormat `json:"fileFormat,omitempty" yaml:"fileFormat,omitempty" toml:"fileFormat,omitempty"`
}

// Pair associates two directories holding companion files.
type Pair struct {
	Directory1 DirectorySpec `json:"directory1" yaml:"directory1" toml:"directory1"`
	Directory2 DirectorySpec `json:"directory2" yaml:"directory2" toml:"directory2"`
}

// Config is the ordered list of pairs from one pairs file.
type Config struct {
	// Pairs are tried in order; the first that yields a counterpart wins.
	Pairs []Pair
	// Source is the file the pairs were read from.
	Source string
}

// Side names one half of a pair.
type Side int

const (
	Side1 Side = 1
	Side2 Side = 2
)

// Dir returns the directory on side s.
func (p Pair) Dir(s Side) DirectorySpec {
	if s == Side1 {
		return p.Directory1
	}
	return p.Directory2
}

// Other returns the opposite side.
func (s Side) Other() Side {
	if s == Side1 {
		return Side2
	}
	return Side1
}

func (s Side) String() string {
	if s == Side1 {
		return "directory1"
	}
	return "directory2"
}

// normalize gives extensions a leading dot.
func (d *DirectorySpec) normalize() {
	d.Extension = strings.TrimSpace(d.Extension)
	if d.Extension != "" && !strings.HasPrefix(d.Extension, ".") {
		d.Extension = "." + d.Extension
	}
}
