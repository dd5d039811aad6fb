package naming

import (
	"strings"

	"github.com/thoreinstein/syncopener/internal/errors"
)

// Format identifies a file name casing convention.
type Format string

// Known formats. The string values are the names used in pairs files.
const (
	Camel   Format = "camel-case"
	Pascal  Format = "pascal-case"
	Kebab   Format = "kebab-case"
	Snake   Format = "snake-case"
	Unknown Format = "unknown"
)

// ErrUnknownFormat is returned by ParseFormat for unrecognized names.
var ErrUnknownFormat = errors.New("unknown naming format")

// aliases maps accepted spellings (lower-cased, separators removed) to formats.
var aliases = map[string]Format{
	"camel":      Camel,
	"camelcase":  Camel,
	"pascal":     Pascal,
	"pascalcase": Pascal,
	"kebab":      Kebab,
	"kebabcase":  Kebab,
	"snake":      Snake,
	"snakecase":  Snake,
	"unknown":    Unknown,
}

// ParseFormat accepts "kebab-case", "kebab", "kebabCase", "KEBAB_CASE" and so on.
func ParseFormat(s string) (Format, error) {
	key := strings.Map(func(r rune) rune {
		if r == '-' || r == '_' || r == ' ' {
			return -1
		}
		return r
	}, strings.ToLower(strings.TrimSpace(s)))

	if f, ok := aliases[key]; ok {
		return f, nil
	}
	return Unknown, errors.Wrapf(ErrUnknownFormat, "%q", s)
}

// Short returns the format name without the "-case" suffix.
func (f Format) Short() string {
	return strings.TrimSuffix(string(f), "-case")
}

// Known reports whether f has a convention in the table.
func (f Format) Known() bool {
	_, ok := lookup(f)
	return ok
}

// MarshalText implements encoding.TextMarshaler.
func (f Format) MarshalText() ([]byte, error) {
	if f == "" {
		return []byte(Unknown), nil
	}
	return []byte(f), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. Unrecognized names are
// kept verbatim so validation can report them; conversion to such a format
// is a no-op.
func (f *Format) UnmarshalText(text []byte) error {
	parsed, err := ParseFormat(string(text))
	if err != nil {
		*f = Format(text)
		return nil
	}
	*f = parsed
	return nil
}

// NamingFormat is a prefix plus a casing convention.
type NamingFormat struct {
	Prefix string `json:"prefix" yaml:"prefix" toml:"prefix"`
	Format Format `json:"format" yaml:"format" toml:"format"`
}

// String renders the format as "<prefix>kebab" style text for logs.
func (n NamingFormat) String() string {
	return n.Prefix + n.Format.Short()
}
