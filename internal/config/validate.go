package config

import (
	"strings"

	"github.com/gobwas/glob"

	"github.com/thoreinstein/syncopener/internal/errors"
	"github.com/thoreinstein/syncopener/internal/resolve"
)

// Validation errors for settings fields.
var (
	// ErrNegativeDelay indicates a settle delay below zero.
	ErrNegativeDelay = errors.New("settle delay must not be negative")

	// ErrInvalidExtension indicates an empty or malformed extension.
	ErrInvalidExtension = errors.New("invalid extension")

	// ErrInvalidPattern indicates an exclude glob that does not compile.
	ErrInvalidPattern = errors.New("invalid exclude pattern")
)

// Validate checks Settings for validity.
// Returns nil if valid, or a slice of validation errors.
func Validate(s *Settings) []error {
	if s == nil {
		return []error{errors.New("settings are nil")}
	}

	var errs []error

	if _, err := resolve.ParseStrategy(s.Match); err != nil {
		errs = append(errs, &SettingError{Field: KeyMatch, Value: s.Match, Err: err})
	}

	if s.SettleDelay < 0 {
		errs = append(errs, &SettingError{Field: KeySettleDelay, Value: s.SettleDelay.String(), Err: ErrNegativeDelay})
	}

	for _, ext := range s.Extensions {
		e := strings.TrimPrefix(strings.TrimSpace(ext), ".")
		if e == "" || strings.ContainsAny(e, `./\ `) {
			errs = append(errs, &SettingError{Field: KeyExtensions, Value: ext, Err: ErrInvalidExtension})
		}
	}

	for _, p := range s.Exclude {
		if _, err := glob.Compile(p, '/'); err != nil {
			errs = append(errs, &SettingError{Field: KeyExclude, Value: p, Err: ErrInvalidPattern})
		}
	}

	return errs
}

// SettingError represents an error for a specific settings field.
type SettingError struct {
	Field string
	Value string
	Err   error
}

func (e *SettingError) Error() string {
	return e.Field + ": " + e.Err.Error() + ": " + e.Value
}

func (e *SettingError) Unwrap() error {
	return e.Err
}
