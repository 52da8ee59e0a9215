// Package options provides shared utilities for option validation across packages.
package options

import (
	"strings"

	"github.com/erraggy/oasdecode/oaserrors"
)

// Source is one way of supplying input to an operation, named after the
// option that sets it (e.g., "WithFilePath").
type Source struct {
	Name string
	Set  bool
}

// ValidateSingleInputSource ensures exactly one of sources is set.
// The returned error is an *oaserrors.ConfigError.
func ValidateSingleInputSource(sources ...Source) error {
	var names, set []string
	for _, s := range sources {
		names = append(names, s.Name)
		if s.Set {
			set = append(set, s.Name)
		}
	}

	switch len(set) {
	case 1:
		return nil
	case 0:
		return &oaserrors.ConfigError{
			Option:  "input source",
			Message: "must specify an input source (use " + strings.Join(names, ", ") + ")",
		}
	default:
		return &oaserrors.ConfigError{
			Option:  "input source",
			Value:   strings.Join(set, ", "),
			Message: "must specify exactly one input source",
		}
	}
}

// ValidateNonNegative rejects a negative value for a limit option, where
// zero selects the default.
func ValidateNonNegative(option string, value int) error {
	if value < 0 {
		return &oaserrors.ConfigError{
			Option:  option,
			Value:   value,
			Message: "must not be negative (0 selects the default)",
		}
	}
	return nil
}
