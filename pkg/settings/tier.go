// SPDX-License-Identifier: MPL-2.0

package settings

import (
	"errors"
	"fmt"
)

const (
	// TierDefault is the floor tier: the declared default value of a key.
	TierDefault Tier = "default"
	// TierResourceFile is the tier fed by the discovered resource file.
	TierResourceFile Tier = "rcfile"
	// TierEnvironment is the tier fed by the process environment snapshot.
	TierEnvironment Tier = "environment"
	// TierArgument is the tier fed by command-line overrides.
	TierArgument Tier = "argument"
)

// ErrInvalidTier is returned when a Tier value is not one of the four tiers.
var ErrInvalidTier = errors.New("invalid tier")

type (
	// Tier identifies one of the four ordered input sources for a setting.
	Tier string

	// InvalidTierError is returned when a Tier value is not recognized.
	// It wraps ErrInvalidTier for errors.Is() compatibility.
	InvalidTierError struct {
		Value Tier
	}
)

// Error implements the error interface for InvalidTierError.
func (e *InvalidTierError) Error() string {
	return fmt.Sprintf("invalid tier %q (valid: argument, environment, rcfile, default)", e.Value)
}

// Unwrap returns the sentinel error for errors.Is() compatibility.
func (e *InvalidTierError) Unwrap() error {
	return ErrInvalidTier
}

// IsValid returns whether the Tier is one of the four defined tiers,
// and a list of validation errors if it is not.
func (t Tier) IsValid() (bool, []error) {
	switch t {
	case TierDefault, TierResourceFile, TierEnvironment, TierArgument:
		return true, nil
	default:
		return false, []error{&InvalidTierError{Value: t}}
	}
}

// Code returns the short provenance code printed in describe output:
// "d" (default), "rc" (resource file), "e" (environment), "a" (argument).
// The codes are a stable output contract; scripts parse them.
func (t Tier) Code() string {
	switch t {
	case TierDefault:
		return "d"
	case TierResourceFile:
		return "rc"
	case TierEnvironment:
		return "e"
	case TierArgument:
		return "a"
	default:
		return "?"
	}
}

// ParseTier parses a canonical tier name into a Tier.
func ParseTier(value string) (Tier, error) {
	t := Tier(value)
	if ok, _ := t.IsValid(); !ok {
		return "", &InvalidTierError{Value: t}
	}
	return t, nil
}
