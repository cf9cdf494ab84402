// SPDX-License-Identifier: MPL-2.0

package settings

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyKey is returned when a policy entry has an empty key.
	ErrEmptyKey = errors.New("empty setting key")
	// ErrDuplicateKey is returned when a key is declared twice in a policy.
	ErrDuplicateKey = errors.New("duplicate setting key")
	// ErrMisplacedDefaultTier is returned when the default tier appears
	// anywhere but the last position of a tier list. The default tier
	// always has a value, so tiers listed after it could never win.
	ErrMisplacedDefaultTier = errors.New("default tier must be last")
	// ErrMissingDefault is returned when a policy declares a key that has
	// no entry in the defaults map. Every recognized key must carry a
	// default (which may be empty) so resolution can never come up short.
	ErrMissingDefault = errors.New("setting has no default")
)

type (
	// KeyPolicy declares how one key resolves: the ordered list of tiers
	// to consult, highest precedence first. The default tier is the
	// implicit floor and does not need to be listed; listing it is only
	// allowed in last position. An empty tier list declares a key that
	// resolves from its default alone.
	KeyPolicy struct {
		// Key is the setting identifier.
		Key string
		// Tiers to consult in order. The first tier supplying a
		// non-empty value wins.
		Tiers []Tier
	}

	// Policy is the ordered set of key declarations for one resolution
	// session. Declaration order is the iteration order of the resulting
	// session (and therefore of describe output).
	Policy []KeyPolicy

	// DuplicateKeyError is returned when a key is declared twice.
	// It wraps ErrDuplicateKey for errors.Is() compatibility.
	DuplicateKeyError struct {
		Key string
	}

	// MisplacedDefaultTierError is returned when the default tier is not
	// in last position. It wraps ErrMisplacedDefaultTier.
	MisplacedDefaultTierError struct {
		Key string
	}

	// MissingDefaultError is returned when a declared key has no entry in
	// the defaults map. It wraps ErrMissingDefault.
	MissingDefaultError struct {
		Key string
	}
)

// Error implements the error interface for DuplicateKeyError.
func (e *DuplicateKeyError) Error() string {
	return fmt.Sprintf("setting %q declared more than once", e.Key)
}

// Unwrap returns the sentinel error for errors.Is() compatibility.
func (e *DuplicateKeyError) Unwrap() error {
	return ErrDuplicateKey
}

// Error implements the error interface for MisplacedDefaultTierError.
func (e *MisplacedDefaultTierError) Error() string {
	return fmt.Sprintf("setting %q lists the default tier before other tiers; default must be last", e.Key)
}

// Unwrap returns the sentinel error for errors.Is() compatibility.
func (e *MisplacedDefaultTierError) Unwrap() error {
	return ErrMisplacedDefaultTier
}

// Error implements the error interface for MissingDefaultError.
func (e *MissingDefaultError) Error() string {
	return fmt.Sprintf("setting %q has no entry in the defaults map", e.Key)
}

// Unwrap returns the sentinel error for errors.Is() compatibility.
func (e *MissingDefaultError) Unwrap() error {
	return ErrMissingDefault
}

// Validate checks the policy against the defaults map and reports every
// problem found, joined into one error. A policy that validates cleanly
// cannot fail to resolve: validation happens before resolution so an
// invalid policy never produces a partially-resolved session.
func (p Policy) Validate(defaults map[string]string) error {
	var errs []error
	seen := make(map[string]struct{}, len(p))

	for i, kp := range p {
		if kp.Key == "" {
			errs = append(errs, fmt.Errorf("policy entry %d: %w", i, ErrEmptyKey))
			continue
		}
		if _, dup := seen[kp.Key]; dup {
			errs = append(errs, &DuplicateKeyError{Key: kp.Key})
			continue
		}
		seen[kp.Key] = struct{}{}

		for j, tier := range kp.Tiers {
			if ok, _ := tier.IsValid(); !ok {
				errs = append(errs, fmt.Errorf("setting %q: %w", kp.Key, &InvalidTierError{Value: tier}))
				continue
			}
			if tier == TierDefault && j != len(kp.Tiers)-1 {
				errs = append(errs, &MisplacedDefaultTierError{Key: kp.Key})
			}
		}

		if _, ok := defaults[kp.Key]; !ok {
			errs = append(errs, &MissingDefaultError{Key: kp.Key})
		}
	}

	return errors.Join(errs...)
}

// Keys returns the declared keys in declaration order.
func (p Policy) Keys() []string {
	keys := make([]string, len(p))
	for i, kp := range p {
		keys[i] = kp.Key
	}
	return keys
}
