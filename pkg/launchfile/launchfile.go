// SPDX-License-Identifier: MPL-2.0

package launchfile

import (
	"errors"
	"fmt"
	"strings"
)

// DefaultFileName is the launchfile looked for when none is given.
const DefaultFileName = "launchfile.cue"

// BuiltinPrefix marks setting keys owned by the launcher itself. Declared
// settings must not use it.
const BuiltinPrefix = "GANTRY_"

var (
	// ErrReservedKey is returned when a declared setting key uses the
	// launcher's built-in prefix.
	ErrReservedKey = errors.New("reserved setting key")
	// ErrDuplicateFlag is returned when two settings map to the same CLI
	// flag name.
	ErrDuplicateFlag = errors.New("duplicate flag name")
	// ErrDuplicateEnvName is returned when two settings map to the same
	// environment variable name.
	ErrDuplicateEnvName = errors.New("duplicate environment variable name")
)

type (
	// Launchfile is a parsed launchfile: the full declaration of one
	// wrapped tool.
	Launchfile struct {
		// Tool is the display name of the wrapped tool.
		Tool string `json:"tool"`
		// Target is the executable path template; may embed ${KEY}
		// references resolved against the session.
		Target string `json:"target"`
		// Args are fixed leading arguments (templates allowed).
		Args []string `json:"args,omitempty"`
		// RC configures resource-file discovery; nil disables the tier.
		RC *RCConfig `json:"rc,omitempty"`
		// Settings are the declared settings in declaration order.
		Settings []SettingDecl `json:"settings,omitempty"`

		// FilePath is where this launchfile was loaded from (not part
		// of the schema).
		FilePath string `json:"-"`
	}

	// RCConfig declares the resource-file search: a file name and the
	// candidate directories to probe, in order. Directory entries mix
	// well-known tokens (cwd, home, exedir, config) and literal paths.
	RCConfig struct {
		Name string   `json:"name"`
		Dirs []string `json:"dirs,omitempty"`
	}

	// SettingDecl declares one setting a wrapped tool consumes.
	SettingDecl struct {
		// Key is the setting identifier.
		Key string `json:"key"`
		// Default is the built-in floor value.
		Default string `json:"default,omitempty"`
		// Description is shown in describe output and docs.
		Description string `json:"description,omitempty"`
		// Flag overrides the CLI long-flag name.
		Flag string `json:"flag,omitempty"`
		// Env overrides the environment/resource-file variable name.
		Env string `json:"env,omitempty"`
		// Tiers lists the sources consulted, highest precedence first.
		Tiers []string `json:"tiers,omitempty"`
		// Export controls exporting the resolved value into the
		// target's environment; nil means true.
		Export *bool `json:"export,omitempty"`
	}

	// ReservedKeyError wraps ErrReservedKey for errors.Is() compatibility.
	ReservedKeyError struct {
		Key string
	}

	// DuplicateFlagError wraps ErrDuplicateFlag for errors.Is() compatibility.
	DuplicateFlagError struct {
		Flag string
		Keys [2]string
	}

	// DuplicateEnvNameError wraps ErrDuplicateEnvName for errors.Is()
	// compatibility.
	DuplicateEnvNameError struct {
		Env  string
		Keys [2]string
	}
)

// Error implements the error interface for ReservedKeyError.
func (e *ReservedKeyError) Error() string {
	return fmt.Sprintf("setting key %q uses the reserved %s prefix", e.Key, BuiltinPrefix)
}

// Unwrap returns the sentinel error for errors.Is() compatibility.
func (e *ReservedKeyError) Unwrap() error { return ErrReservedKey }

// Error implements the error interface for DuplicateFlagError.
func (e *DuplicateFlagError) Error() string {
	return fmt.Sprintf("flag --%s is declared by both %q and %q", e.Flag, e.Keys[0], e.Keys[1])
}

// Unwrap returns the sentinel error for errors.Is() compatibility.
func (e *DuplicateFlagError) Unwrap() error { return ErrDuplicateFlag }

// Error implements the error interface for DuplicateEnvNameError.
func (e *DuplicateEnvNameError) Error() string {
	return fmt.Sprintf("environment variable %s is declared by both %q and %q", e.Env, e.Keys[0], e.Keys[1])
}

// Unwrap returns the sentinel error for errors.Is() compatibility.
func (e *DuplicateEnvNameError) Unwrap() error { return ErrDuplicateEnvName }

// EffectiveFlag returns the CLI long-flag name for the declaration: the
// explicit Flag when set, otherwise the lowercased key with underscores
// mapped to dashes.
func (d SettingDecl) EffectiveFlag() string {
	if d.Flag != "" {
		return d.Flag
	}
	return strings.ReplaceAll(strings.ToLower(d.Key), "_", "-")
}

// EffectiveEnv returns the environment/resource-file variable name for the
// declaration: the explicit Env when set, otherwise the key itself.
func (d SettingDecl) EffectiveEnv() string {
	if d.Env != "" {
		return d.Env
	}
	return d.Key
}

// ShouldExport reports whether the resolved value is exported into the
// target's environment. Exporting defaults to on.
func (d SettingDecl) ShouldExport() bool {
	return d.Export == nil || *d.Export
}

// Validate checks everything the CUE schema cannot express and reports all
// problems found, joined into one error: reserved keys, duplicate flag and
// environment names across declarations (after name defaulting), and the
// per-key tier lists (via the resolver's policy validation, which also
// catches duplicate and empty keys).
func (lf *Launchfile) Validate() error {
	var errs []error

	seenFlags := make(map[string]string, len(lf.Settings))
	seenEnvs := make(map[string]string, len(lf.Settings))
	for _, decl := range lf.Settings {
		if strings.HasPrefix(decl.Key, BuiltinPrefix) {
			errs = append(errs, &ReservedKeyError{Key: decl.Key})
		}

		flag := decl.EffectiveFlag()
		if first, dup := seenFlags[flag]; dup {
			errs = append(errs, &DuplicateFlagError{Flag: flag, Keys: [2]string{first, decl.Key}})
		} else {
			seenFlags[flag] = decl.Key
		}

		env := decl.EffectiveEnv()
		if first, dup := seenEnvs[env]; dup {
			errs = append(errs, &DuplicateEnvNameError{Env: env, Keys: [2]string{first, decl.Key}})
		} else {
			seenEnvs[env] = decl.Key
		}
	}

	policy, err := lf.Policy()
	if err != nil {
		errs = append(errs, err)
	} else if err := policy.Validate(lf.Defaults()); err != nil {
		errs = append(errs, err)
	}

	return errors.Join(errs...)
}

// Decls returns the effective declarations: the launcher's built-in
// settings followed by the declared ones, in declaration order.
func (lf *Launchfile) Decls() []SettingDecl {
	builtins := Builtins()
	decls := make([]SettingDecl, 0, len(builtins)+len(lf.Settings))
	decls = append(decls, builtins...)
	decls = append(decls, lf.Settings...)
	return decls
}
