// SPDX-License-Identifier: MPL-2.0

package launch

import (
	"errors"
	"fmt"
	"strings"
)

// launcherFlagPrefix marks flags consumed by gantry itself. Everything
// else on the command line belongs to either a declared setting or the
// target.
const launcherFlagPrefix = "--gty-"

var (
	// ErrMissingFlagValue is returned when a flag that takes a value is the
	// last argument.
	ErrMissingFlagValue = errors.New("missing flag value")
	// ErrUnknownLauncherFlag is returned for an unrecognized --gty-* flag.
	// The prefix is reserved, so these are never forwarded to the target.
	ErrUnknownLauncherFlag = errors.New("unknown launcher flag")
)

type (
	// MissingFlagValueError wraps ErrMissingFlagValue for errors.Is() compatibility.
	MissingFlagValueError struct {
		Flag string
	}

	// UnknownLauncherFlagError wraps ErrUnknownLauncherFlag for errors.Is() compatibility.
	UnknownLauncherFlagError struct {
		Flag string
	}

	// Options collects the launcher-owned switches consumed from the
	// command line.
	Options struct {
		// DryRun prints the resolved plan instead of executing it.
		DryRun bool
		// RCPath forces a specific resource file, bypassing discovery.
		RCPath string
		// NoRC skips the resource-file tier entirely.
		NoRC bool
		// LaunchfilePath forces a specific launchfile.
		LaunchfilePath string
		// ConfigPath forces a specific gantry config file.
		ConfigPath string
		// Verbose enables verbose diagnostics.
		Verbose bool
	}

	// Split is the result of scanning a run command line: setting overrides
	// for the argument tier, launcher options, and everything else preserved
	// verbatim for the target.
	Split struct {
		// Overrides holds declared-flag values keyed by setting key.
		Overrides map[string]string
		// Passthrough holds the arguments forwarded to the target,
		// in their original order.
		Passthrough []string
		// Options holds the launcher-owned switches.
		Options Options
	}
)

// Error implements the error interface for MissingFlagValueError.
func (e *MissingFlagValueError) Error() string {
	return fmt.Sprintf("flag %s requires a value", e.Flag)
}

// Unwrap returns the sentinel error for errors.Is() compatibility.
func (e *MissingFlagValueError) Unwrap() error { return ErrMissingFlagValue }

// Error implements the error interface for UnknownLauncherFlagError.
func (e *UnknownLauncherFlagError) Error() string {
	return fmt.Sprintf("unknown launcher flag %s (the --gty- prefix is reserved)", e.Flag)
}

// Unwrap returns the sentinel error for errors.Is() compatibility.
func (e *UnknownLauncherFlagError) Unwrap() error { return ErrUnknownLauncherFlag }

// SplitArgs scans a run command line. flagIndex maps declared long-flag
// names to setting keys (launchfile.FlagIndex form).
//
// Declared flags are matched as --name value, --name=value, and the
// single-dash -name value form many wrapped tools use; the last occurrence
// of a flag wins. -n and --gty-* flags belong to the launcher. Every other
// argument — unknown flags included — is forwarded to the target untouched,
// in order. "--" ends scanning; the remainder is passthrough verbatim.
func SplitArgs(args []string, flagIndex map[string]string) (*Split, error) {
	s := &Split{Overrides: make(map[string]string)}

	i := 0
	for i < len(args) {
		arg := args[i]

		if arg == "--" {
			s.Passthrough = append(s.Passthrough, args[i+1:]...)
			break
		}

		if arg == "-n" || arg == "--gty-dry-run" {
			s.Options.DryRun = true
			i++
			continue
		}

		if strings.HasPrefix(arg, launcherFlagPrefix) {
			consumed, err := s.scanLauncherFlag(args, i)
			if err != nil {
				return nil, err
			}
			i += consumed
			continue
		}

		if name, ok := flagName(arg); ok {
			base, inline, hasInline := strings.Cut(name, "=")
			if key, declared := flagIndex[base]; declared {
				if hasInline {
					s.Overrides[key] = inline
					i++
					continue
				}
				if i+1 >= len(args) {
					return nil, &MissingFlagValueError{Flag: arg}
				}
				s.Overrides[key] = args[i+1]
				i += 2
				continue
			}
		}

		// Not ours: forward verbatim.
		s.Passthrough = append(s.Passthrough, arg)
		i++
	}

	return s, nil
}

// scanLauncherFlag consumes one --gty-* flag starting at args[i] and
// returns how many arguments it used.
func (s *Split) scanLauncherFlag(args []string, i int) (int, error) {
	name, inline, hasInline := strings.Cut(args[i], "=")

	valueOf := func(target *string) (int, error) {
		if hasInline {
			*target = inline
			return 1, nil
		}
		if i+1 >= len(args) {
			return 0, &MissingFlagValueError{Flag: name}
		}
		*target = args[i+1]
		return 2, nil
	}

	boolFlag := func(target *bool) (int, error) {
		if hasInline {
			return 0, fmt.Errorf("flag %s takes no value", name)
		}
		*target = true
		return 1, nil
	}

	switch name {
	case "--gty-rc":
		return valueOf(&s.Options.RCPath)
	case "--gty-launchfile":
		return valueOf(&s.Options.LaunchfilePath)
	case "--gty-config":
		return valueOf(&s.Options.ConfigPath)
	case "--gty-no-rc":
		return boolFlag(&s.Options.NoRC)
	case "--gty-verbose":
		return boolFlag(&s.Options.Verbose)
	default:
		return 0, &UnknownLauncherFlagError{Flag: name}
	}
}

// flagName extracts the candidate flag name from an argument: one or two
// leading dashes followed by a non-empty name. A lone dash (stdin
// convention) and anything without a dash are not flags.
func flagName(arg string) (string, bool) {
	if !strings.HasPrefix(arg, "-") || arg == "-" || arg == "--" {
		return "", false
	}
	name := strings.TrimPrefix(arg, "-")
	name = strings.TrimPrefix(name, "-")
	if name == "" || strings.HasPrefix(name, "-") {
		return "", false
	}
	return name, true
}
