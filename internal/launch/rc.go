// SPDX-License-Identifier: MPL-2.0

package launch

import (
	"errors"
	"fmt"
	"os"

	"github.com/gantrylabs/gantry/internal/config"
	"github.com/gantrylabs/gantry/internal/rcfile"
	"github.com/gantrylabs/gantry/pkg/launchfile"
	"github.com/gantrylabs/gantry/pkg/platform"
	"github.com/gantrylabs/gantry/pkg/settings"
)

// ErrResourceFileUnreadable is returned when a resource file exists but
// cannot be read. A missing resource file is never an error.
var ErrResourceFileUnreadable = errors.New("resource file unreadable")

// ResourceFileUnreadableError wraps ErrResourceFileUnreadable for
// errors.Is() compatibility.
type ResourceFileUnreadableError struct {
	Path string
	Err  error
}

// Error implements the error interface.
func (e *ResourceFileUnreadableError) Error() string {
	return fmt.Sprintf("resource file %s could not be read: %v", e.Path, e.Err)
}

// Unwrap returns the sentinel error for errors.Is() compatibility.
func (e *ResourceFileUnreadableError) Unwrap() error { return ErrResourceFileUnreadable }

// SessionOptions carries the ambient inputs for one resolution. Callers
// snapshot them up front so the resolution itself performs no probing
// beyond the resource-file lookup.
type SessionOptions struct {
	// Environ is the process environment snapshot (os.Environ form).
	Environ []string
	// RCPath forces a specific resource file; discovery is skipped and a
	// missing file is an error (the user named it explicitly).
	RCPath string
	// DisableRC skips the resource-file tier entirely.
	DisableRC bool
	// WorkDir anchors the "cwd" search token; defaults to the process
	// working directory.
	WorkDir string
}

// ResolveSession gathers the tier inputs for a launchfile and runs the
// resolver: the resource file is discovered and parsed, environment
// variables and command-line overrides are bound to their setting keys, and
// the merged result comes back as an immutable session. Resource-file parse
// problems are carried as session warnings, never errors.
func ResolveSession(lf *launchfile.Launchfile, overrides map[string]string, opts SessionOptions) (*settings.Session, error) {
	var (
		rcValues   map[string]string
		rcPath     string
		rcWarnings []settings.Warning
	)

	switch {
	case opts.DisableRC:
	case opts.RCPath != "":
		values, warnings, err := rcfile.Load(opts.RCPath)
		if err != nil {
			return nil, &ResourceFileUnreadableError{Path: opts.RCPath, Err: err}
		}
		rcValues, rcPath = values, opts.RCPath
		rcWarnings = diagnostics(warnings)
	case lf.RC != nil:
		path, found := rcfile.Find(rcSearchDirs(lf.RC.Dirs, opts.WorkDir), lf.RC.Name)
		if found {
			values, warnings, err := rcfile.Load(path)
			if err != nil {
				return nil, &ResourceFileUnreadableError{Path: path, Err: err}
			}
			rcValues, rcPath = values, path
			rcWarnings = diagnostics(warnings)
		}
	}

	policy, err := lf.Policy()
	if err != nil {
		return nil, err
	}

	return settings.Resolve(settings.Inputs{
		Defaults:         lf.Defaults(),
		ResourceFile:     lf.RCInputs(rcValues),
		Environment:      lf.EnvInputs(opts.Environ),
		Arguments:        overrides,
		ResourceFilePath: rcPath,
		Warnings:         rcWarnings,
	}, policy)
}

// rcSearchDirs resolves the launchfile's search tokens into candidate
// directories, in order. Well-known tokens (cwd, home, exedir, config) are
// expanded; anything else is taken as a literal path. Tokens the host
// cannot supply are dropped.
func rcSearchDirs(tokens []string, workDir string) []string {
	if len(tokens) == 0 {
		tokens = []string{"cwd", "home", "exedir"}
	}

	dirs := make([]string, 0, len(tokens))
	for _, token := range tokens {
		switch token {
		case "cwd":
			dir := workDir
			if dir == "" {
				var err error
				if dir, err = os.Getwd(); err != nil {
					continue
				}
			}
			dirs = append(dirs, dir)
		case "home":
			if home, err := platform.HomeDir(); err == nil {
				dirs = append(dirs, home)
			}
		case "exedir":
			if exeDir, err := platform.ExecutableDir(); err == nil {
				dirs = append(dirs, exeDir)
			}
		case "config":
			if cfgDir, err := config.ConfigDir(); err == nil {
				dirs = append(dirs, cfgDir)
			}
		default:
			dirs = append(dirs, token)
		}
	}
	return dirs
}

// diagnostics converts resource-file parse warnings into session warnings.
func diagnostics(warnings []rcfile.Warning) []settings.Warning {
	out := make([]settings.Warning, 0, len(warnings))
	for _, w := range warnings {
		out = append(out, settings.Warning{Kind: settings.WarnDiagnostic, Message: w.String()})
	}
	return out
}
