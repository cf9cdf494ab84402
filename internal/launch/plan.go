// SPDX-License-Identifier: MPL-2.0

package launch

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/gantrylabs/gantry/pkg/launchfile"
	"github.com/gantrylabs/gantry/pkg/settings"
)

// ErrUnresolvedTarget is returned when the target template still references
// settings outside the session after expansion.
var ErrUnresolvedTarget = errors.New("unresolved reference in target")

// UnresolvedTargetError wraps ErrUnresolvedTarget for errors.Is()
// compatibility.
type UnresolvedTargetError struct {
	Template string
	Refs     []string
}

// Error implements the error interface.
func (e *UnresolvedTargetError) Error() string {
	return fmt.Sprintf("target template %q references unknown setting(s): %s",
		e.Template, strings.Join(e.Refs, ", "))
}

// Unwrap returns the sentinel error for errors.Is() compatibility.
func (e *UnresolvedTargetError) Unwrap() error { return ErrUnresolvedTarget }

// Plan is everything needed to start the target: the expanded executable
// path, its full argument list, and the child environment.
type Plan struct {
	// Tool is the wrapped tool's display name.
	Tool string
	// Target is the expanded executable path.
	Target string
	// Args is the full argument list: expanded fixed args, then passthrough.
	Args []string
	// Env is the complete child environment.
	Env []string
	// Session is the resolution the plan was built from.
	Session *settings.Session
}

// BuildPlan expands the launchfile's target template and fixed arguments
// against the session and assembles the child environment: the host environ
// with exported settings appended (appended entries win, the exec
// convention). An unresolved reference in the target is a launch error;
// unresolved references in fixed arguments stay literal, matching the
// resolver's own forgiveness.
func BuildPlan(lf *launchfile.Launchfile, session *settings.Session, passthrough, environ []string) (*Plan, error) {
	target, missing := session.ExpandStrict(lf.Target)
	if len(missing) > 0 {
		return nil, &UnresolvedTargetError{Template: lf.Target, Refs: missing}
	}

	args := make([]string, 0, len(lf.Args)+len(passthrough))
	for _, a := range lf.Args {
		args = append(args, session.Expand(a))
	}
	args = append(args, passthrough...)

	env := slices.Clone(environ)
	for _, decl := range lf.Decls() {
		if !decl.ShouldExport() {
			continue
		}
		env = append(env, decl.EffectiveEnv()+"="+session.Value(decl.Key))
	}

	return &Plan{
		Tool:    lf.Tool,
		Target:  target,
		Args:    args,
		Env:     env,
		Session: session,
	}, nil
}

// CommandLine renders the plan as the argv it will execute, for dry-run
// output and logging.
func (p *Plan) CommandLine() []string {
	argv := make([]string, 0, 1+len(p.Args))
	argv = append(argv, p.Target)
	argv = append(argv, p.Args...)
	return argv
}
