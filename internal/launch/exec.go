// SPDX-License-Identifier: MPL-2.0

package launch

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"

	"github.com/gantrylabs/gantry/pkg/types"
)

// ErrTargetNotFound is returned when the expanded target path does not name
// an executable.
var ErrTargetNotFound = errors.New("target executable not found")

// TargetNotFoundError wraps ErrTargetNotFound for errors.Is() compatibility.
type TargetNotFoundError struct {
	Target string
	Err    error
}

// Error implements the error interface.
func (e *TargetNotFoundError) Error() string {
	return fmt.Sprintf("target executable not found: %s", e.Target)
}

// Unwrap returns the sentinel error for errors.Is() compatibility.
func (e *TargetNotFoundError) Unwrap() error { return ErrTargetNotFound }

type (
	// Result is the outcome of running a plan. A non-zero exit code with a
	// nil Error means the target itself exited non-zero; Error is reserved
	// for launcher-side failures.
	Result struct {
		ExitCode types.ExitCode
		Error    error
	}

	// Runner executes a launch plan.
	Runner interface {
		Run(ctx context.Context, plan *Plan) *Result
	}

	// ExecRunner starts the target as a child process with stdio passed
	// through and the target's exit code propagated verbatim.
	ExecRunner struct {
		Stdin  io.Reader
		Stdout io.Writer
		Stderr io.Writer
	}
)

// NewErrorResult creates a Result with the given exit code and error.
func NewErrorResult(code types.ExitCode, err error) *Result {
	return &Result{ExitCode: code, Error: err}
}

// NewSuccessResult creates a Result with exit code 0 and no error.
func NewSuccessResult() *Result {
	return &Result{}
}

// NewExitCodeResult creates a Result with the given exit code and no error.
// Use this for non-zero exits that represent normal process termination
// rather than launcher failures.
func NewExitCodeResult(code types.ExitCode) *Result {
	return &Result{ExitCode: code}
}

// NewExecRunner creates a runner wired to the process's own stdio.
func NewExecRunner() *ExecRunner {
	return &ExecRunner{
		Stdin:  os.Stdin,
		Stdout: os.Stdout,
		Stderr: os.Stderr,
	}
}

// Run starts the plan's target and waits for it.
func (r *ExecRunner) Run(ctx context.Context, plan *Plan) *Result {
	path, err := exec.LookPath(plan.Target)
	if err != nil {
		return NewErrorResult(types.ExitFailure, &TargetNotFoundError{Target: plan.Target, Err: err})
	}

	cmd := exec.CommandContext(ctx, path, plan.Args...)
	cmd.Env = plan.Env
	cmd.Stdin = r.Stdin
	cmd.Stdout = r.Stdout
	cmd.Stderr = r.Stderr

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return NewExitCodeResult(types.ExitCode(exitErr.ExitCode()))
		}
		return NewErrorResult(types.ExitFailure, fmt.Errorf("failed to launch %s: %w", plan.Tool, err))
	}

	return NewSuccessResult()
}
