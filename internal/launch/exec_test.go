// SPDX-License-Identifier: MPL-2.0

package launch

import (
	"bytes"
	"context"
	"errors"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/gantrylabs/gantry/pkg/platform"
	"github.com/gantrylabs/gantry/pkg/types"
)

func skipWithoutShell(t *testing.T) {
	t.Helper()
	if runtime.GOOS == platform.Windows {
		t.Skip("tests drive /bin/sh")
	}
}

func shellPlan(script string, env []string) *Plan {
	return &Plan{
		Tool:   "sh",
		Target: "sh",
		Args:   []string{"-c", script},
		Env:    env,
	}
}

func TestExecRunner_Run_Success(t *testing.T) {
	t.Parallel()
	skipWithoutShell(t)

	var stdout bytes.Buffer
	r := &ExecRunner{Stdout: &stdout, Stderr: &bytes.Buffer{}}

	result := r.Run(context.Background(), shellPlan("echo hello", nil))
	if result.Error != nil {
		t.Fatalf("unexpected error: %v", result.Error)
	}
	if !result.ExitCode.IsSuccess() {
		t.Errorf("ExitCode = %v", result.ExitCode)
	}
	if stdout.String() != "hello\n" {
		t.Errorf("stdout = %q", stdout.String())
	}
}

func TestExecRunner_Run_PropagatesExitCode(t *testing.T) {
	t.Parallel()
	skipWithoutShell(t)

	r := &ExecRunner{Stdout: &bytes.Buffer{}, Stderr: &bytes.Buffer{}}

	result := r.Run(context.Background(), shellPlan("exit 3", nil))
	if result.Error != nil {
		t.Fatalf("a non-zero exit is not a launcher error: %v", result.Error)
	}
	if result.ExitCode != types.ExitCode(3) {
		t.Errorf("ExitCode = %v, want 3", result.ExitCode)
	}
}

func TestExecRunner_Run_UsesPlanEnv(t *testing.T) {
	t.Parallel()
	skipWithoutShell(t)

	var stdout bytes.Buffer
	r := &ExecRunner{Stdout: &stdout, Stderr: &bytes.Buffer{}}

	plan := shellPlan("echo $DEMO_ROOT", []string{"PATH=/usr/bin:/bin", "DEMO_ROOT=/opt/demo"})
	result := r.Run(context.Background(), plan)
	if result.Error != nil {
		t.Fatalf("unexpected error: %v", result.Error)
	}
	if stdout.String() != "/opt/demo\n" {
		t.Errorf("stdout = %q", stdout.String())
	}
}

func TestExecRunner_Run_TargetNotFound(t *testing.T) {
	t.Parallel()

	r := &ExecRunner{Stdout: &bytes.Buffer{}, Stderr: &bytes.Buffer{}}

	plan := &Plan{
		Tool:   "ghost",
		Target: filepath.Join(t.TempDir(), "no-such-binary"),
	}
	result := r.Run(context.Background(), plan)
	if result.Error == nil {
		t.Fatal("expected error")
	}
	if !errors.Is(result.Error, ErrTargetNotFound) {
		t.Errorf("error %v does not wrap ErrTargetNotFound", result.Error)
	}
	if result.ExitCode != types.ExitFailure {
		t.Errorf("ExitCode = %v, want %v", result.ExitCode, types.ExitFailure)
	}
}

func TestExecRunner_Run_CanceledContext(t *testing.T) {
	t.Parallel()
	skipWithoutShell(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	r := &ExecRunner{Stdout: &bytes.Buffer{}, Stderr: &bytes.Buffer{}}
	result := r.Run(ctx, shellPlan("sleep 10", nil))
	if result.ExitCode.IsSuccess() && result.Error == nil {
		t.Error("canceled context should not report success")
	}
}

func TestResultConstructors(t *testing.T) {
	t.Parallel()

	if r := NewSuccessResult(); r.ExitCode != types.ExitSuccess || r.Error != nil {
		t.Errorf("NewSuccessResult() = %+v", r)
	}
	if r := NewExitCodeResult(7); r.ExitCode != 7 || r.Error != nil {
		t.Errorf("NewExitCodeResult(7) = %+v", r)
	}
	err := errors.New("boom")
	if r := NewErrorResult(types.ExitFailure, err); r.ExitCode != types.ExitFailure || !errors.Is(r.Error, err) {
		t.Errorf("NewErrorResult() = %+v", r)
	}
}
