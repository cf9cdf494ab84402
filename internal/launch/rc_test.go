// SPDX-License-Identifier: MPL-2.0

package launch

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/gantrylabs/gantry/pkg/launchfile"
	"github.com/gantrylabs/gantry/pkg/settings"
)

func rcLaunchfile(rcName string, rcDirs []string) *launchfile.Launchfile {
	lf := &launchfile.Launchfile{
		Tool:   "demo",
		Target: "/opt/demo/bin/demo",
		Settings: []launchfile.SettingDecl{
			{Key: "ROOT", Default: "/opt/demo", Tiers: []string{"argument", "environment", "rcfile"}},
			{Key: "VERBOSITY", Env: "DEMO_VERBOSITY", Tiers: []string{"argument", "rcfile"}},
		},
	}
	if rcName != "" {
		lf.RC = &launchfile.RCConfig{Name: rcName, Dirs: rcDirs}
	}
	return lf
}

func TestResolveSession_ExplicitRCFile(t *testing.T) {
	t.Parallel()

	rcPath := filepath.Join(t.TempDir(), "demorc")
	if err := os.WriteFile(rcPath, []byte("ROOT=/from/rc\nDEMO_VERBOSITY=debug\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	session, err := ResolveSession(rcLaunchfile("", nil), nil, SessionOptions{RCPath: rcPath})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	root, _ := session.Get("ROOT")
	if root.Value != "/from/rc" || root.Source != settings.TierResourceFile {
		t.Errorf("ROOT = %+v", root)
	}
	if session.Value("VERBOSITY") != "debug" {
		t.Errorf("VERBOSITY = %q", session.Value("VERBOSITY"))
	}
	if path, ok := session.ResourceFilePath(); !ok || path != rcPath {
		t.Errorf("ResourceFilePath = %q, %v", path, ok)
	}
}

func TestResolveSession_ExplicitRCFileMissing(t *testing.T) {
	t.Parallel()

	_, err := ResolveSession(rcLaunchfile("", nil), nil, SessionOptions{
		RCPath: filepath.Join(t.TempDir(), "missing"),
	})
	if !errors.Is(err, ErrResourceFileUnreadable) {
		t.Errorf("error %v does not wrap ErrResourceFileUnreadable", err)
	}
}

func TestResolveSession_Discovery(t *testing.T) {
	t.Parallel()

	// Two candidate dirs as literal paths; the first hit wins.
	emptyDir := t.TempDir()
	hitDir := t.TempDir()
	rcPath := filepath.Join(hitDir, ".demorc")
	if err := os.WriteFile(rcPath, []byte("ROOT=/discovered\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	lf := rcLaunchfile(".demorc", []string{emptyDir, hitDir})
	session, err := ResolveSession(lf, nil, SessionOptions{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if session.Value("ROOT") != "/discovered" {
		t.Errorf("ROOT = %q", session.Value("ROOT"))
	}
	if path, ok := session.ResourceFilePath(); !ok || path != rcPath {
		t.Errorf("ResourceFilePath = %q, %v", path, ok)
	}
}

func TestResolveSession_DiscoveryMissesQuietly(t *testing.T) {
	t.Parallel()

	lf := rcLaunchfile(".demorc", []string{t.TempDir()})
	session, err := ResolveSession(lf, nil, SessionOptions{})
	if err != nil {
		t.Fatalf("a missing resource file must not be an error: %v", err)
	}

	if _, ok := session.ResourceFilePath(); ok {
		t.Error("ResourceFilePath should report no file")
	}
	root, _ := session.Get("ROOT")
	if root.Source != settings.TierDefault {
		t.Errorf("ROOT source = %v, want default", root.Source)
	}
}

func TestResolveSession_DisableRC(t *testing.T) {
	t.Parallel()

	hitDir := t.TempDir()
	if err := os.WriteFile(filepath.Join(hitDir, ".demorc"), []byte("ROOT=/from/rc\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	lf := rcLaunchfile(".demorc", []string{hitDir})
	session, err := ResolveSession(lf, nil, SessionOptions{DisableRC: true})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if session.Value("ROOT") != "/opt/demo" {
		t.Errorf("ROOT = %q, rc tier should be skipped", session.Value("ROOT"))
	}
}

func TestResolveSession_ParseWarningsCarried(t *testing.T) {
	t.Parallel()

	rcPath := filepath.Join(t.TempDir(), "demorc")
	if err := os.WriteFile(rcPath, []byte("ROOT=/ok\nthis is not an assignment\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	session, err := ResolveSession(rcLaunchfile("", nil), nil, SessionOptions{RCPath: rcPath})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	warnings := session.Warnings()
	if len(warnings) == 0 {
		t.Fatal("expected a diagnostic warning for the malformed line")
	}
	if warnings[0].Kind != settings.WarnDiagnostic {
		t.Errorf("warning kind = %q", warnings[0].Kind)
	}
}

func TestResolveSession_Precedence(t *testing.T) {
	t.Parallel()

	rcPath := filepath.Join(t.TempDir(), "demorc")
	if err := os.WriteFile(rcPath, []byte("ROOT=/from/rc\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	lf := rcLaunchfile("", nil)
	session, err := ResolveSession(lf,
		map[string]string{"ROOT": "/from/args"},
		SessionOptions{
			RCPath:  rcPath,
			Environ: []string{"ROOT=/from/env"},
		})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	root, _ := session.Get("ROOT")
	if root.Value != "/from/args" || root.Source != settings.TierArgument {
		t.Errorf("ROOT = %+v, want argument tier to win", root)
	}
}

func TestRCSearchDirs(t *testing.T) {
	t.Parallel()

	dirs := rcSearchDirs([]string{"cwd", "/literal/path"}, "/work")
	if len(dirs) != 2 || dirs[0] != "/work" || dirs[1] != "/literal/path" {
		t.Errorf("dirs = %v", dirs)
	}

	// Defaults apply when no tokens are declared.
	defaults := rcSearchDirs(nil, "/work")
	if len(defaults) == 0 || defaults[0] != "/work" {
		t.Errorf("default dirs = %v", defaults)
	}
}
