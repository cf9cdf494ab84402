// SPDX-License-Identifier: MPL-2.0

package launch

import (
	"bytes"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/gantrylabs/gantry/pkg/settings"
)

func tableSession(t *testing.T) *settings.Session {
	t.Helper()

	policy := settings.Policy{
		{Key: "ROOT", Tiers: []settings.Tier{settings.TierArgument, settings.TierEnvironment, settings.TierResourceFile}},
		{Key: "DISPLAY", Tiers: []settings.Tier{settings.TierArgument, settings.TierEnvironment}},
		{Key: "CACHE"},
	}
	session, err := settings.Resolve(settings.Inputs{
		Defaults:         map[string]string{"ROOT": "/opt/demo", "DISPLAY": "", "CACHE": "${ROOT}/cache"},
		ResourceFile:     map[string]string{"ROOT": "/from/rc"},
		Environment:      map[string]string{"DISPLAY": ":0"},
		ResourceFilePath: "/home/u/.demorc",
	}, policy)
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	return session
}

func TestWriteTable(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	if err := WriteTable(&buf, tableSession(t)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := "" +
		"rc  ROOT  /from/rc\n" +
		"e   DISPLAY  :0\n" +
		"d   CACHE  /from/rc/cache\n"
	if buf.String() != want {
		t.Errorf("table:\n%s\nwant:\n%s", buf.String(), want)
	}
}

func TestLogDiagnostics(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := log.NewWithOptions(&buf, log.Options{Level: log.DebugLevel})

	LogDiagnostics(logger, tableSession(t))
	out := buf.String()
	if !strings.Contains(out, ".demorc") {
		t.Errorf("diagnostics missing rc path:\n%s", out)
	}
}

func TestLogDiagnostics_Warnings(t *testing.T) {
	t.Parallel()

	policy := settings.Policy{{Key: "A"}}
	session, err := settings.Resolve(settings.Inputs{
		Defaults: map[string]string{"A": "${MISSING}"},
	}, policy)
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}

	var buf bytes.Buffer
	logger := log.NewWithOptions(&buf, log.Options{Level: log.DebugLevel})

	LogDiagnostics(logger, session)
	out := buf.String()
	if !strings.Contains(out, "MISSING") {
		t.Errorf("diagnostics missing substitution warning:\n%s", out)
	}
	if !strings.Contains(out, "no resource file") {
		t.Errorf("diagnostics missing rc note:\n%s", out)
	}
}
