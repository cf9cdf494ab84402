// SPDX-License-Identifier: MPL-2.0

package settings

import (
	"errors"
	"reflect"
	"testing"
)

func TestResolve_TierPrecedence(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		in         Inputs
		policy     Policy
		wantValue  string
		wantSource Tier
	}{
		{
			name: "environment wins over empty default",
			in: Inputs{
				Defaults:    map[string]string{"ARCH": ""},
				Environment: map[string]string{"ARCH": "glnxa64"},
			},
			policy:     Policy{{Key: "ARCH", Tiers: []Tier{TierArgument, TierEnvironment}}},
			wantValue:  "glnxa64",
			wantSource: TierEnvironment,
		},
		{
			name: "argument beats environment",
			in: Inputs{
				Defaults:    map[string]string{"DISPLAY": ""},
				Environment: map[string]string{"DISPLAY": ":0"},
				Arguments:   map[string]string{"DISPLAY": ":1"},
			},
			policy:     Policy{{Key: "DISPLAY", Tiers: []Tier{TierArgument, TierEnvironment}}},
			wantValue:  ":1",
			wantSource: TierArgument,
		},
		{
			name: "resource file beats default",
			in: Inputs{
				Defaults:     map[string]string{"SHELL": "/bin/sh"},
				ResourceFile: map[string]string{"SHELL": "/bin/zsh"},
			},
			policy:     Policy{{Key: "SHELL", Tiers: []Tier{TierArgument, TierEnvironment, TierResourceFile}}},
			wantValue:  "/bin/zsh",
			wantSource: TierResourceFile,
		},
		{
			name: "no tier supplies a value falls back to default",
			in: Inputs{
				Defaults: map[string]string{"MODE": "auto"},
			},
			policy:     Policy{{Key: "MODE", Tiers: []Tier{TierArgument, TierEnvironment, TierResourceFile}}},
			wantValue:  "auto",
			wantSource: TierDefault,
		},
		{
			name: "empty higher-tier value does not win",
			in: Inputs{
				Defaults:    map[string]string{"JVM": "builtin"},
				Environment: map[string]string{"JVM": ""},
			},
			policy:     Policy{{Key: "JVM", Tiers: []Tier{TierEnvironment}}},
			wantValue:  "builtin",
			wantSource: TierDefault,
		},
		{
			name: "tier not in policy is skipped even when it has a value",
			in: Inputs{
				Defaults:    map[string]string{"NOENV": "dflt"},
				Environment: map[string]string{"NOENV": "from-env"},
				Arguments:   map[string]string{"NOENV": "from-arg"},
			},
			policy:     Policy{{Key: "NOENV", Tiers: []Tier{TierArgument}}},
			wantValue:  "from-arg",
			wantSource: TierArgument,
		},
		{
			name: "empty tier list resolves from default alone",
			in: Inputs{
				Defaults:    map[string]string{"FIXED": "pinned"},
				Environment: map[string]string{"FIXED": "ignored"},
			},
			policy:     Policy{{Key: "FIXED"}},
			wantValue:  "pinned",
			wantSource: TierDefault,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			session, err := Resolve(tt.in, tt.policy)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			key := tt.policy[0].Key
			st, ok := session.Get(key)
			if !ok {
				t.Fatalf("key %q missing from session", key)
			}
			if st.Value != tt.wantValue {
				t.Errorf("value = %q, want %q", st.Value, tt.wantValue)
			}
			if st.Source != tt.wantSource {
				t.Errorf("source = %q, want %q", st.Source, tt.wantSource)
			}
		})
	}
}

func TestResolve_TierIsolation(t *testing.T) {
	t.Parallel()

	policy := Policy{{Key: "K", Tiers: []Tier{TierArgument, TierEnvironment, TierResourceFile}}}
	base := Inputs{
		Defaults:  map[string]string{"K": "d"},
		Arguments: map[string]string{"K": "from-arg"},
	}

	before, err := Resolve(base, policy)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Changing lower tiers must not affect the resolved value while a
	// higher tier supplies one.
	changed := base
	changed.Environment = map[string]string{"K": "from-env"}
	changed.ResourceFile = map[string]string{"K": "from-rc"}

	after, err := Resolve(changed, policy)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if before.Value("K") != after.Value("K") {
		t.Errorf("lower-tier change leaked through: %q != %q", before.Value("K"), after.Value("K"))
	}
	st, _ := after.Get("K")
	if st.Source != TierArgument {
		t.Errorf("source = %q, want %q", st.Source, TierArgument)
	}
}

func TestResolve_Idempotent(t *testing.T) {
	t.Parallel()

	in := Inputs{
		Defaults: map[string]string{
			"ARCH": "",
			"ROOT": "/opt/tool",
			"BIN":  "${ROOT}/bin/${ARCH}",
		},
		Environment:      map[string]string{"ARCH": "glnxa64"},
		ResourceFilePath: "/home/u/.toolrc",
	}
	policy := Policy{
		{Key: "ARCH", Tiers: []Tier{TierArgument, TierEnvironment}},
		{Key: "ROOT", Tiers: []Tier{TierArgument, TierEnvironment, TierResourceFile}},
		{Key: "BIN", Tiers: []Tier{TierArgument}},
	}

	first, err := Resolve(in, policy)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := Resolve(in, policy)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var a, b []Setting
	for st := range first.All() {
		a = append(a, st)
	}
	for st := range second.All() {
		b = append(b, st)
	}
	if !reflect.DeepEqual(a, b) {
		t.Errorf("sessions differ across identical runs:\n%v\n%v", a, b)
	}
	if !reflect.DeepEqual(first.Warnings(), second.Warnings()) {
		t.Errorf("warnings differ across identical runs")
	}
}

func TestResolve_SubstitutionSeesFinalValues(t *testing.T) {
	t.Parallel()

	// B embeds A. A comes from the environment (a lower tier than B's
	// argument-tier value); B must still see A's final value.
	in := Inputs{
		Defaults: map[string]string{
			"A": "default-a",
			"B": "",
		},
		Environment: map[string]string{"A": "env-a"},
		Arguments:   map[string]string{"B": "prefix-${A}"},
	}
	policy := Policy{
		{Key: "A", Tiers: []Tier{TierArgument, TierEnvironment}},
		{Key: "B", Tiers: []Tier{TierArgument}},
	}

	session, err := Resolve(in, policy)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got := session.Value("B"); got != "prefix-env-a" {
		t.Errorf("B = %q, want %q", got, "prefix-env-a")
	}
	st, _ := session.Get("B")
	if st.Source != TierArgument {
		t.Errorf("B source = %q, want %q", st.Source, TierArgument)
	}
}

func TestResolve_NoResourceFile(t *testing.T) {
	t.Parallel()

	in := Inputs{
		Defaults:    map[string]string{"ARCH": ""},
		Environment: map[string]string{"ARCH": "maca64"},
	}
	policy := Policy{{Key: "ARCH", Tiers: []Tier{TierEnvironment, TierResourceFile}}}

	session, err := Resolve(in, policy)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := session.Value("ARCH"); got != "maca64" {
		t.Errorf("ARCH = %q, want %q", got, "maca64")
	}
	if path, found := session.ResourceFilePath(); found {
		t.Errorf("unexpected resource file path %q", path)
	}
}

func TestResolve_CallerWarningsCarried(t *testing.T) {
	t.Parallel()

	in := Inputs{
		Defaults: map[string]string{"K": "v"},
		Warnings: []Warning{{Kind: WarnDiagnostic, Message: "toolrc:3: skipped malformed line"}},
	}
	session, err := Resolve(in, Policy{{Key: "K"}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	warnings := session.Warnings()
	if len(warnings) != 1 {
		t.Fatalf("expected 1 warning, got %d", len(warnings))
	}
	if warnings[0].String() != "toolrc:3: skipped malformed line" {
		t.Errorf("warning = %q", warnings[0].String())
	}
}

func TestResolve_InvalidPolicy(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		in      Inputs
		policy  Policy
		wantErr error
	}{
		{
			name:    "key without default",
			in:      Inputs{Defaults: map[string]string{}},
			policy:  Policy{{Key: "MISSING", Tiers: []Tier{TierArgument}}},
			wantErr: ErrMissingDefault,
		},
		{
			name:    "duplicate key",
			in:      Inputs{Defaults: map[string]string{"K": ""}},
			policy:  Policy{{Key: "K"}, {Key: "K"}},
			wantErr: ErrDuplicateKey,
		},
		{
			name:    "default tier not last",
			in:      Inputs{Defaults: map[string]string{"K": ""}},
			policy:  Policy{{Key: "K", Tiers: []Tier{TierDefault, TierArgument}}},
			wantErr: ErrMisplacedDefaultTier,
		},
		{
			name:    "unknown tier",
			in:      Inputs{Defaults: map[string]string{"K": ""}},
			policy:  Policy{{Key: "K", Tiers: []Tier{Tier("registry")}}},
			wantErr: ErrInvalidTier,
		},
		{
			name:    "empty key",
			in:      Inputs{Defaults: map[string]string{"": ""}},
			policy:  Policy{{Key: ""}},
			wantErr: ErrEmptyKey,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			session, err := Resolve(tt.in, tt.policy)
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if session != nil {
				t.Error("expected nil session on policy error")
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("error %v does not wrap %v", err, tt.wantErr)
			}
		})
	}
}

func TestResolve_EveryDefaultedKeyPresent(t *testing.T) {
	t.Parallel()

	in := Inputs{
		Defaults: map[string]string{"A": "1", "B": "", "C": "3"},
	}
	policy := Policy{
		{Key: "C", Tiers: []Tier{TierArgument}},
		{Key: "A", Tiers: []Tier{TierEnvironment}},
		{Key: "B"},
	}

	session, err := Resolve(in, policy)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if session.Len() != 3 {
		t.Fatalf("expected 3 settings, got %d", session.Len())
	}

	// Iteration order is policy declaration order, not map order.
	want := []string{"C", "A", "B"}
	if got := session.Keys(); !reflect.DeepEqual(got, want) {
		t.Errorf("keys = %v, want %v", got, want)
	}
}
