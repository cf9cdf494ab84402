// SPDX-License-Identifier: MPL-2.0

package settings

import (
	"errors"
	"reflect"
	"testing"
)

func TestPolicyValidate(t *testing.T) {
	t.Parallel()

	defaults := map[string]string{"A": "", "B": "x"}

	tests := []struct {
		name    string
		policy  Policy
		wantErr error
	}{
		{
			name: "valid policy",
			policy: Policy{
				{Key: "A", Tiers: []Tier{TierArgument, TierEnvironment, TierResourceFile}},
				{Key: "B", Tiers: []Tier{TierArgument, TierDefault}},
			},
		},
		{
			name:    "default tier allowed in last position",
			policy:  Policy{{Key: "A", Tiers: []Tier{TierEnvironment, TierDefault}}},
		},
		{
			name:    "default tier rejected before other tiers",
			policy:  Policy{{Key: "A", Tiers: []Tier{TierDefault, TierEnvironment}}},
			wantErr: ErrMisplacedDefaultTier,
		},
		{
			name:    "duplicate key",
			policy:  Policy{{Key: "A"}, {Key: "A"}},
			wantErr: ErrDuplicateKey,
		},
		{
			name:    "empty key",
			policy:  Policy{{Key: ""}},
			wantErr: ErrEmptyKey,
		},
		{
			name:    "invalid tier name",
			policy:  Policy{{Key: "A", Tiers: []Tier{Tier("rc")}}},
			wantErr: ErrInvalidTier,
		},
		{
			name:    "missing default",
			policy:  Policy{{Key: "Z", Tiers: []Tier{TierArgument}}},
			wantErr: ErrMissingDefault,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := tt.policy.Validate(defaults)
			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("unexpected error: %v", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("error %v does not wrap %v", err, tt.wantErr)
			}
		})
	}
}

func TestPolicyValidate_CollectsAllErrors(t *testing.T) {
	t.Parallel()

	policy := Policy{
		{Key: ""},
		{Key: "A", Tiers: []Tier{Tier("nope")}},
		{Key: "A"},
		{Key: "Z", Tiers: []Tier{TierArgument}},
	}
	err := policy.Validate(map[string]string{"A": ""})
	if err == nil {
		t.Fatal("expected error")
	}

	for _, want := range []error{ErrEmptyKey, ErrInvalidTier, ErrDuplicateKey, ErrMissingDefault} {
		if !errors.Is(err, want) {
			t.Errorf("joined error does not include %v", want)
		}
	}
}

func TestPolicyKeys(t *testing.T) {
	t.Parallel()

	policy := Policy{{Key: "C"}, {Key: "A"}, {Key: "B"}}
	if got := policy.Keys(); !reflect.DeepEqual(got, []string{"C", "A", "B"}) {
		t.Errorf("Keys = %v", got)
	}
}
