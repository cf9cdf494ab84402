// SPDX-License-Identifier: MPL-2.0

package cueutil

import (
	"errors"
	"strings"
	"testing"
)

func TestFormatError(t *testing.T) {
	t.Parallel()

	t.Run("nil error returns nil", func(t *testing.T) {
		t.Parallel()

		if err := FormatError(nil, "launchfile.cue"); err != nil {
			t.Errorf("expected nil, got %v", err)
		}
	})

	t.Run("non-CUE error is wrapped with the filename", func(t *testing.T) {
		t.Parallel()

		cause := errors.New("read failed")
		err := FormatError(cause, "launchfile.cue")
		if err == nil {
			t.Fatal("expected error")
		}
		if !strings.Contains(err.Error(), "launchfile.cue") {
			t.Errorf("error should contain filename, got: %v", err)
		}
		if !errors.Is(err, cause) {
			t.Errorf("error should wrap the cause, got: %v", err)
		}
	})
}

func TestJSONPath(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		path []string
		want string
	}{
		{name: "empty path", path: []string{}, want: ""},
		{name: "single element", path: []string{"tool"}, want: "tool"},
		{name: "nested path", path: []string{"rc", "name"}, want: "rc.name"},
		{name: "array index", path: []string{"settings", "0", "key"}, want: "settings[0].key"},
		{name: "multiple indices", path: []string{"settings", "0", "tiers", "2"}, want: "settings[0].tiers[2]"},
		{name: "trailing index", path: []string{"args", "1"}, want: "args[1]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := jsonPath(tt.path); got != tt.want {
				t.Errorf("jsonPath(%v) = %q, want %q", tt.path, got, tt.want)
			}
		})
	}
}

func TestCheckFileSize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		size    int
		max     int64
		wantErr bool
	}{
		{name: "within limit", size: 11, max: 100, wantErr: false},
		{name: "at exact limit", size: 100, max: 100, wantErr: false},
		{name: "over limit", size: 101, max: 100, wantErr: true},
		{name: "empty data", size: 0, max: 100, wantErr: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := CheckFileSize(make([]byte, tt.size), tt.max, "launchfile.cue")
			if (err != nil) != tt.wantErr {
				t.Fatalf("CheckFileSize(%d, %d) error = %v, wantErr %v", tt.size, tt.max, err, tt.wantErr)
			}
			if err != nil && !strings.Contains(err.Error(), "launchfile.cue") {
				t.Errorf("error should contain filename, got: %v", err)
			}
		})
	}
}
