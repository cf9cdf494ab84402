// SPDX-License-Identifier: MPL-2.0

package settings

import (
	"iter"
	"slices"
)

// Session is the immutable result of one resolution: every key the policy
// declares, each annotated with the tier that supplied its final value.
// Sessions are built once by Resolve, consumed by the runner, and never
// mutated afterwards.
type Session struct {
	settings map[string]Setting
	order    []string
	warnings []Warning
	rcPath   string
}

// All returns the resolved settings in policy declaration order. The
// sequence is lazy and restartable; it is the describe contract consumed by
// diagnostic output.
func (s *Session) All() iter.Seq[Setting] {
	return func(yield func(Setting) bool) {
		for _, key := range s.order {
			if !yield(s.settings[key]) {
				return
			}
		}
	}
}

// Get returns the resolved setting for key and whether the key is part of
// the session.
func (s *Session) Get(key string) (Setting, bool) {
	st, ok := s.settings[key]
	return st, ok
}

// Value returns the resolved value for key, or "" when the key is not part
// of the session.
func (s *Session) Value(key string) string {
	return s.settings[key].Value
}

// Len returns the number of settings in the session.
func (s *Session) Len() int {
	return len(s.order)
}

// Keys returns the setting keys in policy declaration order.
func (s *Session) Keys() []string {
	return slices.Clone(s.order)
}

// Warnings returns the diagnostics collected during resolution:
// caller-supplied warnings first, then substitution warnings in key order.
func (s *Session) Warnings() []Warning {
	return slices.Clone(s.warnings)
}

// ResourceFilePath returns the path of the resource file that fed the
// resource-file tier, and false when no file was found.
func (s *Session) ResourceFilePath() (string, bool) {
	return s.rcPath, s.rcPath != ""
}

// Expand substitutes ${NAME} and $NAME references in a runner-side string
// (a target path template, a fixed argument) against the session's resolved
// values. References to keys outside the session are kept literal; $$
// escapes a literal dollar sign.
func (s *Session) Expand(in string) string {
	out, _ := s.ExpandStrict(in)
	return out
}

// ExpandStrict is Expand plus bookkeeping: it also returns the referenced
// names that are not part of the session, in order of first appearance.
// Callers that treat unresolved references as fatal (a target path template)
// use this form.
func (s *Session) ExpandStrict(in string) (string, []string) {
	var missing []string
	seen := make(map[string]bool)
	out := expandRefs(in, func(name string) (string, bool) {
		st, ok := s.settings[name]
		if !ok {
			if !seen[name] {
				seen[name] = true
				missing = append(missing, name)
			}
			return "", false
		}
		return st.Value, true
	})
	return out, missing
}
