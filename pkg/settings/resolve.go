// SPDX-License-Identifier: MPL-2.0

package settings

type (
	// Inputs carries the raw tier values for one resolution session.
	// Callers snapshot the environment, parse the resource file, and split
	// the command line before resolution; the resolver itself performs no
	// I/O and never reads ambient process state.
	Inputs struct {
		// Defaults maps every recognized key to its built-in default.
		// The policy is validated against this map: a declared key with
		// no default is a policy error.
		Defaults map[string]string
		// ResourceFile holds values parsed from the discovered resource
		// file, keyed by setting key. Empty when no file was found.
		ResourceFile map[string]string
		// Environment holds the process environment snapshot, keyed by
		// setting key (callers translate variable names beforehand).
		Environment map[string]string
		// Arguments holds values parsed from command-line overrides.
		Arguments map[string]string

		// ResourceFilePath records which resource file fed the
		// ResourceFile tier; empty means none was found.
		ResourceFilePath string
		// Warnings are caller-supplied diagnostics (resource-file parse
		// problems and the like) carried onto the session ahead of any
		// substitution warnings.
		Warnings []Warning
	}
)

// Resolve merges the tier inputs into an immutable Session per the policy.
//
// The policy is validated first; an invalid policy is the only error
// condition. For each declared key the tier list is walked in order and the
// first tier supplying a non-empty value wins; a key that no tier supplies
// resolves to its default. A second pass then expands ${NAME} references
// between settings against the resolved values, so synthesized values always
// see final values regardless of which tiers they came from.
//
// Resolution is idempotent: identical inputs produce identical sessions,
// including the recorded sources and warnings.
func Resolve(in Inputs, policy Policy) (*Session, error) {
	if err := policy.Validate(in.Defaults); err != nil {
		return nil, err
	}

	s := &Session{
		settings: make(map[string]Setting, len(policy)),
		order:    policy.Keys(),
		rcPath:   in.ResourceFilePath,
	}
	s.warnings = append(s.warnings, in.Warnings...)

	raw := make(map[string]string, len(policy))
	for _, kp := range policy {
		value, source := resolveKey(in, kp)
		raw[kp.Key] = value
		s.settings[kp.Key] = Setting{Key: kp.Key, Value: value, Source: source}
	}

	final, warnings := expandAll(s.order, raw)
	for key, value := range final {
		st := s.settings[key]
		st.Value = value
		s.settings[key] = st
	}
	s.warnings = append(s.warnings, warnings...)

	return s, nil
}

// resolveKey walks one key's tier list and returns the winning value and
// tier. The default is the floor: it applies when no listed tier supplies a
// non-empty value, whether or not the tier list names it.
func resolveKey(in Inputs, kp KeyPolicy) (string, Tier) {
	for _, tier := range kp.Tiers {
		var values map[string]string
		switch tier {
		case TierArgument:
			values = in.Arguments
		case TierEnvironment:
			values = in.Environment
		case TierResourceFile:
			values = in.ResourceFile
		case TierDefault:
			return in.Defaults[kp.Key], TierDefault
		}
		if v, ok := values[kp.Key]; ok && v != "" {
			return v, tier
		}
	}
	return in.Defaults[kp.Key], TierDefault
}
