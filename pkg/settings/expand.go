// SPDX-License-Identifier: MPL-2.0

package settings

import "strings"

// expandAll runs the substitution pass over the merged values: every
// ${NAME} / $NAME reference is replaced with the referenced key's final
// (itself expanded) value. Keys are visited in policy order so warning
// order is deterministic.
//
// Unknown references stay literal and produce a WarnUnknownReference.
// A key on a reference cycle, or depending on one, keeps its unexpanded
// value and produces a WarnCircularReference.
func expandAll(order []string, raw map[string]string) (map[string]string, []Warning) {
	const (
		stUnseen = iota
		stActive
		stDone
	)

	var (
		warnings []Warning
		final    = make(map[string]string, len(raw))
		state    = make(map[string]int, len(raw))
		tainted  = make(map[string]bool)
	)

	// expand returns the final value for key and whether the expansion was
	// free of cycles. Memoized depth-first: each key is expanded once.
	var expand func(key string) (string, bool)
	expand = func(key string) (string, bool) {
		switch state[key] {
		case stDone:
			return final[key], !tainted[key]
		case stActive:
			// Re-entered while expanding: key is on a cycle.
			tainted[key] = true
			return raw[key], false
		}
		state[key] = stActive

		clean := true
		value := expandRefs(raw[key], func(name string) (string, bool) {
			if _, exists := raw[name]; !exists {
				warnings = append(warnings, Warning{Kind: WarnUnknownReference, Key: key, Ref: name})
				return "", false
			}
			ref, ok := expand(name)
			if !ok {
				clean = false
			}
			return ref, true
		})

		if tainted[key] {
			clean = false
		}
		if !clean {
			value = raw[key]
			tainted[key] = true
			warnings = append(warnings, Warning{Kind: WarnCircularReference, Key: key})
		}

		state[key] = stDone
		final[key] = value
		return value, clean
	}

	for _, key := range order {
		expand(key)
	}

	return final, warnings
}

// expandRefs substitutes $NAME, ${NAME}, and $$ in s. The lookup reports
// whether a name is known; unknown references are written back literally.
// Reference names follow shell identifier rules ([A-Za-z_][A-Za-z0-9_]*).
func expandRefs(s string, lookup func(string) (string, bool)) string {
	if !strings.ContainsRune(s, '$') {
		return s
	}

	var out strings.Builder
	out.Grow(len(s))

	i := 0
	for i < len(s) {
		c := s[i]
		if c != '$' {
			out.WriteByte(c)
			i++
			continue
		}
		if i+1 >= len(s) {
			out.WriteByte('$')
			break
		}

		switch next := s[i+1]; {
		case next == '$':
			out.WriteByte('$')
			i += 2
		case next == '{':
			end := strings.IndexByte(s[i+2:], '}')
			if end < 0 {
				out.WriteString(s[i:])
				return out.String()
			}
			name := s[i+2 : i+2+end]
			if value, ok := lookupIdent(name, lookup); ok {
				out.WriteString(value)
			} else {
				out.WriteString(s[i : i+3+end])
			}
			i += 3 + end
		default:
			name := scanIdent(s[i+1:])
			if name == "" {
				out.WriteByte('$')
				i++
				continue
			}
			if value, ok := lookup(name); ok {
				out.WriteString(value)
			} else {
				out.WriteString(s[i : i+1+len(name)])
			}
			i += 1 + len(name)
		}
	}

	return out.String()
}

// lookupIdent rejects braced references whose content is not a plain
// identifier (e.g. "${FOO:-bar}") so shell-only syntax passes through.
func lookupIdent(name string, lookup func(string) (string, bool)) (string, bool) {
	if name == "" || scanIdent(name) != name {
		return "", false
	}
	return lookup(name)
}

// scanIdent returns the longest identifier prefix of s.
func scanIdent(s string) string {
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c == '_':
		case c >= '0' && c <= '9':
			if i == 0 {
				return ""
			}
		default:
			return s[:i]
		}
	}
	return s
}
