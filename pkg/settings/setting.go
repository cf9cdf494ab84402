// SPDX-License-Identifier: MPL-2.0

package settings

import "fmt"

type (
	// Setting is one resolved configuration value together with its
	// provenance: the tier whose input supplied the final value.
	Setting struct {
		// Key is the setting identifier, unique within a session.
		Key string
		// Value is the resolved value after the substitution pass.
		Value string
		// Source is the tier that won for this key.
		Source Tier
	}

	// Warning reports a non-fatal condition observed during resolution:
	// substitution issues found during the expansion pass, or diagnostics
	// supplied by the caller alongside the tier inputs (resource-file
	// parse problems, discovery notes). Warnings never abort resolution;
	// the affected value is preserved literally.
	Warning struct {
		// Kind classifies the warning.
		Kind WarningKind
		// Key is the setting whose value triggered the warning.
		Key string
		// Ref is the referenced name involved, when applicable.
		Ref string
		// Message is the pre-rendered text for caller-supplied
		// diagnostics; empty for substitution warnings.
		Message string
	}

	// WarningKind enumerates substitution warning classes.
	WarningKind string
)

const (
	// WarnUnknownReference flags a ${NAME} reference to a key that is not
	// part of the session. The reference is kept literally.
	WarnUnknownReference WarningKind = "unknown-reference"
	// WarnCircularReference flags a reference cycle between settings.
	// Every setting on the cycle keeps its unexpanded value.
	WarnCircularReference WarningKind = "circular-reference"
	// WarnDiagnostic carries a caller-supplied diagnostic verbatim.
	WarnDiagnostic WarningKind = "diagnostic"
)

// String renders the warning for diagnostic output.
func (w Warning) String() string {
	if w.Message != "" {
		return w.Message
	}
	switch w.Kind {
	case WarnUnknownReference:
		return fmt.Sprintf("setting %q references unknown setting %q", w.Key, w.Ref)
	case WarnCircularReference:
		return fmt.Sprintf("setting %q is part of a reference cycle", w.Key)
	default:
		return fmt.Sprintf("setting %q: %s", w.Key, w.Kind)
	}
}
