// SPDX-License-Identifier: MPL-2.0

package cueutil

import (
	"fmt"
	"strings"

	"cuelang.org/go/cue/errors"
)

// FormatError rewrites a CUE error for display: every underlying error is
// prefixed with the document filename and the JSON-style path of the field
// it concerns, e.g.
//
//	launchfile.cue: settings[0].tiers: value not allowed
//
// Non-CUE errors are wrapped with the filename only.
func FormatError(err error, file string) error {
	if err == nil {
		return nil
	}

	list := errors.Errors(err)
	if len(list) == 0 {
		return fmt.Errorf("%s: %w", file, err)
	}

	lines := make([]string, 0, len(list))
	for _, e := range list {
		lines = append(lines, describe(e))
	}

	if len(lines) == 1 {
		return fmt.Errorf("%s: %s", file, lines[0])
	}
	return fmt.Errorf("%s: validation failed:\n  %s", file, strings.Join(lines, "\n  "))
}

// describe renders one CUE error as "path: message". CUE sometimes repeats
// the path inside the message; the duplicate is stripped.
func describe(e errors.Error) string {
	path := jsonPath(errors.Path(e))
	msg := e.Error()
	if path == "" {
		return msg
	}

	if rest, found := strings.CutPrefix(msg, path); found {
		msg = strings.TrimSpace(strings.TrimPrefix(rest, ":"))
	}
	return path + ": " + msg
}

// jsonPath joins a CUE error path into JSON-path notation: numeric elements
// become array indices, so ["settings", "0", "key"] renders as
// "settings[0].key".
func jsonPath(parts []string) string {
	var b strings.Builder
	for i, part := range parts {
		switch {
		case i > 0 && isDigits(part):
			b.WriteByte('[')
			b.WriteString(part)
			b.WriteByte(']')
		case i > 0:
			b.WriteByte('.')
			fallthrough
		default:
			b.WriteString(part)
		}
	}
	return b.String()
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, c := range s {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}

// CheckFileSize rejects documents larger than maxSize bytes before they
// reach the CUE evaluator.
func CheckFileSize(data []byte, maxSize int64, filename string) error {
	if int64(len(data)) > maxSize {
		return fmt.Errorf("%s: file size %d bytes exceeds maximum %d bytes",
			filename, len(data), maxSize)
	}
	return nil
}
