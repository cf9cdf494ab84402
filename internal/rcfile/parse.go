// SPDX-License-Identifier: MPL-2.0

package rcfile

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Warning reports a resource-file line that was skipped during parsing.
// Warnings are diagnostics, not errors: parsing always completes.
type Warning struct {
	// File is the resource file path as given to the parser.
	File string
	// Line is the 1-based line number of the skipped content.
	Line int
	// Reason describes why the line was skipped.
	Reason string
}

// String renders the warning as file:line: reason.
func (w Warning) String() string {
	return fmt.Sprintf("%s:%d: %s", w.File, w.Line, w.Reason)
}

// Load reads and parses the resource file at path. Files with a .sh
// extension are parsed as shell fragments; everything else as plain
// KEY=value lines. A read failure is an error (the file was found by
// discovery, so it is expected to be readable); parse problems are only
// warnings.
func Load(path string) (map[string]string, []Warning, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read resource file %s: %w", path, err)
	}
	if strings.EqualFold(filepath.Ext(path), ".sh") {
		values, warnings := ParseShell(content, path)
		return values, warnings, nil
	}
	values, warnings := Parse(content, path)
	return values, warnings, nil
}

// Parse parses plain line-oriented resource-file content:
//   - lines starting with # are comments
//   - empty lines are ignored
//   - KEY=value (unquoted; trailing " #"-style comments stripped)
//   - KEY="value" (double-quoted, escapes: \n, \r, \t, \\, \", \$)
//   - KEY='value' (single-quoted, literal)
//   - export KEY=value (prefix ignored)
//   - KEY= (empty value)
//
// A line that is not a valid assignment is skipped and reported as a
// warning; later assignments to the same key override earlier ones. The
// filename is used only in warnings.
func Parse(content []byte, filename string) (map[string]string, []Warning) {
	values := make(map[string]string)
	var warnings []Warning

	warn := func(line int, reason string) {
		warnings = append(warnings, Warning{File: filename, Line: line, Reason: reason})
	}

	for i, line := range strings.Split(string(content), "\n") {
		lineNum := i + 1

		line = strings.TrimSuffix(line, "\r")
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		line = strings.TrimPrefix(line, "export ")
		line = strings.TrimSpace(line)

		key, value, found := strings.Cut(line, "=")
		if !found {
			warn(lineNum, "skipped line: missing '='")
			continue
		}

		key = strings.TrimSpace(key)
		if key == "" {
			warn(lineNum, "skipped line: empty variable name")
			continue
		}
		if !isIdentifier(key) {
			warn(lineNum, fmt.Sprintf("skipped line: %q is not a valid variable name", key))
			continue
		}

		parsed, err := parseValue(value)
		if err != nil {
			warn(lineNum, fmt.Sprintf("skipped line: %v", err))
			continue
		}

		values[key] = parsed
	}

	return values, warnings
}

// parseValue parses one assignment value, handling quoting and escapes.
func parseValue(value string) (string, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return "", nil
	}

	switch value[0] {
	case '"':
		if len(value) < 2 || value[len(value)-1] != '"' {
			return "", fmt.Errorf("unterminated double quote")
		}
		return unescapeDoubleQuoted(value[1 : len(value)-1]), nil
	case '\'':
		if len(value) < 2 || value[len(value)-1] != '\'' {
			return "", fmt.Errorf("unterminated single quote")
		}
		// Single-quoted values are literal.
		return value[1 : len(value)-1], nil
	}

	// Unquoted: strip a trailing inline comment.
	if idx := strings.Index(value, " #"); idx != -1 {
		value = strings.TrimSpace(value[:idx])
	}
	return value, nil
}

// unescapeDoubleQuoted processes escape sequences in a double-quoted value.
// Unknown escapes keep both characters.
func unescapeDoubleQuoted(value string) string {
	var result strings.Builder
	result.Grow(len(value))

	i := 0
	for i < len(value) {
		if value[i] == '\\' && i+1 < len(value) {
			switch next := value[i+1]; next {
			case 'n':
				result.WriteByte('\n')
			case 'r':
				result.WriteByte('\r')
			case 't':
				result.WriteByte('\t')
			case '\\', '"', '$':
				result.WriteByte(next)
			default:
				result.WriteByte('\\')
				result.WriteByte(next)
			}
			i += 2
			continue
		}
		result.WriteByte(value[i])
		i++
	}

	return result.String()
}

// isIdentifier reports whether s is a valid variable name
// ([A-Za-z_][A-Za-z0-9_]*).
func isIdentifier(s string) bool {
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c == '_':
		case c >= '0' && c <= '9':
			if i == 0 {
				return false
			}
		default:
			return false
		}
	}
	return len(s) > 0
}
