// SPDX-License-Identifier: MPL-2.0

package rcfile

import (
	"bytes"
	"fmt"

	"mvdan.cc/sh/v3/expand"
	"mvdan.cc/sh/v3/syntax"
)

// ParseShell parses a shell-fragment resource file and extracts plain
// variable assignments (FOO=bar, FOO="bar", export FOO=bar). Assignment
// values may reference variables assigned earlier in the same file;
// references to anything else expand to empty, as a shell would.
//
// Statements that are not simple assignments — commands, conditionals,
// pipelines, command substitutions — are skipped with a warning. A file
// that does not parse as shell at all yields no values and one warning.
func ParseShell(content []byte, filename string) (map[string]string, []Warning) {
	values := make(map[string]string)
	var warnings []Warning

	warn := func(line int, reason string) {
		warnings = append(warnings, Warning{File: filename, Line: line, Reason: reason})
	}

	parser := syntax.NewParser(syntax.Variant(syntax.LangBash))
	file, err := parser.Parse(bytes.NewReader(content), filename)
	if err != nil {
		warn(0, fmt.Sprintf("not parseable as shell: %v", err))
		return values, warnings
	}

	for _, stmt := range file.Stmts {
		line := int(stmt.Pos().Line())

		switch cmd := stmt.Cmd.(type) {
		case *syntax.CallExpr:
			if len(cmd.Args) > 0 {
				warn(line, "skipped statement: command invocation")
				continue
			}
			for _, assign := range cmd.Assigns {
				extractAssign(assign, line, values, warn)
			}
		case *syntax.DeclClause:
			// "export FOO=bar" parses as a declaration clause.
			if cmd.Variant == nil || cmd.Variant.Value != "export" {
				warn(line, "skipped statement: not a variable assignment")
				continue
			}
			for _, assign := range cmd.Args {
				if assign.Naked && assign.Value == nil {
					// "export FOO" re-exports an existing variable;
					// nothing to record.
					continue
				}
				extractAssign(assign, line, values, warn)
			}
		default:
			warn(line, "skipped statement: not a variable assignment")
		}
	}

	return values, warnings
}

// extractAssign evaluates one assignment against the values collected so
// far and stores the result. Appends, arrays, and values that need command
// execution are skipped with a warning.
func extractAssign(assign *syntax.Assign, line int, values map[string]string, warn func(int, string)) {
	if assign.Name == nil {
		warn(line, "skipped assignment: no variable name")
		return
	}
	name := assign.Name.Value

	if assign.Append || assign.Array != nil || assign.Index != nil {
		warn(line, fmt.Sprintf("skipped assignment to %q: only plain scalar assignments are supported", name))
		return
	}
	if assign.Value == nil {
		values[name] = ""
		return
	}

	value, err := evalWord(assign.Value, values)
	if err != nil {
		warn(line, fmt.Sprintf("skipped assignment to %q: %v", name, err))
		return
	}
	values[name] = value
}

// evalWord expands a word against the assignments seen so far. Command
// substitution has no handler configured, so it fails and the caller skips
// the assignment.
func evalWord(word *syntax.Word, values map[string]string) (string, error) {
	pairs := make([]string, 0, len(values))
	for k, v := range values {
		pairs = append(pairs, k+"="+v)
	}
	cfg := &expand.Config{Env: expand.ListEnviron(pairs...)}
	return expand.Literal(cfg, word)
}
