// SPDX-License-Identifier: MPL-2.0

package launchfile

import (
	"fmt"
	"strings"
)

// GenerateCUE renders a launchfile back to CUE source. Used by `gantry
// init` to scaffold starter files; optional fields are emitted only when
// they differ from their defaults so generated files stay readable.
func GenerateCUE(lf *Launchfile) string {
	var sb strings.Builder

	sb.WriteString("// Gantry launchfile\n")
	sb.WriteString("// Declares the settings, resource file, and target of one wrapped tool.\n\n")

	sb.WriteString(fmt.Sprintf("tool: %q\n", lf.Tool))
	sb.WriteString(fmt.Sprintf("target: %q\n", lf.Target))

	if len(lf.Args) > 0 {
		sb.WriteString("args: [")
		for i, arg := range lf.Args {
			if i > 0 {
				sb.WriteString(", ")
			}
			sb.WriteString(fmt.Sprintf("%q", arg))
		}
		sb.WriteString("]\n")
	}

	if lf.RC != nil {
		sb.WriteString("\nrc: {\n")
		sb.WriteString(fmt.Sprintf("\tname: %q\n", lf.RC.Name))
		if len(lf.RC.Dirs) > 0 {
			sb.WriteString("\tdirs: [")
			for i, dir := range lf.RC.Dirs {
				if i > 0 {
					sb.WriteString(", ")
				}
				sb.WriteString(fmt.Sprintf("%q", dir))
			}
			sb.WriteString("]\n")
		}
		sb.WriteString("}\n")
	}

	if len(lf.Settings) > 0 {
		sb.WriteString("\nsettings: [\n")
		for _, decl := range lf.Settings {
			writeSettingDecl(&sb, decl)
		}
		sb.WriteString("]\n")
	}

	return sb.String()
}

func writeSettingDecl(sb *strings.Builder, decl SettingDecl) {
	sb.WriteString("\t{\n")
	sb.WriteString(fmt.Sprintf("\t\tkey: %q\n", decl.Key))
	if decl.Default != "" {
		sb.WriteString(fmt.Sprintf("\t\tdefault: %q\n", decl.Default))
	}
	if decl.Description != "" {
		sb.WriteString(fmt.Sprintf("\t\tdescription: %q\n", decl.Description))
	}
	if decl.Flag != "" {
		sb.WriteString(fmt.Sprintf("\t\tflag: %q\n", decl.Flag))
	}
	if decl.Env != "" {
		sb.WriteString(fmt.Sprintf("\t\tenv: %q\n", decl.Env))
	}
	if len(decl.Tiers) > 0 {
		sb.WriteString("\t\ttiers: [")
		for i, tier := range decl.Tiers {
			if i > 0 {
				sb.WriteString(", ")
			}
			sb.WriteString(fmt.Sprintf("%q", tier))
		}
		sb.WriteString("]\n")
	}
	if decl.Export != nil && !*decl.Export {
		sb.WriteString("\t\texport: false\n")
	}
	sb.WriteString("\t},\n")
}
