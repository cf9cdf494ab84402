// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"

	"github.com/gantrylabs/gantry/internal/config"
)

// docsCmd renders the launchfile format reference in the terminal.
var docsCmd = &cobra.Command{
	Use:   "docs",
	Short: "Show the launchfile format reference",
	RunE: func(cmd *cobra.Command, args []string) error {
		rendered, err := glamour.Render(launchfileReference, issueStyle(config.Get()))
		if err != nil {
			return fmt.Errorf("failed to render documentation: %w", err)
		}
		fmt.Print(rendered)
		return nil
	},
}

const launchfileReference = `# The gantry launchfile

A launchfile (` + "`launchfile.cue`" + `) declares one wrapped tool: the
settings it consumes, where its resource file lives, and the executable
to launch.

## Top-level fields

` + "```cue" + `
tool: "mytool"                                // display name
target: "${TOOL_ROOT}/bin/${GANTRY_ARCH}/mytool" // executable path template
args: ["--workdir", "${WORK_DIR}"]            // fixed leading arguments
` + "```" + `

The target and fixed arguments may embed ` + "`${KEY}`" + ` references to
declared settings; they are expanded after resolution.

## Resource file

` + "```cue" + `
rc: {
    name: ".mytoolrc"
    dirs: ["cwd", "home", "/etc/mytool"]
}
` + "```" + `

Directories are probed in order; the first existing file wins. Entries
mix well-known tokens (cwd, home, exedir, config) and literal paths.
Resource files hold KEY=value lines (comments, blank lines, quoting, and
an optional export prefix are accepted); files named *.sh are parsed as
shell fragments and their plain assignments extracted. Malformed lines
are skipped with a warning, never fatal.

## Settings

` + "```cue" + `
settings: [{
    key: "LOG_LEVEL"              // identifier, also the substitution name
    default: "info"               // the floor value; always present
    description: "Logging verbosity"
    flag: "log-level"             // CLI flag (default: lowercased key)
    env: "MYTOOL_LOG_LEVEL"       // env/rc variable (default: the key)
    tiers: ["argument", "environment", "rcfile"]
    export: true                  // export resolved value to the child env
}]
` + "```" + `

Each setting resolves from its own ordered tier list; the first tier
supplying a non-empty value wins and the default is the implicit floor.
Tier names: argument, environment, rcfile, default (default may only
appear last).

## Substitution

Values, targets, and fixed arguments may reference other settings with
` + "`${KEY}`" + ` or ` + "`$KEY`" + `; ` + "`$$`" + ` escapes a literal
dollar. References expand against final resolved values. Unknown
references stay literal and produce a warning; so do reference cycles.

## Built-in settings

gantry injects read-only defaults ahead of the declared settings:
GANTRY_OS, GANTRY_ARCH, GANTRY_HOME, GANTRY_EXE_DIR. They may be
referenced anywhere a declared setting can, and are never exported.

## Provenance

` + "`gantry describe`" + ` (and ` + "`gantry run -n`" + `) print one line
per setting, in declaration order:

    CODE  KEY  VALUE

where CODE is a (argument), e (environment), rc (resource file), or
d (default).
`
