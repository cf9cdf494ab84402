// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/gantrylabs/gantry/internal/launch"
)

// describeCmd shows the resolution table without launching anything. It
// accepts the same command line as run so a launch can be previewed by
// swapping one word.
var describeCmd = &cobra.Command{
	Use:   "describe [tool args...]",
	Short: "Show every setting with its resolved value and provenance",
	Long: `Show every setting with its resolved value and provenance.

The same resolution as 'gantry run' is performed - declared flags,
environment variables, resource file, defaults, substitution - but the
target is never launched. One line per setting, in declaration order:

  CODE  KEY  VALUE

where CODE names the winning tier: a (argument), e (environment),
rc (resource file), d (default).`,
	DisableFlagParsing: true,
	SilenceUsage:       true,
	RunE: func(cmd *cobra.Command, args []string) error {
		if wantsHelp(args) {
			return cmd.Help()
		}

		lc, err := prepareLaunch(cmd.Context(), args)
		if err != nil {
			return err
		}
		return launch.WriteTable(os.Stdout, lc.session)
	},
}
