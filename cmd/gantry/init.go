// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/gantrylabs/gantry/pkg/launchfile"
)

var (
	initForce    bool
	initTemplate string

	// initCmd creates a new launchfile
	initCmd = &cobra.Command{
		Use:   "init [filename]",
		Short: "Create a new launchfile in the current directory",
		Long: `Create a new launchfile in the current directory with example settings.

This command generates a starter launchfile (and, for the default
template, a sample resource file) to help you get started quickly.`,
		RunE: runInit,
	}
)

func init() {
	initCmd.Flags().BoolVarP(&initForce, "force", "f", false, "overwrite existing launchfile")
	initCmd.Flags().StringVarP(&initTemplate, "template", "t", "default", "template to use (default, minimal)")
}

func runInit(cmd *cobra.Command, args []string) error {
	filename := launchfile.DefaultFileName
	if len(args) > 0 {
		filename = args[0]
	}

	// Check if file exists
	if _, err := os.Stat(filename); err == nil && !initForce {
		return fmt.Errorf("file '%s' already exists. Use --force to overwrite", filename)
	}

	lf := generateLaunchfile(initTemplate)
	if err := os.WriteFile(filename, []byte(launchfile.GenerateCUE(lf)), 0o644); err != nil {
		return fmt.Errorf("failed to write file: %w", err)
	}

	absPath, _ := filepath.Abs(filename)
	fmt.Printf("%s Created %s\n", SuccessStyle.Render("✓"), absPath)

	// The default template declares a resource file; scaffold a matching
	// sample next to the launchfile unless one is already there.
	if lf.RC != nil {
		rcPath := filepath.Join(filepath.Dir(filename), lf.RC.Name)
		if _, err := os.Stat(rcPath); os.IsNotExist(err) {
			if err := os.WriteFile(rcPath, []byte(sampleRCFile), 0o644); err != nil {
				return fmt.Errorf("failed to write resource file: %w", err)
			}
			fmt.Printf("%s Created %s\n", SuccessStyle.Render("✓"), rcPath)
		}
	}

	fmt.Println()
	fmt.Println(SubtitleStyle.Render("Next steps:"))
	fmt.Println("  1. Edit the launchfile to declare your tool's settings and target")
	fmt.Println("  2. Run 'gantry describe' to see the resolved settings")
	fmt.Println("  3. Run 'gantry run' to launch the tool")

	return nil
}

func generateLaunchfile(template string) *launchfile.Launchfile {
	switch template {
	case "minimal":
		return &launchfile.Launchfile{
			Tool:   "mytool",
			Target: "/usr/bin/mytool",
			Settings: []launchfile.SettingDecl{
				{
					Key:         "LOG_LEVEL",
					Default:     "info",
					Description: "Logging verbosity",
					Tiers:       []string{"argument", "environment"},
				},
			},
		}

	default: // "default"
		noExport := false
		return &launchfile.Launchfile{
			Tool:   "mytool",
			Target: "${TOOL_ROOT}/bin/${GANTRY_ARCH}/mytool",
			Args:   []string{"--workdir", "${WORK_DIR}"},
			RC: &launchfile.RCConfig{
				Name: ".mytoolrc",
				Dirs: []string{"cwd", "home"},
			},
			Settings: []launchfile.SettingDecl{
				{
					Key:         "TOOL_ROOT",
					Default:     "/opt/mytool",
					Description: "Installation root of the wrapped tool",
					Tiers:       []string{"argument", "environment", "rcfile"},
					Export:      &noExport,
				},
				{
					Key:         "WORK_DIR",
					Default:     "${TOOL_ROOT}/work",
					Description: "Scratch directory handed to the tool",
					Tiers:       []string{"argument", "rcfile"},
				},
				{
					Key:         "LOG_LEVEL",
					Default:     "info",
					Description: "Logging verbosity",
					Flag:        "log-level",
					Env:         "MYTOOL_LOG_LEVEL",
					Tiers:       []string{"argument", "environment", "rcfile"},
				},
			},
		}
	}
}

const sampleRCFile = `# Sample gantry resource file.
# Plain KEY=value assignments; variables bind to settings through their
# declared env names. Lines gantry cannot parse are skipped with a warning.

#TOOL_ROOT=/opt/mytool
#MYTOOL_LOG_LEVEL=debug
`
