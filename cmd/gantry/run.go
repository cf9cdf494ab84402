// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/gantrylabs/gantry/internal/config"
	"github.com/gantrylabs/gantry/internal/issue"
	"github.com/gantrylabs/gantry/internal/launch"
	"github.com/gantrylabs/gantry/pkg/launchfile"
	"github.com/gantrylabs/gantry/pkg/settings"
	"github.com/gantrylabs/gantry/pkg/types"
)

// runCmd launches the target tool with resolved settings. Flag parsing is
// disabled: unknown flags belong to the target and must survive verbatim.
var runCmd = &cobra.Command{
	Use:   "run [tool args...]",
	Short: "Resolve settings and launch the target tool",
	Long: `Resolve settings and launch the target tool.

Declared setting flags (--name value, --name=value, -name value) become
argument-tier values. Launcher-owned flags use the reserved --gty- prefix:

  -n, --gty-dry-run     print the resolution table and command line, don't launch
  --gty-rc <path>       use this resource file instead of discovery
  --gty-no-rc           skip the resource-file tier
  --gty-launchfile <p>  use this launchfile
  --gty-config <path>   use this gantry config file
  --gty-verbose         verbose diagnostics

Everything else on the command line is forwarded to the target untouched,
in order. '--' ends flag scanning; the remainder is forwarded verbatim.`,
	DisableFlagParsing: true,
	SilenceUsage:       true,
	RunE: func(cmd *cobra.Command, args []string) error {
		if wantsHelp(args) {
			return cmd.Help()
		}
		return runLaunch(cmd.Context(), args)
	},
}

// wantsHelp spots an explicit help request in an unparsed command line.
// Only a leading -h/--help counts; later occurrences belong to the target.
func wantsHelp(args []string) bool {
	return len(args) > 0 && (args[0] == "-h" || args[0] == "--help")
}

// launchContext carries everything the run and describe commands share
// after the resolution pipeline has run.
type launchContext struct {
	lf      *launchfile.Launchfile
	session *settings.Session
	split   *launch.Split
	cfg     *config.Config
	logger  *log.Logger
}

func runLaunch(ctx context.Context, args []string) error {
	lc, err := prepareLaunch(ctx, args)
	if err != nil {
		return err
	}

	plan, err := launch.BuildPlan(lc.lf, lc.session, lc.split.Passthrough, os.Environ())
	if err != nil {
		return &ExitError{Code: types.ExitFailure, Err: err}
	}

	if lc.split.Options.DryRun {
		if err := launch.WriteTable(os.Stdout, lc.session); err != nil {
			return err
		}
		fmt.Println()
		fmt.Println(strings.Join(plan.CommandLine(), " "))
		return nil
	}

	result := launch.NewExecRunner().Run(ctx, plan)
	if result.Error != nil {
		if errors.Is(result.Error, launch.ErrTargetNotFound) {
			renderIssue(issue.TargetNotFoundId, lc.cfg)
		}
		return &ExitError{Code: result.ExitCode, Err: result.Error}
	}
	if !result.ExitCode.IsSuccess() {
		// The target's own exit code, propagated verbatim.
		return &ExitError{Code: result.ExitCode}
	}
	return nil
}

// prepareLaunch runs the shared front half of run and describe: scan the
// command line, load gantry's config, locate and parse the launchfile,
// rescan with the declared flags bound, and resolve the session.
func prepareLaunch(ctx context.Context, args []string) (*launchContext, error) {
	// First pass with no declared flags bound: only the launcher-owned
	// options matter here, and we need --gty-launchfile and --gty-config
	// before the launchfile can be located at all.
	pre, err := launch.SplitArgs(args, nil)
	if err != nil {
		return nil, &ExitError{Code: types.ExitUsage, Err: err}
	}

	if pre.Options.ConfigPath != "" {
		config.SetConfigFilePathOverride(pre.Options.ConfigPath)
	}
	cfg, err := config.Load(ctx)
	if err != nil {
		fmt.Fprintln(os.Stderr, WarningStyle.Render("Warning: ")+formatErrorForDisplay(err, pre.Options.Verbose))
		cfg = config.Get()
	}

	logger := newLaunchLogger(pre.Options.Verbose || verbose || cfg.UI.Verbose)

	lfPath, err := resolveLaunchfilePath(pre.Options.LaunchfilePath, cfg)
	if err != nil {
		renderIssue(issue.LaunchfileNotFoundId, cfg)
		return nil, &ExitError{Code: types.ExitFailure, Err: err}
	}
	logger.Debug("using launchfile", "path", lfPath)

	lf, err := launchfile.Parse(lfPath)
	if err != nil {
		renderIssue(issue.LaunchfileParseErrorId, cfg)
		return nil, &ExitError{Code: types.ExitFailure, Err: err}
	}

	// Second pass with the declared flags bound to their setting keys.
	split, err := launch.SplitArgs(args, lf.FlagIndex())
	if err != nil {
		return nil, &ExitError{Code: types.ExitUsage, Err: err}
	}

	wd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("failed to determine working directory: %w", err)
	}

	session, err := launch.ResolveSession(lf, split.Overrides, launch.SessionOptions{
		Environ:   os.Environ(),
		RCPath:    split.Options.RCPath,
		DisableRC: split.Options.NoRC || cfg.RC.Disable,
		WorkDir:   wd,
	})
	if err != nil {
		if errors.Is(err, launch.ErrResourceFileUnreadable) {
			renderIssue(issue.ResourceFileUnreadableId, cfg)
		} else {
			renderIssue(issue.InvalidPolicyId, cfg)
		}
		return nil, &ExitError{Code: types.ExitFailure, Err: err}
	}

	launch.LogDiagnostics(logger, session)

	return &launchContext{lf: lf, session: session, split: split, cfg: cfg, logger: logger}, nil
}

// resolveLaunchfilePath picks the launchfile: an explicit --gty-launchfile
// path, then launchfile.cue in the working directory, then the profile the
// config names. An explicit or configured path that does not exist is an
// error; only the implicit cwd probe misses quietly.
func resolveLaunchfilePath(explicit string, cfg *config.Config) (string, error) {
	if explicit != "" {
		if _, err := os.Stat(explicit); err != nil {
			return "", fmt.Errorf("launchfile %s: %w", explicit, err)
		}
		return explicit, nil
	}

	if _, err := os.Stat(launchfile.DefaultFileName); err == nil {
		return launchfile.DefaultFileName, nil
	}

	if path := cfg.Launchfile.String(); path != "" {
		if _, err := os.Stat(path); err != nil {
			return "", fmt.Errorf("configured launchfile %s: %w", path, err)
		}
		return path, nil
	}

	wd, _ := os.Getwd()
	return "", fmt.Errorf("no %s found in %s", launchfile.DefaultFileName, filepath.Clean(wd))
}

// newLaunchLogger builds the stderr diagnostics logger for one launch.
func newLaunchLogger(verboseMode bool) *log.Logger {
	logger := log.NewWithOptions(os.Stderr, log.Options{Prefix: "gantry"})
	if verboseMode {
		logger.SetLevel(log.DebugLevel)
	}
	return logger
}

// renderIssue prints a registry issue card to stderr. Rendering failures
// are ignored: the wrapped error still reaches the user through RunE.
func renderIssue(id issue.Id, cfg *config.Config) {
	rendered, err := issue.Get(id).Render(issueStyle(cfg))
	if err != nil {
		return
	}
	fmt.Fprint(os.Stderr, rendered)
}

// issueStyle maps the configured color scheme to a glamour style name.
func issueStyle(cfg *config.Config) string {
	if cfg != nil && cfg.UI.ColorScheme == config.ColorSchemeLight {
		return "light"
	}
	return "dark"
}
