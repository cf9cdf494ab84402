// SPDX-License-Identifier: MPL-2.0

// Package cmd contains all CLI commands for gantry.
//
// This package implements the Cobra command hierarchy for the gantry CLI:
// the root command, the run and describe launch commands, launchfile
// scaffolding, configuration management, and documentation utilities.
package cmd
