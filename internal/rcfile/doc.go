// SPDX-License-Identifier: MPL-2.0

// Package rcfile discovers and parses resource files: the optional
// per-user/per-project KEY=value documents that feed the resource-file tier
// of settings resolution.
//
// Discovery walks an ordered list of candidate directories and stops at the
// first existing file; a missing resource file is a normal outcome, never an
// error. Parsing is forgiving in the launcher tradition: a line that is not
// a valid assignment is skipped and reported as a positioned warning, so a
// stray line in a user's rc file can never break the launch.
//
// Two dialects are supported. Plain files are line-oriented KEY=value with
// comments, optional "export " prefixes, and single/double quoting. Files
// with a .sh extension are treated as shell fragments and parsed with
// mvdan.cc/sh: plain variable assignments are extracted, everything else
// (commands, conditionals, substitutions) is skipped with a warning.
package rcfile
