// SPDX-License-Identifier: MPL-2.0

// Package launchfile defines the schema and parsing for launchfile CUE
// files.
//
// A launchfile declares everything the launcher needs to know about one
// wrapped tool: the target executable template, fixed leading arguments,
// the resource-file search, and the settings the tool consumes. Each
// setting declaration carries its own ordered tier list, so precedence is
// data in the launchfile rather than logic in the launcher — one tool's
// DISPLAY may be argument-only while its ARCH also reads the environment.
//
// Launchfiles are validated against an embedded CUE schema on parse, then
// structurally validated (reserved keys, duplicate flags and environment
// names, per-key tier lists). The package also bridges declarations into
// the settings resolver's input maps and policy.
package launchfile
