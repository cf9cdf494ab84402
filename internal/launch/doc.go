// SPDX-License-Identifier: MPL-2.0

// Package launch turns a parsed launchfile and a command line into a running
// target process.
//
// The pipeline has four stages: SplitArgs scans the command line into setting
// overrides, launcher-owned options, and verbatim passthrough;
// ResolveSession gathers the tier inputs (resource file, environment,
// overrides) and runs the resolver; BuildPlan expands the target template and
// fixed arguments against the session and assembles the child environment;
// and a Runner executes the plan (or, for dry runs, the provenance table is
// printed instead).
package launch
