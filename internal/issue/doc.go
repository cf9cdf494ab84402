// SPDX-License-Identifier: MPL-2.0

// Package issue turns launcher failures into guidance.
//
// It holds two things: a registry of known failure modes rendered as
// Markdown cards (missing launchfile, parse errors, unreadable resource
// files, and so on), and the ActionableError type that attaches the failed
// operation, the resource involved, and fix suggestions to an error as it
// travels up to the CLI.
package issue
