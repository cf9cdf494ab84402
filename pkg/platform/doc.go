// SPDX-License-Identifier: MPL-2.0

// Package platform provides cross-platform compatibility utilities: GOOS
// name constants and host identity helpers (architecture id, executable
// directory, home directory) that feed the launcher's built-in settings.
package platform
