// SPDX-License-Identifier: MPL-2.0

package platform

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
)

// HostOS returns the running operating system name (runtime.GOOS).
func HostOS() string {
	return runtime.GOOS
}

// HostArch returns the host architecture identifier in "os-arch" form,
// e.g. "linux-amd64" or "darwin-arm64". Launchfile targets use it to pick
// per-architecture binary directories.
func HostArch() string {
	return runtime.GOOS + "-" + runtime.GOARCH
}

// ExecutableDir returns the directory holding the running executable, with
// symlinks resolved so installations launched through a symlink farm still
// find their sibling files.
func ExecutableDir() (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", fmt.Errorf("failed to locate executable: %w", err)
	}
	resolved, err := filepath.EvalSymlinks(exe)
	if err != nil {
		// A dangling symlink is unusual but not fatal; fall back to the
		// unresolved path.
		resolved = exe
	}
	return filepath.Dir(resolved), nil
}

// HomeDir returns the current user's home directory.
func HomeDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return home, nil
}
