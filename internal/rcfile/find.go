// SPDX-License-Identifier: MPL-2.0

package rcfile

import (
	"os"
	"path/filepath"
)

// Find searches the candidate directories in order and returns the path of
// the first existing regular file named name. The search stops at the first
// match; later candidates are never consulted. Empty directory entries are
// skipped. Not finding a file is a normal result, reported via the bool.
func Find(dirs []string, name string) (string, bool) {
	if name == "" {
		return "", false
	}
	for _, dir := range dirs {
		if dir == "" {
			continue
		}
		path := filepath.Join(dir, name)
		info, err := os.Stat(path)
		if err != nil || info.IsDir() {
			continue
		}
		return path, true
	}
	return "", false
}
