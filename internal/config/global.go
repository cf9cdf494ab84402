// SPDX-License-Identifier: MPL-2.0

package config

// configDirOverride allows tests to override the config directory.
// This is necessary because os.UserHomeDir() doesn't reliably respect
// the HOME environment variable on all platforms (e.g., macOS in CI).
var configDirOverride string

// configFilePathOverride forces Load to read a specific config file,
// set from the --gty-config flag before any command runs.
var configFilePathOverride string

// Reset clears overrides and the cached configuration. Call from test
// cleanup to restore defaults.
func Reset() {
	cacheMu.Lock()
	defer cacheMu.Unlock()
	configDirOverride = ""
	configFilePathOverride = ""
	globalConfig = nil
	configPath = ""
}

// SetConfigDirOverride sets a custom config directory path.
// This is primarily intended for testing to bypass os.UserHomeDir() which
// doesn't reliably respect the HOME env var on all platforms (e.g., macOS in CI).
func SetConfigDirOverride(dir string) {
	configDirOverride = dir
}

// SetConfigFilePathOverride forces subsequent loads to read the given
// config file. Any cached configuration is discarded.
func SetConfigFilePathOverride(path string) {
	cacheMu.Lock()
	defer cacheMu.Unlock()
	configFilePathOverride = path
	globalConfig = nil
	configPath = ""
}
