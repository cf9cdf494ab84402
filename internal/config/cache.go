// SPDX-License-Identifier: MPL-2.0

package config

import (
	"context"
	"sync"
)

var (
	cacheMu      sync.Mutex
	globalConfig *Config
	configPath   string
)

// Load returns the process-wide configuration, loading it on first use.
// Subsequent calls return the cached value until Reset is called.
func Load(ctx context.Context) (*Config, error) {
	cacheMu.Lock()
	defer cacheMu.Unlock()

	if globalConfig != nil {
		return globalConfig, nil
	}

	cfg, path, err := loadWithOptions(ctx, LoadOptions{
		ConfigFilePath: configFilePathOverride,
	})
	if err != nil {
		return nil, err
	}

	globalConfig = cfg
	configPath = path
	return cfg, nil
}

// Get returns the cached configuration, loading it on first use.
// On load failure it falls back to defaults; callers that need the error
// should use Load instead.
func Get() *Config {
	cfg, err := Load(context.Background())
	if err != nil {
		return DefaultConfig()
	}
	return cfg
}

// Path returns the file the cached configuration was loaded from.
// It is empty when defaults are in effect or nothing is loaded yet.
func Path() string {
	cacheMu.Lock()
	defer cacheMu.Unlock()
	return configPath
}
