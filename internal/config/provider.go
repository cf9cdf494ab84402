// SPDX-License-Identifier: MPL-2.0

package config

import "context"

// LoadOptions pins down where configuration is read from. The zero value
// means the platform config directory.
type LoadOptions struct {
	// ConfigFilePath forces one specific config file; the file must exist.
	ConfigFilePath string
	// ConfigDirPath replaces the platform config directory lookup.
	ConfigDirPath string
}

// Provider abstracts configuration loading so the launch pipeline can be
// composed with canned configs in tests instead of touching the user's
// config directory.
type Provider interface {
	Load(ctx context.Context, opts LoadOptions) (*Config, error)
}

// cueFileProvider loads the CUE config file from disk. It is stateless;
// caching lives in the package-level Load/Get layer.
type cueFileProvider struct{}

// NewProvider returns the on-disk configuration provider.
func NewProvider() Provider {
	return cueFileProvider{}
}

// Load reads, validates, and decodes the configuration named by opts.
func (cueFileProvider) Load(ctx context.Context, opts LoadOptions) (*Config, error) {
	cfg, _, err := loadWithOptions(ctx, opts)
	if err != nil {
		return nil, err
	}
	return cfg, nil
}
