package storage

import (
	apperrors "github.com/kbukum/blobkit/errors"
)

// Provider constants for supported storage backends.
const (
	ProviderLocal  = "local"
	ProviderS3     = "s3"
	ProviderAzure  = "azure"
	ProviderGoogle = "google"
)

// DefaultProvider is used when no provider is configured.
const DefaultProvider = ProviderLocal

// Config holds backend selection configuration. Backend-specific
// settings (credentials, container names) live in the per-backend
// config types and are passed to New/NewSelector separately.
type Config struct {
	// Provider selects the storage backend: "s3", "azure", "google" or "local".
	Provider string `mapstructure:"provider" json:"provider"`
}

// ApplyDefaults fills in zero-valued fields with sensible defaults.
func (c *Config) ApplyDefaults() {
	if c.Provider == "" {
		c.Provider = DefaultProvider
	}
}

// Validate checks that the configuration is complete. Whether the
// provider names a known backend is decided by the factory registry,
// not here, so adding a backend requires no change to this package.
func (c *Config) Validate() error {
	if c.Provider == "" {
		return apperrors.InvalidConfig("provider is required")
	}
	return nil
}
