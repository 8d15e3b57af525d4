package azure

import (
	"errors"
	"fmt"

	apperrors "github.com/kbukum/blobkit/errors"
)

// Config holds Azure Blob Storage configuration.
type Config struct {
	// AccountName is the storage account name.
	AccountName string `mapstructure:"account_name" json:"account_name"`

	// AccountKey is the shared account access key.
	AccountKey string `mapstructure:"account_key" json:"-"`

	// Container is the blob container name.
	Container string `mapstructure:"container" json:"container"`

	// Endpoint is a custom blob service endpoint (e.g. Azurite). Empty
	// means the public https://<account>.blob.core.windows.net endpoint.
	Endpoint string `mapstructure:"endpoint" json:"endpoint"`
}

// ApplyDefaults fills in zero-valued fields with sensible defaults.
func (c *Config) ApplyDefaults() {
	// No defaults to apply; all fields except Endpoint are required.
}

// Validate checks that the Azure configuration is valid.
func (c *Config) Validate() error {
	var errs []error
	if c.AccountName == "" {
		errs = append(errs, errors.New("azure: account_name is required"))
	}
	if c.AccountKey == "" {
		errs = append(errs, errors.New("azure: account_key is required"))
	}
	if c.Container == "" {
		errs = append(errs, errors.New("azure: container is required"))
	}
	if len(errs) > 0 {
		return apperrors.InvalidConfig(fmt.Sprintf("azure: %v", errors.Join(errs...)))
	}
	return nil
}

// GetBucket returns the container name.
func (c *Config) GetBucket() string { return c.Container }

// ServiceURL returns the blob service endpoint for the account.
func (c *Config) ServiceURL() string {
	if c.Endpoint != "" {
		return c.Endpoint
	}
	return fmt.Sprintf("https://%s.blob.core.windows.net/", c.AccountName)
}
