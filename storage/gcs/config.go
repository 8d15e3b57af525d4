package gcs

import (
	"errors"
	"fmt"

	apperrors "github.com/kbukum/blobkit/errors"
)

// Config holds Google Cloud Storage configuration.
type Config struct {
	// Bucket is the GCS bucket name.
	Bucket string `mapstructure:"bucket" json:"bucket"`

	// ProjectID is the Google Cloud project that owns the bucket.
	ProjectID string `mapstructure:"project_id" json:"project_id"`

	// CredentialsFile is the path to a service-account key file.
	CredentialsFile string `mapstructure:"credentials_file" json:"credentials_file"`
}

// ApplyDefaults fills in zero-valued fields with sensible defaults.
func (c *Config) ApplyDefaults() {
	// No defaults to apply; all fields are required.
}

// Validate checks that the GCS configuration is valid.
func (c *Config) Validate() error {
	var errs []error
	if c.Bucket == "" {
		errs = append(errs, errors.New("gcs: bucket is required"))
	}
	if c.ProjectID == "" {
		errs = append(errs, errors.New("gcs: project_id is required"))
	}
	if c.CredentialsFile == "" {
		errs = append(errs, errors.New("gcs: credentials_file is required"))
	}
	if len(errs) > 0 {
		return apperrors.InvalidConfig(fmt.Sprintf("gcs: %v", errors.Join(errs...)))
	}
	return nil
}

// GetBucket returns the bucket name.
func (c *Config) GetBucket() string { return c.Bucket }
