// Package config loads blobkit configuration from YAML files and the
// environment.
//
// LoadConfig resolves a config.yml and an optional .env file, binds
// environment variables through viper, and unmarshals the merged result
// into the caller's struct. Applications embed storage and logging
// configuration in their own config type:
//
//	type AppConfig struct {
//	    Logging logger.Config  `mapstructure:"logging"`
//	    Storage storage.Config `mapstructure:"storage"`
//	    S3      s3.Config      `mapstructure:"s3"`
//	}
//
// Backend credentials are typically supplied via environment variables
// (e.g. STORAGE_SECRET_KEY) rather than checked-in YAML.
package config
