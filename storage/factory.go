package storage

import (
	apperrors "github.com/kbukum/blobkit/errors"
	"github.com/kbukum/blobkit/logger"
)

// Factory creates a Storage implementation from core config and
// backend-specific configuration. Each backend type-asserts providerCfg
// to its own config type.
type Factory func(cfg Config, providerCfg any, log *logger.Logger) (Storage, error)

var factories = make(map[string]Factory)

// RegisterFactory registers a storage backend factory for the given
// provider name. Backend packages call this in an init function to make
// themselves available to New.
func RegisterFactory(name string, f Factory) {
	factories[name] = f
}

// New creates a Storage implementation based on the given Config. The
// provider field determines which backend is used. providerCfg carries
// backend-specific settings (e.g. *s3.Config, *azure.Config). Ensure the
// desired backend package has been imported (e.g.
// _ "github.com/kbukum/blobkit/storage/s3") so its factory is registered.
func New(cfg Config, providerCfg any, log *logger.Logger) (Storage, error) {
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	l := log.WithComponent("storage")

	f, ok := factories[cfg.Provider]
	if !ok {
		return nil, apperrors.UnsupportedBackend(cfg.Provider)
	}

	l.Info("initializing storage", map[string]interface{}{"provider": cfg.Provider})
	return f(cfg, providerCfg, l)
}
