package storage

import (
	"github.com/kbukum/blobkit/logger"
)

// Selector binds a provider identifier to exactly one constructed
// backend. Construction dispatches through the factory registry once;
// after that the Selector is immutable and Service always returns the
// same Storage instance. There is no re-selection or hot-swapping.
type Selector struct {
	provider string
	storage  Storage
}

// NewSelector constructs the backend selected by cfg.Provider and
// returns a Selector bound to it. If the provider matches no registered
// backend, or the backend's configuration is invalid, no Selector is
// constructed.
func NewSelector(cfg Config, providerCfg any, log *logger.Logger) (*Selector, error) {
	cfg.ApplyDefaults()

	s, err := New(cfg, providerCfg, log)
	if err != nil {
		return nil, err
	}
	return &Selector{
		provider: cfg.Provider,
		storage:  s,
	}, nil
}

// Service returns the bound Storage instance.
func (s *Selector) Service() Storage {
	return s.storage
}

// Provider returns the identifier of the bound backend.
func (s *Selector) Provider() string {
	return s.provider
}
