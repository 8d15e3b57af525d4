package storage

import (
	"testing"

	apperrors "github.com/kbukum/blobkit/errors"
	"github.com/kbukum/blobkit/logger"
)

func testLogger() *logger.Logger {
	return logger.New(&logger.Config{Level: "error", Format: "json", Output: "stderr"}, "test")
}

func TestNew_UnsupportedProvider(t *testing.T) {
	_, err := New(Config{Provider: "dropbox"}, nil, testLogger())
	if !apperrors.IsCode(err, apperrors.ErrCodeUnsupportedBackend) {
		t.Errorf("expected UNSUPPORTED_BACKEND, got %v", err)
	}
}

func TestNew_RegisteredProvider(t *testing.T) {
	ms := newMockStorage()
	RegisterFactory("mock", func(_ Config, _ any, _ *logger.Logger) (Storage, error) {
		return ms, nil
	})

	s, err := New(Config{Provider: "mock"}, nil, testLogger())
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if s != Storage(ms) {
		t.Error("expected the factory-built instance")
	}
}

func TestNew_FactoryError(t *testing.T) {
	RegisterFactory("broken", func(_ Config, _ any, _ *logger.Logger) (Storage, error) {
		return nil, apperrors.InvalidConfig("bucket is required")
	})

	_, err := New(Config{Provider: "broken"}, nil, testLogger())
	if !apperrors.IsCode(err, apperrors.ErrCodeInvalidConfig) {
		t.Errorf("expected INVALID_CONFIG, got %v", err)
	}
}

func TestConfig_ApplyDefaults(t *testing.T) {
	cfg := Config{}
	cfg.ApplyDefaults()
	if cfg.Provider != ProviderLocal {
		t.Errorf("Provider = %q, want %q", cfg.Provider, ProviderLocal)
	}

	cfg2 := Config{Provider: ProviderS3}
	cfg2.ApplyDefaults()
	if cfg2.Provider != ProviderS3 {
		t.Errorf("Provider = %q, want %q", cfg2.Provider, ProviderS3)
	}
}
