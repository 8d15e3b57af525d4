package storage

import (
	"testing"

	apperrors "github.com/kbukum/blobkit/errors"
	"github.com/kbukum/blobkit/logger"
)

func TestNewSelector_UnsupportedBackend(t *testing.T) {
	sel, err := NewSelector(Config{Provider: "dropbox"}, nil, testLogger())
	if !apperrors.IsCode(err, apperrors.ErrCodeUnsupportedBackend) {
		t.Errorf("expected UNSUPPORTED_BACKEND, got %v", err)
	}
	if sel != nil {
		t.Error("expected no selector on construction failure")
	}
}

func TestNewSelector_BoundOnce(t *testing.T) {
	calls := 0
	RegisterFactory("selector-mock", func(_ Config, _ any, _ *logger.Logger) (Storage, error) {
		calls++
		return newMockStorage(), nil
	})

	sel, err := NewSelector(Config{Provider: "selector-mock"}, nil, testLogger())
	if err != nil {
		t.Fatalf("NewSelector() error = %v", err)
	}
	if calls != 1 {
		t.Errorf("factory called %d times, want 1", calls)
	}

	// Service is deterministic for the selector's lifetime.
	first := sel.Service()
	for i := 0; i < 5; i++ {
		if sel.Service() != first {
			t.Fatal("Service() returned a different instance")
		}
	}
	if calls != 1 {
		t.Errorf("factory re-invoked after binding: %d calls", calls)
	}
	if sel.Provider() != "selector-mock" {
		t.Errorf("Provider() = %q, want selector-mock", sel.Provider())
	}
}

func TestNewSelector_DefaultProvider(t *testing.T) {
	RegisterFactory(ProviderLocal, func(_ Config, _ any, _ *logger.Logger) (Storage, error) {
		return newMockStorage(), nil
	})

	sel, err := NewSelector(Config{}, nil, testLogger())
	if err != nil {
		t.Fatalf("NewSelector() error = %v", err)
	}
	if sel.Provider() != ProviderLocal {
		t.Errorf("Provider() = %q, want %q", sel.Provider(), ProviderLocal)
	}
}
