package logger

import (
	"testing"
)

func TestConfig_ApplyDefaults(t *testing.T) {
	cfg := Config{}
	cfg.ApplyDefaults()
	if cfg.Level != "info" {
		t.Errorf("Level = %q, want info", cfg.Level)
	}
	if cfg.Format != "console" {
		t.Errorf("Format = %q, want console", cfg.Format)
	}
	if cfg.Output != "stdout" {
		t.Errorf("Output = %q, want stdout", cfg.Output)
	}
	if !cfg.Timestamp {
		t.Error("expected Timestamp=true after defaults")
	}
}

func TestConfig_Validate(t *testing.T) {
	cfg := Config{Level: "info", Format: "json"}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate() error = %v", err)
	}

	bad := Config{Level: "verbose", Format: "json"}
	if err := bad.Validate(); err == nil {
		t.Error("expected error for invalid level")
	}

	badFmt := Config{Level: "info", Format: "xml"}
	if err := badFmt.Validate(); err == nil {
		t.Error("expected error for invalid format")
	}
}

func TestNew_InvalidLevelFallsBack(t *testing.T) {
	l := New(&Config{Level: "bogus", Format: "json", Output: "stdout"}, "test")
	if l == nil {
		t.Fatal("expected logger")
	}
}

func TestWithComponent(t *testing.T) {
	l := NewDefault("test").WithComponent("storage")
	if l == nil {
		t.Fatal("expected logger")
	}
	// Tagged logger must be a distinct instance.
	l2 := l.WithComponent("s3")
	if l == l2 {
		t.Error("expected WithComponent to return a new logger")
	}
}

func TestFields(t *testing.T) {
	m := Fields("key", "a.txt", "size", 42)
	if m["key"] != "a.txt" || m["size"] != 42 {
		t.Errorf("unexpected fields: %v", m)
	}

	// Odd trailing value is dropped.
	m2 := Fields("key", "a.txt", "dangling")
	if len(m2) != 1 {
		t.Errorf("expected 1 field, got %d", len(m2))
	}
}

func TestGetGlobalLogger(t *testing.T) {
	SetGlobalLogger(nil)
	l := GetGlobalLogger()
	if l == nil {
		t.Fatal("expected default global logger")
	}
	if GetGlobalLogger() != l {
		t.Error("expected the same global instance on repeat calls")
	}
}
