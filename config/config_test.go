package config

import (
	"os"
	"path/filepath"
	"testing"
)

type testConfig struct {
	Storage struct {
		Provider string `mapstructure:"provider"`
		Bucket   string `mapstructure:"bucket"`
	} `mapstructure:"storage"`
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func TestLoadConfig_FromYAML(t *testing.T) {
	dir := t.TempDir()
	cfgFile := writeFile(t, dir, "config.yml", "storage:\n  provider: s3\n  bucket: test-bucket\n")

	var cfg testConfig
	if err := LoadConfig("test", &cfg, WithConfigFile(cfgFile)); err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}
	if cfg.Storage.Provider != "s3" {
		t.Errorf("Provider = %q, want s3", cfg.Storage.Provider)
	}
	if cfg.Storage.Bucket != "test-bucket" {
		t.Errorf("Bucket = %q, want test-bucket", cfg.Storage.Bucket)
	}
}

func TestLoadConfig_EnvFile(t *testing.T) {
	dir := t.TempDir()
	cfgFile := writeFile(t, dir, "config.yml", "storage:\n  provider: local\n")
	envFile := writeFile(t, dir, ".env", "SOME_SECRET=shh\n")

	t.Cleanup(func() { os.Unsetenv("SOME_SECRET") })

	var cfg testConfig
	if err := LoadConfig("test", &cfg, WithConfigFile(cfgFile), WithEnvFile(envFile)); err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}
	if got := os.Getenv("SOME_SECRET"); got != "shh" {
		t.Errorf("SOME_SECRET = %q, want shh", got)
	}
}

func TestLoadConfig_MissingFilesIsNotAnError(t *testing.T) {
	var cfg testConfig
	if err := LoadConfig("test", &cfg, WithConfigFile(""), WithEnvFile("")); err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}
}

func TestLoadConfig_BadYAML(t *testing.T) {
	dir := t.TempDir()
	cfgFile := writeFile(t, dir, "config.yml", "storage: [\n")

	var cfg testConfig
	if err := LoadConfig("test", &cfg, WithConfigFile(cfgFile)); err == nil {
		t.Error("expected error for malformed YAML")
	}
}
