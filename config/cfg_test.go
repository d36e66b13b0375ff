package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rupor-github/gencfg"
)

func TestLoadConfiguration_NoFile(t *testing.T) {
	cfg, err := LoadConfiguration("")
	if err != nil {
		t.Fatalf("LoadConfiguration() with empty path error = %v", err)
	}

	if cfg == nil {
		t.Fatal("LoadConfiguration() returned nil config")
	}

	if cfg.Version != 1 {
		t.Errorf("Default config version = %d, want 1", cfg.Version)
	}
}

func TestConfig_DefaultValues(t *testing.T) {
	cfg, err := LoadConfiguration("")
	if err != nil {
		t.Fatalf("LoadConfiguration() error = %v", err)
	}

	if cfg.Reflow.Width != 79 {
		t.Errorf("Width = %d, want 79", cfg.Reflow.Width)
	}
	if cfg.Reflow.PrefixDepth != 2 {
		t.Errorf("PrefixDepth = %d, want 2", cfg.Reflow.PrefixDepth)
	}
	if cfg.Reflow.Balance.ShortParagraph != 3 {
		t.Errorf("ShortParagraph = %d, want 3", cfg.Reflow.Balance.ShortParagraph)
	}
	if cfg.Reflow.Balance.TailRatio != 1.0 {
		t.Errorf("TailRatio = %f, want 1.0", cfg.Reflow.Balance.TailRatio)
	}
	if cfg.Reflow.Workers != 0 {
		t.Errorf("Workers = %d, want 0", cfg.Reflow.Workers)
	}
	if !cfg.Reflow.Cache {
		t.Error("Expected Cache to be enabled by default")
	}
	if cfg.Input.Encoding != "" {
		t.Errorf("Encoding = %q, want empty", cfg.Input.Encoding)
	}
	if cfg.Logging.ConsoleLogger.Level != "normal" {
		t.Errorf("Console level = %q, want normal", cfg.Logging.ConsoleLogger.Level)
	}
	if cfg.Logging.FileLogger.Level != "none" {
		t.Errorf("File level = %q, want none", cfg.Logging.FileLogger.Level)
	}
}

func TestLoadConfiguration_WithFile(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	configContent := `version: 1
reflow:
  width: 60
  prefix_depth: 3
  balance:
    short_paragraph: 5
    tail_ratio: 0.75
  workers: 4
  cache: false
input:
  encoding: windows-1251
logging:
  console:
    level: debug
  file:
    level: debug
    destination: ` + filepath.Join(tmpDir, "test.log") + `
    mode: append
reporting:
  destination: ` + filepath.Join(tmpDir, "test-report.zip") + `
`

	if err := os.WriteFile(configPath, []byte(configContent), 0644); err != nil {
		t.Fatalf("Failed to write config file: %v", err)
	}

	cfg, err := LoadConfiguration(configPath)
	if err != nil {
		t.Fatalf("LoadConfiguration() error = %v", err)
	}

	if cfg.Reflow.Width != 60 {
		t.Errorf("Width = %d, want 60", cfg.Reflow.Width)
	}
	if cfg.Reflow.PrefixDepth != 3 {
		t.Errorf("PrefixDepth = %d, want 3", cfg.Reflow.PrefixDepth)
	}
	if cfg.Reflow.Balance.ShortParagraph != 5 {
		t.Errorf("ShortParagraph = %d, want 5", cfg.Reflow.Balance.ShortParagraph)
	}
	if cfg.Reflow.Balance.TailRatio != 0.75 {
		t.Errorf("TailRatio = %f, want 0.75", cfg.Reflow.Balance.TailRatio)
	}
	if cfg.Reflow.Workers != 4 {
		t.Errorf("Workers = %d, want 4", cfg.Reflow.Workers)
	}
	if cfg.Reflow.Cache {
		t.Error("Expected Cache to be disabled")
	}
	if cfg.Input.Encoding != "windows-1251" {
		t.Errorf("Encoding = %q, want windows-1251", cfg.Input.Encoding)
	}
	if cfg.Logging.FileLogger.Mode != "append" {
		t.Errorf("File mode = %q, want append", cfg.Logging.FileLogger.Mode)
	}
}

func TestLoadConfiguration_MergeWithDefaults(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "partial.yaml")

	partial := `version: 1
reflow:
  width: 40
`
	if err := os.WriteFile(configPath, []byte(partial), 0644); err != nil {
		t.Fatalf("Failed to write config file: %v", err)
	}

	cfg, err := LoadConfiguration(configPath)
	if err != nil {
		t.Fatalf("LoadConfiguration() error = %v", err)
	}

	if cfg.Reflow.Width != 40 {
		t.Errorf("Width = %d, want 40", cfg.Reflow.Width)
	}
	// everything else comes from the template
	if cfg.Reflow.PrefixDepth != 2 {
		t.Errorf("PrefixDepth = %d, want 2", cfg.Reflow.PrefixDepth)
	}
	if cfg.Reflow.Balance.TailRatio != 1.0 {
		t.Errorf("TailRatio = %f, want 1.0", cfg.Reflow.Balance.TailRatio)
	}
	if cfg.Reflow.MaxLineSize != 1048576 {
		t.Errorf("MaxLineSize = %d, want 1048576", cfg.Reflow.MaxLineSize)
	}
}

func TestLoadConfiguration_NonExistentFile(t *testing.T) {
	_, err := LoadConfiguration("/nonexistent/config.yaml")
	if err == nil {
		t.Error("Expected error for nonexistent file")
	}
}

func TestLoadConfiguration_InvalidYAML(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "invalid.yaml")

	invalidYAML := `version: 1
reflow:
  width: 10
  invalid indent
`

	if err := os.WriteFile(configPath, []byte(invalidYAML), 0644); err != nil {
		t.Fatalf("Failed to write config file: %v", err)
	}

	_, err := LoadConfiguration(configPath)
	if err == nil {
		t.Error("Expected error for invalid YAML")
	}
}

func TestLoadConfiguration_UnknownFields(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "unknown.yaml")

	configWithUnknown := `version: 1
unknown_field: value
reflow:
  width: 10
`

	if err := os.WriteFile(configPath, []byte(configWithUnknown), 0644); err != nil {
		t.Fatalf("Failed to write config file: %v", err)
	}

	_, err := LoadConfiguration(configPath)
	if err == nil {
		t.Error("Expected error for unknown fields")
	}
}

func TestLoadConfiguration_ValidationError(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"bad version", "version: 2\n"},
		{"zero width", "version: 1\nreflow:\n  width: 0\n"},
		{"negative width", "version: 1\nreflow:\n  width: -5\n"},
		{"zero prefix depth", "version: 1\nreflow:\n  prefix_depth: 0\n"},
		{"zero tail ratio", "version: 1\nreflow:\n  balance:\n    tail_ratio: 0\n"},
		{"negative workers", "version: 1\nreflow:\n  workers: -1\n"},
		{"tiny line buffer", "version: 1\nreflow:\n  max_line_size: 10\n"},
		{"bad console level", "version: 1\nlogging:\n  console:\n    level: loud\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			configPath := filepath.Join(t.TempDir(), "config.yaml")
			if err := os.WriteFile(configPath, []byte(tt.content), 0644); err != nil {
				t.Fatalf("Failed to write config file: %v", err)
			}
			if _, err := LoadConfiguration(configPath); err == nil {
				t.Error("Expected validation error")
			}
		})
	}
}

func TestLoadConfiguration_UnknownEncoding(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.yaml")
	content := "version: 1\ninput:\n  encoding: no-such-charset\n"
	if err := os.WriteFile(configPath, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write config file: %v", err)
	}

	_, err := LoadConfiguration(configPath)
	if err == nil {
		t.Fatal("Expected error for unknown encoding")
	}
	if !strings.Contains(err.Error(), "'Config.Encoding'") || !strings.Contains(err.Error(), "iana_charset") {
		t.Errorf("expected error to name the field and the check, got: %v", err)
	}
}

func TestLoadConfiguration_WithOptions(t *testing.T) {
	option := func(opts *gencfg.ProcessingOptions) {
		// Options are opaque, just test that we can pass them
	}

	cfg, err := LoadConfiguration("", option)
	if err != nil {
		t.Fatalf("LoadConfiguration() with options error = %v", err)
	}

	if cfg == nil {
		t.Fatal("LoadConfiguration() returned nil config")
	}
}

func TestPrepare(t *testing.T) {
	data, err := Prepare()
	if err != nil {
		t.Fatalf("Prepare() error = %v", err)
	}

	if len(data) == 0 {
		t.Error("Prepare() returned empty data")
	}

	// Verify it's valid YAML by trying to unmarshal
	cfg := &Config{}
	_, err = unmarshalConfig(data, cfg, true)
	if err != nil {
		t.Errorf("Prepared config is not valid: %v", err)
	}
}

func TestDump(t *testing.T) {
	cfg := &Config{
		Version: 1,
		Reflow: ReflowConfig{
			Width:       72,
			PrefixDepth: 2,
			Balance: BalanceConfig{
				ShortParagraph: 3,
				TailRatio:      1.0,
			},
			Cache:       true,
			MaxLineSize: 65536,
		},
		Input: InputConfig{Encoding: "koi8-r"},
	}

	data, err := Dump(cfg)
	if err != nil {
		t.Fatalf("Dump() error = %v", err)
	}

	if len(data) == 0 {
		t.Error("Dump() returned empty data")
	}

	// Verify we can load it back
	cfg2 := &Config{}
	_, err = unmarshalConfig(data, cfg2, false)
	if err != nil {
		t.Errorf("Dumped config cannot be loaded: %v", err)
	}

	if cfg2.Version != cfg.Version {
		t.Errorf("Version mismatch after dump/load: got %d, want %d", cfg2.Version, cfg.Version)
	}
	if cfg2.Reflow.Width != 72 {
		t.Errorf("Width mismatch after dump/load: got %d, want 72", cfg2.Reflow.Width)
	}
	if cfg2.Input.Encoding != "koi8-r" {
		t.Errorf("Encoding mismatch after dump/load: got %q", cfg2.Input.Encoding)
	}
}

func TestUnmarshalConfig(t *testing.T) {
	t.Run("valid config without processing", func(t *testing.T) {
		data := []byte(`version: 1`)
		cfg := &Config{}

		result, err := unmarshalConfig(data, cfg, false)
		if err != nil {
			t.Errorf("unmarshalConfig() error = %v", err)
		}

		if result == nil {
			t.Fatal("unmarshalConfig() returned nil")
		}

		if result.Version != 1 {
			t.Errorf("Version = %d, want 1", result.Version)
		}
	})

	t.Run("invalid yaml", func(t *testing.T) {
		data := []byte(`invalid: [yaml`)
		cfg := &Config{}

		_, err := unmarshalConfig(data, cfg, false)
		if err == nil {
			t.Error("Expected error for invalid YAML")
		}
	})
}

func TestUnmarshalConfig_WrapsValidationError(t *testing.T) {
	// version: 99 will fail validation (validate:"eq=1").
	data := []byte("version: 99\n")
	cfg := &Config{}

	_, err := unmarshalConfig(data, cfg, true)
	if err == nil {
		t.Fatal("expected validation error, got nil")
	}

	if !strings.Contains(err.Error(), "validat") {
		t.Errorf("expected error to mention validation, got: %v", err)
	}

	if errors.Unwrap(err) == nil {
		t.Errorf("expected wrapped error (errors.Unwrap non-nil), got bare error: %v", err)
	}
}
