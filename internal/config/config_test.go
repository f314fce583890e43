package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestSetDefaults_EmptyConfig(t *testing.T) {
	cfg := &Config{}
	setDefaults(cfg)

	checks := []struct {
		name string
		got  interface{}
		want interface{}
	}{
		{"G2P.Mode", cfg.G2P.Mode, "current"},
		{"G2P.ChunkSize", cfg.G2P.ChunkSize, 100},
		{"English.Backend", cfg.English.Backend, "dict"},
		{"English.Selection", cfg.English.Selection, "first"},
		{"Log.Level", cfg.Log.Level, "warn"},
		{"Log.Format", cfg.Log.Format, "console"},
	}

	for _, c := range checks {
		switch want := c.want.(type) {
		case int:
			if c.got.(int) != want {
				t.Errorf("%s: got %v, want %v", c.name, c.got, want)
			}
		case string:
			if c.got.(string) != want {
				t.Errorf("%s: got %v, want %v", c.name, c.got, want)
			}
		}
	}

	if !cfg.G2P.ErhuaEnabled() {
		t.Error("G2P.Erhua should default to enabled")
	}
}

func TestSetDefaults_DoesNotOverride(t *testing.T) {
	off := false
	cfg := &Config{
		G2P:     G2PConfig{Mode: "Legacy", Erhua: &off, ChunkSize: 40},
		English: EnglishConfig{Backend: "goruut", Selection: "random", Seed: 7},
		Log:     LogConfig{Level: "debug"},
	}
	setDefaults(cfg)

	if cfg.G2P.Mode != "legacy" {
		t.Errorf("G2P.Mode should be normalized, got %s", cfg.G2P.Mode)
	}
	if cfg.G2P.ErhuaEnabled() {
		t.Error("G2P.Erhua should stay disabled")
	}
	if cfg.G2P.ChunkSize != 40 {
		t.Errorf("ChunkSize should not be overridden: got %d", cfg.G2P.ChunkSize)
	}
	if cfg.English.Backend != "goruut" {
		t.Errorf("English.Backend should not be overridden: got %s", cfg.English.Backend)
	}
	if cfg.English.Selection != "random" || cfg.English.Seed != 7 {
		t.Errorf("English selection should not be overridden: got %s/%d", cfg.English.Selection, cfg.English.Seed)
	}
	if cfg.Log.Level != "debug" {
		t.Errorf("Log.Level should not be overridden: got %s", cfg.Log.Level)
	}
}

func TestLoad_ValidYAML(t *testing.T) {
	yamlContent := `
g2p:
  mode: legacy
  erhua: false
segmenter:
  dict_path: /path/to/dict.txt
english:
  backend: dict
  selection: random
  seed: 42
lexicon:
  path: /tmp/lexicon.db
log:
  level: debug
`
	tmpDir := t.TempDir()
	tmpFile := filepath.Join(tmpDir, "config.yaml")
	if err := os.WriteFile(tmpFile, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write temp file: %v", err)
	}

	cfg, err := Load(tmpFile)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.G2P.Mode != "legacy" {
		t.Errorf("G2P.Mode: got %q, want %q", cfg.G2P.Mode, "legacy")
	}
	if cfg.G2P.ErhuaEnabled() {
		t.Error("G2P.Erhua: expected disabled")
	}
	if cfg.Segmenter.DictPath != "/path/to/dict.txt" {
		t.Errorf("Segmenter.DictPath: got %q", cfg.Segmenter.DictPath)
	}
	if cfg.English.Seed != 42 {
		t.Errorf("English.Seed: got %d, want 42", cfg.English.Seed)
	}
	if cfg.Lexicon.Path != "/tmp/lexicon.db" {
		t.Errorf("Lexicon.Path: got %q", cfg.Lexicon.Path)
	}
	// Defaults should be applied for unset fields
	if cfg.G2P.ChunkSize != 100 {
		t.Errorf("G2P.ChunkSize should default to 100, got %d", cfg.G2P.ChunkSize)
	}
}

func TestLoad_EnvVarExpansion(t *testing.T) {
	t.Setenv("TEST_LEXICON_PATH", "/data/lexicon.db")

	yamlContent := `
lexicon:
  path: "${TEST_LEXICON_PATH}"
`
	tmpDir := t.TempDir()
	tmpFile := filepath.Join(tmpDir, "config.yaml")
	if err := os.WriteFile(tmpFile, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write temp file: %v", err)
	}

	cfg, err := Load(tmpFile)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Lexicon.Path != "/data/lexicon.db" {
		t.Errorf("expected env var expansion, got %q", cfg.Lexicon.Path)
	}
}

func TestLoad_FileNotFound(t *testing.T) {
	_, err := Load("/nonexistent/path/config.yaml")
	if err == nil {
		t.Fatal("expected error for nonexistent file")
	}
}

func TestLoad_InvalidMode(t *testing.T) {
	tmpFile := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(tmpFile, []byte("g2p:\n  mode: v9\n"), 0644); err != nil {
		t.Fatalf("failed to write temp file: %v", err)
	}

	_, err := Load(tmpFile)
	if err == nil {
		t.Fatal("expected error for unknown mode")
	}
	if !strings.Contains(err.Error(), "v9") {
		t.Errorf("error should name the bad value, got %v", err)
	}
}

func TestSetDefaults_ExpandsHome(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		t.Skip("no home directory")
	}
	cfg := &Config{Lexicon: LexiconConfig{Path: "~/.kokoro-g2p/lexicon.db"}}
	setDefaults(cfg)

	want := home + "/.kokoro-g2p/lexicon.db"
	if cfg.Lexicon.Path != want {
		t.Errorf("Lexicon.Path: got %q, want %q", cfg.Lexicon.Path, want)
	}
}
