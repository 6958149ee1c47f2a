package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefaultValidates(t *testing.T) {
	cfg := Default()
	if err := cfg.normalize(); err != nil {
		t.Fatalf("normalize default config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("validate default config: %v", err)
	}
	if cfg.Matching.AutoMatchThreshold != 25 {
		t.Fatalf("expected default threshold 25, got %d", cfg.Matching.AutoMatchThreshold)
	}
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing.toml")
	cfg, resolved, exists, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if exists {
		t.Fatal("expected exists=false for missing file")
	}
	if resolved != path {
		t.Fatalf("expected resolved path %q, got %q", path, resolved)
	}
	if len(cfg.Enrichment.StaleFields) == 0 {
		t.Fatal("expected default stale fields")
	}
}

func TestLoadAppliesOverrides(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	doc := strings.Join([]string{
		`[paths]`,
		`data_dir = "` + filepath.Join(dir, "data") + `"`,
		`[matching]`,
		`auto_match_threshold = 40`,
		`[enrichment]`,
		`stale_fields = ["Emails", " profiles "]`,
	}, "\n")
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, _, exists, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if !exists {
		t.Fatal("expected config file to be found")
	}
	if cfg.Matching.AutoMatchThreshold != 40 {
		t.Fatalf("expected threshold override 40, got %d", cfg.Matching.AutoMatchThreshold)
	}
	want := []string{"emails", "profiles"}
	if len(cfg.Enrichment.StaleFields) != len(want) {
		t.Fatalf("stale fields = %v, want %v", cfg.Enrichment.StaleFields, want)
	}
	for i, field := range want {
		if cfg.Enrichment.StaleFields[i] != field {
			t.Fatalf("stale fields = %v, want %v", cfg.Enrichment.StaleFields, want)
		}
	}
}

func TestValidateRejectsBadThreshold(t *testing.T) {
	cfg := Default()
	if err := cfg.normalize(); err != nil {
		t.Fatalf("normalize: %v", err)
	}
	cfg.Matching.AutoMatchThreshold = 0
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for zero threshold")
	}
	cfg.Matching.AutoMatchThreshold = 95
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for threshold above maximum score")
	}
}

func TestValidateRejectsBadLogFormat(t *testing.T) {
	cfg := Default()
	if err := cfg.normalize(); err != nil {
		t.Fatalf("normalize: %v", err)
	}
	cfg.Logging.Format = "pretty"
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for unknown log format")
	}
}

func TestDatabasePath(t *testing.T) {
	cfg := Default()
	cfg.Paths.DataDir = "/tmp/gazette-test"
	if got := cfg.DatabasePath(); got != filepath.Join("/tmp/gazette-test", "people.db") {
		t.Fatalf("unexpected database path %q", got)
	}
}
