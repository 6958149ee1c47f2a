package testsupport

import (
	"path/filepath"
	"testing"

	"gazette/internal/config"
)

// ConfigOption allows callers to customize the generated test configuration.
type ConfigOption func(*config.Config)

// NewConfig produces a config seeded with unique temp directories per test.
// It defaults common fields and applies any provided options.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	base := t.TempDir()
	cfg := config.Default()
	cfg.Paths.DataDir = filepath.Join(base, "data")
	cfg.Paths.LogDir = filepath.Join(base, "logs")
	cfg.Paths.ReportDir = filepath.Join(base, "reports")
	cfg.Enrichment.PDLAPIKey = "test"
	cfg.Ingest.SearchAPIKey = "test"

	for _, opt := range opts {
		opt(&cfg)
	}

	if err := cfg.EnsureDirectories(); err != nil {
		t.Fatalf("ensure directories: %v", err)
	}
	return &cfg
}

// WithThreshold overrides the auto-match threshold on the test config.
func WithThreshold(threshold int) ConfigOption {
	return func(cfg *config.Config) {
		cfg.Matching.AutoMatchThreshold = threshold
	}
}

// WithStaleFields overrides the watched staleness fields on the test config.
func WithStaleFields(fields ...string) ConfigOption {
	return func(cfg *config.Config) {
		cfg.Enrichment.StaleFields = fields
	}
}

// BaseDir returns the root temp directory backing the generated config.
func BaseDir(cfg *config.Config) string {
	return filepath.Dir(cfg.Paths.DataDir)
}
