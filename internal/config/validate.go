package config

import (
	"errors"
	"fmt"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validatePaths(); err != nil {
		return err
	}
	if err := c.validateMatching(); err != nil {
		return err
	}
	if err := c.validateEnrichment(); err != nil {
		return err
	}
	if err := c.validateIngest(); err != nil {
		return err
	}
	if err := c.validateLogging(); err != nil {
		return err
	}
	return nil
}

func (c *Config) validatePaths() error {
	if c.Paths.DataDir == "" {
		return errors.New("paths.data_dir must be set")
	}
	if c.Paths.LogDir == "" {
		return errors.New("paths.log_dir must be set")
	}
	return nil
}

func (c *Config) validateMatching() error {
	if c.Matching.AutoMatchThreshold <= 0 {
		return errors.New("matching.auto_match_threshold must be positive")
	}
	// 90 is the maximum attainable score; a higher threshold confirms nothing.
	if c.Matching.AutoMatchThreshold > 90 {
		return fmt.Errorf("matching.auto_match_threshold must not exceed 90, got %d", c.Matching.AutoMatchThreshold)
	}
	return nil
}

func (c *Config) validateEnrichment() error {
	if c.Enrichment.RequestTimeout <= 0 {
		return errors.New("enrichment.request_timeout must be positive")
	}
	if len(c.Enrichment.StaleFields) == 0 {
		return errors.New("enrichment.stale_fields must not be empty")
	}
	return nil
}

func (c *Config) validateIngest() error {
	if c.Ingest.RequestTimeout <= 0 {
		return errors.New("ingest.request_timeout must be positive")
	}
	if c.Ingest.PageSize <= 0 || c.Ingest.PageSize > 1000 {
		return fmt.Errorf("ingest.page_size must be between 1 and 1000, got %d", c.Ingest.PageSize)
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format must be console or json, got %q", c.Logging.Format)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level must be debug, info, warn, or error, got %q", c.Logging.Level)
	}
	return nil
}
