package config

import (
	"fmt"
	"os"
	"strings"
)

func (c *Config) normalize() error {
	if err := c.normalizePaths(); err != nil {
		return err
	}
	c.normalizeEnrichment()
	c.normalizeIngest()
	c.normalizeLogging()
	return nil
}

func (c *Config) normalizePaths() error {
	var err error
	if c.Paths.DataDir, err = expandPath(c.Paths.DataDir); err != nil {
		return fmt.Errorf("paths.data_dir: %w", err)
	}
	if c.Paths.LogDir, err = expandPath(c.Paths.LogDir); err != nil {
		return fmt.Errorf("paths.log_dir: %w", err)
	}
	if c.Paths.ReportDir, err = expandPath(c.Paths.ReportDir); err != nil {
		return fmt.Errorf("paths.report_dir: %w", err)
	}
	return nil
}

func (c *Config) normalizeEnrichment() {
	if c.Enrichment.PDLAPIKey == "" {
		if value, ok := os.LookupEnv("PDL_API_KEY"); ok {
			c.Enrichment.PDLAPIKey = value
		}
	}
	c.Enrichment.PDLBaseURL = strings.TrimSpace(c.Enrichment.PDLBaseURL)
	if c.Enrichment.PDLBaseURL == "" {
		c.Enrichment.PDLBaseURL = defaultPDLBaseURL
	}
	c.Enrichment.DirectoryBaseURL = strings.TrimSpace(c.Enrichment.DirectoryBaseURL)
	if c.Enrichment.DirectoryBaseURL == "" {
		c.Enrichment.DirectoryBaseURL = defaultDirectoryBaseURL
	}
	if c.Enrichment.RequestTimeout <= 0 {
		c.Enrichment.RequestTimeout = defaultRequestTimeout
	}
	fields := make([]string, 0, len(c.Enrichment.StaleFields))
	for _, field := range c.Enrichment.StaleFields {
		if trimmed := strings.TrimSpace(field); trimmed != "" {
			fields = append(fields, strings.ToLower(trimmed))
		}
	}
	if len(fields) == 0 {
		fields = append(fields, defaultStaleFields...)
	}
	c.Enrichment.StaleFields = fields
}

func (c *Config) normalizeIngest() {
	if c.Ingest.SearchAPIKey == "" {
		if value, ok := os.LookupEnv("PATENTSVIEW_API_KEY"); ok {
			c.Ingest.SearchAPIKey = value
		}
	}
	c.Ingest.SearchBaseURL = strings.TrimSpace(c.Ingest.SearchBaseURL)
	if c.Ingest.SearchBaseURL == "" {
		c.Ingest.SearchBaseURL = defaultSearchBaseURL
	}
	if c.Ingest.RequestTimeout <= 0 {
		c.Ingest.RequestTimeout = defaultRequestTimeout
	}
	if c.Ingest.PageSize <= 0 {
		c.Ingest.PageSize = defaultIngestPageSize
	}
}

func (c *Config) normalizeLogging() {
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
}
