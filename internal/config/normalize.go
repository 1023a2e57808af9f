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
	c.normalizeScryfall()
	c.normalizeLogging()
	return nil
}

func (c *Config) normalizePaths() error {
	var err error
	if strings.TrimSpace(c.Paths.LogDir) == "" {
		c.Paths.LogDir = defaultLogDir
	}
	if c.Paths.LogDir, err = expandPath(c.Paths.LogDir); err != nil {
		return fmt.Errorf("paths.log_dir: %w", err)
	}
	if strings.TrimSpace(c.Paths.OutputDir) != "" {
		if c.Paths.OutputDir, err = expandPath(c.Paths.OutputDir); err != nil {
			return fmt.Errorf("paths.output_dir: %w", err)
		}
	} else {
		c.Paths.OutputDir = ""
	}
	return nil
}

func (c *Config) normalizeScryfall() {
	c.Scryfall.BaseURL = strings.TrimSpace(c.Scryfall.BaseURL)
	if c.Scryfall.BaseURL == "" {
		if value, ok := os.LookupEnv("SCRYFALL_BASE_URL"); ok && strings.TrimSpace(value) != "" {
			c.Scryfall.BaseURL = strings.TrimSpace(value)
		} else {
			c.Scryfall.BaseURL = defaultBaseURL
		}
	}
	c.Scryfall.BaseURL = strings.TrimRight(c.Scryfall.BaseURL, "/")

	c.Scryfall.UserAgent = strings.TrimSpace(c.Scryfall.UserAgent)
	if c.Scryfall.UserAgent == "" {
		c.Scryfall.UserAgent = defaultUserAgent
	}
	if c.Scryfall.RequestDelayMS == 0 {
		c.Scryfall.RequestDelayMS = defaultRequestDelayMS
	}
	if c.Scryfall.BatchSize == 0 {
		c.Scryfall.BatchSize = defaultBatchSize
	}
	if c.Scryfall.TimeoutSeconds == 0 {
		c.Scryfall.TimeoutSeconds = defaultTimeoutSeconds
	}
}

func (c *Config) normalizeLogging() {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
}
