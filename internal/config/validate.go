package config

import (
	"errors"
	"fmt"
	"net/url"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateScryfall(); err != nil {
		return err
	}
	if err := c.validateLogging(); err != nil {
		return err
	}
	return nil
}

func (c *Config) validateScryfall() error {
	parsed, err := url.Parse(c.Scryfall.BaseURL)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return fmt.Errorf("scryfall.base_url %q is not a valid URL", c.Scryfall.BaseURL)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return fmt.Errorf("scryfall.base_url scheme %q must be http or https", parsed.Scheme)
	}
	if c.Scryfall.UserAgent == "" {
		return errors.New("scryfall.user_agent must be set; the card database rejects anonymous clients")
	}
	if c.Scryfall.BatchSize < 1 || c.Scryfall.BatchSize > maxBatchSize {
		return fmt.Errorf("scryfall.batch_size must be between 1 and %d", maxBatchSize)
	}
	if c.Scryfall.RequestDelayMS < 0 {
		return errors.New("scryfall.request_delay_ms must not be negative")
	}
	if c.Scryfall.TimeoutSeconds <= 0 {
		return errors.New("scryfall.timeout_seconds must be positive")
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format %q must be console or json", c.Logging.Format)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level %q must be debug, info, warn, or error", c.Logging.Level)
	}
	return nil
}
