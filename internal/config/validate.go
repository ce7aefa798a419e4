package config

import (
	"errors"
	"fmt"
)

// Validate checks that all required fields are set and values are valid.
func (c *MonitorConfig) Validate() error {
	if c.API.AccessKey == "" {
		return errors.New("api.access_key is required")
	}
	if c.API.SecretKey == "" {
		return errors.New("api.secret_key is required")
	}
	if c.API.Passphrase == "" {
		return errors.New("api.passphrase is required")
	}
	if c.API.Timeout <= 0 {
		return errors.New("api.timeout must be positive")
	}

	if c.Market.Symbol == "" {
		return errors.New("market.symbol is required")
	}

	if c.Collector.PageSize < 1 || c.Collector.PageSize > 100 {
		return fmt.Errorf("collector.page_size must be between 1 and 100, got %d", c.Collector.PageSize)
	}
	if c.Collector.MaxPages < 1 {
		return errors.New("collector.max_pages must be >= 1")
	}
	if c.Collector.Pacing < 0 {
		return errors.New("collector.pacing cannot be negative")
	}

	if c.Report.WindowDays < 1 {
		return errors.New("report.window_days must be >= 1")
	}

	return nil
}
