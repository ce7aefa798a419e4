package config

import "time"

// Default values for optional configuration fields.
const (
	DefaultBaseURL     = "https://api.bitget.com"
	DefaultAPITimeout  = 10 * time.Second
	DefaultMaxRetries  = 3
	DefaultSymbol      = "BTCUSDT"
	DefaultProductType = "USDT-FUTURES"
	DefaultMarginCoin  = "USDT"
	DefaultPageSize    = 100
	DefaultMaxPages    = 20
	DefaultPacing      = 150 * time.Millisecond
	DefaultWindowDays  = 7
	DefaultTimezone    = "Asia/Seoul"
)

func (c *MonitorConfig) applyDefaults() {
	// API defaults
	if c.API.BaseURL == "" {
		c.API.BaseURL = DefaultBaseURL
	}
	if c.API.Timeout == 0 {
		c.API.Timeout = DefaultAPITimeout
	}
	if c.API.MaxRetries == 0 {
		c.API.MaxRetries = DefaultMaxRetries
	}

	// Market defaults
	if c.Market.Symbol == "" {
		c.Market.Symbol = DefaultSymbol
	}
	if c.Market.ProductType == "" {
		c.Market.ProductType = DefaultProductType
	}
	if c.Market.MarginCoin == "" {
		c.Market.MarginCoin = DefaultMarginCoin
	}

	// Collector defaults
	if c.Collector.PageSize == 0 {
		c.Collector.PageSize = DefaultPageSize
	}
	if c.Collector.MaxPages == 0 {
		c.Collector.MaxPages = DefaultMaxPages
	}
	if c.Collector.Pacing == 0 {
		c.Collector.Pacing = DefaultPacing
	}

	// Report defaults
	if c.Report.WindowDays == 0 {
		c.Report.WindowDays = DefaultWindowDays
	}
	if c.Report.Timezone == "" {
		c.Report.Timezone = DefaultTimezone
	}
}
