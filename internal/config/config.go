package config

import "time"

// MonitorConfig is the root configuration for a monitor instance.
type MonitorConfig struct {
	API       APIConfig       `yaml:"api"`
	Market    MarketConfig    `yaml:"market"`
	Collector CollectorConfig `yaml:"collector"`
	Report    ReportConfig    `yaml:"report"`
}

// APIConfig holds Bitget API settings and credentials.
type APIConfig struct {
	BaseURL    string        `yaml:"base_url"`
	AccessKey  string        `yaml:"access_key"`
	SecretKey  string        `yaml:"secret_key"`
	Passphrase string        `yaml:"passphrase"`
	Timeout    time.Duration `yaml:"timeout"`
	MaxRetries int           `yaml:"max_retries"`
}

// MarketConfig identifies the contract being monitored.
type MarketConfig struct {
	Symbol      string `yaml:"symbol"`
	ProductType string `yaml:"product_type"`
	MarginCoin  string `yaml:"margin_coin"`
}

// CollectorConfig holds pagination settings for history endpoints.
type CollectorConfig struct {
	PageSize int           `yaml:"page_size"`
	MaxPages int           `yaml:"max_pages"`
	Pacing   time.Duration `yaml:"pacing"`
}

// ReportConfig holds reconciliation window settings.
type ReportConfig struct {
	WindowDays int    `yaml:"window_days"`
	Timezone   string `yaml:"timezone"`
}
