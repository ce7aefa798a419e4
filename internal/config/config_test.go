package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoad(t *testing.T) {
	yaml := `
api:
  base_url: https://api.bitget.com
  access_key: test-key
  secret_key: test-secret
  passphrase: test-pass
market:
  symbol: ETHUSDT
`
	path := writeTempFile(t, yaml)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.API.BaseURL != "https://api.bitget.com" {
		t.Errorf("API.BaseURL = %q, want %q", cfg.API.BaseURL, "https://api.bitget.com")
	}
	if cfg.API.AccessKey != "test-key" {
		t.Errorf("API.AccessKey = %q, want %q", cfg.API.AccessKey, "test-key")
	}
	if cfg.Market.Symbol != "ETHUSDT" {
		t.Errorf("Market.Symbol = %q, want %q", cfg.Market.Symbol, "ETHUSDT")
	}
}

func TestLoadWithEnvSubstitution(t *testing.T) {
	t.Setenv("TEST_BITGET_SECRET", "secret123")

	yaml := `
api:
  access_key: test-key
  secret_key: ${TEST_BITGET_SECRET}
  passphrase: test-pass
`
	path := writeTempFile(t, yaml)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.API.SecretKey != "secret123" {
		t.Errorf("API.SecretKey = %q, want %q", cfg.API.SecretKey, "secret123")
	}
}

func TestLoadWithDefaults(t *testing.T) {
	yaml := `
api:
  access_key: test-key
  secret_key: test-secret
  passphrase: test-pass
`
	path := writeTempFile(t, yaml)

	cfg, err := LoadWithDefaults(path)
	if err != nil {
		t.Fatalf("LoadWithDefaults failed: %v", err)
	}

	if cfg.API.BaseURL != DefaultBaseURL {
		t.Errorf("API.BaseURL = %q, want default %q", cfg.API.BaseURL, DefaultBaseURL)
	}
	if cfg.API.Timeout != DefaultAPITimeout {
		t.Errorf("API.Timeout = %v, want default %v", cfg.API.Timeout, DefaultAPITimeout)
	}
	if cfg.Market.Symbol != DefaultSymbol {
		t.Errorf("Market.Symbol = %q, want default %q", cfg.Market.Symbol, DefaultSymbol)
	}
	if cfg.Collector.PageSize != DefaultPageSize {
		t.Errorf("Collector.PageSize = %d, want default %d", cfg.Collector.PageSize, DefaultPageSize)
	}
	if cfg.Collector.MaxPages != DefaultMaxPages {
		t.Errorf("Collector.MaxPages = %d, want default %d", cfg.Collector.MaxPages, DefaultMaxPages)
	}
	if cfg.Collector.Pacing != DefaultPacing {
		t.Errorf("Collector.Pacing = %v, want default %v", cfg.Collector.Pacing, DefaultPacing)
	}
	if cfg.Report.WindowDays != DefaultWindowDays {
		t.Errorf("Report.WindowDays = %d, want default %d", cfg.Report.WindowDays, DefaultWindowDays)
	}
	if cfg.Report.Timezone != DefaultTimezone {
		t.Errorf("Report.Timezone = %q, want default %q", cfg.Report.Timezone, DefaultTimezone)
	}
}

func TestLoadDefaultsDoNotOverride(t *testing.T) {
	yaml := `
api:
  access_key: test-key
  secret_key: test-secret
  passphrase: test-pass
  timeout: 5s
collector:
  page_size: 50
  max_pages: 5
report:
  window_days: 30
`
	path := writeTempFile(t, yaml)

	cfg, err := LoadWithDefaults(path)
	if err != nil {
		t.Fatalf("LoadWithDefaults failed: %v", err)
	}

	if cfg.API.Timeout != 5*time.Second {
		t.Errorf("API.Timeout = %v, want %v", cfg.API.Timeout, 5*time.Second)
	}
	if cfg.Collector.PageSize != 50 {
		t.Errorf("Collector.PageSize = %d, want 50", cfg.Collector.PageSize)
	}
	if cfg.Collector.MaxPages != 5 {
		t.Errorf("Collector.MaxPages = %d, want 5", cfg.Collector.MaxPages)
	}
	if cfg.Report.WindowDays != 30 {
		t.Errorf("Report.WindowDays = %d, want 30", cfg.Report.WindowDays)
	}
}

func TestValidate(t *testing.T) {
	valid := func() *MonitorConfig {
		cfg := &MonitorConfig{}
		cfg.API.AccessKey = "k"
		cfg.API.SecretKey = "s"
		cfg.API.Passphrase = "p"
		cfg.applyDefaults()
		return cfg
	}

	t.Run("valid config passes", func(t *testing.T) {
		if err := valid().Validate(); err != nil {
			t.Errorf("Validate() = %v, want nil", err)
		}
	})

	t.Run("missing access key", func(t *testing.T) {
		cfg := valid()
		cfg.API.AccessKey = ""
		if err := cfg.Validate(); err == nil {
			t.Error("Validate() = nil, want error")
		}
	})

	t.Run("missing secret key", func(t *testing.T) {
		cfg := valid()
		cfg.API.SecretKey = ""
		if err := cfg.Validate(); err == nil {
			t.Error("Validate() = nil, want error")
		}
	})

	t.Run("missing passphrase", func(t *testing.T) {
		cfg := valid()
		cfg.API.Passphrase = ""
		if err := cfg.Validate(); err == nil {
			t.Error("Validate() = nil, want error")
		}
	})

	t.Run("page size out of range", func(t *testing.T) {
		cfg := valid()
		cfg.Collector.PageSize = 500
		if err := cfg.Validate(); err == nil {
			t.Error("Validate() = nil, want error")
		}
	})

	t.Run("zero window days", func(t *testing.T) {
		cfg := valid()
		cfg.Report.WindowDays = -1
		if err := cfg.Validate(); err == nil {
			t.Error("Validate() = nil, want error")
		}
	})
}

func TestLoadAndValidateMissingFile(t *testing.T) {
	_, err := LoadAndValidate(filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil {
		t.Fatal("LoadAndValidate on missing file = nil, want error")
	}
}

func writeTempFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write temp config: %v", err)
	}
	return path
}
