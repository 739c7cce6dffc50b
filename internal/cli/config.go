package cli

import (
	"fmt"
	"time"

	"github.com/katalvlaran/lvkit/env"
)

// Config is read from LVKIT_* variables after the optional .env file is
// loaded. Flags override it per invocation.
type Config struct {
	LogLevel    string        `env:"LVKIT_LOG_LEVEL,default=info"`
	DatabaseURL string        `env:"LVKIT_DATABASE_URL"`
	Timeout     time.Duration `env:"LVKIT_TIMEOUT,default=30s"`
	UserAgent   string        `env:"LVKIT_USER_AGENT"`
	Region      string        `env:"LVKIT_PHONE_REGION,default=GB"`
	Indent      int           `env:"LVKIT_JSON_INDENT,default=4"`
}

func loadConfig(envFile string) (Config, error) {
	var cfg Config
	if envFile != "" {
		if err := env.LoadIfExists(envFile); err != nil {
			return cfg, fmt.Errorf("load %s: %w", envFile, err)
		}
	}
	if err := env.Decode(&cfg); err != nil {
		return cfg, err
	}
	if cfg.Timeout <= 0 {
		return cfg, fmt.Errorf("LVKIT_TIMEOUT must be positive, got %s", cfg.Timeout)
	}
	if cfg.Indent < 0 || cfg.Indent > 16 {
		return cfg, fmt.Errorf("LVKIT_JSON_INDENT must be within 0..16, got %d", cfg.Indent)
	}
	return cfg, nil
}
