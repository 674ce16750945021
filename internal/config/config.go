// Package config reads environment-variable defaults for the CLI flags.
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

type Config struct {
	BearerToken string        `env:"CWDL_BEARER_TOKEN"`
	CookieFile  string        `env:"CWDL_COOKIE_FILE"  envDefault:"cookies.txt"`
	OutputDir   string        `env:"CWDL_OUTPUT_DIR"   envDefault:"careerwill_out"`
	BaseURL     string        `env:"CWDL_BASE_URL"     envDefault:"https://web.careerwill.com/"`
	Timeout     time.Duration `env:"CWDL_TIMEOUT"      envDefault:"3m"`
	UserAgent   string        `env:"CWDL_USER_AGENT"   envDefault:"Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/123.0.0.0 Safari/537.36"`
}

func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parsing environment: %w", err)
	}
	return cfg, nil
}
