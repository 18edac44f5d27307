package config

import (
	"fmt"
	"sync"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds all runtime settings consumed at driver-construction time.
// Values are read once from the environment (plus an optional .env file)
// and never change for the lifetime of the process.
type Config struct {
	// Headless controls whether browsers run without a visible window.
	Headless bool `env:"PROSPECT_HEADLESS" envDefault:"true"`

	// UserAgent overrides the platform-specific default identification string.
	UserAgent string `env:"PROSPECT_USER_AGENT"`

	// BrowserPath points at a browser executable; empty means auto-detect.
	BrowserPath string `env:"PROSPECT_BROWSER_PATH"`

	// BrowserArgs are extra launch flags appended after the built-in set.
	BrowserArgs []string `env:"PROSPECT_BROWSER_ARGS" envSeparator:" "`

	// PageLoadTimeout bounds every navigation outside of authentication.
	PageLoadTimeout time.Duration `env:"PROSPECT_PAGE_LOAD_TIMEOUT" envDefault:"60s"`

	// LogLevel is one of debug, info, warn, error.
	LogLevel string `env:"PROSPECT_LOG_LEVEL" envDefault:"info"`

	// LogFormat is "json" or "text".
	LogFormat string `env:"PROSPECT_LOG_FORMAT" envDefault:"text"`
}

var (
	loaded     Config
	loadErr    error
	loadOnce   sync.Once
	envScanned sync.Once
)

// Load parses the environment into a Config. The first successful parse is
// cached; subsequent calls return the same value.
func Load() (Config, error) {
	loadOnce.Do(func() {
		envScanned.Do(func() {
			// Missing .env is fine, the environment alone is enough.
			_ = godotenv.Load()
		})

		loaded, loadErr = parse()
	})
	return loaded, loadErr
}

func parse() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse environment: %w", err)
	}
	return cfg, nil
}

// MustLoad is Load for call sites where a broken environment should stop
// startup immediately.
func MustLoad() Config {
	cfg, err := Load()
	if err != nil {
		panic(err)
	}
	return cfg
}
