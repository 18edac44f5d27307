package driver

import (
	"runtime"
	"time"

	"github.com/entrhq/prospect/pkg/config"
)

// Default timing and viewport values for new drivers.
const (
	DefaultPageLoadTimeout = 60 * time.Second
	DefaultOpTimeout       = 10 * time.Second
	DefaultViewportWidth   = 1920
	DefaultViewportHeight  = 1080
)

// Options configures driver construction. Every field is read once when the
// browser launches.
type Options struct {
	// Headless controls whether the browser runs without a visible window.
	Headless bool

	// UserAgent overrides the platform-specific default.
	UserAgent string

	// ExecutablePath points at a browser binary; empty means the playwright
	// managed browser.
	ExecutablePath string

	// ExtraArgs are appended after the built-in stability flags.
	ExtraArgs []string

	// PageLoadTimeout bounds navigations; zero means DefaultPageLoadTimeout.
	PageLoadTimeout time.Duration

	// OpTimeout bounds non-navigation operations (selector waits and the
	// like); zero means DefaultOpTimeout.
	OpTimeout time.Duration
}

// OptionsFromConfig maps the environment configuration onto driver options.
func OptionsFromConfig(cfg config.Config) Options {
	return Options{
		Headless:        cfg.Headless,
		UserAgent:       cfg.UserAgent,
		ExecutablePath:  cfg.BrowserPath,
		ExtraArgs:       cfg.BrowserArgs,
		PageLoadTimeout: cfg.PageLoadTimeout,
	}
}

func (o Options) pageLoadTimeout() time.Duration {
	if o.PageLoadTimeout > 0 {
		return o.PageLoadTimeout
	}
	return DefaultPageLoadTimeout
}

func (o Options) opTimeout() time.Duration {
	if o.OpTimeout > 0 {
		return o.OpTimeout
	}
	return DefaultOpTimeout
}

// launchArgs returns the flags for unattended, stable, low-fingerprint
// operation, with any configured extras appended.
func (o Options) launchArgs() []string {
	args := []string{
		"--no-sandbox",
		"--disable-dev-shm-usage",
		"--disable-gpu",
		"--disable-extensions",
		"--disable-background-timer-throttling",
		"--disable-background-networking",
		"--disable-default-apps",
		"--disable-sync",
		"--metrics-recording-only",
		"--no-default-browser-check",
		"--no-first-run",
		"--disable-features=TranslateUI,BlinkGenPropertyTrees",
		"--aggressive-cache-discard",
		"--disable-ipc-flooding-protection",
	}
	return append(args, o.ExtraArgs...)
}

// userAgent returns the configured identification string, falling back to a
// platform-matched default to reduce fingerprint skew.
func (o Options) userAgent() string {
	if o.UserAgent != "" {
		return o.UserAgent
	}
	switch runtime.GOOS {
	case "windows":
		return "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/137.0.0.0 Safari/537.36"
	case "darwin":
		return "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/137.0.0.0 Safari/537.36"
	default:
		return "Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/137.0.0.0 Safari/537.36"
	}
}
