package driver

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/entrhq/prospect/pkg/config"
)

func TestOptionsDefaults(t *testing.T) {
	var o Options

	assert.Equal(t, DefaultPageLoadTimeout, o.pageLoadTimeout())
	assert.Equal(t, DefaultOpTimeout, o.opTimeout())
	assert.NotEmpty(t, o.userAgent(), "platform default user agent expected")
	assert.Contains(t, o.userAgent(), "Chrome/")
}

func TestOptionsOverrides(t *testing.T) {
	o := Options{
		UserAgent:       "custom/1.0",
		PageLoadTimeout: 90 * time.Second,
		OpTimeout:       5 * time.Second,
	}

	assert.Equal(t, "custom/1.0", o.userAgent())
	assert.Equal(t, 90*time.Second, o.pageLoadTimeout())
	assert.Equal(t, 5*time.Second, o.opTimeout())
}

func TestLaunchArgsIncludeStabilityFlags(t *testing.T) {
	o := Options{ExtraArgs: []string{"--proxy-server=localhost:8080"}}
	args := o.launchArgs()

	assert.Contains(t, args, "--no-sandbox")
	assert.Contains(t, args, "--disable-dev-shm-usage")
	assert.Contains(t, args, "--no-first-run")

	// Extras come after the built-in set so they can override it.
	require.NotEmpty(t, args)
	assert.Equal(t, "--proxy-server=localhost:8080", args[len(args)-1])
}

func TestOptionsFromConfig(t *testing.T) {
	cfg := config.Config{
		Headless:        false,
		UserAgent:       "agent/2.0",
		BrowserPath:     "/usr/bin/chromium",
		BrowserArgs:     []string{"--lang=en-US"},
		PageLoadTimeout: 45 * time.Second,
	}

	o := OptionsFromConfig(cfg)
	assert.False(t, o.Headless)
	assert.Equal(t, "agent/2.0", o.UserAgent)
	assert.Equal(t, "/usr/bin/chromium", o.ExecutablePath)
	assert.Equal(t, []string{"--lang=en-US"}, o.ExtraArgs)
	assert.Equal(t, 45*time.Second, o.PageLoadTimeout)
}
