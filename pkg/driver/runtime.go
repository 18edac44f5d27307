package driver

import (
	"fmt"
	"io"
	"log/slog"
	"sync"
	"time"

	"github.com/playwright-community/playwright-go"

	"github.com/entrhq/prospect/pkg/logging"
)

// Runtime owns the shared playwright installation and constructs drivers
// from it. One Runtime serves every pool and probe in the process.
type Runtime struct {
	mu          sync.Mutex
	pw          *playwright.Playwright
	opts        Options
	initialized bool
	log         *slog.Logger
}

// NewRuntime creates a runtime; the playwright process is not started until
// Initialize or the first NewDriver call.
func NewRuntime(opts Options) *Runtime {
	return &Runtime{
		opts: opts,
		log:  logging.New("driver"),
	}
}

// Initialize installs and starts playwright. Idempotent.
func (r *Runtime) Initialize() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.initializeLocked()
}

func (r *Runtime) initializeLocked() error {
	if r.initialized {
		return nil
	}

	runOpts := &playwright.RunOptions{
		Verbose: false,
		Stdout:  io.Discard,
		Stderr:  io.Discard,
	}

	if err := playwright.Install(runOpts); err != nil {
		return fmt.Errorf("%w: playwright install: %v", ErrInitFailure, err)
	}

	pw, err := playwright.Run(runOpts)
	if err != nil {
		return fmt.Errorf("%w: playwright start: %v", ErrInitFailure, err)
	}

	r.pw = pw
	r.initialized = true
	return nil
}

// NewDriver launches a browser configured for unattended operation and
// returns a live driver. The caller owns teardown.
func (r *Runtime) NewDriver() (*Driver, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := r.initializeLocked(); err != nil {
		return nil, err
	}

	r.log.Info("launching browser", "headless", r.opts.Headless)

	launchOpts := playwright.BrowserTypeLaunchOptions{
		Headless: playwright.Bool(r.opts.Headless),
		Args:     r.opts.launchArgs(),
	}
	if r.opts.ExecutablePath != "" {
		r.log.Info("using configured browser executable", "path", r.opts.ExecutablePath)
		launchOpts.ExecutablePath = playwright.String(r.opts.ExecutablePath)
	}

	browser, err := r.pw.Chromium.Launch(launchOpts)
	if err != nil {
		return nil, fmt.Errorf("%w: browser launch: %v", ErrInitFailure, err)
	}

	context, err := browser.NewContext(playwright.BrowserNewContextOptions{
		Viewport: &playwright.Size{
			Width:  DefaultViewportWidth,
			Height: DefaultViewportHeight,
		},
		UserAgent: playwright.String(r.opts.userAgent()),
	})
	if err != nil {
		_ = browser.Close()
		return nil, fmt.Errorf("%w: browser context: %v", ErrInitFailure, err)
	}

	page, err := context.NewPage()
	if err != nil {
		_ = context.Close()
		_ = browser.Close()
		return nil, fmt.Errorf("%w: page: %v", ErrInitFailure, err)
	}

	page.SetDefaultNavigationTimeout(float64(r.opts.pageLoadTimeout().Milliseconds()))
	page.SetDefaultTimeout(float64(r.opts.opTimeout().Milliseconds()))

	return &Driver{
		Browser:   browser,
		Context:   context,
		Page:      page,
		CreatedAt: time.Now(),
	}, nil
}

// Stop shuts the shared playwright process down. Drivers must be closed
// first; this only tears down the runtime itself.
func (r *Runtime) Stop() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if !r.initialized || r.pw == nil {
		return nil
	}
	if err := r.pw.Stop(); err != nil {
		return fmt.Errorf("failed to stop playwright: %w", err)
	}
	r.pw = nil
	r.initialized = false
	return nil
}
