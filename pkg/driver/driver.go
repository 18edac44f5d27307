package driver

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/playwright-community/playwright-go"

	"github.com/entrhq/prospect/pkg/auth"
)

const (
	feedURL      = "https://www.linkedin.com/feed/"
	cookieName   = "li_at"
	cookieDomain = ".www.linkedin.com"
	loginMarker  = "/login"
)

// Driver is a live automation browser bound to at most one session token.
// The pool owns it; the authentication flow and scraping collaborators only
// borrow it for the duration of a call.
type Driver struct {
	Token     string
	Browser   playwright.Browser
	Context   playwright.BrowserContext
	Page      playwright.Page
	CreatedAt time.Time
}

// SubmitCookie injects the raw session cookie into the browser context and
// navigates to the feed. Landing back on the login page is reported as
// auth.ErrCookieRejected rather than a hard failure, because the
// authenticated redirect is often still in flight at that point.
func (d *Driver) SubmitCookie(ctx context.Context, cookie string) error {
	err := d.Context.AddCookies([]playwright.OptionalCookie{{
		Name:     cookieName,
		Value:    cookie,
		Domain:   playwright.String(cookieDomain),
		Path:     playwright.String("/"),
		Secure:   playwright.Bool(true),
		HttpOnly: playwright.Bool(true),
	}})
	if err != nil {
		return fmt.Errorf("failed to set session cookie: %w", err)
	}

	if _, err := d.Page.Goto(feedURL); err != nil {
		switch {
		case isTimeout(err):
			return fmt.Errorf("%w: %v", auth.ErrSubmitTimeout, err)
		case isRateLimited(err):
			return fmt.Errorf("%w: %v", auth.ErrRateLimited, err)
		default:
			return fmt.Errorf("login navigation failed: %w", err)
		}
	}

	if strings.Contains(d.Page.URL(), loginMarker) {
		return auth.ErrCookieRejected
	}
	return nil
}

// CurrentURL reports the page location.
func (d *Driver) CurrentURL() string {
	return d.Page.URL()
}

// PageContent returns the current page HTML.
func (d *Driver) PageContent() (string, error) {
	return d.Page.Content()
}

// SetPageLoadTimeout adjusts the navigation timeout for subsequent loads.
func (d *Driver) SetPageLoadTimeout(timeout time.Duration) {
	d.Page.SetDefaultNavigationTimeout(float64(timeout.Milliseconds()))
}

// CaptureSessionCookie reads the li_at cookie back out of the browser
// context, in canonical name=value form. Returns "" when no session cookie
// is present.
func (d *Driver) CaptureSessionCookie() (string, error) {
	cookies, err := d.Context.Cookies()
	if err != nil {
		return "", fmt.Errorf("failed to read cookies: %w", err)
	}
	for _, c := range cookies {
		if c.Name == cookieName && c.Value != "" {
			return fmt.Sprintf("%s=%s", cookieName, c.Value), nil
		}
	}
	return "", nil
}

// Close tears the browser down. Each layer is closed best-effort so one
// failing close cannot leak the layers beneath it; the first error is
// returned for logging.
func (d *Driver) Close() error {
	var firstErr error
	if d.Page != nil {
		if err := d.Page.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	if d.Context != nil {
		if err := d.Context.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	if d.Browser != nil {
		if err := d.Browser.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

// isTimeout reports whether the navigation failed by exceeding its timeout.
func isTimeout(err error) bool {
	if errors.Is(err, playwright.ErrTimeout) {
		return true
	}
	return strings.Contains(err.Error(), "Timeout") && strings.Contains(err.Error(), "exceeded")
}

// isRateLimited reports whether LinkedIn refused the navigation with a
// throttling response.
func isRateLimited(err error) bool {
	msg := err.Error()
	return strings.Contains(msg, "ERR_TOO_MANY_REQUESTS") || strings.Contains(msg, "429")
}
