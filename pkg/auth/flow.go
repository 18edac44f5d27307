// Package auth drives the cookie login sequence against LinkedIn and turns
// its ambiguous failure modes into classified errors.
package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/entrhq/prospect/pkg/logging"
)

// Client is what the flow needs from a driver. *driver.Driver satisfies it;
// tests substitute fakes.
type Client interface {
	// SubmitCookie injects the raw cookie and navigates to the feed. It
	// returns ErrSubmitTimeout, ErrCookieRejected, or ErrRateLimited for
	// the outcomes the flow classifies, and any other error for transient
	// failures.
	SubmitCookie(ctx context.Context, cookie string) error

	// CurrentURL reports the page location after the login attempt.
	CurrentURL() string

	// PageContent returns the current page HTML, used to tell security
	// checks apart from captchas.
	PageContent() (string, error)

	// SetPageLoadTimeout adjusts the navigation timeout.
	SetPageLoadTimeout(d time.Duration)
}

// Flow performs cookie authentication with the timing the login page needs:
// a longer page-load timeout while authenticating, restored on every exit
// path so operator configuration survives the attempt.
type Flow struct {
	// LoginTimeout bounds the login navigation. Authentication pages load
	// slower than normal navigation, and an invalid cookie loads forever,
	// so the timeout doubles as the rejection detector.
	LoginTimeout time.Duration

	// DefaultTimeout is restored after every attempt.
	DefaultTimeout time.Duration

	// SettleDelay is how long to wait for an in-flight redirect before
	// re-checking an ambiguous or inconclusive outcome.
	SettleDelay time.Duration

	// RetryDelay precedes the single retry after a transient error.
	RetryDelay time.Duration

	log   *slog.Logger
	sleep func(ctx context.Context, d time.Duration)
}

// NewFlow returns a Flow with the production timing constants.
func NewFlow() *Flow {
	return &Flow{
		LoginTimeout:   45 * time.Second,
		DefaultTimeout: 60 * time.Second,
		SettleDelay:    2 * time.Second,
		RetryDelay:     2 * time.Second,
		log:            logging.New("auth"),
		sleep:          sleepContext,
	}
}

// Authenticate runs one login attempt (with a single built-in retry for
// transient failures) and returns nil only when the driver demonstrably
// landed in the authenticated area.
func (f *Flow) Authenticate(ctx context.Context, client Client, rawCookie string) error {
	client.SetPageLoadTimeout(f.LoginTimeout)
	defer client.SetPageLoadTimeout(f.DefaultTimeout)

	for attempt := 0; ; attempt++ {
		err := client.SubmitCookie(ctx, rawCookie)
		if err == nil {
			break
		}

		switch {
		case errors.Is(err, ErrSubmitTimeout):
			// A second identical attempt would time out identically.
			f.log.Warn("cookie authentication failed, page load timeout", "error", err)
			return fmt.Errorf("%w: page load timed out", ErrInvalidCookie)

		case errors.Is(err, ErrCookieRejected):
			// Known over-eager rejection. Let any in-flight redirect
			// finish, then check where we actually landed.
			f.log.Info("rejection reported during submit, verifying actual authentication status")
			f.sleep(ctx, f.SettleDelay)
			return f.verify(ctx, client)

		case errors.Is(err, ErrRateLimited):
			f.log.Warn("login attempt rate limited", "error", err)
			return err

		default:
			if attempt == 0 {
				f.log.Warn("login attempt failed, retrying once", "error", err)
				f.sleep(ctx, f.RetryDelay)
				continue
			}
			return fmt.Errorf("login failed: %w", err)
		}
	}

	return f.verify(ctx, client)
}

// verify inspects the driver location, re-checking once after a settle delay
// when the page is neither clearly authenticated nor clearly rejected.
// Success is never assumed without positive evidence.
func (f *Flow) verify(ctx context.Context, client Client) error {
	url := client.CurrentURL()

	switch classifyURL(url) {
	case pageAuthenticated:
		f.log.Info("cookie authentication successful", "url", url)
		return nil
	case pageLogin, pageChallenge:
		return f.rejection(client, url)
	}

	f.log.Info("unexpected page after login, re-checking authentication status", "url", url)
	f.sleep(ctx, f.SettleDelay)

	url = client.CurrentURL()
	switch classifyURL(url) {
	case pageAuthenticated:
		f.log.Info("cookie authentication successful after re-check", "url", url)
		return nil
	case pageLogin, pageChallenge:
		return f.rejection(client, url)
	}

	f.log.Warn("cookie authentication inconclusive", "url", url)
	return fmt.Errorf("%w: ended on unexpected page %s", ErrInvalidCookie, url)
}

// rejection maps a login or challenge page to its terminal error.
func (f *Flow) rejection(client Client, url string) error {
	if strings.Contains(url, "checkpoint/challenge") {
		content, err := client.PageContent()
		if err == nil && strings.Contains(strings.ToLower(content), "security check") {
			f.log.Warn("security challenge required", "url", url)
			return &ChallengeError{URL: url}
		}
		f.log.Warn("captcha required", "url", url)
		return &ChallengeError{URL: url, Captcha: true}
	}

	f.log.Warn("cookie authentication failed, redirected to login page", "url", url)
	return fmt.Errorf("%w: redirected to login page", ErrInvalidCookie)
}

type pageKind int

const (
	pageUnknown pageKind = iota
	pageLogin
	pageChallenge
	pageAuthenticated
)

var authenticatedMarkers = []string{"feed", "mynetwork", "linkedin.com/in/", "/feed/"}

func classifyURL(url string) pageKind {
	if strings.Contains(url, "checkpoint/challenge") {
		return pageChallenge
	}
	if strings.Contains(url, "login") || strings.Contains(url, "uas/login") {
		return pageLogin
	}
	for _, marker := range authenticatedMarkers {
		if strings.Contains(url, marker) {
			return pageAuthenticated
		}
	}
	return pageUnknown
}

func sleepContext(ctx context.Context, d time.Duration) {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
	case <-timer.C:
	}
}
