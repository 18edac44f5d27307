package auth

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidCookie indicates the credential was deterministically
	// rejected, either by timeout or by an explicit redirect to the login
	// page.
	ErrInvalidCookie = errors.New("auth: cookie is invalid or expired")

	// ErrRateLimited indicates LinkedIn is throttling login attempts.
	ErrRateLimited = errors.New("auth: rate limited")

	// ErrSubmitTimeout is returned by Client implementations when the login
	// navigation exceeds its page-load timeout. Invalid cookies manifest as
	// the page loading forever, so this is a primary rejection signal.
	ErrSubmitTimeout = errors.New("auth: login page load timed out")

	// ErrCookieRejected is the ambiguous rejection signal: the submit step
	// saw a login redirect, but that is known to be over-eager while the
	// authenticated redirect is still in flight. The flow verifies before
	// trusting it.
	ErrCookieRejected = errors.New("auth: cookie login reported as rejected")
)

// ChallengeError indicates LinkedIn demands a human-solvable challenge
// before the session can proceed.
type ChallengeError struct {
	// URL is the challenge page the human must visit.
	URL string

	// Captcha is true for captcha challenges, false for security checks.
	Captcha bool
}

func (e *ChallengeError) Error() string {
	if e.Captcha {
		return fmt.Sprintf("auth: captcha required at %s", e.URL)
	}
	return fmt.Sprintf("auth: security challenge required at %s", e.URL)
}
