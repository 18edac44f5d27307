package session

import (
	"errors"
	"fmt"

	"github.com/entrhq/prospect/pkg/auth"
	"github.com/entrhq/prospect/pkg/driver"
)

// ErrorKind names one terminal failure category. Callers branch on the kind
// to decide remediation: re-prompt for a cookie, send a human to a
// challenge page, back off, or fix the environment.
type ErrorKind string

const (
	KindInvalidInput      ErrorKind = "invalid_input"
	KindSessionNotFound   ErrorKind = "session_not_found"
	KindInvalidCookie     ErrorKind = "invalid_credentials"
	KindSecurityChallenge ErrorKind = "security_challenge_required"
	KindCaptchaRequired   ErrorKind = "captcha_required"
	KindRateLimited       ErrorKind = "rate_limit"
	KindDriverInit        ErrorKind = "driver_initialization_error"
	KindUnknown           ErrorKind = "unknown_error"
)

// ErrorResponse is the structured outcome payload for a failed operation.
type ErrorResponse struct {
	Status       string    `json:"status"`
	Error        ErrorKind `json:"error"`
	Message      string    `json:"message"`
	Resolution   string    `json:"resolution,omitempty"`
	ChallengeURL string    `json:"challenge_url,omitempty"`
}

// Classify converts any error from a manager operation into its structured
// response. Every error maps to exactly one kind; ambiguity is resolved
// before errors reach this point.
func Classify(err error, context string) ErrorResponse {
	resp := ErrorResponse{Status: "error", Message: err.Error()}

	var challenge *auth.ChallengeError
	switch {
	case errors.Is(err, ErrEmptyCookie):
		resp.Error = KindInvalidInput
		resp.Resolution = "Provide a non-empty LinkedIn session cookie"

	case errors.Is(err, ErrSessionNotFound):
		resp.Error = KindSessionNotFound
		resp.Resolution = "Create a session with a LinkedIn cookie first"

	case errors.As(err, &challenge):
		if challenge.Captcha {
			resp.Error = KindCaptchaRequired
			resp.Resolution = "Complete the captcha challenge manually"
		} else {
			resp.Error = KindSecurityChallenge
			resp.Resolution = "Complete the security challenge manually"
		}
		resp.ChallengeURL = challenge.URL

	case errors.Is(err, auth.ErrRateLimited):
		resp.Error = KindRateLimited
		resp.Resolution = "Wait before attempting to login again"

	case errors.Is(err, auth.ErrInvalidCookie):
		resp.Error = KindInvalidCookie
		resp.Resolution = "The cookie is expired or invalid; supply a fresh one"

	case errors.Is(err, driver.ErrInitFailure):
		resp.Error = KindDriverInit
		resp.Resolution = "Check the browser installation and executable path"

	default:
		resp.Error = KindUnknown
		if context != "" {
			resp.Message = fmt.Sprintf("failed to execute %s: %s", context, err.Error())
		}
	}

	return resp
}
