package session

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/entrhq/prospect/pkg/auth"
	"github.com/entrhq/prospect/pkg/driver"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantKind ErrorKind
	}{
		{
			name:     "empty cookie",
			err:      ErrEmptyCookie,
			wantKind: KindInvalidInput,
		},
		{
			name:     "missing session",
			err:      fmt.Errorf("%w: no session for token %q", ErrSessionNotFound, "x"),
			wantKind: KindSessionNotFound,
		},
		{
			name:     "invalid cookie",
			err:      fmt.Errorf("%w: page load timed out", auth.ErrInvalidCookie),
			wantKind: KindInvalidCookie,
		},
		{
			name:     "rate limited",
			err:      auth.ErrRateLimited,
			wantKind: KindRateLimited,
		},
		{
			name:     "driver init",
			err:      fmt.Errorf("%w: browser launch: boom", driver.ErrInitFailure),
			wantKind: KindDriverInit,
		},
		{
			name:     "unknown",
			err:      errors.New("something else"),
			wantKind: KindUnknown,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := Classify(tt.err, "test_op")
			assert.Equal(t, "error", resp.Status)
			assert.Equal(t, tt.wantKind, resp.Error)
			assert.NotEmpty(t, resp.Message)
		})
	}
}

func TestClassifyChallenge(t *testing.T) {
	resp := Classify(&auth.ChallengeError{URL: "https://www.linkedin.com/checkpoint/challenge/x"}, "")
	assert.Equal(t, KindSecurityChallenge, resp.Error)
	assert.Equal(t, "https://www.linkedin.com/checkpoint/challenge/x", resp.ChallengeURL)

	resp = Classify(&auth.ChallengeError{URL: "https://example.com/c", Captcha: true}, "")
	assert.Equal(t, KindCaptchaRequired, resp.Error)
	assert.Equal(t, "https://example.com/c", resp.ChallengeURL)
}

func TestClassifyWrappedChallenge(t *testing.T) {
	wrapped := fmt.Errorf("cookie validation failed: %w", &auth.ChallengeError{URL: "u", Captcha: true})
	resp := Classify(wrapped, "")
	assert.Equal(t, KindCaptchaRequired, resp.Error)
	assert.Equal(t, "u", resp.ChallengeURL)
}

func TestClassifyUnknownIncludesContext(t *testing.T) {
	resp := Classify(errors.New("boom"), "get_person_profile")
	assert.Contains(t, resp.Message, "get_person_profile")
}
