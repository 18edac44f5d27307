package session

import "strings"

// cookiePrefix is the canonical name of the LinkedIn session cookie.
const cookiePrefix = "li_at="

// Cookie is a session cookie in both of its usable shapes: Stored is the
// canonical "li_at=<value>" form the store keeps, Raw is the bare value the
// authentication flow hands to the browser.
type Cookie struct {
	Stored string
	Raw    string
}

// NormalizeCookie trims the input and produces the canonical stored/raw pair.
// The result is deterministic: the same input always yields the same pair,
// whether or not the caller included the li_at= prefix.
func NormalizeCookie(cookie string) (Cookie, error) {
	trimmed := strings.TrimSpace(cookie)
	if trimmed == "" {
		return Cookie{}, ErrEmptyCookie
	}

	if strings.HasPrefix(trimmed, cookiePrefix) {
		return Cookie{
			Stored: trimmed,
			Raw:    strings.TrimPrefix(trimmed, cookiePrefix),
		}, nil
	}

	return Cookie{
		Stored: cookiePrefix + trimmed,
		Raw:    trimmed,
	}, nil
}

// RawValue strips the canonical prefix from a stored cookie, recovering the
// value the browser expects.
func RawValue(stored string) string {
	return strings.TrimPrefix(stored, cookiePrefix)
}
